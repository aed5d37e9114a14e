/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for the Akaylee Miner. Every failure class the pipeline
can produce is a distinct type so callers can dispatch with errors.As. No failure
here is transient: there are no retries anywhere in the pipeline.
*/

package interfaces

import "fmt"

// ConfigurationError means the miner cannot be constructed, typically
// because the engine binary is missing. Fatal at construction time.
type ConfigurationError struct {
	Path   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s (path %q)", e.Reason, e.Path)
}

// UsageError means the caller combined inputs in an unsupported way,
// for example supplying both a target and a rule item. Raised before
// any file or process side effect.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return "usage error: " + e.Reason
}

// UnknownLabelError means a label was encoded that was not part of the
// corpus the codec was built from.
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown label %q: not present in the corpus the codec was built from", e.Label)
}

// UnknownCodeError means an engine output token did not map back to any
// label in the reverse map.
type UnknownCodeError struct {
	Token string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown item code %q: not present in the reverse map", e.Token)
}

// ParseError means a line of engine output did not match the expected
// grammar. The whole read is aborted; no partial result is returned.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at output line %d: %s: %q", e.Line, e.Reason, e.Text)
}
