/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces and types for the Akaylee Miner. Defines the core types
used across all packages to break import cycles and enable proper modular design.
*/

package interfaces

import (
	"time"
)

// MiningMode selects which itemset-closure family the engine computes.
// The modes are mutually exclusive.
type MiningMode string

const (
	ModeFrequent        MiningMode = "frequent"
	ModeClosedFrequent  MiningMode = "closed_frequent"
	ModeMaximalFrequent MiningMode = "maximal_frequent"
	ModePositiveClosed  MiningMode = "positive_closed"
)

// Valid reports whether the mode is one of the supported closure families.
func (m MiningMode) Valid() bool {
	switch m {
	case ModeFrequent, ModeClosedFrequent, ModeMaximalFrequent, ModePositiveClosed:
		return true
	}
	return false
}

// Letter returns the single-letter prefix the engine expects for the mode.
func (m MiningMode) Letter() string {
	switch m {
	case ModeFrequent:
		return "F"
	case ModeClosedFrequent:
		return "C"
	case ModeMaximalFrequent:
		return "M"
	case ModePositiveClosed:
		return "P"
	}
	return ""
}

// Modes returns all supported mining modes in a stable order.
func Modes() []MiningMode {
	return []MiningMode{ModeFrequent, ModeClosedFrequent, ModeMaximalFrequent, ModePositiveClosed}
}

// RunOptions holds the optional engine tuning knobs. Nil fields fall back
// to the engine defaults applied by the command builder
// (min_confidence 0.5, min_itemset_size 1).
type RunOptions struct {
	MinConfidence  *float64
	MaxConfidence  *float64
	MinItemsetSize *int
	MaxItemsetSize *int
}

// RunRequest describes a single mining run. Target and RuleForItem are
// mutually exclusive: Target restricts frequency mining to transactions
// containing it, RuleForItem switches the engine into rule mining mode.
type RunRequest struct {
	MinSupport  int
	Mode        MiningMode
	Target      string
	RuleForItem string
	Options     RunOptions
}

// ResultKind identifies which output grammar a run produces.
type ResultKind int

const (
	ResultFrequency ResultKind = iota
	ResultRules
)

// String returns a human-readable name for the result kind.
func (k ResultKind) String() string {
	if k == ResultRules {
		return "rules"
	}
	return "frequency"
}

// RunOutcome captures everything a completed engine invocation produced,
// including which result grammar applies to the output file. It is the
// only coupling between Run and Read: no instance-held mode flag exists.
type RunOutcome struct {
	RunID        string
	Kind         ResultKind
	Mode         MiningMode
	ModeFlag     string
	Args         []string
	ExitCode     int
	Duration     time.Duration
	OutputFile   string
	Transactions int    // transactions written to the engine input file
	SummaryFile  string // run summary path, "" when summaries are disabled
}

// FrequencyEntry is one mined itemset with its support count.
type FrequencyEntry struct {
	Items   []string
	Support int
}

// FrequencyResult is the decoded output of a frequency-mode run,
// in engine output order.
type FrequencyResult struct {
	Entries []FrequencyEntry
}

// Kind implements Result.
func (r *FrequencyResult) Kind() ResultKind { return ResultFrequency }

// Len implements Result.
func (r *FrequencyResult) Len() int { return len(r.Entries) }

// Columns returns the result as named columns of equal length,
// suitable for tabular display.
func (r *FrequencyResult) Columns() map[string]interface{} {
	freq := make([]int, len(r.Entries))
	items := make([][]string, len(r.Entries))
	for i, e := range r.Entries {
		freq[i] = e.Support
		items[i] = e.Items
	}
	return map[string]interface{}{
		"frequency": freq,
		"items":     items,
	}
}

// RuleEntry is one mined association rule: source itemset implies target.
// Support and Confidence are kept verbatim as the engine printed them.
type RuleEntry struct {
	Source     []string
	Support    string
	Target     string
	Confidence string
}

// RuleResult is the decoded output of a rule-mode run, in engine output order.
type RuleResult struct {
	Entries []RuleEntry
}

// Kind implements Result.
func (r *RuleResult) Kind() ResultKind { return ResultRules }

// Len implements Result.
func (r *RuleResult) Len() int { return len(r.Entries) }

// Columns returns the result as named columns of equal length.
func (r *RuleResult) Columns() map[string]interface{} {
	freq := make([]string, len(r.Entries))
	conf := make([]string, len(r.Entries))
	source := make([][]string, len(r.Entries))
	target := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		freq[i] = e.Support
		conf[i] = e.Confidence
		source[i] = e.Source
		target[i] = e.Target
	}
	return map[string]interface{}{
		"frequency":    freq,
		"confidence":   conf,
		"source_items": source,
		"target_item":  target,
	}
}

// Result is the common surface of FrequencyResult and RuleResult.
type Result interface {
	Kind() ResultKind
	Len() int
	Columns() map[string]interface{}
}

// MinerConfig holds the configuration for a Miner instance.
type MinerConfig struct {
	EnginePath      string        // path to the LCM binary (required)
	TransactionFile string        // engine input file, rewritten per run
	OutputFile      string        // engine output file
	Timeout         time.Duration // per-invocation timeout, 0 disables
	SummaryDir      string        // run summary directory, "" disables
}

// InvocationResult is what the process invoker observed: the verbatim
// exit code plus captured standard streams.
type InvocationResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Invoker runs the external engine with an explicit argument vector.
// Implementations never interpret a non-zero exit code as an error;
// the error return is reserved for spawn failures and timeouts.
type Invoker interface {
	Invoke(program string, args []string) (*InvocationResult, error)
}
