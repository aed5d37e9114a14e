/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Engine output parser for the Akaylee Miner. Implements the two
line grammars the mining engine emits: frequency listings ("codes (support)")
and association rule listings ("(confidence) target <= codes (support)").
Codes are decoded back to labels through the codec; any malformed line aborts
the whole read with no partial result.
*/

package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kleascm/akaylee-miner/pkg/codec"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
)

// ruleSeparator splits a rule line into its target and source halves.
const ruleSeparator = "<="

// ParseFrequencyFile reads an engine output file in the frequency grammar.
func ParseFrequencyFile(path string, c *codec.Codec) (*interfaces.FrequencyResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open engine output %s: %w", path, err)
	}
	defer f.Close()
	return ParseFrequency(f, c)
}

// ParseRuleFile reads an engine output file in the rule grammar.
func ParseRuleFile(path string, c *codec.Codec) (*interfaces.RuleResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open engine output %s: %w", path, err)
	}
	defer f.Close()
	return ParseRules(f, c)
}

// ParseFrequency parses frequency lines: "<code>... (<support>)". All tokens
// except the last are item codes; the last is the parenthesized support
// count. Result order is file order, which the engine determines.
func ParseFrequency(r io.Reader, c *codec.Codec) (*interfaces.FrequencyResult, error) {
	result := &interfaces.FrequencyResult{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		// Whitespace-only lines (any Unicode whitespace) count as blank.
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		support, err := parseSupport(tokens[len(tokens)-1])
		if err != nil {
			return nil, &interfaces.ParseError{Line: lineNo, Text: line, Reason: "support field is not an integer"}
		}

		items, err := c.DecodeTokens(tokens[:len(tokens)-1])
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, interfaces.FrequencyEntry{Items: items, Support: support})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read engine output: %w", err)
	}
	return result, nil
}

// ParseRules parses rule lines:
//
//	(<confidence>[,<confidence2>]) <target> <= <code>... (<support>)
//
// The line is split once on "<="; the left half carries the parenthesized
// confidence (only the first comma-separated component is retained) and the
// target code, the right half the source codes and the parenthesized
// support. Support and confidence are surfaced verbatim as strings.
func ParseRules(r io.Reader, c *codec.Codec) (*interfaces.RuleResult, error) {
	result := &interfaces.RuleResult{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		left, right, found := strings.Cut(line, ruleSeparator)
		if !found {
			return nil, &interfaces.ParseError{Line: lineNo, Text: line, Reason: "missing rule separator " + strconv.Quote(ruleSeparator)}
		}

		leftTokens := strings.Fields(left)
		if len(leftTokens) != 2 {
			return nil, &interfaces.ParseError{Line: lineNo, Text: line, Reason: "target half must be confidence and target code"}
		}
		confidence := strings.SplitN(stripParens(leftTokens[0]), ",", 2)[0]
		target, err := c.DecodeToken(leftTokens[1])
		if err != nil {
			return nil, err
		}

		rightTokens := strings.Fields(right)
		if len(rightTokens) < 1 {
			return nil, &interfaces.ParseError{Line: lineNo, Text: line, Reason: "source half must end with a support field"}
		}
		support := stripParens(rightTokens[len(rightTokens)-1])
		source, err := c.DecodeTokens(rightTokens[:len(rightTokens)-1])
		if err != nil {
			return nil, err
		}

		result.Entries = append(result.Entries, interfaces.RuleEntry{
			Source:     source,
			Support:    support,
			Target:     target,
			Confidence: confidence,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read engine output: %w", err)
	}
	return result, nil
}

// parseSupport strips the parentheses around the support field and parses
// the count.
func parseSupport(token string) (int, error) {
	return strconv.Atoi(stripParens(token))
}

// stripParens removes every parenthesis character, matching the engine
// wrapper convention rather than requiring balanced pairs.
func stripParens(s string) string {
	s = strings.ReplaceAll(s, "(", "")
	return strings.ReplaceAll(s, ")", "")
}
