/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: miner_test.go
Description: Tests for the mining pipeline orchestration. Uses a fake engine
invoker that writes canned output files, so the full encode, write, invoke,
parse round trip is exercised without the real binary.
*/

package miner_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/miner"
	"github.com/kleascm/akaylee-miner/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = [][]string{
	{"apple", "banana", "cherry"},
	{"apple", "banana"},
	{"apple", "grape"},
	{"banana", "cherry"},
	{"cherry"},
}

// fakeEngine records its invocation and writes a canned output file,
// standing in for the external mining binary.
type fakeEngine struct {
	outputFile string
	output     string
	exitCode   int
	calls      int
	lastArgs   []string
}

func (f *fakeEngine) Invoke(program string, args []string) (*interfaces.InvocationResult, error) {
	f.calls++
	f.lastArgs = args
	if err := os.WriteFile(f.outputFile, []byte(f.output), 0644); err != nil {
		return nil, err
	}
	return &interfaces.InvocationResult{ExitCode: f.exitCode}, nil
}

// newTestMiner builds a miner over a dummy engine binary in a temp dir
func newTestMiner(t *testing.T) (*miner.Miner, *fakeEngine, *interfaces.MinerConfig) {
	t.Helper()
	dir := t.TempDir()

	enginePath := filepath.Join(dir, "lcm")
	require.NoError(t, os.WriteFile(enginePath, []byte("#!/bin/sh\n"), 0755))

	config := &interfaces.MinerConfig{
		EnginePath:      enginePath,
		TransactionFile: filepath.Join(dir, "lcm.dat"),
		OutputFile:      filepath.Join(dir, "lcm.out"),
	}

	m, err := miner.New(config, corpus)
	require.NoError(t, err)

	fake := &fakeEngine{outputFile: config.OutputFile}
	m.SetInvoker(fake)
	return m, fake, config
}

// TestNewMissingEngine tests the construction failure path
func TestNewMissingEngine(t *testing.T) {
	_, err := miner.New(&interfaces.MinerConfig{EnginePath: "/nonexistent/lcm"}, corpus)
	var confErr *interfaces.ConfigurationError
	require.True(t, errors.As(err, &confErr))

	_, err = miner.New(nil, corpus)
	assert.True(t, errors.As(err, &confErr))
}

// TestRunFrequency tests the plain frequency pipeline end to end
func TestRunFrequency(t *testing.T) {
	m, fake, config := newTestMiner(t)
	// Sorted vocabulary: apple=1 banana=2 cherry=3 grape=4
	fake.output = "1 2 (3)\n3 (3)\n"

	outcome, err := m.Run(&interfaces.RunRequest{MinSupport: 2, Mode: interfaces.ModeClosedFrequent})
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, interfaces.ResultFrequency, outcome.Kind)
	assert.Equal(t, "CRfs", outcome.ModeFlag)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.Equal(t, 5, outcome.Transactions)
	assert.NotEmpty(t, outcome.RunID)

	// The full encoded corpus is on disk for the engine
	data, err := os.ReadFile(config.TransactionFile)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n1 2\n1 4\n2 3\n3\n", string(data))

	result, err := m.Read(outcome)
	require.NoError(t, err)
	freq, ok := result.(*interfaces.FrequencyResult)
	require.True(t, ok)
	require.Equal(t, 2, freq.Len())
	assert.Equal(t, []string{"apple", "banana"}, freq.Entries[0].Items)
	assert.Equal(t, 3, freq.Entries[0].Support)
}

// TestRunTargetFilters tests that target mode writes only matching transactions
func TestRunTargetFilters(t *testing.T) {
	m, fake, config := newTestMiner(t)
	fake.output = "3 (3)\n"

	outcome, err := m.Run(&interfaces.RunRequest{
		MinSupport: 1,
		Mode:       interfaces.ModeFrequent,
		Target:     "cherry",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ffs", outcome.ModeFlag)
	assert.Equal(t, interfaces.ResultFrequency, outcome.Kind)
	// cherry=3 appears in transactions 1, 4, and 5
	assert.Equal(t, 3, outcome.Transactions)

	data, err := os.ReadFile(config.TransactionFile)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n2 3\n3\n", string(data))
}

// TestRunRules tests the rule mining pipeline end to end
func TestRunRules(t *testing.T) {
	m, fake, _ := newTestMiner(t)
	fake.output = "(0.75,1) 2 <= 1 (3)\n"

	outcome, result, err := m.Mine(&interfaces.RunRequest{
		MinSupport:  1,
		Mode:        interfaces.ModeClosedFrequent,
		RuleForItem: "banana",
	})
	require.NoError(t, err)

	assert.Equal(t, interfaces.ResultRules, outcome.Kind)
	assert.Equal(t, "CfRs", outcome.ModeFlag)
	// Rule item banana encodes to 2
	assert.Contains(t, fake.lastArgs, "-i")
	assert.Contains(t, fake.lastArgs, "2")

	rules, ok := result.(*interfaces.RuleResult)
	require.True(t, ok)
	require.Equal(t, 1, rules.Len())
	assert.Equal(t, []string{"apple"}, rules.Entries[0].Source)
	assert.Equal(t, "banana", rules.Entries[0].Target)
	assert.Equal(t, "0.75", rules.Entries[0].Confidence)
	assert.Equal(t, "3", rules.Entries[0].Support)
}

// TestRunBothTargetAndRule tests that the usage error precedes side effects
func TestRunBothTargetAndRule(t *testing.T) {
	m, fake, config := newTestMiner(t)

	_, err := m.Run(&interfaces.RunRequest{
		MinSupport:  1,
		Mode:        interfaces.ModeFrequent,
		Target:      "apple",
		RuleForItem: "banana",
	})
	var usageErr *interfaces.UsageError
	require.True(t, errors.As(err, &usageErr))

	// No file was written and no process spawned
	assert.Equal(t, 0, fake.calls)
	_, statErr := os.Stat(config.TransactionFile)
	assert.True(t, os.IsNotExist(statErr))
}

// TestRunExitCodePassThrough tests that engine exit codes are surfaced verbatim
func TestRunExitCodePassThrough(t *testing.T) {
	m, fake, _ := newTestMiner(t)
	fake.exitCode = 2
	fake.output = ""

	outcome, err := m.Run(&interfaces.RunRequest{MinSupport: 1, Mode: interfaces.ModeFrequent})
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.ExitCode)
}

// TestReadWithoutRun tests that Read demands a prior outcome
func TestReadWithoutRun(t *testing.T) {
	m, _, _ := newTestMiner(t)

	_, err := m.Read(nil)
	var usageErr *interfaces.UsageError
	assert.True(t, errors.As(err, &usageErr))
}

// TestRunUnknownTarget tests encoding failure for an unseen target label
func TestRunUnknownTarget(t *testing.T) {
	m, _, _ := newTestMiner(t)

	_, err := m.Run(&interfaces.RunRequest{
		MinSupport: 1,
		Mode:       interfaces.ModeFrequent,
		Target:     "durian",
	})
	var unknownLabel *interfaces.UnknownLabelError
	assert.True(t, errors.As(err, &unknownLabel))
}

// TestRunWritesSummary tests the optional run summary side channel
func TestRunWritesSummary(t *testing.T) {
	m, fake, config := newTestMiner(t)
	fake.output = "1 (1)\n"
	config.SummaryDir = filepath.Join(filepath.Dir(config.OutputFile), "summaries")

	outcome, err := m.Run(&interfaces.RunRequest{MinSupport: 1, Mode: interfaces.ModeFrequent})
	require.NoError(t, err)
	assert.NotEmpty(t, outcome.SummaryFile)

	entries, err := os.ReadDir(config.SummaryDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestMineUpdatesSummaryEntries tests that the summary entry count is
// filled in once the output has been parsed
func TestMineUpdatesSummaryEntries(t *testing.T) {
	m, fake, config := newTestMiner(t)
	fake.output = "1 (3)\n2 (2)\n"
	config.SummaryDir = filepath.Join(filepath.Dir(config.OutputFile), "summaries")

	outcome, result, err := m.Mine(&interfaces.RunRequest{MinSupport: 1, Mode: interfaces.ModeFrequent})
	require.NoError(t, err)
	require.Equal(t, 2, result.Len())

	data, err := os.ReadFile(outcome.SummaryFile)
	require.NoError(t, err)

	var summary utils.RunSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 2, summary.Entries)
	assert.Equal(t, outcome.RunID, summary.RunID)
}

// TestTransactionCount tests the corpus size accessor
func TestTransactionCount(t *testing.T) {
	m, _, _ := newTestMiner(t)
	assert.Equal(t, 5, m.Transactions())
}

// TestSetLoggerRoutesPipelineLogs tests that a replaced logger receives
// the run events
func TestSetLoggerRoutesPipelineLogs(t *testing.T) {
	m, fake, _ := newTestMiner(t)
	fake.output = "1 (1)\n"

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.InfoLevel)
	m.SetLogger(logger)

	_, err := m.Run(&interfaces.RunRequest{MinSupport: 1, Mode: interfaces.ModeFrequent})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Engine run completed")
}
