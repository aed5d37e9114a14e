/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: summary_writer_test.go
Description: Tests for the run summary writer. Covers directory creation,
file naming, and JSON content round-trip.
*/

package utils_test

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteRunSummary tests writing and re-reading a run summary
func TestWriteRunSummary(t *testing.T) {
	dir := t.TempDir()

	outcome := &interfaces.RunOutcome{
		RunID:        "abc123",
		Kind:         interfaces.ResultRules,
		Mode:         interfaces.ModeClosedFrequent,
		ModeFlag:     "CfRs",
		Args:         []string{"CfRs", "mine.dat", "1", "mine.out"},
		ExitCode:     0,
		Duration:     250 * time.Millisecond,
		Transactions: 10,
	}

	path, err := utils.WriteRunSummary(dir, utils.NewRunSummary(outcome, 4))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_abc123.json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var summary utils.RunSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, "abc123", summary.RunID)
	assert.Equal(t, "closed_frequent", summary.Mode)
	assert.Equal(t, "rules", summary.Kind)
	assert.Equal(t, int64(250), summary.DurationMS)
	assert.Equal(t, 4, summary.Entries)
	assert.Equal(t, 10, summary.Transactions)
}

// TestAmendRunSummaryEntries tests rewriting the entry count after parsing
func TestAmendRunSummaryEntries(t *testing.T) {
	dir := t.TempDir()

	outcome := &interfaces.RunOutcome{RunID: "r2", Mode: interfaces.ModeFrequent}
	path, err := utils.WriteRunSummary(dir, utils.NewRunSummary(outcome, -1))
	require.NoError(t, err)

	require.NoError(t, utils.AmendRunSummaryEntries(path, 12))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var summary utils.RunSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 12, summary.Entries)
	assert.Equal(t, "r2", summary.RunID)

	// A missing file is an error, not a silent no-op
	assert.Error(t, utils.AmendRunSummaryEntries(path+".missing", 1))
}

// TestWriteRunSummaryCreatesDir tests that nested summary dirs are created
func TestWriteRunSummaryCreatesDir(t *testing.T) {
	dir := t.TempDir() + "/nested/summaries"

	outcome := &interfaces.RunOutcome{RunID: "r1", Mode: interfaces.ModeFrequent}
	_, err := utils.WriteRunSummary(dir, utils.NewRunSummary(outcome, 0))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
