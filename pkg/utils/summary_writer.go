/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: summary_writer.go
Description: Utility for writing run summaries to the summaries directory.
Handles timestamped, run-ID-tagged file naming. Ensures directories exist and
writes JSON files for easy analysis of past mining runs.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
)

// RunSummary is the JSON record persisted after each mining run.
type RunSummary struct {
	RunID        string   `json:"run_id"`
	Mode         string   `json:"mode"`
	ModeFlag     string   `json:"mode_flag"`
	Kind         string   `json:"kind"`
	Args         []string `json:"args"`
	ExitCode     int      `json:"exit_code"`
	DurationMS   int64    `json:"duration_ms"`
	Transactions int      `json:"transactions"`
	Entries      int      `json:"entries"`
	Timestamp    string   `json:"timestamp"`
}

// NewRunSummary builds a summary from a run outcome and the parsed entry
// count. Pass a negative entry count when the run was not read.
func NewRunSummary(outcome *interfaces.RunOutcome, entries int) *RunSummary {
	return &RunSummary{
		RunID:        outcome.RunID,
		Mode:         string(outcome.Mode),
		ModeFlag:     outcome.ModeFlag,
		Kind:         outcome.Kind.String(),
		Args:         outcome.Args,
		ExitCode:     outcome.ExitCode,
		DurationMS:   outcome.Duration.Milliseconds(),
		Transactions: outcome.Transactions,
		Entries:      entries,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
}

// WriteRunSummary writes a summary to dir with a timestamped, run-tagged
// filename and returns the path written.
func WriteRunSummary(dir string, summary *RunSummary) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create summary directory: %w", err)
	}

	// Filename: 2024-06-11_01-30-00_<run id>.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.json", timestamp, summary.RunID)
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write summary file: %w", err)
	}
	return path, nil
}

// AmendRunSummaryEntries rewrites the entry count of an existing summary
// file once the run's output has been parsed.
func AmendRunSummaryEntries(path string, entries int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read summary file: %w", err)
	}

	var summary RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return fmt.Errorf("failed to parse summary file: %w", err)
	}
	summary.Entries = entries

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}
	return nil
}
