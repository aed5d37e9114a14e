/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: miner.go
Description: Mining pipeline orchestration for the Akaylee Miner. Owns the codec
built from the caller's transaction corpus and drives each run through encode,
transaction file write, engine invocation, and result parsing. Single-threaded
and synchronous: a second run rewrites the transaction file and relies on the
engine to rewrite the output file.
*/

package miner

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-miner/pkg/codec"
	"github.com/kleascm/akaylee-miner/pkg/command"
	"github.com/kleascm/akaylee-miner/pkg/execution"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/parser"
	"github.com/kleascm/akaylee-miner/pkg/transaction"
	"github.com/kleascm/akaylee-miner/pkg/utils"
)

// Default engine file names, kept for debugging between runs.
const (
	DefaultTransactionFile = "lcm.dat"
	DefaultOutputFile      = "lcm.out"
)

// enginePointer is appended to the construction error when the engine
// binary is missing.
const enginePointer = "the LCM binary is available at http://research.nii.ac.jp/~uno/codes-j.htm"

// Miner wraps the external mining engine behind a string-labeled API.
// The codec is built once at construction and read-only afterwards.
type Miner struct {
	config       *interfaces.MinerConfig
	codec        *codec.Codec
	transactions [][]string
	encoded      [][]int
	invoker      interfaces.Invoker
	logger       *logrus.Logger
}

// New creates a miner over the full transaction corpus. It fails with a
// ConfigurationError when the engine binary does not exist; only existence
// is checked, matching the engine wrapper convention.
func New(config *interfaces.MinerConfig, transactions [][]string) (*Miner, error) {
	if config == nil || config.EnginePath == "" {
		return nil, &interfaces.ConfigurationError{Reason: "engine path is required"}
	}
	if _, err := os.Stat(config.EnginePath); err != nil {
		return nil, &interfaces.ConfigurationError{
			Path:   config.EnginePath,
			Reason: "engine binary not found; " + enginePointer,
		}
	}
	if config.TransactionFile == "" {
		config.TransactionFile = DefaultTransactionFile
	}
	if config.OutputFile == "" {
		config.OutputFile = DefaultOutputFile
	}

	// The engine convention is one-based item codes.
	c, err := codec.Build(transactions, 1)
	if err != nil {
		return nil, err
	}
	encoded, err := c.EncodeAll(transactions)
	if err != nil {
		return nil, err
	}

	logger := logrus.StandardLogger()
	m := &Miner{
		config:       config,
		codec:        c,
		transactions: transactions,
		encoded:      encoded,
		invoker:      execution.NewEngineInvoker(config.Timeout, logger),
		logger:       logger,
	}

	logger.WithFields(logrus.Fields{
		"vocabulary_size": c.Len(),
		"transactions":    len(transactions),
		"offset":          c.Offset(),
	}).Debug("Codec built")
	return m, nil
}

// SetInvoker replaces the process invoker. Used by tests to substitute a
// fake engine.
func (m *Miner) SetInvoker(invoker interfaces.Invoker) {
	m.invoker = invoker
}

// SetLogger replaces the logger used for pipeline events. The engine
// invoker built at construction follows along, so invocation debug logs
// land in the same place; a custom invoker set via SetInvoker keeps its
// own logging.
func (m *Miner) SetLogger(logger *logrus.Logger) {
	m.logger = logger
	if ei, ok := m.invoker.(*execution.EngineInvoker); ok {
		ei.SetLogger(logger)
	}
}

// Codec returns the codec owning the label/code bijection for this corpus.
func (m *Miner) Codec() *codec.Codec {
	return m.codec
}

// Transactions returns the number of transactions in the corpus the miner
// was built over.
func (m *Miner) Transactions() int {
	return len(m.transactions)
}

// Run executes one mining run: request validation, transaction file write,
// and engine invocation. The returned outcome carries the verbatim engine
// exit code and the result grammar Read must use; a non-zero exit code is
// the caller's to judge.
func (m *Miner) Run(req *interfaces.RunRequest) (*interfaces.RunOutcome, error) {
	// Request validation and rule item encoding happen before any file or
	// process side effect.
	inv, err := command.Build(req, m.codec, m.config.TransactionFile, m.config.OutputFile)
	if err != nil {
		return nil, err
	}

	var written int
	if req.Target != "" {
		targetCode, err := m.codec.EncodeLabel(req.Target)
		if err != nil {
			return nil, err
		}
		written, err = transaction.WriteFiltered(m.config.TransactionFile, m.encoded, targetCode)
		if err != nil {
			return nil, err
		}
	} else {
		written, err = transaction.Write(m.config.TransactionFile, m.encoded)
		if err != nil {
			return nil, err
		}
	}

	result, err := m.invoker.Invoke(m.config.EnginePath, inv.Args)
	if err != nil {
		return nil, fmt.Errorf("engine invocation failed: %w", err)
	}

	outcome := &interfaces.RunOutcome{
		RunID:        uuid.NewString(),
		Kind:         inv.Kind,
		Mode:         req.Mode,
		ModeFlag:     inv.ModeFlag,
		Args:         inv.Args,
		ExitCode:     result.ExitCode,
		Duration:     result.Duration,
		OutputFile:   m.config.OutputFile,
		Transactions: written,
	}

	m.logger.WithFields(logrus.Fields{
		"run_id":       outcome.RunID,
		"mode_flag":    outcome.ModeFlag,
		"exit_code":    outcome.ExitCode,
		"duration":     outcome.Duration,
		"transactions": written,
	}).Info("Engine run completed")

	if m.config.SummaryDir != "" {
		path, err := utils.WriteRunSummary(m.config.SummaryDir, utils.NewRunSummary(outcome, -1))
		if err != nil {
			m.logger.WithError(err).Warn("Failed to write run summary")
		} else {
			outcome.SummaryFile = path
		}
	}
	return outcome, nil
}

// Read parses the engine output for a completed run, dispatching on the
// grammar the outcome recorded. Calling Read without an outcome is a usage
// error, not a silent wrong-grammar parse.
func (m *Miner) Read(outcome *interfaces.RunOutcome) (interfaces.Result, error) {
	if outcome == nil {
		return nil, &interfaces.UsageError{Reason: "read requires the outcome of a prior run"}
	}

	var result interfaces.Result
	var err error
	switch outcome.Kind {
	case interfaces.ResultRules:
		result, err = parser.ParseRuleFile(outcome.OutputFile, m.codec)
	default:
		result, err = parser.ParseFrequencyFile(outcome.OutputFile, m.codec)
	}
	if err != nil {
		return nil, err
	}

	m.logger.WithFields(logrus.Fields{
		"run_id":  outcome.RunID,
		"kind":    outcome.Kind.String(),
		"entries": result.Len(),
	}).Info("Result parsed")
	return result, nil
}

// Mine is the collapsed two-step API: Run followed by Read. The outcome is
// returned alongside the result so the caller can still inspect the exit
// code.
func (m *Miner) Mine(req *interfaces.RunRequest) (*interfaces.RunOutcome, interfaces.Result, error) {
	outcome, err := m.Run(req)
	if err != nil {
		return nil, nil, err
	}
	result, err := m.Read(outcome)
	if err != nil {
		return outcome, nil, err
	}

	// The summary written by Run predates parsing; fill in the real count.
	if outcome.SummaryFile != "" {
		if err := utils.AmendRunSummaryEntries(outcome.SummaryFile, result.Len()); err != nil {
			m.logger.WithError(err).Warn("Failed to update run summary")
		}
	}
	return outcome, result, nil
}
