/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: invoker.go
Description: Process invoker for the Akaylee Miner. Spawns the external mining
engine with an explicit argument vector, captures standard output and error for
logging, and returns the verbatim exit code. Exit code significance is the
caller's decision; this layer only reports what the process did.
*/

package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
)

// EngineInvoker implements the Invoker interface over os/exec. The engine
// blocks until completion; Timeout of zero means no limit, matching the
// reference behavior.
type EngineInvoker struct {
	Timeout time.Duration
	logger  *logrus.Logger
}

// NewEngineInvoker creates a new engine invoker instance.
func NewEngineInvoker(timeout time.Duration, logger *logrus.Logger) *EngineInvoker {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &EngineInvoker{Timeout: timeout, logger: logger}
}

// SetLogger replaces the logger used for invocation debug logs.
func (e *EngineInvoker) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// Invoke runs program with args and waits for completion. A non-zero exit
// code is not an error: it is surfaced unchanged on the result. The error
// return covers spawn failures and timeout kills only. Captured stdio is
// teed into the debug log rather than discarded.
func (e *EngineInvoker) Invoke(program string, args []string) (*interfaces.InvocationResult, error) {
	ctx := context.Background()
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, program, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	start := time.Now()
	err := cmd.Run()
	result := &interfaces.InvocationResult{
		Stdout:   outBuf.Bytes(),
		Stderr:   errBuf.Bytes(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctx.Err() == context.DeadlineExceeded {
				return result, fmt.Errorf("engine timed out after %s: %w", e.Timeout, ctx.Err())
			}
			result.ExitCode = exitErr.ExitCode()
		} else {
			return result, fmt.Errorf("failed to run engine %s: %w", program, err)
		}
	}

	e.logger.WithFields(logrus.Fields{
		"program":   program,
		"args":      args,
		"exit_code": result.ExitCode,
		"duration":  result.Duration,
		"stdout":    len(result.Stdout),
		"stderr":    len(result.Stderr),
	}).Debug("Engine invocation completed")

	if len(result.Stderr) > 0 {
		e.logger.WithField("stderr", string(result.Stderr)).Debug("Engine stderr")
	}
	return result, nil
}
