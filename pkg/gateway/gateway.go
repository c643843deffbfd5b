// Package gateway runs the external programs the transfer tool depends on
// (the Android debug bridge and the host shell) behind a small interface so
// callers can be tested without spawning processes.
package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Result is the raw outcome of an external command.
type Result struct {
	Stdout  []byte
	Stderr  []byte
	Success bool
}

// Runner executes an external program and collects its output.
//
// A program that starts and exits non-zero is not an error: it is reported
// through Result.Success. Only a program that cannot be started at all yields
// a *ProcessError.
type Runner interface {
	Run(ctx context.Context, executable string, args ...string) (Result, error)
}

// ProcessError reports that an external program could not be launched.
type ProcessError struct {
	Executable string
	Args       []string
	Err        error
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	return fmt.Sprintf("failed to start %s %s: %v", e.Executable, strings.Join(e.Args, " "), e.Err)
}

// Unwrap returns the underlying launch error.
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct {
	Logger zerolog.Logger
}

// NewExecRunner creates a new ExecRunner that logs every invocation to logger.
func NewExecRunner(logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{Logger: logger}
}

// Run starts executable with args, waits for it and returns its captured output.
func (r *ExecRunner) Run(ctx context.Context, executable string, args ...string) (Result, error) {
	var stdoutBuf, stderrBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := Result{
		Stdout:  stdoutBuf.Bytes(),
		Stderr:  stderrBuf.Bytes(),
		Success: err == nil,
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		r.Logger.Debug().Str("exe", executable).Strs("args", args).Err(ctxErr).Msg("command cancelled")
		return result, fmt.Errorf("%s interrupted: %w", executable, ctxErr)
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		r.Logger.Error().Str("exe", executable).Strs("args", args).Err(err).Msg("command failed to start")
		return result, &ProcessError{Executable: executable, Args: args, Err: err}
	}

	r.Logger.Debug().
		Str("exe", executable).
		Strs("args", args).
		Int("exit", cmd.ProcessState.ExitCode()).
		Dur("elapsed", elapsed).
		Int("stdout_bytes", len(result.Stdout)).
		Int("stderr_bytes", len(result.Stderr)).
		Msg("command finished")

	return result, nil
}
