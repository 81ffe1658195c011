// Package shell runs external commands for the pipeline.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner attached to the process's standard streams.
func NewRunner(logger ports.Logger) *Runner {
	return NewRunnerWithStreams(logger, os.Stdin, os.Stdout, os.Stderr)
}

// NewRunnerWithStreams creates a Runner whose uncaptured children use the given streams.
func NewRunnerWithStreams(logger ports.Logger, stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes argv and waits for it to exit.
func (r *Runner) Run(ctx context.Context, argv []string, opts domain.RunOptions) (domain.CommandResult, error) {
	if len(argv) == 0 {
		return domain.CommandResult{}, domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is assembled by the pipeline
	cmd.Dir = opts.WorkingDir

	var stdout, stderr bytes.Buffer
	if opts.CaptureOutput {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdin = r.stdin
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
	}

	err := cmd.Run()
	result := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return result, nil
	}

	// A cancelled context kills the child; report it as an interrupted launch, not a tool failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, &domain.CommandError{Argv: argv, ExitCode: -1, Kind: domain.ErrExecutionFailed, Err: ctxErr}
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		result.ExitCode = -1
		return result, &domain.CommandError{Argv: argv, ExitCode: -1, Kind: domain.ErrExecutionFailed, Err: err}
	}

	result.ExitCode = exitErr.ExitCode()
	if opts.AllowNonZeroExit {
		return result, nil
	}

	r.logger.Error(zerr.With(zerr.New("Command failed: "+strings.Join(argv, " ")), "exit_code", result.ExitCode))
	if opts.CaptureOutput {
		r.surface(result)
	}

	return result, &domain.CommandError{Argv: argv, ExitCode: result.ExitCode, Kind: domain.ErrNonZeroExit}
}

// surface writes captured output to the terminal so a failure never hides it.
func (r *Runner) surface(result domain.CommandResult) {
	if result.Stdout != "" {
		_, _ = io.WriteString(r.stdout, ensureNewline(result.Stdout))
	}
	if result.Stderr != "" {
		_, _ = io.WriteString(r.stderr, ensureNewline(result.Stderr))
	}
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
