package domain

import (
	"fmt"
	"strings"
)

// RunOptions controls how a single external command is executed.
type RunOptions struct {
	// CaptureOutput buffers stdout and stderr instead of streaming them to the terminal.
	CaptureOutput bool
	// WorkingDir is the directory the command runs in. Empty means the current directory.
	WorkingDir string
	// AllowNonZeroExit returns a non-zero exit as a result instead of a failure.
	AllowNonZeroExit bool
}

// CommandResult is the outcome of one process execution.
type CommandResult struct {
	ExitCode int
	// Stdout and Stderr are only populated when output was captured.
	Stdout string
	Stderr string
}

// Succeeded reports whether the process exited with status zero.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}

// Combined returns stdout followed by stderr.
func (r CommandResult) Combined() string {
	return r.Stdout + r.Stderr
}

// CommandError describes a command that could not be launched or that exited non-zero.
// Kind is ErrExecutionFailed or ErrNonZeroExit, so callers can use errors.Is.
type CommandError struct {
	Argv     []string
	ExitCode int
	Kind     error
	Err      error
}

func (e *CommandError) Error() string {
	cmd := strings.Join(e.Argv, " ")
	if e.Kind == ErrNonZeroExit {
		return fmt.Sprintf("command failed with exit code %d: %s", e.ExitCode, cmd)
	}
	if e.Err != nil {
		return fmt.Sprintf("command could not be executed: %s: %v", cmd, e.Err)
	}
	return "command could not be executed: " + cmd
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *CommandError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
