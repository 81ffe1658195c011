package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
}

func newRunner(t *testing.T) (*shell.Runner, *mocks.MockLogger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	var stdout, stderr bytes.Buffer
	return shell.NewRunnerWithStreams(log, strings.NewReader(""), &stdout, &stderr), log, &stdout, &stderr
}

func TestRunner_Run_Capture(t *testing.T) {
	skipOnWindows(t)
	runner, _, stdout, _ := newRunner(t)

	res, err := runner.Run(context.Background(),
		[]string{"sh", "-c", "echo building foo; echo warning: bar >&2"},
		domain.RunOptions{CaptureOutput: true})
	require.NoError(t, err)

	assert.True(t, res.Succeeded())
	assert.Equal(t, "building foo\n", res.Stdout)
	assert.Equal(t, "warning: bar\n", res.Stderr)
	assert.Empty(t, stdout.String(), "captured output is not streamed")
}

func TestRunner_Run_Stream(t *testing.T) {
	skipOnWindows(t)
	runner, _, stdout, stderr := newRunner(t)

	res, err := runner.Run(context.Background(),
		[]string{"sh", "-c", "echo out; echo err >&2"},
		domain.RunOptions{})
	require.NoError(t, err)

	assert.Empty(t, res.Stdout)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRunner_Run_WorkingDir(t *testing.T) {
	skipOnWindows(t)
	runner, _, _, _ := newRunner(t)
	dir := t.TempDir()

	res, err := runner.Run(context.Background(), []string{"pwd"},
		domain.RunOptions{CaptureOutput: true, WorkingDir: dir})
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(res.Stdout))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	skipOnWindows(t)
	runner, log, stdout, stderr := newRunner(t)
	log.EXPECT().Error(gomock.Any()).Times(1)

	res, err := runner.Run(context.Background(),
		[]string{"sh", "-c", "echo partial; echo broken >&2; exit 3"},
		domain.RunOptions{CaptureOutput: true})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrNonZeroExit)
	assert.NotErrorIs(t, err, domain.ErrExecutionFailed)
	assert.Equal(t, 3, res.ExitCode)

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 3, cmdErr.ExitCode)

	assert.Equal(t, "partial\n", stdout.String(), "captured output is surfaced on failure")
	assert.Equal(t, "broken\n", stderr.String())
}

func TestRunner_Run_AllowNonZeroExit(t *testing.T) {
	skipOnWindows(t)
	runner, _, stdout, _ := newRunner(t)

	res, err := runner.Run(context.Background(),
		[]string{"sh", "-c", "echo issue; exit 1"},
		domain.RunOptions{CaptureOutput: true, AllowNonZeroExit: true})
	require.NoError(t, err)

	assert.False(t, res.Succeeded())
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, "issue\n", res.Stdout)
	assert.Empty(t, stdout.String())
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	runner, _, _, _ := newRunner(t)

	res, err := runner.Run(context.Background(),
		[]string{"kiln-definitely-not-installed"}, domain.RunOptions{CaptureOutput: true})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrExecutionFailed)
	assert.NotErrorIs(t, err, domain.ErrNonZeroExit)
	assert.Equal(t, -1, res.ExitCode)
}

func TestRunner_Run_NotExecutable(t *testing.T) {
	skipOnWindows(t)
	runner, _, _, _ := newRunner(t)

	path := filepath.Join(t.TempDir(), "tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o600))

	_, err := runner.Run(context.Background(), []string{path}, domain.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrExecutionFailed)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	runner, _, _, _ := newRunner(t)

	_, err := runner.Run(context.Background(), nil, domain.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestRunner_Run_Cancelled(t *testing.T) {
	skipOnWindows(t)
	runner, _, _, _ := newRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, []string{"sh", "-c", "sleep 5"}, domain.RunOptions{CaptureOutput: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.ErrorIs(t, err, domain.ErrExecutionFailed)
}
