package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with NO_COLOR set for deterministic output.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("Configuring project...") },
			goldenName: "info_basic",
		},
		{
			name:       "info multiline",
			log:        func(l *logger.Logger) { l.Info("line1\nline2") },
			goldenName: "info_multiline",
		},
		{
			name:       "success",
			log:        func(l *logger.Logger) { l.Success("All done!") },
			goldenName: "success_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("Ninja not found, falling back to Unix Makefiles") },
			goldenName: "warn_basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        errors.New("Build failed"),
			goldenName: "error_basic",
		},
		{
			name:       "stage error",
			err:        domain.NewStageError(domain.StageLint, domain.ErrPreconditionMissing, "compile_commands.json not found"),
			goldenName: "error_stage",
		},
		{
			name:       "zerr chain",
			err:        zerr.Wrap(errors.New("underlying cause"), "wrapped message"),
			goldenName: "error_chain_zerr_two",
		},
		{
			name:       "zerr metadata",
			err:        zerr.With(zerr.New("invalid define, expected KEY=VALUE"), "define", "NOVALUE"),
			goldenName: "error_metadata_single",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	// fmt.Errorf chains are printed as a single message.
	inner := errors.New("connection refused")
	outer := fmt.Errorf("failed to launch cmake: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "✗ Error: failed to launch cmake: connection refused\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(errors.New("test error message"))
	lg.Success("done")

	out := buf.String()
	assert.Contains(t, out, `"error":"test error message"`)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"level":"SUCCESS"`)
	assert.NotContains(t, out, "✗")
}

func TestLogger_SetOutput_PreservesJSON(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	env := map[string]string{logger.FormatEnv: "JSON"}
	lg := logger.FromEnv(func(k string) string { return env[k] }).(*logger.Logger)
	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("configuring")
	assert.Contains(t, buf.String(), `"msg":"configuring"`)

	lg = logger.FromEnv(func(string) string { return "" }).(*logger.Logger)
	buf.Reset()
	lg.SetOutput(buf)
	lg.Info("configuring")
	assert.Equal(t, "configuring\n", buf.String())
}
