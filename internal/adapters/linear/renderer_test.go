package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/linear"
	"go.trai.ch/kiln/internal/ui/output"
)

func TestRenderer_StageLifecycle(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf, output.PlainProfile)

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.OnStageStart("span1", "configure", start)
	r.OnStageComplete("span1", start.Add(1500*time.Millisecond), nil)

	assert.Equal(t,
		"[configure] Starting...\n"+
			"[configure] ✓ Completed in 1.5s\n",
		buf.String())
}

func TestRenderer_StageFailure(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf, output.PlainProfile)

	start := time.Now()
	r.OnStageStart("span1", "build", start)
	r.OnStageComplete("span1", start.Add(250*time.Millisecond), errors.New("command failed with exit code 1: ninja"))

	assert.Equal(t,
		"[build]     Starting...\n"+
			"[build]     ✗ Failed after 250ms: command failed with exit code 1: ninja\n",
		buf.String())
}

func TestRenderer_UnknownSpan(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf, output.PlainProfile)

	r.OnStageComplete("missing", time.Now(), nil)
	assert.Empty(t, buf.String())
}

func TestRenderer_CompletesOnce(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf, output.PlainProfile)

	now := time.Now()
	r.OnStageStart("span1", "run", now)
	r.OnStageComplete("span1", now, nil)
	r.OnStageComplete("span1", now, nil)

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Completed")))
}
