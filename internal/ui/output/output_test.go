package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	// Without NO_COLOR the result depends on the environment.
	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestColorProfileANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ColorProfileANSI())

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())
}

func TestPlainProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.Ascii, output.PlainProfile())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNewWithProfile(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, output.PlainProfile)

	_, _ = out.WriteString(out.String("plain").Foreground(termenv.ANSIRed).String())
	assert.Equal(t, "plain", buf.String(), "ascii profile strips colors")
}

func TestNewWithProfile_Nil(t *testing.T) {
	// Defaults to stderr and ColorProfile; only checks that it does not panic.
	assert.NotNil(t, output.NewWithProfile(nil, nil))
}
