package detector_test

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	tests := []struct {
		ciValue string
		want    bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("CI="+tt.ciValue, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, tt.want, detector.DetectEnvironment().CI)
		})
	}
}

func TestEnvironment_ColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	assert.Equal(t, termenv.ANSI, detector.Environment{CI: true}.ColorProfile()())
	assert.Equal(t, termenv.ANSI, detector.Environment{CI: true, TTY: true}.ColorProfile()())
	assert.Equal(t, termenv.Ascii, detector.Environment{}.ColorProfile()())

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, detector.Environment{TTY: true}.ColorProfile()())
}
