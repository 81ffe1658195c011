// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ProfileFunc selects the color profile for a new output.
type ProfileFunc func() termenv.Profile

// ColorProfile returns the color profile for interactive terminals.
// NO_COLOR forces Ascii; otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the color profile for CI logs.
// NO_COLOR forces Ascii; otherwise plain 16-color ANSI is used, which every CI log viewer renders.
func ColorProfileANSI() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// PlainProfile never emits escape codes.
func PlainProfile() termenv.Profile {
	return termenv.Ascii
}

// New creates a new termenv.Output using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a new termenv.Output with a custom profile selector.
// A nil writer defaults to stderr, where all diagnostics go.
func NewWithProfile(w io.Writer, profileFn ProfileFunc, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	if profileFn == nil {
		profileFn = ColorProfile
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}
