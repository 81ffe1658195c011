// Package detector inspects the terminal environment to pick an output style.
package detector

import (
	"os"

	"go.trai.ch/kiln/internal/ui/output"
	"golang.org/x/term"
)

// Environment describes where kiln's output ends up.
type Environment struct {
	// TTY reports whether stderr is an interactive terminal.
	TTY bool
	// CI reports whether a CI system was detected through the CI variable.
	CI bool
}

// DetectEnvironment inspects stderr and the CI variable.
func DetectEnvironment() Environment {
	return Environment{
		TTY: term.IsTerminal(int(os.Stderr.Fd())),
		CI:  isCI(os.Getenv("CI")),
	}
}

func isCI(v string) bool {
	return v == "true" || v == "1"
}

// ColorProfile returns the profile selector matching the environment.
// CI logs get plain ANSI colors, other non-terminals get none.
func (e Environment) ColorProfile() output.ProfileFunc {
	switch {
	case e.CI:
		return output.ColorProfileANSI
	case !e.TTY:
		return output.PlainProfile
	default:
		return output.ColorProfile
	}
}
