package domain

import "strings"

// Well-known CMake generator names.
const (
	GeneratorNinja            = "Ninja"
	GeneratorNinjaMulti       = "Ninja Multi-Config"
	GeneratorUnixMakefiles    = "Unix Makefiles"
	GeneratorNMakeMakefiles   = "NMake Makefiles"
	GeneratorXcode            = "Xcode"
	GeneratorVisualStudio2022 = "Visual Studio 17 2022"
	GeneratorVisualStudio2019 = "Visual Studio 16 2019"
)

// Generator is a build-file-producing backend selectable at configure time.
type Generator struct {
	// Name is the value passed to cmake -G. Empty selects CMake's platform default.
	Name string
	// Probe is the executable whose presence makes the generator usable.
	// Empty means the generator is always considered available.
	Probe string
	// MultiConfig reports whether the build type is chosen at build time.
	MultiConfig bool
}

// IsDefault reports whether the generator defers to CMake's platform default.
func (g Generator) IsDefault() bool {
	return g.Name == ""
}

// UsesNinja reports whether builds can be driven by invoking ninja directly.
func (g Generator) UsesNinja() bool {
	return g.Name == GeneratorNinja || g.Name == GeneratorNinjaMulti
}

// ProbeCandidates returns the executables to look for, in order, when checking availability.
// It is empty for generators that need no probe.
func (g Generator) ProbeCandidates() []string {
	if g.UsesNinja() {
		return NinjaCandidates()
	}
	if g.Probe == "" {
		return nil
	}
	return []string{g.Probe}
}

// DisplayName returns the name shown to the user.
func (g Generator) DisplayName() string {
	if g.IsDefault() {
		return "default"
	}
	return g.Name
}

// IsMultiConfigName reports whether the named generator selects the build type at build time.
// The empty (platform default) name is not multi-config here; profiles decide that case.
func IsMultiConfigName(name string) bool {
	switch {
	case strings.HasPrefix(name, "Visual Studio"):
		return true
	case name == GeneratorXcode, name == GeneratorNinjaMulti:
		return true
	default:
		return false
	}
}

// ProbeFor returns the executable probed to decide whether the named generator is usable.
func ProbeFor(name string) string {
	switch name {
	case GeneratorNinja, GeneratorNinjaMulti:
		return "ninja"
	case GeneratorUnixMakefiles:
		return "make"
	case GeneratorNMakeMakefiles:
		return "nmake"
	case GeneratorXcode:
		return "xcodebuild"
	default:
		return ""
	}
}

// NinjaCandidates are the names ninja is installed under across distributions.
func NinjaCandidates() []string {
	return []string{"ninja", "ninja-build"}
}
