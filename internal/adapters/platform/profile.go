// Package platform describes how the native toolchain differs between operating systems.
package platform

import (
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

// Profile implements ports.PlatformProfile for one operating system family.
type Profile struct {
	platform    domain.Platform
	preference  []string
	choices     []string
	suffix      string
	sourceTools bool
	// defaultMulti reports whether CMake's platform default generator is multi-config.
	defaultMulti bool
}

// Detect returns the profile of the running operating system.
func Detect() *Profile {
	return ForPlatform(domain.PlatformFromGOOS(runtime.GOOS))
}

// ForPlatform returns the profile of the given platform.
func ForPlatform(p domain.Platform) *Profile {
	switch p {
	case domain.PlatformLinux:
		return &Profile{
			platform:    p,
			preference:  []string{domain.GeneratorNinja, domain.GeneratorUnixMakefiles},
			choices:     []string{domain.GeneratorNinja, domain.GeneratorNinjaMulti, domain.GeneratorUnixMakefiles},
			sourceTools: true,
		}
	case domain.PlatformMacOS:
		return &Profile{
			platform:   p,
			preference: []string{domain.GeneratorNinja, domain.GeneratorUnixMakefiles},
			choices: []string{
				domain.GeneratorNinja, domain.GeneratorNinjaMulti,
				domain.GeneratorUnixMakefiles, domain.GeneratorXcode,
			},
			sourceTools: true,
		}
	case domain.PlatformWindows:
		// The empty name lets CMake pick the newest Visual Studio.
		return &Profile{
			platform:   p,
			preference: []string{domain.GeneratorNinja, ""},
			choices: []string{
				domain.GeneratorNinja, domain.GeneratorNinjaMulti, domain.GeneratorNMakeMakefiles,
				domain.GeneratorVisualStudio2022, domain.GeneratorVisualStudio2019,
			},
			suffix:       ".exe",
			defaultMulti: true,
		}
	default:
		return &Profile{
			platform:    domain.PlatformUnknown,
			preference:  []string{domain.GeneratorNinja, ""},
			sourceTools: true,
		}
	}
}

// Platform returns the operating system family the profile describes.
func (p *Profile) Platform() domain.Platform {
	return p.platform
}

// GeneratorPreference returns the generators to try, best first.
func (p *Profile) GeneratorPreference() []domain.Generator {
	gens := make([]domain.Generator, 0, len(p.preference))
	for _, name := range p.preference {
		gens = append(gens, p.Generator(name))
	}
	return gens
}

// Generator describes the named generator on this platform.
func (p *Profile) Generator(name string) domain.Generator {
	return domain.Generator{
		Name:        name,
		Probe:       domain.ProbeFor(name),
		MultiConfig: p.IsMultiConfig(name),
	}
}

// GeneratorChoices lists the generator names accepted as an override. Empty accepts any.
func (p *Profile) GeneratorChoices() []string {
	return slices.Clone(p.choices)
}

// IsMultiConfig reports whether the named generator selects the build type at build time.
func (p *Profile) IsMultiConfig(generator string) bool {
	if generator == "" {
		return p.defaultMulti
	}
	return domain.IsMultiConfigName(generator)
}

// ExecutableSuffix returns the platform's executable extension.
func (p *Profile) ExecutableSuffix() string {
	return p.suffix
}

// ExecutableName appends the executable suffix unless base already carries it.
func (p *Profile) ExecutableName(base string) string {
	if p.suffix == "" || strings.HasSuffix(strings.ToLower(base), p.suffix) {
		return base
	}
	return base + p.suffix
}

// SupportsSourceTools reports whether format and lint are offered.
// Windows builds never shipped them.
func (p *Profile) SupportsSourceTools() bool {
	return p.sourceTools
}
