package ports

import "go.trai.ch/kiln/internal/core/domain"

// PlatformProfile abstracts the per-OS differences of the native toolchain.
//
//go:generate mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformProfile interface {
	// Platform returns the operating system family the profile describes.
	Platform() domain.Platform

	// GeneratorPreference returns generators in preference order.
	// The last entry is the fallback and is used without probing.
	GeneratorPreference() []domain.Generator

	// Generator describes the named generator on this platform.
	Generator(name string) domain.Generator

	// GeneratorChoices lists the generator names accepted as an override.
	// An empty list accepts any name.
	GeneratorChoices() []string

	// IsMultiConfig reports whether the named generator selects the build type at build time.
	IsMultiConfig(generator string) bool

	// ExecutableSuffix is the platform's executable file extension, if any.
	ExecutableSuffix() string

	// ExecutableName appends the executable suffix to base.
	ExecutableName(base string) string

	// SupportsSourceTools reports whether the format and lint stages are available.
	SupportsSourceTools() bool
}
