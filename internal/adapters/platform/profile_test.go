package platform_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/platform"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

var _ ports.PlatformProfile = (*platform.Profile)(nil)

func names(gens []domain.Generator) []string {
	out := make([]string, 0, len(gens))
	for _, g := range gens {
		out = append(out, g.Name)
	}
	return out
}

func TestProfiles(t *testing.T) {
	tests := []struct {
		platform     domain.Platform
		preference   []string
		suffix       string
		sourceTools  bool
		defaultMulti bool
	}{
		{domain.PlatformLinux, []string{"Ninja", "Unix Makefiles"}, "", true, false},
		{domain.PlatformMacOS, []string{"Ninja", "Unix Makefiles"}, "", true, false},
		{domain.PlatformWindows, []string{"Ninja", ""}, ".exe", false, true},
		{domain.PlatformUnknown, []string{"Ninja", ""}, "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			p := platform.ForPlatform(tt.platform)

			assert.Equal(t, tt.platform, p.Platform())
			assert.Equal(t, tt.preference, names(p.GeneratorPreference()))
			assert.Equal(t, tt.suffix, p.ExecutableSuffix())
			assert.Equal(t, tt.sourceTools, p.SupportsSourceTools())
			assert.Equal(t, tt.defaultMulti, p.IsMultiConfig(""))
			assert.True(t, p.IsMultiConfig(domain.GeneratorNinjaMulti))
			assert.False(t, p.IsMultiConfig(domain.GeneratorNinja))
		})
	}
}

func TestProfile_GeneratorPreference_Probes(t *testing.T) {
	prefs := platform.ForPlatform(domain.PlatformLinux).GeneratorPreference()
	assert.Equal(t, "ninja", prefs[0].Probe)
	assert.Equal(t, "make", prefs[1].Probe)
	assert.False(t, prefs[1].MultiConfig)

	win := platform.ForPlatform(domain.PlatformWindows).GeneratorPreference()
	assert.True(t, win[1].IsDefault())
	assert.True(t, win[1].MultiConfig, "the Visual Studio default is multi-config")
	assert.Empty(t, win[1].ProbeCandidates())
}

func TestProfile_Generator(t *testing.T) {
	p := platform.ForPlatform(domain.PlatformMacOS)

	xcode := p.Generator(domain.GeneratorXcode)
	assert.True(t, xcode.MultiConfig)
	assert.Equal(t, "xcodebuild", xcode.Probe)
	assert.Contains(t, p.GeneratorChoices(), domain.GeneratorXcode)
	assert.NotContains(t, platform.ForPlatform(domain.PlatformLinux).GeneratorChoices(), domain.GeneratorXcode)
	assert.Empty(t, platform.ForPlatform(domain.PlatformUnknown).GeneratorChoices())
}

func TestProfile_ExecutableName(t *testing.T) {
	assert.Equal(t, "bin/RealmEngine", platform.ForPlatform(domain.PlatformLinux).ExecutableName("bin/RealmEngine"))

	win := platform.ForPlatform(domain.PlatformWindows)
	assert.Equal(t, `bin\RealmEngine.exe`, win.ExecutableName(`bin\RealmEngine`))
	assert.Equal(t, `bin\RealmEngine.EXE`, win.ExecutableName(`bin\RealmEngine.EXE`))
}

func TestDetect(t *testing.T) {
	assert.Equal(t, domain.PlatformFromGOOS(runtime.GOOS), platform.Detect().Platform())
}
