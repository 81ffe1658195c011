package domain

import "go.trai.ch/zerr"

// BuildType is a CMake build configuration.
type BuildType string

// Known build types.
const (
	BuildDebug          BuildType = "Debug"
	BuildRelease        BuildType = "Release"
	BuildRelWithDebInfo BuildType = "RelWithDebInfo"
	BuildMinSizeRel     BuildType = "MinSizeRel"
)

// BuildTypes returns every known build type in display order.
func BuildTypes() []BuildType {
	return []BuildType{BuildDebug, BuildRelease, BuildRelWithDebInfo, BuildMinSizeRel}
}

// ParseBuildType converts s into a BuildType. Matching is exact, as CMake's is.
func ParseBuildType(s string) (BuildType, error) {
	for _, bt := range BuildTypes() {
		if string(bt) == s {
			return bt, nil
		}
	}
	return "", zerr.With(ErrInvalidBuildType, "build_type", s)
}

// Valid reports whether b is one of the known build types.
func (b BuildType) Valid() bool {
	_, err := ParseBuildType(string(b))
	return err == nil
}

func (b BuildType) String() string {
	return string(b)
}
