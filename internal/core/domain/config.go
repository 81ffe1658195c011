package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// PipelineConfig is the immutable description of one invocation, built once from CLI input.
type PipelineConfig struct {
	BuildType BuildType
	BuildDir  string
	// Generator is the requested generator override. Empty means "resolve automatically".
	Generator string
	Jobs      int
	Target    string
	Defines   map[string]string

	Clean         bool
	Run           bool
	Install       bool
	Verbose       bool
	ConfigureOnly bool
	BuildOnly     bool
	Format        bool
	Lint          bool
	LintFix       bool
}

// Validate checks the invariants of the configuration.
func (c PipelineConfig) Validate() error {
	if !c.BuildType.Valid() {
		return zerr.With(ErrInvalidBuildType, "build_type", string(c.BuildType))
	}
	if c.Jobs < 1 {
		return zerr.With(ErrInvalidJobs, "jobs", c.Jobs)
	}
	if c.ConfigureOnly && c.BuildOnly {
		return ErrConflictingModes
	}
	for k := range c.Defines {
		if strings.TrimSpace(k) == "" {
			return ErrInvalidDefine
		}
	}
	return nil
}

// LintRequested reports whether the lint stage should run, with or without fixes.
func (c PipelineConfig) LintRequested() bool {
	return c.Lint || c.LintFix
}

// BuildPathRequested reports whether any stage after the utility stages was asked for explicitly.
// When it is false, a requested format or lint stage ends the run.
func (c PipelineConfig) BuildPathRequested() bool {
	return c.ConfigureOnly || c.BuildOnly || c.Install || c.Run
}

// UtilityOnly reports whether the run consists solely of format and/or lint.
func (c PipelineConfig) UtilityOnly() bool {
	return (c.Format || c.LintRequested()) && !c.BuildPathRequested()
}

// SortedDefines returns the define keys in lexical order.
func (c PipelineConfig) SortedDefines() []string {
	return slices.Sorted(maps.Keys(c.Defines))
}

// ParseDefine splits a KEY=VALUE cache entry.
func ParseDefine(s string) (string, string, error) {
	k, v, ok := strings.Cut(s, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", "", zerr.With(ErrInvalidDefine, "define", s)
	}
	return k, v, nil
}
