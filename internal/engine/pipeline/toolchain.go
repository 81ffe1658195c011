package pipeline

import (
	"fmt"

	"go.trai.ch/kiln/internal/core/domain"
)

// ResolveToolchain picks the generator and locates the optional tools for one run.
// It never fails: a missing preferred generator falls back to the next one.
func (p *Pipeline) ResolveToolchain(cfg domain.PipelineConfig, project domain.Project) domain.ResolvedToolchain {
	tc := domain.ResolvedToolchain{ExecutableSuffix: p.profile.ExecutableSuffix()}
	tc.Generator, tc.BuildTool = p.resolveGenerator(cfg.Generator)

	if p.profile.SupportsSourceTools() {
		if cfg.Format {
			tc.Formatter, _ = p.resolver.Find(project.Formatters)
		}
		if cfg.LintRequested() {
			tc.Linter, _ = p.resolver.Find(project.Linters)
		}
	}

	return tc
}

// resolveGenerator returns the generator to configure with and, for ninja-based
// generators, the resolved ninja executable. Every fallback warning names the
// generator tried next.
func (p *Pipeline) resolveGenerator(requested string) (domain.Generator, string) {
	chain := p.fallbackChain(requested)

	if requested != "" {
		gen := p.profile.Generator(requested)
		if tool, ok := p.probe(gen); ok {
			return gen, tool
		}
		p.logger.Warn(fmt.Sprintf("%s not found, falling back to %s", requested, chain[0].DisplayName()))
	}

	last := len(chain) - 1
	for i, gen := range chain[:last] {
		if tool, ok := p.probe(gen); ok {
			return gen, tool
		}
		p.logger.Warn(fmt.Sprintf("%s not found, falling back to %s", gen.DisplayName(), chain[i+1].DisplayName()))
	}

	// The last entry is used without probing.
	return chain[last], ""
}

// fallbackChain is the preference list without the requested generator. When the
// requested generator was the unprobed fallback itself, CMake's platform default
// takes its place so the chain still ends in a generator that needs no probe.
func (p *Pipeline) fallbackChain(requested string) []domain.Generator {
	prefs := p.profile.GeneratorPreference()
	if requested == "" && len(prefs) > 0 {
		return prefs
	}

	chain := make([]domain.Generator, 0, len(prefs)+1)
	for _, gen := range prefs {
		if gen.Name != requested {
			chain = append(chain, gen)
		}
	}
	if len(chain) == 0 || len(prefs) > 0 && prefs[len(prefs)-1].Name == requested {
		chain = append(chain, domain.Generator{MultiConfig: p.profile.IsMultiConfig("")})
	}
	return chain
}

// probe reports whether gen is usable, returning the probed executable when it is ninja.
func (p *Pipeline) probe(gen domain.Generator) (string, bool) {
	candidates := gen.ProbeCandidates()
	if len(candidates) == 0 {
		return "", true
	}
	path, ok := p.resolver.Find(candidates)
	if !ok {
		return "", false
	}
	if gen.UsesNinja() {
		return path, true
	}
	return "", true
}
