package domain

// ResolvedToolchain is the set of external tools chosen for one run.
// It is derived once from the PipelineConfig, the platform profile and the tool resolver.
type ResolvedToolchain struct {
	Generator Generator
	// BuildTool is the resolved ninja executable when the generator is driven directly.
	// Empty means builds go through "cmake --build".
	BuildTool string
	Formatter string
	Linter    string
	// ExecutableSuffix is appended to produced executable names.
	ExecutableSuffix string
}

// DirectBuild reports whether build and install invoke the build tool directly.
func (t ResolvedToolchain) DirectBuild() bool {
	return t.BuildTool != "" && t.Generator.Name == GeneratorNinja
}
