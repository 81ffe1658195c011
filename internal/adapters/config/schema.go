package config

// Kilnfile represents the structure of the kiln.yaml project file.
type Kilnfile struct {
	Project    string            `yaml:"project"`
	SourceDir  string            `yaml:"source_dir"`
	Extensions []string          `yaml:"extensions"`
	Ignore     []string          `yaml:"ignore"`
	Executable string            `yaml:"executable"`
	Defines    map[string]string `yaml:"defines"`
	Tools      *ToolsDTO         `yaml:"tools"`
}

// ToolsDTO overrides the candidate executables probed for the source tools.
type ToolsDTO struct {
	Formatter []string `yaml:"formatter"`
	Linter    []string `yaml:"linter"`
}
