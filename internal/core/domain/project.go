package domain

import (
	"path/filepath"
	"slices"
)

// Project describes the layout of the managed project.
type Project struct {
	// Root is the directory kiln was invoked in. Relative paths below are resolved against it.
	Root       string
	Name       string
	SourceDir  string
	Extensions []string
	Ignore     []string
	// Executable is the produced program, relative to Root and without a platform suffix.
	Executable string
	Defines    map[string]string
	Formatters []string
	Linters    []string
}

// DefaultProject returns the project layout used when no project file is present.
func DefaultProject(root string) Project {
	name := filepath.Base(root)
	return Project{
		Root:       root,
		Name:       name,
		SourceDir:  DefaultSourceDir,
		Extensions: DefaultSourceExtensions(),
		Executable: filepath.Join(DefaultExecutableDir, name),
		Formatters: DefaultFormatterCandidates(),
		Linters:    DefaultLinterCandidates(),
	}
}

// Path resolves p against the project root unless it is already absolute.
func (p Project) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Root, rel)
}

// SourcePath returns the absolute source directory.
func (p Project) SourcePath() string {
	return p.Path(p.SourceDir)
}

// HasExtension reports whether path ends in one of the project's source extensions.
func (p Project) HasExtension(path string) bool {
	return slices.Contains(p.Extensions, filepath.Ext(path))
}
