package ports

// SourceWalker discovers source files in the managed source tree.
//
//go:generate mockgen -source=sources.go -destination=mocks/mock_sources.go -package=mocks
type SourceWalker interface {
	// FindSources returns, in lexical order, every file below dir whose extension is in
	// extensions. Files and directories whose base name matches an ignore pattern are skipped.
	FindSources(dir string, extensions, ignore []string) ([]string, error)
}

// Hasher fingerprints file content.
//
//go:generate mockgen -source=sources.go -destination=mocks/mock_sources.go -package=mocks
type Hasher interface {
	// HashFile returns a content fingerprint of the file at path.
	HashFile(path string) (string, error)
}
