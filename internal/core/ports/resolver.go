package ports

// ToolResolver locates optional executables on the search path.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ToolResolver interface {
	// Find returns the path of the first candidate present on the search path.
	// Absence is reported through ok and is not an error.
	Find(candidates []string) (path string, ok bool)
}
