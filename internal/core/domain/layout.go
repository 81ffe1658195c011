package domain

import "path/filepath"

const (
	// ProjectFileName is the name of the optional project configuration file.
	ProjectFileName = "kiln.yaml"

	// DefaultBuildDir is the build directory used when none is given.
	DefaultBuildDir = "build"

	// DefaultSourceDir is the managed source tree walked by the format and lint stages.
	DefaultSourceDir = "src"

	// DefaultExecutableDir is the directory the produced executable is expected in.
	DefaultExecutableDir = "bin"

	// CompileCommandsFile is the compilation database written by the configure stage.
	CompileCommandsFile = "compile_commands.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// DefaultSourceExtensions are the file extensions treated as sources by format and lint.
func DefaultSourceExtensions() []string {
	return []string{".cpp", ".h", ".hpp"}
}

// DefaultFormatterCandidates are the formatter executables probed in order.
func DefaultFormatterCandidates() []string {
	return []string{"clang-format", "clang-format-19", "clang-format-18", "clang-format-17"}
}

// DefaultLinterCandidates are the linter executables probed in order.
func DefaultLinterCandidates() []string {
	return []string{"clang-tidy", "clang-tidy-19", "clang-tidy-18", "clang-tidy-17"}
}

// CompileCommandsPath returns the location of the compilation database inside buildDir.
func CompileCommandsPath(buildDir string) string {
	return filepath.Join(buildDir, CompileCommandsFile)
}
