package domain

import "go.trai.ch/zerr"

var (
	// ErrToolMissing is returned when an optional external tool cannot be found on the search path.
	ErrToolMissing = zerr.New("required tool not found")

	// ErrPreconditionMissing is returned when a required input artifact (e.g. the compilation database) is absent.
	ErrPreconditionMissing = zerr.New("precondition not met")

	// ErrExecutionFailed is returned when an external command could not be launched at all.
	ErrExecutionFailed = zerr.New("command could not be executed")

	// ErrNonZeroExit is returned when an external command ran and exited with a non-zero status.
	ErrNonZeroExit = zerr.New("command exited with non-zero status")

	// ErrUnsupportedPlatform is returned when a stage is not available on the detected platform.
	ErrUnsupportedPlatform = zerr.New("not supported on this platform")

	// ErrEmptyCommand is returned when a command with no arguments is passed to the runner.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrInvalidBuildType is returned when a build type is not one of the known CMake build types.
	ErrInvalidBuildType = zerr.New("invalid build type, expected one of Debug, Release, RelWithDebInfo, MinSizeRel")

	// ErrInvalidJobs is returned when the requested parallelism is not a positive integer.
	ErrInvalidJobs = zerr.New("jobs must be a positive integer")

	// ErrInvalidGenerator is returned when a generator is not available on the detected platform.
	ErrInvalidGenerator = zerr.New("generator not supported on this platform")

	// ErrInvalidDefine is returned when a cache entry is not in KEY=VALUE form.
	ErrInvalidDefine = zerr.New("invalid define, expected KEY=VALUE")

	// ErrConflictingModes is returned when configure-only and build-only are requested together.
	ErrConflictingModes = zerr.New("--configure and --build are mutually exclusive")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrInvalidProjectName is returned when the project name in the project file is not a plain identifier.
	ErrInvalidProjectName = zerr.New("invalid project name")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrCleanFailed is returned when the build directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean build directory")

	// ErrBuildDirCreateFailed is returned when the build directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrStagesFailed is returned when one or more stages failed without aborting the pipeline.
	ErrStagesFailed = zerr.New("one or more stages failed")

	// ErrPipelineAborted is returned when a fatal stage failure aborted the pipeline.
	ErrPipelineAborted = zerr.New("pipeline aborted")
)
