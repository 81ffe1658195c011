package pipeline

import (
	"strconv"

	"go.trai.ch/kiln/internal/core/domain"
)

const cmakeBin = "cmake"

func configureArgs(cfg domain.PipelineConfig, root, buildDir string, gen domain.Generator) []string {
	argv := []string{cmakeBin, "-S", root, "-B", buildDir}
	if !gen.IsDefault() {
		argv = append(argv, "-G", gen.Name)
	}
	if !gen.MultiConfig {
		argv = append(argv, "-DCMAKE_BUILD_TYPE="+string(cfg.BuildType))
	}
	argv = append(argv, "-DCMAKE_EXPORT_COMPILE_COMMANDS=ON")
	for _, key := range cfg.SortedDefines() {
		argv = append(argv, "-D"+key+"="+cfg.Defines[key])
	}
	if cfg.Verbose {
		argv = append(argv, "-DCMAKE_VERBOSE_MAKEFILE=ON")
	}
	return argv
}

func buildArgs(cfg domain.PipelineConfig, buildDir string, tc domain.ResolvedToolchain) []string {
	jobs := strconv.Itoa(cfg.Jobs)
	if tc.DirectBuild() {
		argv := []string{tc.BuildTool, "-C", buildDir, "-j", jobs}
		if cfg.Target != "" {
			argv = append(argv, cfg.Target)
		}
		return argv
	}

	argv := []string{cmakeBin, "--build", buildDir, "-j", jobs}
	if cfg.Target != "" {
		argv = append(argv, "--target", cfg.Target)
	}
	if tc.Generator.MultiConfig {
		argv = append(argv, "--config", string(cfg.BuildType))
	}
	return argv
}

func installArgs(cfg domain.PipelineConfig, buildDir string, tc domain.ResolvedToolchain) []string {
	if tc.DirectBuild() {
		return []string{tc.BuildTool, "-C", buildDir, "install"}
	}
	argv := []string{cmakeBin, "--build", buildDir, "--target", "install"}
	if tc.Generator.MultiConfig {
		argv = append(argv, "--config", string(cfg.BuildType))
	}
	return argv
}

func formatArgs(formatter, file string) []string {
	return []string{formatter, "-i", file}
}

func lintArgs(linter, buildDir, file string, fix bool) []string {
	argv := []string{linter, "-p", buildDir}
	if fix {
		argv = append(argv, "--fix", "--fix-errors")
	}
	return append(argv, file)
}
