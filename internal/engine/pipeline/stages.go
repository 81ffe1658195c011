package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/filter"
)

func (p *Pipeline) clean(_ context.Context, r *run, span ports.Span) domain.StageOutcome {
	span.SetAttribute("build_dir", r.buildDir)

	if isWithin(r.project.Root, r.buildDir) {
		return p.abort(domain.NewStageError(domain.StageClean, domain.ErrCleanFailed,
			"refusing to remove "+r.buildDir+", it contains the project"))
	}

	if _, err := os.Stat(r.buildDir); errors.Is(err, os.ErrNotExist) {
		return domain.Succeeded()
	}

	p.logger.Info("Cleaning build directory: " + r.cfg.BuildDir)
	if err := os.RemoveAll(r.buildDir); err != nil {
		return p.abort(domain.NewStageError(domain.StageClean, domain.ErrCleanFailed, "").WithCause(err))
	}
	return domain.Succeeded()
}

func (p *Pipeline) format(ctx context.Context, r *run, span ports.Span) domain.StageOutcome {
	// Format ends the run only when lint will not follow.
	terminal := r.cfg.UtilityOnly() && !r.cfg.LintRequested()

	if outcome, ok := p.checkSourceTool(domain.StageFormat, r.toolchain.Formatter, r.project.Formatters); !ok {
		return outcome.Complete(terminal)
	}

	p.logger.Info("Formatting source files...")
	files, outcome, ok := p.collectSources(r, domain.StageFormat)
	if !ok {
		return outcome.Complete(terminal)
	}
	if len(files) == 0 {
		p.logger.Warn("No source files found to format")
		return domain.Succeeded().Complete(terminal)
	}

	var changed, failed int
	for _, file := range files {
		if r.cfg.Verbose {
			p.logger.Info("  Formatting " + p.relative(r, file))
		}

		before, hashErr := p.hasher.HashFile(file)

		res, err := p.runner.Run(ctx, formatArgs(r.toolchain.Formatter, file), domain.RunOptions{
			CaptureOutput:    true,
			WorkingDir:       r.project.Root,
			AllowNonZeroExit: true,
		})
		if err != nil {
			return p.abort(domain.NewStageError(domain.StageFormat, domain.ErrExecutionFailed, "").WithCause(err))
		}
		if !res.Succeeded() {
			failed++
			p.writeCaptured(res)
			continue
		}

		after, err := p.hasher.HashFile(file)
		if hashErr != nil || err != nil || before != after {
			changed++
		}
	}

	span.SetAttribute("files", len(files))
	span.SetAttribute("changed", changed)

	if failed > 0 {
		return p.fail(domain.NewStageError(domain.StageFormat, domain.ErrNonZeroExit,
			fmt.Sprintf("Formatting failed for %d file(s)", failed))).Complete(terminal)
	}

	p.logger.Success(fmt.Sprintf("Formatting completed (%d of %d file(s) changed)", changed, len(files)))
	return domain.Succeeded().Complete(terminal)
}

func (p *Pipeline) lint(ctx context.Context, r *run, span ports.Span) domain.StageOutcome {
	terminal := r.cfg.UtilityOnly()

	if outcome, ok := p.checkSourceTool(domain.StageLint, r.toolchain.Linter, r.project.Linters); !ok {
		return outcome.Complete(terminal)
	}

	if _, err := os.Stat(domain.CompileCommandsPath(r.buildDir)); err != nil {
		outcome := p.fail(domain.NewStageError(domain.StageLint, domain.ErrPreconditionMissing,
			domain.CompileCommandsFile+" not found"))
		p.logger.Info("Please build the project first to generate " + domain.CompileCommandsFile)
		p.logger.Info("Run: kiln --configure")
		return outcome.Complete(terminal)
	}

	p.logger.Info("Running " + filepath.Base(r.toolchain.Linter) + "...")
	files, outcome, ok := p.collectSources(r, domain.StageLint)
	if !ok {
		return outcome.Complete(terminal)
	}
	if len(files) == 0 {
		p.logger.Warn("No source files found to lint")
		return domain.Succeeded().Complete(terminal)
	}

	fix := r.cfg.LintFix
	var issues int
	for _, file := range files {
		if r.cfg.Verbose {
			p.logger.Info("  Linting " + p.relative(r, file))
		}

		res, err := p.runner.Run(ctx, lintArgs(r.toolchain.Linter, r.buildDir, file, fix), domain.RunOptions{
			CaptureOutput:    true,
			WorkingDir:       r.project.Root,
			AllowNonZeroExit: true,
		})
		if err != nil {
			return p.abort(domain.NewStageError(domain.StageLint, domain.ErrExecutionFailed, "").WithCause(err))
		}
		if !res.Succeeded() {
			issues++
			p.writeCaptured(res)
		}
	}

	span.SetAttribute("files", len(files))
	span.SetAttribute("issues", issues)

	if issues > 0 {
		return p.fail(domain.NewStageError(domain.StageLint, domain.ErrNonZeroExit,
			fmt.Sprintf("Linting found issues in %d file(s)", issues))).Complete(terminal)
	}

	mode := "checked"
	if fix {
		mode = "fixed"
	}
	p.logger.Success("Linting " + mode + " - no issues found")
	return domain.Succeeded().Complete(terminal)
}

func (p *Pipeline) configure(ctx context.Context, r *run, span ports.Span) domain.StageOutcome {
	gen := r.toolchain.Generator
	span.SetAttribute("generator", gen.DisplayName())
	span.SetAttribute("build_type", string(r.cfg.BuildType))

	p.logger.Info("Configuring CMake...")
	p.logger.Info("  Build type: " + string(r.cfg.BuildType))
	p.logger.Info("  Generator: " + gen.DisplayName())
	p.logger.Info("  Build directory: " + r.cfg.BuildDir)

	if err := os.MkdirAll(r.buildDir, domain.DirPerm); err != nil {
		return p.abort(domain.NewStageError(domain.StageConfigure, domain.ErrBuildDirCreateFailed, "").WithCause(err))
	}

	argv := configureArgs(r.cfg, r.project.Root, r.buildDir, gen)
	if _, err := p.runner.Run(ctx, argv, domain.RunOptions{
		CaptureOutput: !r.cfg.Verbose,
		WorkingDir:    r.project.Root,
	}); err != nil {
		return p.abortCommand(domain.StageConfigure, err)
	}

	p.logger.Success("CMake configuration completed")
	if r.cfg.ConfigureOnly {
		p.logger.Success("Configuration complete. Exiting.")
		return domain.Succeeded().Complete(true)
	}
	return domain.Succeeded()
}

func (p *Pipeline) build(ctx context.Context, r *run, span ports.Span) domain.StageOutcome {
	if r.cfg.BuildOnly {
		if _, err := os.Stat(r.buildDir); err != nil {
			outcome := p.abort(domain.NewStageError(domain.StageBuild, domain.ErrPreconditionMissing,
				"build directory "+r.cfg.BuildDir+" not found"))
			p.logger.Info("Run: kiln --configure")
			return outcome
		}
	}

	p.logger.Info("Building project...")
	p.logger.Info("  Jobs: " + strconv.Itoa(r.cfg.Jobs))
	if r.cfg.Target != "" {
		p.logger.Info("  Target: " + r.cfg.Target)
	}
	span.SetAttribute("jobs", r.cfg.Jobs)

	res, err := p.runner.Run(ctx, buildArgs(r.cfg, r.buildDir, r.toolchain), domain.RunOptions{
		CaptureOutput:    !r.cfg.Verbose,
		WorkingDir:       r.project.Root,
		AllowNonZeroExit: true,
	})
	if err != nil {
		return p.abortCommand(domain.StageBuild, err)
	}

	if !r.cfg.Verbose {
		p.writeFiltered(res.Stdout)
		p.writeFiltered(res.Stderr)
	}

	if !res.Succeeded() {
		return p.abort(domain.NewStageError(domain.StageBuild, domain.ErrNonZeroExit, "Build failed").
			WithCause(&domain.CommandError{
				Argv:     buildArgs(r.cfg, r.buildDir, r.toolchain),
				ExitCode: res.ExitCode,
				Kind:     domain.ErrNonZeroExit,
			}))
	}

	p.logger.Success("Build completed successfully")
	return domain.Succeeded()
}

func (p *Pipeline) install(ctx context.Context, r *run, _ ports.Span) domain.StageOutcome {
	p.logger.Info("Installing...")
	if _, err := p.runner.Run(ctx, installArgs(r.cfg, r.buildDir, r.toolchain), domain.RunOptions{
		WorkingDir: r.project.Root,
	}); err != nil {
		return p.abortCommand(domain.StageInstall, err)
	}
	p.logger.Success("Installation completed")
	return domain.Succeeded()
}

func (p *Pipeline) runExecutable(ctx context.Context, r *run, span ports.Span) domain.StageOutcome {
	exe := r.project.Path(p.profile.ExecutableName(r.project.Executable))
	span.SetAttribute("executable", exe)

	if info, err := os.Stat(exe); err != nil || info.IsDir() {
		outcome := p.fail(domain.NewStageError(domain.StageRun, domain.ErrPreconditionMissing,
			"Executable not found: "+exe))
		p.logger.Info("Build may have failed or executable is in a different location")
		return outcome
	}

	p.logger.Info("Running executable: " + exe)
	p.logger.Info("---")

	res, err := p.runner.Run(ctx, []string{exe}, domain.RunOptions{
		WorkingDir:       r.project.Root,
		AllowNonZeroExit: true,
	})
	if err != nil {
		return p.abortCommand(domain.StageRun, err)
	}
	span.SetAttribute("exit_code", res.ExitCode)

	if !res.Succeeded() {
		return p.fail(domain.NewStageError(domain.StageRun, domain.ErrNonZeroExit,
			fmt.Sprintf("%s exited with code %d", filepath.Base(exe), res.ExitCode)))
	}
	return domain.Succeeded()
}

// checkSourceTool checks that a format or lint stage can run at all.
func (p *Pipeline) checkSourceTool(stage domain.Stage, tool string, candidates []string) (domain.StageOutcome, bool) {
	if !p.profile.SupportsSourceTools() {
		return p.fail(domain.NewStageError(stage, domain.ErrUnsupportedPlatform,
			stage.String()+" is not available on "+p.profile.Platform().String())), false
	}
	if tool == "" {
		name := "the " + stage.String() + " tool"
		if len(candidates) > 0 {
			name = candidates[0]
		}
		err := domain.NewStageError(stage, domain.ErrToolMissing, name+" not found. Please install "+name+".")
		p.logger.Warn(err.Detail)
		return domain.Failed(err), false
	}
	return domain.StageOutcome{}, true
}

func (p *Pipeline) collectSources(r *run, stage domain.Stage) ([]string, domain.StageOutcome, bool) {
	src := r.project.SourcePath()
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return nil, p.fail(domain.NewStageError(stage, domain.ErrPreconditionMissing,
			r.project.SourceDir+" directory not found")), false
	}

	files, err := p.walker.FindSources(src, r.project.Extensions, r.project.Ignore)
	if err != nil {
		return nil, p.fail(domain.NewStageError(stage, domain.ErrPreconditionMissing, "").WithCause(err)), false
	}
	return files, domain.StageOutcome{}, true
}

func (p *Pipeline) fail(err error) domain.StageOutcome {
	p.logger.Error(err)
	return domain.Failed(err)
}

func (p *Pipeline) abort(err error) domain.StageOutcome {
	p.logger.Error(err)
	return domain.Aborted(err)
}

// abortCommand aborts a stage on a runner error.
// Non-zero exits were already surfaced by the runner, so only launch failures are logged here.
func (p *Pipeline) abortCommand(stage domain.Stage, err error) domain.StageOutcome {
	stageErr := domain.NewStageError(stage, domain.ErrExecutionFailed, "").WithCause(err)
	if errors.Is(err, domain.ErrNonZeroExit) {
		stageErr.Reason = domain.ErrNonZeroExit
		return domain.Aborted(stageErr)
	}
	return p.abort(stageErr)
}

func (p *Pipeline) writeFiltered(raw string) {
	for line := range filter.Filter(raw) {
		_, _ = fmt.Fprintln(p.out, line)
	}
}

func (p *Pipeline) writeCaptured(res domain.CommandResult) {
	for _, s := range []string{res.Stdout, res.Stderr} {
		if s == "" {
			continue
		}
		_, _ = io.WriteString(p.out, s)
		if !strings.HasSuffix(s, "\n") {
			_, _ = io.WriteString(p.out, "\n")
		}
	}
}

func (p *Pipeline) relative(r *run, file string) string {
	if rel, err := filepath.Rel(r.project.Root, file); err == nil {
		return rel
	}
	return file
}

// isWithin reports whether dir is root itself or one of its ancestors.
func isWithin(root, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(root))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
