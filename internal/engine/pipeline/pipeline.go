// Package pipeline runs the staged build: clean, format, lint, configure, build, install, run.
package pipeline

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// State is the terminal state of a pipeline run.
type State uint8

const (
	// StateCompleted means every requested stage ran, or a terminal stage ended the run early.
	StateCompleted State = iota
	// StateAborted means a fatal stage failure stopped the run.
	StateAborted
)

func (s State) String() string {
	if s == StateAborted {
		return "aborted"
	}
	return "completed"
}

// StageReport is the outcome of one stage that the pipeline reached.
type StageReport struct {
	Stage   domain.Stage
	Outcome domain.StageOutcome
}

// Result describes a finished run.
type Result struct {
	State     State
	Toolchain domain.ResolvedToolchain
	Stages    []StageReport
}

// Outcome returns the outcome of stage, or Skipped if the pipeline never reached it.
func (r Result) Outcome(stage domain.Stage) domain.StageOutcome {
	for _, s := range r.Stages {
		if s.Stage == stage {
			return s.Outcome
		}
	}
	return domain.Skipped()
}

// Pipeline orchestrates the stages of one invocation.
type Pipeline struct {
	runner   ports.CommandRunner
	resolver ports.ToolResolver
	profile  ports.PlatformProfile
	walker   ports.SourceWalker
	hasher   ports.Hasher
	tracer   ports.Tracer
	logger   ports.Logger
	out      io.Writer
}

// New creates a Pipeline. Filtered build output and captured tool output are written to stdout.
func New(
	runner ports.CommandRunner,
	resolver ports.ToolResolver,
	profile ports.PlatformProfile,
	walker ports.SourceWalker,
	hasher ports.Hasher,
	tracer ports.Tracer,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		runner:   runner,
		resolver: resolver,
		profile:  profile,
		walker:   walker,
		hasher:   hasher,
		tracer:   tracer,
		logger:   logger,
		out:      os.Stdout,
	}
}

// WithOutput redirects filtered build output and captured tool output.
func (p *Pipeline) WithOutput(w io.Writer) *Pipeline {
	p.out = w
	return p
}

// Profile returns the platform profile the pipeline was built for.
func (p *Pipeline) Profile() ports.PlatformProfile {
	return p.profile
}

// run holds the state of one invocation.
type run struct {
	cfg       domain.PipelineConfig
	project   domain.Project
	buildDir  string
	toolchain domain.ResolvedToolchain
}

type stageFunc func(ctx context.Context, r *run, span ports.Span) domain.StageOutcome

type stageStep struct {
	stage     domain.Stage
	requested bool
	fn        stageFunc
}

// Run executes the requested stages in order.
//
// A Failed stage is recorded and the run continues; an Aborted stage stops it.
// The returned error is nil only when no stage failed or aborted. It wraps
// domain.ErrPipelineAborted or domain.ErrStagesFailed otherwise.
func (p *Pipeline) Run(ctx context.Context, cfg domain.PipelineConfig, project domain.Project) (Result, error) {
	r := &run{
		cfg:      cfg,
		project:  project,
		buildDir: project.Path(cfg.BuildDir),
	}
	r.toolchain = p.ResolveToolchain(cfg, project)

	result := Result{State: StateCompleted, Toolchain: r.toolchain}
	var failures []error

	for _, step := range p.steps(cfg) {
		if !step.requested {
			continue
		}

		outcome := p.runStage(ctx, r, step)
		result.Stages = append(result.Stages, StageReport{Stage: step.stage, Outcome: outcome})

		switch outcome.Status {
		case domain.StatusAborted:
			result.State = StateAborted
			return result, errors.Join(domain.ErrPipelineAborted, outcome.Err)
		case domain.StatusFailed:
			failures = append(failures, outcome.Err)
		}

		if outcome.Terminal {
			return result, joinFailures(failures)
		}
	}

	if err := joinFailures(failures); err != nil {
		return result, err
	}

	p.logger.Success("All done!")
	return result, nil
}

func (p *Pipeline) runStage(ctx context.Context, r *run, step stageStep) domain.StageOutcome {
	ctx, span := p.tracer.Start(ctx, step.stage.String())
	defer span.End()

	outcome := step.fn(ctx, r, span)
	if outcome.Err != nil {
		span.RecordError(outcome.Err)
	}
	span.SetAttribute("status", outcome.Status.String())
	return outcome
}

func (p *Pipeline) steps(cfg domain.PipelineConfig) []stageStep {
	return []stageStep{
		{domain.StageClean, cfg.Clean, p.clean},
		{domain.StageFormat, cfg.Format, p.format},
		{domain.StageLint, cfg.LintRequested(), p.lint},
		{domain.StageConfigure, !cfg.BuildOnly, p.configure},
		{domain.StageBuild, true, p.build},
		{domain.StageInstall, cfg.Install, p.install},
		{domain.StageRun, cfg.Run, p.runExecutable},
	}
}

func joinFailures(failures []error) error {
	if len(failures) == 0 {
		return nil
	}
	return errors.Join(append([]error{domain.ErrStagesFailed}, failures...)...)
}
