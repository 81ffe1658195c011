// Package app implements the application layer for kiln.
package app

import (
	"context"
	"maps"
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.ProjectLoader
	pipeline *pipeline.Pipeline
	logger   ports.Logger
}

// New creates a new App instance.
func New(loader ports.ProjectLoader, p *pipeline.Pipeline, log ports.Logger) *App {
	return &App{
		loader:   loader,
		pipeline: p,
		logger:   log,
	}
}

// Profile returns the platform profile the app runs with.
func (a *App) Profile() ports.PlatformProfile {
	return a.pipeline.Profile()
}

// Run loads the project in root and executes the pipeline for cfg.
func (a *App) Run(ctx context.Context, root string, cfg domain.PipelineConfig) error {
	// 1. Load the project
	project, err := a.loader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	profile := a.pipeline.Profile()
	if profile.Platform() == domain.PlatformUnknown {
		a.logger.Warn("Unknown platform, using generic defaults")
	}

	// 2. Merge cache entries: the command line wins over the project file
	cfg.Defines = mergeDefines(project.Defines, cfg.Defines)

	// 3. Validate
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateGenerator(cfg.Generator, profile); err != nil {
		return err
	}

	// 4. Run the pipeline
	_, err = a.pipeline.Run(ctx, cfg, project)
	return err
}

func mergeDefines(file, cli map[string]string) map[string]string {
	if len(file) == 0 && len(cli) == 0 {
		return nil
	}
	merged := make(map[string]string, len(file)+len(cli))
	maps.Copy(merged, file)
	maps.Copy(merged, cli)
	return merged
}

func validateGenerator(name string, profile ports.PlatformProfile) error {
	choices := profile.GeneratorChoices()
	if name == "" || len(choices) == 0 || slices.Contains(choices, name) {
		return nil
	}
	return zerr.With(zerr.With(domain.ErrInvalidGenerator, "generator", name), "platform", profile.Platform().String())
}
