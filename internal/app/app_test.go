package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/platform"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader   *mocks.MockProjectLoader
	runner   *mocks.MockCommandRunner
	resolver *mocks.MockToolResolver
	logger   *mocks.MockLogger
	app      *app.App
}

func newHarness(t *testing.T, profile ports.PlatformProfile) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:   mocks.NewMockProjectLoader(ctrl),
		runner:   mocks.NewMockCommandRunner(ctrl),
		resolver: mocks.NewMockToolResolver(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	p := pipeline.New(
		h.runner, h.resolver, profile,
		mocks.NewMockSourceWalker(ctrl), mocks.NewMockHasher(ctrl),
		telemetry.NewNoopTracer(), h.logger,
	)
	h.app = app.New(h.loader, p, h.logger)
	return h
}

func configureOnly() domain.PipelineConfig {
	return domain.PipelineConfig{
		BuildType:     domain.BuildRelease,
		BuildDir:      domain.DefaultBuildDir,
		Jobs:          2,
		ConfigureOnly: true,
	}
}

func TestApp_Run_MergesDefines(t *testing.T) {
	h := newHarness(t, platform.ForPlatform(domain.PlatformLinux))
	root := t.TempDir()

	project := domain.DefaultProject(root)
	project.Defines = map[string]string{"ENABLE_TESTS": "ON", "USE_LTO": "OFF"}
	h.loader.EXPECT().Load(root).Return(project, nil)
	h.resolver.EXPECT().Find(domain.NinjaCandidates()).Return("/usr/bin/ninja", true)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Success(gomock.Any()).AnyTimes()

	var argv []string
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a []string, _ domain.RunOptions) (domain.CommandResult, error) {
			argv = a
			return domain.CommandResult{}, nil
		})

	cfg := configureOnly()
	cfg.Defines = map[string]string{"ENABLE_TESTS": "OFF"}

	require.NoError(t, h.app.Run(context.Background(), root, cfg))
	assert.Contains(t, argv, "-DENABLE_TESTS=OFF", "command line overrides the project file")
	assert.Contains(t, argv, "-DUSE_LTO=OFF")
	assert.NotContains(t, argv, "-DENABLE_TESTS=ON")
}

func TestApp_Run_LoadError(t *testing.T) {
	h := newHarness(t, platform.ForPlatform(domain.PlatformLinux))
	h.loader.EXPECT().Load("/work").Return(domain.Project{}, errors.New("boom"))

	err := h.app.Run(context.Background(), "/work", configureOnly())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load project")
}

func TestApp_Run_InvalidConfig(t *testing.T) {
	h := newHarness(t, platform.ForPlatform(domain.PlatformLinux))
	root := t.TempDir()
	h.loader.EXPECT().Load(root).Return(domain.DefaultProject(root), nil)

	cfg := configureOnly()
	cfg.Jobs = 0

	err := h.app.Run(context.Background(), root, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidJobs.Error())
}

func TestApp_Run_GeneratorNotOffered(t *testing.T) {
	h := newHarness(t, platform.ForPlatform(domain.PlatformLinux))
	root := t.TempDir()
	h.loader.EXPECT().Load(root).Return(domain.DefaultProject(root), nil)

	cfg := configureOnly()
	cfg.Generator = domain.GeneratorXcode

	err := h.app.Run(context.Background(), root, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidGenerator.Error())
}

func TestApp_Run_UnknownPlatform(t *testing.T) {
	h := newHarness(t, platform.ForPlatform(domain.PlatformUnknown))
	root := t.TempDir()
	h.loader.EXPECT().Load(root).Return(domain.DefaultProject(root), nil)
	h.logger.EXPECT().Warn("Unknown platform, using generic defaults")
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Success(gomock.Any()).AnyTimes()
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, argv []string, _ domain.RunOptions) {
			assert.Contains(t, argv, "Borland Makefiles")
		}).
		Return(domain.CommandResult{}, nil)

	cfg := configureOnly()
	cfg.Generator = "Borland Makefiles"

	// A generator without a known probe executable is used as given.
	require.NoError(t, h.app.Run(context.Background(), root, cfg), "unknown platforms accept any generator")
}

func TestApp_Run_PipelineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	profile := mocks.NewMockPlatformProfile(ctrl)
	profile.EXPECT().Platform().Return(domain.PlatformLinux).AnyTimes()
	profile.EXPECT().GeneratorChoices().Return(nil).AnyTimes()
	profile.EXPECT().ExecutableSuffix().Return("").AnyTimes()
	profile.EXPECT().GeneratorPreference().Return([]domain.Generator{{Name: domain.GeneratorUnixMakefiles}})
	profile.EXPECT().SupportsSourceTools().Return(true).AnyTimes()
	profile.EXPECT().IsMultiConfig(gomock.Any()).Return(false).AnyTimes()

	h := newHarness(t, profile)
	root := t.TempDir()
	h.loader.EXPECT().Load(root).Return(domain.DefaultProject(root), nil)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.CommandResult{ExitCode: 1}, &domain.CommandError{Kind: domain.ErrNonZeroExit, ExitCode: 1})

	err := h.app.Run(context.Background(), root, configureOnly())
	require.ErrorIs(t, err, domain.ErrPipelineAborted)
	assert.Equal(t, domain.PlatformLinux, h.app.Profile().Platform())
}
