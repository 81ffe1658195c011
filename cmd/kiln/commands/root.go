// Package commands implements the CLI commands for kiln.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for kiln.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	flags   flags
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, root string, cfg domain.PipelineConfig) error
	Profile() ports.PlatformProfile
}

type flags struct {
	buildType     string
	buildDir      string
	generator     string
	jobs          int
	target        string
	defines       []string
	clean         bool
	run           bool
	install       bool
	verbose       bool
	configureOnly bool
	buildOnly     bool
	format        bool
	lint          bool
	lintFix       bool
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "kiln",
		Short: "Configure, build and run CMake projects",
		Long: `kiln drives the native CMake toolchain through clean, format, lint, configure,
build, install and run stages, picking the best generator available on this machine.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runPipeline,
	}

	c.rootCmd = rootCmd
	c.registerFlags(a.Profile())

	// -v belongs to --verbose, so the version flag must be added after it and stays long-only.
	rootCmd.SetVersionTemplate(versionLine() + "\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) registerFlags(profile ports.PlatformProfile) {
	f := c.rootCmd.Flags()
	f.StringVarP(&c.flags.buildType, "type", "t", string(domain.BuildDebug),
		"Build type (Debug, Release, RelWithDebInfo, MinSizeRel)")
	f.StringVarP(&c.flags.buildDir, "dir", "d", domain.DefaultBuildDir, "Build directory")
	f.StringVarP(&c.flags.generator, "generator", "g", "", generatorUsage(profile))
	f.IntVarP(&c.flags.jobs, "jobs", "j", runtime.NumCPU(), "Number of parallel build jobs")
	f.StringVarP(&c.flags.target, "target", "T", "", "Build only the given target")
	f.StringArrayVarP(&c.flags.defines, "define", "D", nil, "Extra CMake cache entry as KEY=VALUE (repeatable)")
	f.BoolVarP(&c.flags.clean, "clean", "c", false, "Remove the build directory first")
	f.BoolVarP(&c.flags.run, "run", "r", false, "Run the executable after building")
	f.BoolVarP(&c.flags.install, "install", "i", false, "Install after building")
	f.BoolVarP(&c.flags.verbose, "verbose", "v", false, "Show full tool output")
	f.BoolVar(&c.flags.configureOnly, "configure", false, "Only configure, do not build")
	f.BoolVar(&c.flags.buildOnly, "build", false, "Only build, skip configuration")

	if profile.SupportsSourceTools() {
		f.BoolVar(&c.flags.format, "format", false, "Format source files")
		f.BoolVar(&c.flags.lint, "lint", false, "Lint source files")
		f.BoolVar(&c.flags.lintFix, "lint-fix", false, "Lint source files and apply fixes")
	}

	c.rootCmd.MarkFlagsMutuallyExclusive("configure", "build")
}

func generatorUsage(profile ports.PlatformProfile) string {
	choices := profile.GeneratorChoices()
	if len(choices) == 0 {
		return "CMake generator override"
	}
	return fmt.Sprintf("CMake generator override (%q)", choices)
}

func (c *CLI) runPipeline(cmd *cobra.Command, _ []string) error {
	cfg, err := c.flags.config()
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	return c.app.Run(cmd.Context(), root, cfg)
}

// config turns parsed flags into a PipelineConfig. Validation beyond parsing is left to the app.
func (f flags) config() (domain.PipelineConfig, error) {
	buildType, err := domain.ParseBuildType(f.buildType)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	var defines map[string]string
	if len(f.defines) > 0 {
		defines = make(map[string]string, len(f.defines))
		for _, d := range f.defines {
			k, v, err := domain.ParseDefine(d)
			if err != nil {
				return domain.PipelineConfig{}, err
			}
			defines[k] = v
		}
	}

	return domain.PipelineConfig{
		BuildType:     buildType,
		BuildDir:      f.buildDir,
		Generator:     f.generator,
		Jobs:          f.jobs,
		Target:        f.target,
		Defines:       defines,
		Clean:         f.clean,
		Run:           f.run,
		Install:       f.install,
		Verbose:       f.verbose,
		ConfigureOnly: f.configureOnly,
		BuildOnly:     f.buildOnly,
		Format:        f.format,
		Lint:          f.lint,
		LintFix:       f.lintFix,
	}, nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
