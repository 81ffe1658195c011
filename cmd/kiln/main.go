// Package main is the entry point for the kiln build orchestrator.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/cmd/kiln/commands"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	_ "go.trai.ch/kiln/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// No logger exists yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	return exitStatus(cli.Execute(ctx), components.Logger)
}

// exitStatus maps the command result to the process exit status. Stage
// failures were already reported by the stage, everything else is logged here.
func exitStatus(err error, logger ports.Logger) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrPipelineAborted), errors.Is(err, domain.ErrStagesFailed):
		return 1
	default:
		logger.Error(err)
		return 1
	}
}
