// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// CommandRunner executes external processes.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes argv synchronously and blocks until the process exits.
	//
	// A process that cannot be launched yields a *domain.CommandError of kind
	// domain.ErrExecutionFailed. A non-zero exit yields kind domain.ErrNonZeroExit
	// unless opts.AllowNonZeroExit is set, in which case it is only reflected in the result.
	Run(ctx context.Context, argv []string, opts domain.RunOptions) (domain.CommandResult, error)
}
