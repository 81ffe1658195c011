package ports

import "time"

// Renderer presents stage progress to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnStageStart is called when a stage begins.
	// spanID: unique identifier for this stage execution
	// name: stage name
	OnStageStart(spanID, name string, startTime time.Time)

	// OnStageComplete is called when a stage finishes.
	// err: nil if successful, error otherwise
	OnStageComplete(spanID string, endTime time.Time, err error)
}
