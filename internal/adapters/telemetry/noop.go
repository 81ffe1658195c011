package telemetry

import (
	"context"

	"go.trai.ch/kiln/internal/core/ports"
)

// NoopTracer is a ports.Tracer that records nothing.
type NoopTracer struct{}

// NewNoopTracer creates a NoopTracer.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start returns ctx unchanged and a span that does nothing.
func (NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
