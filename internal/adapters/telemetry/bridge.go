// Package telemetry adapts OpenTelemetry spans to kiln's stage renderer.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// StatusKey is the span attribute carrying the stage outcome.
const StatusKey = "status"

// Bridge is an sdktrace.SpanProcessor that reports top-level stage spans to a Renderer.
// Nested spans stay in the trace but are not rendered.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a Bridge reporting to renderer. A nil renderer discards everything.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

func (b *Bridge) renders(s sdktrace.ReadOnlySpan) bool {
	return b.renderer != nil && s.SpanContext().IsValid() && !s.Parent().IsValid()
}

// OnStart announces a stage.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if !b.renders(s) {
		return
	}
	b.renderer.OnStageStart(s.SpanContext().SpanID().String(), s.Name(), s.StartTime())
}

// OnEnd reports how a stage finished.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !b.renders(s) {
		return
	}
	b.renderer.OnStageComplete(s.SpanContext().SpanID().String(), s.EndTime(), stageErr(s))
}

// stageErr prefers the recorded error description and falls back to the outcome
// attribute, so a failed stage without a recorded error still renders as failed.
func stageErr(s sdktrace.ReadOnlySpan) error {
	if st := s.Status(); st.Code == codes.Error && st.Description != "" {
		return errors.New(st.Description)
	}

	status := ""
	for _, kv := range s.Attributes() {
		if string(kv.Key) == StatusKey {
			status = kv.Value.AsString()
		}
	}

	switch status {
	case domain.StatusFailed.String(), domain.StatusAborted.String():
		return errors.New(s.Name() + " " + status)
	}
	if s.Status().Code == codes.Error {
		return errors.New(s.Name() + " failed")
	}
	return nil
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
