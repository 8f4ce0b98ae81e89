package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("gamedata").Start(context.Background(), "gamedata.load")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid(), "no provider installed, spans are no-ops")
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.IsRecording())
}

func TestGetHostname(t *testing.T) {
	assert.NotEmpty(t, getHostname())
}
