package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/snap/internal/adapters/telemetry"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/snap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(recorder)

	ctx, parent := tracer.Start(context.Background(), "run", ports.WithAttribute("project", "demo"))
	_, child := tracer.Start(ctx, "append_timing")
	child.SetAttribute("seconds", 1.5)
	child.SetAttribute("files", 3)
	child.SetAttribute("sorted", true)
	child.SetAttribute("names", []string{"a", "b"})
	child.SetAttribute("other", struct{ X int }{1})
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "append_timing", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
	assert.Contains(t, spans[0].Attributes(), attribute.Float64("seconds", 1.5))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("files", 3))
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("sorted", true))
	assert.Contains(t, spans[0].Attributes(), attribute.StringSlice("names", []string{"a", "b"}))
	assert.Contains(t, spans[0].Attributes(), attribute.String("other", "{1}"))

	assert.Equal(t, "run", spans[1].Name())
	assert.Contains(t, spans[1].Attributes(), attribute.String("project", "demo"))

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestOTelSpan_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(recorder)

	_, span := tracer.Start(context.Background(), "build_index")
	span.RecordError(errors.New("disk full"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "disk full", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func hasPrefix(prefix string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		s, ok := x.(string)
		return ok && strings.HasPrefix(s, prefix)
	})
}

func TestBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	tracer := telemetry.NewOTelTracer(telemetry.NewBridge(log))

	gomock.InOrder(
		log.EXPECT().Debug(hasPrefix("append_timing finished in ")),
		log.EXPECT().Debug(hasPrefix("build_index failed after ")),
	)

	_, ok := tracer.Start(context.Background(), "append_timing")
	ok.End()

	_, failed := tracer.Start(context.Background(), "build_index")
	failed.RecordError(errors.New("boom"))
	failed.End()
}

func TestBridge_NilLogger(t *testing.T) {
	tracer := telemetry.NewOTelTracer(telemetry.NewBridge(nil))
	_, span := tracer.Start(context.Background(), "noop")
	assert.NotPanics(t, span.End)
}
