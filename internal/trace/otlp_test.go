package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	tr, err := Setup(context.Background(), "", "eatnsplit")
	require.NoError(t, err)
	require.NotNil(t, tr)

	_, span := tr.Start(context.Background(), SpanAddFriend)
	assert.False(t, span.IsRecording())
	span.End()
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestTracer_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	tr := New(tp)

	_, span := tr.Start(context.Background(), SpanApplySplit,
		AttrFriendID.String("118836"),
		AttrDelta.String("30"),
	)
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, SpanApplySplit, ended[0].Name())
	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "118836", attrs["eatnsplit.friend.id"])
	assert.Equal(t, "30", attrs["eatnsplit.split.delta"])

	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestTracer_NilIsSafe(t *testing.T) {
	var tr *Tracer
	ctx, span := tr.Start(context.Background(), SpanToggleSelection)
	assert.NotNil(t, ctx)
	span.End()
	assert.NoError(t, tr.Shutdown(context.Background()))
}
