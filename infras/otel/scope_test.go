package otel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"hotel/shared/failure"
)

func record(t *testing.T, use func(Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	o := &otelImpl{TracerProvider: provider}

	_, scope := o.NewScope(context.Background(), "test", "test.span")
	use(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func attributeMap(span trace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	res := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		res[kv.Key] = kv.Value
	}

	return res
}

func TestScope_TraceError(t *testing.T) {
	t.Run("server failure marks the span", func(t *testing.T) {
		span := record(t, func(scope Scope) {
			scope.TraceError(failure.ServiceUnavailable(errors.New("store offline")))
		})

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, int64(503), attributeMap(span)[attributeErrorCode].AsInt64())
		assert.Len(t, span.Events(), 1)
	})

	t.Run("client failure leaves status unset", func(t *testing.T) {
		span := record(t, func(scope Scope) {
			scope.TraceError(failure.NotFound("booking not found"))
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
		assert.Equal(t, int64(404), attributeMap(span)[attributeErrorCode].AsInt64())
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		span := record(t, func(scope Scope) {
			scope.TraceIfError(nil)
		})

		assert.Empty(t, span.Events())
	})
}

func TestScope_SetAttributes(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	span := record(t, func(scope Scope) {
		scope.SetAttributes(map[string]any{
			"collection": "bookings",
			"rows":       8,
			"size":       int64(2048),
			"rate":       1000.5,
			"busy":       true,
			"fields":     []string{"roomNo", "name"},
			"at":         at,
		})
	})

	attrs := attributeMap(span)

	assert.Equal(t, "bookings", attrs["collection"].AsString())
	assert.Equal(t, int64(8), attrs["rows"].AsInt64())
	assert.Equal(t, int64(2048), attrs["size"].AsInt64())
	assert.InDelta(t, 1000.5, attrs["rate"].AsFloat64(), 0.0001)
	assert.True(t, attrs["busy"].AsBool())
	assert.Equal(t, []string{"roomNo", "name"}, attrs["fields"].AsStringSlice())
	assert.Equal(t, "2024-03-01T09:00:00Z", attrs["at"].AsString())
}
