package tracer

import (
	"context"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/queueworks/mqkit/observability"
)

// Observer emits one span per observed broker operation. Operations are
// reported after they complete, so the span start time is backdated by the
// operation's duration.
type Observer struct {
	tracer *Tracer
}

// NewObserver returns an observability.Observer that records broker
// operations as spans on this tracer.
func (t *Tracer) NewObserver() *Observer {
	return &Observer{tracer: t}
}

// ObserveOperation records one operation outcome as a finished span.
func (o *Observer) ObserveOperation(op observability.OperationContext) {
	start := time.Now().Add(-op.Duration)

	_, span := o.tracer.tracer.Tracer("").Start(
		context.Background(),
		op.Component+"."+op.Operation,
		traceSpan.WithTimestamp(start),
		traceSpan.WithSpanKind(traceSpan.SpanKindProducer),
	)

	attrs := map[string]interface{}{
		"component": op.Component,
		"resource":  op.Resource,
	}
	if op.SubResource != "" {
		attrs["sub_resource"] = op.SubResource
	}
	if op.Size > 0 {
		attrs["bytes"] = op.Size
	}
	for k, v := range op.Metadata {
		attrs[k] = v
	}
	o.tracer.SetAttributes(span, attrs)

	if op.Error != nil {
		o.tracer.RecordErrorOnSpan(span, op.Error)
	}

	span.End(traceSpan.WithTimestamp(start.Add(op.Duration)))
}
