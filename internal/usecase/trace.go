package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerScope = "github.com/riskibarqy/cricket-scores/internal/usecase"

var (
	usecaseTracer   = otel.Tracer(tracerScope)
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan opens a child span named "usecase.<Service>.<Method>".
// Without a sampled parent there is nothing to attach to, so it returns a
// no-op span and leaves ctx untouched.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ctx, usecaseNoopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}

	return usecaseTracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("cricket.component", spanComponent(name))),
	)
}

// spanComponent extracts "BoardService" from "usecase.BoardService.Home".
func spanComponent(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) >= 3 {
		return parts[1]
	}
	return name
}
