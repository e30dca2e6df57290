package utils

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TraceInputValidation creates a span for input validation steps
func TraceInputValidation(ctx context.Context, validationType, field string) (context.Context, trace.Span) {
	return otel.Tracer("").Start(ctx, "step.validate_input",
		trace.WithAttributes(
			attribute.String("validation.type", validationType),
			attribute.String("validation.field", field),
		),
	)
}

// TraceCacheGet creates a span for cache lookups
func TraceCacheGet(ctx context.Context, cacheKey string) (context.Context, trace.Span) {
	return otel.Tracer("").Start(ctx, "step.cache_get",
		trace.WithAttributes(attribute.String("cache.key", cacheKey)),
	)
}

// TraceCacheSet creates a span for cache writes
func TraceCacheSet(ctx context.Context, cacheKey string, ttl time.Duration) (context.Context, trace.Span) {
	return otel.Tracer("").Start(ctx, "step.cache_set",
		trace.WithAttributes(
			attribute.String("cache.key", cacheKey),
			attribute.String("cache.ttl", ttl.String()),
		),
	)
}

// TraceRepositoryOp creates a span for record store operations
func TraceRepositoryOp(ctx context.Context, operation, id string) (context.Context, trace.Span) {
	return otel.Tracer("").Start(ctx, "step.repository_"+operation,
		trace.WithAttributes(
			attribute.String("repository.operation", operation),
			attribute.String("cv.id", id),
		),
	)
}

// TraceTemplateRender creates a span for template rendering
func TraceTemplateRender(ctx context.Context, templateID string, exportMode bool) (context.Context, trace.Span) {
	return otel.Tracer("").Start(ctx, "step.template_render",
		trace.WithAttributes(
			attribute.String("template.id", templateID),
			attribute.Bool("render.export_mode", exportMode),
		),
	)
}

// TraceExternalService creates a span for external service calls
func TraceExternalService(ctx context.Context, serviceName, operation string) (context.Context, trace.Span) {
	return otel.Tracer("").Start(ctx, "step.external_service",
		trace.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.operation", operation),
		),
	)
}

// TraceResponseSerialization creates a span for response serialization
func TraceResponseSerialization(ctx context.Context, responseType string) (context.Context, trace.Span) {
	return otel.Tracer("").Start(ctx, "step.serialize_response",
		trace.WithAttributes(attribute.String("response.type", responseType)),
	)
}

// RecordErrorInSpan records an error with additional context in a span
func RecordErrorInSpan(span trace.Span, err error, context map[string]interface{}) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	for k, v := range context {
		AddSpanAttribute(span, k, v)
	}
}

// AddSpanAttribute adds a typed attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	switch v := value.(type) {
	case string:
		span.SetAttributes(attribute.String(key, v))
	case bool:
		span.SetAttributes(attribute.Bool(key, v))
	case int:
		span.SetAttributes(attribute.Int(key, v))
	case int64:
		span.SetAttributes(attribute.Int64(key, v))
	case float64:
		span.SetAttributes(attribute.Float64(key, v))
	default:
		span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
