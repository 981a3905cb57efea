package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("tournament-standings/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan only opens handler spans, and only under a request span, so
// helpers and filtered routes such as /healthz stay out of the trace.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// competitionAttrs tags a span with the raw competition route inputs.
func competitionAttrs(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("competition_id", strings.TrimSpace(r.PathValue("competitionID"))),
		attribute.String("sport", strings.TrimSpace(r.URL.Query().Get("sport"))),
	}
}

func matchAttrs(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{attribute.String("match_id", strings.TrimSpace(r.PathValue("matchID")))}
}
