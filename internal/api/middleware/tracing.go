package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracing opens an OpenTelemetry span per request and propagates the
// context downstream, so service spans (stats window computation, plan
// generation) nest under the HTTP span. Request and response metadata
// are attached as Langfuse observation payloads.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("lullaby-api/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)

		input := map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		}
		if r.URL.RawQuery != "" {
			input["query"] = r.URL.RawQuery
		}
		if r.RemoteAddr != "" {
			input["remote_addr"] = r.RemoteAddr
		}
		if payload, err := json.Marshal(input); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.input", string(payload)))
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r.WithContext(ctx))

		// The matched route pattern is only known after routing; rename
		// the span so stats for /children/{childId}/... aggregate per
		// route instead of per child.
		if rctx := chi.RouteContext(ctx); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				span.SetName(r.Method + " " + pattern)
				span.SetAttributes(attribute.String("http.route", pattern))
			}
		}

		span.SetAttributes(attribute.Int("http.status_code", sw.status))
		output := map[string]any{
			"status_code": sw.status,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if payload, err := json.Marshal(output); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.output", string(payload)))
		}

		span.End()
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
