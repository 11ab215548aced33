package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	httpTracer = otel.Tracer("gastos/http")
	httpMeter  = otel.Meter("gastos/http")

	requestDuration, _ = httpMeter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time spent handling a request"),
		metric.WithUnit("s"),
	)
	requestCount, _ = httpMeter.Int64Counter("http.server.request.total",
		metric.WithDescription("Requests handled"),
	)
)

// Tracing opens a server span for the request and records the duration
// histogram and request counter, labeled by method, path and status.
func Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := httpTracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		start := time.Now()
		wrapped := wrapResponseWriter(w)
		next.ServeHTTP(wrapped, r.WithContext(ctx))
		status := wrapped.Status()

		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		labels := metric.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.route", r.URL.Path),
			attribute.Int("http.status_code", status),
		)
		requestDuration.Record(ctx, time.Since(start).Seconds(), labels)
		requestCount.Add(ctx, 1, labels)
	})
}
