// Package observability defines the interfaces mathkit uses for tracing,
// metrics, and structured logging, plus the attribute keys and names shared
// by every component that records observations.
//
// [Provider] composes [Tracer], [Metrics], and [Logger] into one injectable
// dependency. A [Provider] travels through a [context.Context] with
// [ContextWithObserver] / [ObserverFromContext], and the active [Span] with
// [ContextWithSpan] / [SpanFromContext]. Components treat both as optional:
// a nil provider or span means "record nothing".
//
// semconv.go lists the attribute keys, span, event, and metric names.
package observability
