package observability

import (
	"context"
	"testing"
)

// mockSpan is a no-op Span used to check context propagation.
type mockSpan struct {
	name string
}

func (s *mockSpan) End()                                          {}
func (s *mockSpan) SetAttributes(attrs ...Attribute)              {}
func (s *mockSpan) SetStatus(code StatusCode, description string) {}
func (s *mockSpan) RecordError(err error)                         {}
func (s *mockSpan) AddEvent(name string, attrs ...Attribute)      {}

// mockProvider embeds the interfaces it satisfies; only identity matters here.
type mockProvider struct {
	Tracer
	Metrics
	Logger
}

func TestSpanFromContext_Empty(t *testing.T) {
	if span := SpanFromContext(context.Background()); span != nil {
		t.Errorf("Expected nil span from empty context, got %v", span)
	}
}

func TestSpanFromContext_NilContext(t *testing.T) {
	//nolint:staticcheck // exercising the nil guard
	if span := SpanFromContext(nil); span != nil {
		t.Errorf("Expected nil span from nil context, got %v", span)
	}
}

func TestContextWithSpan_RoundTrip(t *testing.T) {
	span1 := &mockSpan{name: "span-1"}
	span2 := &mockSpan{name: "span-2"}

	ctx := ContextWithSpan(context.Background(), span1)
	if got := SpanFromContext(ctx); got != span1 {
		t.Errorf("Expected span1, got %v", got)
	}

	ctx = ContextWithSpan(ctx, span2)
	if got := SpanFromContext(ctx); got != span2 {
		t.Errorf("Expected span2 after overwrite, got %v", got)
	}
}

func TestContextWithSpan_NilContext(t *testing.T) {
	span := &mockSpan{name: "span"}
	//nolint:staticcheck // exercising the nil guard
	ctx := ContextWithSpan(nil, span)
	if ctx == nil {
		t.Fatal("Expected non-nil context")
	}
	if SpanFromContext(ctx) != span {
		t.Error("Expected span to be stored in context")
	}
}

func TestObserverFromContext(t *testing.T) {
	if ObserverFromContext(context.Background()) != nil {
		t.Error("Expected nil provider from empty context")
	}

	provider := &mockProvider{}
	ctx := ContextWithObserver(context.Background(), provider)
	if got := ObserverFromContext(ctx); got != provider {
		t.Errorf("Expected stored provider, got %v", got)
	}

	// Span and observer keys must not collide.
	if SpanFromContext(ctx) != nil {
		t.Error("Expected no span in a context carrying only a provider")
	}
}
