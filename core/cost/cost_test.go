package cost

import (
	"testing"
)

func TestToolMetricsString(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ToolMetrics
		expected string
	}{
		{"explicit currency", ToolMetrics{Amount: 0.001, Currency: "USD"}, "0.001000 USD"},
		{"custom currency", ToolMetrics{Amount: 0.05, Currency: "EUR"}, "0.050000 EUR"},
		{"default currency", ToolMetrics{Amount: 0.25}, "0.250000 USD"},
		{"with description", ToolMetrics{Amount: 0, Currency: "USD", CostDescription: "local computation"}, "0.000000 USD (local computation)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestToolMetricsMetricsString(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ToolMetrics
		expected string
	}{
		{"no metrics", ToolMetrics{}, ""},
		{"accuracy only", ToolMetrics{Accuracy: 0.95}, "Accuracy: 95.0%"},
		{"duration only", ToolMetrics{AverageDurationInMillis: 2}, "Avg duration: 2ms"},
		{"both", ToolMetrics{Accuracy: 1.0, AverageDurationInMillis: 2}, "Accuracy: 100.0%, Avg duration: 2ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.MetricsString(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestToolMetricsIsFree(t *testing.T) {
	if !(ToolMetrics{Currency: "USD"}).IsFree() {
		t.Error("Expected zero-amount metrics to be free")
	}
	if (ToolMetrics{Amount: 0.001}).IsFree() {
		t.Error("Expected non-zero amount to not be free")
	}
}
