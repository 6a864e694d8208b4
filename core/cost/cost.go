package cost

import (
	"fmt"
	"strings"
)

// DefaultCurrency is assumed when ToolMetrics.Currency is empty.
const DefaultCurrency = "USD"

// ToolMetrics holds the per-call cost and quality metadata of a tool.
//
// Example usage:
//
//	metrics := cost.ToolMetrics{
//	    Amount:                  0,
//	    Currency:                "USD",
//	    CostDescription:         "local computation",
//	    Accuracy:                1.0,
//	    AverageDurationInMillis: 1,
//	}
type ToolMetrics struct {
	// Amount is the cost of a single execution.
	Amount float64 `json:"amount"`

	// Currency is the unit Amount is expressed in (e.g. "USD", "credits").
	Currency string `json:"currency,omitempty"`

	// CostDescription gives context for Amount (e.g. "per call").
	CostDescription string `json:"cost_description,omitempty"`

	// Accuracy is a reliability score between 0.0 and 1.0.
	Accuracy float64 `json:"accuracy,omitempty"`

	// AverageDurationInMillis is the typical execution time.
	AverageDurationInMillis int64 `json:"average_duration_ms,omitempty"`
}

// String returns the cost formatted as "<amount> <currency> (<description>)".
func (m ToolMetrics) String() string {
	currency := m.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	result := fmt.Sprintf("%.6f %s", m.Amount, currency)
	if m.CostDescription != "" {
		result = fmt.Sprintf("%s (%s)", result, m.CostDescription)
	}
	return result
}

// MetricsString returns the quality metrics that are set, comma separated.
// It returns an empty string when none are.
func (m ToolMetrics) MetricsString() string {
	parts := make([]string, 0, 2)
	if m.Accuracy > 0 {
		parts = append(parts, fmt.Sprintf("Accuracy: %.1f%%", m.Accuracy*100))
	}
	if m.AverageDurationInMillis > 0 {
		parts = append(parts, fmt.Sprintf("Avg duration: %dms", m.AverageDurationInMillis))
	}
	return strings.Join(parts, ", ")
}

// IsFree reports whether executing the tool costs nothing.
func (m ToolMetrics) IsFree() bool {
	return m.Amount == 0
}
