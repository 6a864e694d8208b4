// Package cost describes what it takes to run a tool: its monetary cost per
// call and the quality metadata (accuracy, expected latency) a caller can use
// to choose between tools. The main type is [ToolMetrics].
package cost
