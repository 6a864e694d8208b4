// Package parse turns loosely formatted text into typed values.
//
// Tool arguments often arrive as almost-JSON: single-quoted strings, unquoted
// keys, trailing commas, markdown code fences, or truncated objects. The
// generic [ParseStringAs] function decodes such input into any Go type,
// repairing malformed JSON with jsonrepair and unwrapping {"type","value"}
// envelopes before giving up. [ParseOperand] is the narrower entry point used
// for a single numeric operand.
package parse
