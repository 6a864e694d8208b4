// Package tool turns typed Go functions into named, self-describing tools
// that accept and return JSON.
//
// [NewTool] wraps a func(ctx, I) (O, error) and derives JSON schemas for I
// and O. [Tool.Call] decodes tolerant JSON input, runs the function, and
// encodes the result, reporting spans, metrics, and logs through the
// observability provider found in the context. [Catalog] is a thread-safe,
// case-insensitive registry of tools.
package tool
