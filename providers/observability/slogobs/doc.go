// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans, metric updates, and log calls all become slog records written by a
// [Handler] in one of three formats: compact single lines, pretty multi-line
// blocks, or JSON. Counters keep their running total in memory.
//
// [New] reads MATHKIT_LOG_LEVEL / LOG_LEVEL and MATHKIT_LOG_FORMAT /
// LOG_FORMAT when no explicit option overrides them.
package slogobs
