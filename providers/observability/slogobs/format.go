package slogobs

import (
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatCompact is one line per record with attributes as a JSON object:
	// 2025-11-03 10:40:35  INFO Tool executed -> {"tool.name":"Calculator"}
	FormatCompact Format = "compact"

	// FormatPretty puts each attribute on its own indented line.
	FormatPretty Format = "pretty"

	// FormatJSON is one JSON object per record, for log aggregation.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string and returns the corresponding Format.
// Unknown values map to FormatCompact.
func ParseFormat(s string) Format {
	switch Format(strings.TrimSpace(strings.ToLower(s))) {
	case FormatPretty:
		return FormatPretty
	case FormatJSON:
		return FormatJSON
	default:
		return FormatCompact
	}
}

// GetFormatFromEnv reads MATHKIT_LOG_FORMAT, then LOG_FORMAT.
// It returns FormatCompact when neither is set.
func GetFormatFromEnv() Format {
	if format := os.Getenv("MATHKIT_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	return FormatCompact
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}
