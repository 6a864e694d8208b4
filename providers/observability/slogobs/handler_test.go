package slogobs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func newTestLogger(format Format, level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := NewHandler(&HandlerOptions{
		Format: format,
		Level:  level,
		Output: &buf,
	})
	return slog.New(handler), &buf
}

func TestHandler_Compact(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, slog.LevelDebug)
	logger.Info("Tool executed", "tool.name", "Calculator", "arith.result", 4.0)

	output := buf.String()
	if !strings.Contains(output, " INFO Tool executed -> ") {
		t.Errorf("Expected level, message, and separator in output, got: %s", output)
	}
	if !strings.Contains(output, `{"arith.result":4,"tool.name":"Calculator"}`) {
		t.Errorf("Expected sorted JSON attributes in output, got: %s", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Errorf("Expected trailing newline, got: %q", output)
	}
}

func TestHandler_CompactWithoutAttrs(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, slog.LevelDebug)
	logger.Info("plain")

	if strings.Contains(buf.String(), "->") {
		t.Errorf("Expected no separator without attributes, got: %s", buf.String())
	}
}

func TestHandler_Pretty(t *testing.T) {
	logger, buf := newTestLogger(FormatPretty, slog.LevelDebug)
	logger.Warn("Rejected input", "b", 0, "a", 1)

	output := buf.String()
	if !strings.Contains(output, "WARN  | Rejected input\n") {
		t.Errorf("Expected pretty header, got: %s", output)
	}
	aIdx := strings.Index(output, "    a: 1\n")
	bIdx := strings.Index(output, "    b: 0\n")
	if aIdx < 0 || bIdx < 0 || aIdx > bIdx {
		t.Errorf("Expected sorted attribute lines, got: %s", output)
	}
}

func TestHandler_JSON(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
	logger.Info("Test message", "key1", "value1", "key2", 42)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Expected valid JSON, got %q: %v", buf.String(), err)
	}
	if record["level"] != "INFO" || record["msg"] != "Test message" {
		t.Errorf("Unexpected standard fields: %v", record)
	}
	if record["key1"] != "value1" || record["key2"] != float64(42) {
		t.Errorf("Unexpected attributes: %v", record)
	}
	if _, ok := record["time"]; !ok {
		t.Error("Expected time field")
	}
}

func TestHandler_NonFiniteFloats(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
	logger.Info("result", "nan", math.NaN(), "inf", math.Inf(1))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Expected valid JSON for non-finite floats, got %q: %v", buf.String(), err)
	}
	if record["nan"] != "NaN" || record["inf"] != "+Inf" {
		t.Errorf("Expected stringified non-finite values, got %v", record)
	}
}

func TestHandler_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, slog.LevelWarn)
	logger.Debug("Should not appear")
	logger.Info("Should not appear")
	logger.Warn("Should appear")

	output := buf.String()
	if strings.Contains(output, "Should not appear") {
		t.Errorf("Expected records below WARN to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "Should appear") {
		t.Errorf("Expected WARN record, got: %s", output)
	}
}

func TestHandler_LevelVar(t *testing.T) {
	var buf bytes.Buffer
	level := &slog.LevelVar{}
	level.Set(slog.LevelError)
	logger := slog.New(NewHandler(&HandlerOptions{Level: level, Output: &buf}))

	logger.Info("hidden")
	level.Set(slog.LevelInfo)
	logger.Info("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("Expected level changes to apply at runtime, got: %s", buf.String())
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
	logger.With("component", "cli").WithGroup("arith").Info("computed", "op", "sqrt", slog.Group("operand", "a", 16))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if record["component"] != "cli" {
		t.Errorf("Expected handler attribute, got %v", record)
	}
	if record["arith.op"] != "sqrt" {
		t.Errorf("Expected grouped key arith.op, got %v", record)
	}
	if record["arith.operand.a"] != float64(16) {
		t.Errorf("Expected nested group key arith.operand.a, got %v", record)
	}
}

func TestHandler_Colors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Output: &buf, Colors: true}))
	logger.Error("boom")

	if !strings.Contains(buf.String(), colorRed) || !strings.Contains(buf.String(), colorReset) {
		t.Errorf("Expected ANSI colors, got %q", buf.String())
	}
}

func TestHandler_Defaults(t *testing.T) {
	h := NewHandler(nil)
	if h.format != FormatCompact {
		t.Errorf("Expected compact default, got %s", h.format)
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected DEBUG to be disabled by default")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Expected INFO to be enabled by default")
	}
}
