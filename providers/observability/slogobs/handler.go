package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"
	"sync"
)

const timeLayout = "2006-01-02 15:04:05"

// Handler is a slog.Handler that writes compact, pretty, or JSON records.
// Handlers derived with WithAttrs or WithGroup share the parent's writer lock.
type Handler struct {
	format Format
	level  slog.Leveler
	output io.Writer
	colors bool
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Format specifies the output format (compact, pretty, json).
	Format Format
	// Level is the minimum level written. A *slog.LevelVar may be used to
	// change it at runtime.
	Level slog.Leveler
	// Output is where records are written (defaults to os.Stderr).
	Output io.Writer
	// Colors enables ANSI color codes (only for compact/pretty formats).
	// It is switched on automatically when Output is a terminal.
	Colors bool
}

// NewHandler creates a new Handler with the given options.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	h := &Handler{
		format: opts.Format,
		level:  opts.Level,
		output: opts.Output,
		colors: opts.Colors,
		mu:     &sync.Mutex{},
	}
	if h.output == nil {
		h.output = os.Stderr
	}
	if h.format == "" {
		h.format = FormatCompact
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	if !h.colors && h.format != FormatJSON {
		if f, ok := h.output.(*os.File); ok {
			h.colors = isTerminal(f)
		}
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes a log record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := h.collectAttrs(r)

	var (
		line []byte
		err  error
	)
	switch h.format {
	case FormatJSON:
		line, err = h.formatJSON(r, attrs)
	case FormatPretty:
		line = h.formatPretty(r, attrs)
	default:
		line = h.formatCompact(r, attrs)
	}
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.output.Write(line)
	return err
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.prefix + attr.Key, Value: attr.Value})
	}
	return &clone
}

// WithGroup returns a new Handler whose later attributes are prefixed with
// "name.".
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// collectAttrs flattens handler and record attributes into a map.
// Record attributes win over handler attributes with the same key.
func (h *Handler) collectAttrs(r slog.Record) map[string]any {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		addAttr(attrs, "", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		addAttr(attrs, h.prefix, attr)
		return true
	})
	return attrs
}

func addAttr(attrs map[string]any, prefix string, attr slog.Attr) {
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = prefix + attr.Key + "."
		}
		for _, member := range value.Group() {
			addAttr(attrs, groupPrefix, member)
		}
		return
	}
	if attr.Key == "" {
		return
	}
	attrs[prefix+attr.Key] = jsonSafe(value.Any())
}

// jsonSafe converts values encoding/json cannot represent faithfully.
func jsonSafe(v any) any {
	switch val := v.(type) {
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case float64:
		// NaN and ±Inf are legal results of arithmetic but not legal JSON numbers.
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Sprintf("%v", val)
		}
		return val
	default:
		return v
	}
}

func sortedKeys(attrs map[string]any) []string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// formatCompact renders "2006-01-02 15:04:05 LEVEL Message -> {...}".
func (h *Handler) formatCompact(r slog.Record, attrs map[string]any) []byte {
	var b strings.Builder
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteByte(' ')
	b.WriteString(h.paint(r.Level, fmt.Sprintf("%5s", levelString(r.Level))))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	if len(attrs) > 0 {
		b.WriteString(" -> ")
		// json.Marshal sorts map keys.
		encoded, err := json.Marshal(attrs)
		if err != nil {
			b.WriteString("[json-error]")
		} else {
			b.Write(encoded)
		}
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// formatPretty renders the header line followed by one "  key: value" line
// per attribute, sorted by key.
func (h *Handler) formatPretty(r slog.Record, attrs map[string]any) []byte {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteString("] ")
	b.WriteString(h.paint(r.Level, fmt.Sprintf("%-5s", levelString(r.Level))))
	b.WriteString(" | ")
	b.WriteString(r.Message)
	b.WriteByte('\n')

	for _, key := range sortedKeys(attrs) {
		fmt.Fprintf(&b, "    %s: %v\n", key, attrs[key])
	}
	return []byte(b.String())
}

// formatJSON renders one object with time, level, msg, and the attributes
// merged at the top level.
func (h *Handler) formatJSON(r slog.Record, attrs map[string]any) ([]byte, error) {
	data := make(map[string]any, len(attrs)+3)
	for key, value := range attrs {
		data[key] = value
	}
	data["time"] = r.Time.Format("2006-01-02T15:04:05")
	data["level"] = levelString(r.Level)
	data["msg"] = r.Message

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(encoded, '\n'), nil
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func (h *Handler) paint(level slog.Level, s string) string {
	if !h.colors {
		return s
	}
	return colorForLevel(level) + s + colorReset
}

func colorForLevel(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return colorGray
	case level < slog.LevelInfo:
		return colorBlue
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
