package parse

import (
	"errors"
	"math"
	"testing"
)

type calcArgs struct {
	A  float64 `json:"A"`
	B  float64 `json:"B"`
	Op string  `json:"Op"`
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "16", want: 16},
		{name: "negative decimal", input: "-2.5", want: -2.5},
		{name: "surrounding whitespace", input: "  3\n", want: 3},
		{name: "exponent notation", input: "1e3", want: 1000},
		{name: "positive infinity", input: "Inf", want: math.Inf(1)},
		{name: "negative infinity", input: "-inf", want: math.Inf(-1)},
		{name: "schema envelope", input: `{"type":"number","value":4}`, want: 4},
		{name: "not a number", input: "four", wantErr: true},
		{name: "expression", input: "2+3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperand(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOperand(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseOperand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOperand_NaN(t *testing.T) {
	got, err := ParseOperand("NaN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestParseOperand_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		_, err := ParseOperand(input)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("ParseOperand(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestParseStringAs_String(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "sqrt", "sqrt"},
		{"empty", "", ""},
		{"special characters", "a\tb\n", "a\tb\n"},
		{"envelope", `{"type":"string","value":"div"}`, "div"},
		{"object that is not an envelope", `{"op":"div"}`, `{"op":"div"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[string](tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStringAs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStringAs_Primitives(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		got, err := ParseStringAs[bool]("true")
		if err != nil || !got {
			t.Errorf("ParseStringAs[bool](true) = %v, %v", got, err)
		}
		if _, err := ParseStringAs[bool]("maybe"); err == nil {
			t.Error("expected error for invalid bool")
		}
	})

	t.Run("int", func(t *testing.T) {
		got, err := ParseStringAs[int]("-42")
		if err != nil || got != -42 {
			t.Errorf("ParseStringAs[int](-42) = %v, %v", got, err)
		}
		if _, err := ParseStringAs[int]("4.2"); err == nil {
			t.Error("expected error for fractional int")
		}
	})

	t.Run("uint rejects negative", func(t *testing.T) {
		if _, err := ParseStringAs[uint]("-1"); err == nil {
			t.Error("expected error for negative uint")
		}
	})

	t.Run("float32", func(t *testing.T) {
		got, err := ParseStringAs[float32]("0.5")
		if err != nil || got != 0.5 {
			t.Errorf("ParseStringAs[float32](0.5) = %v, %v", got, err)
		}
	})

	t.Run("wrapped int", func(t *testing.T) {
		got, err := ParseStringAs[int](`{"type":"integer","value":7}`)
		if err != nil || got != 7 {
			t.Errorf("ParseStringAs[int](envelope) = %v, %v", got, err)
		}
	})
}

func TestParseStringAs_Struct(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    calcArgs
		wantErr bool
	}{
		{
			name:  "valid JSON",
			input: `{"A": 10, "B": 2, "Op": "div"}`,
			want:  calcArgs{A: 10, B: 2, Op: "div"},
		},
		{
			name:  "missing field keeps zero value",
			input: `{"A": 16, "Op": "sqrt"}`,
			want:  calcArgs{A: 16, Op: "sqrt"},
		},
		{
			name:  "unquoted keys and single quotes (repaired)",
			input: `{A: 3, B: 2, Op: 'pow'}`,
			want:  calcArgs{A: 3, B: 2, Op: "pow"},
		},
		{
			name:  "trailing comma (repaired)",
			input: `{"A": 2, "B": 3, "Op": "add",}`,
			want:  calcArgs{A: 2, B: 3, Op: "add"},
		},
		{
			name:  "truncated object (repaired)",
			input: `{"A": 9, "B": 3, "Op": "div"`,
			want:  calcArgs{A: 9, B: 3, Op: "div"},
		},
		{
			name:  "markdown code fence (repaired)",
			input: "```json\n{\"A\": 1, \"B\": 1, \"Op\": \"add\"}\n```",
			want:  calcArgs{A: 1, B: 1, Op: "add"},
		},
		{
			name:  "envelope-wrapped fields",
			input: `{"A": {"type": "number", "value": 10}, "B": {"type": "number", "value": 5}, "Op": {"type": "string", "value": "div"}}`,
			want:  calcArgs{A: 10, B: 5, Op: "div"},
		},
		{
			name:    "wrong field type",
			input:   `{"A": "ten", "B": 2, "Op": "div"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[calcArgs](tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStringAs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseStringAs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseStringAs_SliceAndMap(t *testing.T) {
	operands, err := ParseStringAs[[]float64](`[1, 2, 3,]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(operands) != 3 || operands[2] != 3 {
		t.Errorf("unexpected slice %v", operands)
	}

	m, err := ParseStringAs[map[string]float64](`{"x": 1.5}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["x"] != 1.5 {
		t.Errorf("unexpected map %v", m)
	}
}

func TestParseStringAs_Pointer(t *testing.T) {
	got, err := ParseStringAs[*calcArgs](`{"A": 4, "Op": "sqrt"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.A != 4 || got.Op != "sqrt" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestUnwrapEnvelopes_Nested(t *testing.T) {
	got, err := unwrapEnvelopes(`{"outer": {"type": "object", "value": {"inner": {"type": "number", "value": 1}}}, "list": [{"type": "number", "value": 2}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"list":[2],"outer":{"inner":1}}`
	if got != want {
		t.Errorf("unwrapEnvelopes() = %s, want %s", got, want)
	}
}

func TestUnwrapPrimitive_NotEnvelope(t *testing.T) {
	if _, err := unwrapPrimitive(`{"type": "number"}`); err == nil {
		t.Error("expected error for object without value")
	}
	if _, err := unwrapPrimitive(`{"type": "number", "value": 1, "extra": true}`); err == nil {
		t.Error("expected error for object with extra keys")
	}
	if _, err := unwrapPrimitive(`not json`); err == nil {
		t.Error("expected error for non-JSON input")
	}
}
