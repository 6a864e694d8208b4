package parse

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errNotEnvelope = errors.New("not a type/value envelope")

// isEnvelope reports whether m is exactly {"type": .., "value": ..}.
func isEnvelope(m map[string]any) bool {
	if len(m) != 2 {
		return false
	}
	_, hasType := m["type"]
	_, hasValue := m["value"]
	return hasType && hasValue
}

// unwrapPrimitive returns the string form of the value inside a
// {"type":..,"value":..} envelope.
func unwrapPrimitive(content string) (string, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", err
	}
	if !isEnvelope(data) {
		return "", errNotEnvelope
	}

	switch v := data["value"].(type) {
	case string:
		return v, nil
	case float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}

// unwrapEnvelopes rewrites a JSON document so every envelope is replaced by
// its value, at any depth.
//
//	{"a": {"type": "number", "value": 3}} -> {"a": 3}
func unwrapEnvelopes(content string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", err
	}
	raw, err := json.Marshal(unwrapValue(data))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unwrapValue(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if isEnvelope(v) {
			return unwrapValue(v["value"])
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = unwrapValue(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = unwrapValue(val)
		}
		return out
	default:
		return data
	}
}
