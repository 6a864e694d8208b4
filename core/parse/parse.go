package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrEmptyInput is returned by [ParseOperand] for blank input.
var ErrEmptyInput = errors.New("empty input")

// ParseOperand parses a single numeric operand. Surrounding whitespace is
// ignored, and anything [strconv.ParseFloat] accepts is valid, including
// "Inf", "-inf", and "NaN". A {"type":"number","value":4} envelope is unwrapped.
func ParseOperand(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyInput
	}
	v, err := ParseStringAs[float64](s)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}
	return v, nil
}

// ParseStringAs parses content into a value of type T.
//
// Strings, booleans, and numeric kinds are converted with strconv; when that
// fails and content is a {"type":..,"value":..} envelope, the inner value is
// converted instead. Every other kind (structs, maps, slices, pointers) is
// decoded with encoding/json. If decoding fails the input is repaired with
// jsonrepair and decoded again, and as a last resort envelope-wrapped fields
// are unwrapped recursively.
//
// Example usage:
//
//	type Args struct {
//	    A  float64 `json:"a"`
//	    Op string  `json:"op"`
//	}
//
//	args, err := ParseStringAs[Args](`{a: 3, op: 'sqrt',}`)
//	n, err := ParseStringAs[float64]("42.5")
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()

	switch target.Kind() {
	case reflect.String:
		if strings.HasPrefix(content, "{") {
			if inner, err := unwrapPrimitive(content); err == nil {
				target.SetString(inner)
				return result, nil
			}
		}
		target.SetString(content)
		return result, nil

	case reflect.Bool, reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		err := setPrimitive(target, strings.TrimSpace(content))
		if err == nil {
			return result, nil
		}
		if inner, unwrapErr := unwrapPrimitive(content); unwrapErr == nil {
			if setPrimitive(target, inner) == nil {
				return result, nil
			}
		}
		return result, err

	default:
		return decodeJSON[T](content)
	}
}

// setPrimitive converts s according to v's kind and stores it in v.
func setPrimitive(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("failed to parse content as bool: %w", err)
		}
		v.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("failed to parse content as float: %w", err)
		}
		v.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("failed to parse content as int: %w", err)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("failed to parse content as uint: %w", err)
		}
		v.SetUint(u)
	default:
		return fmt.Errorf("unsupported primitive kind %s", v.Kind())
	}
	return nil
}

// decodeJSON decodes content as JSON into T, repairing it when needed.
func decodeJSON[T any](content string) (T, error) {
	var result T
	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	err = json.Unmarshal([]byte(repaired), &result)
	if err == nil {
		return result, nil
	}

	if unwrapped, unwrapErr := unwrapEnvelopes(repaired); unwrapErr == nil {
		var retry T
		if json.Unmarshal([]byte(unwrapped), &retry) == nil {
			return retry, nil
		}
	}

	return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repaired)
}
