package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Schema is the subset of JSON Schema mathkit emits.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	// Items describes array elements.
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties describes map values.
	AdditionalProperties *Schema  `json:"additionalProperties,omitempty"`
	Enum                 []any    `json:"enum,omitempty"`
	Minimum              *float64 `json:"minimum,omitempty"`
}

// GenerateJSONSchema returns the schema for T. Malformed `jsonschema` tags
// are reported as errors.
func GenerateJSONSchema[T any]() (*Schema, error) {
	g := &generator{inProgress: make(map[reflect.Type]bool)}
	schema := g.schemaFor(reflect.TypeOf((*T)(nil)).Elem())
	if len(g.errs) > 0 {
		return schema, fmt.Errorf("jsonschema: %s", strings.Join(g.errs, "; "))
	}
	return schema, nil
}

// MustGenerateJSONSchema is like GenerateJSONSchema but panics on error.
// It is meant for package-level tool definitions whose tags are constant.
func MustGenerateJSONSchema[T any]() *Schema {
	schema, err := GenerateJSONSchema[T]()
	if err != nil {
		panic(err)
	}
	return schema
}

type generator struct {
	inProgress map[reflect.Type]bool
	errs       []string
}

func (g *generator) schemaFor(t reflect.Type) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return g.schemaFor(t.Elem())
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: g.schemaFor(t.Elem())}
	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: g.schemaFor(t.Elem())}
	case reflect.Struct:
		return g.structSchema(t)
	default:
		return &Schema{Type: "object"}
	}
}

func (g *generator) structSchema(t reflect.Type) *Schema {
	if g.inProgress[t] {
		return &Schema{Type: "object"}
	}
	g.inProgress[t] = true
	defer delete(g.inProgress, t)

	schema := &Schema{Type: "object", Properties: map[string]*Schema{}}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}

		fieldSchema := g.schemaFor(field.Type)
		requiredByTag, err := applyTag(field.Type, field.Tag.Get("jsonschema"), fieldSchema)
		if err != nil {
			g.errs = append(g.errs, fmt.Sprintf("%s.%s: %v", t.Name(), field.Name, err))
		}
		schema.Properties[name] = fieldSchema

		// Value fields without omitempty must be present.
		if requiredByTag || (field.Type.Kind() != reflect.Ptr && !omitEmpty) {
			schema.Required = append(schema.Required, name)
		}
	}
	return schema
}

// jsonName resolves a struct field's JSON name the way encoding/json does.
func jsonName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, strings.Contains(opts, "omitempty"), false
}

// applyTag applies a `jsonschema` tag to schema. Items are comma separated:
// description=<text>, enum=<value> (repeatable), minimum=<number>, required.
// Descriptions therefore cannot contain commas.
func applyTag(fieldType reflect.Type, tag string, schema *Schema) (required bool, err error) {
	if tag == "" {
		return false, nil
	}
	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		switch {
		case key == "required" && !hasValue:
			required = true
		case key == "description":
			schema.Description = value
		case key == "enum":
			v, err := enumValue(fieldType, value)
			if err != nil {
				return required, err
			}
			schema.Enum = append(schema.Enum, v)
		case key == "minimum":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return required, fmt.Errorf("parse minimum %q: %w", value, err)
			}
			schema.Minimum = &v
		default:
			return required, fmt.Errorf("unknown jsonschema tag item %q", item)
		}
	}
	return required, nil
}

// enumValue converts a tag enum literal to the field's JSON type.
func enumValue(fieldType reflect.Type, value string) (any, error) {
	for fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to int64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to float64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to bool failed: %w", value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("enum tag unsupported for field type: %v", fieldType)
	}
}

// JSONString renders the schema as JSON, indented when indent is true.
func (s *Schema) JSONString(indent bool) (string, error) {
	var (
		raw []byte
		err error
	)
	if indent {
		raw, err = json.MarshalIndent(s, "", "  ")
	} else {
		raw, err = json.Marshal(s)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(raw), nil
}

// String returns the compact JSON form of the schema.
func (s *Schema) String() string {
	out, err := s.JSONString(false)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}
