// Package jsonschema derives JSON Schema documents from Go types by
// reflection. Tools use it to advertise the shape of their input and output.
//
// Field names come from `json` tags. A `jsonschema` tag adds a description,
// enum values, a minimum, or forces a field to be required:
//
//	Op string `json:"Op" jsonschema:"description=Operation,enum=add,enum=div,required"`
//
// Nested structs are inlined. A struct that refers back to itself is emitted
// as a bare object at the point of recursion.
package jsonschema
