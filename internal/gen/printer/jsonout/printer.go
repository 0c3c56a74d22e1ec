// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package jsonout renders compiled definitions as JSON Schema, either as a
// runtime schema object or serialized to JSON bytes.
package jsonout

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/acalejos/scout/internal/gen"
	"github.com/acalejos/scout/internal/gen/printer"
	"github.com/acalejos/scout/internal/spec"
)

func init() {
	printer.Register(&Printer{})
}

// Printer renders definitions as JSON Schema documents.
type Printer struct{}

// Name returns the printer identifier.
func (p *Printer) Name() string { return "jsonschema" }

// FileExtension returns the file extension for JSON Schema files.
func (p *Printer) FileExtension() string { return ".json" }

// Print serializes the definition's JSON Schema object.
func (p *Printer) Print(def *gen.Definition) ([]byte, error) {
	schema := Object(def)
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema: %w", err)
	}
	return append(data, '\n'), nil
}

// Object constructs the runtime JSON Schema object for a definition
// without serializing it, for callers loading the schema directly into a
// running process.
func Object(def *gen.Definition) *jsonschema.Schema {
	return scopeSchema(def.Doc, def.Attributes, def.Nested)
}

func scopeSchema(doc string, attrs []gen.Attribute, nested []gen.Nested) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:        "object",
		Description: doc,
		Properties:  make(map[string]*jsonschema.Schema),
	}

	for _, a := range attrs {
		s.Properties[a.Name] = attributeSchema(a)
		if a.Required {
			s.Required = append(s.Required, a.Name)
		}
	}
	for _, n := range nested {
		inner := scopeSchema(n.Doc, n.Attributes, n.Nested)
		if n.Cardinality == spec.CardinalityMany {
			s.Properties[n.FieldName] = &jsonschema.Schema{
				Type:  "array",
				Items: inner,
			}
		} else {
			s.Properties[n.FieldName] = inner
		}
		if n.Required {
			s.Required = append(s.Required, n.FieldName)
		}
	}
	return s
}

func attributeSchema(a gen.Attribute) *jsonschema.Schema {
	s := baseSchema(a.Type.Base)
	s.Description = a.Doc()

	switch a.Type.Composite {
	case spec.CompositeArray:
		s = &jsonschema.Schema{
			Description: s.Description,
			Type:        "array",
			Items:       baseSchema(a.Type.Base),
		}
	case spec.CompositeMap:
		s = &jsonschema.Schema{
			Description:          s.Description,
			Type:                 "object",
			AdditionalProperties: baseSchema(a.Type.Base),
		}
	}

	applyOptions(s, a.Options)
	return s
}

// applyOptions maps compiled options onto the JSON Schema constraints that
// can express them. Element-shaped constraints (format, subset_of) land on
// the element schema of an array or map attribute, since a pattern on the
// container itself constrains nothing. not_equal_to and not_in have no
// direct counterpart and are omitted from this rendering; the markdown
// printer documents them.
func applyOptions(s *jsonschema.Schema, opts []gen.Option) {
	elem := s.Items
	if elem == nil {
		elem = s.AdditionalProperties
	}
	if elem == nil {
		elem = s
	}

	for _, opt := range opts {
		switch spec.ValidationKey(opt.Key) {
		case spec.KeyGreaterThan:
			s.ExclusiveMinimum = floatPtr(opt.Value)
		case spec.KeyGreaterThanOrEqualTo:
			s.Minimum = floatPtr(opt.Value)
		case spec.KeyLessThan:
			s.ExclusiveMaximum = floatPtr(opt.Value)
		case spec.KeyLessThanOrEqualTo:
			s.Maximum = floatPtr(opt.Value)
		case spec.KeyEqualTo:
			s.Minimum = floatPtr(opt.Value)
			s.Maximum = floatPtr(opt.Value)
		case spec.KeyFormat:
			if re, ok := opt.Value.(*regexp.Regexp); ok {
				elem.Pattern = re.String()
			}
		case spec.KeyIn:
			s.Enum = listValues(opt.Value)
		case spec.KeySubsetOf:
			elem.Enum = listValues(opt.Value)
		case spec.KeyMin:
			s.MinItems = intPtr(opt.Value)
		case spec.KeyMax:
			s.MaxItems = intPtr(opt.Value)
		case spec.KeyIs, spec.KeyCount:
			s.MinItems = intPtr(opt.Value)
			s.MaxItems = intPtr(opt.Value)
		}
	}
}

func baseSchema(bt spec.BaseType) *jsonschema.Schema {
	switch bt {
	case spec.TypeID, spec.TypeInteger:
		return &jsonschema.Schema{Type: "integer"}
	case spec.TypeFloat, spec.TypeDecimal:
		return &jsonschema.Schema{Type: "number"}
	case spec.TypeBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case spec.TypeMap:
		return &jsonschema.Schema{Type: "object"}
	case spec.TypeDate:
		return &jsonschema.Schema{Type: "string", Format: "date"}
	case spec.TypeTime, spec.TypeTimeUsec:
		return &jsonschema.Schema{Type: "string", Format: "time"}
	case spec.TypeNaiveDatetime, spec.TypeNaiveDatetimeUsec,
		spec.TypeUTCDatetime, spec.TypeUTCDatetimeUsec:
		return &jsonschema.Schema{Type: "string", Format: "date-time"}
	case spec.TypeBinaryID:
		return &jsonschema.Schema{Type: "string", Format: "uuid"}
	case spec.TypeAny:
		return &jsonschema.Schema{}
	default:
		return &jsonschema.Schema{Type: "string"}
	}
}

func floatPtr(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	}
	return nil
}

func intPtr(v any) *int {
	if n, ok := spec.AsInt(v); ok {
		return &n
	}
	return nil
}

func listValues(v any) []any {
	switch vals := v.(type) {
	case []any:
		return vals
	case []string:
		out := make([]any, len(vals))
		for i, s := range vals {
			out[i] = s
		}
		return out
	}
	return nil
}
