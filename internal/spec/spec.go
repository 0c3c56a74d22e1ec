// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package spec holds the schema specification model: the entity tree an
// external producer hands the compiler, the closed validation rule catalog,
// and the structural checks applied before any code is generated.
package spec

import "fmt"

// Validation is one named constraint on a field. Value is polymorphic; the
// runtime kind it must hold depends on Key (see the catalog).
type Validation struct {
	Key   ValidationKey
	Value any
}

// Field describes one leaf attribute of a schema.
type Field struct {
	Name        string       `json:"name" yaml:"name"`
	BaseType    BaseType     `json:"base_type" yaml:"base_type"`
	Composite   Composite    `json:"composite,omitempty" yaml:"composite,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool         `json:"required,omitempty" yaml:"required,omitempty"`
	Validations []Validation `json:"validations,omitempty" yaml:"validations,omitempty"`
}

// Embed describes one nested-object attribute with its own sub-fields.
// Embeds nest arbitrarily deep through the Embeds list.
type Embed struct {
	FieldName   string      `json:"field_name" yaml:"field_name"`
	TypeName    string      `json:"type_name" yaml:"type_name"`
	Cardinality Cardinality `json:"cardinality" yaml:"cardinality"`
	Required    bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field     `json:"fields,omitempty" yaml:"fields,omitempty"`
	Embeds      []Embed     `json:"embeds,omitempty" yaml:"embeds,omitempty"`
}

// Schema is the root of a specification tree. It exclusively owns its
// fields and embeds; the tree is acyclic, and Validate rejects
// self-referential type names rather than assuming the producer got it
// right.
type Schema struct {
	TypeName    string  `json:"type_name" yaml:"type_name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	Embeds      []Embed `json:"embeds,omitempty" yaml:"embeds,omitempty"`
}

// Validate checks the whole spec tree against the closed value sets and the
// validation rule catalog. It returns the first violation found, annotated
// with the path of the offending element.
func (s *Schema) Validate() error {
	if s.TypeName == "" {
		return &SchemaValidationError{Path: "type_name", Reason: "type name is required"}
	}
	root := ToSnakeCase(s.TypeName)
	for i := range s.Fields {
		if err := s.Fields[i].validate(fmt.Sprintf("%s.fields[%d]", root, i)); err != nil {
			return err
		}
	}
	ancestors := map[string]bool{ToPascalCase(s.TypeName): true}
	for i := range s.Embeds {
		if err := s.Embeds[i].validate(fmt.Sprintf("%s.embeds[%d]", root, i), ancestors); err != nil {
			return err
		}
	}
	return nil
}

func (f *Field) validate(path string) error {
	if f.Name == "" {
		return &SchemaValidationError{Path: path, Reason: "field name is required"}
	}
	if !baseTypes[f.BaseType] {
		return &SchemaValidationError{
			Path:   path,
			Reason: fmt.Sprintf("unknown base type %q", string(f.BaseType)),
		}
	}
	switch f.Composite {
	case CompositeNone, CompositeArray, CompositeMap:
	default:
		return &SchemaValidationError{
			Path:   path,
			Reason: fmt.Sprintf("unknown composite shape %q", string(f.Composite)),
		}
	}
	for i, v := range f.Validations {
		vpath := fmt.Sprintf("%s.validations[%d]", path, i)
		kind, ok := RequiredValueKind(v.Key)
		if !ok {
			return &SchemaValidationError{
				Path:   vpath,
				Reason: fmt.Sprintf("unknown validation key %q", string(v.Key)),
			}
		}
		if !Applicable(v.Key, f.BaseType, f.Composite) {
			return &SchemaValidationError{Path: vpath, Reason: guardMessage(v.Key)}
		}
		if !matchesKind(kind, v.Value) {
			return &ValueKindMismatchError{Path: vpath, Key: v.Key, Want: kind, Value: v.Value}
		}
	}
	return nil
}

func (e *Embed) validate(path string, ancestors map[string]bool) error {
	if e.FieldName == "" {
		return &SchemaValidationError{Path: path, Reason: "embed field name is required"}
	}
	if e.TypeName == "" {
		return &SchemaValidationError{Path: path, Reason: "embed type name is required"}
	}
	if e.Cardinality != CardinalityOne && e.Cardinality != CardinalityMany {
		return &SchemaValidationError{
			Path:   path,
			Reason: fmt.Sprintf("unknown cardinality %q", string(e.Cardinality)),
		}
	}

	typeName := ToPascalCase(e.TypeName)
	if ancestors[typeName] {
		return &SchemaValidationError{
			Path:   path,
			Reason: fmt.Sprintf("embed type %q refers to an enclosing type", typeName),
		}
	}

	name := ToSnakeCase(e.FieldName)
	for i := range e.Fields {
		if err := e.Fields[i].validate(fmt.Sprintf("%s.%s.fields[%d]", path, name, i)); err != nil {
			return err
		}
	}

	ancestors[typeName] = true
	defer delete(ancestors, typeName)
	for i := range e.Embeds {
		if err := e.Embeds[i].validate(fmt.Sprintf("%s.%s.embeds[%d]", path, name, i), ancestors); err != nil {
			return err
		}
	}
	return nil
}

// matchesKind reports whether value holds the given runtime kind. Numbers
// arrive from JSON decoding as float64, so integer kinds accept integral
// floats as well as native integer types.
func matchesKind(kind ValueKind, value any) bool {
	switch kind {
	case KindNumber:
		_, ok := asNumber(value)
		return ok
	case KindString:
		_, ok := value.(string)
		return ok
	case KindList:
		return isList(value)
	case KindInteger:
		_, ok := AsInt(value)
		return ok
	}
	return false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// AsInt converts a decoded numeric value to an int when it is integral.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int64(n)) {
			return int(n), true
		}
	case float32:
		if float64(n) == float64(int64(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func isList(v any) bool {
	switch v.(type) {
	case []any, []string, []int, []float64:
		return true
	}
	return false
}
