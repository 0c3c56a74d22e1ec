// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package gen

import (
	"fmt"
	"regexp"

	"github.com/acalejos/scout/internal/spec"
)

// Generate compiles a schema specification into a Definition. It validates
// the spec first, then walks it in a single pure pass: attributes in field
// declaration order, then nested scopes in embed declaration order. The
// same spec always yields the same Definition.
func Generate(s *spec.Schema) (*Definition, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	def := &Definition{
		Name: spec.ToPascalCase(s.TypeName),
		Doc:  s.Description,
	}

	root := spec.ToSnakeCase(s.TypeName)
	for i, f := range s.Fields {
		attr, err := emitField(f, fmt.Sprintf("%s.fields[%d]", root, i))
		if err != nil {
			return nil, err
		}
		def.Attributes = append(def.Attributes, attr)
	}
	for i, e := range s.Embeds {
		nested, err := emitEmbed(e, fmt.Sprintf("%s.embeds[%d]", root, i))
		if err != nil {
			return nil, err
		}
		def.Nested = append(def.Nested, nested)
	}
	return def, nil
}

// emitField resolves a field's type and compiles its validations into an
// attribute declaration.
func emitField(f spec.Field, path string) (Attribute, error) {
	opts, err := compileValidations(f, path)
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{
		Name:     spec.ToSnakeCase(f.Name),
		Type:     TypeRef{Base: f.BaseType, Composite: f.Composite},
		Required: f.Required,
		Options:  opts,
	}, nil
}

// compileValidations transforms a field's validations into emitted options.
// The list is prefixed with a doc option when the field has a description;
// format patterns are compiled here, and a bad pattern is fatal for the
// field.
func compileValidations(f spec.Field, path string) ([]Option, error) {
	var opts []Option
	if f.Description != "" {
		opts = append(opts, Option{Key: OptionDoc, Value: f.Description})
	}
	for i, v := range f.Validations {
		if v.Key == spec.KeyFormat {
			pattern, _ := v.Value.(string)
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, &spec.PatternCompileError{
					Path:    fmt.Sprintf("%s.validations[%d]", path, i),
					Pattern: pattern,
					Err:     err,
				}
			}
			opts = append(opts, Option{Key: string(v.Key), Value: re})
			continue
		}
		opts = append(opts, Option{Key: string(v.Key), Value: v.Value})
	}
	return opts, nil
}

// emitEmbed recursively emits a nested type scope. Fields come first in
// declaration order, then nested embeds, mirroring the root ordering
// contract at every depth.
func emitEmbed(e spec.Embed, path string) (Nested, error) {
	nested := Nested{
		FieldName:   spec.ToSnakeCase(e.FieldName),
		TypeName:    spec.ToPascalCase(e.TypeName),
		Cardinality: e.Cardinality,
		Required:    e.Required,
		Doc:         e.Description,
	}
	for i, f := range e.Fields {
		attr, err := emitField(f, fmt.Sprintf("%s.fields[%d]", path, i))
		if err != nil {
			return Nested{}, err
		}
		nested.Attributes = append(nested.Attributes, attr)
	}
	for i, child := range e.Embeds {
		sub, err := emitEmbed(child, fmt.Sprintf("%s.embeds[%d]", path, i))
		if err != nil {
			return Nested{}, err
		}
		nested.Nested = append(nested.Nested, sub)
	}
	return nested, nil
}
