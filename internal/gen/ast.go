// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package gen turns a validated schema specification into an explicit type
// definition AST that printers render to target source text or runtime
// schema objects.
package gen

import (
	"github.com/acalejos/scout/internal/spec"
)

// OptionDoc is the key of the documentation option that leads an
// attribute's compiled option list when the field carries a description.
const OptionDoc = "doc"

// Option is one compiled validation (or documentation) entry attached to an
// attribute. For format validations Value holds the compiled
// *regexp.Regexp; for all other keys it is the spec value unchanged.
type Option struct {
	Key   string
	Value any
}

// TypeRef is an attribute's resolved type: a base type, optionally wrapped
// as an array or map of that base type.
type TypeRef struct {
	Base      spec.BaseType
	Composite spec.Composite
}

func (t TypeRef) String() string {
	switch t.Composite {
	case spec.CompositeArray:
		return "array<" + string(t.Base) + ">"
	case spec.CompositeMap:
		return "map<" + string(t.Base) + ">"
	}
	return string(t.Base)
}

// Attribute is one emitted leaf declaration: normalized name, resolved
// type, requiredness and compiled options in declaration order.
type Attribute struct {
	Name     string
	Type     TypeRef
	Required bool
	Options  []Option
}

// Doc returns the attribute's documentation string, empty when the source
// field had no description.
func (a Attribute) Doc() string {
	if len(a.Options) > 0 && a.Options[0].Key == OptionDoc {
		if s, ok := a.Options[0].Value.(string); ok {
			return s
		}
	}
	return ""
}

// Nested is one emitted nested type scope. The four wrapper forms from
// cardinality and requiredness differ only in Cardinality and Required;
// the inner attribute list is built identically for all of them.
type Nested struct {
	FieldName   string
	TypeName    string
	Cardinality spec.Cardinality
	Required    bool
	Doc         string
	Attributes  []Attribute
	Nested      []Nested
}

// Definition is the emitted root type: documentation, then attributes in
// field declaration order, then nested scopes in embed declaration order.
type Definition struct {
	Name       string
	Doc        string
	Attributes []Attribute
	Nested     []Nested
}
