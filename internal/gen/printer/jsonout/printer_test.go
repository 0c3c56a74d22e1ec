// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package jsonout

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acalejos/scout/internal/gen"
	"github.com/acalejos/scout/internal/spec"
)

func TestObject_Attributes(t *testing.T) {
	def := &gen.Definition{
		Name: "Product",
		Doc:  "A product listing",
		Attributes: []gen.Attribute{
			{Name: "price", Type: gen.TypeRef{Base: spec.TypeFloat}, Required: true,
				Options: []gen.Option{{Key: "greater_than", Value: 0.0}}},
			{Name: "tags", Type: gen.TypeRef{Base: spec.TypeString, Composite: spec.CompositeArray},
				Options: []gen.Option{{Key: "min", Value: 1}}},
			{Name: "sku", Type: gen.TypeRef{Base: spec.TypeString},
				Options: []gen.Option{{Key: "format", Value: regexp.MustCompile("^[A-Z]+$")}}},
		},
	}

	s := Object(def)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, "A product listing", s.Description)
	assert.Equal(t, []string{"price"}, s.Required)

	price := s.Properties["price"]
	require.NotNil(t, price)
	assert.Equal(t, "number", price.Type)
	require.NotNil(t, price.ExclusiveMinimum)
	assert.Equal(t, 0.0, *price.ExclusiveMinimum)

	tags := s.Properties["tags"]
	require.NotNil(t, tags)
	assert.Equal(t, "array", tags.Type)
	assert.Equal(t, "string", tags.Items.Type)
	require.NotNil(t, tags.MinItems)
	assert.Equal(t, 1, *tags.MinItems)

	sku := s.Properties["sku"]
	require.NotNil(t, sku)
	assert.Equal(t, "^[A-Z]+$", sku.Pattern)
}

func TestObject_NestedScopes(t *testing.T) {
	def := &gen.Definition{
		Name: "Post",
		Nested: []gen.Nested{
			{FieldName: "author", TypeName: "Author", Cardinality: spec.CardinalityOne,
				Required: true,
				Attributes: []gen.Attribute{
					{Name: "name", Type: gen.TypeRef{Base: spec.TypeString}, Required: true},
				}},
			{FieldName: "sections", TypeName: "Section", Cardinality: spec.CardinalityMany,
				Attributes: []gen.Attribute{
					{Name: "heading", Type: gen.TypeRef{Base: spec.TypeString}},
				}},
		},
	}

	s := Object(def)
	assert.Equal(t, []string{"author"}, s.Required)

	author := s.Properties["author"]
	require.NotNil(t, author)
	assert.Equal(t, "object", author.Type)
	assert.Equal(t, []string{"name"}, author.Required)

	sections := s.Properties["sections"]
	require.NotNil(t, sections)
	assert.Equal(t, "array", sections.Type)
	require.NotNil(t, sections.Items)
	assert.Equal(t, "object", sections.Items.Type)
	assert.Contains(t, sections.Items.Properties, "heading")
}

func TestObject_RangeAndMembershipOptions(t *testing.T) {
	def := &gen.Definition{
		Name: "T",
		Attributes: []gen.Attribute{
			{Name: "n", Type: gen.TypeRef{Base: spec.TypeInteger},
				Options: []gen.Option{
					{Key: "greater_than_or_equal_to", Value: 1.0},
					{Key: "less_than", Value: 10.0},
				}},
			{Name: "status", Type: gen.TypeRef{Base: spec.TypeString},
				Options: []gen.Option{{Key: "in", Value: []any{"draft", "live"}}}},
		},
	}

	s := Object(def)

	n := s.Properties["n"]
	require.NotNil(t, n.Minimum)
	assert.Equal(t, 1.0, *n.Minimum)
	require.NotNil(t, n.ExclusiveMaximum)
	assert.Equal(t, 10.0, *n.ExclusiveMaximum)

	status := s.Properties["status"]
	assert.Equal(t, []any{"draft", "live"}, status.Enum)
}

func TestObject_ElementOptionsOnItems(t *testing.T) {
	def := &gen.Definition{
		Name: "T",
		Attributes: []gen.Attribute{
			{Name: "codes", Type: gen.TypeRef{Base: spec.TypeString, Composite: spec.CompositeArray},
				Options: []gen.Option{{Key: "format", Value: regexp.MustCompile("^[A-Z]+$")}}},
			{Name: "labels", Type: gen.TypeRef{Base: spec.TypeString, Composite: spec.CompositeArray},
				Options: []gen.Option{{Key: "subset_of", Value: []any{"a", "b"}}}},
		},
	}

	s := Object(def)

	codes := s.Properties["codes"]
	require.NotNil(t, codes.Items)
	assert.Equal(t, "^[A-Z]+$", codes.Items.Pattern)
	assert.Empty(t, codes.Pattern)

	labels := s.Properties["labels"]
	require.NotNil(t, labels.Items)
	assert.Equal(t, []any{"a", "b"}, labels.Items.Enum)
	assert.Empty(t, labels.Enum)
}

func TestPrinter_Print(t *testing.T) {
	def := &gen.Definition{
		Name: "T",
		Attributes: []gen.Attribute{
			{Name: "title", Type: gen.TypeRef{Base: spec.TypeString}, Required: true},
		},
	}

	out, err := (&Printer{}).Print(def)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"type": "object"`)
	assert.Contains(t, string(out), `"title"`)
}
