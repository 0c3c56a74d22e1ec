// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package extract

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acalejos/scout/internal/gen"
	"github.com/acalejos/scout/internal/spec"
)

func priceDef() *gen.Definition {
	return &gen.Definition{
		Name: "Product",
		Attributes: []gen.Attribute{
			{Name: "price", Type: gen.TypeRef{Base: spec.TypeFloat}, Required: true,
				Options: []gen.Option{{Key: "greater_than", Value: 0.0}}},
			{Name: "sku", Type: gen.TypeRef{Base: spec.TypeString},
				Options: []gen.Option{{Key: "format", Value: regexp.MustCompile("^[A-Z]+$")}}},
		},
		Nested: []gen.Nested{
			{FieldName: "author", TypeName: "Author", Cardinality: spec.CardinalityOne,
				Required: true,
				Attributes: []gen.Attribute{
					{Name: "name", Type: gen.TypeRef{Base: spec.TypeString}, Required: true},
				}},
		},
	}
}

func TestCheck_Clean(t *testing.T) {
	failures := Check(priceDef(), map[string]any{
		"price":  9.5,
		"sku":    "ABC",
		"author": map[string]any{"name": "Ada"},
	})
	assert.Empty(t, failures)
}

func TestCheck_RequiredMissing(t *testing.T) {
	failures := Check(priceDef(), map[string]any{"sku": "ABC"})
	require.Len(t, failures, 2)

	assert.Equal(t, "price", failures[0].Path)
	assert.Equal(t, "can't be blank", failures[0].Message)
	assert.Equal(t, "author", failures[1].Path)
}

func TestCheck_TemplatedMessages(t *testing.T) {
	failures := Check(priceDef(), map[string]any{
		"price":  -1.0,
		"author": map[string]any{"name": "Ada"},
	})
	require.Len(t, failures, 1)
	assert.Equal(t, "price", failures[0].Path)
	assert.Equal(t, "must be greater than 0", failures[0].Message)
}

func TestCheck_NestedPaths(t *testing.T) {
	failures := Check(priceDef(), map[string]any{
		"price":  1.0,
		"author": map[string]any{},
	})
	require.Len(t, failures, 1)
	assert.Equal(t, "author.name", failures[0].Path)
}

func TestCheck_ManyEmbeds(t *testing.T) {
	def := &gen.Definition{
		Name: "Site",
		Nested: []gen.Nested{
			{FieldName: "pages", TypeName: "Page", Cardinality: spec.CardinalityMany,
				Attributes: []gen.Attribute{
					{Name: "title", Type: gen.TypeRef{Base: spec.TypeString}, Required: true},
				}},
		},
	}

	failures := Check(def, map[string]any{
		"pages": []any{
			map[string]any{"title": "ok"},
			map[string]any{},
		},
	})
	require.Len(t, failures, 1)
	assert.Equal(t, "pages[1].title", failures[0].Path)
}

func TestCheck_Options(t *testing.T) {
	tests := []struct {
		name    string
		option  gen.Option
		value   any
		wantMsg string // empty means pass
	}{
		{"format pass", gen.Option{Key: "format", Value: regexp.MustCompile(`^\d+$`)}, "123", ""},
		{"format fail", gen.Option{Key: "format", Value: regexp.MustCompile(`^\d+$`)}, "abc", "has invalid format"},
		{"format array pass", gen.Option{Key: "format", Value: regexp.MustCompile(`^[A-Z]+$`)}, []any{"ABC", "DEF"}, ""},
		{"format array element fail", gen.Option{Key: "format", Value: regexp.MustCompile(`^[A-Z]+$`)}, []any{"ABC", "nope"}, "has invalid format"},
		{"format map pass", gen.Option{Key: "format", Value: regexp.MustCompile(`^[A-Z]+$`)}, map[string]any{"k": "ABC"}, ""},
		{"format map element fail", gen.Option{Key: "format", Value: regexp.MustCompile(`^[A-Z]+$`)}, map[string]any{"k": "nope"}, "has invalid format"},
		{"in pass", gen.Option{Key: "in", Value: []any{"a", "b"}}, "a", ""},
		{"in fail", gen.Option{Key: "in", Value: []any{"a", "b"}}, "z", "is invalid"},
		{"not_in fail", gen.Option{Key: "not_in", Value: []any{"admin"}}, "admin", "is reserved"},
		{"subset_of pass", gen.Option{Key: "subset_of", Value: []any{"a", "b", "c"}}, []any{"a", "c"}, ""},
		{"subset_of fail", gen.Option{Key: "subset_of", Value: []any{"a", "b"}}, []any{"a", "z"}, "has an invalid entry"},
		{"min pass", gen.Option{Key: "min", Value: 2}, []any{"x", "y"}, ""},
		{"min fail", gen.Option{Key: "min", Value: 2}, []any{"x"}, "should have at least 2 item(s)"},
		{"max fail", gen.Option{Key: "max", Value: 1}, []any{"x", "y"}, "should have at most 1 item(s)"},
		{"is fail", gen.Option{Key: "is", Value: 3}, []any{"x"}, "should have 3 item(s)"},
		{"count fail", gen.Option{Key: "count", Value: 2}, []any{"x"}, "should have 2 item(s)"},
		{"equal_to fail", gen.Option{Key: "equal_to", Value: 5.0}, 4.0, "must be equal to 5"},
		{"less_than_or_equal_to pass", gen.Option{Key: "less_than_or_equal_to", Value: 5.0}, 5.0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := &gen.Definition{
				Name: "T",
				Attributes: []gen.Attribute{
					{Name: "v", Options: []gen.Option{tt.option}},
				},
			}
			failures := Check(def, map[string]any{"v": tt.value})
			if tt.wantMsg == "" {
				assert.Empty(t, failures)
			} else {
				require.Len(t, failures, 1)
				assert.Equal(t, tt.wantMsg, failures[0].Message)
			}
		})
	}
}
