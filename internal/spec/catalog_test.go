// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredValueKind(t *testing.T) {
	tests := []struct {
		key  ValidationKey
		want ValueKind
	}{
		{KeyGreaterThan, KindNumber},
		{KeyLessThan, KindNumber},
		{KeyLessThanOrEqualTo, KindNumber},
		{KeyGreaterThanOrEqualTo, KindNumber},
		{KeyEqualTo, KindNumber},
		{KeyNotEqualTo, KindNumber},
		{KeyFormat, KindString},
		{KeySubsetOf, KindList},
		{KeyIn, KindList},
		{KeyNotIn, KindList},
		{KeyIs, KindInteger},
		{KeyMin, KindInteger},
		{KeyMax, KindInteger},
		{KeyCount, KindInteger},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			kind, ok := RequiredValueKind(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestRequiredValueKind_UnknownKey(t *testing.T) {
	_, ok := RequiredValueKind("starts_with")
	assert.False(t, ok)
}

func TestApplicable_NumericComparators(t *testing.T) {
	numericKeys := []ValidationKey{
		KeyGreaterThan, KeyLessThan, KeyLessThanOrEqualTo,
		KeyGreaterThanOrEqualTo, KeyEqualTo, KeyNotEqualTo,
	}

	for _, key := range numericKeys {
		t.Run(string(key), func(t *testing.T) {
			assert.True(t, Applicable(key, TypeInteger, CompositeNone))
			assert.True(t, Applicable(key, TypeFloat, CompositeNone))

			assert.False(t, Applicable(key, TypeBoolean, CompositeNone))
			assert.False(t, Applicable(key, TypeString, CompositeNone))
			assert.False(t, Applicable(key, TypeInteger, CompositeArray))
			assert.False(t, Applicable(key, TypeFloat, CompositeMap))
		})
	}
}

func TestApplicable_LengthKeys(t *testing.T) {
	// min, max and is apply to string arrays only, not plain strings and
	// not arrays of other types.
	for _, key := range []ValidationKey{KeyMin, KeyMax, KeyIs} {
		t.Run(string(key), func(t *testing.T) {
			assert.True(t, Applicable(key, TypeString, CompositeArray))

			assert.False(t, Applicable(key, TypeString, CompositeNone))
			assert.False(t, Applicable(key, TypeString, CompositeMap))
			assert.False(t, Applicable(key, TypeInteger, CompositeArray))
		})
	}
}

func TestApplicable_Format(t *testing.T) {
	assert.True(t, Applicable(KeyFormat, TypeString, CompositeNone))
	assert.True(t, Applicable(KeyFormat, TypeString, CompositeArray))
	assert.False(t, Applicable(KeyFormat, TypeInteger, CompositeNone))
	assert.False(t, Applicable(KeyFormat, TypeBinary, CompositeNone))
}

func TestApplicable_Unrestricted(t *testing.T) {
	for _, key := range []ValidationKey{KeySubsetOf, KeyIn, KeyNotIn, KeyCount} {
		t.Run(string(key), func(t *testing.T) {
			assert.True(t, Applicable(key, TypeBoolean, CompositeNone))
			assert.True(t, Applicable(key, TypeString, CompositeArray))
			assert.True(t, Applicable(key, TypeMap, CompositeMap))
		})
	}
}

func TestApplicable_UnknownKey(t *testing.T) {
	assert.False(t, Applicable("length", TypeString, CompositeNone))
}
