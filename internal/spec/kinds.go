// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package spec

import "fmt"

// BaseType is the primitive scalar kind of a field.
type BaseType string

// The closed set of base types a field may declare.
const (
	TypeID                BaseType = "id"
	TypeBinaryID          BaseType = "binary_id"
	TypeInteger           BaseType = "integer"
	TypeFloat             BaseType = "float"
	TypeBoolean           BaseType = "boolean"
	TypeString            BaseType = "string"
	TypeBinary            BaseType = "binary"
	TypeMap               BaseType = "map"
	TypeDecimal           BaseType = "decimal"
	TypeDate              BaseType = "date"
	TypeTime              BaseType = "time"
	TypeTimeUsec          BaseType = "time_usec"
	TypeNaiveDatetime     BaseType = "naive_datetime"
	TypeNaiveDatetimeUsec BaseType = "naive_datetime_usec"
	TypeUTCDatetime       BaseType = "utc_datetime"
	TypeUTCDatetimeUsec   BaseType = "utc_datetime_usec"
	TypeAny               BaseType = "any"
)

var baseTypes = map[BaseType]bool{
	TypeID: true, TypeBinaryID: true, TypeInteger: true, TypeFloat: true,
	TypeBoolean: true, TypeString: true, TypeBinary: true, TypeMap: true,
	TypeDecimal: true, TypeDate: true, TypeTime: true, TypeTimeUsec: true,
	TypeNaiveDatetime: true, TypeNaiveDatetimeUsec: true,
	TypeUTCDatetime: true, TypeUTCDatetimeUsec: true, TypeAny: true,
}

// ParseBaseType converts a string to a BaseType, failing on unknown values.
func ParseBaseType(s string) (BaseType, error) {
	bt := BaseType(s)
	if !baseTypes[bt] {
		return "", fmt.Errorf("unknown base type %q", s)
	}
	return bt, nil
}

// Composite is the shape wrapping a field's base type.
type Composite string

// Composite shapes. CompositeNone is the zero meaning and the default when
// a field spec omits the composite entirely.
const (
	CompositeNone  Composite = ""
	CompositeArray Composite = "array"
	CompositeMap   Composite = "map"
)

// ParseComposite converts a string to a Composite. The empty string and
// "none" both mean no composite shape.
func ParseComposite(s string) (Composite, error) {
	switch s {
	case "", "none":
		return CompositeNone, nil
	case "array":
		return CompositeArray, nil
	case "map":
		return CompositeMap, nil
	}
	return "", fmt.Errorf("unknown composite shape %q", s)
}

// Cardinality is whether an embed holds one nested object or many.
type Cardinality string

const (
	CardinalityOne  Cardinality = "one"
	CardinalityMany Cardinality = "many"
)

// ParseCardinality converts a string to a Cardinality, failing on unknown
// values. There is no default: an embed must declare one or many.
func ParseCardinality(s string) (Cardinality, error) {
	switch s {
	case "one":
		return CardinalityOne, nil
	case "many":
		return CardinalityMany, nil
	}
	return "", fmt.Errorf("unknown cardinality %q", s)
}

// ValidationKey names a validation rule attached to a field.
type ValidationKey string

// The closed set of validation keys.
const (
	KeyGreaterThan          ValidationKey = "greater_than"
	KeyLessThan             ValidationKey = "less_than"
	KeyLessThanOrEqualTo    ValidationKey = "less_than_or_equal_to"
	KeyGreaterThanOrEqualTo ValidationKey = "greater_than_or_equal_to"
	KeyEqualTo              ValidationKey = "equal_to"
	KeyNotEqualTo           ValidationKey = "not_equal_to"
	KeyFormat               ValidationKey = "format"
	KeySubsetOf             ValidationKey = "subset_of"
	KeyIn                   ValidationKey = "in"
	KeyNotIn                ValidationKey = "not_in"
	KeyIs                   ValidationKey = "is"
	KeyMin                  ValidationKey = "min"
	KeyMax                  ValidationKey = "max"
	KeyCount                ValidationKey = "count"
)

// ParseValidationKey converts a string to a ValidationKey, failing on
// unknown values.
func ParseValidationKey(s string) (ValidationKey, error) {
	k := ValidationKey(s)
	if _, ok := catalog[k]; !ok {
		return "", fmt.Errorf("unknown validation key %q", s)
	}
	return k, nil
}
