// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package spec

import "fmt"

// SchemaValidationError reports a spec that violates a structural rule: a
// validation key inapplicable to its field's base type and composite shape,
// or an enum-valued field holding a value outside its closed set.
// Path locates the offending element within the spec tree, e.g.
// "author.fields[2].validations[0]".
type SchemaValidationError struct {
	Path   string
	Reason string
}

func (e *SchemaValidationError) Error() string {
	if e.Path == "" {
		return "invalid schema spec: " + e.Reason
	}
	return fmt.Sprintf("invalid schema spec at %s: %s", e.Path, e.Reason)
}

// ValueKindMismatchError reports a validation whose value does not hold the
// runtime kind its key requires.
type ValueKindMismatchError struct {
	Path  string
	Key   ValidationKey
	Want  ValueKind
	Value any
}

func (e *ValueKindMismatchError) Error() string {
	return fmt.Sprintf("invalid schema spec at %s: %s requires a %s value, got %T",
		e.Path, e.Key, e.Want, e.Value)
}

// PatternCompileError reports a format validation whose pattern string does
// not compile. Fatal for the field; never retried here.
type PatternCompileError struct {
	Path    string
	Pattern string
	Err     error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("invalid format pattern %q at %s: %v", e.Pattern, e.Path, e.Err)
}

func (e *PatternCompileError) Unwrap() error { return e.Err }

// NameCollisionError reports a generated type name that conflicts with an
// existing registration.
type NameCollisionError struct {
	Name string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("type %q is already registered", e.Name)
}
