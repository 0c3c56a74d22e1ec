// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package spec

// ValueKind is the runtime kind a validation key requires its value to hold.
type ValueKind string

const (
	KindNumber  ValueKind = "number"
	KindString  ValueKind = "string"
	KindList    ValueKind = "list"
	KindInteger ValueKind = "integer"
)

// rule is one row of the validation catalog: the value kind the key
// requires, a guard over the owning field's base type and composite shape,
// and the message template rendered when the guard rejects.
type rule struct {
	kind    ValueKind
	guard   func(BaseType, Composite) bool
	message string
}

func numericScalar(bt BaseType, c Composite) bool {
	return (bt == TypeInteger || bt == TypeFloat) && c == CompositeNone
}

func stringArray(bt BaseType, c Composite) bool {
	return bt == TypeString && c == CompositeArray
}

func stringBase(bt BaseType, _ Composite) bool {
	return bt == TypeString
}

func anyShape(BaseType, Composite) bool { return true }

// catalog is the full rule table. min, max and is are deliberately
// restricted to string arrays rather than plain strings; changing that is a
// schema-language decision, not an implementation one.
var catalog = map[ValidationKey]rule{
	KeyGreaterThan:          {KindNumber, numericScalar, "%{key} applies only to integer or float fields without a composite shape"},
	KeyLessThan:             {KindNumber, numericScalar, "%{key} applies only to integer or float fields without a composite shape"},
	KeyLessThanOrEqualTo:    {KindNumber, numericScalar, "%{key} applies only to integer or float fields without a composite shape"},
	KeyGreaterThanOrEqualTo: {KindNumber, numericScalar, "%{key} applies only to integer or float fields without a composite shape"},
	KeyEqualTo:              {KindNumber, numericScalar, "%{key} applies only to integer or float fields without a composite shape"},
	KeyNotEqualTo:           {KindNumber, numericScalar, "%{key} applies only to integer or float fields without a composite shape"},
	KeyMin:                  {KindInteger, stringArray, "%{key} applies only to arrays of strings"},
	KeyMax:                  {KindInteger, stringArray, "%{key} applies only to arrays of strings"},
	KeyIs:                   {KindInteger, stringArray, "%{key} applies only to arrays of strings"},
	KeyFormat:               {KindString, stringBase, "%{key} applies only to string fields"},
	KeySubsetOf:             {KindList, anyShape, ""},
	KeyIn:                   {KindList, anyShape, ""},
	KeyNotIn:                {KindList, anyShape, ""},
	KeyCount:                {KindInteger, anyShape, ""},
}

// RequiredValueKind returns the value kind a validation key requires.
// The second result is false for unknown keys.
func RequiredValueKind(key ValidationKey) (ValueKind, bool) {
	r, ok := catalog[key]
	if !ok {
		return "", false
	}
	return r.kind, true
}

// Applicable reports whether a validation key is legal for a field with the
// given base type and composite shape. Unknown keys are never applicable.
func Applicable(key ValidationKey, bt BaseType, c Composite) bool {
	r, ok := catalog[key]
	if !ok {
		return false
	}
	return r.guard(bt, c)
}

// guardMessage renders the catalog's rejection message for a key.
func guardMessage(key ValidationKey) string {
	r, ok := catalog[key]
	if !ok || r.message == "" {
		return Render("%{key} is not applicable here", map[string]any{"key": string(key)})
	}
	return Render(r.message, map[string]any{"key": string(key)})
}
