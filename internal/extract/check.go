// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package extract

import (
	"fmt"
	"regexp"

	"github.com/acalejos/scout/internal/gen"
	"github.com/acalejos/scout/internal/spec"
)

// Failure is one validation failure found in extracted values. Message is
// rendered through the option templater, so it carries the concrete limits
// of the failing option.
type Failure struct {
	Path    string
	Message string
}

func (f Failure) String() string { return f.Path + " " + f.Message }

// Failure message templates, keyed by the option that produced them.
var failureMessages = map[string]string{
	"required":                                  "can't be blank",
	string(spec.KeyGreaterThan):                 "must be greater than %{greater_than}",
	string(spec.KeyLessThan):                    "must be less than %{less_than}",
	string(spec.KeyLessThanOrEqualTo):           "must be less than or equal to %{less_than_or_equal_to}",
	string(spec.KeyGreaterThanOrEqualTo):        "must be greater than or equal to %{greater_than_or_equal_to}",
	string(spec.KeyEqualTo):                     "must be equal to %{equal_to}",
	string(spec.KeyNotEqualTo):                  "must be not equal to %{not_equal_to}",
	string(spec.KeyFormat):                      "has invalid format",
	string(spec.KeyIn):                          "is invalid",
	string(spec.KeySubsetOf):                    "has an invalid entry",
	string(spec.KeyNotIn):                       "is reserved",
	string(spec.KeyMin):                         "should have at least %{min} item(s)",
	string(spec.KeyMax):                         "should have at most %{max} item(s)",
	string(spec.KeyIs):                          "should have %{is} item(s)",
	string(spec.KeyCount):                       "should have %{count} item(s)",
}

// Check validates extracted values against a compiled definition and
// returns every failure found. A clean result is a nil slice.
func Check(def *gen.Definition, values map[string]any) []Failure {
	return checkScope("", def.Attributes, def.Nested, values)
}

func checkScope(prefix string, attrs []gen.Attribute, nested []gen.Nested, values map[string]any) []Failure {
	var failures []Failure

	for _, a := range attrs {
		path := joinPath(prefix, a.Name)
		v, present := values[a.Name]
		if !present || v == nil {
			if a.Required {
				failures = append(failures, fail(path, "required", nil))
			}
			continue
		}
		failures = append(failures, checkOptions(path, a.Options, v)...)
	}

	for _, n := range nested {
		path := joinPath(prefix, n.FieldName)
		v, present := values[n.FieldName]
		if !present || v == nil {
			if n.Required {
				failures = append(failures, fail(path, "required", nil))
			}
			continue
		}
		if n.Cardinality == spec.CardinalityMany {
			items, ok := v.([]any)
			if !ok {
				failures = append(failures, Failure{Path: path, Message: "is not a list"})
				continue
			}
			for i, item := range items {
				child, ok := item.(map[string]any)
				if !ok {
					failures = append(failures, Failure{Path: fmt.Sprintf("%s[%d]", path, i), Message: "is not an object"})
					continue
				}
				failures = append(failures, checkScope(fmt.Sprintf("%s[%d]", path, i), n.Attributes, n.Nested, child)...)
			}
			continue
		}
		child, ok := v.(map[string]any)
		if !ok {
			failures = append(failures, Failure{Path: path, Message: "is not an object"})
			continue
		}
		failures = append(failures, checkScope(path, n.Attributes, n.Nested, child)...)
	}

	return failures
}

func checkOptions(path string, opts []gen.Option, v any) []Failure {
	var failures []Failure
	for _, opt := range opts {
		if opt.Key == gen.OptionDoc {
			continue
		}
		if ok := checkOption(opt, v); !ok {
			failures = append(failures, fail(path, opt.Key, opt.Value))
		}
	}
	return failures
}

func checkOption(opt gen.Option, v any) bool {
	switch spec.ValidationKey(opt.Key) {
	case spec.KeyGreaterThan, spec.KeyLessThan, spec.KeyLessThanOrEqualTo,
		spec.KeyGreaterThanOrEqualTo, spec.KeyEqualTo, spec.KeyNotEqualTo:
		return checkNumeric(spec.ValidationKey(opt.Key), opt.Value, v)
	case spec.KeyFormat:
		re, ok := opt.Value.(*regexp.Regexp)
		if !ok {
			return false
		}
		return matchFormat(re, v)
	case spec.KeyIn:
		return contains(opt.Value, v)
	case spec.KeyNotIn:
		return !contains(opt.Value, v)
	case spec.KeySubsetOf:
		items, ok := v.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if !contains(opt.Value, item) {
				return false
			}
		}
		return true
	case spec.KeyMin:
		n, ok := length(v)
		want, _ := spec.AsInt(opt.Value)
		return ok && n >= want
	case spec.KeyMax:
		n, ok := length(v)
		want, _ := spec.AsInt(opt.Value)
		return ok && n <= want
	case spec.KeyIs, spec.KeyCount:
		n, ok := length(v)
		want, _ := spec.AsInt(opt.Value)
		return ok && n == want
	}
	return true
}

func checkNumeric(key spec.ValidationKey, limit, v any) bool {
	got, ok := asFloat(v)
	if !ok {
		return false
	}
	want, ok := asFloat(limit)
	if !ok {
		return false
	}
	switch key {
	case spec.KeyGreaterThan:
		return got > want
	case spec.KeyLessThan:
		return got < want
	case spec.KeyLessThanOrEqualTo:
		return got <= want
	case spec.KeyGreaterThanOrEqualTo:
		return got >= want
	case spec.KeyEqualTo:
		return got == want
	case spec.KeyNotEqualTo:
		return got != want
	}
	return true
}

// matchFormat applies a compiled pattern to a scalar string, or element-wise
// to the values of an array or map composite.
func matchFormat(re *regexp.Regexp, v any) bool {
	switch val := v.(type) {
	case string:
		return re.MatchString(val)
	case []any:
		for _, item := range val {
			s, ok := item.(string)
			if !ok || !re.MatchString(s) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, item := range val {
			s, ok := item.(string)
			if !ok || !re.MatchString(s) {
				return false
			}
		}
		return true
	}
	return false
}

func fail(path, key string, value any) Failure {
	tmpl, ok := failureMessages[key]
	if !ok {
		tmpl = "is invalid"
	}
	return Failure{
		Path:    path,
		Message: spec.Render(tmpl, map[string]any{key: value}),
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func contains(list, v any) bool {
	items, ok := list.([]any)
	if !ok {
		return false
	}
	for _, item := range items {
		if fmt.Sprintf("%v", item) == fmt.Sprintf("%v", v) {
			return true
		}
	}
	return false
}

func length(v any) (int, bool) {
	switch val := v.(type) {
	case string:
		return len(val), true
	case []any:
		return len(val), true
	case map[string]any:
		return len(val), true
	}
	return 0, false
}
