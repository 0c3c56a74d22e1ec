// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package gostruct renders compiled definitions as Go struct source.
package gostruct

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/acalejos/scout/internal/gen"
	"github.com/acalejos/scout/internal/gen/printer"
	"github.com/acalejos/scout/internal/spec"
)

//go:embed gostruct.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "gostruct.go.tmpl"))

func init() {
	printer.Register(&Printer{Package: "schemas"})
}

// Printer renders definitions as Go struct declarations with json and
// validate tags. Package names the emitted package clause.
type Printer struct {
	Package string
}

// Name returns the printer identifier.
func (p *Printer) Name() string { return "gostruct" }

// FileExtension returns the file extension for Go source files.
func (p *Printer) FileExtension() string { return ".go" }

// templateData is the input to the gostruct template.
type templateData struct {
	Package   string
	NeedsTime bool
	Structs   []structDef
}

type structDef struct {
	Name   string
	Doc    string
	Fields []structField
}

type structField struct {
	Name string
	Type string
	Tag  string
	Doc  string
}

// Print renders the definition and all its nested scopes as a flat series
// of struct declarations, outermost first.
func (p *Printer) Print(def *gen.Definition) ([]byte, error) {
	data := templateData{Package: p.Package}
	if data.Package == "" {
		data.Package = "schemas"
	}

	if err := collect(&data.Structs, map[string]int{}, def.Name, def.Doc, def.Attributes, def.Nested); err != nil {
		return nil, err
	}

	for _, s := range data.Structs {
		for _, f := range s.Fields {
			if strings.Contains(f.Type, "time.Time") {
				data.NeedsTime = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gostruct.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// collect appends one struct for the given scope, then one per nested scope
// in declaration order. Attribute fields always precede embed fields within
// a struct. Scopes sharing a type name are emitted once when their shapes
// agree; a same-named scope with a different shape is a NameCollisionError,
// since the file could not declare both.
func collect(out *[]structDef, index map[string]int, name, doc string, attrs []gen.Attribute, nested []gen.Nested) error {
	s := structDef{Name: name, Doc: doc}

	for _, a := range attrs {
		s.Fields = append(s.Fields, attributeField(a))
	}
	for _, n := range nested {
		s.Fields = append(s.Fields, nestedField(n))
	}

	if i, seen := index[name]; seen {
		if !sameStruct((*out)[i], s) {
			return &spec.NameCollisionError{Name: name}
		}
	} else {
		index[name] = len(*out)
		*out = append(*out, s)
	}

	for _, n := range nested {
		if err := collect(out, index, n.TypeName, n.Doc, n.Attributes, n.Nested); err != nil {
			return err
		}
	}
	return nil
}

func sameStruct(a, b structDef) bool {
	if a.Name != b.Name || a.Doc != b.Doc || len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		if a.Fields[i] != b.Fields[i] {
			return false
		}
	}
	return true
}

// attributeField builds the struct field for a leaf attribute. Required
// attributes use the bare value type with a required validate entry;
// optional attributes use a pointer type with omitempty.
func attributeField(a gen.Attribute) structField {
	goType := resolveType(a.Type)
	jsonTag := a.Name
	validations := validateEntries(a)

	if !a.Required {
		jsonTag += ",omitempty"
		goType = "*" + goType
	}

	return structField{
		Name: toPascalCase(a.Name),
		Type: goType,
		Tag:  buildTag(jsonTag, validations),
		Doc:  a.Doc(),
	}
}

// nestedField builds the struct field referencing a nested type. The four
// wrapper forms: T for one+required, *T for one+optional, []T with a
// required entry for many+required, []T with omitempty for many+optional.
func nestedField(n gen.Nested) structField {
	goType := n.TypeName
	jsonTag := n.FieldName
	var validations []string

	switch {
	case n.Cardinality == spec.CardinalityMany && n.Required:
		goType = "[]" + goType
		validations = append(validations, "required")
	case n.Cardinality == spec.CardinalityMany:
		goType = "[]" + goType
		jsonTag += ",omitempty"
	case n.Required:
		validations = append(validations, "required")
	default:
		goType = "*" + goType
		jsonTag += ",omitempty"
	}

	return structField{
		Name: toPascalCase(n.FieldName),
		Type: goType,
		Tag:  buildTag(jsonTag, validations),
		Doc:  n.Doc,
	}
}

func buildTag(jsonTag string, validations []string) string {
	tag := `json:"` + jsonTag + `"`
	if len(validations) > 0 {
		tag += ` validate:"` + strings.Join(validations, ",") + `"`
	}
	return "`" + tag + "`"
}

// validateEntries renders an attribute's compiled options as validate tag
// entries, preserving option order. The doc option is carried as a field
// comment, not a tag entry.
func validateEntries(a gen.Attribute) []string {
	var entries []string
	if a.Required {
		entries = append(entries, "required")
	}
	for _, opt := range a.Options {
		if opt.Key == gen.OptionDoc {
			continue
		}
		entries = append(entries, opt.Key+"="+optionValue(opt.Value))
	}
	return entries
}

func optionValue(v any) string {
	switch val := v.(type) {
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, "|")
	case []string:
		return strings.Join(val, "|")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// resolveType maps a resolved spec type to a Go type string.
func resolveType(t gen.TypeRef) string {
	base := primitiveType(t.Base)
	switch t.Composite {
	case spec.CompositeArray:
		return "[]" + base
	case spec.CompositeMap:
		return "map[string]" + base
	}
	return base
}

func primitiveType(bt spec.BaseType) string {
	switch bt {
	case spec.TypeID, spec.TypeInteger:
		return "int64"
	case spec.TypeFloat, spec.TypeDecimal:
		return "float64"
	case spec.TypeBoolean:
		return "bool"
	case spec.TypeString, spec.TypeBinaryID:
		return "string"
	case spec.TypeBinary:
		return "[]byte"
	case spec.TypeMap:
		return "map[string]any"
	case spec.TypeDate, spec.TypeTime, spec.TypeTimeUsec,
		spec.TypeNaiveDatetime, spec.TypeNaiveDatetimeUsec,
		spec.TypeUTCDatetime, spec.TypeUTCDatetimeUsec:
		return "time.Time"
	default:
		return "any"
	}
}

// toPascalCase converts a snake_case identifier to PascalCase, uppercasing
// common Go acronyms.
func toPascalCase(s string) string {
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"http": "HTTP",
		"api":  "API",
		"json": "JSON",
		"xml":  "XML",
		"sql":  "SQL",
		"html": "HTML",
		"ip":   "IP",
		"uri":  "URI",
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}
