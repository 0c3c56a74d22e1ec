// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package markdown renders compiled definitions as markdown documentation.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/acalejos/scout/internal/gen"
	"github.com/acalejos/scout/internal/gen/printer"
	"github.com/acalejos/scout/internal/spec"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"formatOptions": formatOptions,
	"formatWrapper": formatWrapper,
	"yesNo":         yesNo,
}

var tmpl = template.Must(template.New("markdown.md.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.md.tmpl"))

func init() {
	printer.Register(&Printer{})
}

// Printer renders definitions as markdown documentation.
type Printer struct{}

// Name returns the printer identifier.
func (p *Printer) Name() string { return "markdown" }

// FileExtension returns the file extension for markdown files.
func (p *Printer) FileExtension() string { return ".md" }

// section is one rendered type scope. Nested scopes flatten into sections
// after their parent, with heading names qualified by the parent chain.
type section struct {
	Title      string
	Doc        string
	Attributes []row
}

type row struct {
	Name        string
	Type        string
	Required    bool
	Options     []gen.Option
	Description string
}

type templateData struct {
	Sections []section
}

// Print renders the definition as a markdown document, one section per
// type scope in declaration order.
func (p *Printer) Print(def *gen.Definition) ([]byte, error) {
	var data templateData
	collect(&data.Sections, def.Name, def.Doc, def.Attributes, def.Nested)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func collect(out *[]section, title, doc string, attrs []gen.Attribute, nested []gen.Nested) {
	sec := section{Title: title, Doc: doc}
	for _, a := range attrs {
		sec.Attributes = append(sec.Attributes, row{
			Name:        a.Name,
			Type:        a.Type.String(),
			Required:    a.Required,
			Options:     a.Options,
			Description: a.Doc(),
		})
	}
	for _, n := range nested {
		sec.Attributes = append(sec.Attributes, row{
			Name:        n.FieldName,
			Type:        formatWrapper(n),
			Required:    n.Required,
			Description: n.Doc,
		})
	}
	*out = append(*out, sec)

	for _, n := range nested {
		collect(out, title+"."+n.TypeName, n.Doc, n.Attributes, n.Nested)
	}
}

// formatWrapper names the nested wrapper form for documentation.
func formatWrapper(n gen.Nested) string {
	if n.Cardinality == spec.CardinalityMany {
		return "array<" + n.TypeName + ">"
	}
	return n.TypeName
}

// formatOptions formats an attribute's compiled options as a readable
// constraint list, skipping the doc option.
func formatOptions(opts []gen.Option) string {
	var parts []string
	for _, opt := range opts {
		if opt.Key == gen.OptionDoc {
			continue
		}
		if re, ok := opt.Value.(*regexp.Regexp); ok {
			parts = append(parts, fmt.Sprintf("%s: `%s`", opt.Key, re.String()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", opt.Key, opt.Value))
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
