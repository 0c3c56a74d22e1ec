// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package extract

import (
	"fmt"
	"strings"

	"github.com/acalejos/scout/internal/gen"
	"github.com/acalejos/scout/internal/gen/printer/jsonout"

	json "github.com/goccy/go-json"
)

const schemaSystemPrompt = `You design data schemas. Given source content, respond with a single JSON
object describing a schema for the structured data the content contains:

{
  "type_name": "PascalCase name",
  "description": "what the schema captures",
  "fields": [{"name", "base_type", "composite", "description", "required", "validations"}],
  "embeds": [{"field_name", "type_name", "cardinality", "required", "description", "fields"}]
}

base_type is one of: id, binary_id, integer, float, boolean, string, binary,
map, decimal, date, time, time_usec, naive_datetime, naive_datetime_usec,
utc_datetime, utc_datetime_usec, any. composite, when present, is "array" or
"map". cardinality is "one" or "many". validations is a list of single-entry
maps such as {"greater_than": 0} or {"format": "^[a-z]+$"}.

Respond with the JSON object only, no prose.`

const extractionSystemPrompt = `You extract structured data. Given source content and a JSON Schema,
respond with a single JSON object of extracted values conforming to the
schema. Respond with the JSON object only, no prose.`

// SchemaPrompt builds the messages requesting a schema specification for
// the given source content.
func SchemaPrompt(typeName, content string) []Message {
	var sb strings.Builder
	if typeName != "" {
		fmt.Fprintf(&sb, "Name the schema %q.\n\n", typeName)
	}
	sb.WriteString("Source content:\n\n")
	sb.WriteString(content)

	return []Message{
		{Role: RoleSystem, Content: schemaSystemPrompt},
		{Role: RoleUser, Content: sb.String()},
	}
}

// ExtractionPrompt builds the messages requesting values for a compiled
// definition, carrying its JSON Schema rendering so the collaborator knows
// the exact shape to fill.
func ExtractionPrompt(def *gen.Definition, content string) ([]Message, error) {
	schema, err := json.Marshal(jsonout.Object(def))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema for prompt: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "JSON Schema for %s:\n\n%s\n\nSource content:\n\n%s",
		def.Name, schema, content)

	return []Message{
		{Role: RoleSystem, Content: extractionSystemPrompt},
		{Role: RoleUser, Content: sb.String()},
	}, nil
}
