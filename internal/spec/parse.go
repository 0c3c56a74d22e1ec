// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package spec

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes a Schema from JSON and validates it. JSON is the wire
// format produced by the completion collaborator, so nothing here is
// trusted: every enum and validation passes through Validate before the
// schema is returned.
func ParseJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode schema spec: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseYAML decodes a Schema from YAML and validates it. YAML serves
// hand-written spec files.
func ParseYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode schema spec: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validations travel on the wire as single-entry maps, e.g.
// {"greater_than": 0}, matching how the completion collaborator emits them.

// UnmarshalJSON decodes a single-entry map into a Validation.
func (v *Validation) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return v.fromMap(raw)
}

// MarshalJSON encodes a Validation back to its single-entry map form.
func (v Validation) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{string(v.Key): v.Value})
}

// UnmarshalYAML decodes a single-entry map into a Validation.
func (v *Validation) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return v.fromMap(raw)
}

// MarshalYAML encodes a Validation back to its single-entry map form.
func (v Validation) MarshalYAML() (any, error) {
	return map[string]any{string(v.Key): v.Value}, nil
}

func (v *Validation) fromMap(raw map[string]any) error {
	if len(raw) != 1 {
		return fmt.Errorf("a validation must hold exactly one key, got %d", len(raw))
	}
	for k, val := range raw {
		// The key survives decoding even when unknown; Validate rejects it
		// with a path-annotated error instead of a bare decode failure.
		v.Key = ValidationKey(k)
		v.Value = val
	}
	return nil
}

// UnmarshalJSON normalizes the wire value "none" to the empty composite.
func (c *Composite) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "none" {
		s = ""
	}
	*c = Composite(s)
	return nil
}

// UnmarshalYAML normalizes the wire value "none" to the empty composite.
func (c *Composite) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "none" {
		s = ""
	}
	*c = Composite(s)
	return nil
}
