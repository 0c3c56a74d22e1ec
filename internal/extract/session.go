// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/acalejos/scout/internal/gen"
	"github.com/acalejos/scout/internal/spec"

	json "github.com/goccy/go-json"
)

// Session drives one extraction run against caller-supplied collaborators.
type Session struct {
	id        uuid.UUID
	log       *slog.Logger
	completer Completer
	fetcher   Fetcher
}

// Result is the outcome of a full extraction run.
type Result struct {
	Schema     *spec.Schema
	Definition *gen.Definition
	Values     map[string]any
	Failures   []Failure
}

// NewSession creates a session. logger may be nil, in which case the
// default logger is used.
func NewSession(completer Completer, fetcher Fetcher, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	return &Session{
		id:        id,
		log:       logger.With("session", id.String()),
		completer: completer,
		fetcher:   fetcher,
	}
}

// ID returns the session's request identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Run fetches the source, obtains a schema specification from the
// completion collaborator, compiles it, then obtains and checks extracted
// values in a second completion call. Validation failures in the extracted
// values are reported in the Result, not as an error: the schema itself
// compiled, only the data fell short.
func (s *Session) Run(ctx context.Context, source, typeName string) (*Result, error) {
	content, err := s.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
	}
	s.log.Info("fetched source", "source", source, "bytes", len(content))

	schema, err := s.RequestSchema(ctx, typeName, content)
	if err != nil {
		return nil, err
	}

	def, err := gen.Generate(schema)
	if err != nil {
		return nil, err
	}
	s.log.Info("compiled schema", "type", def.Name,
		"attributes", len(def.Attributes), "embeds", len(def.Nested))

	values, err := s.RequestValues(ctx, def, content)
	if err != nil {
		return nil, err
	}

	failures := Check(def, values)
	if len(failures) > 0 {
		s.log.Warn("extracted values failed validation", "failures", len(failures))
	}

	return &Result{
		Schema:     schema,
		Definition: def,
		Values:     values,
		Failures:   failures,
	}, nil
}

// RequestSchema asks the completion collaborator for a schema specification
// describing the content, and parses its reply.
func (s *Session) RequestSchema(ctx context.Context, typeName, content string) (*spec.Schema, error) {
	resp, err := s.completer.Complete(ctx, CompletionRequest{
		Messages: SchemaPrompt(typeName, content),
	})
	if err != nil {
		return nil, fmt.Errorf("schema completion failed: %w", err)
	}
	s.log.Info("received schema completion", "finish_reason", resp.FinishReason)

	schema, err := spec.ParseJSON([]byte(stripFences(resp.Content)))
	if err != nil {
		return nil, err
	}
	return schema, nil
}

// RequestValues asks the completion collaborator to fill the compiled
// definition with values from the content.
func (s *Session) RequestValues(ctx context.Context, def *gen.Definition, content string) (map[string]any, error) {
	messages, err := ExtractionPrompt(def, content)
	if err != nil {
		return nil, err
	}

	resp, err := s.completer.Complete(ctx, CompletionRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("extraction completion failed: %w", err)
	}
	s.log.Info("received extraction completion", "finish_reason", resp.FinishReason)

	var values map[string]any
	if err := json.Unmarshal([]byte(stripFences(resp.Content)), &values); err != nil {
		return nil, fmt.Errorf("failed to decode extracted values: %w", err)
	}
	return values, nil
}

// stripFences removes a surrounding markdown code fence, which completion
// services add despite instructions not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
