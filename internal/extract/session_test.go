// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCompleter replays canned responses in order.
type stubCompleter struct {
	responses []string
	requests  []CompletionRequest
}

func (s *stubCompleter) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	s.requests = append(s.requests, req)
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return &CompletionResponse{Content: resp, FinishReason: "stop"}, nil
}

type stubFetcher struct {
	content string
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) (string, error) {
	return s.content, nil
}

const schemaReply = `{
	"type_name": "Product",
	"fields": [
		{"name": "name", "base_type": "string", "required": true},
		{"name": "price", "base_type": "float", "required": true,
		 "validations": [{"greater_than": 0}]}
	]
}`

func TestSession_Run(t *testing.T) {
	completer := &stubCompleter{responses: []string{
		schemaReply,
		`{"name": "Widget", "price": 9.99}`,
	}}
	s := NewSession(completer, &stubFetcher{content: "Widget, $9.99"}, nil)

	result, err := s.Run(context.Background(), "https://example.com", "Product")
	require.NoError(t, err)

	assert.Equal(t, "Product", result.Definition.Name)
	assert.Equal(t, "Widget", result.Values["name"])
	assert.Empty(t, result.Failures)

	// Two completion calls: schema request, then extraction request.
	require.Len(t, completer.requests, 2)
	assert.Contains(t, completer.requests[1].Messages[1].Content, "JSON Schema for Product")
}

func TestSession_Run_ReportsValueFailures(t *testing.T) {
	completer := &stubCompleter{responses: []string{
		schemaReply,
		`{"name": "Widget", "price": -2}`,
	}}
	s := NewSession(completer, &stubFetcher{content: "irrelevant"}, nil)

	result, err := s.Run(context.Background(), "src", "")
	require.NoError(t, err)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "price", result.Failures[0].Path)
	assert.Equal(t, "must be greater than 0", result.Failures[0].Message)
}

func TestSession_Run_RejectsBadSchema(t *testing.T) {
	completer := &stubCompleter{responses: []string{
		`{"type_name": "T", "fields": [
			{"name": "flag", "base_type": "boolean", "validations": [{"greater_than": 1}]}]}`,
	}}
	s := NewSession(completer, &stubFetcher{}, nil)

	_, err := s.Run(context.Background(), "src", "")
	require.Error(t, err)
}

func TestSession_StripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}

func TestSession_DistinctIDs(t *testing.T) {
	a := NewSession(&stubCompleter{}, &stubFetcher{}, nil)
	b := NewSession(&stubCompleter{}, &stubFetcher{}, nil)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSchemaPrompt(t *testing.T) {
	messages := SchemaPrompt("Product", "some content")
	require.Len(t, messages, 2)
	assert.Equal(t, RoleSystem, messages[0].Role)
	assert.Contains(t, messages[1].Content, `Name the schema "Product".`)
	assert.Contains(t, messages[1].Content, "some content")
}
