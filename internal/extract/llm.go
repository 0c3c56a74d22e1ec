// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package extract drives one extraction run: ask the completion
// collaborator for a schema specification, compile it, then ask again to
// fill the compiled structure with values. The collaborators themselves
// (content fetching, the completion service) are caller-supplied; nothing
// in this package performs network I/O.
package extract

import "context"

// Role identifies the author of a message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one turn of a completion conversation.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest is a request to the completion collaborator.
type CompletionRequest struct {
	// Messages contains the conversation so far.
	Messages []Message

	// Temperature controls randomness in the output (0.0 to 2.0).
	Temperature *float64

	// MaxTokens limits the number of tokens to generate.
	MaxTokens *int
}

// CompletionResponse is the collaborator's reply.
type CompletionResponse struct {
	// Content is the generated text, expected to be a JSON document.
	Content string

	// FinishReason indicates why generation stopped, e.g. "stop", "length".
	FinishReason string
}

// Completer is the external AI completion service.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// Fetcher is the external content-fetch collaborator, returning the text
// of a source the schema should describe.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (string, error)
}
