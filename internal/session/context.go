// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/acalejos/scout/internal/project"
)

var (
	// ErrNotInitialized indicates no scout.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a scout project (scout.yaml not found)")

	// ErrInvalidProject indicates the project file exists but is invalid.
	ErrInvalidProject = errors.New("invalid project file")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the loaded project and the directory it was loaded from.
type Context struct {
	Project *project.Project
	Dir     string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the scout Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	path := filepath.Join(cwd, project.FileName)
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	p, err := project.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}

	return context.WithValue(ctx, contextKey{}, &Context{Project: p, Dir: cwd}), nil
}

// From extracts the scout Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if scoutCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return scoutCtx
	}
	return nil
}

// Save writes the context's project back to its scout.yaml.
func (c *Context) Save() error {
	return c.Project.Save(filepath.Join(c.Dir, project.FileName))
}
