// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package project handles the scout.yaml project file.
package project

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the current version of the project file format.
const CurrentVersion = 1

// FileName is the name of the scout project file.
const FileName = "scout.yaml"

// Project represents the scout.yaml project file.
type Project struct {
	Version     int               `yaml:"version"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Targets     map[string]Target `yaml:"targets,omitempty"`
}

// Target is one named extraction target: a source to fetch, the schema
// type name to generate, and where the rendered output goes.
type Target struct {
	Source   string `yaml:"source"`
	TypeName string `yaml:"type_name"`
	Format   string `yaml:"format,omitempty"`
	Output   string `yaml:"output,omitempty"`
	// Prefix qualifies the generated type name before registration, so
	// concurrent targets never collide in a shared registry.
	Prefix string `yaml:"prefix,omitempty"`
}

// New creates a project with the given name and empty targets.
func New(name, description string) *Project {
	return &Project{
		Version:     CurrentVersion,
		Name:        name,
		Description: description,
		Targets:     make(map[string]Target),
	}
}

// Load reads a Project from a file path.
func Load(path string) (*Project, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var p Project
	if err := yaml.NewDecoder(f).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the Project to a file path.
func (p *Project) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(p)
}

// Validate checks the project for required fields and valid values.
func (p *Project) Validate() error {
	if p.Version != CurrentVersion {
		return errors.New("unsupported project file version")
	}
	if p.Name == "" {
		return errors.New("project name is required")
	}
	for name, t := range p.Targets {
		if t.Source == "" {
			return fmt.Errorf("target %q: source is required", name)
		}
		if t.TypeName == "" {
			return fmt.Errorf("target %q: type_name is required", name)
		}
	}
	return nil
}
