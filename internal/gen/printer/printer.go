// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package printer defines the rendering interface for compiled type
// definitions and the registry all format printers register into.
package printer

import (
	"fmt"
	"sort"

	"github.com/acalejos/scout/internal/gen"
)

// Printer renders a compiled Definition to a target format.
type Printer interface {
	// Name returns the printer's identifier (e.g., "gostruct", "jsonschema").
	Name() string

	// Print renders the definition to the target format.
	Print(def *gen.Definition) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".go").
	FileExtension() string
}

var printers = make(map[string]Printer)

// Register adds a printer to the registry.
func Register(p Printer) {
	printers[p.Name()] = p
}

// Get retrieves a printer by name.
func Get(name string) (Printer, error) {
	p, ok := printers[name]
	if !ok {
		return nil, fmt.Errorf("unknown printer: %s", name)
	}
	return p, nil
}

// Available returns all registered printer names, sorted.
func Available() []string {
	names := make([]string, 0, len(printers))
	for name := range printers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
