// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

// Package main is the entry point for the scout CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/acalejos/scout/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
