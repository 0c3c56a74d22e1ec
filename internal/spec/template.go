// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Scout Authors

package spec

import (
	"fmt"
	"regexp"
)

var tokenPattern = regexp.MustCompile(`%\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Render substitutes %{identifier} tokens in template with the stringified
// values from opts. Tokens with no matching option are left as-is, so a
// message never loses information when an option is missing.
func Render(template string, opts map[string]any) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(tok string) string {
		name := tok[2 : len(tok)-1]
		v, ok := opts[name]
		if !ok {
			return tok
		}
		return fmt.Sprintf("%v", v)
	})
}
