package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// envPattern matches ${VAR}, ${VAR:-default} and ${VAR:?error message}.
var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*|:\?[^}]*)?\}`)

// expandEnv expands environment variable references in configuration text.
// Supported patterns:
//   - ${VAR} - expands to the value of VAR, empty if unset
//   - ${VAR:-default} - expands to VAR or "default" if unset or empty
//   - ${VAR:?error message} - fails if VAR is unset or empty
func expandEnv(input string) (string, error) {
	var missing []string

	result := envPattern.ReplaceAllStringFunc(input, func(match string) string {
		inner := match[2 : len(match)-1]

		parts := strings.SplitN(inner, ":", 2)
		varName := parts[0]
		var modifier string
		if len(parts) > 1 {
			modifier = parts[1]
		}

		value, exists := os.LookupEnv(varName)

		switch {
		case strings.HasPrefix(modifier, "-"):
			if !exists || value == "" {
				return modifier[1:]
			}
		case strings.HasPrefix(modifier, "?"):
			if !exists || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", varName, modifier[1:]))
				return match
			}
		}

		return value
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("missing required environment variables: %s", strings.Join(missing, "; "))
	}
	return result, nil
}
