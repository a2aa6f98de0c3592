// Package template expands {{VAR}} placeholders, used for environment
// substitution in configured file paths.
package template

import (
	"fmt"
	"strings"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderErr("unclosed template expression in %q", input)
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderErr("empty template expression in %q", input)
		}

		value, ok := vars[key]
		if !ok {
			return "", renderErr("missing variable %q", key)
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func renderErr(format string, args ...any) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf(format, args...),
	}
}
