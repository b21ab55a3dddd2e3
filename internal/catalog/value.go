package catalog

import "strings"

// CoerceValue converts a trimmed scalar token into its typed value:
//
//   - "[a, b]" becomes a list, split on top-level commas only, with each
//     item trimmed and recursively coerced; "[]" yields an empty list
//   - matching single or double quotes are stripped (no escape processing)
//   - case-insensitive "true"/"false" become booleans (after quote stripping)
//   - anything else is returned as an opaque string
//
// Coercion never fails; unparsable input degrades to a string.
func CoerceValue(token string) any {
	if len(token) >= 2 && strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		inner := strings.TrimSpace(token[1 : len(token)-1])
		if inner == "" {
			return []any{}
		}
		parts := splitTopLevel(inner)
		items := make([]any, 0, len(parts))
		for _, part := range parts {
			items = append(items, CoerceValue(strings.TrimSpace(part)))
		}
		return items
	}

	if len(token) >= 2 {
		if (strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`)) ||
			(strings.HasPrefix(token, `'`) && strings.HasSuffix(token, `'`)) {
			token = token[1 : len(token)-1]
		}
	}

	switch strings.ToLower(token) {
	case "true":
		return true
	case "false":
		return false
	}
	return token
}

// splitTopLevel splits on commas that are not inside brackets.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
