package catalog

import (
	"regexp"
	"strings"
)

// parserState tracks what an indented or dashed line attaches to.
type parserState int

const (
	// stateIdle: the next line must be a plain key: value line.
	stateIdle parserState = iota
	// stateInList: dashed lines append to the active list key.
	stateInList
	// stateInAccess: indented lines are access sub-fields.
	stateInAccess
)

// listItemRegex matches a list item line: leading whitespace, a dash, and at
// least one whitespace character before the item.
var listItemRegex = regexp.MustCompile(`^\s+-\s`)

// ParseBlock parses the raw text of one fenced catalog block into a
// Descriptor. The grammar is a single-pass, line-oriented state machine with
// states {idle, in-list, in-access}; it supports exactly one level of list
// nesting and exactly one nested mapping (access), and nothing more.
//
// Blank lines and lines whose first non-space character is '#' are skipped.
// Any line violating the active state's rules aborts with a *ParseError
// carrying the offending raw line.
func ParseBlock(block string) (Descriptor, error) {
	data := Descriptor{}
	state := stateIdle
	listKey := ""

	for _, raw := range strings.Split(strings.TrimSpace(block), "\n") {
		line := strings.TrimRight(raw, "\r")
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		// Rule 1: dashed list item under the active list key. Checked
		// before the access rule so a stray dash inside access fails
		// instead of being absorbed as a sub-field.
		if listItemRegex.MatchString(line) {
			if state != stateInList {
				return nil, &ParseError{Message: "list item without an active key", Line: line}
			}
			item := strings.TrimSpace(stripped[1:])
			data[listKey] = append(data[listKey].([]any), CoerceValue(item))
			continue
		}

		// Rule 2: indented sub-field inside the access mapping.
		if state == stateInAccess && strings.HasPrefix(line, "  ") {
			subKey, subVal, ok := strings.Cut(stripped, ":")
			if !ok {
				return nil, &ParseError{Message: "malformed access line", Line: line}
			}
			access := data[FieldAccess].(map[string]any)
			access[strings.TrimSpace(subKey)] = CoerceValue(strings.TrimSpace(subVal))
			continue
		}

		// Rule 3: plain key: value line.
		key, val, ok := strings.Cut(stripped, ":")
		if !ok {
			return nil, &ParseError{Message: "cannot parse line", Line: line}
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		if val == "" {
			if key == FieldAccess {
				data[key] = map[string]any{}
				state = stateInAccess
				listKey = ""
			} else {
				data[key] = []any{}
				state = stateInList
				listKey = key
			}
			continue
		}

		data[key] = CoerceValue(val)
		state = stateIdle
		listKey = ""
	}

	return data, nil
}
