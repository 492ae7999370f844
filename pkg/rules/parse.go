package rules

import (
	"regexp"
	"strings"
)

// invocationPattern is deliberately unanchored: the first alphanumeric run
// followed by a parenthesised list names the rule.
var invocationPattern = regexp.MustCompile(`([a-zA-Z0-9]+)\((.*)?\)`)

// Invocation is one parsed clause of a rule string.
type Invocation struct {
	Rule string
	Args []string
}

// Parse splits a pipe-delimited rule string into invocations in declaration order.
// Clauses that don't look like name(args) become bare rule names without arguments.
// Empty clauses (e.g. a trailing pipe) are dropped.
func Parse(rules string) []Invocation {
	segments := strings.Split(rules, "|")
	invocations := make([]Invocation, 0, len(segments))

	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		match := invocationPattern.FindStringSubmatch(segment)
		if match == nil {
			invocations = append(invocations, Invocation{Rule: segment, Args: []string{}})
			continue
		}

		invocations = append(invocations, Invocation{Rule: match[1], Args: splitArgs(match[2])})
	}

	return invocations
}

func splitArgs(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	args := make([]string, len(parts))
	for i, part := range parts {
		args[i] = strings.TrimSpace(part)
	}
	return args
}
