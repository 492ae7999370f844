package rules

import "slices"

// In passes when the value is one of the arguments.
func In(c Context, args ...string) string {
	if IsEmpty(c.Value) || slices.Contains(args, String(c.Value)) {
		return ""
	}
	return c.Message()
}

// NotIn passes when the value is none of the arguments.
func NotIn(c Context, args ...string) string {
	if IsEmpty(c.Value) || !slices.Contains(args, String(c.Value)) {
		return ""
	}
	return c.Message()
}
