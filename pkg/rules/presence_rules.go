package rules

import "reflect"

// Required fails for nil, blank strings, unchecked booleans and empty collections.
func Required(c Context, _ ...string) string {
	if IsEmpty(c.Value) {
		return c.Message()
	}
	return ""
}

// Confirmed checks the value against a sibling field.
// The sibling defaults to "<field>_confirmation" when no argument is given.
func Confirmed(c Context, args ...string) string {
	if IsEmpty(c.Value) {
		return ""
	}

	confirmation := c.Field + "_confirmation"
	if len(args) > 0 && args[0] != "" {
		confirmation = args[0]
	}

	other, _ := c.Sibling(confirmation)
	if reflect.DeepEqual(other, c.Value) || String(other) == String(c.Value) {
		return ""
	}
	return c.Message()
}
