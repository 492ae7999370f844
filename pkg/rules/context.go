package rules

import (
	"fmt"
	"reflect"
	"strings"
)

// MessageFactory renders the error message for a failed rule.
type MessageFactory func(Context) string

// Context is what a rule sees when it is invoked for a single field.
type Context struct {
	Field  string
	Label  string
	Value  any
	Args   []string
	Values map[string]any
	Error  MessageFactory
}

// Message renders the resolved message factory for this context.
func (c Context) Message() string {
	if c.Error == nil {
		return fmt.Sprintf("invalid value for %s", c.Field)
	}
	return c.Error(c)
}

// Sibling returns the value of another field of the same form.
func (c Context) Sibling(field string) (any, bool) {
	v, ok := c.Values[field]
	return v, ok
}

// String renders a field value the way it was most likely typed into a form.
func String(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// IsEmpty reports whether a value counts as "not filled in".
// Unchecked booleans, blank strings and empty collections are empty; numeric zero is not.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}

	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	}
	return false
}
