package rules

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Number passes for numeric types and strings that parse as a number.
func Number(c Context, _ ...string) string {
	if IsEmpty(c.Value) {
		return ""
	}
	if _, ok := toFloat(c.Value); !ok {
		return c.Message()
	}
	return ""
}

// Min checks a lower bound: min(n) or min(n,value|length).
// Numeric values compare by value, everything else by length, unless forced.
func Min(c Context, args ...string) string {
	return bound(c, args, func(measured, limit float64) bool { return measured >= limit })
}

// Max checks an upper bound: max(n) or max(n,value|length).
func Max(c Context, args ...string) string {
	return bound(c, args, func(measured, limit float64) bool { return measured <= limit })
}

// Between checks an exclusive range: between(from,to) or between(from,to,value|length).
func Between(c Context, args ...string) string {
	if IsEmpty(c.Value) {
		return ""
	}
	if len(args) < 2 {
		return c.Message()
	}
	from, okFrom := parseFloat(args[0])
	to, okTo := parseFloat(args[1])
	if !okFrom || !okTo {
		return c.Message()
	}
	var force string
	if len(args) > 2 {
		force = args[2]
	}
	measured, ok := measure(c.Value, force)
	if !ok || measured <= from || measured >= to {
		return c.Message()
	}
	return ""
}

func bound(c Context, args []string, within func(measured, limit float64) bool) string {
	if IsEmpty(c.Value) {
		return ""
	}
	if len(args) == 0 {
		return c.Message()
	}
	limit, ok := parseFloat(args[0])
	if !ok {
		return c.Message()
	}
	var force string
	if len(args) > 1 {
		force = args[1]
	}
	measured, ok := measure(c.Value, force)
	if !ok || !within(measured, limit) {
		return c.Message()
	}
	return ""
}

// measure returns the number a bound is compared against.
func measure(value any, force string) (float64, bool) {
	switch force {
	case "value":
		return toFloat(value)
	case "length":
		return length(value)
	}
	if n, ok := toFloat(value); ok {
		return n, true
	}
	return length(value)
}

func length(value any) (float64, bool) {
	if s, ok := value.(string); ok {
		return float64(utf8.RuneCountInString(s)), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return float64(rv.Len()), true
	}
	return float64(utf8.RuneCountInString(String(value))), true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case string:
		return parseFloat(v)
	case bool, nil:
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
