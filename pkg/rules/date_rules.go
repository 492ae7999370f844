package rules

import (
	"strings"
	"time"
)

// DateLayout is the layout date arguments and string values use unless a rule names another.
const DateLayout = time.DateOnly

// Date passes for values that parse as a date: date or date(layout).
func Date(c Context, args ...string) string {
	if IsEmpty(c.Value) {
		return ""
	}
	if _, ok := toTime(c.Value, layoutArg(args, 0)); !ok {
		return c.Message()
	}
	return ""
}

// Before passes for dates strictly before the argument: before(2006-01-02) or before(today).
func Before(c Context, args ...string) string {
	return compareDate(c, args, func(v, limit time.Time) bool { return v.Before(limit) })
}

// After passes for dates strictly after the argument: after(2006-01-02) or after(today).
func After(c Context, args ...string) string {
	return compareDate(c, args, func(v, limit time.Time) bool { return v.After(limit) })
}

func compareDate(c Context, args []string, ok func(v, limit time.Time) bool) string {
	if IsEmpty(c.Value) {
		return ""
	}
	if len(args) == 0 {
		return c.Message()
	}
	layout := layoutArg(args, 1)
	limit, parsed := parseDateArg(args[0], layout)
	if !parsed {
		return c.Message()
	}
	v, parsed := toTime(c.Value, layout)
	if !parsed || !ok(v, limit) {
		return c.Message()
	}
	return ""
}

func layoutArg(args []string, i int) string {
	if i < len(args) && strings.TrimSpace(args[i]) != "" {
		return args[i]
	}
	return DateLayout
}

func parseDateArg(arg, layout string) (time.Time, bool) {
	if arg == "today" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	t, err := time.Parse(layout, arg)
	return t, err == nil
}

func toTime(value any, layout string) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	}
	t, err := time.Parse(layout, strings.TrimSpace(String(value)))
	return t, err == nil
}
