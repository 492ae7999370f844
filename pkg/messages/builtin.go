package messages

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formulate/pkg/rules"
)

// Label returns the display label of the field under validation.
func Label(c rules.Context) string {
	if c.Label != "" {
		return c.Label
	}
	return Humanize(c.Field)
}

// Humanize turns a field name such as "first_name" into "First Name".
func Humanize(field string) string {
	words := strings.FieldsFunc(field, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})
	if len(words) == 0 {
		return field
	}
	// Casers are stateful, so one is built per call.
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Default is the fallback message for rules without a dedicated factory.
func Default(c rules.Context) string {
	return fmt.Sprintf("Invalid field value for %s", Label(c))
}

func builtin() map[string]rules.MessageFactory {
	return map[string]rules.MessageFactory{
		DefaultKey: Default,
		"required": func(c rules.Context) string {
			return fmt.Sprintf("%s is required", Label(c))
		},
		"email": func(c rules.Context) string {
			return fmt.Sprintf("%s is not a valid email address", Label(c))
		},
		"confirmed": func(c rules.Context) string {
			return fmt.Sprintf("%s does not match the confirmation field", Label(c))
		},
		"number": func(c rules.Context) string {
			return fmt.Sprintf("%s must be a number", Label(c))
		},
		"in": func(c rules.Context) string {
			return fmt.Sprintf("%s must be one of: %s", Label(c), strings.Join(c.Args, ", "))
		},
		"notIn": func(c rules.Context) string {
			return fmt.Sprintf("%s is not an allowed value", Label(c))
		},
		"min": func(c rules.Context) string {
			return fmt.Sprintf("%s must be at least %s%s", Label(c), arg(c, 0), unit(c, 1))
		},
		"max": func(c rules.Context) string {
			return fmt.Sprintf("%s must be at most %s%s", Label(c), arg(c, 0), unit(c, 1))
		},
		"between": func(c rules.Context) string {
			return fmt.Sprintf("%s must be between %s and %s%s", Label(c), arg(c, 0), arg(c, 1), unit(c, 2))
		},
		"alpha": func(c rules.Context) string {
			return fmt.Sprintf("%s can only contain letters", Label(c))
		},
		"alphanumeric": func(c rules.Context) string {
			return fmt.Sprintf("%s can only contain letters and numbers", Label(c))
		},
		"url": func(c rules.Context) string {
			return fmt.Sprintf("%s must be a valid URL", Label(c))
		},
		"matches": func(c rules.Context) string {
			return fmt.Sprintf("%s is not an allowed value", Label(c))
		},
		"uuid": func(c rules.Context) string {
			return fmt.Sprintf("%s must be a valid UUID", Label(c))
		},
		"slug": func(c rules.Context) string {
			return fmt.Sprintf("%s can only contain lowercase letters, numbers and single hyphens", Label(c))
		},
		"date": func(c rules.Context) string {
			return fmt.Sprintf("%s must be a valid date", Label(c))
		},
		"before": func(c rules.Context) string {
			return fmt.Sprintf("%s must be a date before %s", Label(c), arg(c, 0))
		},
		"after": func(c rules.Context) string {
			return fmt.Sprintf("%s must be a date after %s", Label(c), arg(c, 0))
		},
	}
}

func arg(c rules.Context, i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return "?"
}

// unit appends " characters" when the bound measures length.
// forceAt is the index of the optional value|length argument.
func unit(c rules.Context, forceAt int) string {
	if forceAt < len(c.Args) {
		switch c.Args[forceAt] {
		case "length":
			return " characters"
		case "value":
			return ""
		}
	}
	switch v := c.Value.(type) {
	case string:
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return ""
		}
		return " characters"
	case []any, []string:
		return " items"
	}
	return ""
}
