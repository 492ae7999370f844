package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formulate/pkg/rules"
)

func failWith(msg string) rules.MessageFactory {
	return func(rules.Context) string { return msg }
}

func ctxFor(field string, value any) rules.Context {
	return rules.Context{Field: field, Value: value, Error: failWith(field + " failed")}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, "", "   ", false, []string{}, map[string]any{}, (*string)(nil)} {
		assert.Equal(t, "name failed", rules.Required(ctxFor("name", v)), "%#v", v)
	}
	for _, v := range []any{"John", 0, true, []string{"a"}, 3.5} {
		assert.Empty(t, rules.Required(ctxFor("name", v)), "%#v", v)
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	t.Run("passes on empty value", func(t *testing.T) {
		assert.Empty(t, rules.Email(ctxFor("email", "")))
	})

	t.Run("valid addresses", func(t *testing.T) {
		for _, v := range []string{"user@example.com", "first.last+tag@sub.example.org"} {
			assert.Empty(t, rules.Email(ctxFor("email", v)), v)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, v := range []string{"plain", "user@localhost", "@example.com", "user@.com", "user@example..com", "John <j@example.com>"} {
			assert.Equal(t, "email failed", rules.Email(ctxFor("email", v)), v)
		}
	})
}

func TestConfirmed(t *testing.T) {
	t.Parallel()

	t.Run("uses default confirmation field", func(t *testing.T) {
		c := ctxFor("password", "secret")
		c.Values = map[string]any{"password": "secret", "password_confirmation": "secret"}
		assert.Empty(t, rules.Confirmed(c))

		c.Values["password_confirmation"] = "other"
		assert.Equal(t, "password failed", rules.Confirmed(c))
	})

	t.Run("uses explicit confirmation field", func(t *testing.T) {
		c := ctxFor("password", "secret")
		c.Values = map[string]any{"repeat": "secret"}
		assert.Empty(t, rules.Confirmed(c, "repeat"))
	})

	t.Run("missing confirmation fails", func(t *testing.T) {
		c := ctxFor("password", "secret")
		assert.Equal(t, "password failed", rules.Confirmed(c))
	})
}

func TestNumber(t *testing.T) {
	t.Parallel()

	for _, v := range []any{"", "12", "-3.5", 7, uint8(2), 1.25} {
		assert.Empty(t, rules.Number(ctxFor("age", v)), "%#v", v)
	}
	for _, v := range []any{"abc", "12a", true} {
		assert.NotEmpty(t, rules.Number(ctxFor("age", v)), "%#v", v)
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	t.Run("strings compare by length", func(t *testing.T) {
		assert.Empty(t, rules.Min(ctxFor("name", "abcd"), "3"))
		assert.NotEmpty(t, rules.Min(ctxFor("name", "ab"), "3"))
		assert.Empty(t, rules.Max(ctxFor("name", "ab"), "3"))
		assert.NotEmpty(t, rules.Max(ctxFor("name", "abcd"), "3"))
	})

	t.Run("multibyte strings count runes", func(t *testing.T) {
		assert.Empty(t, rules.Max(ctxFor("name", "héllo"), "5"))
	})

	t.Run("numbers compare by value", func(t *testing.T) {
		assert.Empty(t, rules.Min(ctxFor("age", 18), "18"))
		assert.NotEmpty(t, rules.Min(ctxFor("age", "17"), "18"))
		assert.NotEmpty(t, rules.Max(ctxFor("age", 21.5), "21"))
	})

	t.Run("forced length on numeric string", func(t *testing.T) {
		assert.Empty(t, rules.Min(ctxFor("pin", "1234"), "4", "length"))
		assert.NotEmpty(t, rules.Min(ctxFor("pin", "1234"), "5000", "value"))
	})

	t.Run("collections compare by length", func(t *testing.T) {
		assert.NotEmpty(t, rules.Min(ctxFor("tags", []string{"a"}), "2"))
	})

	t.Run("bad limit fails", func(t *testing.T) {
		assert.NotEmpty(t, rules.Min(ctxFor("age", 4), "four"))
		assert.NotEmpty(t, rules.Max(ctxFor("age", 4)))
	})

	t.Run("empty value passes", func(t *testing.T) {
		assert.Empty(t, rules.Min(ctxFor("age", ""), "3"))
	})
}

func TestBetween(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rules.Between(ctxFor("n", 5), "1", "10"))
	assert.NotEmpty(t, rules.Between(ctxFor("n", 10), "1", "10"))
	assert.NotEmpty(t, rules.Between(ctxFor("n", 1), "1", "10"))
	assert.Empty(t, rules.Between(ctxFor("name", "abc"), "2", "5", "length"))
	assert.NotEmpty(t, rules.Between(ctxFor("n", 5), "1"))
}

func TestInNotIn(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rules.In(ctxFor("color", "red"), "red", "green"))
	assert.NotEmpty(t, rules.In(ctxFor("color", "blue"), "red", "green"))
	assert.Empty(t, rules.NotIn(ctxFor("color", "blue"), "red", "green"))
	assert.NotEmpty(t, rules.NotIn(ctxFor("color", "red"), "red", "green"))
	assert.Empty(t, rules.In(ctxFor("qty", 2), "1", "2"))
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rules.Alpha(ctxFor("a", "abc")))
	assert.NotEmpty(t, rules.Alpha(ctxFor("a", "abc1")))
	assert.Empty(t, rules.Alphanumeric(ctxFor("a", "abc1")))
	assert.NotEmpty(t, rules.Alphanumeric(ctxFor("a", "abc 1")))
	assert.Empty(t, rules.URL(ctxFor("site", "https://example.com/path")))
	assert.NotEmpty(t, rules.URL(ctxFor("site", "example.com")))
}

func TestMatches(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rules.Matches(ctxFor("code", "abc"), "xyz", "abc"))
	assert.Empty(t, rules.Matches(ctxFor("code", "a123"), "/^a[0-9]+$/"))
	assert.NotEmpty(t, rules.Matches(ctxFor("code", "b123"), "/^a[0-9]+$/"))
	assert.NotEmpty(t, rules.Matches(ctxFor("code", "abc"), "/[/"))
}

func TestContext_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid value for zip", rules.Context{Field: "zip"}.Message())
	assert.Equal(t, "zip failed", ctxFor("zip", "").Message())
}

func TestIdentifierRules(t *testing.T) {
	t.Parallel()

	t.Run("uuid", func(t *testing.T) {
		assert.Empty(t, rules.UUID(ctxFor("id", "")))
		assert.Empty(t, rules.UUID(ctxFor("id", "123e4567-e89b-12d3-a456-426614174000")))
		assert.Empty(t, rules.UUID(ctxFor("id", "00000000-0000-0000-0000-000000000000")))
		assert.Equal(t, "id failed", rules.UUID(ctxFor("id", "00000000-0000-0000-0000-000000000000"), "nonzero"))
		assert.Equal(t, "id failed", rules.UUID(ctxFor("id", "{123e4567-e89b-12d3-a456-426614174000}")))
		assert.Equal(t, "id failed", rules.UUID(ctxFor("id", "123e4567e89b12d3a456426614174000")))
		assert.Equal(t, "id failed", rules.UUID(ctxFor("id", "123e4567-e89b-12d3-a456-42661417400z")))
	})

	t.Run("slug", func(t *testing.T) {
		for _, v := range []string{"hello", "hello-world", "v2-release"} {
			assert.Empty(t, rules.Slug(ctxFor("slug", v)), v)
		}
		for _, v := range []string{"Hello", "-hello", "hello-", "hello--world", "hello world"} {
			assert.Equal(t, "slug failed", rules.Slug(ctxFor("slug", v)), v)
		}
	})
}

func TestDateRules(t *testing.T) {
	t.Parallel()

	t.Run("date", func(t *testing.T) {
		assert.Empty(t, rules.Date(ctxFor("d", "")))
		assert.Empty(t, rules.Date(ctxFor("d", "2024-02-29")))
		assert.Equal(t, "d failed", rules.Date(ctxFor("d", "2023-02-29")))
		assert.Empty(t, rules.Date(ctxFor("d", "29/02/2024"), "02/01/2006"))
		assert.Equal(t, "d failed", rules.Date(ctxFor("d", "2024-02-29"), "02/01/2006"))
	})

	t.Run("before and after", func(t *testing.T) {
		assert.Empty(t, rules.Before(ctxFor("d", "2020-01-01"), "2021-01-01"))
		assert.Equal(t, "d failed", rules.Before(ctxFor("d", "2021-01-01"), "2021-01-01"))
		assert.Empty(t, rules.After(ctxFor("d", "2022-01-01"), "2021-01-01"))
		assert.Equal(t, "d failed", rules.After(ctxFor("d", "2020-01-01"), "2021-01-01"))
		assert.Empty(t, rules.Before(ctxFor("d", "1999-12-31"), "today"))
		assert.Equal(t, "d failed", rules.After(ctxFor("d", "1999-12-31"), "today"))
	})

	t.Run("malformed arguments fail", func(t *testing.T) {
		assert.Equal(t, "d failed", rules.Before(ctxFor("d", "2020-01-01")))
		assert.Equal(t, "d failed", rules.Before(ctxFor("d", "2020-01-01"), "soon"))
		assert.Equal(t, "d failed", rules.After(ctxFor("d", "not a date"), "2021-01-01"))
	})
}
