package rules

import (
	"regexp"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// UUID passes for the canonical 36 character form; uuid(nonzero) also rejects the nil UUID.
func UUID(c Context, args ...string) string {
	if IsEmpty(c.Value) {
		return ""
	}
	if id, ok := c.Value.(uuid.UUID); ok {
		if len(args) > 0 && args[0] == "nonzero" && id == uuid.Nil {
			return c.Message()
		}
		return ""
	}

	s := String(c.Value)
	// uuid.Parse also accepts braced and urn forms, which a form field should not.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return c.Message()
	}
	id, err := uuid.Parse(s)
	if err != nil || (len(args) > 0 && args[0] == "nonzero" && id == uuid.Nil) {
		return c.Message()
	}
	return ""
}

// Slug passes for lowercase words joined by single hyphens.
func Slug(c Context, _ ...string) string {
	if IsEmpty(c.Value) {
		return ""
	}
	if !slugPattern.MatchString(String(c.Value)) {
		return c.Message()
	}
	return ""
}
