package rules

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Email validates an RFC 5322 address with a dotted domain.
func Email(c Context, _ ...string) string {
	if IsEmpty(c.Value) {
		return ""
	}
	if !isEmail(String(c.Value)) {
		return c.Message()
	}
	return ""
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL validates an absolute URL with scheme and host.
func URL(c Context, _ ...string) string {
	if IsEmpty(c.Value) {
		return ""
	}
	u, err := url.ParseRequestURI(String(c.Value))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return c.Message()
	}
	return ""
}

// Alpha allows ASCII letters only.
func Alpha(c Context, _ ...string) string {
	if IsEmpty(c.Value) || alphaRegex.MatchString(String(c.Value)) {
		return ""
	}
	return c.Message()
}

// Alphanumeric allows ASCII letters and digits only.
func Alphanumeric(c Context, _ ...string) string {
	if IsEmpty(c.Value) || alphanumericRegex.MatchString(String(c.Value)) {
		return ""
	}
	return c.Message()
}

// Matches passes when the value equals any argument. Arguments wrapped in
// slashes (/^[a-z]+$/) are treated as regular expressions; an invalid
// expression never matches.
func Matches(c Context, args ...string) string {
	if IsEmpty(c.Value) {
		return ""
	}
	value := String(c.Value)
	for _, arg := range args {
		if len(arg) > 1 && strings.HasPrefix(arg, "/") && strings.HasSuffix(arg, "/") {
			re, err := regexp.Compile(arg[1 : len(arg)-1])
			if err == nil && re.MatchString(value) {
				return ""
			}
			continue
		}
		if arg == value {
			return ""
		}
	}
	return c.Message()
}
