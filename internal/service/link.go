package service

import (
	"net/url"
	"strings"
)

// NormalizeLink accepts a candidate application link only if it parses
// as an absolute http or https URL. Anything else (malformed, relative,
// non-web scheme, blank) is silently coerced to nil — a deliberate
// coercion, not an error path. An accepted value is returned unchanged.
func NormalizeLink(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil
	}
	return &raw
}
