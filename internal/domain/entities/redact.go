package entities

import (
	"regexp"
	"strings"
)

const redacted = "***"

// userInfoPattern matches the credentials part of an URL (scheme://user:pass@).
var userInfoPattern = regexp.MustCompile(`(?i)([a-z][a-z0-9+.-]*://)[^/@\s]+@`)

// RedactCredentials removes URL credentials and any of the given secrets from s.
func RedactCredentials(s string, secrets ...string) string {
	out := userInfoPattern.ReplaceAllString(s, "${1}"+redacted+"@")
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		out = strings.ReplaceAll(out, secret, redacted)
	}
	return out
}
