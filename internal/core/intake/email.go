package intake

import (
	"regexp"
	"strings"
)

var reEmail = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9](?:[a-z0-9\-]*[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9\-]*[a-z0-9])?)*\.[a-z]{2,}$`)

// ValidEmail reports whether s looks like local@domain.tld after
// normalisation.
func ValidEmail(s string) bool {
	s = NormalizeEmail(s)
	if s == "" || len(s) > 254 || strings.Contains(s, "..") {
		return false
	}
	return reEmail.MatchString(s)
}
