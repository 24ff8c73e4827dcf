package intake

import (
	"net/url"
	"strings"
)

var companySuffixes = []string{
	"inc", "llc", "ltd", "gmbh", "co", "corp",
	"agency", "studio", "studios",
}

// CleanText collapses whitespace and non-breaking spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeEmail lowercases and trims an address. mailto: prefixes from
// scraped links are dropped.
func NormalizeEmail(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "mailto:")
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// NormalizeCompany reduces a company name to a comparison key: lowercase,
// single-spaced and without common legal or trade suffixes.
func NormalizeCompany(s string) string {
	s = strings.ToLower(CleanText(s))
	for trimmed := true; trimmed; {
		trimmed = false
		s = strings.TrimRight(s, " ,.-")
		for _, suf := range companySuffixes {
			if rest, ok := strings.CutSuffix(s, " "+suf); ok {
				s, trimmed = rest, true
				break
			}
		}
	}
	return strings.Trim(s, " ,.-")
}

// NormalizeLocation lowercases a location and drops repeated parts, so
// "Austin, TX, Austin" and "austin, tx" compare equal.
func NormalizeLocation(s string) string {
	parts := strings.Split(strings.ToLower(CleanText(s)), ",")
	seen := map[string]bool{}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

// Host returns the lowercase host of raw without a leading www. Bare
// domains such as "acme.io" are accepted.
func Host(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if !strings.Contains(host, ".") {
		return ""
	}
	return host
}

// MatchesDomain reports whether host is domain or one of its subdomains.
func MatchesDomain(host string, domains []string) bool {
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
