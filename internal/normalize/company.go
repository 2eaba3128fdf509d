// Package normalize holds the per-domain value coercions applied to raw CSV
// cells: grade scales, locale date formats, name handling, and company-name
// extraction. Every function is total; unparseable input yields the zero
// value plus a false flag, never an error.
package normalize

import (
	"regexp"
	"strings"
)

var (
	custPrefix    = regexp.MustCompile(`^CUST\d+\s*`)
	trailingParen = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
)

// CompanyName extracts the company name from the coded strings the CRM
// export uses, e.g. "CUST67221 EIFFAGE GENIE CIVIL (Vélizy)" becomes
// "EIFFAGE GENIE CIVIL". The leading customer code and the trailing
// parenthesized site are stripped; anything left is trimmed.
func CompanyName(raw string) string {
	name := custPrefix.ReplaceAllString(strings.TrimSpace(raw), "")
	name = trailingParen.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// CompanyCity extracts the parenthesized site suffix, when present:
// "CUST67221 EIFFAGE GENIE CIVIL (Vélizy)" yields "Vélizy".
func CompanyCity(raw string) string {
	m := trailingParen.FindString(strings.TrimSpace(raw))
	m = strings.TrimSpace(m)
	m = strings.TrimPrefix(m, "(")
	m = strings.TrimSuffix(m, ")")
	return strings.TrimSpace(m)
}
