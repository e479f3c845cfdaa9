package normalize

import (
	"regexp"
	"strings"
)

// Agencies are the branch codes with dedicated intake folders.
var Agencies = []string{"ASU", "CDE", "ENC", "OVD"}

// agencyPatterns map spelled-out branch names to their codes, checked in
// order. Patterns run against accent-stripped uppercase text.
var agencyPatterns = []struct {
	code string
	re   *regexp.Regexp
}{
	{"ASU", regexp.MustCompile(`\bCASA\s+MATRIZ\b|\bASUNCION\b|\bASU\b`)},
	{"CDE", regexp.MustCompile(`\bCIUDAD\s+DEL\s+ESTE\b|\bCDE\b`)},
	{"ENC", regexp.MustCompile(`\bENCARNACION\b|\bENC\b`)},
	{"OVD", regexp.MustCompile(`\bCNEL\.?\s+OVIEDO\b|\bCORONEL\s+OVIEDO\b|\bOVIEDO\b|\bOVD\b`)},
}

var filenamePrefixes = []struct {
	code     string
	prefixes []string
}{
	{"ASU", []string{"01_0", "01-0", "01 "}},
	{"CDE", []string{"02_0", "02-0", "02 "}},
	{"ENC", []string{"03_0", "03-0", "03 "}},
	{"OVD", []string{"04_0", "04-0", "04 "}},
}

// branchMarker captures up to a closing bracket, a dash or the line end, so
// suffixes like "- TURNO 1" never leak into the branch name.
var branchMarker = regexp.MustCompile(`(?im)SUC:\s*(.+?)\s*(?:[\)\]\-]|$)`)

var currencyStrip = regexp.MustCompile(`[^A-Z0-9]`)

var currencySpellings = strings.NewReplacer("₲", "GS", "US$", "USD", "U$S", "USD", "U$D", "USD")

// KnownAgency reports whether code is one of the fixed branch codes.
func KnownAgency(code string) bool {
	for _, a := range Agencies {
		if a == code {
			return true
		}
	}
	return false
}

// AgencyCode maps free text naming a branch to its code, or "" when no
// pattern matches.
func AgencyCode(s string) string {
	u := FoldUpper(strings.TrimSpace(s))
	if u == "" {
		return ""
	}
	for _, p := range agencyPatterns {
		if p.re.MatchString(u) {
			return p.code
		}
	}
	return ""
}

// AgencyFromFilename infers the branch from the numbered prefixes agencies
// put on their uploads ("01_0...", "02-0...", "03 ...").
func AgencyFromFilename(name string) string {
	up := strings.ToUpper(strings.TrimSpace(name))
	for _, fp := range filenamePrefixes {
		for _, prefix := range fp.prefixes {
			if strings.HasPrefix(up, prefix) {
				return fp.code
			}
		}
	}
	return ""
}

// AgencyFromText pulls the branch out of a "SUC: ..." marker, preferring the
// canonical code when the captured text maps to one and falling back to the
// raw capture otherwise. Returns "" when the marker is absent.
func AgencyFromText(text string) string {
	m := branchMarker.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if code := AgencyCode(m[1]); code != "" {
		return code
	}
	return strings.TrimSpace(m[1])
}

// Currency maps localized currency spellings (GUARANIES, ₲, DOLARES, US$) to
// PYG or USD, or "" when the text names neither.
func Currency(s string) string {
	u := currencySpellings.Replace(FoldUpper(strings.TrimSpace(s)))
	canon := currencyStrip.ReplaceAllString(u, "")
	switch {
	case strings.HasPrefix(canon, "GUAR"), canon == "PYG", canon == "PYGS", canon == "GS":
		return "PYG"
	case strings.HasPrefix(canon, "DOL"), strings.Contains(canon, "USD"), canon == "US", canon == "USS":
		return "USD"
	}
	return ""
}
