// Package normalize canonicalizes the localized values found in branch
// documents: Paraguayan number and date formats, currency names, agency
// identifiers and the spacing quirks PDF text extraction introduces.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber interprets a localized amount string such as "1.234,56",
// "(100)" or "1 500". When both separators appear, the one furthest right is
// the decimal mark. A lone separator is a decimal mark only when the trailing
// digit group has at most two digits, otherwise it separates thousands.
// Parentheses negate. Returns false for anything that does not survive
// sanitization.
func ParseNumber(raw string) (decimal.Decimal, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-', r == '(', r == ')':
			b.WriteRune(r)
		case r == ' ', r == ' ':
			b.WriteByte(' ')
		}
	}
	s := strings.TrimSpace(b.String())
	if s == "" {
		return decimal.Decimal{}, false
	}

	neg := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	if neg {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, " ", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		if decimalTail(s, ",") {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasDot:
		if !decimalTail(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// decimalTail reports whether the group after the last separator is short
// enough (two digits at most) to read as a decimal part.
func decimalTail(s, sep string) bool {
	parts := strings.Split(s, sep)
	return len(parts) >= 2 && len(parts[len(parts)-1]) <= 2
}

// Digits strips everything but ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
