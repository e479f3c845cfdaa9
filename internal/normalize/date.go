package normalize

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the canonical dd/mm/yyyy rendering used in every output
// dataset.
const DateLayout = "02/01/2006"

// serialEpoch is spreadsheet day zero in the 1900 date system, Lotus
// leap-year bug included.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var plainDayMonthYear = regexp.MustCompile(`^\s*(\d{1,2}/\d{1,2}/\d{4})\s*$`)

// dateLayouts are the string shapes accepted besides the canonical one.
// Slash layouts are absent on purpose: anything slash-shaped already passed
// through verbatim.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/06",
}

// NormalizeDate renders a date string as dd/mm/yyyy. Strings already in
// day/month/year shape pass through untouched, without zero padding or
// calendar validation; other known layouts are reparsed. Returns false when
// nothing matches.
func NormalizeDate(s string) (string, bool) {
	if m := plainDayMonthYear.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(DateLayout), true
		}
	}
	return "", false
}

// SerialDate converts a spreadsheet serial day count to dd/mm/yyyy. Any
// fractional day is a time of day and is dropped.
func SerialDate(serial float64) string {
	days := int(serial)
	frac := serial - float64(days)
	t := serialEpoch.AddDate(0, 0, days).Add(time.Duration(frac * float64(24*time.Hour)))
	return t.Format(DateLayout)
}
