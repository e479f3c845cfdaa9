package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gbenitezpy/consolidador/internal/normalize"
)

var (
	pdfLineSkip  = regexp.MustCompile(`(?i)\b(SUB[-\s]?TOTAL|TOTAL\s+DEPOSITO|TOTAL\s+MONEDA|TOTAL)\b`)
	pdfGrouping  = regexp.MustCompile(`(?i)^(TESORO|PICOS|FAJOS)\b.*\b(ATM|BANCO)\b|^(TESORO|PICOS|FAJOS)\s+EFECTIVO`)
	pdfValueType = regexp.MustCompile(`(?i)^(BILLETES|MONEDAS)\b`)
	pdfAgency    = regexp.MustCompile(`(?i)SUC:\s*([A-ZÁÉÍÓÚÑ \-\.]+)`)
	usdMarker    = regexp.MustCompile(`\bUSD|\bMDA\.?\s*EXT\.?`)

	// pdfCount matches thousand-grouped counts on the raw line. Grouping
	// periods must survive until here or wide amounts lose their tails.
	pdfCount = regexp.MustCompile(`\b\d{1,3}(?:\.\d{3})*\b`)
)

// pdfColumns is how many counts a denomination line carries: denomination,
// deposit quality, deposit exchange, swap quality, coins, total.
const pdfColumns = 6

// InventoryPDF extracts denomination lines from an inventory report's plain
// text. The report interleaves grouping and value-type headings with count
// lines, so the walk carries both as running state; count lines only emit
// while a grouping, a value type and the inventory date are all known.
func InventoryPDF(text, sourceFile string) []InventoryLine {
	text = normalize.CollapseSpacedLetters(text)
	up := normalize.FoldUpper(text)

	date := ""
	if m := inventoryDateMarker.FindStringSubmatch(up); m != nil {
		date = strings.ReplaceAll(m[2], "-", "/")
	}
	agency := ""
	if m := pdfAgency.FindStringSubmatch(text); m != nil {
		raw := strings.TrimSpace(m[1])
		if code := normalize.AgencyCode(raw); code != "" {
			agency = code
		} else {
			agency = raw
		}
	}
	suffix := ""
	if strings.Contains(up, "DOCUMENTA /ITAU") {
		suffix = documentaSuffix
	}

	currency := pdfCurrency(text)
	grouping, valueType := "", ""

	var records []InventoryLine
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || pdfLineSkip.MatchString(line) {
			continue
		}
		if span := pdfGrouping.FindString(line); span != "" {
			grouping = span + suffix
			currency = pdfCurrency(line)
			continue
		}
		if pdfValueType.MatchString(line) {
			valueType = line
			continue
		}

		counts := pdfCount.FindAllString(line, -1)
		if len(counts) != pdfColumns || grouping == "" || valueType == "" || date == "" {
			continue
		}
		values := make([]int64, 0, pdfColumns)
		ok := true
		for _, count := range counts {
			n, err := strconv.ParseInt(strings.ReplaceAll(count, ".", ""), 10, 64)
			if err != nil {
				ok = false
				break
			}
			values = append(values, n)
		}
		if !ok {
			continue
		}
		records = append(records, InventoryLine{
			InventoryDate:   date,
			Currency:        currency,
			Agency:          agency,
			Grouping:        grouping,
			ValueType:       valueType,
			Denomination:    values[0],
			DepositQuality:  values[1],
			DepositExchange: values[2],
			SwapQuality:     values[3],
			Coins:           values[4],
			Total:           values[5],
			SourceFile:      sourceFile,
		})
	}
	return records
}

func pdfCurrency(s string) string {
	if usdMarker.MatchString(normalize.FoldUpper(s)) {
		return "USD"
	}
	return "PYG"
}
