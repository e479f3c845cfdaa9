package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gbenitezpy/consolidador/internal/normalize"
)

// inventoryHeadRows bounds the header scan; titles and branch markers always
// sit in the first few rows.
const inventoryHeadRows = 12

var inventoryDateMarker = regexp.MustCompile(
	`(PLANILLA|SALDO)\s+DE\s+INVENTARIO\s+DE\s+BILLETES.*?:\s*(\d{1,2}[-/]\d{1,2}[-/]\d{4})`)

var trailingDots = regexp.MustCompile(`\.+$`)

// InventorySheets extracts denomination lines from an inventory workbook.
// Rows are positional: currency, grouping, value type, denomination, then
// the count columns.
func InventorySheets(sheets []Sheet, sourceFile string) []InventoryLine {
	var records []InventoryLine
	for _, sheet := range sheets {
		records = append(records, inventorySheet(sheet, sourceFile)...)
	}
	return records
}

func inventorySheet(s Sheet, sourceFile string) []InventoryLine {
	head := s.HeadText(inventoryHeadRows)
	agency := normalize.AgencyFromText(head)
	date := ""
	if m := inventoryDateMarker.FindStringSubmatch(normalize.FoldUpper(head)); m != nil {
		date = strings.ReplaceAll(m[2], "-", "/")
	}

	var records []InventoryLine
	for _, row := range s.Rows {
		currency := normalize.Currency(row.Cell(0).Text)
		if currency == "" {
			continue
		}
		denom, ok := cellCount(row.Cell(3))
		if !ok {
			continue
		}
		records = append(records, InventoryLine{
			InventoryDate:   date,
			Currency:        currency,
			Agency:          agency,
			Grouping:        strings.TrimSpace(trailingDots.ReplaceAllString(row.Cell(1).Text, "")),
			ValueType:       collapseSpelled(row.Cell(2).Text),
			Denomination:    denom,
			DepositQuality:  countOrZero(row.Cell(4)),
			DepositExchange: countOrZero(row.Cell(5)),
			SwapQuality:     countOrZero(row.Cell(6)),
			Coins:           countOrZero(row.Cell(7)),
			Total:           countOrZero(row.Cell(8)),
			SourceFile:      sourceFile,
		})
	}
	return records
}

// cellCount reads a cell as a whole count. Number cells use the decoded
// value; text cells go through the locale parser.
func cellCount(c Cell) (int64, bool) {
	switch c.Kind {
	case CellNumber:
		return decimal.NewFromFloat(c.Number).Round(0).IntPart(), true
	case CellText:
		if n, ok := normalize.ParseNumber(c.Text); ok {
			return n.Round(0).IntPart(), true
		}
	}
	return 0, false
}

func countOrZero(c Cell) int64 {
	n, _ := cellCount(c)
	return n
}

// collapseSpelled joins a label written as spaced single letters
// ("B I L L E T E S"). Labels with any multi-letter token stay as they are.
func collapseSpelled(s string) string {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return strings.TrimSpace(s)
	}
	for _, f := range fields {
		if len([]rune(f)) != 1 {
			return strings.TrimSpace(s)
		}
	}
	return strings.Join(fields, "")
}
