package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gbenitezpy/consolidador/internal/normalize"
)

const (
	ClassificationATM  = "ATM"
	ClassificationBank = "BANCO"

	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// receiptMinDigits is the shortest digit projection accepted as a receipt
// number; anything shorter is a branch code or a column artifact.
const receiptMinDigits = 5

var (
	fileDatePrimary  = regexp.MustCompile(`ESTADO\s+DE\s+CUENTA.*DEL\s*:\s*(\d{2}/\d{2}/\d{4})`)
	fileDateFallback = regexp.MustCompile(`BANCO\s+DEL:\s*(\d{2}/\d{2}/\d{4})`)
)

const documentaSuffix = " (DOCUMENTA/ITAU)"

type section int

const (
	sectionNone section = iota
	sectionIn
	sectionOut
)

// machine tracks the statement walk state: which section the walk is inside
// and the sticky free-text reason that labels the data rows after it.
type machine struct {
	section section
	reason  string
}

type control int

const (
	ctlData control = iota
	ctlSkip
	ctlStop
)

// step classifies one row. Section headers and resets are handled here; only
// ctlData rows reach the positional scan. Order matters: "TOTAL INGRESOS"
// must act as a section header, not as a totals row.
func (m *machine) step(row Row) control {
	txt := row.JoinedUpper()
	switch {
	case strings.Contains(txt, "SALDO ANTERIOR"):
		m.section, m.reason = sectionNone, ""
		return ctlSkip
	case strings.Contains(txt, "INGRESOS") && !strings.Contains(txt, "EGRESOS"):
		m.section, m.reason = sectionIn, ""
		return ctlSkip
	case strings.Contains(txt, "EGRESOS"):
		m.section, m.reason = sectionOut, ""
		return ctlSkip
	case strings.Contains(txt, "INFORME DE PROCESOS"), strings.Contains(txt, "INFORME DE ERRORES"):
		return ctlStop
	}
	if m.section == sectionNone {
		return ctlSkip
	}
	if strings.Contains(txt, "TOTAL") && !row.HasDate() {
		m.reason = ""
		return ctlSkip
	}
	// A lone non-date cell is a movement reason heading; it labels every
	// data row until the next heading or section change.
	if nonEmpty := row.NonEmpty(); len(nonEmpty) == 1 {
		if _, ok := nonEmpty[0].DateValue(); !ok {
			m.reason = nonEmpty[0].Text
			return ctlSkip
		}
	}
	return ctlData
}

func (m *machine) direction() string {
	if m.section == sectionIn {
		return DirectionIn
	}
	return DirectionOut
}

func (m *machine) motive() string {
	if m.reason != "" {
		return m.reason
	}
	if m.section == sectionIn {
		return "INGRESOS"
	}
	return "EGRESOS"
}

// statementHeader is the per-sheet context stamped onto every record.
type statementHeader struct {
	agency   string
	fileDate string
	currency string
	suffix   string
}

func sheetHeader(s Sheet, cash bool) statementHeader {
	text := s.FullText()
	up := normalize.FoldUpper(text)

	h := statementHeader{agency: normalize.AgencyFromText(text)}
	if m := fileDatePrimary.FindStringSubmatch(up); m != nil {
		h.fileDate = m[1]
	} else if m := fileDateFallback.FindStringSubmatch(up); m != nil {
		h.fileDate = m[1]
	}
	if cash {
		h.currency = "PYG"
		if strings.Contains(up, "MONEDA: DOLAR") {
			h.currency = "USD"
		}
		if strings.Contains(up, "CLIENTE: DOCUMENTA /ITAU") {
			h.suffix = documentaSuffix
		}
	}
	return h
}

// CashStatement extracts movement records from a cash statement workbook.
// classification distinguishes the ATM and teller variants; the row grammar
// is the same for both.
func CashStatement(sheets []Sheet, classification, sourceFile string) []Movement {
	var records []Movement
	for _, sheet := range sheets {
		records = append(records, cashSheet(sheet, classification, sourceFile)...)
	}
	return records
}

func cashSheet(s Sheet, classification, sourceFile string) []Movement {
	header := sheetHeader(s, true)
	m := &machine{}

	var records []Movement
	for _, row := range s.Rows {
		switch m.step(row) {
		case ctlSkip:
			continue
		case ctlStop:
			return records
		}

		cur := row.Scan()
		date, ok := cur.NextDate()
		if !ok {
			continue
		}
		branch, ok := cur.NextText()
		if !ok {
			continue
		}
		receipt, _ := cur.NextDigits(receiptMinDigits)
		amounts := cur.Numbers()
		if len(amounts) == 0 {
			continue
		}

		records = append(records, Movement{
			OperationDate:  date,
			Branch:         branch,
			Receipt:        receipt,
			Amount:         maxDecimal(amounts),
			Currency:       header.currency,
			Direction:      m.direction(),
			Classification: classification,
			FileDate:       header.fileDate,
			Reason:         m.motive() + header.suffix,
			Agency:         header.agency,
			SourceFile:     sourceFile,
		})
	}
	return records
}

// BundleStatement extracts movement records from a sealed-bundle statement.
// Data rows carry guarani and dollar pairs side by side; each nonzero pair
// becomes its own record.
func BundleStatement(sheets []Sheet, sourceFile string) []Movement {
	var records []Movement
	for _, sheet := range sheets {
		records = append(records, bundleSheet(sheet, sourceFile)...)
	}
	return records
}

func bundleSheet(s Sheet, sourceFile string) []Movement {
	header := sheetHeader(s, false)
	m := &machine{}

	var records []Movement
	for _, row := range s.Rows {
		switch m.step(row) {
		case ctlSkip:
			continue
		case ctlStop:
			return records
		}

		cur := row.Scan()
		date, ok := cur.NextDate()
		if !ok {
			continue
		}
		branch, ok := cur.NextText()
		if !ok {
			continue
		}
		receipt, _ := cur.NextDigits(receiptMinDigits)
		nums := cur.Numbers()
		for len(nums) < 4 {
			nums = append(nums, decimal.Zero)
		}

		pairs := []struct {
			currency string
			bundles  decimal.Decimal
			amount   decimal.Decimal
		}{
			{"PYG", nums[0], nums[1]},
			{"USD", nums[2], nums[3]},
		}
		for _, pair := range pairs {
			if pair.bundles.IsZero() && pair.amount.IsZero() {
				continue
			}
			records = append(records, Movement{
				OperationDate:  date,
				Branch:         branch,
				Receipt:        receipt,
				Bundles:        bundleCount(pair.bundles),
				Amount:         pair.amount,
				Currency:       pair.currency,
				Direction:      m.direction(),
				Classification: ClassificationATM,
				FileDate:       header.fileDate,
				Reason:         m.motive(),
				Agency:         header.agency,
				SourceFile:     sourceFile,
			})
		}
	}
	return records
}

// bundleCount keeps the bundle column only when it holds a whole nonzero
// count.
func bundleCount(d decimal.Decimal) *int64 {
	if d.IsZero() || !d.IsInteger() {
		return nil
	}
	n := d.IntPart()
	return &n
}

func maxDecimal(nums []decimal.Decimal) decimal.Decimal {
	max := nums[0]
	for _, n := range nums[1:] {
		if n.GreaterThan(max) {
			max = n
		}
	}
	return max
}
