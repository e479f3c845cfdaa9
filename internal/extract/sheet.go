package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/gbenitezpy/consolidador/internal/ingest"
	"github.com/gbenitezpy/consolidador/internal/normalize"
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one workbook cell. Number cells carry the decoded value, and their
// text is its shortest decimal form; joins and digit projections never see
// the storage representation.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// excelSerialMax is the serial for 9999-12-31. Numbers outside the serial
// range are amounts, not dates.
const excelSerialMax = 2958465

// DateValue reads the cell as a dd/mm/yyyy date when possible. Text cells go
// through the date normalizer; number cells are treated as workbook serials.
func (c Cell) DateValue() (string, bool) {
	switch c.Kind {
	case CellText:
		return normalize.NormalizeDate(c.Text)
	case CellNumber:
		if c.Number >= 1 && c.Number <= excelSerialMax {
			return normalize.SerialDate(c.Number), true
		}
	}
	return "", false
}

type Row []Cell

// Cell returns the cell at i, or an empty cell when i is out of range.
// Branch workbooks are ragged, so positional access must not panic.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// NonEmpty returns the non-empty cells in order.
func (r Row) NonEmpty() []Cell {
	var cells []Cell
	for _, c := range r {
		if c.Kind != CellEmpty {
			cells = append(cells, c)
		}
	}
	return cells
}

// Joined returns the non-empty cell texts separated by single spaces.
func (r Row) Joined() string {
	var parts []string
	for _, c := range r {
		if c.Kind != CellEmpty {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, " ")
}

// JoinedUpper is Joined uppercased, the form the statement machine matches
// its control phrases against.
func (r Row) JoinedUpper() string {
	return strings.ToUpper(r.Joined())
}

// HasDate reports whether any cell reads as a date.
func (r Row) HasDate() bool {
	for _, c := range r {
		if _, ok := c.DateValue(); ok {
			return true
		}
	}
	return false
}

// Scan returns a cursor for left-to-right positional extraction.
func (r Row) Scan() *Cursor {
	return &Cursor{row: r}
}

// Cursor walks a row once. Every Next method consumes cells up to and
// including its match, so the calls encode the expected column order.
type Cursor struct {
	row Row
	pos int
}

// NextDate advances to the first remaining cell that reads as a date.
func (c *Cursor) NextDate() (string, bool) {
	for c.pos < len(c.row) {
		cell := c.row[c.pos]
		c.pos++
		if d, ok := cell.DateValue(); ok {
			return d, true
		}
	}
	return "", false
}

// NextText advances to the first remaining non-empty cell.
func (c *Cursor) NextText() (string, bool) {
	for c.pos < len(c.row) {
		cell := c.row[c.pos]
		c.pos++
		if cell.Kind != CellEmpty {
			return cell.Text, true
		}
	}
	return "", false
}

// NextDigits advances to the first remaining cell whose digit projection has
// at least min characters and returns that projection. When no cell
// qualifies the cursor ends up exhausted, which is what statement rows
// without a receipt rely on.
func (c *Cursor) NextDigits(min int) (string, bool) {
	for c.pos < len(c.row) {
		cell := c.row[c.pos]
		c.pos++
		if cell.Kind == CellEmpty {
			continue
		}
		if digits := normalize.Digits(cell.Text); len(digits) >= min {
			return digits, true
		}
	}
	return "", false
}

// Numbers collects every remaining numeric cell, consuming the row. Number
// cells contribute their decoded value; text cells go through the locale
// parser and are skipped when they do not parse.
func (c *Cursor) Numbers() []decimal.Decimal {
	var nums []decimal.Decimal
	for ; c.pos < len(c.row); c.pos++ {
		switch cell := c.row[c.pos]; cell.Kind {
		case CellNumber:
			nums = append(nums, decimal.NewFromFloat(cell.Number))
		case CellText:
			if n, ok := normalize.ParseNumber(cell.Text); ok {
				nums = append(nums, n)
			}
		}
	}
	return nums
}

type Sheet struct {
	Name string
	Rows []Row
}

// FullText joins the sheet's rows the way previews do: cells with single
// spaces, rows with newlines, empty rows dropped.
func (s Sheet) FullText() string {
	var lines []string
	for _, row := range s.Rows {
		if line := row.Joined(); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// HeadText joins the first n rows with no separator between cells. Inventory
// headers split their title across adjacent cells, so a joint like
// "BILLETES BANCO AL" + ":" + "12/08/2026" must read as one line.
func (s Sheet) HeadText(n int) string {
	var lines []string
	for i, row := range s.Rows {
		if i >= n {
			break
		}
		var b strings.Builder
		for _, cell := range row {
			b.WriteString(cell.Text)
		}
		if line := b.String(); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// LoadSheets opens a workbook with the reader matching its format.
func LoadSheets(path string, format ingest.Format) ([]Sheet, error) {
	switch format {
	case ingest.FormatXLSX:
		return SheetsFromXLSX(path)
	case ingest.FormatXLS:
		return SheetsFromXLS(path)
	default:
		return nil, fmt.Errorf("no sheet reader for %s documents", format)
	}
}

// SheetsFromXLSX reads every sheet of an xlsx workbook with raw cell values,
// so dates arrive as serials and numbers unformatted.
func SheetsFromXLSX(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", name, err)
		}
		sheet := Sheet{Name: name}
		for _, raw := range rows {
			row := make(Row, len(raw))
			for i, cell := range raw {
				row[i] = makeCell(cell)
			}
			sheet.Rows = append(sheet.Rows, row)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

// SheetsFromXLS reads a legacy binary workbook. Leading columns before the
// row's first used cell are padded so positional access lines up with the
// xlsx reader.
func SheetsFromXLS(path string) ([]Sheet, error) {
	wb, closer, err := xls.OpenWithCloser(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer closer.Close()

	var sheets []Sheet
	for i := 0; i < wb.NumSheets(); i++ {
		sh := wb.GetSheet(i)
		if sh == nil {
			continue
		}
		sheet := Sheet{Name: sh.Name}
		for r := 0; r <= int(sh.MaxRow); r++ {
			xr := sh.Row(r)
			if xr == nil {
				sheet.Rows = append(sheet.Rows, Row{})
				continue
			}
			row := make(Row, 0, xr.LastCol())
			for c := 0; c < xr.FirstCol(); c++ {
				row = append(row, Cell{})
			}
			for c := xr.FirstCol(); c < xr.LastCol(); c++ {
				row = append(row, makeCell(xr.Col(c)))
			}
			sheet.Rows = append(sheet.Rows, row)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

// makeCell decodes one raw cell. Unambiguous float syntax makes a number
// cell whose text is rewritten to the value's shortest decimal form:
// workbooks store computed amounts with binary round-trip tails
// ("5.0999999999999996" for 5.1), and those tails must not reach the digit
// projections or the locale parser. Thousands-shaped strings stay text even
// though they parse as floats.
func makeCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{}
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil && !thousandsShaped(trimmed) {
		return Cell{Kind: CellNumber, Text: strconv.FormatFloat(v, 'f', -1, 64), Number: v}
	}
	return Cell{Kind: CellText, Text: trimmed}
}

// thousandsShaped reports whether a float-parseable string reads as a
// guaraní thousands group instead: a single dot followed by exactly three
// digits ("100.000" is one hundred thousand, not one hundred).
func thousandsShaped(s string) bool {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return false
	}
	tail := s[dot+1:]
	if len(tail) != 3 {
		return false
	}
	for _, r := range tail {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
