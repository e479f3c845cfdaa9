package ingest

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// DefaultPreviewRows bounds how many leading rows per sheet feed a preview.
const DefaultPreviewRows = 40

// rawPreviewBytes is how much of an unreadable file is sampled instead.
const rawPreviewBytes = 4096

// ErrUnsupportedFormat is returned when a document's extension maps to no
// known reader.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Previewer extracts bounded plain text from any supported document. The
// preview is what the issuer gate and the content classifier look at, so it
// favors breadth over fidelity: every sheet contributes, cells are joined
// with single spaces and empty lines are dropped.
type Previewer struct {
	maxRows int
	logger  *slog.Logger
}

func NewPreviewer(maxRows int, logger *slog.Logger) *Previewer {
	if maxRows <= 0 {
		maxRows = DefaultPreviewRows
	}
	return &Previewer{maxRows: maxRows, logger: logger}
}

// Preview returns the document's leading text. It never fails: a document
// that cannot be opened as its format degrades to a raw byte sample, and a
// file that cannot be read at all yields the empty string.
func (p *Previewer) Preview(path string) string {
	text, err := p.extract(path)
	if err == nil {
		return text
	}
	p.logger.Warn("preview degraded to raw bytes",
		slog.String("file", filepath.Base(path)),
		slog.String("error", err.Error()))
	return rawPreview(path)
}

func (p *Previewer) extract(path string) (string, error) {
	switch DetectFormat(path) {
	case FormatXLSX:
		return previewXLSX(path, p.maxRows)
	case FormatXLS:
		return previewXLS(path, p.maxRows)
	case FormatPDF:
		return previewPDF(path)
	default:
		return "", ErrUnsupportedFormat
	}
}

func previewXLSX(path string, maxRows int) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var lines []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return "", err
		}
		for i, row := range rows {
			if i >= maxRows {
				break
			}
			if line := joinCells(row); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}

func previewXLS(path string, maxRows int) (string, error) {
	wb, closer, err := xls.OpenWithCloser(path, "utf-8")
	if err != nil {
		return "", err
	}
	defer closer.Close()

	var lines []string
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		for r := 0; r <= int(sheet.MaxRow) && r < maxRows; r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			var cells []string
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			if line := joinCells(cells); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}

func previewPDF(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rawPreview samples the leading bytes of a file verbatim. Binary noise is
// acceptable here because the gate only scans for a handful of uppercase
// issuer names.
func rawPreview(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, rawPreviewBytes)
	n, _ := f.Read(buf)
	return string(buf[:n])
}

func joinCells(cells []string) string {
	var kept []string
	for _, cell := range cells {
		if trimmed := strings.TrimSpace(cell); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, " ")
}
