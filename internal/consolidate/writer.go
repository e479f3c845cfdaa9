// Package consolidate appends extracted records to the day's consolidated
// CSV files. Files are per document type and per day; within one run the
// first write of a type replaces whatever an earlier run left behind, and
// later writes append without headers.
package consolidate

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/gbenitezpy/consolidador/internal/classify"
	"github.com/gbenitezpy/consolidador/internal/extract"
)

// outputFiles maps each extractable type to its daily consolidated file.
var outputFiles = map[classify.DocType]string{
	classify.TypeStatementCashBank:  "BRITIMP_EFECTBANCO.csv",
	classify.TypeStatementCashATM:   "BRITIMP_EFECTATM.csv",
	classify.TypeInventoryBank:      "BRITIMP_INVENTARIO_BANCO.csv",
	classify.TypeInventoryATM:       "BRITIMP_INVENTARIO_ATM.csv",
	classify.TypeStatementBundleATM: "BRITIMP_BULTOS_ATM.csv",
}

// utf8BOM leads every consolidated file so spreadsheet tools pick the right
// encoding when double-clicked.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// OutputFile returns the consolidated filename for dt.
func OutputFile(dt classify.DocType) (string, bool) {
	name, ok := outputFiles[dt]
	return name, ok
}

// Writer owns one run's consolidated output under a single day folder. Not
// safe for concurrent use; the pipeline is sequential.
type Writer struct {
	dayDir  string
	written map[classify.DocType]bool
	logger  *slog.Logger
}

func NewWriter(dayDir string, logger *slog.Logger) *Writer {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = ';'
		return gocsv.NewSafeCSVWriter(w)
	})
	return &Writer{dayDir: dayDir, written: make(map[classify.DocType]bool), logger: logger}
}

// WriteMovements appends statement records to the consolidated file for dt.
// Empty slices write nothing.
func (w *Writer) WriteMovements(dt classify.DocType, recs []extract.Movement) error {
	if len(recs) == 0 {
		return nil
	}
	f, first, err := w.open(dt)
	if err != nil {
		return err
	}
	defer f.Close()

	if first {
		err = gocsv.Marshal(recs, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(recs, f)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", outputFiles[dt], err)
	}
	w.log(dt, len(recs))
	return nil
}

// WriteInventory appends inventory records to the consolidated file for dt.
// Empty slices write nothing.
func (w *Writer) WriteInventory(dt classify.DocType, recs []extract.InventoryLine) error {
	if len(recs) == 0 {
		return nil
	}
	f, first, err := w.open(dt)
	if err != nil {
		return err
	}
	defer f.Close()

	if first {
		err = gocsv.Marshal(recs, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(recs, f)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", outputFiles[dt], err)
	}
	w.log(dt, len(recs))
	return nil
}

// open readies the consolidated file for dt. The first open of a type in
// this run truncates and writes the encoding mark; later opens append.
func (w *Writer) open(dt classify.DocType) (*os.File, bool, error) {
	name, ok := outputFiles[dt]
	if !ok {
		return nil, false, fmt.Errorf("no consolidated file for type %s", dt)
	}
	if err := os.MkdirAll(w.dayDir, 0o755); err != nil {
		return nil, false, fmt.Errorf("create day folder: %w", err)
	}

	path := filepath.Join(w.dayDir, name)
	if w.written[dt] {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, false, fmt.Errorf("open %s: %w", name, err)
		}
		return f, false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, false, fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := f.Write(utf8BOM); err != nil {
		f.Close()
		return nil, false, fmt.Errorf("create %s: %w", name, err)
	}
	w.written[dt] = true
	return f, true, nil
}

func (w *Writer) log(dt classify.DocType, count int) {
	w.logger.Info("consolidated records written",
		slog.String("file", outputFiles[dt]),
		slog.String("type", dt.String()),
		slog.Int("records", count))
}
