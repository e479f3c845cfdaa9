package pipeline

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gbenitezpy/consolidador/internal/classify"
	"github.com/gbenitezpy/consolidador/internal/extract"
	"github.com/gbenitezpy/consolidador/pkg/money"
)

// reportOrder fixes the order type totals appear in the run summary.
var reportOrder = []classify.DocType{
	classify.TypeStatementCashBank,
	classify.TypeStatementCashATM,
	classify.TypeStatementBundleATM,
	classify.TypeInventoryBank,
	classify.TypeInventoryATM,
}

// Summary accumulates the counters reported at the end of a pass.
type Summary struct {
	RunID      uuid.UUID
	Scanned    int
	Rejected   int
	NoActivity int
	Unknown    int
	Errors     int
	Types      map[classify.DocType]*TypeStats
}

// TypeStats tracks the consolidated output for one document type.
type TypeStats struct {
	Files   int
	Records int
	Totals  money.Totals
}

func NewSummary(runID uuid.UUID) *Summary {
	return &Summary{RunID: runID, Types: make(map[classify.DocType]*TypeStats)}
}

// Record accounts one document's extracted records under its type.
func (s *Summary) Record(dt classify.DocType, movements []extract.Movement, inventory []extract.InventoryLine) {
	ts := s.Types[dt]
	if ts == nil {
		ts = &TypeStats{Totals: money.Totals{}}
		s.Types[dt] = ts
	}

	ts.Files++
	ts.Records += len(movements) + len(inventory)
	for _, m := range movements {
		ts.Totals.Add(m.Currency, m.Amount)
	}
	for _, l := range inventory {
		ts.Totals.Add(l.Currency, decimal.NewFromInt(l.Total))
	}
}

// TotalRecords sums the written records across all types.
func (s *Summary) TotalRecords() int {
	n := 0
	for _, ts := range s.Types {
		n += ts.Records
	}
	return n
}

// Log emits the run totals, type by type in a stable order.
func (s *Summary) Log(logger *slog.Logger) {
	logger.Info("consolidation run finished",
		slog.Int("scanned", s.Scanned),
		slog.Int("records", s.TotalRecords()),
		slog.Int("rejected", s.Rejected),
		slog.Int("no_activity", s.NoActivity),
		slog.Int("unknown", s.Unknown),
		slog.Int("errors", s.Errors))

	for _, dt := range reportOrder {
		ts := s.Types[dt]
		if ts == nil {
			continue
		}
		logger.Info("type totals",
			slog.String("type", dt.String()),
			slog.Int("files", ts.Files),
			slog.Int("records", ts.Records),
			slog.String("amounts", ts.Totals.String()))
	}
}
