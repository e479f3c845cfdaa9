// Package pipeline orchestrates a consolidation pass: scan the intake tree,
// vet and classify each document, extract its records, write the daily
// consolidated files and archive the sources.
package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/gbenitezpy/consolidador/internal/archive"
	"github.com/gbenitezpy/consolidador/internal/classify"
	"github.com/gbenitezpy/consolidador/internal/consolidate"
	"github.com/gbenitezpy/consolidador/internal/extract"
	"github.com/gbenitezpy/consolidador/internal/ingest"
	"github.com/gbenitezpy/consolidador/internal/normalize"
	"github.com/gbenitezpy/consolidador/pkg/config"
)

const dayDirFormat = "2006-01-02"

// Run identifies one consolidation pass.
type Run struct {
	ID     uuid.UUID
	Config *config.Config
	Logger *slog.Logger
	Clock  func() time.Time
}

// Pipeline wires the consolidation stages over one configuration.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
	clock  func() time.Time
	dryRun bool
}

// New builds a pipeline. With dryRun set it scans, classifies and extracts
// but writes and moves nothing.
func New(cfg *config.Config, logger *slog.Logger, dryRun bool) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger, clock: time.Now, dryRun: dryRun}
}

// Execute performs one full pass over the intake tree. Per-document failures
// are logged and counted, never fatal; only an unreadable intake root stops
// the run.
func (p *Pipeline) Execute() (*Summary, error) {
	run := Run{ID: uuid.New(), Config: p.cfg, Logger: p.logger, Clock: p.clock}
	dayDir := filepath.Join(run.Config.Paths.Output, run.Clock().Format(dayDirFormat))

	if !p.dryRun {
		runLogger, logFile, err := NewRunLogger(dayDir, p.cfg.Logging.SlogLevel())
		if err != nil {
			run.Logger.Warn("run log unavailable, logging to stdout only", slog.Any("error", err))
		} else {
			run.Logger = runLogger
			defer logFile.Close()
		}
	}
	run.Logger = run.Logger.With(slog.String("run_id", run.ID.String()))

	run.Logger.Info("consolidation run started",
		slog.String("pending", p.cfg.Paths.Pending),
		slog.String("output", dayDir),
		slog.Bool("dry_run", p.dryRun))

	previews := ingest.NewPreviewer(p.cfg.Run.PreviewRows, run.Logger)
	scanner := ingest.NewScanner(p.cfg.Paths.Pending, previews, run.Logger)
	docs, err := scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan intake: %w", err)
	}

	j := &job{
		run:    run,
		gate:   classify.NewGate(),
		writer: consolidate.NewWriter(dayDir, run.Logger),
		mover:  archive.NewMover(p.cfg.Paths.Processed, run.Logger),
		stats:  NewSummary(run.ID),
		dryRun: p.dryRun,
	}
	j.stats.Scanned = len(docs)

	for _, doc := range docs {
		j.process(doc)
	}

	j.stats.Log(run.Logger)
	return j.stats, nil
}

// job carries the per-run collaborators through the document loop.
type job struct {
	run    Run
	gate   *classify.Gate
	writer *consolidate.Writer
	mover  *archive.Mover
	stats  *Summary
	dryRun bool
}

func (j *job) process(doc ingest.Document) {
	logger := j.run.Logger.With(slog.String("file", doc.Name()))
	collapsed := normalize.CollapseSpacedLetters(doc.Preview)

	dt := classify.Classify(doc.Name())
	dt = classify.ResolveContent(dt, doc.Format, collapsed)
	logger.Debug("document classified",
		slog.String("type", dt.String()),
		slog.String("format", doc.Format.String()))

	if ok, reason := j.gate.Admit(doc.Name(), collapsed, dt); !ok {
		logger.Warn("document rejected",
			slog.String("reason", reason),
			slog.String("type", dt.String()))
		j.stats.Rejected++
		j.archive(doc, doc.AgencyHint, false, logger)
		return
	}

	if classify.NoActivity(collapsed) {
		agency := firstNonEmpty(
			normalize.AgencyFromText(collapsed),
			normalize.AgencyFromFilename(doc.Name()),
			doc.AgencyHint,
		)
		logger.Info("no movements in period", slog.String("agency", agency))
		j.stats.NoActivity++
		j.archive(doc, agency, false, logger)
		return
	}

	agency := fileAgency(doc, collapsed)
	movements, inventory := j.extractRecords(doc, dt, collapsed, logger)
	backfillAgencies(movements, inventory, agency)

	switch {
	case len(movements)+len(inventory) > 0:
		if err := j.persist(dt, movements, inventory, logger); err != nil {
			logger.Error("consolidated write failed", slog.Any("error", err))
			j.stats.Errors++
			j.archive(doc, agency, true, logger)
			return
		}
		j.stats.Record(dt, movements, inventory)
		j.archive(doc, agency, false, logger)
	case dt.Extractable():
		logger.Error("no records extracted from a recognized type",
			slog.String("type", dt.String()))
		j.stats.Errors++
		j.archive(doc, agency, true, logger)
	default:
		logger.Info("nothing to extract",
			slog.String("type", dt.String()),
			slog.String("format", doc.Format.String()))
		j.stats.Unknown++
		j.archive(doc, agency, false, logger)
	}
}

// extractRecords dispatches on the resolved type and source format. Anything
// without an extractor yields no records.
func (j *job) extractRecords(doc ingest.Document, dt classify.DocType, collapsed string, logger *slog.Logger) ([]extract.Movement, []extract.InventoryLine) {
	inventory := dt == classify.TypeInventoryATM || dt == classify.TypeInventoryBank

	switch {
	case dt == classify.TypeStatementCashBank && doc.Format.Spreadsheet():
		return j.cashRecords(doc, extract.ClassificationBank, logger), nil
	case dt == classify.TypeStatementCashATM && doc.Format.Spreadsheet():
		return j.cashRecords(doc, extract.ClassificationATM, logger), nil
	case dt == classify.TypeStatementBundleATM && doc.Format.Spreadsheet():
		sheets, ok := j.loadSheets(doc, logger)
		if !ok {
			return nil, nil
		}
		return extract.BundleStatement(sheets, doc.Name()), nil
	case inventory && doc.Format.Spreadsheet():
		sheets, ok := j.loadSheets(doc, logger)
		if !ok {
			return nil, nil
		}
		return nil, extract.InventorySheets(sheets, doc.Name())
	case inventory && doc.Format == ingest.FormatPDF:
		return nil, extract.InventoryPDF(collapsed, doc.Name())
	default:
		return nil, nil
	}
}

func (j *job) cashRecords(doc ingest.Document, classification string, logger *slog.Logger) []extract.Movement {
	sheets, ok := j.loadSheets(doc, logger)
	if !ok {
		return nil
	}
	return extract.CashStatement(sheets, classification, doc.Name())
}

func (j *job) loadSheets(doc ingest.Document, logger *slog.Logger) ([]extract.Sheet, bool) {
	sheets, err := extract.LoadSheets(doc.Path, doc.Format)
	if err != nil {
		logger.Error("workbook unreadable", slog.Any("error", err))
		return nil, false
	}
	return sheets, true
}

func (j *job) persist(dt classify.DocType, movements []extract.Movement, inventory []extract.InventoryLine, logger *slog.Logger) error {
	if j.dryRun {
		logger.Info("dry run, records not written",
			slog.String("type", dt.String()),
			slog.Int("records", len(movements)+len(inventory)))
		return nil
	}
	if len(movements) > 0 {
		return j.writer.WriteMovements(dt, movements)
	}
	return j.writer.WriteInventory(dt, inventory)
}

func (j *job) archive(doc ingest.Document, agency string, tagged bool, logger *slog.Logger) {
	if j.dryRun {
		logger.Info("dry run, file not moved",
			slog.String("agency", agency),
			slog.Bool("tagged", tagged))
		return
	}
	if _, err := j.mover.Move(doc.Path, agency, tagged); err != nil {
		logger.Error("archive failed, file left in intake", slog.Any("error", err))
		j.stats.Errors++
	}
}

// fileAgency resolves a document's agency: branch text first, then filename
// prefix, then the intake folder, then whatever raw name the branch marker
// captured.
func fileAgency(doc ingest.Document, collapsed string) string {
	text := normalize.AgencyFromText(collapsed)
	if code := normalize.AgencyCode(text); code != "" {
		return code
	}
	if code := normalize.AgencyFromFilename(doc.Name()); code != "" {
		return code
	}
	if doc.AgencyHint != "" {
		return doc.AgencyHint
	}
	return text
}

// backfillAgencies fills empty record agencies from the file-level resolution
// and normalizes captured branch names to their codes.
func backfillAgencies(movements []extract.Movement, inventory []extract.InventoryLine, agency string) {
	for i := range movements {
		movements[i].Agency = normalizeAgency(movements[i].Agency, agency)
	}
	for i := range inventory {
		inventory[i].Agency = normalizeAgency(inventory[i].Agency, agency)
	}
}

func normalizeAgency(current, fallback string) string {
	if current == "" {
		return fallback
	}
	if code := normalize.AgencyCode(current); code != "" {
		return code
	}
	return current
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
