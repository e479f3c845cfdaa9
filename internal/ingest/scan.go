package ingest

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gbenitezpy/consolidador/internal/normalize"
)

// Scanner collects pending documents from the per-agency intake folders.
type Scanner struct {
	root     string
	previews *Previewer
	logger   *slog.Logger
}

func NewScanner(root string, previews *Previewer, logger *slog.Logger) *Scanner {
	return &Scanner{root: root, previews: previews, logger: logger}
}

// Scan walks each agency folder in fixed order and returns the documents to
// process, previews already extracted. Office lock files ("~$...") and
// unsupported extensions are skipped, as is any agency folder that does not
// exist. Unreadable entries are logged and skipped so one bad file cannot
// sink the whole intake.
func (s *Scanner) Scan() ([]Document, error) {
	var docs []Document
	for _, agency := range normalize.Agencies {
		base := filepath.Join(s.root, agency)
		if _, err := os.Stat(base); err != nil {
			if !os.IsNotExist(err) {
				s.logger.Warn("agency folder unreadable",
					slog.String("path", base),
					slog.String("error", err.Error()))
			}
			continue
		}
		found, err := s.scanFolder(base, agency)
		if err != nil {
			return docs, fmt.Errorf("scan %s: %w", base, err)
		}
		docs = append(docs, found...)
	}
	return docs, nil
}

func (s *Scanner) scanFolder(base, agency string) ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.logger.Warn("skipping unreadable entry",
				slog.String("path", path),
				slog.String("error", walkErr.Error()))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), "~") {
			return nil
		}
		format := DetectFormat(path)
		if format == FormatUnknown {
			return nil
		}
		docs = append(docs, Document{
			Path:       path,
			Format:     format,
			AgencyHint: agency,
			Preview:    s.previews.Preview(path),
		})
		return nil
	})
	return docs, err
}
