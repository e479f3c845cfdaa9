// Package archive relocates processed source documents into the processed
// tree, grouped by agency. Moving the file is what marks it as handled; the
// intake folder only ever holds pending work.
package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gbenitezpy/consolidador/internal/normalize"
)

// fallbackFolder collects documents whose agency could not be resolved to a
// known code.
const fallbackFolder = "SIN_AGENCIA"

const errorTagFormat = "20060102_150405"

// Mover archives source documents under a processed root.
type Mover struct {
	root   string
	logger *slog.Logger
	now    func() time.Time
}

func NewMover(root string, logger *slog.Logger) *Mover {
	return &Mover{root: root, logger: logger, now: time.Now}
}

// Move relocates path into the processed folder for agency, falling back to
// the no-agency folder for unknown codes. Tagged files get an error mark and
// timestamp in their name so operators spot failed extractions; clean files
// keep their name. Existing files are never overwritten; colliding names get
// a numbered suffix. Returns the final destination.
func (m *Mover) Move(path, agency string, tagged bool) (string, error) {
	dir := filepath.Join(m.root, destFolder(agency))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create processed folder: %w", err)
	}

	name := filepath.Base(path)
	if tagged {
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		name = fmt.Sprintf("%s_ERROR_%s%s", stem, m.now().Format(errorTagFormat), ext)
	}

	dest := availablePath(dir, name)
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("move %s: %w", filepath.Base(path), err)
	}
	m.logger.Info("document archived",
		slog.String("file", filepath.Base(path)),
		slog.String("dest", dest))
	return dest, nil
}

func destFolder(agency string) string {
	if normalize.KnownAgency(agency) {
		return agency
	}
	return fallbackFolder
}

// availablePath appends " (i)" before the extension until the name is free.
func availablePath(dir, name string) string {
	dest := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			return dest
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
	}
}
