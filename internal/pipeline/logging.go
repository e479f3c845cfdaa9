package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const runLogName = "BRITIMP_log.txt"

// NewRunLogger builds the run logger writing to both stdout and the day
// folder's log file. The caller closes the returned file when the run ends.
func NewRunLogger(dayDir string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dayDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output folder: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dayDir, runLogName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open run log: %w", err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stdout, f), &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}
