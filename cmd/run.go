package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gbenitezpy/consolidador/internal/pipeline"
	"github.com/gbenitezpy/consolidador/pkg/config"
	"github.com/gbenitezpy/consolidador/pkg/cron"
)

var (
	dryRun   bool
	schedule string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a consolidation pass over the intake folders",
	Long: `Scans PENDIENTES/<agencia> for pending documents, consolidates them into
the day's CSV datasets and archives the sources under PROCESADO. With
--schedule (or CONSOL_SCHEDULE) the pass repeats on a cron expression until
interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsolidation()
	},
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"scan and report without writing or moving files")
	runCmd.Flags().StringVar(&schedule, "schedule", "",
		"cron expression for repeated runs (overrides CONSOL_SCHEDULE)")
	rootCmd.AddCommand(runCmd)
}

func runConsolidation() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Logging.SlogLevel(),
	}))

	p := pipeline.New(cfg, logger, dryRun)

	spec := schedule
	if spec == "" {
		spec = cfg.Run.Schedule
	}
	if spec == "" {
		_, err := p.Execute()
		return err
	}

	scheduler := cron.NewScheduler(spec, func() {
		if _, err := p.Execute(); err != nil {
			logger.Error("consolidation run failed", slog.Any("error", err))
		}
	}, logger)
	if err := scheduler.Start(); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-scheduler.Stop().Done()
	logger.Info("scheduler stopped")
	return nil
}
