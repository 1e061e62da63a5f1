package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/internal/bootstrap"
	"github.com/spf13/cobra"
)

// rootCmd drives the upload, mapping, preview and bulk workflow from a terminal.
var rootCmd = &cobra.Command{
	Use:   "wrapped",
	Short: "Generate wrapped-style customer reports from a spreadsheet",
	Long: `Turn a csv, xlsx or xls customer export into personalized slide reports.

Available subcommands:
  columns - Show the detected columns and their roles
  preview - Generate the report of the first customer
  bulk    - Generate reports for every customer`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(columnsCmd, previewCmd, bulkCmd)
}

type services struct {
	ingestor app.Ingestor
	mapper   app.ColumnMapper
	themes   app.ThemeService
	reports  app.ReportGenerator
	bulk     app.BulkOrchestrator
	exporter app.SlideExporter
}

// withServices starts the application graph for the lifetime of fn.
// SIGINT and SIGTERM cancel the context passed to fn.
func withServices(parent context.Context, fn func(ctx context.Context, svc *services) error) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var svc services
	shutdown, err := bootstrap.Services(ctx,
		&svc.ingestor,
		&svc.mapper,
		&svc.themes,
		&svc.reports,
		&svc.bulk,
		&svc.exporter,
	)
	if err != nil {
		return err
	}
	defer shutdown(context.WithoutCancel(ctx))

	return fn(ctx, &svc)
}
