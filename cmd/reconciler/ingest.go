package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trip-reconciliation/internal/domain"
	"trip-reconciliation/internal/ecm"
	"trip-reconciliation/internal/export"
	"trip-reconciliation/internal/gateway"
	"trip-reconciliation/internal/usecase"
)

type ingestOutput struct {
	File   string             `json:"file"`
	Report *domain.TripReport `json:"report,omitempty"`
	Error  string             `json:"error,omitempty"`
}

func newIngestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest FILE...",
		Short: "Parse ECU trip report dumps and store the canonical records",
		Long: `ingest parses each XML dump, detects whether it is a Cummins or a Detroit
export, and stores the canonical trip report. Dumps that are not well-formed
or not recognized are reported and skipped; the command then exits non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runIngest(cmd, args)
		},
	}
	cmd.Flags().String("store", "", "JSON file to store trip reports in")
	cmd.Flags().Bool("db", false, "store trip reports in the trips database")
	cmd.Flags().Bool("migrate", false, "create or extend the trip_reports table before storing")
	cmd.Flags().Int("workers", 0, "files parsed in parallel (default from config)")
	cmd.MarkFlagsMutuallyExclusive("store", "db")
	a.bind(cmd, "ingest", "store", "db", "migrate", "workers")
	return cmd
}

func (a *app) runIngest(cmd *cobra.Command, files []string) error {
	ctx := cmd.Context()

	// --- Dependency Injection (Wiring the application) ---
	var repo usecase.TripReportRepository
	switch {
	case a.v.GetBool("ingest.db"):
		db, err := a.openDB("trips", a.cfg.TripsDB)
		if err != nil {
			return err
		}
		defer gateway.CloseMySQL(db)

		mysqlRepo := gateway.NewMySQLTripReportRepository(db)
		if a.v.GetBool("ingest.migrate") {
			if err := mysqlRepo.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate trip_reports: %w", err)
			}
		}
		repo = mysqlRepo
	case a.v.GetString("ingest.store") != "":
		repo = gateway.NewJSONTripReportStore(a.v.GetString("ingest.store"))
	default:
		return fmt.Errorf("choose where to store trip reports with --store FILE or --db")
	}

	workers := a.cfg.Ingest.Workers
	if a.v.IsSet("ingest.workers") {
		workers = a.v.GetInt("ingest.workers")
	}

	ingestion := usecase.NewIngestionUseCase(
		gateway.NewFileDocumentSource(a.cfg.Ingest.MaxDocumentBytes),
		ecm.NewParser(a.table, a.log),
		repo,
		a.log,
	)

	// --- Execute the Usecase ---
	results, err := ingestion.IngestAll(ctx, files, workers)
	if err != nil {
		return err
	}

	// --- Present the Output ---
	out := make([]ingestOutput, len(results))
	rejected := 0
	for i, res := range results {
		out[i].File = res.Name
		if res.Err != nil {
			rejected++
			out[i].Error = res.Err.Error()
			continue
		}
		report := res.Report
		out[i].Report = &report
	}
	if err := export.JSON(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d documents rejected", rejected, len(results))
	}
	return nil
}
