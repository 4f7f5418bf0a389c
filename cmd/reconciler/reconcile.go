package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"trip-reconciliation/internal/domain"
	"trip-reconciliation/internal/export"
	"trip-reconciliation/internal/gateway"
	"trip-reconciliation/internal/usecase"
)

func newReconcileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Pair trip reports with the tablet entries of the same unit and day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runReconcile(cmd)
		},
	}
	cmd.Flags().String("store", "", "JSON file holding the trip reports")
	cmd.Flags().String("tablet", "", "CSV export of the tablet entries")
	cmd.Flags().Bool("db", false, "read whatever --store and --tablet do not provide from the databases")
	cmd.Flags().String("month", "", "only this month (YYYY-MM)")
	cmd.Flags().String("unit", "", "only units containing this text")
	cmd.Flags().String("format", "json", "output format: json or xlsx")
	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	a.bind(cmd, "reconcile", "store", "tablet", "db", "month", "unit", "format", "out")
	return cmd
}

func (a *app) runReconcile(cmd *cobra.Command) error {
	ctx := cmd.Context()
	filter := domain.ReportFilter{
		Month: a.v.GetString("reconcile.month"),
		Unit:  a.v.GetString("reconcile.unit"),
	}
	if filter.Month != "" {
		if _, _, err := filter.MonthRange(); err != nil {
			return err
		}
	}
	format := a.v.GetString("reconcile.format")
	outPath := a.v.GetString("reconcile.out")
	switch format {
	case "json":
	case "xlsx":
		if outPath == "" {
			return fmt.Errorf("--format xlsx needs --out FILE")
		}
	default:
		return fmt.Errorf("unknown format %q, want json or xlsx", format)
	}

	// --- Dependency Injection (Wiring the application) ---
	useDB := a.v.GetBool("reconcile.db")

	var trips usecase.TripReportRepository
	if path := a.v.GetString("reconcile.store"); path != "" {
		trips = gateway.NewJSONTripReportStore(path)
	} else if useDB {
		db, err := a.openDB("trips", a.cfg.TripsDB)
		if err != nil {
			return err
		}
		defer gateway.CloseMySQL(db)
		trips = gateway.NewMySQLTripReportRepository(db)
	} else {
		return fmt.Errorf("choose the trip reports with --store FILE or --db")
	}

	var tablets usecase.TabletEntryRepository
	if path := a.v.GetString("reconcile.tablet"); path != "" {
		tablets = gateway.NewCSVTabletEntryRepository(path, nil)
	} else if useDB {
		db, err := a.openDB("tablet", a.cfg.TabletDB)
		if err != nil {
			return err
		}
		defer gateway.CloseMySQL(db)
		tablets = gateway.NewMySQLTabletEntryRepository(db)
	} else {
		return fmt.Errorf("choose the tablet entries with --tablet FILE or --db")
	}

	reconciliation := usecase.NewReconciliationUseCase(trips, tablets, a.log)

	// --- Execute the Usecase ---
	report, err := reconciliation.Reconcile(ctx, filter)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	// --- Present the Output ---
	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}
	if format == "xlsx" {
		err = export.XLSX(w, report)
	} else {
		err = export.JSON(w, report)
	}
	if err != nil {
		return err
	}
	a.log.Info().Str("format", format).Str("out", outPath).Int("records", len(report.Records)).Msg("report written")
	return nil
}
