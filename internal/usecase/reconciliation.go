package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"trip-reconciliation/internal/domain"
)

// ReconciliationUseCase orchestrates the reconciliation process.
type ReconciliationUseCase struct {
	trips   TripReportRepository
	tablets TabletEntryRepository
	log     zerolog.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(trips TripReportRepository, tablets TabletEntryRepository, log zerolog.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{trips: trips, tablets: tablets, log: log}
}

// Reconcile fetches both sides under filter and joins them.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, filter domain.ReportFilter) (*domain.ReconciliationReport, error) {
	trips, err := uc.trips.ListTripReports(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get trip reports: %w", err)
	}

	tablets, err := uc.tablets.ListTabletEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get tablet entries: %w", err)
	}

	records, ambiguous := join(trips, tablets)
	report := &domain.ReconciliationReport{
		ReconciliationSummary: domain.Summary{
			Month:                  filter.Month,
			Unit:                   filter.Unit,
			TotalTripReports:       len(trips),
			TotalTabletEntries:     len(tablets),
			AmbiguousTabletMatches: ambiguous,
		},
		Records: records,
	}
	for _, rec := range records {
		if rec.Conciliado {
			report.ReconciliationSummary.MatchedTripReports++
		} else {
			report.ReconciliationSummary.UnmatchedTripReports++
		}
		if _, ok := rec.TripReport.Day(); !ok {
			report.ReconciliationSummary.UndatedTripReports++
		}
	}

	uc.log.Info().
		Str("month", filter.Month).
		Str("unit", filter.Unit).
		Int("trip_reports", len(trips)).
		Int("tablet_entries", len(tablets)).
		Int("matched", report.ReconciliationSummary.MatchedTripReports).
		Msg("reconciliation finished")
	if ambiguous > 0 {
		uc.log.Warn().Int("trip_reports", ambiguous).Msg("several tablet entries matched the same trip report, kept the lowest id")
	}

	return report, nil
}

// Join pairs every trip report with the tablet entry captured for the same
// unit on the same calendar day. Records come out newest trip report first
// (highest ID, input order among equal IDs). When several tablet entries
// qualify the one with the lowest ID is attached; a tablet entry may annotate
// more than one trip report. Trip reports without a date or unit never match.
func Join(trips []domain.TripReport, tablets []domain.TabletEntry) []domain.ReconciliationRecord {
	records, _ := join(trips, tablets)
	return records
}

type matchKey struct {
	unit string
	day  string
}

const dayLayout = "2006-01-02"

func join(trips []domain.TripReport, tablets []domain.TabletEntry) (records []domain.ReconciliationRecord, ambiguous int) {
	candidates := make(map[matchKey][]int, len(tablets))
	for i, e := range tablets {
		unit := UnitKey(e.UnitNumber)
		if unit == "" || e.Timestamp.IsZero() {
			continue
		}
		key := matchKey{unit: unit, day: e.Timestamp.Format(dayLayout)}
		candidates[key] = append(candidates[key], i)
	}

	ordered := make([]domain.TripReport, len(trips))
	copy(ordered, trips)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID > ordered[j].ID
	})

	records = make([]domain.ReconciliationRecord, 0, len(ordered))
	for _, trip := range ordered {
		rec := domain.ReconciliationRecord{TripReport: trip}

		day, ok := trip.Day()
		unit := UnitKey(trip.UnitNumber)
		if ok && unit != "" {
			found := candidates[matchKey{unit: unit, day: day.Format(dayLayout)}]
			if len(found) > 1 {
				ambiguous++
			}
			if len(found) > 0 {
				entry := tablets[lowestID(tablets, found)]
				rec.Conciliado = true
				rec.TabletEntry = &entry
			}
		}
		records = append(records, rec)
	}
	return records, ambiguous
}

func lowestID(tablets []domain.TabletEntry, idx []int) int {
	best := idx[0]
	for _, i := range idx[1:] {
		if tablets[i].ID < tablets[best].ID {
			best = i
		}
	}
	return best
}
