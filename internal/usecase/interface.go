package usecase

import (
	"context"

	"trip-reconciliation/internal/domain"
)

// TripReportRepository stores canonical trip reports and lists them back.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type TripReportRepository interface {
	// SaveTripReport persists report and sets its ID.
	SaveTripReport(ctx context.Context, report *domain.TripReport) error
	ListTripReports(ctx context.Context, filter domain.ReportFilter) ([]domain.TripReport, error)
}

// TabletEntryRepository reads the manual entries captured on the yard tablets.
type TabletEntryRepository interface {
	ListTabletEntries(ctx context.Context, filter domain.ReportFilter) ([]domain.TabletEntry, error)
}

// DocumentSource fetches raw vendor dumps by name.
type DocumentSource interface {
	Fetch(ctx context.Context, name string) (domain.SourceDocument, error)
}

// ReportParser turns one raw dump into its canonical trip report.
type ReportParser interface {
	Parse(fileName string, raw []byte) (domain.TripReport, error)
}
