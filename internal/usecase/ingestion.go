package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"trip-reconciliation/internal/domain"
)

// IngestResult is the outcome of ingesting one named dump. Err is a
// *domain.DocumentError when the dump itself was rejected.
type IngestResult struct {
	Name   string
	Report domain.TripReport
	Err    error
}

// IngestionUseCase parses vendor dumps and persists the canonical reports.
type IngestionUseCase struct {
	source DocumentSource
	parser ReportParser
	repo   TripReportRepository
	log    zerolog.Logger
}

// NewIngestionUseCase creates a new instance of the usecase.
func NewIngestionUseCase(source DocumentSource, parser ReportParser, repo TripReportRepository, log zerolog.Logger) *IngestionUseCase {
	return &IngestionUseCase{source: source, parser: parser, repo: repo, log: log}
}

// Ingest parses one dump and saves it. Rejected dumps are not saved.
func (uc *IngestionUseCase) Ingest(ctx context.Context, doc domain.SourceDocument) (domain.TripReport, error) {
	report, err := uc.parser.Parse(doc.FileName, doc.Content)
	if err != nil {
		return domain.TripReport{}, err
	}
	if err := uc.repo.SaveTripReport(ctx, &report); err != nil {
		return domain.TripReport{}, fmt.Errorf("could not save trip report from %s: %w", doc.FileName, err)
	}
	uc.log.Info().
		Str("file", doc.FileName).
		Uint64("id", report.ID).
		Stringer("vendor", report.Vendor).
		Str("unit", report.UnitNumber).
		Str("date", report.ReportDate).
		Msg("trip report ingested")
	return report, nil
}

// IngestAll ingests the named dumps with at most workers running at once.
// Results keep the order of names. A rejected dump only marks its own
// result; any other fetch or storage failure stops the batch and is returned.
func (uc *IngestionUseCase) IngestAll(ctx context.Context, names []string, workers int) ([]IngestResult, error) {
	results := make([]IngestResult, len(names))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, name := range names {
		g.Go(func() error {
			results[i].Name = name

			doc, err := uc.source.Fetch(ctx, name)
			if err == nil {
				results[i].Report, err = uc.Ingest(ctx, doc)
			}
			var docErr *domain.DocumentError
			switch {
			case errors.As(err, &docErr):
				uc.log.Error().Err(docErr.Err).Str("file", docErr.FileName).Msg("document rejected")
				results[i].Err = err
				return nil
			case err != nil:
				return fmt.Errorf("could not ingest %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
