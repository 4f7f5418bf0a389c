package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"trip-reconciliation/internal/domain"
)

// JSONTripReportStore keeps trip reports in a single JSON file. It stands in
// for the trips database on workstations without MySQL access and is safe
// for concurrent use within one process.
type JSONTripReportStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONTripReportStore creates a store backed by path. The file is created
// on the first save.
func NewJSONTripReportStore(path string) *JSONTripReportStore {
	return &JSONTripReportStore{path: path}
}

// SaveTripReport appends report and assigns it the next ID.
func (s *JSONTripReportStore) SaveTripReport(ctx context.Context, report *domain.TripReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load()
	if err != nil {
		return err
	}
	var last uint64
	for _, r := range reports {
		if r.ID > last {
			last = r.ID
		}
	}
	report.ID = last + 1
	reports = append(reports, *report)
	return s.write(reports)
}

// ListTripReports returns the stored reports matching filter, newest first.
func (s *JSONTripReportStore) ListTripReports(ctx context.Context, filter domain.ReportFilter) ([]domain.TripReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	reports, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.TripReport, 0, len(reports))
	for _, r := range reports {
		if tripInMonth(r, filter) && unitContains(r.UnitNumber, filter.Unit) {
			filtered = append(filtered, r)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ID > filtered[j].ID
	})
	return filtered, nil
}

func (s *JSONTripReportStore) load() ([]domain.TripReport, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read trip report store %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var reports []domain.TripReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode trip report store %s: %w", s.path, err)
	}
	return reports, nil
}

// write replaces the store file through a temporary file in the same directory.
func (s *JSONTripReportStore) write(reports []domain.TripReport) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode trip reports: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write trip report store %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write trip report store %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write trip report store %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace trip report store %s: %w", s.path, err)
	}
	return nil
}
