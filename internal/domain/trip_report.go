package domain

import (
	"fmt"
	"strings"
	"time"
)

// CanonicalDateLayout and CanonicalTimeLayout are the textual forms every
// stored trip report uses, whatever the source format was.
const (
	CanonicalDateLayout = "01/02/2006"
	CanonicalTimeLayout = "15:04:05"
)

// TripReport is the canonical, vendor-independent form of one ECU trip dump.
// It is built once at ingestion and never modified afterwards.
type TripReport struct {
	ID             uint64    `json:"id"`
	SourceFileName string    `json:"file_name"`
	Vendor         Vendor    `json:"-"`
	UnitNumber     string    `json:"unit_number"`
	ReportDate     string    `json:"report_date"` // mm/dd/yyyy or N/D
	ReportTime     string    `json:"report_time"` // HH:MM:SS or N/D
	Metrics        MetricSet `json:"metrics"`
}

// Metric returns the value of m, or NotDetermined if the report lacks it.
func (r TripReport) Metric(m Metric) string {
	if v, ok := r.Metrics[m]; ok && v != "" {
		return v
	}
	return NotDetermined
}

// Day returns the calendar date of the report. ok is false when the date is
// NotDetermined or not in the canonical layout.
func (r TripReport) Day() (day time.Time, ok bool) {
	if r.ReportDate == "" || r.ReportDate == NotDetermined {
		return time.Time{}, false
	}
	d, err := time.Parse(CanonicalDateLayout, r.ReportDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DisplayDate renders the report date day-first, as the fleet office reads it.
func (r TripReport) DisplayDate() string {
	d, ok := r.Day()
	if !ok {
		return NotDetermined
	}
	return d.Format("02/01/2006")
}

// CleanUnitNumber strips the '#' prefixes vendors put on unit labels.
func CleanUnitNumber(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, "#", ""))
}

// ReportFilter narrows listings by month and unit, as the listing screens do.
type ReportFilter struct {
	Month string // YYYY-MM, empty for any
	Unit  string // substring of the unit number, empty for any
}

// MonthRange returns the half-open [start, end) interval of the filter month.
func (f ReportFilter) MonthRange() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01", f.Month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month filter %q: %w", f.Month, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}
