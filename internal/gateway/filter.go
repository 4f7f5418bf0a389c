package gateway

import (
	"strings"
	"time"

	"trip-reconciliation/internal/domain"
)

// unitContains mirrors the SQL filter `unit_number LIKE '%unit%'` under
// utf8mb4_unicode_ci. Both sides are folded like the reconciliation key.
func unitContains(unitNumber, unit string) bool {
	needle := domain.FoldUnit(unit)
	if needle == "" {
		return true
	}
	return strings.Contains(domain.FoldUnit(unitNumber), needle)
}

// tripInMonth reports whether the canonical report date falls in the filter
// month. Undated reports never match a month filter.
func tripInMonth(r domain.TripReport, f domain.ReportFilter) bool {
	if f.Month == "" {
		return true
	}
	day, ok := r.Day()
	return ok && day.Format("2006-01") == f.Month
}

// timestampInMonth reports whether ts, read in its own location, falls in the
// filter month.
func timestampInMonth(ts time.Time, f domain.ReportFilter) bool {
	if f.Month == "" {
		return true
	}
	return !ts.IsZero() && ts.Format("2006-01") == f.Month
}
