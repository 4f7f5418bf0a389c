package domain

// ReconciliationRecord pairs one trip report with the tablet entry captured
// for the same unit on the same day, if there is one.
type ReconciliationRecord struct {
	Conciliado  bool         `json:"conciliado"`
	TripReport  TripReport   `json:"trip_report"`
	TabletEntry *TabletEntry `json:"tablet_entry,omitempty"`
}

// Summary provides high-level statistics of the reconciliation process.
type Summary struct {
	Month                  string `json:"month,omitempty"`
	Unit                   string `json:"unit,omitempty"`
	TotalTripReports       int    `json:"total_trip_reports"`
	TotalTabletEntries     int    `json:"total_tablet_entries"`
	MatchedTripReports     int    `json:"matched_trip_reports"`
	UnmatchedTripReports   int    `json:"unmatched_trip_reports"`
	UndatedTripReports     int    `json:"undated_trip_reports"`
	AmbiguousTabletMatches int    `json:"ambiguous_tablet_matches"`
}

// ReconciliationReport is the top-level structure for the final output.
// Records are ordered newest trip report first.
type ReconciliationReport struct {
	ReconciliationSummary Summary                `json:"reconciliation_summary"`
	Records               []ReconciliationRecord `json:"records"`
}
