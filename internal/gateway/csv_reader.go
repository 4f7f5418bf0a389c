package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"trip-reconciliation/internal/domain"
)

// TabletTimestampLayout is the dd/mm/yyyy HH:MM:SS form the tablet listing exports.
const TabletTimestampLayout = "02/01/2006 15:04:05"

// CSVTabletEntryRepository implements the TabletEntryRepository interface
// over a CSV export of the tablet listing. Columns are found by header name:
// id, company_name, unit_number, timestamp, operator_name, bitacora_number,
// km_inicio, km_fin, km_recorridos, litros_diesel, litros_urea and
// litros_totalizador. Only id, unit_number and timestamp are required.
type CSVTabletEntryRepository struct {
	path string
	loc  *time.Location
}

// NewCSVTabletEntryRepository creates a new repository instance. Timestamps
// are read as wall-clock times in loc (time.Local when nil).
func NewCSVTabletEntryRepository(path string, loc *time.Location) *CSVTabletEntryRepository {
	if loc == nil {
		loc = time.Local
	}
	return &CSVTabletEntryRepository{path: path, loc: loc}
}

// ListTabletEntries reads and parses the tablet CSV, newest entry first.
func (r *CSVTabletEntryRepository) ListTabletEntries(ctx context.Context, filter domain.ReportFilter) ([]domain.TabletEntry, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tablet entry file %s: %w", r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", r.path, err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	var entries []domain.TabletEntry
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", r.path, err)
		}

		entry, err := r.parseRecord(cols, record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%s line %d: %w", r.path, line, err)
		}
		if !timestampInMonth(entry.Timestamp, filter) || !unitContains(entry.UnitNumber, filter.Unit) {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

var requiredColumns = []string{"id", "unit_number", "timestamp"}

type columns map[string]int

func indexColumns(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}

// get returns the trimmed value of column name, or "" when the column is absent.
func (c columns) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (r *CSVTabletEntryRepository) parseRecord(cols columns, record []string) (domain.TabletEntry, error) {
	id, err := strconv.ParseUint(cols.get(record, "id"), 10, 64)
	if err != nil {
		return domain.TabletEntry{}, fmt.Errorf("could not parse id '%s': %w", cols.get(record, "id"), err)
	}

	var ts time.Time
	if raw := cols.get(record, "timestamp"); raw != "" {
		ts, err = time.ParseInLocation(TabletTimestampLayout, raw, r.loc)
		if err != nil {
			return domain.TabletEntry{}, fmt.Errorf("could not parse timestamp '%s': %w", raw, err)
		}
	}

	entry := domain.TabletEntry{
		ID:             id,
		CompanyName:    orNotDetermined(cols.get(record, "company_name")),
		UnitNumber:     orNotDetermined(cols.get(record, "unit_number")),
		Timestamp:      ts,
		OperatorName:   orNotDetermined(cols.get(record, "operator_name")),
		BitacoraNumber: cols.get(record, "bitacora_number"),
	}

	quantities := []struct {
		column string
		dst    *decimal.NullDecimal
	}{
		{"km_inicio", &entry.OdometerStart},
		{"km_fin", &entry.OdometerEnd},
		{"km_recorridos", &entry.DistanceKm},
		{"litros_diesel", &entry.DieselLiters},
		{"litros_urea", &entry.UreaLiters},
		{"litros_totalizador", &entry.TotalizerLiters},
	}
	for _, q := range quantities {
		raw := cols.get(record, q.column)
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.TabletEntry{}, fmt.Errorf("could not parse %s '%s': %w", q.column, raw, err)
		}
		*q.dst = decimal.NewNullDecimal(d)
	}
	return entry, nil
}

func orNotDetermined(s string) string {
	if s == "" {
		return domain.NotDetermined
	}
	return s
}
