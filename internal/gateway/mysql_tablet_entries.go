package gateway

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"trip-reconciliation/internal/domain"
)

// tabletEntrySelect reads registros_entrada with its company, unit and
// operator names. Missing names come back as N/D.
const tabletEntrySelect = `r.id,
	IFNULL(c.name, 'N/D') AS company_name,
	IFNULL(u.unit_number, 'N/D') AS unit_number,
	r.timestamp,
	IFNULL(o.name, 'N/D') AS operator_name,
	r.bitacora_number,
	r.km_inicio,
	r.km_fin,
	r.km_recorridos,
	r.litros_diesel,
	r.litros_urea,
	r.litros_totalizador`

type tabletEntryRow struct {
	ID                uint64
	CompanyName       string
	UnitNumber        string
	Timestamp         sql.NullTime
	OperatorName      string
	BitacoraNumber    sql.NullString
	KmInicio          decimal.NullDecimal
	KmFin             decimal.NullDecimal
	KmRecorridos      decimal.NullDecimal
	LitrosDiesel      decimal.NullDecimal
	LitrosUrea        decimal.NullDecimal
	LitrosTotalizador decimal.NullDecimal
}

func (row tabletEntryRow) toDomain() domain.TabletEntry {
	e := domain.TabletEntry{
		ID:              row.ID,
		CompanyName:     row.CompanyName,
		UnitNumber:      row.UnitNumber,
		OperatorName:    row.OperatorName,
		BitacoraNumber:  row.BitacoraNumber.String,
		OdometerStart:   row.KmInicio,
		OdometerEnd:     row.KmFin,
		DistanceKm:      row.KmRecorridos,
		DieselLiters:    row.LitrosDiesel,
		UreaLiters:      row.LitrosUrea,
		TotalizerLiters: row.LitrosTotalizador,
	}
	if row.Timestamp.Valid {
		e.Timestamp = row.Timestamp.Time
	}
	return e
}

// MySQLTabletEntryRepository implements the TabletEntryRepository interface
// over the tablet application's schema, which it only reads.
type MySQLTabletEntryRepository struct {
	db *gorm.DB
}

// NewMySQLTabletEntryRepository creates a new repository instance.
func NewMySQLTabletEntryRepository(db *gorm.DB) *MySQLTabletEntryRepository {
	return &MySQLTabletEntryRepository{db: db}
}

// ListTabletEntries returns the entries matching filter, newest first.
func (r *MySQLTabletEntryRepository) ListTabletEntries(ctx context.Context, filter domain.ReportFilter) ([]domain.TabletEntry, error) {
	query, err := r.listQuery(ctx, filter)
	if err != nil {
		return nil, err
	}
	var rows []tabletEntryRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tablet entries: %w", err)
	}

	entries := make([]domain.TabletEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

func (r *MySQLTabletEntryRepository) listQuery(ctx context.Context, filter domain.ReportFilter) (*gorm.DB, error) {
	query := r.db.WithContext(ctx).
		Table("registros_entrada AS r").
		Select(tabletEntrySelect).
		Joins("LEFT JOIN companies AS c ON r.company_id = c.id").
		Joins("LEFT JOIN units AS u ON r.unit_id = u.id").
		Joins("LEFT JOIN operators AS o ON r.operator_id = o.id")
	if filter.Month != "" {
		start, end, err := monthBounds(filter)
		if err != nil {
			return nil, err
		}
		query = query.Where("r.timestamp >= ? AND r.timestamp < ?", start, end)
	}
	if filter.Unit != "" {
		query = query.Where("u.unit_number LIKE ?", containsPattern(filter.Unit))
	}
	return query.Order("r.id DESC"), nil
}
