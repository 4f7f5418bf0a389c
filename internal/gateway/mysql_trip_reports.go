package gateway

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"trip-reconciliation/internal/domain"
)

// tripReportRow is one row of the trip_reports table. Metric columns hold the
// canonical text, N/D included.
type tripReportRow struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	FileName   string `gorm:"size:255;not null"`
	UnitNumber string `gorm:"size:64;index"`
	ReportDate string `gorm:"size:10"`
	ReportTime string `gorm:"size:8"`

	KmRecorrido            string `gorm:"size:32"`
	DistanciaConducida     string `gorm:"size:32"`
	DistanciaTopGear       string `gorm:"size:32"`
	DistanciaCambioBajo    string `gorm:"size:32"`
	DistanciaCrucero       string `gorm:"size:32"`
	CombustibleViaje       string `gorm:"size:32"`
	CombustibleManejando   string `gorm:"size:32"`
	CombustibleRalenti     string `gorm:"size:32"`
	DefUsado               string `gorm:"size:32"`
	TiempoViaje            string `gorm:"size:32"`
	TiempoManejando        string `gorm:"size:32"`
	TiempoRalenti          string `gorm:"size:32"`
	TiempoTopGear          string `gorm:"size:32"`
	TiempoCrucero          string `gorm:"size:32"`
	TiempoExcesoVelocidad  string `gorm:"size:32"`
	VelocidadMaxima        string `gorm:"size:32"`
	RpmMaxima              string `gorm:"size:32"`
	VelocidadPromedio      string `gorm:"size:32"`
	RendimientoViaje       string `gorm:"size:32"`
	RendimientoManejando   string `gorm:"size:32"`
	FactorCarga            string `gorm:"size:32"`
	EventosExcesoVelocidad string `gorm:"size:32"`
	EventosFrenado         string `gorm:"size:32"`
	TiempoNeutroCoasting   string `gorm:"size:32"`
	TiempoPto              string `gorm:"size:32"`
	CombustiblePto         string `gorm:"size:32"`
}

// TableName implements gorm's tabler interface.
func (tripReportRow) TableName() string {
	return "trip_reports"
}

// metricFields pairs every canonical metric with its column field in row.
func (row *tripReportRow) metricFields() map[domain.Metric]*string {
	return map[domain.Metric]*string{
		domain.MetricTripDistance:     &row.KmRecorrido,
		domain.MetricDriveDistance:    &row.DistanciaConducida,
		domain.MetricTopGearDistance:  &row.DistanciaTopGear,
		domain.MetricGearDownDistance: &row.DistanciaCambioBajo,
		domain.MetricCruiseDistance:   &row.DistanciaCrucero,
		domain.MetricTripFuel:         &row.CombustibleViaje,
		domain.MetricDriveFuel:        &row.CombustibleManejando,
		domain.MetricIdleFuel:         &row.CombustibleRalenti,
		domain.MetricDEFUsed:          &row.DefUsado,
		domain.MetricTripTime:         &row.TiempoViaje,
		domain.MetricDriveTime:        &row.TiempoManejando,
		domain.MetricIdleTime:         &row.TiempoRalenti,
		domain.MetricTopGearTime:      &row.TiempoTopGear,
		domain.MetricCruiseTime:       &row.TiempoCrucero,
		domain.MetricOverspeedTime:    &row.TiempoExcesoVelocidad,
		domain.MetricMaxSpeed:         &row.VelocidadMaxima,
		domain.MetricMaxRPM:           &row.RpmMaxima,
		domain.MetricAverageSpeed:     &row.VelocidadPromedio,
		domain.MetricTripEconomy:      &row.RendimientoViaje,
		domain.MetricDriveEconomy:     &row.RendimientoManejando,
		domain.MetricLoadFactor:       &row.FactorCarga,
		domain.MetricOverspeedEvents:  &row.EventosExcesoVelocidad,
		domain.MetricBrakeEvents:      &row.EventosFrenado,
		domain.MetricCoastTime:        &row.TiempoNeutroCoasting,
		domain.MetricPTOTime:          &row.TiempoPto,
		domain.MetricPTOFuel:          &row.CombustiblePto,
	}
}

func newTripReportRow(r domain.TripReport) tripReportRow {
	row := tripReportRow{
		ID:         r.ID,
		FileName:   r.SourceFileName,
		UnitNumber: r.UnitNumber,
		ReportDate: r.ReportDate,
		ReportTime: r.ReportTime,
	}
	for m, field := range row.metricFields() {
		*field = r.Metric(m)
	}
	return row
}

func (row tripReportRow) toDomain() domain.TripReport {
	metrics := make(domain.MetricSet, len(domain.Metrics))
	for m, field := range row.metricFields() {
		metrics[m] = *field
	}
	return domain.TripReport{
		ID:             row.ID,
		SourceFileName: row.FileName,
		UnitNumber:     row.UnitNumber,
		ReportDate:     row.ReportDate,
		ReportTime:     row.ReportTime,
		Metrics:        metrics.Complete(),
	}
}

// MySQLTripReportRepository implements the TripReportRepository interface
// over the trip_reports table.
type MySQLTripReportRepository struct {
	db *gorm.DB
}

// NewMySQLTripReportRepository creates a new repository instance.
func NewMySQLTripReportRepository(db *gorm.DB) *MySQLTripReportRepository {
	return &MySQLTripReportRepository{db: db}
}

// Migrate creates or extends the trip_reports table.
func (r *MySQLTripReportRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&tripReportRow{})
}

// SaveTripReport inserts report and sets its ID.
func (r *MySQLTripReportRepository) SaveTripReport(ctx context.Context, report *domain.TripReport) error {
	row := newTripReportRow(*report)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert trip report %s: %w", report.SourceFileName, err)
	}
	report.ID = row.ID
	return nil
}

// ListTripReports returns the reports matching filter, newest first.
func (r *MySQLTripReportRepository) ListTripReports(ctx context.Context, filter domain.ReportFilter) ([]domain.TripReport, error) {
	query, err := r.listQuery(ctx, filter)
	if err != nil {
		return nil, err
	}
	var rows []tripReportRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list trip reports: %w", err)
	}

	reports := make([]domain.TripReport, len(rows))
	for i, row := range rows {
		reports[i] = row.toDomain()
	}
	return reports, nil
}

func (r *MySQLTripReportRepository) listQuery(ctx context.Context, filter domain.ReportFilter) (*gorm.DB, error) {
	query := r.db.WithContext(ctx).Model(&tripReportRow{})
	if filter.Month != "" {
		if _, _, err := filter.MonthRange(); err != nil {
			return nil, err
		}
		query = query.Where("DATE_FORMAT(STR_TO_DATE(report_date, '%m/%d/%Y'), '%Y-%m') = ?", filter.Month)
	}
	if filter.Unit != "" {
		query = query.Where("unit_number LIKE ?", containsPattern(filter.Unit))
	}
	return query.Order("id DESC"), nil
}
