package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TabletEntry is a manual fuel/odometer entry captured on the yard tablets.
// It is owned by the tablet subsystem and only read here.
type TabletEntry struct {
	ID              uint64              `json:"id"`
	CompanyName     string              `json:"company_name"`
	UnitNumber      string              `json:"unit_number"`
	Timestamp       time.Time           `json:"timestamp"`
	OperatorName    string              `json:"operator_name"`
	BitacoraNumber  string              `json:"bitacora_number"`
	OdometerStart   decimal.NullDecimal `json:"km_inicio"`
	OdometerEnd     decimal.NullDecimal `json:"km_fin"`
	DistanceKm      decimal.NullDecimal `json:"km_recorridos"`
	DieselLiters    decimal.NullDecimal `json:"litros_diesel"`
	UreaLiters      decimal.NullDecimal `json:"litros_urea"`
	TotalizerLiters decimal.NullDecimal `json:"litros_totalizador"`
}

// DisplayTimestamp renders the timestamp as dd/mm/yyyy HH:MM:SS.
func (e TabletEntry) DisplayTimestamp() string {
	if e.Timestamp.IsZero() {
		return NotDetermined
	}
	return e.Timestamp.Format("02/01/2006 15:04:05")
}
