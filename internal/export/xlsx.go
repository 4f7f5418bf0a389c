package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"trip-reconciliation/internal/domain"
)

// Sheet names of the reconciliation workbook.
const (
	RecordsSheet = "Conciliacion"
	SummarySheet = "Resumen"
)

var (
	leadingHeaders = []string{"ID", "Archivo", "Unidad", "Fecha", "Hora"}
	tabletHeaders  = []string{
		"Conciliado", "Empresa", "Unidad (tableta)", "Fecha y hora (tableta)", "Operador", "Bitácora",
		"KM inicio", "KM fin", "KM recorridos", "Litros diésel", "Litros urea", "Litros totalizador",
	}
)

// Headers returns the column titles of the records sheet in order.
func Headers() []string {
	headers := make([]string, 0, len(leadingHeaders)+len(domain.Metrics)+len(tabletHeaders))
	headers = append(headers, leadingHeaders...)
	for _, m := range domain.Metrics {
		headers = append(headers, m.Label())
	}
	return append(headers, tabletHeaders...)
}

// XLSX writes report as a workbook with one row per record and a summary sheet.
// Dates are shown day-first; numeric metrics are stored as numbers.
func XLSX(w io.Writer, report *domain.ReconciliationReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RecordsSheet); err != nil {
		return err
	}
	if err := writeRow(f, RecordsSheet, 1, toCells(Headers())); err != nil {
		return err
	}
	for i, rec := range report.Records {
		if err := writeRow(f, RecordsSheet, i+2, recordCells(rec)); err != nil {
			return err
		}
	}
	if err := f.SetPanes(RecordsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	s := report.ReconciliationSummary
	summary := [][]interface{}{
		{"Mes", s.Month},
		{"Unidad", s.Unit},
		{"Reportes de viaje", s.TotalTripReports},
		{"Registros de tableta", s.TotalTabletEntries},
		{"Conciliados", s.MatchedTripReports},
		{"Sin conciliar", s.UnmatchedTripReports},
		{"Sin fecha", s.UndatedTripReports},
		{"Coincidencias múltiples", s.AmbiguousTabletMatches},
	}
	for i, row := range summary {
		if err := writeRow(f, SummarySheet, i+1, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func recordCells(rec domain.ReconciliationRecord) []interface{} {
	r := rec.TripReport
	cells := []interface{}{r.ID, r.SourceFileName, r.UnitNumber, r.DisplayDate(), r.ReportTime}
	for _, m := range domain.Metrics {
		cells = append(cells, metricCell(r.Metric(m)))
	}

	if !rec.Conciliado || rec.TabletEntry == nil {
		return append(cells, "No")
	}
	e := rec.TabletEntry
	return append(cells,
		"Sí",
		e.CompanyName,
		e.UnitNumber,
		e.DisplayTimestamp(),
		e.OperatorName,
		e.BitacoraNumber,
		decimalCell(e.OdometerStart),
		decimalCell(e.OdometerEnd),
		decimalCell(e.DistanceKm),
		decimalCell(e.DieselLiters),
		decimalCell(e.UreaLiters),
		decimalCell(e.TotalizerLiters),
	)
}

// metricCell stores numeric text as a number and anything else as text.
func metricCell(v string) interface{} {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return v
	}
	return d.InexactFloat64()
}

func decimalCell(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return ""
	}
	return d.Decimal.InexactFloat64()
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
