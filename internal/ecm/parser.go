package ecm

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/rs/zerolog"

	"trip-reconciliation/internal/datetime"
	"trip-reconciliation/internal/domain"
	"trip-reconciliation/internal/mapping"
)

// Parser turns raw vendor dumps into canonical trip reports. It holds no
// per-file state and is safe for concurrent use.
type Parser struct {
	table *mapping.Table
	log   zerolog.Logger
}

// NewParser creates a parser extracting metrics with table.
func NewParser(table *mapping.Table, log zerolog.Logger) *Parser {
	return &Parser{table: table, log: log}
}

// Parse builds the canonical report of one dump. The only errors are
// *domain.DocumentError values wrapping domain.ErrMalformedDocument or
// domain.ErrUnrecognizedFormat (or ErrContainerMissing).
func (p *Parser) Parse(fileName string, raw []byte) (domain.TripReport, error) {
	warn := NewWarnings()
	report, err := p.parse(fileName, raw, warn)
	if err != nil {
		return domain.TripReport{}, err
	}
	warn.Log(p.log, fileName)
	p.log.Debug().
		Str("file", fileName).
		Stringer("vendor", report.Vendor).
		Str("unit", report.UnitNumber).
		Str("date", report.ReportDate).
		Msg("parsed trip report")
	return report, nil
}

func (p *Parser) parse(fileName string, raw []byte, warn *Warnings) (domain.TripReport, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		return domain.TripReport{}, domain.NewDocumentError(fileName, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err))
	}
	if err := checkSingleRoot(doc); err != nil {
		return domain.TripReport{}, domain.NewDocumentError(fileName, err)
	}

	vendor, err := Detect(doc)
	if err != nil {
		return domain.TripReport{}, domain.NewDocumentError(fileName, err)
	}
	metrics, err := Extract(vendor, doc, p.table, warn)
	if err != nil {
		return domain.TripReport{}, domain.NewDocumentError(fileName, err)
	}

	profile, err := ProfileFor(vendor)
	if err != nil {
		return domain.TripReport{}, domain.NewDocumentError(fileName, err)
	}
	unit, date := profile.header(doc)
	return Build(vendor, metrics, unit, date, fileName, warn), nil
}

// checkSingleRoot rejects documents without exactly one root element or with
// text outside it. The underlying decoder accepts both.
func checkSingleRoot(doc *xmlquery.Node) error {
	roots := 0
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case xmlquery.ElementNode:
			roots++
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(n.Data) != "" {
				return fmt.Errorf("%w: content outside the root element", domain.ErrMalformedDocument)
			}
		}
	}
	switch roots {
	case 0:
		return fmt.Errorf("%w: no root element", domain.ErrMalformedDocument)
	case 1:
		return nil
	default:
		return fmt.Errorf("%w: %d root elements", domain.ErrMalformedDocument, roots)
	}
}

// Build assembles a canonical report. It never fails: a missing unit or an
// unparseable timestamp become domain.NotDetermined. warn may be nil.
func Build(v domain.Vendor, metrics domain.MetricSet, unitRaw, dateTimeRaw, fileName string, warn *Warnings) domain.TripReport {
	if warn == nil {
		warn = NewWarnings()
	}

	unit := domain.CleanUnitNumber(unitRaw)
	if unit == "" {
		warn.Add(WarningMissingUnit, fileName)
		unit = domain.NotDetermined
	}

	var ts datetime.Result
	if p, err := ProfileFor(v); err == nil {
		ts = datetime.NormalizeAs(dateTimeRaw, p.DateLayout)
	} else {
		ts = datetime.Normalize(dateTimeRaw)
	}
	if !ts.Matched {
		warn.Add(WarningUnparseableDate, fmt.Sprintf("%q", dateTimeRaw))
	}

	return domain.TripReport{
		SourceFileName: fileName,
		Vendor:         v,
		UnitNumber:     unit,
		ReportDate:     ts.Date,
		ReportTime:     ts.Time,
		Metrics:        metrics.Complete(),
	}
}
