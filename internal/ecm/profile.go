package ecm

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"trip-reconciliation/internal/datetime"
	"trip-reconciliation/internal/domain"
)

// Profile describes where one vendor keeps the report header and parameters.
type Profile struct {
	Vendor domain.Vendor

	// Signature is the parameter container; its presence selects the vendor.
	Signature string

	// ItemTag is the element holding one parameter, keyed by its Name attribute.
	ItemTag string
	// ValueAttr holds the parameter value; empty means the element text.
	ValueAttr string

	HeaderPath string // element carrying the unit and date attributes
	UnitAttr   string
	DateAttr   string

	// DateLayout is the layout the vendor tool usually writes.
	DateLayout datetime.Layout
}

var (
	cumminsProfile = Profile{
		Vendor:     domain.VendorCummins,
		Signature:  "/*/TripInfoParameters",
		ItemTag:    "TripInfo",
		ValueAttr:  "Value",
		HeaderPath: "/*/DeviceInfo",
		UnitAttr:   "UnitNumber",
		DateAttr:   "ReportDate",
		DateLayout: datetime.DayFirst12,
	}
	detroitProfile = Profile{
		Vendor:     domain.VendorDetroit,
		Signature:  "/*/DataFile/TripActivity",
		ItemTag:    "Parameter",
		HeaderPath: "/*/DataFile",
		UnitAttr:   "VehicleID",
		DateAttr:   "PC_Date",
		DateLayout: datetime.MonthFirst24,
	}
)

// ProfileFor returns the profile of v.
func ProfileFor(v domain.Vendor) (Profile, error) {
	switch v {
	case domain.VendorCummins:
		return cumminsProfile, nil
	case domain.VendorDetroit:
		return detroitProfile, nil
	default:
		return Profile{}, fmt.Errorf("no profile for vendor %d", int(v))
	}
}

// lookup returns the trimmed value of parameter name under container.
// ok is false when the parameter is absent or blank.
func (p Profile) lookup(container *xmlquery.Node, name string) (value string, ok bool) {
	expr := fmt.Sprintf(".//%s[@Name=%s]", p.ItemTag, xpathLiteral(name))
	node, err := xmlquery.Query(container, expr)
	if err != nil || node == nil {
		return "", false
	}
	if p.ValueAttr != "" {
		value, ok = attr(node, p.ValueAttr)
		if !ok {
			return "", false
		}
	} else {
		value = node.InnerText()
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// header returns the raw unit label and timestamp text of the report.
func (p Profile) header(doc *xmlquery.Node) (unit, date string) {
	node, err := xmlquery.Query(doc, p.HeaderPath)
	if err != nil || node == nil {
		return "", ""
	}
	unit, _ = attr(node, p.UnitAttr)
	date, _ = attr(node, p.DateAttr)
	return unit, date
}

func attr(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// xpathLiteral quotes s as an XPath 1.0 string literal.
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	return "concat('" + strings.Join(parts, `', "'", '`) + "')"
}
