package ecm

import (
	"errors"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/shopspring/decimal"

	"trip-reconciliation/internal/domain"
	"trip-reconciliation/internal/mapping"
)

// ErrContainerMissing means the detected vendor's parameter container is not
// in the document, i.e. Detect and the profiles disagree.
var ErrContainerMissing = errors.New("parameter container missing")

// Extract resolves every metric of table for vendor v. The result has exactly
// one key per table metric. warn may be nil.
func Extract(v domain.Vendor, doc *xmlquery.Node, table *mapping.Table, warn *Warnings) (domain.MetricSet, error) {
	if warn == nil {
		warn = NewWarnings()
	}
	p, err := ProfileFor(v)
	if err != nil {
		return nil, err
	}
	container, err := xmlquery.Query(doc, p.Signature)
	if err != nil || container == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrContainerMissing, v, p.Signature)
	}

	metrics := make(domain.MetricSet, table.Len())
	for _, m := range table.Metrics() {
		rule, ok := table.Rule(v, m)
		if !ok {
			warn.Add(WarningUnmappedMetric, string(m))
			metrics[m] = domain.NotDetermined
			continue
		}
		if rule.Summed() {
			metrics[m] = p.sum(container, rule.Sources(), warn)
			continue
		}
		value, found := p.lookup(container, rule.Name)
		if !found {
			warn.Add(WarningMissingParameter, rule.Name)
			value = domain.NotDetermined
		}
		metrics[m] = value
	}
	return metrics, nil
}

// sum adds the named parameters. Absent or non-numeric operands count as zero.
func (p Profile) sum(container *xmlquery.Node, names []string, warn *Warnings) string {
	total := decimal.Zero
	for _, name := range names {
		raw, found := p.lookup(container, name)
		if !found {
			warn.Add(WarningMissingOperand, name)
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			warn.Add(WarningNonNumericOperand, fmt.Sprintf("%s=%q", name, raw))
			continue
		}
		total = total.Add(d)
	}
	return total.String()
}
