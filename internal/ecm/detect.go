package ecm

import (
	"fmt"

	"github.com/antchfx/xmlquery"

	"trip-reconciliation/internal/domain"
)

// Detect returns the vendor whose parameter container is present in doc,
// probing vendors in domain.Vendors order.
func Detect(doc *xmlquery.Node) (domain.Vendor, error) {
	for _, v := range domain.Vendors() {
		p, err := ProfileFor(v)
		if err != nil {
			return 0, err
		}
		if node, err := xmlquery.Query(doc, p.Signature); err == nil && node != nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: neither a Cummins TripInfoParameters nor a Detroit DataFile/TripActivity container was found", domain.ErrUnrecognizedFormat)
}
