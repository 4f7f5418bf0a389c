// Package ecm reads trip reports exported by ECU vendor tools and turns them
// into canonical domain.TripReport values.
//
// Parsing a dump runs four steps:
//   - the XML is parsed into a queryable tree (a syntax error rejects the file),
//   - Detect picks the vendor from the document structure,
//   - Extract resolves every metric of the mapping table against the vendor's
//     parameter container,
//   - Build cleans the unit label, normalizes the report timestamp and
//     assembles the record.
//
// Only malformed XML and an unrecognized structure reject a file. Missing
// parameters, non-numeric operands and unreadable timestamps degrade to
// domain.NotDetermined (or zero inside sums) and are reported as warnings.
package ecm
