// Package export serializes reconciliation results for the fleet office:
// indented JSON for tooling and an XLSX workbook for spreadsheets.
package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	return nil
}
