package ecm

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Warning kinds recorded while a dump is parsed.
const (
	WarningMissingParameter  = "missing_parameter"
	WarningMissingOperand    = "missing_operand"
	WarningNonNumericOperand = "non_numeric_operand"
	WarningUnmappedMetric    = "unmapped_metric"
	WarningUnparseableDate   = "unparseable_date"
	WarningMissingUnit       = "missing_unit"
)

var warningDescriptions = map[string]string{
	WarningMissingParameter:  "metrics with no source parameter, stored as N/D",
	WarningMissingOperand:    "sum operands with no source parameter, counted as 0",
	WarningNonNumericOperand: "sum operands that are not numbers, counted as 0",
	WarningUnmappedMetric:    "metrics the mapping table has no rule for, stored as N/D",
	WarningUnparseableDate:   "report timestamps no layout could parse, stored as N/D",
	WarningMissingUnit:       "reports without a unit label, stored as N/D",
}

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// Warnings collects field-level degradations of one dump so they can be
// logged as one line per kind.
type Warnings struct {
	warnings map[string]*warningInfo
}

// NewWarnings creates an empty collector.
func NewWarnings() *Warnings {
	return &Warnings{warnings: make(map[string]*warningInfo)}
}

// Add records a warning occurrence with an example
func (w *Warnings) Add(kind, example string) {
	if w.warnings[kind] == nil {
		w.warnings[kind] = &warningInfo{examples: make([]string, 0, 3)}
	}

	info := w.warnings[kind]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// Count returns how many times kind was recorded.
func (w *Warnings) Count(kind string) int {
	if info := w.warnings[kind]; info != nil {
		return info.count
	}
	return 0
}

// Len returns the number of distinct kinds recorded.
func (w *Warnings) Len() int {
	return len(w.warnings)
}

// Log writes one warning line per recorded kind.
func (w *Warnings) Log(logger zerolog.Logger, fileName string) {
	kinds := make([]string, 0, len(w.warnings))
	for k := range w.warnings {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		info := w.warnings[kind]
		description, ok := warningDescriptions[kind]
		if !ok {
			description = "unknown issue"
		}
		logger.Warn().
			Str("file", fileName).
			Str("kind", kind).
			Int("occurrences", info.count).
			Str("examples", strings.Join(info.examples, ", ")).
			Msg(description)
	}
}
