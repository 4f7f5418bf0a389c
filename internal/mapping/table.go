package mapping

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"trip-reconciliation/internal/domain"
)

// Entry maps one canonical metric to its rule for each vendor key.
type Entry struct {
	Metric  domain.Metric   `yaml:"metric" validate:"required"`
	Vendors map[string]Rule `yaml:"vendors" validate:"required,min=1,dive"`
}

type tableFile struct {
	Metrics []Entry `yaml:"metrics" validate:"required,min=1,dive"`
}

// Table is an immutable, validated mapping table. It is safe for concurrent use.
type Table struct {
	entries []Entry
	rules   map[domain.Vendor]map[domain.Metric]Rule
}

// New validates entries and builds a Table indexed by vendor.
func New(entries []Entry) (*Table, error) {
	if err := validator.New().Struct(tableFile{Metrics: entries}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMapping, err)
	}

	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		rules:   make(map[domain.Vendor]map[domain.Metric]Rule),
	}
	seen := make(map[domain.Metric]bool, len(entries))
	for _, e := range entries {
		if !e.Metric.IsCanonical() {
			return nil, fmt.Errorf("%w: unknown metric %q", domain.ErrInvalidMapping, e.Metric)
		}
		if seen[e.Metric] {
			return nil, fmt.Errorf("%w: metric %q mapped twice", domain.ErrInvalidMapping, e.Metric)
		}
		seen[e.Metric] = true

		copied := Entry{Metric: e.Metric, Vendors: make(map[string]Rule, len(e.Vendors))}
		for key, rule := range e.Vendors {
			vendor, ok := domain.ParseVendor(key)
			if !ok {
				return nil, fmt.Errorf("%w: metric %q: unknown vendor %q", domain.ErrInvalidMapping, e.Metric, key)
			}
			if err := rule.check(); err != nil {
				return nil, fmt.Errorf("%w: metric %q, vendor %s: %v", domain.ErrInvalidMapping, e.Metric, key, err)
			}
			if t.rules[vendor] == nil {
				t.rules[vendor] = make(map[domain.Metric]Rule)
			}
			t.rules[vendor][e.Metric] = rule
			copied.Vendors[key] = rule
		}
		t.entries = append(t.entries, copied)
	}
	return t, nil
}

// MustNew is like New but panics on an invalid table.
func MustNew(entries []Entry) *Table {
	t, err := New(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse reads a table from its YAML form.
func Parse(data []byte) (*Table, error) {
	var f tableFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMapping, err)
	}
	return New(f.Metrics)
}

// Load reads a YAML table from path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}
	return t, nil
}

// Encode writes the table in the same YAML form Parse accepts.
func (t *Table) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tableFile{Metrics: t.entries}); err != nil {
		return err
	}
	return enc.Close()
}

// Metrics returns the mapped metrics in table order.
func (t *Table) Metrics() []domain.Metric {
	out := make([]domain.Metric, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Metric
	}
	return out
}

// Rule returns the rule for metric m in vendor v's export.
func (t *Table) Rule(v domain.Vendor, m domain.Metric) (Rule, bool) {
	r, ok := t.rules[v][m]
	return r, ok
}

// Len returns the number of mapped metrics.
func (t *Table) Len() int {
	return len(t.entries)
}
