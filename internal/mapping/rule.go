package mapping

import (
	"fmt"
	"strings"
)

// RuleKind tells the extractor how to combine the source values of a metric.
type RuleKind string

const (
	// KindDirect reads one parameter as-is; absent means N/D.
	KindDirect RuleKind = "direct"
	// KindSum adds two parameters; an absent operand counts as zero.
	KindSum RuleKind = "sum"
	// KindCompound names two parameters as "A / B" and sums them like KindSum.
	KindCompound RuleKind = "compound"
)

// CompoundSeparator splits the two parameter names of a compound rule.
const CompoundSeparator = " / "

// Rule locates one metric inside one vendor's export.
type Rule struct {
	Kind     RuleKind `yaml:"kind" validate:"required,oneof=direct sum compound"`
	Name     string   `yaml:"name,omitempty" validate:"required_unless=Kind sum"`
	Operands []string `yaml:"operands,omitempty,flow" validate:"required_if=Kind sum,omitempty,len=2,dive,required"`
}

// Direct returns a rule reading a single parameter.
func Direct(name string) Rule {
	return Rule{Kind: KindDirect, Name: name}
}

// Sum returns a rule adding two parameters.
func Sum(a, b string) Rule {
	return Rule{Kind: KindSum, Operands: []string{a, b}}
}

// Compound returns a rule whose vendor name is itself an "A / B" pair.
func Compound(name string) Rule {
	return Rule{Kind: KindCompound, Name: name}
}

// Sources returns the parameter names the rule reads, in order.
func (r Rule) Sources() []string {
	switch r.Kind {
	case KindSum:
		return append([]string(nil), r.Operands...)
	case KindCompound:
		parts := strings.Split(r.Name, CompoundSeparator)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	default:
		return []string{r.Name}
	}
}

// Summed reports whether the rule adds its sources.
func (r Rule) Summed() bool {
	return r.Kind == KindSum || r.Kind == KindCompound
}

func (r Rule) String() string {
	switch r.Kind {
	case KindSum:
		return fmt.Sprintf("sum(%s)", strings.Join(r.Operands, ", "))
	case KindCompound:
		return fmt.Sprintf("compound(%s)", r.Name)
	default:
		return fmt.Sprintf("direct(%s)", r.Name)
	}
}

func (r Rule) check() error {
	if r.Kind == KindCompound {
		parts := r.Sources()
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("compound name %q must be two names joined by %q", r.Name, CompoundSeparator)
		}
	}
	return nil
}
