// Package datetime turns the timestamps found in ECU exports into the
// canonical month-first date and 24-hour time text stored on trip reports.
//
// Vendor tools write timestamps in whatever locale the workstation used, so
// the same vendor can emit day-first or month-first dates and 12- or 24-hour
// times, sometimes with Spanish meridiem markers ("p. m."). Parsing is a
// fixed, ordered trial of layouts; the first layout that parses wins.
package datetime

import (
	"regexp"
	"strings"
	"time"

	"trip-reconciliation/internal/domain"
)

// Layout is one candidate input format.
type Layout struct {
	Name     string
	Pattern  string // Go reference layout
	DayFirst bool
	Meridiem bool // parse the meridiem-normalized text instead of the cleaned text
}

var (
	MonthFirst24 = Layout{Name: "month-first 24h", Pattern: "1/2/2006 15:04:05"}
	MonthFirst12 = Layout{Name: "month-first 12h", Pattern: "1/2/2006 3:04:05 PM", Meridiem: true}
	DayFirst24   = Layout{Name: "day-first 24h", Pattern: "2/1/2006 15:04:05", DayFirst: true}
	DayFirst12   = Layout{Name: "day-first 12h", Pattern: "2/1/2006 3:04:05 PM", DayFirst: true, Meridiem: true}
)

// DefaultChain is the trial order used when the caller has no preferred layout.
var DefaultChain = []Layout{MonthFirst24, MonthFirst12, DayFirst24, DayFirst12}

// Counterpart returns the layout with the same day/month order and the other clock.
func (l Layout) Counterpart() Layout {
	switch l {
	case MonthFirst24:
		return MonthFirst12
	case MonthFirst12:
		return MonthFirst24
	case DayFirst24:
		return DayFirst12
	case DayFirst12:
		return DayFirst24
	default:
		return l
	}
}

// PreferredChain is the trial order for a caller that expects layout l:
// l itself, then its 12h/24h counterpart.
func PreferredChain(l Layout) []Layout {
	c := l.Counterpart()
	if c == l {
		return []Layout{l}
	}
	return []Layout{l, c}
}

// Result is a normalized timestamp. Both fields are domain.NotDetermined when
// no layout matched.
type Result struct {
	Date    string
	Time    string
	Layout  string // name of the layout that matched, empty on failure
	Matched bool
}

var meridiemPattern = regexp.MustCompile(`(?i)\b([ap])\.?\s?m\.?(\s|$)`)

// Clean trims the text and collapses internal whitespace runs to single spaces.
func Clean(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// NormalizeMeridiem rewrites dotted or lower-case meridiem markers
// ("a. m.", "p.m.", "pm") as plain AM/PM.
func NormalizeMeridiem(s string) string {
	return meridiemPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := meridiemPattern.FindStringSubmatch(m)
		return strings.ToUpper(sub[1]) + "M" + sub[2]
	})
}

// Normalize parses raw with DefaultChain.
func Normalize(raw string) Result {
	return Try(raw, DefaultChain)
}

// NormalizeAs parses raw expecting layout l, falling back to its counterpart.
func NormalizeAs(raw string, l Layout) Result {
	return Try(raw, PreferredChain(l))
}

// Try parses raw with each layout of chain in order and returns the first
// success rendered in the canonical layouts.
func Try(raw string, chain []Layout) Result {
	cleaned := Clean(raw)
	withMeridiem := NormalizeMeridiem(cleaned)

	for _, l := range chain {
		text := cleaned
		if l.Meridiem {
			text = withMeridiem
		}
		t, err := time.Parse(l.Pattern, text)
		if err != nil {
			continue
		}
		return Result{
			Date:    t.Format(domain.CanonicalDateLayout),
			Time:    t.Format(domain.CanonicalTimeLayout),
			Layout:  l.Name,
			Matched: true,
		}
	}
	return Result{Date: domain.NotDetermined, Time: domain.NotDetermined}
}
