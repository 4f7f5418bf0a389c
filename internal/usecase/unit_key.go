package usecase

import (
	"strings"

	"trip-reconciliation/internal/domain"
)

// UnitKey folds a unit label so that labels stored under different
// encodings and collations compare equal: "Ünit-7", "unit-7" and "ＵＮＩＴ-7"
// share one key. Labels that are blank or NotDetermined return "" and
// must never be matched.
func UnitKey(label string) string {
	folded := domain.FoldUnit(label)
	if folded == "" || folded == strings.ToLower(domain.NotDetermined) {
		return ""
	}
	return folded
}
