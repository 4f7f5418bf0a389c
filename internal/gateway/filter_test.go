package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitContains(t *testing.T) {
	tests := []struct {
		name       string
		unitNumber string
		unit       string
		expected   bool
	}{
		{name: "no filter", unitNumber: "205", unit: "", expected: true},
		{name: "blank filter", unitNumber: "205", unit: "  ", expected: true},
		{name: "substring", unitNumber: "T-205", unit: "20", expected: true},
		{name: "case", unitNumber: "T-318", unit: "t-3", expected: true},
		{name: "accented label, plain filter", unitNumber: "Núm 5", unit: "num", expected: true},
		{name: "plain label, accented filter", unitNumber: "Num 5", unit: "NÚM", expected: true},
		{name: "full width label", unitNumber: "ＵＮＩＴ7", unit: "unit7", expected: true},
		{name: "no match", unitNumber: "205", unit: "318", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unitContains(tt.unitNumber, tt.unit))
		})
	}
}
