package ecm_test

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-reconciliation/internal/domain"
	"trip-reconciliation/internal/ecm"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    domain.Vendor
		wantErr bool
	}{
		{name: "cummins", doc: `<A><TripInfoParameters/></A>`, want: domain.VendorCummins},
		{name: "detroit", doc: `<A><DataFile><TripActivity/></DataFile></A>`, want: domain.VendorDetroit},
		{name: "detroit without trip activity", doc: `<A><DataFile/></A>`, wantErr: true},
		{name: "cummins container nested too deep", doc: `<A><B><TripInfoParameters/></B></A>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := xmlquery.Parse(strings.NewReader(tt.doc))
			require.NoError(t, err)

			got, err := ecm.Detect(doc)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild(t *testing.T) {
	warn := ecm.NewWarnings()
	report := ecm.Build(domain.VendorCummins, domain.MetricSet{domain.MetricTripTime: "9.25"}, " ##12 ", "13/11/2025 02:10:39 p. m.", "a.xml", warn)

	assert.Equal(t, "12", report.UnitNumber)
	assert.Equal(t, "11/13/2025", report.ReportDate)
	assert.Equal(t, "14:10:39", report.ReportTime)
	assert.Equal(t, "9.25", report.Metric(domain.MetricTripTime))
	assert.Len(t, report.Metrics, len(domain.Metrics))
	assert.Zero(t, warn.Len())

	report = ecm.Build(domain.VendorDetroit, nil, "#", "not a date", "b.xml", warn)
	assert.Equal(t, domain.NotDetermined, report.UnitNumber)
	assert.Equal(t, domain.NotDetermined, report.ReportDate)
	assert.Equal(t, domain.NotDetermined, report.ReportTime)
	assert.Equal(t, 1, warn.Count(ecm.WarningMissingUnit))
	assert.Equal(t, 1, warn.Count(ecm.WarningUnparseableDate))
}
