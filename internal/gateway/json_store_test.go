package gateway

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-reconciliation/internal/domain"
)

func TestJSONTripReportStore(t *testing.T) {
	ctx := context.Background()
	store := NewJSONTripReportStore(filepath.Join(t.TempDir(), "trips.json"))

	empty, err := store.ListTripReports(ctx, domain.ReportFilter{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	reports := []domain.TripReport{
		{SourceFileName: "a.xml", UnitNumber: "205", ReportDate: "11/13/2025", ReportTime: "14:10:39"},
		{SourceFileName: "b.xml", UnitNumber: "T-318", ReportDate: "10/28/2025", ReportTime: "13:08:24"},
		{SourceFileName: "c.xml", UnitNumber: "2051", ReportDate: domain.NotDetermined, ReportTime: domain.NotDetermined},
	}
	for i := range reports {
		reports[i].Metrics = domain.MetricSet{domain.MetricTripDistance: "1"}.Complete()
		require.NoError(t, store.SaveTripReport(ctx, &reports[i]))
		assert.Equal(t, uint64(i+1), reports[i].ID)
	}

	all, err := store.ListTripReports(ctx, domain.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint64{3, 2, 1}, []uint64{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, reports[0], all[2])

	november, err := store.ListTripReports(ctx, domain.ReportFilter{Month: "2025-11", Unit: "205"})
	require.NoError(t, err)
	require.Len(t, november, 1)
	assert.Equal(t, "a.xml", november[0].SourceFileName)

	byUnit, err := store.ListTripReports(ctx, domain.ReportFilter{Unit: "205"})
	require.NoError(t, err)
	assert.Len(t, byUnit, 2)
}

func TestJSONTripReportStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	store := NewJSONTripReportStore(filepath.Join(t.TempDir(), "trips.json"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := domain.TripReport{UnitNumber: "205", ReportDate: "11/13/2025"}
			assert.NoError(t, store.SaveTripReport(ctx, &r))
		}()
	}
	wg.Wait()

	all, err := store.ListTripReports(ctx, domain.ReportFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 8)
	assert.Equal(t, uint64(8), all[0].ID)
}

func TestJSONTripReportStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewJSONTripReportStore(path).ListTripReports(context.Background(), domain.ReportFilter{})
	assert.Error(t, err)
}
