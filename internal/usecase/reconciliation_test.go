package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-reconciliation/internal/domain"
	"trip-reconciliation/internal/usecase"
	mock_usecase "trip-reconciliation/internal/usecase/mocks"
)

func trip(id uint64, unit, date string) domain.TripReport {
	return domain.TripReport{
		ID:         id,
		UnitNumber: unit,
		ReportDate: date,
		ReportTime: "10:00:00",
		Metrics:    domain.MetricSet{}.Complete(),
	}
}

func tablet(id uint64, unit string, ts time.Time) domain.TabletEntry {
	return domain.TabletEntry{
		ID:           id,
		UnitNumber:   unit,
		Timestamp:    ts,
		CompanyName:  "Transportes del Norte",
		OperatorName: "J. Pérez",
		DieselLiters: decimal.NewNullDecimal(decimal.RequireFromString("180.5")),
	}
}

func TestJoin(t *testing.T) {
	nov13 := time.Date(2025, 11, 13, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		trips       []domain.TripReport
		tablets     []domain.TabletEntry
		wantIDs     []uint64
		wantMatched map[uint64]uint64 // trip id -> tablet id
	}{
		{
			name:        "same unit and day match regardless of time of day",
			trips:       []domain.TripReport{trip(1, "205", "11/13/2025")},
			tablets:     []domain.TabletEntry{tablet(10, "205", nov13)},
			wantIDs:     []uint64{1},
			wantMatched: map[uint64]uint64{1: 10},
		},
		{
			name:        "undated trip never matches",
			trips:       []domain.TripReport{trip(1, "205", domain.NotDetermined)},
			tablets:     []domain.TabletEntry{tablet(10, "205", nov13)},
			wantIDs:     []uint64{1},
			wantMatched: map[uint64]uint64{},
		},
		{
			name:        "different day does not match",
			trips:       []domain.TripReport{trip(1, "205", "11/14/2025")},
			tablets:     []domain.TabletEntry{tablet(10, "205", nov13)},
			wantIDs:     []uint64{1},
			wantMatched: map[uint64]uint64{},
		},
		{
			name:        "unit compared case and accent insensitively",
			trips:       []domain.TripReport{trip(1, "Tráiler-7", "11/13/2025")},
			tablets:     []domain.TabletEntry{tablet(10, " TRAILER-7 ", nov13)},
			wantIDs:     []uint64{1},
			wantMatched: map[uint64]uint64{1: 10},
		},
		{
			name:        "N/D units never match each other",
			trips:       []domain.TripReport{trip(1, domain.NotDetermined, "11/13/2025")},
			tablets:     []domain.TabletEntry{tablet(10, domain.NotDetermined, nov13)},
			wantIDs:     []uint64{1},
			wantMatched: map[uint64]uint64{},
		},
		{
			name:  "lowest tablet id wins among several",
			trips: []domain.TripReport{trip(1, "205", "11/13/2025")},
			tablets: []domain.TabletEntry{
				tablet(30, "205", nov13.Add(2*time.Hour)),
				tablet(12, "205", nov13.Add(5*time.Hour)),
				tablet(21, "205", nov13),
			},
			wantIDs:     []uint64{1},
			wantMatched: map[uint64]uint64{1: 12},
		},
		{
			name: "newest trip first whatever the tablet order",
			trips: []domain.TripReport{
				trip(2, "205", "11/13/2025"),
				trip(7, "301", "11/13/2025"),
				trip(5, "205", "11/12/2025"),
			},
			tablets: []domain.TabletEntry{
				tablet(3, "205", nov13.AddDate(0, 0, -1)),
				tablet(1, "301", nov13),
				tablet(2, "205", nov13),
			},
			wantIDs:     []uint64{7, 5, 2},
			wantMatched: map[uint64]uint64{7: 1, 5: 3, 2: 2},
		},
		{
			name: "one tablet entry can annotate several trips",
			trips: []domain.TripReport{
				trip(1, "205", "11/13/2025"),
				trip(2, "205", "11/13/2025"),
			},
			tablets:     []domain.TabletEntry{tablet(10, "205", nov13)},
			wantIDs:     []uint64{2, 1},
			wantMatched: map[uint64]uint64{1: 10, 2: 10},
		},
		{
			name:        "no tablet entries",
			trips:       []domain.TripReport{trip(1, "205", "11/13/2025")},
			wantIDs:     []uint64{1},
			wantMatched: map[uint64]uint64{},
		},
		{
			name:        "no trips",
			tablets:     []domain.TabletEntry{tablet(10, "205", nov13)},
			wantIDs:     []uint64{},
			wantMatched: map[uint64]uint64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.Join(tt.trips, tt.tablets)

			ids := make([]uint64, 0, len(got))
			for _, rec := range got {
				ids = append(ids, rec.TripReport.ID)

				tabletID, wantMatch := tt.wantMatched[rec.TripReport.ID]
				assert.Equal(t, wantMatch, rec.Conciliado, "trip %d", rec.TripReport.ID)
				if wantMatch {
					require.NotNil(t, rec.TabletEntry)
					assert.Equal(t, tabletID, rec.TabletEntry.ID)
				} else {
					assert.Nil(t, rec.TabletEntry)
				}
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestJoin_KeepsInputOrderForEqualIDs(t *testing.T) {
	trips := []domain.TripReport{trip(0, "a", "11/13/2025"), trip(0, "b", "11/13/2025"), trip(0, "c", "11/13/2025")}

	got := usecase.Join(trips, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].TripReport.UnitNumber)
	assert.Equal(t, "b", got[1].TripReport.UnitNumber)
	assert.Equal(t, "c", got[2].TripReport.UnitNumber)
}

func TestReconciliationUseCase_Reconcile(t *testing.T) {
	nov13 := time.Date(2025, 11, 13, 8, 30, 0, 0, time.UTC)
	filter := domain.ReportFilter{Month: "2025-11", Unit: "205"}

	tests := []struct {
		name       string
		trips      []domain.TripReport
		tablets    []domain.TabletEntry
		tripsErr   error
		tabletsErr error
		want       domain.Summary
		wantErr    bool
	}{
		{
			name: "summary counts matched, unmatched and undated",
			trips: []domain.TripReport{
				trip(3, "205", "11/13/2025"),
				trip(2, "205", domain.NotDetermined),
				trip(1, "2051", "11/13/2025"),
			},
			tablets: []domain.TabletEntry{
				tablet(10, "205", nov13),
				tablet(11, "205", nov13),
			},
			want: domain.Summary{
				Month:                  "2025-11",
				Unit:                   "205",
				TotalTripReports:       3,
				TotalTabletEntries:     2,
				MatchedTripReports:     1,
				UnmatchedTripReports:   2,
				UndatedTripReports:     1,
				AmbiguousTabletMatches: 1,
			},
		},
		{
			name:     "trip repository error",
			tripsErr: errors.New("connection refused"),
			wantErr:  true,
		},
		{
			name:       "tablet repository error",
			trips:      []domain.TripReport{trip(1, "205", "11/13/2025")},
			tabletsErr: errors.New("unknown database 'tablet'"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			trips := mock_usecase.NewMockTripReportRepository(ctrl)
			tablets := mock_usecase.NewMockTabletEntryRepository(ctrl)

			trips.EXPECT().ListTripReports(gomock.Any(), filter).Return(tt.trips, tt.tripsErr)
			if tt.tripsErr == nil {
				tablets.EXPECT().ListTabletEntries(gomock.Any(), filter).Return(tt.tablets, tt.tabletsErr)
			}

			uc := usecase.NewReconciliationUseCase(trips, tablets, zerolog.Nop())
			got, err := uc.Reconcile(context.Background(), filter)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ReconciliationSummary)
			assert.Len(t, got.Records, len(tt.trips))
		})
	}
}
