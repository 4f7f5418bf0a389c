package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-reconciliation/internal/domain"
	"trip-reconciliation/internal/usecase"
	mock_usecase "trip-reconciliation/internal/usecase/mocks"
)

func TestIngestionUseCase_Ingest(t *testing.T) {
	doc := domain.SourceDocument{FileName: "205.xml", Content: []byte("<TripReport/>")}

	tests := []struct {
		name      string
		parsed    domain.TripReport
		parseErr  error
		saveErr   error
		wantID    uint64
		wantErrIs error
	}{
		{
			name:   "parsed report is saved",
			parsed: trip(0, "205", "11/13/2025"),
			wantID: 41,
		},
		{
			name:      "rejected document is not saved",
			parseErr:  domain.NewDocumentError("205.xml", domain.ErrUnrecognizedFormat),
			wantErrIs: domain.ErrUnrecognizedFormat,
		},
		{
			name:    "storage failure",
			parsed:  trip(0, "205", "11/13/2025"),
			saveErr: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			parser := mock_usecase.NewMockReportParser(ctrl)
			repo := mock_usecase.NewMockTripReportRepository(ctrl)
			source := mock_usecase.NewMockDocumentSource(ctrl)

			parser.EXPECT().Parse(doc.FileName, doc.Content).Return(tt.parsed, tt.parseErr)
			if tt.parseErr == nil {
				repo.EXPECT().SaveTripReport(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.TripReport) error {
						if tt.saveErr != nil {
							return tt.saveErr
						}
						r.ID = 41
						return nil
					})
			}

			uc := usecase.NewIngestionUseCase(source, parser, repo, zerolog.Nop())
			got, err := uc.Ingest(context.Background(), doc)

			switch {
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
			case tt.saveErr != nil:
				assert.ErrorIs(t, err, tt.saveErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got.ID)
				assert.Equal(t, "205", got.UnitNumber)
			}
		})
	}
}

func TestIngestionUseCase_IngestAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := mock_usecase.NewMockReportParser(ctrl)
	repo := mock_usecase.NewMockTripReportRepository(ctrl)
	source := mock_usecase.NewMockDocumentSource(ctrl)

	names := []string{"a.xml", "bad.xml", "c.xml"}
	for _, name := range names {
		source.EXPECT().Fetch(gomock.Any(), name).Return(domain.SourceDocument{FileName: name, Content: []byte(name)}, nil)
	}
	parser.EXPECT().Parse("a.xml", gomock.Any()).Return(trip(0, "1", "11/13/2025"), nil)
	parser.EXPECT().Parse("bad.xml", gomock.Any()).Return(domain.TripReport{}, domain.NewDocumentError("bad.xml", domain.ErrMalformedDocument))
	parser.EXPECT().Parse("c.xml", gomock.Any()).Return(trip(0, "3", "11/14/2025"), nil)
	repo.EXPECT().SaveTripReport(gomock.Any(), gomock.Any()).Times(2).Return(nil)

	uc := usecase.NewIngestionUseCase(source, parser, repo, zerolog.Nop())
	results, err := uc.IngestAll(context.Background(), names, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "a.xml", results[0].Name)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "1", results[0].Report.UnitNumber)

	assert.Equal(t, "bad.xml", results[1].Name)
	assert.ErrorIs(t, results[1].Err, domain.ErrMalformedDocument)

	assert.NoError(t, results[2].Err)
	assert.Equal(t, "3", results[2].Report.UnitNumber)
}

func TestIngestionUseCase_IngestAll_StopsOnSourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_usecase.NewMockDocumentSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), "missing.xml").Return(domain.SourceDocument{}, fmt.Errorf("open missing.xml: no such file"))

	uc := usecase.NewIngestionUseCase(source, mock_usecase.NewMockReportParser(ctrl), mock_usecase.NewMockTripReportRepository(ctrl), zerolog.Nop())
	_, err := uc.IngestAll(context.Background(), []string{"missing.xml"}, 1)
	assert.ErrorContains(t, err, "missing.xml")
}
