package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/memory"
	playmock "github.com/riskibarqy/fantasy-points/internal/mocks/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportService_Import(t *testing.T) {
	t.Parallel()

	source := append(samplePlays(), play.Record{Season: 2023, Week: 1})
	playSource := memory.NewPlayRepository(source)
	rosterSource := memory.NewRosterRepository([]roster.Entry{
		{PlayerID: wrID, Season: 2023, Week: 1, Position: "WR"},
		{PlayerID: "", Season: 2023, Week: 1, Position: "QB"},
	})
	playSink := memory.NewPlayRepository(nil)
	rosterSink := memory.NewRosterRepository(nil)

	svc := NewImportService(playSource, rosterSource, playSink, rosterSink, logging.NewNop())
	got, err := svc.Import(context.Background(), ImportRequest{Season: 2023, Plays: true, Rosters: true})
	require.NoError(t, err)
	require.Equal(t, ImportResult{Season: 2023, Plays: 4, SkippedPlays: 1, Rosters: 1, SkippedRosters: 1}, got)

	stored, err := playSink.ListBySeason(context.Background(), 2023, play.NewFilter())
	require.NoError(t, err)
	require.Len(t, stored, 4)
}

func TestImportService_Import_Validation(t *testing.T) {
	t.Parallel()

	svc := NewImportService(nil, nil, nil, nil, nil)
	ctx := context.Background()

	_, err := svc.Import(ctx, ImportRequest{Season: 0, Plays: true})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Import(ctx, ImportRequest{Season: 2023})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Import(ctx, ImportRequest{Season: 2023, Rosters: true})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestImportService_Import_MissingSource(t *testing.T) {
	t.Parallel()

	playSource := playmock.NewRepository(t)
	playSource.On("ListBySeason", mock.Anything, 2030, mock.Anything).Return(nil, play.ErrSeasonNotFound).Once()

	svc := NewImportService(playSource, nil, memory.NewPlayRepository(nil), nil, logging.NewNop())
	_, err := svc.Import(context.Background(), ImportRequest{Season: 2030, Plays: true})
	require.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}
