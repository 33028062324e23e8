package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
)

type fakeStatsRepo struct {
	recorded []engine.Mark
	summary  repository.Summary
}

func (that *fakeStatsRepo) RecordResult(_ context.Context, _ engine.Tier, winner engine.Mark) error {
	that.recorded = append(that.recorded, winner)
	return nil
}

func (that *fakeStatsRepo) GetSummary(_ context.Context, _ engine.Tier) (repository.Summary, error) {
	return that.summary, nil
}

func TestStatsService_RecordOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("Ignores games still in progress", func(t *testing.T) {
		repo := &fakeStatsRepo{}
		stats := NewStatsService(repo)

		err := stats.RecordOutcome(ctx, engine.TierHard, engine.Outcome{})

		require.NoError(t, err)
		assert.Empty(t, repo.recorded)
	})

	t.Run("Records wins and draws", func(t *testing.T) {
		repo := &fakeStatsRepo{}
		stats := NewStatsService(repo)

		require.NoError(t, stats.RecordOutcome(ctx, engine.TierHard, engine.Outcome{Finished: true, Winner: engine.MarkO}))
		require.NoError(t, stats.RecordOutcome(ctx, engine.TierHard, engine.Outcome{Finished: true}))

		assert.Equal(t, []engine.Mark{engine.MarkO, engine.EmptyCell}, repo.recorded)
	})
}

func TestStatsService_TierSummary(t *testing.T) {
	repo := &fakeStatsRepo{summary: repository.Summary{XWins: 3, Draws: 1}}
	stats := NewStatsService(repo)

	summary, err := stats.TierSummary(context.Background(), engine.TierMedium)

	require.NoError(t, err)
	assert.Equal(t, repository.Summary{XWins: 3, Draws: 1}, summary)
}
