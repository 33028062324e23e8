package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
)

type StatsService interface {
	RecordOutcome(ctx context.Context, tier engine.Tier, outcome engine.Outcome) error
	TierSummary(ctx context.Context, tier engine.Tier) (repository.Summary, error)
}

type statsRepo interface {
	RecordResult(ctx context.Context, tier engine.Tier, winner engine.Mark) error
	GetSummary(ctx context.Context, tier engine.Tier) (repository.Summary, error)
}

type statsService struct {
	statsRepo statsRepo
}

func NewStatsService(statsRepo statsRepo) StatsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

// RecordOutcome stores a finished game's result. Outcomes still in progress
// are ignored.
func (that *statsService) RecordOutcome(ctx context.Context, tier engine.Tier, outcome engine.Outcome) error {
	if outcome.InProgress() {
		return nil
	}

	if err := that.statsRepo.RecordResult(ctx, tier, outcome.Winner); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

func (that *statsService) TierSummary(ctx context.Context, tier engine.Tier) (repository.Summary, error) {
	summary, err := that.statsRepo.GetSummary(ctx, tier)
	if err != nil {
		return repository.Summary{}, fmt.Errorf("failed to get tier summary: %w", err)
	}

	return summary, nil
}
