package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
)

const (
	fieldXWins = "x_wins"
	fieldOWins = "o_wins"
	fieldDraws = "draws"
)

// Summary aggregates finished games for one difficulty tier. Only counters
// survive a restart; boards and in-flight games are never stored.
type Summary struct {
	XWins int64 `json:"x_wins"`
	OWins int64 `json:"o_wins"`
	Draws int64 `json:"draws"`
}

type StatsRepository interface {
	RecordResult(ctx context.Context, tier engine.Tier, winner engine.Mark) error
	GetSummary(ctx context.Context, tier engine.Tier) (Summary, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

// RecordResult bumps the counter for one finished game. An empty winner
// mark counts as a draw.
func (that *dbStats) RecordResult(ctx context.Context, tier engine.Tier, winner engine.Mark) error {
	statsKey := "stats:" + string(tier)

	field := fieldDraws
	switch winner {
	case engine.MarkX:
		field = fieldXWins
	case engine.MarkO:
		field = fieldOWins
	}

	if err := that.client.HIncrBy(ctx, statsKey, field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetSummary returns the accumulated counters for a tier. A tier that was
// never played yields a zero summary, not an error.
func (that *dbStats) GetSummary(ctx context.Context, tier engine.Tier) (Summary, error) {
	statsKey := "stats:" + string(tier)

	counters, err := that.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get summary: %w", err)
	}

	var summary Summary
	for field, raw := range counters {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to parse counter %q: %w", field, err)
		}

		switch field {
		case fieldXWins:
			summary.XWins = count
		case fieldOWins:
			summary.OWins = count
		case fieldDraws:
			summary.Draws = count
		}
	}

	return summary, nil
}
