package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
)

type fakeStats struct {
	summaries map[engine.Tier]repository.Summary
	err       error
}

func (that *fakeStats) TierSummary(_ context.Context, tier engine.Tier) (repository.Summary, error) {
	if that.err != nil {
		return repository.Summary{}, that.err
	}
	return that.summaries[tier], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandlePing(t *testing.T) {
	srv := New(testLogger(), nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandleStats(t *testing.T) {
	t.Run("Returns the per-tier summaries", func(t *testing.T) {
		// Given: recorded games on two tiers
		stats := &fakeStats{summaries: map[engine.Tier]repository.Summary{
			engine.TierHard: {XWins: 1, OWins: 4, Draws: 2},
			engine.TierEasy: {XWins: 9},
		}}
		srv := New(testLogger(), stats)

		// When: fetching /stats
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		// Then: all three tiers come back as JSON
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[engine.Tier]repository.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, repository.Summary{XWins: 1, OWins: 4, Draws: 2}, got[engine.TierHard])
		assert.Equal(t, repository.Summary{XWins: 9}, got[engine.TierEasy])
		assert.Equal(t, repository.Summary{}, got[engine.TierMedium])
	})

	t.Run("Unavailable when statistics are disabled", func(t *testing.T) {
		srv := New(testLogger(), nil)

		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("Propagates storage failures as 500", func(t *testing.T) {
		srv := New(testLogger(), &fakeStats{err: errors.New("redis is down")})

		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
