package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleStats returns the accumulated per-tier outcome counters.
func (that *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if that.stats == nil {
		http.Error(w, "statistics are disabled", http.StatusServiceUnavailable)
		return
	}

	summaries := make(map[engine.Tier]repository.Summary, 3)
	for _, tier := range []engine.Tier{engine.TierEasy, engine.TierMedium, engine.TierHard} {
		summary, err := that.stats.TierSummary(r.Context(), tier)
		if err != nil {
			that.logger.Error("failed to get tier summary", "tier", tier, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		summaries[tier] = summary
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summaries); err != nil {
		that.logger.Error("failed to encode summaries", "error", err)
	}
}
