package engine

// Tier selects how strongly the computer plays. Each tier maps to a search
// horizon; the move-selection strategy per tier lives in the bot service.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// MaxDepth is the search horizon for the tier, in plies. Hard searches the
// whole tree: a game never exceeds nine moves.
func (t Tier) MaxDepth() int {
	switch t {
	case TierEasy:
		return 1
	case TierHard:
		return maxMoves
	default:
		return 3
	}
}

// ParseTier maps external input to a Tier, defaulting to medium.
func ParseTier(s string) Tier {
	switch Tier(s) {
	case TierEasy:
		return TierEasy
	case TierHard:
		return TierHard
	default:
		return TierMedium
	}
}
