package types

import "cosmossdk.io/math"

// RewardSource supplies the time-based reward quantity credited to a gauge's
// accumulator. Implementations must be monotone in elapsed time: more time
// never yields less reward.
type RewardSource interface {
	// Rewards returns the reward earned by a gauge with the given allocation
	// weight over elapsedSeconds.
	Rewards(elapsedSeconds int64, allocPoints uint64) math.Int
}

// LinearRewardSource emits reward at a constant per-second, per-allocation-
// point rate: reward = elapsed * allocPoints * RatePerSecond.
type LinearRewardSource struct {
	RatePerSecond math.Int
}

// NewLinearRewardSource returns a source emitting rate units per second per
// allocation point.
func NewLinearRewardSource(rate math.Int) LinearRewardSource {
	return LinearRewardSource{RatePerSecond: rate}
}

func (s LinearRewardSource) Rewards(elapsedSeconds int64, allocPoints uint64) math.Int {
	if elapsedSeconds <= 0 || allocPoints == 0 {
		return math.ZeroInt()
	}
	return s.RatePerSecond.MulRaw(elapsedSeconds).MulRaw(int64(allocPoints))
}
