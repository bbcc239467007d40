package types

import (
	"cosmossdk.io/math"
)

// Precision is the fixed-point scale of AccRewardPerShare. It is large
// enough that per-second reward rates do not truncate to zero for realistic
// allocation sizes.
const Precision = 1_000_000_000_000 // 10^12

// Gauge is the per-pool staking accumulator. AccRewardPerShare only ever
// grows; floor-division dust from reward settlement stays in the reward pool
// and is never corrected retroactively.
type Gauge struct {
	PoolId            uint64   `json:"pool_id"`
	TotalStaked       math.Int `json:"total_staked"`
	AccRewardPerShare math.Int `json:"acc_reward_per_share"`
	LastUpdateUnix    int64    `json:"last_update_unix"`
	AllocPoints       uint64   `json:"alloc_points"`
}

// NewGauge returns an empty gauge for a pool, with the clock set to now.
func NewGauge(poolID uint64, allocPoints uint64, nowUnix int64) Gauge {
	return Gauge{
		PoolId:            poolID,
		TotalStaked:       math.ZeroInt(),
		AccRewardPerShare: math.ZeroInt(),
		LastUpdateUnix:    nowUnix,
		AllocPoints:       allocPoints,
	}
}

// Validate performs stateless sanity checks on a gauge record.
func (g Gauge) Validate() error {
	if g.PoolId == 0 {
		return ErrInvalidGaugeState.Wrap("pool id must be positive")
	}
	if g.TotalStaked.IsNil() || g.TotalStaked.IsNegative() {
		return ErrInvalidGaugeState.Wrap("total staked cannot be negative")
	}
	if g.AccRewardPerShare.IsNil() || g.AccRewardPerShare.IsNegative() {
		return ErrInvalidGaugeState.Wrap("accumulator cannot be negative")
	}
	if g.LastUpdateUnix < 0 {
		return ErrInvalidGaugeState.Wrap("last update time cannot be negative")
	}
	return nil
}

// UserStake is one staker's position in a gauge. RewardDebt is the
// accumulator value already priced in for this user:
// pending = floor(Amount * AccRewardPerShare / Precision) - RewardDebt.
// Zero-amount entries persist after a full unstake; they contribute nothing
// to future accrual.
type UserStake struct {
	Amount     math.Int `json:"amount"`
	RewardDebt math.Int `json:"reward_debt"`
}

// NewUserStake returns an empty position.
func NewUserStake() UserStake {
	return UserStake{
		Amount:     math.ZeroInt(),
		RewardDebt: math.ZeroInt(),
	}
}

// Validate performs stateless sanity checks on a stake record.
func (u UserStake) Validate() error {
	if u.Amount.IsNil() || u.Amount.IsNegative() {
		return ErrInvalidGaugeState.Wrap("stake amount cannot be negative")
	}
	if u.RewardDebt.IsNil() || u.RewardDebt.IsNegative() {
		return ErrInvalidGaugeState.Wrap("reward debt cannot be negative")
	}
	return nil
}
