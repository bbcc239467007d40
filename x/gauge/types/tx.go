package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message handling surface of the gauge module.
type MsgServer interface {
	CreateGauge(context.Context, *MsgCreateGauge) (*MsgCreateGaugeResponse, error)
	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	Unstake(context.Context, *MsgUnstake) (*MsgUnstakeResponse, error)
	ClaimReward(context.Context, *MsgClaimReward) (*MsgClaimRewardResponse, error)
}

// MsgCreateGaugeResponse defines the response for CreateGauge
type MsgCreateGaugeResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgStakeResponse defines the response for Stake
type MsgStakeResponse struct{}

// MsgUnstakeResponse defines the response for Unstake
type MsgUnstakeResponse struct{}

// MsgClaimRewardResponse defines the response for ClaimReward
type MsgClaimRewardResponse struct {
	Reward math.Int `json:"reward"`
}
