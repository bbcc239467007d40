package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadia-dex/arcadia/x/gauge/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the gauge MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (s msgServer) CreateGauge(ctx context.Context, msg *types.MsgCreateGauge) (*types.MsgCreateGaugeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid creator address: %v", err)
	}

	gauge, err := s.Keeper.CreateGauge(ctx, creator, msg.PoolId, msg.AllocPoints)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateGaugeResponse{PoolId: gauge.PoolId}, nil
}

func (s msgServer) Stake(ctx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid staker address: %v", err)
	}

	if err := s.Keeper.Stake(ctx, staker, msg.PoolId, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgStakeResponse{}, nil
}

func (s msgServer) Unstake(ctx context.Context, msg *types.MsgUnstake) (*types.MsgUnstakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid staker address: %v", err)
	}

	if err := s.Keeper.Unstake(ctx, staker, msg.PoolId, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgUnstakeResponse{}, nil
}

func (s msgServer) ClaimReward(ctx context.Context, msg *types.MsgClaimReward) (*types.MsgClaimRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid staker address: %v", err)
	}

	reward, err := s.Keeper.ClaimReward(ctx, staker, msg.PoolId)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimRewardResponse{Reward: reward}, nil
}
