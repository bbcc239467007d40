package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (s msgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid creator address: %v", err)
	}

	pool, err := s.Keeper.CreatePool(ctx, creator, msg.DenomA, msg.DenomB, msg.DecimalsA, msg.DecimalsB, msg.Stable)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolId: pool.Id}, nil
}

func (s msgServer) Swap(ctx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid trader address: %v", err)
	}

	pool, err := s.Keeper.GetPool(ctx, msg.PoolId)
	if err != nil {
		return nil, err
	}
	fee := msg.AmountIn.MulRaw(int64(pool.SwapFeeBps)).QuoRaw(types.BpsDenominator)

	amountOut, err := s.Keeper.Swap(ctx, trader, msg.PoolId, msg.DenomIn, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapResponse{AmountOut: amountOut, Fee: fee}, nil
}

func (s msgServer) AddLiquidity(ctx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid provider address: %v", err)
	}

	shares, err := s.Keeper.AddLiquidity(ctx, provider, msg.PoolId, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, err
	}
	return &types.MsgAddLiquidityResponse{Shares: shares}, nil
}

func (s msgServer) RemoveLiquidity(ctx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid provider address: %v", err)
	}

	amountA, amountB, err := s.Keeper.RemoveLiquidity(ctx, provider, msg.PoolId, msg.Shares)
	if err != nil {
		return nil, err
	}
	return &types.MsgRemoveLiquidityResponse{AmountA: amountA, AmountB: amountB}, nil
}

func (s msgServer) TransferShares(ctx context.Context, msg *types.MsgTransferShares) (*types.MsgTransferSharesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid sender address: %v", err)
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid recipient address: %v", err)
	}

	if err := s.Keeper.TransferShares(ctx, sender, recipient, msg.PoolId, msg.Shares); err != nil {
		return nil, err
	}
	return &types.MsgTransferSharesResponse{}, nil
}

func (s msgServer) SetSwapFee(ctx context.Context, msg *types.MsgSetSwapFee) (*types.MsgSetSwapFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid caller address: %v", err)
	}

	if err := s.Keeper.SetSwapFee(ctx, caller, msg.PoolId, msg.SwapFeeBps); err != nil {
		return nil, err
	}
	return &types.MsgSetSwapFeeResponse{}, nil
}

func (s msgServer) SetPaused(ctx context.Context, msg *types.MsgSetPaused) (*types.MsgSetPausedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid caller address: %v", err)
	}

	if err := s.Keeper.SetPaused(ctx, caller, msg.Paused); err != nil {
		return nil, err
	}
	return &types.MsgSetPausedResponse{}, nil
}

func (s msgServer) TransferRole(ctx context.Context, msg *types.MsgTransferRole) (*types.MsgTransferRoleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid caller address: %v", err)
	}

	if err := s.Keeper.TransferRole(ctx, caller, msg.Role, msg.Successor); err != nil {
		return nil, err
	}
	return &types.MsgTransferRoleResponse{}, nil
}

func (s msgServer) AcceptRole(ctx context.Context, msg *types.MsgAcceptRole) (*types.MsgAcceptRoleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid caller address: %v", err)
	}

	if err := s.Keeper.AcceptRole(ctx, caller, msg.Role); err != nil {
		return nil, err
	}
	return &types.MsgAcceptRoleResponse{}, nil
}
