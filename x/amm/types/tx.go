package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message handling surface of the AMM module.
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	TransferShares(context.Context, *MsgTransferShares) (*MsgTransferSharesResponse, error)
	SetSwapFee(context.Context, *MsgSetSwapFee) (*MsgSetSwapFeeResponse, error)
	SetPaused(context.Context, *MsgSetPaused) (*MsgSetPausedResponse, error)
	TransferRole(context.Context, *MsgTransferRole) (*MsgTransferRoleResponse, error)
	AcceptRole(context.Context, *MsgAcceptRole) (*MsgAcceptRoleResponse, error)
}

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
	Fee       math.Int `json:"fee"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgTransferSharesResponse defines the response for TransferShares
type MsgTransferSharesResponse struct{}

// MsgSetSwapFeeResponse defines the response for SetSwapFee
type MsgSetSwapFeeResponse struct{}

// MsgSetPausedResponse defines the response for SetPaused
type MsgSetPausedResponse struct{}

// MsgTransferRoleResponse defines the response for TransferRole
type MsgTransferRoleResponse struct{}

// MsgAcceptRoleResponse defines the response for AcceptRole
type MsgAcceptRoleResponse struct{}
