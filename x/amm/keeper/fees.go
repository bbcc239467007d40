package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// AccruedFees reports the claimable fee balances of a pool without mutating
// anything.
func (k Keeper) AccruedFees(ctx context.Context, poolID uint64) (feeA, feeB math.Int, err error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	return pool.FeeReserveA, pool.FeeReserveB, nil
}

// ClaimFees transfers a pool's accrued fees to the recipient and zeroes both
// fee reserves. Only the configured fee claimer may call it. Claiming from a
// pool with nothing accrued is a no-op, not an error.
func (k Keeper) ClaimFees(ctx context.Context, claimer sdk.AccAddress, poolID uint64, recipient sdk.AccAddress) (feeA, feeB math.Int, err error) {
	if claimer.String() != k.feeClaimer {
		return math.ZeroInt(), math.ZeroInt(), types.ErrUnauthorized.Wrapf("%s is not the fee claimer", claimer)
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	feeA, feeB = pool.FeeReserveA, pool.FeeReserveB
	if feeA.IsZero() && feeB.IsZero() {
		return feeA, feeB, nil
	}

	moduleAddr := k.GetModuleAddress()
	if feeA.IsPositive() {
		if err := k.sendExact(ctx, moduleAddr, recipient, pool.DenomA, feeA); err != nil {
			return math.ZeroInt(), math.ZeroInt(), err
		}
	}
	if feeB.IsPositive() {
		if err := k.sendExact(ctx, moduleAddr, recipient, pool.DenomB, feeB); err != nil {
			return math.ZeroInt(), math.ZeroInt(), err
		}
	}

	pool.FeeReserveA = math.ZeroInt()
	pool.FeeReserveB = math.ZeroInt()
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFeesClaimed,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		sdk.NewAttribute(types.AttributeKeyFeeA, feeA.String()),
		sdk.NewAttribute(types.AttributeKeyFeeB, feeB.String()),
	))
	k.metrics.FeesClaimed.Inc()

	return feeA, feeB, nil
}
