package keeper

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// Quote prices a swap without executing it: it returns the output amount and
// the fee that Swap would realize against the current reserves. A paused
// module refuses to quote, matching Swap.
func (k Keeper) Quote(ctx context.Context, poolID uint64, denomIn string, amountIn math.Int) (amountOut, fee math.Int, err error) {
	if k.IsPaused(ctx) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrPaused.Wrap("swaps are disabled")
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrZeroAmount.Wrap("swap input")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if !pool.HasDenom(denomIn) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrAssetNotInPool.Wrapf("%s not in pool %d (%s/%s)", denomIn, poolID, pool.DenomA, pool.DenomB)
	}

	fee = amountIn.MulRaw(int64(pool.SwapFeeBps)).QuoRaw(types.BpsDenominator)
	swapAmount := amountIn.Sub(fee)
	if swapAmount.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrZeroAmount.Wrap("swap amount too small after fee")
	}

	amountOut, err = swapOutput(*pool, denomIn, swapAmount)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	return amountOut, fee, nil
}

// Swap executes an exact-input swap against the pool. The fee portion of the
// input lands in the fee reserve for the input asset and never touches the
// pricing reserves. After settlement the pool invariant is recomputed and the
// whole operation fails if it decreased.
//
// minAmountOut is enforced on behalf of the caller; pass zero to skip.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, denomIn string, amountIn, minAmountOut math.Int) (math.Int, error) {
	start := time.Now()
	defer func() {
		k.metrics.SwapLatency.Observe(time.Since(start).Seconds())
	}()

	if k.IsPaused(ctx) {
		return math.ZeroInt(), types.ErrPaused.Wrap("swaps are disabled")
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrZeroAmount.Wrap("swap input")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !pool.HasDenom(denomIn) {
		return math.ZeroInt(), types.ErrAssetNotInPool.Wrapf("%s not in pool %d (%s/%s)", denomIn, poolID, pool.DenomA, pool.DenomB)
	}
	denomOut := pool.OtherDenom(denomIn)

	fee := amountIn.MulRaw(int64(pool.SwapFeeBps)).QuoRaw(types.BpsDenominator)
	swapAmount := amountIn.Sub(fee)
	if swapAmount.IsZero() {
		return math.ZeroInt(), types.ErrZeroAmount.Wrap("swap amount too small after fee")
	}

	amountOut, err := swapOutput(*pool, denomIn, swapAmount)
	if err != nil {
		return math.ZeroInt(), err
	}
	_, reserveOut := pool.Reserves(denomIn)
	if amountOut.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientReserves.Wrap("output amount rounds to zero")
	}
	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), types.ErrInsufficientReserves.Wrapf("output %s >= reserve %s", amountOut, reserveOut)
	}
	if amountOut.LT(minAmountOut) {
		return math.ZeroInt(), types.ErrOutputBelowMinimum.Wrapf("expected at least %s, got %s", minAmountOut, amountOut)
	}

	kBefore, err := poolInvariant(*pool)
	if err != nil {
		return math.ZeroInt(), err
	}

	// Custody: pull the full input (fee included), pay out the output. Both
	// transfers verify exact movement; a taxed asset aborts the operation.
	moduleAddr := k.GetModuleAddress()
	if err := k.sendExact(ctx, trader, moduleAddr, denomIn, amountIn); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.sendExact(ctx, moduleAddr, trader, denomOut, amountOut); err != nil {
		return math.ZeroInt(), err
	}

	if denomIn == pool.DenomA {
		pool.ReserveA = pool.ReserveA.Add(swapAmount)
		pool.FeeReserveA = pool.FeeReserveA.Add(fee)
		pool.ReserveB = pool.ReserveB.Sub(amountOut)
	} else {
		pool.ReserveB = pool.ReserveB.Add(swapAmount)
		pool.FeeReserveB = pool.FeeReserveB.Add(fee)
		pool.ReserveA = pool.ReserveA.Sub(amountOut)
	}

	kAfter, err := poolInvariant(*pool)
	if err != nil {
		return math.ZeroInt(), err
	}
	if kAfter.LT(kBefore) {
		return math.ZeroInt(), types.ErrInvariantDecreased.Wrapf("k before %s, after %s", kBefore, kAfter)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyDenomIn, denomIn),
			sdk.NewAttribute(types.AttributeKeyDenomOut, denomOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
		),
		sdk.NewEvent(
			types.EventTypeReserveSync,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyReserveA, pool.ReserveA.String()),
			sdk.NewAttribute(types.AttributeKeyReserveB, pool.ReserveB.String()),
		),
	})

	if err := k.afterSwap(ctx, poolID, trader.String(), denomIn, denomOut, amountIn, amountOut); err != nil {
		return math.ZeroInt(), fmt.Errorf("Swap: hooks: %w", err)
	}

	poolIDStr := fmt.Sprintf("%d", poolID)
	k.metrics.SwapsTotal.WithLabelValues(poolIDStr, denomIn, denomOut).Inc()
	k.metrics.SwapVolume.WithLabelValues(poolIDStr, denomIn).Add(metricValue(amountIn))

	return amountOut, nil
}

// SpotPrice returns the instantaneous price of the counterpart asset in
// terms of denomIn, from raw reserves. Informational only.
func (k Keeper) SpotPrice(ctx context.Context, poolID uint64, denomIn string) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if !pool.HasDenom(denomIn) {
		return math.LegacyZeroDec(), types.ErrAssetNotInPool.Wrapf("%s not in pool %d", denomIn, poolID)
	}
	reserveIn, reserveOut := pool.Reserves(denomIn)
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.LegacyZeroDec(), types.ErrInsufficientReserves.Wrap("pool reserves must be positive")
	}
	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}
