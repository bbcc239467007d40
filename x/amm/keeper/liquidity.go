package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// MinimumLiquidity is burned from the first mint of every pool and held by the
// module account forever. It keeps TotalShares from ever returning to zero and
// makes the initial share price unmanipulable.
const MinimumLiquidity = 1000

// GetShares returns the share balance of owner in the pool, zero if none.
func (k Keeper) GetShares(ctx context.Context, poolID uint64, owner string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.SharesKey(poolID, owner))
	if bz == nil {
		return math.ZeroInt()
	}
	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("unmarshal shares for pool %d owner %s: %w", poolID, owner, err))
	}
	return shares
}

// SetShares writes the share balance, deleting the entry when it hits zero.
func (k Keeper) SetShares(ctx context.Context, poolID uint64, owner string, shares math.Int) {
	store := k.getStore(ctx)
	key := types.SharesKey(poolID, owner)
	if shares.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := shares.Marshal()
	if err != nil {
		panic(fmt.Errorf("marshal shares: %w", err))
	}
	store.Set(key, bz)
}

// IterateShares walks every share position of a pool. The callback returns
// true to stop early.
func (k Keeper) IterateShares(ctx context.Context, poolID uint64, fn func(owner string, shares math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.SharesByPoolPrefix(poolID))
	defer iterator.Close()

	prefixLen := len(types.SharesByPoolPrefix(poolID))
	for ; iterator.Valid(); iterator.Next() {
		owner := string(iterator.Key()[prefixLen:])
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("unmarshal shares for pool %d owner %s: %w", poolID, owner, err))
		}
		if fn(owner, shares) {
			break
		}
	}
}

// QuoteOptimalAmounts returns the deposit that matches the pool ratio for a
// desired amount of asset A, so callers can avoid donating excess on the
// other side. For an empty pool any ratio is optimal and the desired amounts
// are returned unchanged.
func (k Keeper) QuoteOptimalAmounts(ctx context.Context, poolID uint64, desiredA, desiredB math.Int) (amountA, amountB math.Int, err error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if pool.TotalShares.IsZero() {
		return desiredA, desiredB, nil
	}
	optimalB, err := SafeMulDiv(desiredA, pool.ReserveB, pool.ReserveA)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if optimalB.LTE(desiredB) {
		return desiredA, optimalB, nil
	}
	optimalA, err := SafeMulDiv(desiredB, pool.ReserveA, pool.ReserveB)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	return optimalA, desiredB, nil
}

// AddLiquidity deposits both assets and mints shares to the provider.
//
// The first deposit mints sqrt(amountA * amountB) shares, of which
// MinimumLiquidity is credited to the module account and locked. Subsequent
// deposits mint the minimum of the two pro-rata ratios, so unbalanced
// deposits donate the excess to the pool.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, error) {
	if k.IsPaused(ctx) {
		return math.ZeroInt(), types.ErrPaused.Wrap("liquidity provision is disabled")
	}
	if amountA.IsNil() || !amountA.IsPositive() || amountB.IsNil() || !amountB.IsPositive() {
		return math.ZeroInt(), types.ErrZeroAmount.Wrap("both deposit amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	var shares math.Int
	if pool.TotalShares.IsZero() {
		product, err := SafeMul(amountA, amountB)
		if err != nil {
			return math.ZeroInt(), err
		}
		minted, err := IntSqrt(product)
		if err != nil {
			return math.ZeroInt(), err
		}
		shares = minted.SubRaw(MinimumLiquidity)
		if !shares.IsPositive() {
			return math.ZeroInt(), types.ErrSharesRoundToZero.Wrapf("initial mint %s does not cover the locked minimum %d", minted, MinimumLiquidity)
		}
	} else {
		sharesA, err := SafeMulDiv(amountA, pool.TotalShares, pool.ReserveA)
		if err != nil {
			return math.ZeroInt(), err
		}
		sharesB, err := SafeMulDiv(amountB, pool.TotalShares, pool.ReserveB)
		if err != nil {
			return math.ZeroInt(), err
		}
		shares = MinInt(sharesA, sharesB)
		if shares.IsZero() {
			return math.ZeroInt(), types.ErrSharesRoundToZero.Wrap("deposit too small relative to pool size")
		}
	}

	moduleAddr := k.GetModuleAddress()
	if err := k.sendExact(ctx, provider, moduleAddr, pool.DenomA, amountA); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.sendExact(ctx, provider, moduleAddr, pool.DenomB, amountB); err != nil {
		return math.ZeroInt(), err
	}

	firstMint := pool.TotalShares.IsZero()
	pool.ReserveA = pool.ReserveA.Add(amountA)
	pool.ReserveB = pool.ReserveB.Add(amountB)
	if firstMint {
		pool.TotalShares = shares.AddRaw(MinimumLiquidity)
		k.SetShares(ctx, poolID, moduleAddr.String(), math.NewInt(MinimumLiquidity))
	} else {
		pool.TotalShares = pool.TotalShares.Add(shares)
	}
	k.SetShares(ctx, poolID, provider.String(), k.GetShares(ctx, poolID, provider.String()).Add(shares))

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiquidityAdded,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))

	if err := k.afterLiquidityChanged(ctx, poolID, provider.String(), amountA, amountB, true); err != nil {
		return math.ZeroInt(), fmt.Errorf("AddLiquidity: hooks: %w", err)
	}
	k.metrics.LiquidityOps.WithLabelValues("add").Inc()

	return shares, nil
}

// RemoveLiquidity burns shares and pays out the pro-rata portion of both
// reserves. Burning a sliver too small to redeem a unit of each asset fails
// rather than silently destroying the shares.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (amountA, amountB math.Int, err error) {
	if shares.IsNil() || !shares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrZeroAmount.Wrap("shares to burn")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	held := k.GetShares(ctx, poolID, provider.String())
	if held.LT(shares) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientShares.Wrapf("burning %s, holding %s", shares, held)
	}

	amountA, err = SafeMulDiv(shares, pool.ReserveA, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	amountB, err = SafeMulDiv(shares, pool.ReserveB, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if amountA.IsZero() || amountB.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrSharesRoundToZero.Wrap("burn redeems zero of an asset")
	}

	moduleAddr := k.GetModuleAddress()
	if err := k.sendExact(ctx, moduleAddr, provider, pool.DenomA, amountA); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if err := k.sendExact(ctx, moduleAddr, provider, pool.DenomB, amountB); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	k.SetShares(ctx, poolID, provider.String(), held.Sub(shares))

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiquidityRemoved,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))

	if err := k.afterLiquidityChanged(ctx, poolID, provider.String(), amountA, amountB, false); err != nil {
		return math.ZeroInt(), math.ZeroInt(), fmt.Errorf("RemoveLiquidity: hooks: %w", err)
	}
	k.metrics.LiquidityOps.WithLabelValues("remove").Inc()

	return amountA, amountB, nil
}

// TransferShares moves a share position between accounts without touching
// reserves. Gauges and other share-aware consumers observe the move through
// the AfterSharesTransferred hook.
func (k Keeper) TransferShares(ctx context.Context, from, to sdk.AccAddress, poolID uint64, shares math.Int) error {
	if shares.IsNil() || !shares.IsPositive() {
		return types.ErrZeroAmount.Wrap("shares to transfer")
	}
	if from.Equals(to) {
		return types.ErrInvalidInput.Wrap("cannot transfer shares to self")
	}
	if _, err := k.GetPool(ctx, poolID); err != nil {
		return err
	}

	held := k.GetShares(ctx, poolID, from.String())
	if held.LT(shares) {
		return types.ErrInsufficientShares.Wrapf("transferring %s, holding %s", shares, held)
	}

	k.SetShares(ctx, poolID, from.String(), held.Sub(shares))
	k.SetShares(ctx, poolID, to.String(), k.GetShares(ctx, poolID, to.String()).Add(shares))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSharesTransferred,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeySender, from.String()),
		sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))

	if err := k.afterSharesTransferred(ctx, poolID, from.String(), to.String(), shares); err != nil {
		return fmt.Errorf("TransferShares: hooks: %w", err)
	}
	return nil
}
