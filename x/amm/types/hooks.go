package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// AmmHooks defines callbacks other modules can register for AMM events.
type AmmHooks interface {
	// AfterSwap is called after a successful swap settles.
	AfterSwap(ctx context.Context, poolID uint64, trader string, denomIn, denomOut string, amountIn, amountOut sdkmath.Int) error

	// AfterPoolCreated is called after a new pool is registered.
	AfterPoolCreated(ctx context.Context, poolID uint64, denomA, denomB string, stable bool) error

	// AfterLiquidityChanged is called when shares are minted or burned.
	AfterLiquidityChanged(ctx context.Context, poolID uint64, provider string, deltaA, deltaB sdkmath.Int, isAdd bool) error

	// AfterSharesTransferred is called after a pool-mediated share transfer.
	AfterSharesTransferred(ctx context.Context, poolID uint64, sender, recipient string, shares sdkmath.Int) error
}

// MultiAmmHooks combines multiple hooks into one that calls all of them.
type MultiAmmHooks []AmmHooks

func NewMultiAmmHooks(hooks ...AmmHooks) MultiAmmHooks {
	return hooks
}

func (h MultiAmmHooks) AfterSwap(ctx context.Context, poolID uint64, trader string, denomIn, denomOut string, amountIn, amountOut sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterSwap(ctx, poolID, trader, denomIn, denomOut, amountIn, amountOut); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiAmmHooks) AfterPoolCreated(ctx context.Context, poolID uint64, denomA, denomB string, stable bool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPoolCreated(ctx, poolID, denomA, denomB, stable); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiAmmHooks) AfterLiquidityChanged(ctx context.Context, poolID uint64, provider string, deltaA, deltaB sdkmath.Int, isAdd bool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterLiquidityChanged(ctx, poolID, provider, deltaA, deltaB, isAdd); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiAmmHooks) AfterSharesTransferred(ctx context.Context, poolID uint64, sender, recipient string, shares sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterSharesTransferred(ctx, poolID, sender, recipient, shares); err != nil {
			return err
		}
	}
	return nil
}
