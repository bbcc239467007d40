package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AmmKeeper is the narrow surface the gauge module needs from the AMM.
// LP shares are an opaque staked asset here: the gauge never reads reserves
// or prices, it only moves share ownership and routes fee claims.
type AmmKeeper interface {
	// GetShares returns an owner's LP share balance in a pool.
	GetShares(ctx context.Context, poolID uint64, owner string) math.Int

	// TransferShares moves shares through the AMM's own ledger.
	TransferShares(ctx context.Context, from, to sdk.AccAddress, poolID uint64, shares math.Int) error

	// HasPool reports whether the pool exists.
	HasPool(ctx context.Context, poolID uint64) bool

	// ClaimFees pulls a pool's accrued swap fees to the recipient. The caller
	// must be the AMM's configured fee claimer.
	ClaimFees(ctx context.Context, claimer sdk.AccAddress, poolID uint64, recipient sdk.AccAddress) (feeA, feeB math.Int, err error)
}

// BankKeeper is the custody surface used for reward payouts.
type BankKeeper interface {
	SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}
