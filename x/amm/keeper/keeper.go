package keeper

import (
	"context"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// Keeper of the amm store. All pool mutation goes through this type; the
// share ledger and fee reserves have no other write path.
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper

	// authority is the privileged pool-creation account (and the fallback
	// role holder when genesis carries no roles).
	authority string

	// feeClaimer is the staking-layer account allowed to claim pool fees.
	feeClaimer string

	hooks   types.AmmHooks
	metrics *AMMMetrics

	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
	feeClaimer string,
) *Keeper {
	return &Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		authority:          authority,
		feeClaimer:         feeClaimer,
		metrics:            GetAMMMetrics(),
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// SetHooks sets the module hooks. Panics if called twice.
func (k *Keeper) SetHooks(hooks types.AmmHooks) {
	if k.hooks != nil {
		panic("amm hooks already set")
	}
	k.hooks = hooks
}

// GetAuthority returns the privileged pool-creation account.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the cached module account address holding pool
// custody.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// Logger returns a module-scoped logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// sendExact moves amount of denom and verifies the recipient balance grew by
// exactly that amount. A shortfall means the asset taxes transfers, which the
// pool does not support.
func (k Keeper) sendExact(ctx context.Context, from, to sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	before := k.bankKeeper.GetBalance(ctx, to, denom).Amount
	coin := sdk.NewCoin(denom, amount)
	if err := k.bankKeeper.SendCoins(ctx, from, to, sdk.NewCoins(coin)); err != nil {
		return types.ErrInsufficientReserves.Wrapf("transfer %s: %v", coin, err)
	}
	after := k.bankKeeper.GetBalance(ctx, to, denom).Amount
	if moved := after.Sub(before); !moved.Equal(amount) {
		return types.ErrCustodyMismatch.Wrapf(
			"requested %s %s, moved %s (fee-on-transfer assets are unsupported)",
			amount, denom, moved,
		)
	}
	return nil
}

// callHooks wrappers keep call sites terse.

func (k Keeper) afterSwap(ctx context.Context, poolID uint64, trader string, denomIn, denomOut string, amountIn, amountOut math.Int) error {
	if k.hooks == nil {
		return nil
	}
	return k.hooks.AfterSwap(ctx, poolID, trader, denomIn, denomOut, amountIn, amountOut)
}

func (k Keeper) afterPoolCreated(ctx context.Context, poolID uint64, denomA, denomB string, stable bool) error {
	if k.hooks == nil {
		return nil
	}
	return k.hooks.AfterPoolCreated(ctx, poolID, denomA, denomB, stable)
}

func (k Keeper) afterLiquidityChanged(ctx context.Context, poolID uint64, provider string, deltaA, deltaB math.Int, isAdd bool) error {
	if k.hooks == nil {
		return nil
	}
	return k.hooks.AfterLiquidityChanged(ctx, poolID, provider, deltaA, deltaB, isAdd)
}

func (k Keeper) afterSharesTransferred(ctx context.Context, poolID uint64, sender, recipient string, shares math.Int) error {
	if k.hooks == nil {
		return nil
	}
	return k.hooks.AfterSharesTransferred(ctx, poolID, sender, recipient, shares)
}
