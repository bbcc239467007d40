package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/arcadia-dex/arcadia/x/gauge/types"
)

// Keeper of the gauge store. Staked LP shares are held by the gauge module
// account through the AMM's own share ledger; reward payouts draw from the
// same account's bank balance in the reward denom.
type Keeper struct {
	storeKey     storetypes.StoreKey
	cdc          *codec.LegacyAmino
	ammKeeper    types.AmmKeeper
	bankKeeper   types.BankKeeper
	rewardSource types.RewardSource
	authority    string
	rewardDenom  string

	metrics *GaugeMetrics

	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new gauge Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	storeKey storetypes.StoreKey,
	ammKeeper types.AmmKeeper,
	bankKeeper types.BankKeeper,
	rewardSource types.RewardSource,
	authority string,
	rewardDenom string,
) Keeper {
	return Keeper{
		storeKey:           storeKey,
		cdc:                cdc,
		ammKeeper:          ammKeeper,
		bankKeeper:         bankKeeper,
		rewardSource:       rewardSource,
		authority:          authority,
		rewardDenom:        rewardDenom,
		metrics:            GetGaugeMetrics(),
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the gauge module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetGauge returns a pool's gauge.
func (k Keeper) GetGauge(ctx context.Context, poolID uint64) (*types.Gauge, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GaugeKey(poolID))
	if bz == nil {
		return nil, types.ErrGaugeNotFound.Wrapf("no gauge for pool %d", poolID)
	}
	var gauge types.Gauge
	if err := k.cdc.Unmarshal(bz, &gauge); err != nil {
		return nil, fmt.Errorf("GetGauge: unmarshal gauge for pool %d: %w", poolID, err)
	}
	return &gauge, nil
}

// SetGauge saves a gauge to the store.
func (k Keeper) SetGauge(ctx context.Context, gauge *types.Gauge) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(gauge)
	if err != nil {
		return fmt.Errorf("SetGauge: marshal gauge for pool %d: %w", gauge.PoolId, err)
	}
	store.Set(types.GaugeKey(gauge.PoolId), bz)
	return nil
}

// HasGauge reports whether a gauge exists for the pool.
func (k Keeper) HasGauge(ctx context.Context, poolID uint64) bool {
	store := k.getStore(ctx)
	return store.Has(types.GaugeKey(poolID))
}

// IterateGauges walks every gauge. The callback returns true to stop early.
func (k Keeper) IterateGauges(ctx context.Context, cb func(gauge types.Gauge) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.GaugeKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var gauge types.Gauge
		if err := k.cdc.Unmarshal(iterator.Value(), &gauge); err != nil {
			return fmt.Errorf("IterateGauges: unmarshal gauge: %w", err)
		}
		if cb(gauge) {
			break
		}
	}
	return nil
}

// GetUserStake returns a staker's position in a gauge, an empty position if
// none exists yet.
func (k Keeper) GetUserStake(ctx context.Context, poolID uint64, owner string) types.UserStake {
	store := k.getStore(ctx)
	bz := store.Get(types.UserStakeKey(poolID, owner))
	if bz == nil {
		return types.NewUserStake()
	}
	var stake types.UserStake
	if err := k.cdc.Unmarshal(bz, &stake); err != nil {
		panic(fmt.Errorf("unmarshal stake for pool %d owner %s: %w", poolID, owner, err))
	}
	return stake
}

// SetUserStake saves a staker's position.
func (k Keeper) SetUserStake(ctx context.Context, poolID uint64, owner string, stake types.UserStake) {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&stake)
	if err != nil {
		panic(fmt.Errorf("marshal stake for pool %d owner %s: %w", poolID, owner, err))
	}
	store.Set(types.UserStakeKey(poolID, owner), bz)
}

// IterateUserStakes walks every position of a gauge. The callback returns
// true to stop early.
func (k Keeper) IterateUserStakes(ctx context.Context, poolID uint64, fn func(owner string, stake types.UserStake) bool) {
	store := k.getStore(ctx)
	prefix := types.UserStakesByGaugePrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		owner := string(iterator.Key()[len(prefix):])
		var stake types.UserStake
		if err := k.cdc.Unmarshal(iterator.Value(), &stake); err != nil {
			panic(fmt.Errorf("unmarshal stake for pool %d owner %s: %w", poolID, owner, err))
		}
		if fn(owner, stake) {
			break
		}
	}
}

// CreateGauge registers a staking gauge for an existing pool. Only the module
// authority may call it; one gauge per pool.
func (k Keeper) CreateGauge(ctx context.Context, creator sdk.AccAddress, poolID uint64, allocPoints uint64) (*types.Gauge, error) {
	if creator.String() != k.authority {
		return nil, types.ErrUnauthorized.Wrapf("gauge creation is restricted to the module authority, got %s", creator)
	}
	if !k.ammKeeper.HasPool(ctx, poolID) {
		return nil, types.ErrInvalidInput.Wrapf("pool %d does not exist", poolID)
	}
	if k.HasGauge(ctx, poolID) {
		return nil, types.ErrGaugeAlreadyExists.Wrapf("pool %d", poolID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	gauge := types.NewGauge(poolID, allocPoints, sdkCtx.BlockTime().Unix())
	if err := k.SetGauge(ctx, &gauge); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeGaugeCreated,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyAllocPoints, fmt.Sprintf("%d", allocPoints)),
	))
	k.metrics.GaugesCreated.Inc()
	k.Logger(ctx).Info("gauge created", "pool_id", poolID, "alloc_points", allocPoints)

	return &gauge, nil
}

// ClaimPoolFees routes a pool's accrued swap fees to the gauge module
// account for distribution. The gauge module must be configured as the AMM's
// fee claimer.
func (k Keeper) ClaimPoolFees(ctx context.Context, poolID uint64) error {
	if _, err := k.GetGauge(ctx, poolID); err != nil {
		return err
	}

	moduleAddr := k.GetModuleAddress()
	feeA, feeB, err := k.ammKeeper.ClaimFees(ctx, moduleAddr, poolID, moduleAddr)
	if err != nil {
		return fmt.Errorf("ClaimPoolFees: pool %d: %w", poolID, err)
	}
	if feeA.IsZero() && feeB.IsZero() {
		return nil
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFeesRouted,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyFeeA, feeA.String()),
		sdk.NewAttribute(types.AttributeKeyFeeB, feeB.String()),
	))
	return nil
}
