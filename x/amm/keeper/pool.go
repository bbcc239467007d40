package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)

	var poolID uint64 = 1
	if bz != nil {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(types.PoolCountKey, nextBz)

	return poolID
}

// PeekNextPoolID reads the counter without advancing it.
func (k Keeper) PeekNextPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(types.PoolCountKey, bz)
}

// CreatePool registers an empty pool for the (pair, curve) key. Pools are
// created by the privileged creation authority and receive the default fee
// for their curve type; the first deposit goes through AddLiquidity.
// Exactly one pool exists per unordered pair and curve type.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, denomA, denomB string, decimalsA, decimalsB uint32, stable bool) (*types.Pool, error) {
	if creator.String() != k.authority {
		return nil, types.ErrUnauthorized.Wrapf("pool creation requires authority %s", k.authority)
	}
	if denomA == "" || denomB == "" {
		return nil, types.ErrInvalidPair.Wrap("denoms cannot be empty")
	}
	if denomA == denomB {
		return nil, types.ErrInvalidPair.Wrap("cannot create pool with identical assets")
	}

	if existing, err := k.GetPoolByDenoms(ctx, denomA, denomB, stable); err == nil && existing != nil {
		return nil, types.ErrPoolAlreadyExists.Wrapf("pair %s/%s stable=%t", denomA, denomB, stable)
	}

	params := k.GetParams(ctx)
	feeBps := params.DefaultVolatileFeeBps
	if stable {
		feeBps = params.DefaultStableFeeBps
	}

	poolID := k.GetNextPoolID(ctx)
	pool := types.NewPool(poolID, denomA, denomB, decimalsA, decimalsB, stable, feeBps)

	if err := k.SetPool(ctx, &pool); err != nil {
		return nil, fmt.Errorf("CreatePool: save pool: %w", err)
	}
	k.setPoolByPair(ctx, pool.DenomA, pool.DenomB, pool.Stable, poolID)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyDenomA, pool.DenomA),
			sdk.NewAttribute(types.AttributeKeyDenomB, pool.DenomB),
			sdk.NewAttribute(types.AttributeKeyStable, fmt.Sprintf("%t", stable)),
			sdk.NewAttribute(types.AttributeKeyFeeBps, fmt.Sprintf("%d", feeBps)),
		),
	)

	if err := k.afterPoolCreated(ctx, poolID, pool.DenomA, pool.DenomB, stable); err != nil {
		return nil, fmt.Errorf("CreatePool: hooks: %w", err)
	}

	k.metrics.PoolsCreated.Inc()
	return &pool, nil
}

// GetPool retrieves a pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := k.cdc.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// HasPool reports whether a pool exists.
func (k Keeper) HasPool(ctx context.Context, poolID uint64) bool {
	store := k.getStore(ctx)
	return store.Has(types.PoolKey(poolID))
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(types.PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByDenoms retrieves a pool by its asset pair and curve type.
// Denoms resolve order-independently; (A, B) and (B, A) find the same pool.
func (k Keeper) GetPoolByDenoms(ctx context.Context, denomA, denomB string, stable bool) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolByPairKey(denomA, denomB, stable))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("no pool for pair %s/%s stable=%t", denomA, denomB, stable)
	}
	return k.GetPool(ctx, binary.BigEndian.Uint64(bz))
}

func (k Keeper) setPoolByPair(ctx context.Context, denomA, denomB string, stable bool, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(types.PoolByPairKey(denomA, denomB, stable), bz)
}

// IteratePools iterates over all pools in ID order.
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns every registered pool.
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}
