package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// InitGenesis restores module state from a genesis snapshot.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid amm genesis state: %w", err))
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Errorf("set amm params: %w", err))
	}
	roles := genState.Roles
	if roles.Pauser == "" && roles.FeeManager == "" {
		roles = types.NewRoles(k.GetAuthority())
	}
	k.SetRoles(ctx, roles)

	store := k.getStore(ctx)
	if genState.Paused {
		store.Set(types.PausedKey, []byte{1})
	} else {
		store.Set(types.PausedKey, []byte{0})
	}

	k.SetNextPoolID(ctx, genState.NextPoolId)
	for i := range genState.Pools {
		pool := genState.Pools[i]
		if err := k.SetPool(ctx, &pool); err != nil {
			panic(fmt.Errorf("restore pool %d: %w", pool.Id, err))
		}
		k.setPoolByPair(ctx, pool.DenomA, pool.DenomB, pool.Stable, pool.Id)
	}
	for _, pos := range genState.Positions {
		k.SetShares(ctx, pos.PoolId, pos.Owner, pos.Shares)
	}
}

// ExportGenesis captures the full module state for a genesis snapshot.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genState := &types.GenesisState{
		Params:     k.GetParams(ctx),
		Roles:      k.GetRoles(ctx),
		Paused:     k.IsPaused(ctx),
		NextPoolId: k.PeekNextPoolID(ctx),
	}

	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		genState.Pools = append(genState.Pools, pool)
		k.IterateShares(ctx, pool.Id, func(owner string, shares math.Int) bool {
			genState.Positions = append(genState.Positions, types.SharePosition{
				PoolId: pool.Id,
				Owner:  owner,
				Shares: shares,
			})
			return false
		})
		return false
	})
	if err != nil {
		panic(fmt.Errorf("export amm pools: %w", err))
	}

	return genState
}
