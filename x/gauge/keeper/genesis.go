package keeper

import (
	"context"
	"fmt"

	"github.com/arcadia-dex/arcadia/x/gauge/types"
)

// InitGenesis restores module state from a genesis snapshot.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid gauge genesis state: %w", err))
	}

	for i := range genState.Gauges {
		gauge := genState.Gauges[i]
		if err := k.SetGauge(ctx, &gauge); err != nil {
			panic(fmt.Errorf("restore gauge for pool %d: %w", gauge.PoolId, err))
		}
	}
	for _, pos := range genState.Positions {
		k.SetUserStake(ctx, pos.PoolId, pos.Owner, pos.Stake)
	}
}

// ExportGenesis captures the full module state for a genesis snapshot.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genState := &types.GenesisState{}

	err := k.IterateGauges(ctx, func(gauge types.Gauge) bool {
		genState.Gauges = append(genState.Gauges, gauge)
		k.IterateUserStakes(ctx, gauge.PoolId, func(owner string, stake types.UserStake) bool {
			genState.Positions = append(genState.Positions, types.StakePosition{
				PoolId: gauge.PoolId,
				Owner:  owner,
				Stake:  stake,
			})
			return false
		})
		return false
	})
	if err != nil {
		panic(fmt.Errorf("export gauges: %w", err))
	}

	return genState
}
