package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SharePosition records one owner's LP shares in one pool.
type SharePosition struct {
	PoolId uint64   `json:"pool_id"`
	Owner  string   `json:"owner"`
	Shares math.Int `json:"shares"`
}

// GenesisState defines the amm module's genesis state.
type GenesisState struct {
	Params     Params          `json:"params"`
	Roles      Roles           `json:"roles"`
	Paused     bool            `json:"paused"`
	NextPoolId uint64          `json:"next_pool_id"`
	Pools      []Pool          `json:"pools"`
	Positions  []SharePosition `json:"positions"`
}

// DefaultGenesis returns the default genesis state. Roles are left empty and
// must be seeded by the host application before role-gated operations.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		NextPoolId: 1,
		Pools:      []Pool{},
		Positions:  []SharePosition{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("params: %w", err)
	}
	if gs.Roles.Pauser != "" || gs.Roles.FeeManager != "" {
		if err := gs.Roles.Validate(); err != nil {
			return fmt.Errorf("roles: %w", err)
		}
	}
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	seenPair := make(map[string]struct{}, len(gs.Pools))
	poolIDs := make(map[uint64]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool %d: id not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if pool.SwapFeeBps > gs.Params.MaxSwapFeeBps {
			return fmt.Errorf("pool %d: fee %d bps above maximum %d", pool.Id, pool.SwapFeeBps, gs.Params.MaxSwapFeeBps)
		}
		pairKey := string(PoolByPairKey(pool.DenomA, pool.DenomB, pool.Stable))
		if _, ok := seenPair[pairKey]; ok {
			return fmt.Errorf("duplicate pool for pair %s/%s stable=%t", pool.DenomA, pool.DenomB, pool.Stable)
		}
		seenPair[pairKey] = struct{}{}
		poolIDs[pool.Id] = struct{}{}
	}

	shareTotals := make(map[uint64]math.Int, len(gs.Pools))
	for _, pos := range gs.Positions {
		if _, ok := poolIDs[pos.PoolId]; !ok {
			return fmt.Errorf("position references unknown pool %d", pos.PoolId)
		}
		if _, err := sdk.AccAddressFromBech32(pos.Owner); err != nil {
			return fmt.Errorf("position owner %q: %w", pos.Owner, err)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return fmt.Errorf("position for pool %d must hold positive shares", pos.PoolId)
		}
		total, ok := shareTotals[pos.PoolId]
		if !ok {
			total = math.ZeroInt()
		}
		shareTotals[pos.PoolId] = total.Add(pos.Shares)
	}
	for _, pool := range gs.Pools {
		total, ok := shareTotals[pool.Id]
		if !ok {
			total = math.ZeroInt()
		}
		if !total.Equal(pool.TotalShares) {
			return fmt.Errorf("pool %d: positions sum %s does not match total shares %s", pool.Id, total, pool.TotalShares)
		}
	}
	return nil
}
