package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

func validGenesis() types.GenesisState {
	pool := types.NewPool(1, "uatom", "uusdc", 6, 6, false, 30)
	pool.ReserveA = math.NewInt(1_000_000)
	pool.ReserveB = math.NewInt(1_000_000)
	pool.TotalShares = math.NewInt(1_000_000)
	return types.GenesisState{
		Params:     types.DefaultParams(),
		Roles:      types.NewRoles(addr1),
		NextPoolId: 2,
		Pools:      []types.Pool{pool},
		Positions: []types.SharePosition{
			{PoolId: 1, Owner: addr1, Shares: math.NewInt(999_000)},
			{PoolId: 1, Owner: addr2, Shares: math.NewInt(1_000)},
		},
	}
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, validGenesis().Validate())
	require.NoError(t, types.DefaultGenesis().Validate())

	tests := []struct {
		name   string
		mutate func(*types.GenesisState)
	}{
		{"zero next pool id", func(gs *types.GenesisState) { gs.NextPoolId = 0 }},
		{"pool id not below counter", func(gs *types.GenesisState) { gs.NextPoolId = 1 }},
		{"pool fee above maximum", func(gs *types.GenesisState) { gs.Pools[0].SwapFeeBps = gs.Params.MaxSwapFeeBps + 1 }},
		{"duplicate pair", func(gs *types.GenesisState) {
			dup := gs.Pools[0]
			dup.Id = 2
			gs.Pools = append(gs.Pools, dup)
			gs.NextPoolId = 3
		}},
		{"position for unknown pool", func(gs *types.GenesisState) { gs.Positions[0].PoolId = 9 }},
		{"position with bad owner", func(gs *types.GenesisState) { gs.Positions[0].Owner = "nope" }},
		{"position without shares", func(gs *types.GenesisState) { gs.Positions[0].Shares = math.ZeroInt() }},
		{"share sum mismatch", func(gs *types.GenesisState) { gs.Positions[1].Shares = math.NewInt(2_000) }},
		{"bad roles", func(gs *types.GenesisState) { gs.Roles.Pauser = "nope" }},
		{"bad params", func(gs *types.GenesisState) { gs.Params.MaxSwapFeeBps = types.BpsDenominator }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(&gs)
			require.Error(t, gs.Validate())
		})
	}
}

func TestGenesisRolesOptional(t *testing.T) {
	gs := validGenesis()
	gs.Roles = types.Roles{}
	require.NoError(t, gs.Validate(), "empty roles defer to the module authority")
}
