package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/arcadia-dex/arcadia/testutil/keeper"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
	_, err := k.Swap(ctx, trader, poolID, "uatom", math.NewInt(10_000), math.ZeroInt())
	require.NoError(t, err)
	require.NoError(t, k.SetPaused(ctx, keepertest.Authority, true))

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pools, 1)
	require.Len(t, exported.Positions, 2, "provider plus locked sink")
	require.True(t, exported.Paused)
	require.Equal(t, uint64(2), exported.NextPoolId)

	// restore into a fresh keeper and compare state
	k2, _, ctx2 := keepertest.AmmKeeper(t)
	k2.InitGenesis(ctx2, *exported)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	restored, err := k2.GetPool(ctx2, poolID)
	require.NoError(t, err)
	require.Equal(t, pool, restored)

	byPair, err := k2.GetPoolByDenoms(ctx2, "uusdc", "uatom", false)
	require.NoError(t, err)
	require.Equal(t, pool.Id, byPair.Id)

	require.True(t, k2.IsPaused(ctx2))
	require.Equal(t,
		k.GetShares(ctx, poolID, testAddr("provider").String()),
		k2.GetShares(ctx2, poolID, testAddr("provider").String()),
	)

	reexported := k2.ExportGenesis(ctx2)
	require.Equal(t, exported, reexported)
}

func TestExportGenesisLeavesStateUntouched(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	setupVolatilePool(t, k, bank, ctx)

	first := k.ExportGenesis(ctx)
	second := k.ExportGenesis(ctx)
	require.Equal(t, first.NextPoolId, second.NextPoolId, "second export should see the same counter")
	require.Equal(t, first, second)

	pool, err := k.CreatePool(ctx, keepertest.Authority, "uatom", "uosmo", 6, 6, false)
	require.NoError(t, err)
	require.Equal(t, first.NextPoolId, pool.Id, "exporting must not consume pool ids")
}
