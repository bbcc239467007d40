package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/arcadia-dex/arcadia/testutil/keeper"
)

func TestGenesisRoundTrip(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, provider := setupStakedPool(t, gk, ak, bank, ctx)

	require.NoError(t, gk.Stake(ctx, provider, poolID, math.NewInt(100_000)))
	ctx = advance(ctx, 100)
	_, err := gk.ClaimReward(ctx, provider, poolID)
	require.NoError(t, err)

	exported := gk.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Gauges, 1)
	require.Len(t, exported.Positions, 1)

	gk2, _, _, ctx2 := keepertest.GaugeKeepers(t)
	gk2.InitGenesis(ctx2, *exported)

	gauge, err := gk.GetGauge(ctx, poolID)
	require.NoError(t, err)
	restored, err := gk2.GetGauge(ctx2, poolID)
	require.NoError(t, err)
	require.Equal(t, gauge, restored)

	require.Equal(t,
		gk.GetUserStake(ctx, poolID, provider.String()),
		gk2.GetUserStake(ctx2, poolID, provider.String()),
	)

	require.Equal(t, exported, gk2.ExportGenesis(ctx2))
}
