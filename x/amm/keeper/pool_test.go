package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/arcadia-dex/arcadia/testutil/keeper"
	"github.com/arcadia-dex/arcadia/x/amm/types"
)

func TestCreatePoolSortsDenoms(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	// pass the pair in reverse order; the stored pool is canonical
	pool, err := k.CreatePool(ctx, keepertest.Authority, "uusdc", "uatom", 6, 6, false)
	require.NoError(t, err)
	require.Equal(t, "uatom", pool.DenomA)
	require.Equal(t, "uusdc", pool.DenomB)
	require.Equal(t, uint64(1), pool.Id)
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.TotalShares.IsZero())
}

func TestPoolLookupIsOrderIndependent(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	created, err := k.CreatePool(ctx, keepertest.Authority, "uatom", "uusdc", 6, 6, false)
	require.NoError(t, err)

	byAB, err := k.GetPoolByDenoms(ctx, "uatom", "uusdc", false)
	require.NoError(t, err)
	byBA, err := k.GetPoolByDenoms(ctx, "uusdc", "uatom", false)
	require.NoError(t, err)
	require.Equal(t, created.Id, byAB.Id)
	require.Equal(t, created.Id, byBA.Id)
}

func TestSamePairBothCurves(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	volatile, err := k.CreatePool(ctx, keepertest.Authority, "uusdc", "uusdt", 6, 6, false)
	require.NoError(t, err)
	stable, err := k.CreatePool(ctx, keepertest.Authority, "uusdc", "uusdt", 6, 6, true)
	require.NoError(t, err)
	require.NotEqual(t, volatile.Id, stable.Id)

	// default fees differ by curve
	require.Equal(t, uint64(30), volatile.SwapFeeBps)
	require.Equal(t, uint64(5), stable.SwapFeeBps)
}

func TestDuplicatePoolRejected(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, err := k.CreatePool(ctx, keepertest.Authority, "uatom", "uusdc", 6, 6, false)
	require.NoError(t, err)
	_, err = k.CreatePool(ctx, keepertest.Authority, "uusdc", "uatom", 6, 6, false)
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)
}

func TestCreatePoolRequiresAuthority(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	stranger := testAddr("stranger")
	_, err := k.CreatePool(ctx, stranger, "uatom", "uusdc", 6, 6, false)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestCreatePoolRejectsIdenticalPair(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, err := k.CreatePool(ctx, keepertest.Authority, "uatom", "uatom", 6, 6, false)
	require.ErrorIs(t, err, types.ErrInvalidPair)
}

func TestPoolIDsAreSequential(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	first, err := k.CreatePool(ctx, keepertest.Authority, "uatom", "uusdc", 6, 6, false)
	require.NoError(t, err)
	second, err := k.CreatePool(ctx, keepertest.Authority, "uatom", "uosmo", 6, 6, false)
	require.NoError(t, err)
	require.Equal(t, uint64(1), first.Id)
	require.Equal(t, uint64(2), second.Id)

	pools, err := k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
}

func TestHasPool(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	require.False(t, k.HasPool(ctx, 1))
	_, err := k.CreatePool(ctx, keepertest.Authority, "uatom", "uusdc", 6, 6, false)
	require.NoError(t, err)
	require.True(t, k.HasPool(ctx, 1))
}
