package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

func TestNewPoolSortsDenoms(t *testing.T) {
	pool := types.NewPool(1, "uusdc", "uatom", 18, 6, false, 30)
	require.Equal(t, "uatom", pool.DenomA)
	require.Equal(t, "uusdc", pool.DenomB)
	// decimals follow their denom through the swap
	require.Equal(t, uint32(6), pool.DecimalsA)
	require.Equal(t, uint32(18), pool.DecimalsB)
	require.Equal(t, uint64(30), pool.SwapFeeBps)
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.TotalShares.IsZero())
}

func TestPoolReserveOrientation(t *testing.T) {
	pool := types.NewPool(1, "uatom", "uusdc", 6, 6, false, 30)
	pool.ReserveA = math.NewInt(10)
	pool.ReserveB = math.NewInt(20)
	pool.TotalShares = math.NewInt(1)

	in, out := pool.Reserves("uatom")
	require.Equal(t, math.NewInt(10), in)
	require.Equal(t, math.NewInt(20), out)

	in, out = pool.Reserves("uusdc")
	require.Equal(t, math.NewInt(20), in)
	require.Equal(t, math.NewInt(10), out)

	require.True(t, pool.HasDenom("uatom"))
	require.False(t, pool.HasDenom("uosmo"))
	require.Equal(t, "uusdc", pool.OtherDenom("uatom"))
	require.Equal(t, "uatom", pool.OtherDenom("uusdc"))
}

func TestPoolValidate(t *testing.T) {
	valid := func() types.Pool {
		pool := types.NewPool(1, "uatom", "uusdc", 6, 6, false, 30)
		pool.ReserveA = math.NewInt(1000)
		pool.ReserveB = math.NewInt(1000)
		pool.TotalShares = math.NewInt(1000)
		return pool
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*types.Pool)
	}{
		{"identical denoms", func(p *types.Pool) { p.DenomB = p.DenomA }},
		{"unsorted denoms", func(p *types.Pool) { p.DenomA, p.DenomB = p.DenomB, p.DenomA }},
		{"empty denom", func(p *types.Pool) { p.DenomA = "" }},
		{"negative reserve", func(p *types.Pool) { p.ReserveA = math.NewInt(-1) }},
		{"nil fee reserve", func(p *types.Pool) { p.FeeReserveB = math.Int{} }},
		{"shares without reserves", func(p *types.Pool) { p.ReserveA = math.ZeroInt() }},
		{"reserves without shares", func(p *types.Pool) { p.TotalShares = math.ZeroInt() }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := valid()
			tc.mutate(&pool)
			require.Error(t, pool.Validate())
		})
	}
}

func TestPoolByPairKeySymmetry(t *testing.T) {
	require.Equal(t,
		types.PoolByPairKey("uatom", "uusdc", false),
		types.PoolByPairKey("uusdc", "uatom", false),
	)
	require.NotEqual(t,
		types.PoolByPairKey("uatom", "uusdc", false),
		types.PoolByPairKey("uatom", "uusdc", true),
	)
	require.NotEqual(t,
		types.PoolByPairKey("uatom", "uusdc", false),
		types.PoolByPairKey("uatom", "uosmo", false),
	)
}

func TestSharesKeyLayout(t *testing.T) {
	owner := sdk.AccAddress([]byte("owner_______________")).String()
	key := types.SharesKey(7, owner)
	prefix := types.SharesByPoolPrefix(7)
	require.Equal(t, prefix, key[:len(prefix)])
	require.Equal(t, owner, string(key[len(prefix):]))
}

func TestPoolByPairKeySlashedDenoms(t *testing.T) {
	// without a length prefix these two pairs flatten to the same bytes
	require.NotEqual(t,
		types.PoolByPairKey("ibc", "uatom/uosmo", false),
		types.PoolByPairKey("ibc/uatom", "uosmo", false),
	)
	require.Equal(t,
		types.PoolByPairKey("ibc/uatom", "uosmo", false),
		types.PoolByPairKey("uosmo", "ibc/uatom", false),
	)
}
