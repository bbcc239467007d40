package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/arcadia-dex/arcadia/testutil/keeper"
	"github.com/arcadia-dex/arcadia/x/amm/types"
	gaugetypes "github.com/arcadia-dex/arcadia/x/gauge/types"
)

func TestFeesStaySeparateFromReserves(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(300_000))))

	for i := 0; i < 3; i++ {
		_, err := k.Swap(ctx, trader, poolID, "uatom", math.NewInt(100_000), math.ZeroInt())
		require.NoError(t, err)
	}

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	// 10 bps of 100,000 = 100, three times over
	require.Equal(t, int64(300), pool.FeeReserveA.Int64())
	require.True(t, pool.FeeReserveB.IsZero())

	// pricing reserves account only for input minus fee
	require.Equal(t, int64(1_000_000+3*99_900), pool.ReserveA.Int64())
}

func TestClaimFeesZeroesLedger(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))
	_, err := k.Swap(ctx, trader, poolID, "uatom", math.NewInt(100_000), math.ZeroInt())
	require.NoError(t, err)

	claimer := authtypes.NewModuleAddress(gaugetypes.ModuleName)
	recipient := testAddr("recipient")

	feeA, feeB, err := k.ClaimFees(ctx, claimer, poolID, recipient)
	require.NoError(t, err)
	require.Equal(t, int64(100), feeA.Int64())
	require.True(t, feeB.IsZero())
	require.Equal(t, int64(100), bank.GetBalance(ctx, recipient, "uatom").Amount.Int64())

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.True(t, pool.FeeReserveA.IsZero())
	require.True(t, pool.FeeReserveB.IsZero())

	// second claim is a no-op
	feeA, feeB, err = k.ClaimFees(ctx, claimer, poolID, recipient)
	require.NoError(t, err)
	require.True(t, feeA.IsZero())
	require.True(t, feeB.IsZero())
}

func TestClaimFeesUnauthorized(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	stranger := testAddr("stranger")
	_, _, err := k.ClaimFees(ctx, stranger, poolID, stranger)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestAccruedFees(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	feeA, feeB, err := k.AccruedFees(ctx, poolID)
	require.NoError(t, err)
	require.True(t, feeA.IsZero())
	require.True(t, feeB.IsZero())

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(50_000))))
	_, err = k.Swap(ctx, trader, poolID, "uusdc", math.NewInt(50_000), math.ZeroInt())
	require.NoError(t, err)

	feeA, feeB, err = k.AccruedFees(ctx, poolID)
	require.NoError(t, err)
	require.True(t, feeA.IsZero())
	require.Equal(t, int64(50), feeB.Int64())
}
