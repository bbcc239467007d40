package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/arcadia-dex/arcadia/testutil/keeper"
	"github.com/arcadia-dex/arcadia/x/amm/keeper"
	"github.com/arcadia-dex/arcadia/x/amm/types"
)

func testAddr(name string) sdk.AccAddress {
	return sdk.AccAddress([]byte(name + "____________________")[:20])
}

// setupVolatilePool creates a funded uatom/uusdc volatile pool with
// 1,000,000 / 1,000,000 reserves and a 10 bps fee.
func setupVolatilePool(t *testing.T, k *keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context) uint64 {
	pool, err := k.CreatePool(ctx, keepertest.Authority, "uatom", "uusdc", 6, 6, false)
	require.NoError(t, err)

	require.NoError(t, k.SetSwapFee(ctx, keepertest.Authority, pool.Id, 10))

	provider := testAddr("provider")
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
	))
	_, err = k.AddLiquidity(ctx, provider, pool.Id, math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	return pool.Id
}

func TestSwapReferenceVector(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000))))

	out, err := k.Swap(ctx, trader, poolID, "uatom", math.NewInt(1_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, int64(998), out.Int64())

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, int64(1), pool.FeeReserveA.Int64(), "fee = floor(1000 * 10 / 10000)")
	require.Equal(t, int64(1_000_999), pool.ReserveA.Int64(), "reserve grows by input minus fee")
	require.Equal(t, int64(999_002), pool.ReserveB.Int64())
	require.True(t, pool.ReserveA.Mul(pool.ReserveB).GTE(math.NewInt(1_000_000).Mul(math.NewInt(1_000_000))))

	require.Equal(t, int64(998), bank.GetBalance(ctx, trader, "uusdc").Amount.Int64())
	require.Equal(t, int64(0), bank.GetBalance(ctx, trader, "uatom").Amount.Int64())
}

func TestSwapQuoteMatchesExecution(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	quoteOut, quoteFee, err := k.Quote(ctx, poolID, "uatom", math.NewInt(1_000))
	require.NoError(t, err)
	require.Equal(t, int64(998), quoteOut.Int64())
	require.Equal(t, int64(1), quoteFee.Int64())

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000))))
	out, err := k.Swap(ctx, trader, poolID, "uatom", math.NewInt(1_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, quoteOut, out)
}

func TestSwapMinAmountOut(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000))))

	_, err := k.Swap(ctx, trader, poolID, "uatom", math.NewInt(1_000), math.NewInt(999))
	require.ErrorIs(t, err, types.ErrOutputBelowMinimum)

	// state untouched on failure
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, int64(1_000_000), pool.ReserveA.Int64())
	require.Equal(t, int64(1_000), bank.GetBalance(ctx, trader, "uatom").Amount.Int64())
}

func TestSwapWhilePaused(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	require.NoError(t, k.SetPaused(ctx, keepertest.Authority, true))

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000))))
	_, err := k.Swap(ctx, trader, poolID, "uatom", math.NewInt(1_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrPaused)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, int64(1_000_000), pool.ReserveA.Int64(), "reserves unchanged")

	require.NoError(t, k.SetPaused(ctx, keepertest.Authority, false))
	_, err = k.Swap(ctx, trader, poolID, "uatom", math.NewInt(1_000), math.ZeroInt())
	require.NoError(t, err)
}

func TestSwapRejectsWrongAsset(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	trader := testAddr("trader")
	_, err := k.Swap(ctx, trader, poolID, "uosmo", math.NewInt(1_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrAssetNotInPool)
}

func TestSwapRejectsZeroAmount(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	trader := testAddr("trader")
	_, err := k.Swap(ctx, trader, poolID, "uatom", math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestSwapRejectsFeeOnTransferAsset(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1_000))))

	bank.Tax = math.OneInt()
	_, err := k.Swap(ctx, trader, poolID, "uatom", math.NewInt(1_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrCustodyMismatch)
}

func TestSwapAgainstUnknownPool(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	trader := testAddr("trader")
	_, err := k.Swap(ctx, trader, 42, "uatom", math.NewInt(1_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestSwapStablePoolRoundTripLoses(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)

	pool, err := k.CreatePool(ctx, keepertest.Authority, "uusdc", "uusdt", 6, 6, true)
	require.NoError(t, err)

	provider := testAddr("provider")
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(100_000_000)),
		sdk.NewCoin("uusdt", math.NewInt(100_000_000)),
	))
	_, err = k.AddLiquidity(ctx, provider, pool.Id, math.NewInt(100_000_000), math.NewInt(100_000_000))
	require.NoError(t, err)

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(1_000_000))))

	out1, err := k.Swap(ctx, trader, pool.Id, "uusdc", math.NewInt(1_000_000), math.ZeroInt())
	require.NoError(t, err)
	out2, err := k.Swap(ctx, trader, pool.Id, "uusdt", out1, math.ZeroInt())
	require.NoError(t, err)
	require.True(t, out2.LT(math.NewInt(1_000_000)), "round trip cannot profit: got back %s", out2)
}

func TestSpotPrice(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	price, err := k.SpotPrice(ctx, poolID, "uatom")
	require.NoError(t, err)
	require.True(t, price.Equal(math.LegacyOneDec()))
}

func TestSwapEighteenDecimalAmounts(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)

	pool, err := k.CreatePool(ctx, keepertest.Authority, "aeth", "adai", 18, 18, false)
	require.NoError(t, err)

	reserve := math.NewIntWithDecimal(1, 24)
	provider := testAddr("whale")
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("aeth", reserve),
		sdk.NewCoin("adai", reserve),
	))
	_, err = k.AddLiquidity(ctx, provider, pool.Id, reserve, reserve)
	require.NoError(t, err)

	amountIn := math.NewIntWithDecimal(1, 20)
	require.False(t, amountIn.IsInt64(), "amount must exceed int64 range")

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("aeth", amountIn)))

	var out math.Int
	require.NotPanics(t, func() {
		out, err = k.Swap(ctx, trader, pool.Id, "aeth", amountIn, math.ZeroInt())
	})
	require.NoError(t, err)
	require.True(t, out.IsPositive())
	require.Equal(t, out, bank.GetBalance(ctx, trader, "adai").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "aeth").Amount.IsZero())
}

func TestQuoteWhilePaused(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	poolID := setupVolatilePool(t, k, bank, ctx)

	require.NoError(t, k.SetPaused(ctx, keepertest.Authority, true))
	_, _, err := k.Quote(ctx, poolID, "uatom", math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrPaused)

	require.NoError(t, k.SetPaused(ctx, keepertest.Authority, false))
	_, _, err = k.Quote(ctx, poolID, "uatom", math.NewInt(1_000))
	require.NoError(t, err)
}
