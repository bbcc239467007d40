package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/arcadia-dex/arcadia/testutil/keeper"
	ammkeeper "github.com/arcadia-dex/arcadia/x/amm/keeper"
	gaugekeeper "github.com/arcadia-dex/arcadia/x/gauge/keeper"
	"github.com/arcadia-dex/arcadia/x/gauge/types"
)

func testAddr(name string) sdk.AccAddress {
	return sdk.AccAddress([]byte(name + "____________________")[:20])
}

func advance(ctx sdk.Context, seconds int64) sdk.Context {
	return ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(seconds) * time.Second))
}

// setupStakedPool creates a funded uatom/uusdc pool whose provider holds
// 999000 LP shares, registers a gauge with one allocation point, and stocks
// the gauge module account with reward funds.
func setupStakedPool(t *testing.T, gk gaugekeeper.Keeper, ak *ammkeeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context) (uint64, sdk.AccAddress) {
	t.Helper()

	pool, err := ak.CreatePool(ctx, keepertest.Authority, "uatom", "uusdc", 6, 6, false)
	require.NoError(t, err)

	provider := testAddr("provider")
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
	))
	shares, err := ak.AddLiquidity(ctx, provider, pool.Id, math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(999_000), shares)

	_, err = gk.CreateGauge(ctx, keepertest.Authority, pool.Id, 1)
	require.NoError(t, err)
	bank.FundAccount(gk.GetModuleAddress(), sdk.NewCoins(sdk.NewCoin(keepertest.RewardDenom, math.NewInt(1_000_000_000))))

	return pool.Id, provider
}

func TestCreateGauge(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, _ := setupStakedPool(t, gk, ak, bank, ctx)

	gauge, err := gk.GetGauge(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, poolID, gauge.PoolId)
	require.Equal(t, uint64(1), gauge.AllocPoints)
	require.True(t, gauge.TotalStaked.IsZero())
	require.True(t, gauge.AccRewardPerShare.IsZero())
	require.Equal(t, ctx.BlockTime().Unix(), gauge.LastUpdateUnix)

	_, err = gk.CreateGauge(ctx, testAddr("rando"), poolID, 1)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = gk.CreateGauge(ctx, keepertest.Authority, 99, 1)
	require.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = gk.CreateGauge(ctx, keepertest.Authority, poolID, 2)
	require.ErrorIs(t, err, types.ErrGaugeAlreadyExists)
}

func TestSingleStakerAccrual(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, provider := setupStakedPool(t, gk, ak, bank, ctx)

	// a round stake keeps the accumulator exact: 100s of rewards at one
	// unit per second over 100000 staked shares
	require.NoError(t, gk.Stake(ctx, provider, poolID, math.NewInt(100_000)))

	ctx = advance(ctx, 100)
	pending, err := gk.PendingReward(ctx, provider, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), pending)

	paid, err := gk.ClaimReward(ctx, provider, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), paid)
	require.Equal(t, math.NewInt(100), bank.GetBalance(ctx, provider, keepertest.RewardDenom).Amount)

	// nothing left right after settlement
	paid, err = gk.ClaimReward(ctx, provider, poolID)
	require.NoError(t, err)
	require.True(t, paid.IsZero())

	gauge, err := gk.GetGauge(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(types.Precision).QuoRaw(1000), gauge.AccRewardPerShare)
}

func TestAccumulatorMonotone(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, provider := setupStakedPool(t, gk, ak, bank, ctx)
	require.NoError(t, gk.Stake(ctx, provider, poolID, math.NewInt(100_000)))

	prev := math.ZeroInt()
	for i := 0; i < 5; i++ {
		ctx = advance(ctx, 7)
		_, err := gk.ClaimReward(ctx, provider, poolID)
		require.NoError(t, err)

		gauge, err := gk.GetGauge(ctx, poolID)
		require.NoError(t, err)
		require.True(t, gauge.AccRewardPerShare.GT(prev))
		prev = gauge.AccRewardPerShare
	}
}

func TestTwoStakersProportional(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, provider := setupStakedPool(t, gk, ak, bank, ctx)

	alice := testAddr("alice")
	bob := testAddr("bob")
	require.NoError(t, ak.TransferShares(ctx, provider, alice, poolID, math.NewInt(100)))
	require.NoError(t, ak.TransferShares(ctx, provider, bob, poolID, math.NewInt(300)))

	require.NoError(t, gk.Stake(ctx, alice, poolID, math.NewInt(100)))

	// alice alone for the first 100s, then bob triples the pool
	ctx = advance(ctx, 100)
	require.NoError(t, gk.Stake(ctx, bob, poolID, math.NewInt(300)))

	ctx = advance(ctx, 100)

	alicePending, err := gk.PendingReward(ctx, alice, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(125), alicePending, "100 solo plus a quarter of 100 shared")

	bobPending, err := gk.PendingReward(ctx, bob, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(75), bobPending, "three quarters of 100 shared")
}

func TestStakeCustody(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, provider := setupStakedPool(t, gk, ak, bank, ctx)

	require.NoError(t, gk.Stake(ctx, provider, poolID, math.NewInt(600_000)))

	require.Equal(t, math.NewInt(399_000), ak.GetShares(ctx, poolID, provider.String()))
	require.Equal(t, math.NewInt(600_000), ak.GetShares(ctx, poolID, gk.GetModuleAddress().String()))
	gauge, err := gk.GetGauge(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600_000), gauge.TotalStaked)

	require.NoError(t, gk.Unstake(ctx, provider, poolID, math.NewInt(600_000)))
	require.Equal(t, math.NewInt(999_000), ak.GetShares(ctx, poolID, provider.String()))
	require.True(t, ak.GetShares(ctx, poolID, gk.GetModuleAddress().String()).IsZero())
}

func TestStakeErrors(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, provider := setupStakedPool(t, gk, ak, bank, ctx)

	require.ErrorIs(t, gk.Stake(ctx, provider, poolID, math.ZeroInt()), types.ErrZeroAmount)
	require.ErrorIs(t, gk.Stake(ctx, provider, 99, math.NewInt(1)), types.ErrGaugeNotFound)

	// staking more shares than held fails inside the AMM ledger
	require.Error(t, gk.Stake(ctx, provider, poolID, math.NewInt(2_000_000)))

	require.NoError(t, gk.Stake(ctx, provider, poolID, math.NewInt(1_000)))
	require.ErrorIs(t, gk.Unstake(ctx, provider, poolID, math.NewInt(1_001)), types.ErrInsufficientStake)
	require.ErrorIs(t, gk.Unstake(ctx, provider, poolID, math.ZeroInt()), types.ErrZeroAmount)
}

func TestUnstakeSettlesPending(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, provider := setupStakedPool(t, gk, ak, bank, ctx)
	require.NoError(t, gk.Stake(ctx, provider, poolID, math.NewInt(100_000)))

	ctx = advance(ctx, 50)
	require.NoError(t, gk.Unstake(ctx, provider, poolID, math.NewInt(100_000)))
	require.Equal(t, math.NewInt(50), bank.GetBalance(ctx, provider, keepertest.RewardDenom).Amount)

	// empty position accrues nothing afterwards
	ctx = advance(ctx, 50)
	pending, err := gk.PendingReward(ctx, provider, poolID)
	require.NoError(t, err)
	require.True(t, pending.IsZero())
}

func TestPendingRewardReadOnly(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, provider := setupStakedPool(t, gk, ak, bank, ctx)
	require.NoError(t, gk.Stake(ctx, provider, poolID, math.NewInt(100_000)))

	before, err := gk.GetGauge(ctx, poolID)
	require.NoError(t, err)

	ctx = advance(ctx, 100)
	_, err = gk.PendingReward(ctx, provider, poolID)
	require.NoError(t, err)

	after, err := gk.GetGauge(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestIdleGaugeMovesOnlyClock(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, provider := setupStakedPool(t, gk, ak, bank, ctx)

	// a long empty stretch mints nothing once someone finally stakes
	ctx = advance(ctx, 10_000)
	require.NoError(t, gk.Stake(ctx, provider, poolID, math.NewInt(100_000)))

	pending, err := gk.PendingReward(ctx, provider, poolID)
	require.NoError(t, err)
	require.True(t, pending.IsZero())

	gauge, err := gk.GetGauge(ctx, poolID)
	require.NoError(t, err)
	require.True(t, gauge.AccRewardPerShare.IsZero())
	require.Equal(t, ctx.BlockTime().Unix(), gauge.LastUpdateUnix)
}

func TestClaimPoolFees(t *testing.T) {
	gk, ak, bank, ctx := keepertest.GaugeKeepers(t)
	poolID, _ := setupStakedPool(t, gk, ak, bank, ctx)

	require.NoError(t, ak.SetSwapFee(ctx, keepertest.Authority, poolID, 100))

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))
	_, err := ak.Swap(ctx, trader, poolID, "uatom", math.NewInt(100_000), math.ZeroInt())
	require.NoError(t, err)

	require.NoError(t, gk.ClaimPoolFees(ctx, poolID))
	require.Equal(t, math.NewInt(1_000), bank.GetBalance(ctx, gk.GetModuleAddress(), "uatom").Amount)

	feeA, feeB, err := ak.AccruedFees(ctx, poolID)
	require.NoError(t, err)
	require.True(t, feeA.IsZero())
	require.True(t, feeB.IsZero())

	// nothing accrued since: the claim is a no-op
	require.NoError(t, gk.ClaimPoolFees(ctx, poolID))

	require.ErrorIs(t, gk.ClaimPoolFees(ctx, 99), types.ErrGaugeNotFound)
}
