package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadia-dex/arcadia/x/gauge/types"
)

// updateGauge advances the accumulator to the current block time. With
// nothing staked there is nobody to credit, so only the clock moves.
func (k Keeper) updateGauge(ctx context.Context, gauge *types.Gauge) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	if now <= gauge.LastUpdateUnix {
		return
	}
	if gauge.TotalStaked.IsZero() {
		gauge.LastUpdateUnix = now
		return
	}

	elapsed := now - gauge.LastUpdateUnix
	reward := k.rewardSource.Rewards(elapsed, gauge.AllocPoints)
	if reward.IsPositive() {
		gauge.AccRewardPerShare = gauge.AccRewardPerShare.Add(
			reward.MulRaw(types.Precision).Quo(gauge.TotalStaked),
		)
	}
	gauge.LastUpdateUnix = now
}

// pendingFor computes the unsettled reward of a position against the current
// accumulator.
func pendingFor(gauge *types.Gauge, stake types.UserStake) math.Int {
	if stake.Amount.IsZero() {
		return math.ZeroInt()
	}
	accrued := stake.Amount.Mul(gauge.AccRewardPerShare).QuoRaw(types.Precision)
	pending := accrued.Sub(stake.RewardDebt)
	if pending.IsNegative() {
		return math.ZeroInt()
	}
	return pending
}

// settlePending pays out a position's pending reward from the gauge module
// account in the reward denom.
func (k Keeper) settlePending(ctx context.Context, poolID uint64, staker sdk.AccAddress, gauge *types.Gauge, stake types.UserStake) error {
	pending := pendingFor(gauge, stake)
	if !pending.IsPositive() {
		return nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.rewardDenom, pending))
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), staker, coins); err != nil {
		return fmt.Errorf("reward payout: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRewardPaid,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
		sdk.NewAttribute(types.AttributeKeyReward, pending.String()),
	))
	k.metrics.RewardsPaid.Add(metricValue(pending))
	return nil
}

// Stake locks LP shares into a pool's gauge. Any reward pending from an
// existing position is settled first, then the position grows and its debt
// is re-anchored to the advanced accumulator.
func (k Keeper) Stake(ctx context.Context, staker sdk.AccAddress, poolID uint64, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("stake amount")
	}

	gauge, err := k.GetGauge(ctx, poolID)
	if err != nil {
		return err
	}

	k.updateGauge(ctx, gauge)

	stake := k.GetUserStake(ctx, poolID, staker.String())
	if err := k.settlePending(ctx, poolID, staker, gauge, stake); err != nil {
		return err
	}

	// custody: shares move through the AMM ledger into the gauge account
	if err := k.ammKeeper.TransferShares(ctx, staker, k.GetModuleAddress(), poolID, amount); err != nil {
		return fmt.Errorf("Stake: share custody: %w", err)
	}

	stake.Amount = stake.Amount.Add(amount)
	stake.RewardDebt = stake.Amount.Mul(gauge.AccRewardPerShare).QuoRaw(types.Precision)
	gauge.TotalStaked = gauge.TotalStaked.Add(amount)

	k.SetUserStake(ctx, poolID, staker.String(), stake)
	if err := k.SetGauge(ctx, gauge); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeStake,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	k.metrics.StakeOps.WithLabelValues("stake").Inc()
	return nil
}

// Unstake releases LP shares from a pool's gauge back to the staker, settling
// pending reward first.
func (k Keeper) Unstake(ctx context.Context, staker sdk.AccAddress, poolID uint64, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("unstake amount")
	}

	gauge, err := k.GetGauge(ctx, poolID)
	if err != nil {
		return err
	}

	stake := k.GetUserStake(ctx, poolID, staker.String())
	if stake.Amount.LT(amount) {
		return types.ErrInsufficientStake.Wrapf("unstaking %s, staked %s", amount, stake.Amount)
	}

	k.updateGauge(ctx, gauge)

	if err := k.settlePending(ctx, poolID, staker, gauge, stake); err != nil {
		return err
	}

	if err := k.ammKeeper.TransferShares(ctx, k.GetModuleAddress(), staker, poolID, amount); err != nil {
		return fmt.Errorf("Unstake: share custody: %w", err)
	}

	stake.Amount = stake.Amount.Sub(amount)
	stake.RewardDebt = stake.Amount.Mul(gauge.AccRewardPerShare).QuoRaw(types.Precision)
	gauge.TotalStaked = gauge.TotalStaked.Sub(amount)

	k.SetUserStake(ctx, poolID, staker.String(), stake)
	if err := k.SetGauge(ctx, gauge); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUnstake,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	k.metrics.StakeOps.WithLabelValues("unstake").Inc()
	return nil
}

// ClaimReward settles a staker's pending reward without touching their stake.
func (k Keeper) ClaimReward(ctx context.Context, staker sdk.AccAddress, poolID uint64) (math.Int, error) {
	gauge, err := k.GetGauge(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	k.updateGauge(ctx, gauge)

	stake := k.GetUserStake(ctx, poolID, staker.String())
	pending := pendingFor(gauge, stake)
	if err := k.settlePending(ctx, poolID, staker, gauge, stake); err != nil {
		return math.ZeroInt(), err
	}

	stake.RewardDebt = stake.Amount.Mul(gauge.AccRewardPerShare).QuoRaw(types.Precision)
	k.SetUserStake(ctx, poolID, staker.String(), stake)
	if err := k.SetGauge(ctx, gauge); err != nil {
		return math.ZeroInt(), err
	}
	return pending, nil
}

// PendingReward reports the reward a staker would receive on settlement,
// projected to the current block time. Read-only.
func (k Keeper) PendingReward(ctx context.Context, staker sdk.AccAddress, poolID uint64) (math.Int, error) {
	gauge, err := k.GetGauge(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	projected := *gauge
	k.updateGauge(ctx, &projected)

	stake := k.GetUserStake(ctx, poolID, staker.String())
	return pendingFor(&projected, stake), nil
}
