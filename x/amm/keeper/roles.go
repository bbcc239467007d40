package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// GetRoles returns the current role assignments, falling back to the module
// authority when nothing has been stored yet.
func (k Keeper) GetRoles(ctx context.Context) types.Roles {
	store := k.getStore(ctx)
	bz := store.Get(types.RolesKey)
	if bz == nil {
		return types.NewRoles(k.authority)
	}
	var roles types.Roles
	if err := k.cdc.Unmarshal(bz, &roles); err != nil {
		panic(fmt.Errorf("unmarshal roles: %w", err))
	}
	return roles
}

func (k Keeper) SetRoles(ctx context.Context, roles types.Roles) {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&roles)
	if err != nil {
		panic(fmt.Errorf("marshal roles: %w", err))
	}
	store.Set(types.RolesKey, bz)
}

// IsPaused reports whether state-changing pool operations are halted.
func (k Keeper) IsPaused(ctx context.Context) bool {
	store := k.getStore(ctx)
	bz := store.Get(types.PausedKey)
	return len(bz) == 1 && bz[0] == 1
}

// SetPaused flips the pause flag. Only the pauser role may call it. Setting
// the flag to its current value is a no-op and emits no event.
func (k Keeper) SetPaused(ctx context.Context, caller sdk.AccAddress, paused bool) error {
	roles := k.GetRoles(ctx)
	if caller.String() != roles.Pauser {
		return types.ErrUnauthorized.Wrapf("%s does not hold the pauser role", caller)
	}
	if k.IsPaused(ctx) == paused {
		return nil
	}

	store := k.getStore(ctx)
	if paused {
		store.Set(types.PausedKey, []byte{1})
	} else {
		store.Set(types.PausedKey, []byte{0})
	}

	eventType := types.EventTypeUnpaused
	if paused {
		eventType = types.EventTypePaused
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		eventType,
		sdk.NewAttribute(types.AttributeKeySender, caller.String()),
	))
	k.Logger(ctx).Info("pause flag updated", "paused", paused, "by", caller.String())
	return nil
}

// SetSwapFee updates a pool's swap fee. Only the fee manager role may call
// it, and the new fee must not exceed the configured maximum.
func (k Keeper) SetSwapFee(ctx context.Context, caller sdk.AccAddress, poolID uint64, feeBps uint64) error {
	roles := k.GetRoles(ctx)
	if caller.String() != roles.FeeManager {
		return types.ErrUnauthorized.Wrapf("%s does not hold the fee manager role", caller)
	}

	params := k.GetParams(ctx)
	if feeBps > params.MaxSwapFeeBps {
		return types.ErrFeeAboveMaximum.Wrapf("%d bps exceeds maximum %d bps", feeBps, params.MaxSwapFeeBps)
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	pool.SwapFeeBps = feeBps
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSwapFeeUpdated,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyFeeBps, fmt.Sprintf("%d", feeBps)),
	))
	return nil
}

// TransferRole begins a two-step handover of a role. The current holder
// nominates a successor; nothing changes until the successor accepts.
// Nominating a new successor overwrites any pending one, and nominating the
// empty string cancels the handover.
func (k Keeper) TransferRole(ctx context.Context, caller sdk.AccAddress, role, successor string) error {
	roles := k.GetRoles(ctx)

	switch role {
	case types.RolePauser:
		if caller.String() != roles.Pauser {
			return types.ErrUnauthorized.Wrapf("%s does not hold the pauser role", caller)
		}
		roles.PendingPauser = successor
	case types.RoleFeeManager:
		if caller.String() != roles.FeeManager {
			return types.ErrUnauthorized.Wrapf("%s does not hold the fee manager role", caller)
		}
		roles.PendingFeeManager = successor
	default:
		return types.ErrInvalidInput.Wrapf("unknown role %q", role)
	}

	if successor != "" {
		if _, err := sdk.AccAddressFromBech32(successor); err != nil {
			return types.ErrInvalidInput.Wrapf("invalid successor address %q: %v", successor, err)
		}
	}

	k.SetRoles(ctx, roles)
	return nil
}

// AcceptRole completes a role handover started by TransferRole. Only the
// pending successor may call it.
func (k Keeper) AcceptRole(ctx context.Context, caller sdk.AccAddress, role string) error {
	roles := k.GetRoles(ctx)

	switch role {
	case types.RolePauser:
		if roles.PendingPauser == "" || caller.String() != roles.PendingPauser {
			return types.ErrUnauthorized.Wrapf("%s is not the pending pauser", caller)
		}
		roles.Pauser = roles.PendingPauser
		roles.PendingPauser = ""
	case types.RoleFeeManager:
		if roles.PendingFeeManager == "" || caller.String() != roles.PendingFeeManager {
			return types.ErrUnauthorized.Wrapf("%s is not the pending fee manager", caller)
		}
		roles.FeeManager = roles.PendingFeeManager
		roles.PendingFeeManager = ""
	default:
		return types.ErrInvalidInput.Wrapf("unknown role %q", role)
	}

	k.SetRoles(ctx, roles)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRoleTransferred,
		sdk.NewAttribute(types.AttributeKeyRole, role),
		sdk.NewAttribute(types.AttributeKeyRecipient, caller.String()),
	))
	return nil
}
