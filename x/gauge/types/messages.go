package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgCreateGauge = "create_gauge"
	TypeMsgStake       = "stake"
	TypeMsgUnstake     = "unstake"
	TypeMsgClaimReward = "claim_reward"
)

// MsgCreateGauge registers a staking gauge for an existing pool.
type MsgCreateGauge struct {
	Creator     string `json:"creator"`
	PoolId      uint64 `json:"pool_id"`
	AllocPoints uint64 `json:"alloc_points"`
}

func (m *MsgCreateGauge) Reset()         { *m = MsgCreateGauge{} }
func (m *MsgCreateGauge) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCreateGauge) ProtoMessage()    {}

func (m MsgCreateGauge) Route() string { return RouterKey }
func (m MsgCreateGauge) Type() string  { return TypeMsgCreateGauge }

func (m MsgCreateGauge) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(m.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

func (m MsgCreateGauge) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgCreateGauge) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid creator address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if m.AllocPoints == 0 {
		return ErrInvalidInput.Wrap("allocation points must be positive")
	}
	return nil
}

// MsgStake locks LP shares into a pool's gauge.
type MsgStake struct {
	Staker string   `json:"staker"`
	PoolId uint64   `json:"pool_id"`
	Amount math.Int `json:"amount"`
}

func (m *MsgStake) Reset()         { *m = MsgStake{} }
func (m *MsgStake) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgStake) ProtoMessage()    {}

func (m MsgStake) Route() string { return RouterKey }
func (m MsgStake) Type() string  { return TypeMsgStake }

func (m MsgStake) GetSigners() []sdk.AccAddress {
	staker, err := sdk.AccAddressFromBech32(m.Staker)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{staker}
}

func (m MsgStake) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid staker address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrZeroAmount.Wrap("stake amount")
	}
	return nil
}

// MsgUnstake releases LP shares from a pool's gauge.
type MsgUnstake struct {
	Staker string   `json:"staker"`
	PoolId uint64   `json:"pool_id"`
	Amount math.Int `json:"amount"`
}

func (m *MsgUnstake) Reset()         { *m = MsgUnstake{} }
func (m *MsgUnstake) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgUnstake) ProtoMessage()    {}

func (m MsgUnstake) Route() string { return RouterKey }
func (m MsgUnstake) Type() string  { return TypeMsgUnstake }

func (m MsgUnstake) GetSigners() []sdk.AccAddress {
	staker, err := sdk.AccAddressFromBech32(m.Staker)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{staker}
}

func (m MsgUnstake) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgUnstake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid staker address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrZeroAmount.Wrap("unstake amount")
	}
	return nil
}

// MsgClaimReward settles pending reward without touching the stake.
type MsgClaimReward struct {
	Staker string `json:"staker"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgClaimReward) Reset()         { *m = MsgClaimReward{} }
func (m *MsgClaimReward) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgClaimReward) ProtoMessage()    {}

func (m MsgClaimReward) Route() string { return RouterKey }
func (m MsgClaimReward) Type() string  { return TypeMsgClaimReward }

func (m MsgClaimReward) GetSigners() []sdk.AccAddress {
	staker, err := sdk.AccAddressFromBech32(m.Staker)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{staker}
}

func (m MsgClaimReward) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgClaimReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Staker); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid staker address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	return nil
}
