package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgCreatePool      = "create_pool"
	TypeMsgSwap            = "swap"
	TypeMsgAddLiquidity    = "add_liquidity"
	TypeMsgRemoveLiquidity = "remove_liquidity"
	TypeMsgTransferShares  = "transfer_shares"
	TypeMsgSetSwapFee      = "set_swap_fee"
	TypeMsgSetPaused       = "set_paused"
	TypeMsgTransferRole    = "transfer_role"
	TypeMsgAcceptRole      = "accept_role"
)

// MsgCreatePool creates an empty pool for a (pair, curve) key.
type MsgCreatePool struct {
	Creator   string `json:"creator"`
	DenomA    string `json:"denom_a"`
	DenomB    string `json:"denom_b"`
	DecimalsA uint32 `json:"decimals_a"`
	DecimalsB uint32 `json:"decimals_b"`
	Stable    bool   `json:"stable"`
}

func (m *MsgCreatePool) Reset()         { *m = MsgCreatePool{} }
func (m *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCreatePool) ProtoMessage()    {}

func (m MsgCreatePool) Route() string { return RouterKey }
func (m MsgCreatePool) Type() string  { return TypeMsgCreatePool }

func (m MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(m.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

func (m MsgCreatePool) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid creator address: %v", err)
	}
	if m.DenomA == "" || m.DenomB == "" {
		return ErrInvalidPair.Wrap("denoms cannot be empty")
	}
	if m.DenomA == m.DenomB {
		return ErrInvalidPair.Wrap("denoms must differ")
	}
	return nil
}

// MsgSwap swaps an exact input amount against a pool.
type MsgSwap struct {
	Trader       string   `json:"trader"`
	PoolId       uint64   `json:"pool_id"`
	DenomIn      string   `json:"denom_in"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

func (m *MsgSwap) Reset()         { *m = MsgSwap{} }
func (m *MsgSwap) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSwap) ProtoMessage()    {}

func (m MsgSwap) Route() string { return RouterKey }
func (m MsgSwap) Type() string  { return TypeMsgSwap }

func (m MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(m.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

func (m MsgSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid trader address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if m.DenomIn == "" {
		return ErrInvalidInput.Wrap("input denom cannot be empty")
	}
	if m.AmountIn.IsNil() || !m.AmountIn.IsPositive() {
		return ErrZeroAmount.Wrap("swap input")
	}
	if m.MinAmountOut.IsNil() || m.MinAmountOut.IsNegative() {
		return ErrInvalidInput.Wrap("minimum output cannot be negative")
	}
	return nil
}

// MsgAddLiquidity deposits both assets and mints LP shares.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

func (m *MsgAddLiquidity) Reset()         { *m = MsgAddLiquidity{} }
func (m *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgAddLiquidity) ProtoMessage()    {}

func (m MsgAddLiquidity) Route() string { return RouterKey }
func (m MsgAddLiquidity) Type() string  { return TypeMsgAddLiquidity }

func (m MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(m.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

func (m MsgAddLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if m.AmountA.IsNil() || !m.AmountA.IsPositive() || m.AmountB.IsNil() || !m.AmountB.IsPositive() {
		return ErrZeroAmount.Wrap("liquidity amounts")
	}
	return nil
}

// MsgRemoveLiquidity burns LP shares for the underlying assets.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
}

func (m *MsgRemoveLiquidity) Reset()         { *m = MsgRemoveLiquidity{} }
func (m *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRemoveLiquidity) ProtoMessage()    {}

func (m MsgRemoveLiquidity) Route() string { return RouterKey }
func (m MsgRemoveLiquidity) Type() string  { return TypeMsgRemoveLiquidity }

func (m MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(m.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

func (m MsgRemoveLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if m.Shares.IsNil() || !m.Shares.IsPositive() {
		return ErrZeroAmount.Wrap("share amount")
	}
	return nil
}

// MsgTransferShares moves LP shares between owners through the pool's own
// ledger. There is no other transfer path for shares.
type MsgTransferShares struct {
	Sender    string   `json:"sender"`
	Recipient string   `json:"recipient"`
	PoolId    uint64   `json:"pool_id"`
	Shares    math.Int `json:"shares"`
}

func (m *MsgTransferShares) Reset()         { *m = MsgTransferShares{} }
func (m *MsgTransferShares) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgTransferShares) ProtoMessage()    {}

func (m MsgTransferShares) Route() string { return RouterKey }
func (m MsgTransferShares) Type() string  { return TypeMsgTransferShares }

func (m MsgTransferShares) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (m MsgTransferShares) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgTransferShares) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid recipient address: %v", err)
	}
	if m.Sender == m.Recipient {
		return ErrInvalidInput.Wrap("sender and recipient must differ")
	}
	if m.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if m.Shares.IsNil() || !m.Shares.IsPositive() {
		return ErrZeroAmount.Wrap("share amount")
	}
	return nil
}

// MsgSetSwapFee updates a pool's fee rate. Fee-manager only.
type MsgSetSwapFee struct {
	Caller     string `json:"caller"`
	PoolId     uint64 `json:"pool_id"`
	SwapFeeBps uint64 `json:"swap_fee_bps"`
}

func (m *MsgSetSwapFee) Reset()         { *m = MsgSetSwapFee{} }
func (m *MsgSetSwapFee) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSetSwapFee) ProtoMessage()    {}

func (m MsgSetSwapFee) Route() string { return RouterKey }
func (m MsgSetSwapFee) Type() string  { return TypeMsgSetSwapFee }

func (m MsgSetSwapFee) GetSigners() []sdk.AccAddress {
	caller, err := sdk.AccAddressFromBech32(m.Caller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{caller}
}

func (m MsgSetSwapFee) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgSetSwapFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid caller address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidInput.Wrap("pool id must be positive")
	}
	if m.SwapFeeBps >= BpsDenominator {
		return ErrFeeAboveMaximum.Wrapf("%d bps", m.SwapFeeBps)
	}
	return nil
}

// MsgSetPaused flips the global pause flag. Pauser only.
type MsgSetPaused struct {
	Caller string `json:"caller"`
	Paused bool   `json:"paused"`
}

func (m *MsgSetPaused) Reset()         { *m = MsgSetPaused{} }
func (m *MsgSetPaused) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSetPaused) ProtoMessage()    {}

func (m MsgSetPaused) Route() string { return RouterKey }
func (m MsgSetPaused) Type() string  { return TypeMsgSetPaused }

func (m MsgSetPaused) GetSigners() []sdk.AccAddress {
	caller, err := sdk.AccAddressFromBech32(m.Caller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{caller}
}

func (m MsgSetPaused) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgSetPaused) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid caller address: %v", err)
	}
	return nil
}

// MsgTransferRole nominates a successor for a role (two-step transfer).
type MsgTransferRole struct {
	Caller    string `json:"caller"`
	Role      string `json:"role"`
	Successor string `json:"successor"`
}

func (m *MsgTransferRole) Reset()         { *m = MsgTransferRole{} }
func (m *MsgTransferRole) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgTransferRole) ProtoMessage()    {}

func (m MsgTransferRole) Route() string { return RouterKey }
func (m MsgTransferRole) Type() string  { return TypeMsgTransferRole }

func (m MsgTransferRole) GetSigners() []sdk.AccAddress {
	caller, err := sdk.AccAddressFromBech32(m.Caller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{caller}
}

func (m MsgTransferRole) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgTransferRole) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid caller address: %v", err)
	}
	// an empty successor cancels a pending transfer
	if m.Successor != "" {
		if _, err := sdk.AccAddressFromBech32(m.Successor); err != nil {
			return sdkerrors.Wrapf(ErrInvalidInput, "invalid successor address: %v", err)
		}
	}
	if m.Role != RolePauser && m.Role != RoleFeeManager {
		return ErrInvalidInput.Wrapf("unknown role %q", m.Role)
	}
	return nil
}

// MsgAcceptRole finalizes a pending role transfer. Nominee only.
type MsgAcceptRole struct {
	Caller string `json:"caller"`
	Role   string `json:"role"`
}

func (m *MsgAcceptRole) Reset()         { *m = MsgAcceptRole{} }
func (m *MsgAcceptRole) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgAcceptRole) ProtoMessage()    {}

func (m MsgAcceptRole) Route() string { return RouterKey }
func (m MsgAcceptRole) Type() string  { return TypeMsgAcceptRole }

func (m MsgAcceptRole) GetSigners() []sdk.AccAddress {
	caller, err := sdk.AccAddressFromBech32(m.Caller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{caller}
}

func (m MsgAcceptRole) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

func (m MsgAcceptRole) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid caller address: %v", err)
	}
	if m.Role != RolePauser && m.Role != RoleFeeManager {
		return ErrInvalidInput.Wrapf("unknown role %q", m.Role)
	}
	return nil
}
