package types

import sdkerrors "cosmossdk.io/errors"

// Gauge module sentinel errors
var (
	ErrGaugeNotFound      = sdkerrors.Register(ModuleName, 2, "gauge not found")
	ErrGaugeAlreadyExists = sdkerrors.Register(ModuleName, 3, "gauge already exists for pool")
	ErrZeroAmount         = sdkerrors.Register(ModuleName, 4, "amount must be positive")
	ErrInsufficientStake  = sdkerrors.Register(ModuleName, 5, "insufficient staked amount")
	ErrUnauthorized       = sdkerrors.Register(ModuleName, 6, "unauthorized")
	ErrInvalidGaugeState  = sdkerrors.Register(ModuleName, 7, "invalid gauge state")
	ErrInvalidInput       = sdkerrors.Register(ModuleName, 8, "invalid input")
)
