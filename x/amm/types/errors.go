package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidPair          = errors.Register(ModuleName, 2, "invalid asset pair")
	ErrPoolNotFound         = errors.Register(ModuleName, 3, "pool not found")
	ErrPoolAlreadyExists    = errors.Register(ModuleName, 4, "pool already exists")
	ErrZeroAmount           = errors.Register(ModuleName, 5, "amount must be positive")
	ErrAssetNotInPool       = errors.Register(ModuleName, 6, "asset is not part of the pool")
	ErrSharesRoundToZero    = errors.Register(ModuleName, 7, "share amount rounds to zero")
	ErrOutputBelowMinimum   = errors.Register(ModuleName, 8, "output amount below caller minimum")
	ErrInvariantDecreased   = errors.Register(ModuleName, 9, "pool invariant decreased")
	ErrUnauthorized         = errors.Register(ModuleName, 10, "caller lacks the required role")
	ErrPaused               = errors.Register(ModuleName, 11, "operations are paused")
	ErrFeeAboveMaximum      = errors.Register(ModuleName, 12, "swap fee exceeds global maximum")
	ErrCustodyMismatch      = errors.Register(ModuleName, 13, "transferred amount differs from requested amount")
	ErrInsufficientShares   = errors.Register(ModuleName, 14, "insufficient liquidity shares")
	ErrInsufficientReserves = errors.Register(ModuleName, 15, "insufficient pool reserves")
	ErrInvalidPoolState     = errors.Register(ModuleName, 16, "invalid pool state")
	ErrOverflow             = errors.Register(ModuleName, 17, "arithmetic overflow")
	ErrNoConvergence        = errors.Register(ModuleName, 18, "stable curve solver did not converge")
	ErrInvalidInput         = errors.Register(ModuleName, 19, "invalid input")
)
