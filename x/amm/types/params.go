package types

import (
	"fmt"
)

// Basis-point denominator shared by all fee math.
const BpsDenominator = 10_000

// Params holds the module-wide AMM configuration.
type Params struct {
	// MaxSwapFeeBps bounds every per-pool fee set by the fee manager.
	MaxSwapFeeBps uint64 `json:"max_swap_fee_bps"`
	// DefaultVolatileFeeBps is assigned to new constant-product pools.
	DefaultVolatileFeeBps uint64 `json:"default_volatile_fee_bps"`
	// DefaultStableFeeBps is assigned to new stable-curve pools.
	DefaultStableFeeBps uint64 `json:"default_stable_fee_bps"`
}

// DefaultParams returns default parameters for the amm module
func DefaultParams() Params {
	return Params{
		MaxSwapFeeBps:         300, // 3%
		DefaultVolatileFeeBps: 30,  // 0.30%
		DefaultStableFeeBps:   5,   // 0.05%
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.MaxSwapFeeBps >= BpsDenominator {
		return fmt.Errorf("max swap fee %d bps must be below %d", p.MaxSwapFeeBps, BpsDenominator)
	}
	if p.DefaultVolatileFeeBps > p.MaxSwapFeeBps {
		return fmt.Errorf("default volatile fee %d bps exceeds maximum %d", p.DefaultVolatileFeeBps, p.MaxSwapFeeBps)
	}
	if p.DefaultStableFeeBps > p.MaxSwapFeeBps {
		return fmt.Errorf("default stable fee %d bps exceeds maximum %d", p.DefaultStableFeeBps, p.MaxSwapFeeBps)
	}
	return nil
}
