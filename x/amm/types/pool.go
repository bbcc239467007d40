package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Pool is a per-pair liquidity pool. Denoms are stored sorted
// (DenomA < DenomB) so the pair key is canonical. Fee reserves are held
// separately from the tradeable reserves and never enter curve pricing.
type Pool struct {
	Id          uint64   `json:"id"`
	DenomA      string   `json:"denom_a"`
	DenomB      string   `json:"denom_b"`
	DecimalsA   uint32   `json:"decimals_a"`
	DecimalsB   uint32   `json:"decimals_b"`
	Stable      bool     `json:"stable"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	FeeReserveA math.Int `json:"fee_reserve_a"`
	FeeReserveB math.Int `json:"fee_reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	SwapFeeBps  uint64   `json:"swap_fee_bps"`
}

// NewPool returns an empty pool for the given pair. Denoms are sorted and
// decimals follow their denom.
func NewPool(id uint64, denomA, denomB string, decimalsA, decimalsB uint32, stable bool, swapFeeBps uint64) Pool {
	if denomA > denomB {
		denomA, denomB = denomB, denomA
		decimalsA, decimalsB = decimalsB, decimalsA
	}
	return Pool{
		Id:          id,
		DenomA:      denomA,
		DenomB:      denomB,
		DecimalsA:   decimalsA,
		DecimalsB:   decimalsB,
		Stable:      stable,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		FeeReserveA: math.ZeroInt(),
		FeeReserveB: math.ZeroInt(),
		TotalShares: math.ZeroInt(),
		SwapFeeBps:  swapFeeBps,
	}
}

// HasDenom reports whether denom is one of the pool's two assets.
func (p Pool) HasDenom(denom string) bool {
	return denom == p.DenomA || denom == p.DenomB
}

// OtherDenom returns the counterpart asset for denom.
func (p Pool) OtherDenom(denom string) string {
	if denom == p.DenomA {
		return p.DenomB
	}
	return p.DenomA
}

// Reserves returns (reserveIn, reserveOut) oriented so that denomIn is the
// input side.
func (p Pool) Reserves(denomIn string) (reserveIn, reserveOut math.Int) {
	if denomIn == p.DenomA {
		return p.ReserveA, p.ReserveB
	}
	return p.ReserveB, p.ReserveA
}

// Validate checks structural pool invariants: sorted distinct denoms,
// non-negative balances, and reserves strictly positive once shares exist.
func (p Pool) Validate() error {
	if p.DenomA == p.DenomB {
		return fmt.Errorf("pool %d: identical denoms %s", p.Id, p.DenomA)
	}
	if p.DenomA > p.DenomB {
		return fmt.Errorf("pool %d: denoms not sorted: %s > %s", p.Id, p.DenomA, p.DenomB)
	}
	if p.DenomA == "" || p.DenomB == "" {
		return fmt.Errorf("pool %d: empty denom", p.Id)
	}
	for name, v := range map[string]math.Int{
		"reserve_a":     p.ReserveA,
		"reserve_b":     p.ReserveB,
		"fee_reserve_a": p.FeeReserveA,
		"fee_reserve_b": p.FeeReserveB,
		"total_shares":  p.TotalShares,
	} {
		if v.IsNil() {
			return fmt.Errorf("pool %d: nil %s", p.Id, name)
		}
		if v.IsNegative() {
			return fmt.Errorf("pool %d: negative %s: %s", p.Id, name, v)
		}
	}
	if p.TotalShares.IsPositive() && (p.ReserveA.IsZero() || p.ReserveB.IsZero()) {
		return fmt.Errorf("pool %d: shares outstanding with empty reserve", p.Id)
	}
	if p.TotalShares.IsZero() && (!p.ReserveA.IsZero() || !p.ReserveB.IsZero()) {
		return fmt.Errorf("pool %d: reserves held with zero shares", p.Id)
	}
	return nil
}
