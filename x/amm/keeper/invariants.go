package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// RegisterInvariants registers the amm module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "shares-supply", SharesSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
}

// SharesSupplyInvariant checks that every pool's TotalShares equals the sum
// of its recorded share positions.
func SharesSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)
		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			sum := math.ZeroInt()
			k.IterateShares(ctx, pool.Id, func(owner string, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			})
			if !sum.Equal(pool.TotalShares) {
				broken = true
				msg += fmt.Sprintf("pool %d: total shares %s, sum of positions %s\n", pool.Id, pool.TotalShares, sum)
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "shares-supply", msg), broken
	}
}

// ReserveBackingInvariant checks that the module account holds at least the
// sum of pricing reserves and fee reserves for every asset of every pool.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)
		owed := make(map[string]math.Int)
		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			for _, entry := range []struct {
				denom  string
				amount math.Int
			}{
				{pool.DenomA, pool.ReserveA.Add(pool.FeeReserveA)},
				{pool.DenomB, pool.ReserveB.Add(pool.FeeReserveB)},
			} {
				cur, ok := owed[entry.denom]
				if !ok {
					cur = math.ZeroInt()
				}
				owed[entry.denom] = cur.Add(entry.amount)
			}
			return false
		})

		moduleAddr := k.GetModuleAddress()
		for denom, amount := range owed {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(amount) {
				broken = true
				msg += fmt.Sprintf("denom %s: module holds %s, pools require %s\n", denom, balance.Amount, amount)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "reserve-backing", msg), broken
	}
}
