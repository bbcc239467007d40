package keeper

import (
	"cosmossdk.io/math"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// Curve math for the two pool types. Volatile pools price on the constant
// product x*y. Stable pools price on x³y + y³x with both reserves rescaled
// to 1e18 fixed point first, so assets with different decimal counts sit at
// parity. The stable invariant is evaluated in the scaled form
// a*b with a = xy/1e18 and b = (x²+y²)/1e18, which keeps every
// intermediate product within 256 bits for realistic reserves.

// maxSolverIterations bounds the Newton iteration for the stable curve.
const maxSolverIterations = 255

var precision18 = math.NewIntWithDecimal(1, 18)

func pow10(decimals uint32) math.Int {
	return math.NewIntWithDecimal(1, int(decimals))
}

// normalizeAmount rescales a native-precision amount to 1e18 fixed point.
func normalizeAmount(amount math.Int, decimals uint32) (math.Int, error) {
	return SafeMulDiv(amount, precision18, pow10(decimals))
}

// denormalizeAmount rescales a 1e18 fixed-point amount back to native
// precision, flooring.
func denormalizeAmount(amount math.Int, decimals uint32) (math.Int, error) {
	return SafeMulDiv(amount, pow10(decimals), precision18)
}

// stableK computes the invariant x³y + y³x for 1e18-normalized reserves.
func stableK(x, y math.Int) (math.Int, error) {
	a, err := SafeMulDiv(x, y, precision18)
	if err != nil {
		return math.Int{}, err
	}
	x2, err := SafeMulDiv(x, x, precision18)
	if err != nil {
		return math.Int{}, err
	}
	y2, err := SafeMulDiv(y, y, precision18)
	if err != nil {
		return math.Int{}, err
	}
	return SafeMulDiv(a, x2.Add(y2), precision18)
}

// stableF evaluates f(x0, y) = x0·y³ + x0³·y in 1e18 fixed point.
func stableF(x0, y math.Int) (math.Int, error) {
	y2, err := SafeMulDiv(y, y, precision18)
	if err != nil {
		return math.Int{}, err
	}
	y3, err := SafeMulDiv(y2, y, precision18)
	if err != nil {
		return math.Int{}, err
	}
	t1, err := SafeMulDiv(x0, y3, precision18)
	if err != nil {
		return math.Int{}, err
	}
	x2, err := SafeMulDiv(x0, x0, precision18)
	if err != nil {
		return math.Int{}, err
	}
	x3, err := SafeMulDiv(x2, x0, precision18)
	if err != nil {
		return math.Int{}, err
	}
	t2, err := SafeMulDiv(x3, y, precision18)
	if err != nil {
		return math.Int{}, err
	}
	return SafeAdd(t1, t2)
}

// stableD evaluates the partial derivative f'(x0, y) = 3·x0·y² + x0³.
func stableD(x0, y math.Int) (math.Int, error) {
	y2, err := SafeMulDiv(y, y, precision18)
	if err != nil {
		return math.Int{}, err
	}
	t1, err := SafeMulDiv(x0.MulRaw(3), y2, precision18)
	if err != nil {
		return math.Int{}, err
	}
	x2, err := SafeMulDiv(x0, x0, precision18)
	if err != nil {
		return math.Int{}, err
	}
	x3, err := SafeMulDiv(x2, x0, precision18)
	if err != nil {
		return math.Int{}, err
	}
	return SafeAdd(t1, x3)
}

// solveStableY finds y such that f(x0, y) = k by Newton iteration, starting
// from the pre-trade output reserve. Converges when successive iterates
// differ by at most one unit; the iteration count is hard-capped and the
// last iterate is accepted at the cap.
func solveStableY(x0, k, yGuess math.Int) (math.Int, error) {
	y := yGuess
	for i := 0; i < maxSolverIterations; i++ {
		prev := y

		f, err := stableF(x0, y)
		if err != nil {
			return math.Int{}, err
		}
		d, err := stableD(x0, y)
		if err != nil {
			return math.Int{}, err
		}
		if d.IsZero() {
			return math.Int{}, types.ErrNoConvergence.Wrap("zero derivative")
		}

		if f.LT(k) {
			dy, err := SafeMulDiv(k.Sub(f), precision18, d)
			if err != nil {
				return math.Int{}, err
			}
			y = y.Add(dy)
		} else {
			dy, err := SafeMulDiv(f.Sub(k), precision18, d)
			if err != nil {
				return math.Int{}, err
			}
			y = y.Sub(dy)
		}
		if y.IsNegative() {
			return math.Int{}, types.ErrNoConvergence.Wrap("iterate went negative")
		}

		if y.Sub(prev).Abs().LTE(math.OneInt()) {
			return y, nil
		}
	}
	return y, nil
}

// poolInvariant returns the pool's invariant k under its own curve and
// normalization. Fee reserves never enter this computation.
func poolInvariant(pool types.Pool) (math.Int, error) {
	if !pool.Stable {
		return SafeMul(pool.ReserveA, pool.ReserveB)
	}
	x, err := normalizeAmount(pool.ReserveA, pool.DecimalsA)
	if err != nil {
		return math.Int{}, err
	}
	y, err := normalizeAmount(pool.ReserveB, pool.DecimalsB)
	if err != nil {
		return math.Int{}, err
	}
	return stableK(x, y)
}

// swapOutput computes the output amount for swapAmount of denomIn (fee
// already deducted) against the pool's curve. Pure; no state is touched.
func swapOutput(pool types.Pool, denomIn string, swapAmount math.Int) (math.Int, error) {
	reserveIn, reserveOut := pool.Reserves(denomIn)
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.Int{}, types.ErrInsufficientReserves.Wrap("pool reserves must be positive")
	}

	if !pool.Stable {
		// Constant product: out = in * reserveOut / (reserveIn + in)
		return SafeMulDiv(swapAmount, reserveOut, reserveIn.Add(swapAmount))
	}

	decIn, decOut := pool.DecimalsA, pool.DecimalsB
	if denomIn == pool.DenomB {
		decIn, decOut = pool.DecimalsB, pool.DecimalsA
	}

	x, err := normalizeAmount(reserveIn, decIn)
	if err != nil {
		return math.Int{}, err
	}
	y, err := normalizeAmount(reserveOut, decOut)
	if err != nil {
		return math.Int{}, err
	}
	dx, err := normalizeAmount(swapAmount, decIn)
	if err != nil {
		return math.Int{}, err
	}

	k, err := stableK(x, y)
	if err != nil {
		return math.Int{}, err
	}
	yAfter, err := solveStableY(x.Add(dx), k, y)
	if err != nil {
		return math.Int{}, err
	}
	if yAfter.GT(y) {
		return math.Int{}, types.ErrNoConvergence.Wrap("output reserve grew")
	}
	return denormalizeAmount(y.Sub(yAfter), decOut)
}
