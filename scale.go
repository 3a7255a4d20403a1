package aevum

/*
scale.go contains the scaled arithmetic operations of [Duration]:
scalar multiplication and division, the duration/duration ratio with
its degrading-precision unit strategy, and modulus.
*/

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

/*
Mul returns the product of d and scalar.

A NaN scalar reports an invalid-argument failure, as NaN carries no
sign with which to resolve perpetual semantics. A perpetual operand
or an infinite scalar yields the signed perpetual value whose sign is
the XOR of the operand signs (hence a perpetual value times zero is
signed perpetual). A zero scalar or zero duration otherwise yields
zero.

Scaling is exact: each field folds through unbounded decimal
arithmetic against the decimal rendition of the scalar, and only a
sub-Planck remainder rounds (half-up). A unit scalar returns the
operand unchanged apart from sign.
*/
func Mul(d Duration, scalar float64) (Duration, error) {
	if math.IsNaN(scalar) {
		return Zero, errorNaNScalar
	}

	if d.perpetual || math.IsInf(scalar, 0) {
		return Duration{perpetual: true,
			negative: d.negative != math.Signbit(scalar)}, nil
	}

	if scalar == 0 || d.IsZero() {
		return Zero, nil
	}

	neg := d.negative != (scalar < 0)

	if math.Abs(scalar) == 1 {
		d.negative = neg
		return d, nil
	}

	k := decimal.NewFromFloat(math.Abs(scalar))

	var acc accumulator
	if d.aeons != nil {
		acc.foldDecimal(decimal.NewFromBigInt(d.aeons, 0).Mul(k), colAeon)
	}
	if d.years != 0 {
		acc.foldDecimal(decimal.NewFromInt(int64(d.years)).Mul(k), colYear)
	}
	if d.nanos != 0 {
		acc.foldDecimal(decimal.NewFromInt(int64(d.nanos)).Mul(k), colNano)
	}
	if d.yoctos != 0 {
		acc.foldDecimal(decimal.NewFromInt(int64(d.yoctos)).Mul(k), colYocto)
	}
	if d.planck != nil {
		acc.foldDecimal(decimal.NewFromBigInt(d.planck, 0).Mul(k), colPlanck)
	}

	return acc.normalize(neg)
}

/*
foldFloat folds a non-negative scaled unit count into col, cascading
the fractional remainder into each less significant column in turn.
The Planck-time remainder rounds half-up.
*/
func (r *accumulator) foldFloat(col column, v float64) error {
	if v == 0 {
		return nil
	}
	if math.IsInf(v, 0) {
		return overflowErrorf("scaled magnitude exceeds representable range")
	}

	for {
		whole := math.Floor(v)
		frac := v - whole
		if whole > 0 {
			wb, _ := big.NewFloat(whole).Int(nil)
			r.addBig(col, wb)
		}

		switch col {
		case colAeon:
			v = frac * float64(YearsPerAeon)
			col = colYear
		case colYear:
			v = frac * float64(NanosecondsPerYear)
			col = colNano
		case colNano:
			v = frac * float64(YoctosecondsPerNanosecond)
			col = colYocto
		case colYocto:
			pf, _ := new(big.Float).SetInt(PlanckTimePerYoctosecond).Float64()
			v = frac * pf
			col = colPlanck
		default:
			if frac >= 0.5 {
				r.addUint(colPlanck, 1)
			}
			return nil
		}

		if v == 0 {
			return nil
		}
	}
}

/*
Div returns the quotient of d and scalar, delegating to [Mul] by the
reciprocal after the degenerate dispositions: a NaN divisor reports
an invalid-argument failure; division of zero by zero yields zero;
division of a non-zero dividend by zero yields the signed perpetual
value; a finite dividend over an infinite divisor yields zero.
*/
func Div(d Duration, scalar float64) (Duration, error) {
	if math.IsNaN(scalar) {
		return Zero, errorNaNScalar
	}

	if scalar == 0 {
		if d.IsZero() {
			return Zero, nil
		}
		return Duration{perpetual: true,
			negative: d.negative != math.Signbit(scalar)}, nil
	}

	if math.IsInf(scalar, 0) {
		if d.perpetual {
			return Duration{perpetual: true,
				negative: d.negative != math.Signbit(scalar)}, nil
		}
		return Zero, nil
	}

	return Mul(d, 1/scalar)
}

/*
ratio unit levels, finest first.
*/
const (
	levelPlanck = iota
	levelYocto
	levelNano
	levelSecond
	levelYear
	levelAeon
	levelCount
)

/*
totalAtLevel returns the whole count of the level unit spanned by the
magnitude of d, as an unbounded integer.
*/
func (r Duration) totalAtLevel(level int) *big.Int {
	t := r.totalYears()

	if level == levelAeon {
		return bigOrZero(cloneBig(r.aeons))
	}
	if level == levelYear {
		return t
	}

	t.Mul(t, new(big.Int).SetUint64(NanosecondsPerYear))
	t.Add(t, new(big.Int).SetUint64(r.nanos))
	if level == levelNano {
		return t
	}
	if level == levelSecond {
		return t.Quo(t, new(big.Int).SetUint64(NanosecondsPerSecond))
	}

	t.Mul(t, new(big.Int).SetUint64(YoctosecondsPerNanosecond))
	t.Add(t, new(big.Int).SetUint64(r.yoctos))
	if level == levelYocto {
		return t
	}

	t.Mul(t, PlanckTimePerYoctosecond)
	t.Add(t, bigOrZero(r.planck))
	return t
}

func bigToFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

/*
Ratio returns the scalar quotient a / b.

Degenerate dispositions are sentinel results, never failures: zero
over zero is NaN; zero over non-zero is 0; a perpetual dividend or a
zero divisor yields signed infinity; a finite dividend over a
perpetual divisor yields 0.

Otherwise the ratio is attempted at successively coarser common
units -- Planck time, yoctoseconds, nanoseconds, seconds, years,
aeons -- stopping at the first level whose quotient is finite and
non-zero. Converting a multi-aeon magnitude straight to one scalar
would overflow, so the walk finds the coarsest unit at which both
operands are simultaneously representable and the quotient is
informative. If no level qualifies, the coarsest attempt is returned
even when zero or infinite: precision loss is an accepted trade-off
of this operation, never a fatal error.
*/
func Ratio(a, b Duration) float64 {
	aZero, bZero := a.IsZero(), b.IsZero()

	if aZero && bZero {
		return math.NaN()
	}
	if aZero {
		return 0
	}

	neg := a.negative != b.negative

	if a.perpetual || bZero {
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(+1)
	}
	if b.perpetual {
		return 0
	}

	var q float64
	for level := levelPlanck; level < levelCount; level++ {
		fa := bigToFloat(a.totalAtLevel(level))
		fb := bigToFloat(b.totalAtLevel(level))
		q = fa / fb
		if !math.IsInf(q, 0) && !math.IsNaN(q) && q != 0 {
			break
		}
	}

	if neg {
		q = -q
	}
	return q
}

/*
Mod returns sign(a) · (|a| - |b| · ⌊|a| / |b|⌋), composed from [Abs],
[Mul], [Ratio] and [Sub]. Degenerate divisors flow through the
composed sentinel rules; in particular a zero modulus of a zero
dividend reports the NaN quotient as an invalid-argument failure.
*/
func Mod(a, b Duration) (Duration, error) {
	q := math.Floor(Ratio(a.Abs(), b.Abs()))

	prod, err := Mul(b.Abs(), q)
	if err != nil {
		return Zero, err
	}

	out, err := Sub(a.Abs(), prod)
	if err != nil {
		return Zero, err
	}

	if a.Sign() < 0 {
		out = out.Negate()
	}
	return out, nil
}
