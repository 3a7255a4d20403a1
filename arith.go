package aevum

/*
arith.go contains the exact arithmetic operations of [Duration]:
negation, addition, subtraction, comparison and equality, with
carry/borrow propagation across the radix chain and explicit
perpetual-value handling.
*/

import (
	"math/big"
)

/*
Negate returns the receiver with its sign flipped. Perpetual values
and magnitude fields pass through unchanged; the zero duration is its
own negation.
*/
func (r Duration) Negate() Duration {
	if r.IsZero() {
		return r
	}
	r.negative = !r.negative
	return r
}

/*
Abs returns the non-negative rendition of the receiver.
*/
func (r Duration) Abs() Duration {
	r.negative = false
	return r
}

/*
Add returns the exact sum a + b.

If either operand is perpetual the result is that perpetual value
when signs agree; two opposite-signed perpetual values cancel to
zero (a deliberate simplification, relied upon by subtraction and
comparison). An overflow failure is reported if the aeon magnitude
of the sum exceeds the implementation digit cap.
*/
func Add(a, b Duration) (Duration, error) {
	if a.perpetual || b.perpetual {
		switch {
		case a.perpetual && b.perpetual:
			if a.negative == b.negative {
				return a, nil
			}
			return Zero, nil
		case a.perpetual:
			return a, nil
		default:
			return b, nil
		}
	}

	if a.IsZero() {
		return b, nil
	}
	if b.IsZero() {
		return a, nil
	}

	if a.negative != b.negative {
		if a.negative {
			return Sub(b, a.Negate())
		}
		return Sub(a, b.Negate())
	}

	return addMagnitudes(a, b)
}

/*
addMagnitudes carry-propagates the five fields bottom-up for two
finite, same-signed, non-zero operands.
*/
func addMagnitudes(a, b Duration) (Duration, error) {
	var carry uint64

	planck := bigOrZero(cloneBig(a.planck))
	planck.Add(planck, bigOrZero(b.planck))
	if planck.Cmp(PlanckTimePerYoctosecond) >= 0 {
		planck.Sub(planck, PlanckTimePerYoctosecond)
		carry = 1
	}

	yoctos := a.yoctos + b.yoctos + carry
	carry = yoctos / YoctosecondsPerNanosecond
	yoctos %= YoctosecondsPerNanosecond

	nanos := a.nanos + b.nanos + carry
	carry = nanos / NanosecondsPerYear
	nanos %= NanosecondsPerYear

	years := a.years + b.years + carry
	carry = years / YearsPerAeon
	years %= YearsPerAeon

	aeons := bigOrZero(cloneBig(a.aeons))
	aeons.Add(aeons, bigOrZero(b.aeons))
	if carry != 0 {
		aeons.Add(aeons, new(big.Int).SetUint64(carry))
	}
	if err := checkAeonMagnitude(aeons); err != nil {
		return Zero, err
	}

	return fromCanonical(a.negative, aeons, years, nanos, yoctos, planck), nil
}

/*
Sub returns the exact difference a - b.

Perpetual, zero and sign dispositions are resolved explicitly before
the canonical borrow pass: both perpetual and same-signed cancels to
zero; both perpetual and opposite-signed yields a; a finite minuend
less a perpetual subtrahend yields the opposite-signed perpetual; a
negative subtrahend delegates to [Add]; a negative minuend negates
around [Add]; a smaller minuend recurses with the operands swapped
and the result negated.
*/
func Sub(a, b Duration) (Duration, error) {
	switch {
	case a.perpetual && b.perpetual:
		if a.negative == b.negative {
			return Zero, nil
		}
		return a, nil
	case a.perpetual:
		return a, nil
	case b.perpetual:
		return Duration{perpetual: true, negative: !b.negative}, nil
	}

	if b.IsZero() {
		return a, nil
	}
	if a.IsZero() {
		return b.Negate(), nil
	}

	if b.negative {
		return Add(a, b.Negate())
	}
	if a.negative {
		d, err := Add(a.Negate(), b)
		return d.Negate(), err
	}

	// both operands are now finite, non-zero and non-negative
	if magnitudeCompare(a, b) < 0 {
		d, err := Sub(b, a)
		return d.Negate(), err
	}

	return subMagnitudes(a, b), nil
}

/*
subMagnitudes computes a - b for canonical magnitudes with a ≥ b,
borrowing one unit from the next more significant field whenever an
intermediate difference is negative.
*/
func subMagnitudes(a, b Duration) Duration {
	var borrow uint64

	planck := bigOrZero(cloneBig(a.planck))
	planck.Sub(planck, bigOrZero(b.planck))
	if planck.Sign() < 0 {
		planck.Add(planck, PlanckTimePerYoctosecond)
		borrow = 1
	}

	yd := int64(a.yoctos) - int64(b.yoctos) - int64(borrow)
	borrow = 0
	if yd < 0 {
		yd += int64(YoctosecondsPerNanosecond)
		borrow = 1
	}

	nd := int64(a.nanos) - int64(b.nanos) - int64(borrow)
	borrow = 0
	if nd < 0 {
		nd += int64(NanosecondsPerYear)
		borrow = 1
	}

	ad := int64(a.years) - int64(b.years) - int64(borrow)
	borrow = 0
	if ad < 0 {
		ad += int64(YearsPerAeon)
		borrow = 1
	}

	aeons := bigOrZero(cloneBig(a.aeons))
	aeons.Sub(aeons, bigOrZero(b.aeons))
	if borrow != 0 {
		aeons.Sub(aeons, newBigInt(1))
	}

	return fromCanonical(false, aeons, uint64(ad), uint64(nd), uint64(yd), planck)
}

/*
magnitudeCompare orders the magnitude chains of a and b, ignoring
sign and perpetual state.
*/
func magnitudeCompare(a, b Duration) int {
	if c := cmpBig(a.aeons, b.aeons); c != 0 {
		return c
	}
	if a.years != b.years {
		return cmpU64(a.years, b.years)
	}
	if a.nanos != b.nanos {
		return cmpU64(a.nanos, b.nanos)
	}
	if a.yoctos != b.yoctos {
		return cmpU64(a.yoctos, b.yoctos)
	}
	return cmpBig(a.planck, b.planck)
}

func cmpU64(a, b uint64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

/*
Compare totally orders a and b, returning -1, 0 or +1. Perpetual
values order strictly outside all finite values; two perpetual
values of the same sign compare equal.
*/
func Compare(a, b Duration) int {
	if a.perpetual || b.perpetual {
		switch {
		case a.perpetual && b.perpetual:
			if a.negative == b.negative {
				return 0
			}
			if a.negative {
				return -1
			}
			return 1
		case a.perpetual:
			if a.negative {
				return -1
			}
			return 1
		default:
			if b.negative {
				return 1
			}
			return -1
		}
	}

	sa, sb := a.Sign(), b.Sign()
	if sa != sb {
		return cmpU64(uint64(sa+1), uint64(sb+1))
	}
	if sa == 0 {
		return 0
	}
	return magnitudeCompare(a, b) * sa
}

/*
Eq returns a bool indicative of an equality match between the
receiver instance and x. There is exactly one canonical rendition
per value, so component-wise equality suffices.
*/
func (r Duration) Eq(x Duration) bool {
	return r.perpetual == x.perpetual &&
		r.negative == x.negative &&
		r.years == x.years &&
		r.nanos == x.nanos &&
		r.yoctos == x.yoctos &&
		cmpBig(r.aeons, x.aeons) == 0 &&
		cmpBig(r.planck, x.planck) == 0
}

/*
Ne returns a bool indicative of a negative equality match between
the receiver instance and x.
*/
func (r Duration) Ne(x Duration) bool { return !r.Eq(x) }

/*
Lt returns a bool indicative of r being less than x.
*/
func (r Duration) Lt(x Duration) bool { return Compare(r, x) < 0 }

/*
Le returns a bool indicative of r being less than or equal to x.
*/
func (r Duration) Le(x Duration) bool { return Compare(r, x) <= 0 }

/*
Gt returns a bool indicative of r being greater than x.
*/
func (r Duration) Gt(x Duration) bool { return Compare(r, x) > 0 }

/*
Ge returns a bool indicative of r being greater than or equal to x.
*/
func (r Duration) Ge(x Duration) bool { return Compare(r, x) >= 0 }
