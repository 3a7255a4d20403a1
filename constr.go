package aevum

/*
constr.go contains constraint and constraint group components which
serve to implement value constraints honored by the constructors and
factory functions of this package.
*/

import (
	"golang.org/x/exp/constraints"
)

/*
Constraint implements a generic closure function signature meant to
enforce the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice
instances are added (and, thus, evaluated) in the order in which they
are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint]
instances against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
NonNegativeConstraint is a [Constraint] which rejects negative
[Duration] values.
*/
func NonNegativeConstraint(d Duration) (err error) {
	if d.Sign() < 0 {
		err = argumentErrorf("duration must not be negative")
	}
	return
}

/*
FiniteConstraint is a [Constraint] which rejects perpetual [Duration]
values.
*/
func FiniteConstraint(d Duration) (err error) {
	if d.IsPerpetual() {
		err = argumentErrorf("duration must be finite")
	}
	return
}

/*
RangeConstraint returns a [Constraint] which requires values to fall
within [min,max] inclusive, per [Compare] ordering.
*/
func RangeConstraint(min, max Duration) Constraint[Duration] {
	return func(d Duration) (err error) {
		if Compare(d, min) < 0 || Compare(d, max) > 0 {
			err = argumentErrorf("duration out of constrained range")
		}
		return
	}
}

func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
