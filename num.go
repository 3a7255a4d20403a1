package aevum

/*
num.go contains the numeric factory surface: constructors from
common time units, each accepting unbounded, fixed-precision decimal
and binary floating-point numeric forms alongside the native integer
kinds, all normalizing through the general construction path.
*/

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

/*
foldInteger folds v units of factor col-quanta into the accumulator,
reporting whether the input was negative.
*/
func foldInteger[T constraints.Integer](acc *accumulator, v T, col column, factor uint64) bool {
	neg := v < 0
	var u uint64
	if neg {
		u = uint64(-int64(v))
	} else {
		u = uint64(v)
	}
	acc.addScaled(col, u, factor)
	return neg
}

/*
fromNumeric marshals x -- any supported numeric form -- as a count
of factor col-quanta.
*/
func fromNumeric(x any, col column, factor uint64, constraints ...Constraint[Duration]) (Duration, error) {
	var acc accumulator
	var neg bool

	switch v := x.(type) {
	case int:
		neg = foldInteger(&acc, v, col, factor)
	case int8:
		neg = foldInteger(&acc, v, col, factor)
	case int16:
		neg = foldInteger(&acc, v, col, factor)
	case int32:
		neg = foldInteger(&acc, v, col, factor)
	case int64:
		neg = foldInteger(&acc, v, col, factor)
	case uint:
		neg = foldInteger(&acc, v, col, factor)
	case uint8:
		neg = foldInteger(&acc, v, col, factor)
	case uint16:
		neg = foldInteger(&acc, v, col, factor)
	case uint32:
		neg = foldInteger(&acc, v, col, factor)
	case uint64:
		neg = foldInteger(&acc, v, col, factor)
	case *big.Int:
		if v == nil {
			break
		}
		neg = v.Sign() < 0
		q := new(big.Int).Abs(v)
		q.Mul(q, new(big.Int).SetUint64(factor))
		acc.addBig(col, q)
	case decimal.Decimal:
		neg = v.IsNegative()
		acc.foldDecimal(v.Abs().Mul(decimal.NewFromInt(int64(factor))), col)
	case float32:
		return fromNumeric(float64(v), col, factor, constraints...)
	case float64:
		if math.IsNaN(v) {
			return Zero, errorNaNScalar
		}
		if math.IsInf(v, 0) {
			return Duration{perpetual: true, negative: math.Signbit(v)}, nil
		}
		neg = math.Signbit(v)
		if err := acc.foldFloat(col, math.Abs(v)*float64(factor)); err != nil {
			return Zero, err
		}
	case string:
		dec, err := decimal.NewFromString(v)
		if err != nil {
			return Zero, argumentErrorf("invalid numeric string: ", v)
		}
		return fromNumeric(dec, col, factor, constraints...)
	case Duration:
		return v, nil
	default:
		return Zero, errorBadInputType
	}

	d, err := acc.normalize(neg)
	if err == nil && len(constraints) > 0 {
		err = ConstraintGroup[Duration](constraints).Constrain(d)
	}
	if err != nil {
		d = Zero
	}
	return d, err
}

/*
FromAeons returns an instance of [Duration] spanning x aeons
(10⁹-year blocks).

Input types may be any native integer kind, *[big.Int],
[decimal.Decimal], float32/float64, a numeric string, or [Duration].
*/
func FromAeons(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colAeon, 1, constraints...)
}

/*
FromYears returns an instance of [Duration] spanning x fixed-length
years (31 557 600 s each). See [FromAeons] for accepted input types.
*/
func FromYears(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colYear, 1, constraints...)
}

/*
FromDays returns an instance of [Duration] spanning x fixed-length
days (86 400 s each). See [FromAeons] for accepted input types.
*/
func FromDays(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colNano, NanosecondsPerDay, constraints...)
}

/*
FromHours returns an instance of [Duration] spanning x hours. See
[FromAeons] for accepted input types.
*/
func FromHours(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colNano, NanosecondsPerHour, constraints...)
}

/*
FromMinutes returns an instance of [Duration] spanning x minutes.
See [FromAeons] for accepted input types.
*/
func FromMinutes(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colNano, NanosecondsPerMinute, constraints...)
}

/*
FromSeconds returns an instance of [Duration] spanning x seconds.
See [FromAeons] for accepted input types.
*/
func FromSeconds(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colNano, NanosecondsPerSecond, constraints...)
}

/*
FromMilliseconds returns an instance of [Duration] spanning x
milliseconds. See [FromAeons] for accepted input types.
*/
func FromMilliseconds(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colNano, NanosecondsPerMillisecond, constraints...)
}

/*
FromMicroseconds returns an instance of [Duration] spanning x
microseconds. See [FromAeons] for accepted input types.
*/
func FromMicroseconds(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colNano, NanosecondsPerMicrosecond, constraints...)
}

/*
FromNanoseconds returns an instance of [Duration] spanning x
nanoseconds. See [FromAeons] for accepted input types.
*/
func FromNanoseconds(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colNano, 1, constraints...)
}

/*
FromPicoseconds returns an instance of [Duration] spanning x
picoseconds. See [FromAeons] for accepted input types.
*/
func FromPicoseconds(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colYocto, YoctosecondsPerPicosecond, constraints...)
}

/*
FromFemtoseconds returns an instance of [Duration] spanning x
femtoseconds. See [FromAeons] for accepted input types.
*/
func FromFemtoseconds(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colYocto, YoctosecondsPerFemtosecond, constraints...)
}

/*
FromAttoseconds returns an instance of [Duration] spanning x
attoseconds. See [FromAeons] for accepted input types.
*/
func FromAttoseconds(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colYocto, YoctosecondsPerAttosecond, constraints...)
}

/*
FromZeptoseconds returns an instance of [Duration] spanning x
zeptoseconds. See [FromAeons] for accepted input types.
*/
func FromZeptoseconds(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colYocto, YoctosecondsPerZeptosecond, constraints...)
}

/*
FromYoctoseconds returns an instance of [Duration] spanning x
yoctoseconds. See [FromAeons] for accepted input types.
*/
func FromYoctoseconds(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colYocto, 1, constraints...)
}

/*
FromPlanckTime returns an instance of [Duration] spanning x
Planck-time units. See [FromAeons] for accepted input types.
*/
func FromPlanckTime(x any, constraints ...Constraint[Duration]) (Duration, error) {
	return fromNumeric(x, colPlanck, 1, constraints...)
}
