/*
Package aevum models absolute durations of time spanning cosmological
to sub-atomic scales -- from a single Planck-time quantum up to a
practically unbounded number of aeons (10⁹-year blocks) -- with exact
(non-floating-point) arithmetic, total ordering and a bidirectional
text format.

Values are immutable; every operation returns a new instance and may
be invoked concurrently without coordination.
*/
package aevum

/*
dur.go contains the layered fixed-radix representation of [Duration],
its canonicalization rules and its derived subunit projections.
*/

import (
	"math/big"
)

/*
Fixed radix constants of the duration chain. Day and year lengths are
fixed-length definitions (1 day = 86 400 s, 1 year = 31 557 600 s);
no calendar semantics are implied.
*/
const (
	YearsPerAeon uint64 = 1_000_000_000

	SecondsPerMinute uint64 = 60
	SecondsPerHour   uint64 = 3_600
	SecondsPerDay    uint64 = 86_400
	SecondsPerYear   uint64 = 31_557_600

	NanosecondsPerMicrosecond uint64 = 1_000
	NanosecondsPerMillisecond uint64 = 1_000_000
	NanosecondsPerSecond      uint64 = 1_000_000_000
	NanosecondsPerMinute      uint64 = 60_000_000_000
	NanosecondsPerHour        uint64 = 3_600_000_000_000
	NanosecondsPerDay         uint64 = 86_400_000_000_000
	NanosecondsPerYear        uint64 = 31_557_600_000_000_000

	YoctosecondsPerZeptosecond uint64 = 1_000
	YoctosecondsPerAttosecond  uint64 = 1_000_000
	YoctosecondsPerFemtosecond uint64 = 1_000_000_000
	YoctosecondsPerPicosecond  uint64 = 1_000_000_000_000
	YoctosecondsPerNanosecond  uint64 = 1_000_000_000_000_000
)

/*
PlanckTimePerYoctosecond is the number of whole Planck-time units per
yoctosecond, ⌊10²⁶ / 5 391 247⌋ with tP = 5.391247×10⁻⁴⁴ s. The value
exceeds the uint64 range, hence the planck-time field of [Duration]
is unbounded. Callers must not mutate this instance.
*/
var PlanckTimePerYoctosecond *big.Int

/*
maxAeonDigits bounds the decimal digit count of a computed aeon
magnitude. Results beyond the bound report an overflow failure
rather than allocating without limit.
*/
const maxAeonDigits = 4096

// conservative bit-length prefilter for maxAeonDigits
const maxAeonBitsFast = 13_606

func init() {
	PlanckTimePerYoctosecond, _ = new(big.Int).SetString("18548584399861479171", 10)
}

/*
Duration implements an exact absolute span of time as a sign plus
five radix-chained magnitude fields, most significant to least:
aeons (unbounded), years within the aeon, nanoseconds within the
year, yoctoseconds within the nanosecond and Planck-time units
within the yoctosecond.

The zero value of this type is the zero duration.
*/
type Duration struct {
	aeons     *big.Int // nil means zero
	years     uint64   // [0, YearsPerAeon)
	nanos     uint64   // [0, NanosecondsPerYear)
	yoctos    uint64   // [0, YoctosecondsPerNanosecond)
	planck    *big.Int // nil means zero; [0, PlanckTimePerYoctosecond)
	negative  bool
	perpetual bool
}

/*
Zero is the zero [Duration].
*/
var Zero Duration

/*
PerpetualDuration returns the [Duration] which denotes a positive
infinite span of time.
*/
func PerpetualDuration() Duration { return Duration{perpetual: true} }

/*
NegativePerpetualDuration returns the [Duration] which denotes a
negative infinite span of time.
*/
func NegativePerpetualDuration() Duration {
	return Duration{perpetual: true, negative: true}
}

/*
Components describes arbitrary -- possibly out-of-range or multi-unit
-- duration component inputs accepted by [NewDuration]. Every field
is folded into the canonical chain with full bottom-up carry
normalization.
*/
type Components struct {
	Negative bool

	Aeons        *big.Int
	Years        uint64
	Days         uint64
	Hours        uint64
	Minutes      uint64
	Seconds      uint64
	Milliseconds uint64
	Microseconds uint64
	Nanoseconds  uint64
	Picoseconds  uint64
	Femtoseconds uint64
	Attoseconds  uint64
	Zeptoseconds uint64
	Yoctoseconds uint64
	PlanckTime   *big.Int
}

/*
NewDuration returns an instance of [Duration] alongside an error
following full normalization of c. Overflow at every bounded field
carries into the next more significant field; aeon carries use
unbounded arithmetic subject only to the implementation digit cap.
*/
func NewDuration(c Components, constraints ...Constraint[Duration]) (Duration, error) {
	var acc accumulator

	acc.addBig(colAeon, c.Aeons)
	acc.addUint(colYear, c.Years)

	acc.addScaled(colNano, c.Days, NanosecondsPerDay)
	acc.addScaled(colNano, c.Hours, NanosecondsPerHour)
	acc.addScaled(colNano, c.Minutes, NanosecondsPerMinute)
	acc.addScaled(colNano, c.Seconds, NanosecondsPerSecond)
	acc.addScaled(colNano, c.Milliseconds, NanosecondsPerMillisecond)
	acc.addScaled(colNano, c.Microseconds, NanosecondsPerMicrosecond)
	acc.addUint(colNano, c.Nanoseconds)

	acc.addScaled(colYocto, c.Picoseconds, YoctosecondsPerPicosecond)
	acc.addScaled(colYocto, c.Femtoseconds, YoctosecondsPerFemtosecond)
	acc.addScaled(colYocto, c.Attoseconds, YoctosecondsPerAttosecond)
	acc.addScaled(colYocto, c.Zeptoseconds, YoctosecondsPerZeptosecond)
	acc.addUint(colYocto, c.Yoctoseconds)

	acc.addBig(colPlanck, c.PlanckTime)

	d, err := acc.normalize(c.Negative)
	if err == nil && len(constraints) > 0 {
		err = ConstraintGroup[Duration](constraints).Constrain(d)
	}
	if err != nil {
		d = Zero
	}

	return d, err
}

/*
fromCanonical stores fields already known to satisfy every radix
invariant, skipping renormalization. Callers relinquish ownership of
the big.Int arguments. This path must never receive out-of-range
fields.
*/
func fromCanonical(negative bool, aeons *big.Int, years, nanos, yoctos uint64, planck *big.Int) Duration {
	d := Duration{
		aeons:    aeons,
		years:    years,
		nanos:    nanos,
		yoctos:   yoctos,
		planck:   planck,
		negative: negative,
	}
	if d.aeons != nil && d.aeons.Sign() == 0 {
		d.aeons = nil
	}
	if d.planck != nil && d.planck.Sign() == 0 {
		d.planck = nil
	}
	if d.negative && d.magnitudeIsZero() {
		d.negative = false // -0 normalizes to +0
	}
	return d
}

/*
column identifies one field of the radix chain, most significant
first.
*/
type column int

const (
	colAeon column = iota
	colYear
	colNano
	colYocto
	colPlanck
)

/*
accumulator gathers unbounded per-column sums prior to bottom-up
normalization. All fields are nil until touched.
*/
type accumulator struct {
	cols [5]*big.Int
}

func (r *accumulator) slot(col column) *big.Int {
	if r.cols[col] == nil {
		r.cols[col] = newBigInt(0)
	}
	return r.cols[col]
}

func (r *accumulator) addBig(col column, v *big.Int) {
	if v == nil || v.Sign() == 0 {
		return
	}
	s := r.slot(col)
	s.Add(s, v)
}

func (r *accumulator) addUint(col column, v uint64) {
	if v == 0 {
		return
	}
	s := r.slot(col)
	s.Add(s, new(big.Int).SetUint64(v))
}

/*
addScaled folds v units of factor base-column quanta into col.
*/
func (r *accumulator) addScaled(col column, v, factor uint64) {
	if v == 0 {
		return
	}
	p := new(big.Int).SetUint64(v)
	p.Mul(p, new(big.Int).SetUint64(factor))
	s := r.slot(col)
	s.Add(s, p)
}

/*
normalize performs the bottom-up carry pass (Planck → yocto → nano →
year → aeon) and returns the canonical [Duration].
*/
func (r *accumulator) normalize(negative bool) (Duration, error) {
	carry := new(big.Int)

	planck := bigOrZero(r.cols[colPlanck])
	if planck.Cmp(PlanckTimePerYoctosecond) >= 0 {
		carry.DivMod(planck, PlanckTimePerYoctosecond, planck)
		r.addBig(colYocto, carry)
	}

	yoctos, err := r.reduceU64(colYocto, colNano, YoctosecondsPerNanosecond)
	if err != nil {
		return Zero, err
	}
	nanos, err := r.reduceU64(colNano, colYear, NanosecondsPerYear)
	if err != nil {
		return Zero, err
	}
	years, err := r.reduceU64(colYear, colAeon, YearsPerAeon)
	if err != nil {
		return Zero, err
	}

	aeons := r.cols[colAeon]
	if err = checkAeonMagnitude(aeons); err != nil {
		return Zero, err
	}

	return fromCanonical(negative, cloneBig(aeons), years, nanos, yoctos, cloneBig(planck)), nil
}

/*
reduceU64 divides col by radix, carries the quotient into parent and
returns the (now in-range) remainder as uint64.
*/
func (r *accumulator) reduceU64(col, parent column, radix uint64) (uint64, error) {
	v := r.cols[col]
	if v == nil {
		return 0, nil
	}
	if v.Sign() < 0 {
		// accumulators only ever receive non-negative magnitudes
		return 0, argumentErrorf("negative magnitude in normalization")
	}
	rad := new(big.Int).SetUint64(radix)
	if v.Cmp(rad) >= 0 {
		q := new(big.Int)
		q.DivMod(v, rad, v)
		r.addBig(parent, q)
	}
	return v.Uint64(), nil
}

func checkAeonMagnitude(a *big.Int) (err error) {
	if a != nil && a.BitLen() > maxAeonBitsFast {
		if len(a.String()) > maxAeonDigits {
			err = errorAeonDigits
		}
	}
	return
}

/*
IsZero returns a Boolean value indicative of the receiver being the
zero duration: not perpetual, with every magnitude field zero.
*/
func (r Duration) IsZero() bool {
	return !r.perpetual && r.magnitudeIsZero()
}

func (r Duration) magnitudeIsZero() bool {
	return r.aeons == nil && r.years == 0 && r.nanos == 0 &&
		r.yoctos == 0 && r.planck == nil
}

/*
IsPerpetual returns a Boolean value indicative of the receiver
denoting an infinite span of time.
*/
func (r Duration) IsPerpetual() bool { return r.perpetual }

/*
Sign returns -1, 0 or +1. The zero duration reports 0 regardless of
how it was produced.
*/
func (r Duration) Sign() int {
	if r.IsZero() {
		return 0
	}
	if r.negative {
		return -1
	}
	return +1
}

/*
Aeons returns the whole-aeon field as an owned unbounded magnitude.
*/
func (r Duration) Aeons() *big.Int { return bigOrZero(cloneBig(r.aeons)) }

/*
Years returns the year field, i.e. whole years within the current
aeon.
*/
func (r Duration) Years() uint64 { return r.years }

/*
TotalNanoseconds returns the nanosecond field, i.e. nanoseconds
within the current year.
*/
func (r Duration) TotalNanoseconds() uint64 { return r.nanos }

/*
TotalYoctoseconds returns the yoctosecond field, i.e. yoctoseconds
within the current nanosecond.
*/
func (r Duration) TotalYoctoseconds() uint64 { return r.yoctos }

/*
PlanckTime returns the Planck-time field as an owned unbounded
magnitude, i.e. Planck-time units within the current yoctosecond.
*/
func (r Duration) PlanckTime() *big.Int { return bigOrZero(cloneBig(r.planck)) }

/*
Derived subunit projections. Each is a pure read-only view computed
against the two 64-bit total fields; none is stored.
*/

// Days returns whole days within the current year.
func (r Duration) Days() uint64 { return r.nanos / NanosecondsPerDay }

// Hours returns whole hours within the current day.
func (r Duration) Hours() uint64 { return r.nanos % NanosecondsPerDay / NanosecondsPerHour }

// Minutes returns whole minutes within the current hour.
func (r Duration) Minutes() uint64 { return r.nanos % NanosecondsPerHour / NanosecondsPerMinute }

// Seconds returns whole seconds within the current minute.
func (r Duration) Seconds() uint64 { return r.nanos % NanosecondsPerMinute / NanosecondsPerSecond }

// Milliseconds returns whole milliseconds within the current second.
func (r Duration) Milliseconds() uint64 {
	return r.nanos % NanosecondsPerSecond / NanosecondsPerMillisecond
}

// Microseconds returns whole microseconds within the current millisecond.
func (r Duration) Microseconds() uint64 {
	return r.nanos % NanosecondsPerMillisecond / NanosecondsPerMicrosecond
}

// Nanoseconds returns the nanosecond remainder within the current microsecond.
func (r Duration) Nanoseconds() uint64 { return r.nanos % NanosecondsPerMicrosecond }

// Picoseconds returns whole picoseconds within the current nanosecond.
func (r Duration) Picoseconds() uint64 { return r.yoctos / YoctosecondsPerPicosecond }

// Femtoseconds returns whole femtoseconds within the current picosecond.
func (r Duration) Femtoseconds() uint64 {
	return r.yoctos % YoctosecondsPerPicosecond / YoctosecondsPerFemtosecond
}

// Attoseconds returns whole attoseconds within the current femtosecond.
func (r Duration) Attoseconds() uint64 {
	return r.yoctos % YoctosecondsPerFemtosecond / YoctosecondsPerAttosecond
}

// Zeptoseconds returns whole zeptoseconds within the current attosecond.
func (r Duration) Zeptoseconds() uint64 {
	return r.yoctos % YoctosecondsPerAttosecond / YoctosecondsPerZeptosecond
}

// Yoctoseconds returns the yoctosecond remainder within the current zeptosecond.
func (r Duration) Yoctoseconds() uint64 { return r.yoctos % YoctosecondsPerZeptosecond }

/*
totalYears returns aeons·10⁹ + years as an unbounded magnitude,
dropping the sub-year remainder.
*/
func (r Duration) totalYears() *big.Int {
	t := new(big.Int).SetUint64(YearsPerAeon)
	t.Mul(t, bigOrZero(r.aeons))
	t.Add(t, new(big.Int).SetUint64(r.years))
	return t
}

/*
String returns the general long format of the receiver, per the "G"
standard pattern and the invariant culture.
*/
func (r Duration) String() string {
	s, _ := r.Format("G")
	return s
}
