package aevum

/*
rel.go contains [RelativeDuration], a thin wrapper which tags a
value as either a literal absolute duration or a decimal proportion
of a variable-length period (day or year). All arithmetic and most
formatting delegate to [Duration].
*/

import (
	"github.com/shopspring/decimal"
)

/*
RelativeKind enumerates the disposition of a [RelativeDuration].
*/
type RelativeKind int

const (
	Absolute         RelativeKind = iota // wraps a literal Duration
	ProportionOfDay                      // decimal proportion of a day
	ProportionOfYear                     // decimal proportion of a year
)

/*
String returns the string representation of the receiver instance.
*/
func (r RelativeKind) String() string {
	var s string
	switch r {
	case Absolute:
		s = `Absolute`
	case ProportionOfDay:
		s = `ProportionOfDay`
	case ProportionOfYear:
		s = `ProportionOfYear`
	}

	return s
}

/*
RelativeDuration holds either a literal [Duration] (when the kind is
[Absolute]) or a decimal proportion of a day or year.
*/
type RelativeDuration struct {
	kind RelativeKind
	dur  Duration
	prop decimal.Decimal
}

/*
NewAbsolute returns a [RelativeDuration] wrapping d literally.
*/
func NewAbsolute(d Duration) RelativeDuration {
	return RelativeDuration{kind: Absolute, dur: d}
}

/*
NewProportionOfDay returns a [RelativeDuration] denoting p of a day.
*/
func NewProportionOfDay(p decimal.Decimal) RelativeDuration {
	return RelativeDuration{kind: ProportionOfDay, prop: p}
}

/*
NewProportionOfYear returns a [RelativeDuration] denoting p of a
year.
*/
func NewProportionOfYear(p decimal.Decimal) RelativeDuration {
	return RelativeDuration{kind: ProportionOfYear, prop: p}
}

/*
Kind returns the [RelativeKind] of the receiver instance.
*/
func (r RelativeDuration) Kind() RelativeKind { return r.kind }

/*
Duration returns the wrapped [Duration] and true when the receiver
is [Absolute].
*/
func (r RelativeDuration) Duration() (Duration, bool) {
	return r.dur, r.kind == Absolute
}

/*
Proportion returns the wrapped decimal proportion and true when the
receiver is not [Absolute].
*/
func (r RelativeDuration) Proportion() (decimal.Decimal, bool) {
	return r.prop, r.kind != Absolute
}

/*
Resolve reduces the receiver to a literal [Duration] using the fixed
day and year definitions (86 400 s and 31 557 600 s). An [Absolute]
receiver resolves to its wrapped value unchanged.
*/
func (r RelativeDuration) Resolve() (Duration, error) {
	switch r.kind {
	case ProportionOfDay:
		return FromDays(r.prop)
	case ProportionOfYear:
		return FromYears(r.prop)
	}
	return r.dur, nil
}

/*
Eq returns a bool indicative of an equality match between the
receiver instance and x. Two [Absolute] instances reduce to
[Duration] equality; proportional instances match on kind and
proportion.
*/
func (r RelativeDuration) Eq(x RelativeDuration) bool {
	if r.kind != x.kind {
		return false
	}
	if r.kind == Absolute {
		return r.dur.Eq(x.dur)
	}
	return r.prop.Equal(x.prop)
}

/*
Format renders the receiver under pattern, delegating to
[Duration.Format] in the [Absolute] case. Proportional values render
as the proportion followed by their period suffix, regardless of
pattern.
*/
func (r RelativeDuration) Format(pattern string, culture ...*Culture) (string, error) {
	if r.kind == Absolute {
		return r.dur.Format(pattern, culture...)
	}
	return r.String(), nil
}

/*
String returns the string representation of the receiver instance.
*/
func (r RelativeDuration) String() string {
	switch r.kind {
	case ProportionOfDay:
		return r.prop.String() + " of day"
	case ProportionOfYear:
		return r.prop.String() + " of year"
	}
	return r.dur.String()
}
