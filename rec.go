package aevum

/*
rec.go contains the structured serialization surface: the canonical
field record consumed by external encoders, its CBOR codec, and the
text/JSON adapters locked to the round-trip pattern.
*/

import (
	"math/big"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

/*
Record exposes the canonical fields of a [Duration] verbatim for
structured encoders. A nil unbounded field means zero; the bounded
fields obey the radix invariants of the chain. Decoding passes back
through bounds validation before the trusted construction path.
*/
type Record struct {
	Negative     bool     `cbor:"negative,omitempty" json:"negative,omitempty"`
	Perpetual    bool     `cbor:"perpetual,omitempty" json:"perpetual,omitempty"`
	Aeons        *big.Int `cbor:"aeons,omitempty" json:"aeons,omitempty"`
	Years        uint64   `cbor:"years,omitempty" json:"years,omitempty"`
	Nanoseconds  uint64   `cbor:"nanoseconds,omitempty" json:"nanoseconds,omitempty"`
	Yoctoseconds uint64   `cbor:"yoctoseconds,omitempty" json:"yoctoseconds,omitempty"`
	PlanckTime   *big.Int `cbor:"planckTime,omitempty" json:"planckTime,omitempty"`
}

/*
Record returns the canonical field record of the receiver instance.
The unbounded fields are owned copies.
*/
func (r Duration) Record() Record {
	return Record{
		Negative:     r.negative,
		Perpetual:    r.perpetual,
		Aeons:        cloneBig(r.aeons),
		Years:        r.years,
		Nanoseconds:  r.nanos,
		Yoctoseconds: r.yoctos,
		PlanckTime:   cloneBig(r.planck),
	}
}

/*
NewDurationFromRecord reconstructs an instance of [Duration] from
rec, validating every radix invariant before committing the fields
through the trusted construction path.
*/
func NewDurationFromRecord(rec Record) (Duration, error) {
	if rec.Perpetual {
		if rec.Aeons != nil && rec.Aeons.Sign() != 0 ||
			rec.Years != 0 || rec.Nanoseconds != 0 || rec.Yoctoseconds != 0 ||
			rec.PlanckTime != nil && rec.PlanckTime.Sign() != 0 {
			return Zero, argumentErrorf("perpetual record with non-zero magnitude fields")
		}
		return Duration{perpetual: true, negative: rec.Negative}, nil
	}

	if rec.Aeons != nil && rec.Aeons.Sign() < 0 {
		return Zero, argumentErrorf("negative aeon magnitude in record")
	}
	if err := checkAeonMagnitude(rec.Aeons); err != nil {
		return Zero, err
	}
	if rec.Years >= YearsPerAeon {
		return Zero, argumentErrorf("year field out of radix range")
	}
	if rec.Nanoseconds >= NanosecondsPerYear {
		return Zero, argumentErrorf("nanosecond field out of radix range")
	}
	if rec.Yoctoseconds >= YoctosecondsPerNanosecond {
		return Zero, argumentErrorf("yoctosecond field out of radix range")
	}
	if rec.PlanckTime != nil {
		if rec.PlanckTime.Sign() < 0 ||
			rec.PlanckTime.Cmp(PlanckTimePerYoctosecond) >= 0 {
			return Zero, argumentErrorf("planck-time field out of radix range")
		}
	}

	return fromCanonical(rec.Negative, cloneBig(rec.Aeons), rec.Years,
		rec.Nanoseconds, rec.Yoctoseconds, cloneBig(rec.PlanckTime)), nil
}

/*
MarshalCBOR encodes the canonical field record of the receiver.
*/
func (r Duration) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(r.Record())
}

/*
UnmarshalCBOR decodes a canonical field record, rejecting any field
which violates the radix invariants.
*/
func (r *Duration) UnmarshalCBOR(b []byte) error {
	var rec Record
	if err := cbor.Unmarshal(b, &rec); err != nil {
		return err
	}

	d, err := NewDurationFromRecord(rec)
	if err == nil {
		*r = d
	}
	return err
}

/*
MarshalText encodes the receiver under the round-trip pattern
exclusively.
*/
func (r Duration) MarshalText() ([]byte, error) {
	s, err := r.Format("O")
	return []byte(s), err
}

/*
UnmarshalText decodes round-trip text exclusively; any other textual
shape is rejected.
*/
func (r *Duration) UnmarshalText(b []byte) error {
	d, err := ParseExact(string(b), "O")
	if err == nil {
		*r = d
	}
	return err
}

/*
MarshalJSON encodes the receiver as a JSON string in the round-trip
pattern.
*/
func (r Duration) MarshalJSON() ([]byte, error) {
	s, err := r.Format("O")
	if err != nil {
		return nil, err
	}
	return []byte(strconv.Quote(s)), nil
}

/*
UnmarshalJSON decodes a JSON string in the round-trip pattern; any
other JSON shape is rejected.
*/
func (r *Duration) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return parseErrorf("duration JSON value must be a string")
	}
	return r.UnmarshalText([]byte(s))
}
