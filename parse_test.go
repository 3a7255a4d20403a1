package aevum

import (
	"math/big"
	"testing"
)

func TestParse_roundTripProperty(t *testing.T) {
	aeonHeavy, err := NewDuration(Components{
		Aeons:      new(big.Int).Exp(newBigInt(10), newBigInt(40), nil),
		Years:      999_999_999,
		Seconds:    59,
		PlanckTime: newBigInt(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, d := range []Duration{
		Zero,
		specimen(t),
		specimen(t).Negate(),
		mustSeconds(t, 1),
		aeonHeavy,
		aeonHeavy.Negate(),
		PerpetualDuration(),
		NegativePerpetualDuration(),
	} {
		s, err := d.Format("O")
		if err != nil {
			t.Fatalf("Format(O) of %s failed: %v", d, err)
		}

		back, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if back.Ne(d) {
			t.Errorf("round trip of %s: got %s", d, back)
		}

		back, err = ParseExact(s, "O")
		if err != nil {
			t.Fatalf("ParseExact(%q, O) failed: %v", s, err)
		}
		if back.Ne(d) {
			t.Errorf("exact round trip of %s: got %s", d, back)
		}
	}
}

func TestParse_roundTripRejections(t *testing.T) {
	for _, s := range []string{
		"0-0-0-0",           // too few segments
		"0-0-0-0-0-0",       // too many segments
		"0-1000000000-0-0-0", // year field at radix
		"0-0-31557600000000000-0-0",
		"0-0-0-1000000000000000-0",
		"0-0-0-0-18548584399861479171", // planck field at radix
		"x-0-0-0-0",
	} {
		if _, err := ParseExact(s, "O"); err == nil {
			t.Errorf("ParseExact(%q, O): expected failure", s)
		}
	}
}

func TestParseExact_standardPatterns(t *testing.T) {
	want, err := NewDuration(Components{Years: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tc := range []struct {
		s, pattern string
	}{
		{"1 2 03:04:05", "G"},
		{"1 2 3:04:05", "g"},
		{"-1 2 03:04:05", "G"},
	} {
		got, err := ParseExact(tc.s, tc.pattern)
		if err != nil {
			t.Fatalf("ParseExact(%q, %q) failed: %v", tc.s, tc.pattern, err)
		}
		w := want
		if tc.s[0] == '-' {
			w = want.Negate()
		}
		if got.Ne(w) {
			t.Errorf("ParseExact(%q, %q): want %s, got %s", tc.s, tc.pattern, w, got)
		}
	}

	got, err := ParseExact("03:04", "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hm, _ := NewDuration(Components{Hours: 3, Minutes: 4})
	if got.Ne(hm) {
		t.Errorf("ParseExact t: want %s, got %s", hm, got)
	}
}

func TestParseExact_fraction(t *testing.T) {
	got, err := ParseExact("1 2 03:04:05.006007008", "F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := NewDuration(Components{
		Years: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5,
		Milliseconds: 6, Microseconds: 7, Nanoseconds: 8,
	})
	if got.Ne(want) {
		t.Errorf("fraction parse: want %s, got %s", want, got)
	}

	// the full 24-digit fraction reaches the yoctosecond field
	got, err = ParseExact("05.006007008009010011012013", "ss'.'ffffffffffffffffffffffff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ = NewDuration(Components{
		Seconds: 5, Milliseconds: 6, Microseconds: 7, Nanoseconds: 8,
		Picoseconds: 9, Femtoseconds: 10, Attoseconds: 11,
		Zeptoseconds: 12, Yoctoseconds: 13,
	})
	if got.Ne(want) {
		t.Errorf("deep fraction parse: want %s, got %s", want, got)
	}

	// digits beyond the positional maximum must be zero
	if _, err = ParseExact("05.0000000000000000000000001", "ss'.'fffffffffffffffffffffffff"); err == nil {
		t.Error("expected failure for a non-zero digit beyond positional precision")
	}
}

func TestParse_infinity(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want Duration
	}{
		{"∞", PerpetualDuration()},
		{"-∞", NegativePerpetualDuration()},
		{"  ∞  ", PerpetualDuration()},
	} {
		got, err := Parse(tc.s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.s, err)
		}
		if got.Ne(tc.want) {
			t.Errorf("Parse(%q): want %s, got %s", tc.s, tc.want, got)
		}
	}
}

func TestParse_emptyAndGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "\t"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected failure", s)
		}
		if _, err := ParseExact(s, "G"); err == nil {
			t.Errorf("ParseExact(%q, G): expected failure", s)
		}
	}

	if _, ok := TryParse("not a duration at all"); ok {
		t.Error("TryParse of garbage must report false")
	}
	if _, ok := TryParseExact("1 2 03:04:05x", "G"); ok {
		t.Error("TryParseExact with trailing garbage must report false")
	}

	d, ok := TryParse("03:04")
	if !ok {
		t.Fatal("TryParse(03:04) must match the short time pattern")
	}
	hm, _ := NewDuration(Components{Hours: 3, Minutes: 4})
	if d.Ne(hm) {
		t.Errorf("TryParse(03:04): want %s, got %s", hm, d)
	}
}

func TestParseExtensible(t *testing.T) {
	d := specimen(t)
	xs, err := d.Format("X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ParseExact(xs, "X")
	if err != nil {
		t.Fatalf("ParseExact(%q, X) failed: %v", xs, err)
	}
	if got.Ne(d) {
		t.Errorf("extensible round trip: want %s, got %s", d, got)
	}

	for _, tc := range []struct {
		s    string
		want Components
	}{
		{"0", Components{}},
		{"-0", Components{}},
		{"1.5 s", Components{Seconds: 1, Milliseconds: 500}},
		{"1,000 s", Components{Seconds: 1000}},
		{"1e3 s", Components{Seconds: 1000}},
		{"2e-3 s", Components{Milliseconds: 2}},
		{"2 h 30 min", Components{Hours: 2, Minutes: 30}},
		{"-3 s", Components{Negative: true, Seconds: 3}},
		{"0.5 tP", Components{PlanckTime: newBigInt(1)}}, // rounds half-up
		{"1 a", Components{Aeons: newBigInt(1)}},
	} {
		want, err := NewDuration(tc.want)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := ParseExact(tc.s, "X")
		if err != nil {
			t.Fatalf("ParseExact(%q, X) failed: %v", tc.s, err)
		}
		if got.Ne(want) {
			t.Errorf("ParseExact(%q, X): want %s, got %s", tc.s, want, got)
		}
	}

	for _, s := range []string{
		"5 parsecs", // unresolved unit symbol
		"s 5",       // symbol precedes digits
		"5",         // missing unit symbol
		"1e s",      // malformed exponent
	} {
		if _, err := ParseExact(s, "X"); err == nil {
			t.Errorf("ParseExact(%q, X): expected failure", s)
		}
	}
}

func TestParseExact_singleLetterFallback(t *testing.T) {
	// unrecognized single letters fall back to the general pattern on
	// both the writer and the reader, so the shapes stay symmetric
	d := specimen(t)

	for _, pattern := range []string{"y", "Q", ""} {
		formatted, err := d.Format(pattern)
		if err != nil {
			t.Fatalf("Format(%q): unexpected error: %v", pattern, err)
		}
		if formatted != "1 2 03:04:05" {
			t.Errorf("Format(%q): want the general shape, got %q", pattern, formatted)
		}

		got, err := ParseExact("1 2 03:04:05", pattern)
		if err != nil {
			t.Fatalf("ParseExact(G-shaped, %q) failed: %v", pattern, err)
		}
		want, _ := NewDuration(Components{Years: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5})
		if got.Ne(want) {
			t.Errorf("ParseExact(G-shaped, %q): want %s, got %s", pattern, want, got)
		}

		// a bare year count is not the general shape
		if _, err = ParseExact("7", pattern); err == nil {
			t.Errorf("ParseExact(%q, %q): expected failure", "7", pattern)
		}
	}
}

func TestParseExtensible_multiByteSeparators(t *testing.T) {
	cu := &Culture{
		PositiveInfinity: "∞",
		NegativeInfinity: "-∞",
		DecimalSeparator: ',',
		GroupSeparator:   '\u00a0', // no-break space grouping
	}

	got, err := ParseExact("1\u00a0000 s", "X", cu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := NewDuration(Components{Seconds: 1000})
	if got.Ne(want) {
		t.Errorf("no-break space grouping: want %s, got %s", want, got)
	}

	got, err = ParseExact("1\u00a0000,5 s", "X", cu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ = NewDuration(Components{Seconds: 1000, Milliseconds: 500})
	if got.Ne(want) {
		t.Errorf("grouping with decimal tail: want %s, got %s", want, got)
	}
}

func TestParse_culture(t *testing.T) {
	cu := &Culture{
		PositiveInfinity: "forever",
		NegativeInfinity: "never",
		DecimalSeparator: ',',
		GroupSeparator:   '.',
	}

	got, err := Parse("forever", cu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Ne(PerpetualDuration()) {
		t.Errorf("culture infinity parse: got %s", got)
	}

	got, err = ParseExact("1,5 s", "X", cu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := NewDuration(Components{Seconds: 1, Milliseconds: 500})
	if got.Ne(want) {
		t.Errorf("culture decimal separator: want %s, got %s", want, got)
	}

	got, err = ParseExact("1.000 s", "X", cu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ = NewDuration(Components{Seconds: 1000})
	if got.Ne(want) {
		t.Errorf("culture group separator: want %s, got %s", want, got)
	}
}
