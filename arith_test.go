package aevum

import (
	"testing"
)

func mustSeconds(t *testing.T, x any) Duration {
	t.Helper()
	d, err := FromSeconds(x)
	if err != nil {
		t.Fatalf("FromSeconds(%v) failed: %v", x, err)
	}
	return d
}

func TestAdd_identities(t *testing.T) {
	d := specimen(t)

	sum, err := Add(d, Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Ne(d) {
		t.Errorf("d + 0: want %s, got %s", d, sum)
	}

	sum, err = Add(d, d.Negate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.IsZero() {
		t.Errorf("d + (-d): want 0, got %s", sum)
	}

	diff, err := Sub(d, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !diff.IsZero() {
		t.Errorf("d - d: want 0, got %s", diff)
	}
}

func TestAdd_commutativeAssociative(t *testing.T) {
	a := mustSeconds(t, 90061)
	b := specimen(t)
	c := mustSeconds(t, -7)

	ab, _ := Add(a, b)
	ba, _ := Add(b, a)
	if ab.Ne(ba) {
		t.Errorf("a+b != b+a: %s vs %s", ab, ba)
	}

	abc1, _ := Add(ab, c)
	bc, _ := Add(b, c)
	abc2, _ := Add(a, bc)
	if abc1.Ne(abc2) {
		t.Errorf("(a+b)+c != a+(b+c): %s vs %s", abc1, abc2)
	}
}

func TestAdd_mixedSigns(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b int64
		want int64
	}{
		{"pos plus smaller neg", 10, -3, 7},
		{"pos plus larger neg", 3, -10, -7},
		{"neg plus smaller pos", -10, 3, -7},
		{"neg plus larger pos", -3, 10, 7},
		{"exact cancellation", 5, -5, 0},
	} {
		a := mustSeconds(t, tc.a)
		b := mustSeconds(t, tc.b)
		want := mustSeconds(t, tc.want)

		got, err := Add(a, b)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got.Ne(want) {
			t.Errorf("%s: want %s, got %s", tc.name, want, got)
		}
	}
}

func TestSub_borrowChain(t *testing.T) {
	oneSecond := mustSeconds(t, 1)
	oneNano, err := FromNanoseconds(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1 s - 1 ns borrows through the nanosecond field
	got, err := Sub(oneSecond, oneNano)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalNanoseconds() != NanosecondsPerSecond-1 {
		t.Errorf("1s - 1ns: want %d ns, got %d", NanosecondsPerSecond-1, got.TotalNanoseconds())
	}

	// 1 ns - 1 tP borrows down to the planck field
	onePlanck, err := FromPlanckTime(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = Sub(oneNano, onePlanck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalNanoseconds() != 0 {
		t.Errorf("1ns - 1tP: nanosecond field must drain, got %d", got.TotalNanoseconds())
	}
	if got.TotalYoctoseconds() != YoctosecondsPerNanosecond-1 {
		t.Errorf("1ns - 1tP: want %d ys, got %d",
			YoctosecondsPerNanosecond-1, got.TotalYoctoseconds())
	}
	wantPlanck := newBigInt(0).Sub(PlanckTimePerYoctosecond, newBigInt(1))
	if got.PlanckTime().Cmp(wantPlanck) != 0 {
		t.Errorf("1ns - 1tP: want %s tP, got %s", wantPlanck, got.PlanckTime())
	}

	// reassembling must restore the original value exactly
	back, err := Add(got, onePlanck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Ne(oneNano) {
		t.Errorf("(1ns - 1tP) + 1tP: want %s, got %s", oneNano, back)
	}
}

func TestAdd_perpetualAbsorption(t *testing.T) {
	p := PerpetualDuration()
	n := NegativePerpetualDuration()
	d := specimen(t)

	for _, tc := range []struct {
		name string
		a, b Duration
		want Duration
	}{
		{"inf + finite", p, d, p},
		{"finite + inf", d, p, p},
		{"-inf + finite", n, d, n},
		{"inf + inf", p, p, p},
		{"inf + -inf cancels", p, n, Zero},
		{"-inf + inf cancels", n, p, Zero},
	} {
		got, err := Add(tc.a, tc.b)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got.Ne(tc.want) {
			t.Errorf("%s: want %s, got %s", tc.name, tc.want, got)
		}
	}

	for _, tc := range []struct {
		name string
		a, b Duration
		want Duration
	}{
		{"inf - inf cancels", p, p, Zero},
		{"inf - -inf", p, n, p},
		{"finite - inf", d, p, n},
		{"finite - -inf", d, n, p},
		{"inf - finite", p, d, p},
	} {
		got, err := Sub(tc.a, tc.b)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got.Ne(tc.want) {
			t.Errorf("%s: want %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestCompare_ordering(t *testing.T) {
	small := mustSeconds(t, 1)
	large := specimen(t)
	p := PerpetualDuration()
	n := NegativePerpetualDuration()

	for _, tc := range []struct {
		name string
		a, b Duration
		want int
	}{
		{"equal values", small, mustSeconds(t, 1), 0},
		{"smaller magnitude", small, large, -1},
		{"larger magnitude", large, small, 1},
		{"negative below positive", small.Negate(), small, -1},
		{"negative magnitudes invert", large.Negate(), small.Negate(), -1},
		{"zero between signs", small.Negate(), Zero, -1},
		{"inf above all finite", p, large, 1},
		{"-inf below all finite", n, large.Negate(), -1},
		{"-inf below inf", n, p, -1},
		{"inf equals inf", p, PerpetualDuration(), 0},
	} {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: want %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestCompare_relations(t *testing.T) {
	a := mustSeconds(t, 3)
	b := mustSeconds(t, 5)

	if !a.Lt(b) || !a.Le(b) || a.Gt(b) || a.Ge(b) {
		t.Error("3s must order strictly below 5s")
	}
	if !b.Gt(a) || !b.Ge(a) || b.Lt(a) || b.Le(a) {
		t.Error("5s must order strictly above 3s")
	}
	if !a.Le(mustSeconds(t, 3)) || !a.Ge(mustSeconds(t, 3)) {
		t.Error("equal values must satisfy Le and Ge")
	}
}

func TestNegate_roundTrip(t *testing.T) {
	d := specimen(t)
	if d.Negate().Negate().Ne(d) {
		t.Error("double negation must restore the original value")
	}
	if d.Negate().Abs().Ne(d) {
		t.Error("Abs of the negation must restore the original value")
	}
	if d.Negate().Sign() != -1 {
		t.Errorf("negated sign: want -1, got %d", d.Negate().Sign())
	}
}
