package aevum

/*
parse.go contains the parse engine: the inverse of the format
mini-language. Custom patterns drive a slice-and-fold reader over
the same token list the writer consumes; the round-trip and
extensible layouts run dedicated readers.
*/

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

/*
standardPriority fixes the auto-detect attempt order of [Parse]:
round trip first, then the remaining standard patterns.
*/
var standardPriority = []string{"O", "G", "g", "F", "f", "T", "t", "D", "d", "E", "X"}

/*
Parse attempts every standard pattern in fixed priority order and
returns the value of the first that matches. This is the only entry
point which tries multiple patterns automatically.
*/
func Parse(s string, culture ...*Culture) (Duration, error) {
	cu := cultureOf(culture)

	if len(trimS(s)) == 0 {
		return Zero, errorEmptyInput
	}
	if d, ok := parseInfinity(s, cu); ok {
		return d, nil
	}

	for _, p := range standardPriority {
		if d, err := ParseExact(s, p, cu); err == nil {
			return d, nil
		}
	}

	return Zero, errorNoStandardMatch
}

/*
TryParse is the Boolean form of [Parse]; it reports false and the
zero duration on any failure.
*/
func TryParse(s string, culture ...*Culture) (Duration, bool) {
	d, err := Parse(s, culture...)
	return d, err == nil
}

/*
ParseExact requires s to match pattern exactly. A single-letter
standard pattern expands to its custom equivalent first; empty and
unrecognized single-letter patterns fall back to the general long
format, mirroring [Duration.Format]. The culture's infinity symbols
are recognized before any pattern matching; empty or whitespace-only
input always fails.
*/
func ParseExact(s, pattern string, culture ...*Culture) (Duration, error) {
	cu := cultureOf(culture)

	if len(trimS(s)) == 0 {
		return Zero, errorEmptyInput
	}
	if d, ok := parseInfinity(s, cu); ok {
		return d, nil
	}

	custom := pattern
	if len(pattern) == 0 {
		custom = generalPattern
	} else if len(pattern) == 1 {
		switch pattern[0] {
		case 'o', 'O':
			return parseRoundTrip(s)
		case 'X':
			return parseExtensible(s, cu)
		default:
			// mirror the writer: unrecognized single letters fall
			// back to the general pattern
			std, ok := standardPatterns[pattern[0]]
			if !ok {
				std = generalPattern
			}
			custom = std
		}
	}

	toks, err := tokenizePattern(custom)
	if err != nil {
		return Zero, err
	}
	return parseTokens(s, toks)
}

/*
TryParseExact is the Boolean form of [ParseExact].
*/
func TryParseExact(s, pattern string, culture ...*Culture) (Duration, bool) {
	d, err := ParseExact(s, pattern, culture...)
	return d, err == nil
}

func parseInfinity(s string, cu *Culture) (Duration, bool) {
	switch trimS(s) {
	case cu.PositiveInfinity:
		return PerpetualDuration(), true
	case cu.NegativeInfinity:
		return NegativePerpetualDuration(), true
	}
	return Zero, false
}

/*
parseTokens walks the token list over the input. A unit run slices a
fixed number of characters when its letter occupies one or two
pattern characters with no literal following; otherwise it consumes
up to (but not including) the next pattern literal, and the final
run consumes the remainder of the input.
*/
func parseTokens(s string, toks []patToken) (Duration, error) {
	var neg bool
	if hasPfx(s, "-") {
		neg = true
		s = s[1:]
	}

	var acc accumulator
	pos := 0

	for ti, t := range toks {
		if t.kind == tokLiteral {
			if !hasPfx(s[pos:], t.lit) {
				return Zero, parseErrorf("input does not match pattern literal ", t.lit)
			}
			pos += len(t.lit)
			continue
		}

		var slice string
		switch {
		case ti == len(toks)-1:
			slice = s[pos:]
			pos = len(s)
		case toks[ti+1].kind == tokLiteral:
			idx := strings.Index(s[pos:], toks[ti+1].lit)
			if idx < 0 {
				return Zero, errorInputExhausted
			}
			slice = s[pos : pos+idx]
			pos += idx
		default:
			n := minOf(t.count, len(s)-pos)
			if n < t.count {
				return Zero, errorInputExhausted
			}
			slice = s[pos : pos+n]
			pos += n
		}

		if err := acc.foldLetter(t.letter, t.count, slice); err != nil {
			return Zero, err
		}
	}

	if pos != len(s) {
		return Zero, errorTrailingInput
	}

	return acc.normalize(neg)
}

/*
letterUnit resolves a bounded unit letter to its radix-chain column
and column-quanta factor, mirroring the construction conversion
table.
*/
func letterUnit(letter byte) (column, uint64) {
	switch letter {
	case 'a':
		return colYocto, YoctosecondsPerAttosecond
	case 'd':
		return colNano, NanosecondsPerDay
	case 'F':
		return colYocto, YoctosecondsPerFemtosecond
	case 'H', 'h':
		return colNano, NanosecondsPerHour
	case 'm':
		return colNano, NanosecondsPerMinute
	case 'M':
		return colNano, NanosecondsPerMillisecond
	case 'n':
		return colNano, 1
	case 'p':
		return colYocto, YoctosecondsPerPicosecond
	case 's':
		return colNano, NanosecondsPerSecond
	case 'u':
		return colNano, NanosecondsPerMicrosecond
	case 'y':
		return colYear, 1
	case 'z':
		return colYocto, YoctosecondsPerZeptosecond
	}
	// 'Y'
	return colYocto, 1
}

/*
foldLetter parses one input slice under its unit letter and folds
the value into the accumulator fields.
*/
func (r *accumulator) foldLetter(letter byte, count int, slice string) error {
	switch letter {
	case 'E':
		v, err := parseBigUint(slice)
		if err != nil {
			return err
		}
		r.addBig(colYear, v)
		return nil
	case 'P':
		v, err := parseBigUint(slice)
		if err != nil {
			return err
		}
		r.addBig(colPlanck, v)
		return nil
	case 'f':
		return r.foldFraction(slice)
	}

	v, err := puint(slice, 10, 64)
	if err != nil {
		return parseErrorf("malformed numeric slice: ", slice)
	}
	col, factor := letterUnit(letter)
	r.addScaled(col, v, factor)
	return nil
}

/*
foldFraction redistributes fractional-second digits across the
nanosecond and yoctosecond fields using the writer's exact digit
placement: nine nanosecond digits, then fifteen yoctosecond digits.
Digits beyond the positional maximum must be zero.
*/
func (r *accumulator) foldFraction(slice string) error {
	for i := 0; i < len(slice); i++ {
		if !isDigit(slice[i]) {
			return parseErrorf("malformed fraction slice: ", slice)
		}
	}
	if len(slice) == 0 {
		return errorEmptyNumber
	}

	digits := slice
	if len(digits) > maxFractionDigits {
		for _, c := range []byte(digits[maxFractionDigits:]) {
			if c != '0' {
				return parseErrorf("fraction exceeds positional precision: ", slice)
			}
		}
		digits = digits[:maxFractionDigits]
	}
	if len(digits) < maxFractionDigits {
		digits += strrpt("0", maxFractionDigits-len(digits))
	}

	ns, _ := puint(digits[:9], 10, 64)
	ys, _ := puint(digits[9:], 10, 64)
	r.addUint(colNano, ns)
	r.addUint(colYocto, ys)
	return nil
}

/*
parseRoundTrip reads the lossless dash-separated layout emitted by
the round-trip writer. All five segments must be present and already
canonical; the trusted construction path stores them directly.
*/
func parseRoundTrip(s string) (Duration, error) {
	var neg bool
	if hasPfx(s, "-") {
		neg = true
		s = s[1:]
	}

	seg := split(s, "-")
	if len(seg) != 5 {
		return Zero, errorNotRoundTrip
	}

	aeons, err := parseBigUint(seg[0])
	if err != nil {
		return Zero, errorNotRoundTrip
	}
	if err = checkAeonMagnitude(aeons); err != nil {
		return Zero, err
	}

	years, err := puint(seg[1], 10, 64)
	if err != nil || years >= YearsPerAeon {
		return Zero, errorNotRoundTrip
	}
	nanos, err := puint(seg[2], 10, 64)
	if err != nil || nanos >= NanosecondsPerYear {
		return Zero, errorNotRoundTrip
	}
	yoctos, err := puint(seg[3], 10, 64)
	if err != nil || yoctos >= YoctosecondsPerNanosecond {
		return Zero, errorNotRoundTrip
	}

	planck, err := parseBigUint(seg[4])
	if err != nil || planck.Cmp(PlanckTimePerYoctosecond) >= 0 {
		return Zero, errorNotRoundTrip
	}

	return fromCanonical(neg, aeons, years, nanos, yoctos, planck), nil
}

/*
parseExtensible reads the extensible layout: alternating digit runs
and unit-symbol runs, whitespace and culture grouping separators
ignored, scientific-notation exponents recognized within a digit
run. Symbols resolve by exact string match.
*/
func parseExtensible(s string, cu *Culture) (Duration, error) {
	var neg bool
	if hasPfx(s, "-") {
		neg = true
		s = s[1:]
	}

	if trimS(s) == "0" {
		return Zero, nil // -0 normalizes to +0
	}

	var acc accumulator
	i := 0
	skipSpace := func() {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
	}

	for {
		skipSpace()
		if i == len(s) {
			break
		}

		num, err := scanNumberRun(s, &i, cu)
		if err != nil {
			return Zero, err
		}

		skipSpace()
		sym := scanSymbolRun(s, &i)
		if len(sym) == 0 {
			return Zero, parseErrorf("missing unit symbol after ", num)
		}

		u, ok := xSymbols[sym]
		if !ok {
			return Zero, parseErrorf("unresolved unit symbol ", sym)
		}

		if err = acc.foldNumber(num, u); err != nil {
			return Zero, err
		}
	}

	return acc.normalize(neg)
}

var xSymbols = func() map[string]xUnit {
	m := make(map[string]xUnit, len(xUnits))
	for _, u := range xUnits {
		m[u.sym] = u
	}
	return m
}()

/*
scanNumberRun consumes one numeric run at *i: digits with optional
grouping separators, an optional decimal separator and an optional
exponent. The run is returned in canonical form (grouping stripped,
'.' as the decimal separator).
*/
func scanNumberRun(s string, i *int, cu *Culture) (string, error) {
	b := newStrBuilder()
	start := *i

scan:
	for *i < len(s) {
		switch {
		case isDigit(s[*i]):
			b.WriteByte(s[*i])
			*i++
		case (s[*i] == 'e' || s[*i] == 'E') && *i > start:
			// exponent: e, optional sign, digit run
			j := *i + 1
			if j < len(s) && (s[j] == '+' || s[j] == '-') {
				j++
			}
			if j == len(s) || !isDigit(s[j]) {
				return "", parseErrorf("malformed exponent in ", s[start:])
			}
			b.WriteByte('e')
			if s[*i+1] == '+' || s[*i+1] == '-' {
				b.WriteByte(s[*i+1])
			}
			*i = j
			for *i < len(s) && isDigit(s[*i]) {
				b.WriteByte(s[*i])
				*i++
			}
			break scan
		default:
			// separators may be multi-byte runes (e.g. U+00A0)
			c, size := decodeRune(s[*i:])
			switch c {
			case cu.GroupSeparator:
				*i += size
			case cu.DecimalSeparator:
				b.WriteByte('.')
				*i += size
			default:
				break scan
			}
		}
	}

	if b.Len() == 0 {
		return "", parseErrorf("expected digits at offset ", *i)
	}
	return b.String(), nil
}

/*
scanSymbolRun consumes one maximal run of symbol characters at *i.
*/
func scanSymbolRun(s string, i *int) string {
	start := *i
	for *i < len(s) {
		c := s[*i]
		if c == ' ' || c == '\t' || isDigit(c) {
			break
		}
		*i++
	}
	return s[start:*i]
}

/*
foldNumber folds one canonicalized numeric run, expressed in unit u,
into the accumulator. Integer runs fold exactly through the unit
conversion table; fractional or exponent-bearing runs fold through
exact decimal arithmetic, cascading any remainder into the less
significant columns.
*/
func (r *accumulator) foldNumber(num string, u xUnit) error {
	if !cntns(num, ".") && !cntns(num, "e") {
		v, err := parseBigUint(num)
		if err != nil {
			return err
		}
		v.Mul(v, new(big.Int).SetUint64(u.factor))
		r.addBig(u.col, v)
		return nil
	}

	dec, err := decimal.NewFromString(num)
	if err != nil {
		return parseErrorf("malformed numeric run: ", num)
	}
	r.foldDecimal(dec.Mul(decimal.NewFromInt(int64(u.factor))), u.col)
	return nil
}

/*
foldDecimal folds a non-negative decimal count of col quanta,
cascading the fractional remainder down the chain. The Planck-time
remainder rounds half-up.
*/
func (r *accumulator) foldDecimal(dec decimal.Decimal, col column) {
	for {
		whole := dec.Floor()
		r.addBig(col, whole.BigInt())
		frac := dec.Sub(whole)
		if frac.IsZero() {
			return
		}

		switch col {
		case colAeon:
			dec = frac.Mul(decimal.NewFromInt(int64(YearsPerAeon)))
			col = colYear
		case colYear:
			dec = frac.Mul(decimal.NewFromInt(int64(NanosecondsPerYear)))
			col = colNano
		case colNano:
			dec = frac.Mul(decimal.NewFromInt(int64(YoctosecondsPerNanosecond)))
			col = colYocto
		case colYocto:
			dec = frac.Mul(decimal.NewFromBigInt(PlanckTimePerYoctosecond, 0))
			col = colPlanck
		default:
			if frac.Cmp(decimal.New(5, -1)) >= 0 {
				r.addUint(colPlanck, 1)
			}
			return
		}
	}
}
