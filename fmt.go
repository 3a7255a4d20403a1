package aevum

/*
fmt.go contains the format mini-language: the shared pattern
tokenizer, the standard-pattern expansion table, the custom-pattern
writer, the extensible (X) writer and the round-trip (o/O) writer.
*/

import (
	"math/big"
)

/*
pattern token kinds.
*/
const (
	tokLiteral = iota
	tokUnit
)

/*
patToken is one run of a tokenized pattern: either literal text or a
unit letter with its repeat count.
*/
type patToken struct {
	kind   int
	letter byte
	count  int
	lit    string
}

/*
unitLetters enumerates the recognized per-unit format letters:

	a  attoseconds          n  nanosecond remainder
	d  days                 p  picoseconds
	E  total years (aeons   P  Planck time
	   included)            s  seconds
	F  femtoseconds         u  microseconds
	f  fractional seconds   y  years (aeons excluded)
	H  hours ('h' accepted) Y  yoctosecond remainder
	m  minutes              z  zeptoseconds
	M  milliseconds

Repeating a letter n times requests a minimum of n zero-padded
digits; for E and P the repeat count is the numeric precision of the
unbounded value, and for f it is the number of fractional-second
digits emitted.
*/
var unitLetters = map[byte]struct{}{
	'a': {}, 'd': {}, 'E': {}, 'F': {}, 'f': {}, 'H': {}, 'h': {},
	'm': {}, 'M': {}, 'n': {}, 'p': {}, 'P': {}, 's': {}, 'u': {},
	'y': {}, 'Y': {}, 'z': {},
}

/*
standardPatterns expands the single-letter standard patterns into
their custom-token equivalents. The o/O and X patterns are not fixed
expansions; they run dedicated algorithms.
*/
var standardPatterns = map[byte]string{
	'd': "d",
	'D': "dd",
	't': "HH:mm",
	'T': "HH:mm:ss",
	'g': "y d H:mm:ss",
	'G': "y d HH:mm:ss",
	'f': "y d HH:mm",
	'F': "y d HH:mm:ss'.'fffffffff",
	'E': "E",
}

/*
generalPattern is the fallback applied for empty or unrecognized
patterns.
*/
const generalPattern = "y d HH:mm:ss"

/*
tokenizePattern splits a custom pattern into an ordered run list.
':', '/' and ' ' are literal separators; quoted runs ('…' or "…")
and backslash escapes emit literal text; '%' forces the following
character to be treated as a format letter.
*/
func tokenizePattern(p string) (toks []patToken, err error) {
	if len(p) == 0 {
		return nil, errorEmptyPattern
	}

	pushLit := func(s string) {
		if n := len(toks); n > 0 && toks[n-1].kind == tokLiteral {
			toks[n-1].lit += s
			return
		}
		toks = append(toks, patToken{kind: tokLiteral, lit: s})
	}

	for i := 0; i < len(p); {
		c := p[i]
		switch {
		case c == ':' || c == '/' || c == ' ':
			pushLit(string(c))
			i++
		case c == '\'' || c == '"':
			j := i + 1
			for j < len(p) && p[j] != c {
				j++
			}
			if j == len(p) {
				return nil, parseErrorf("unterminated quote in pattern: ", p)
			}
			pushLit(p[i+1 : j])
			i = j + 1
		case c == '\\':
			if i+1 == len(p) {
				return nil, parseErrorf("dangling escape in pattern: ", p)
			}
			pushLit(string(p[i+1]))
			i += 2
		case c == '%':
			if i+1 == len(p) {
				return nil, parseErrorf("dangling %% in pattern: ", p)
			}
			lt := p[i+1]
			if _, ok := unitLetters[lt]; !ok {
				return nil, parseErrorf("%% must precede a format letter, got ", lt)
			}
			toks = append(toks, patToken{kind: tokUnit, letter: lt, count: 1})
			i += 2
		default:
			if _, ok := unitLetters[c]; !ok {
				return nil, parseErrorf("unrecognized pattern character ", c)
			}
			j := i
			for j < len(p) && p[j] == c {
				j++
			}
			toks = append(toks, patToken{kind: tokUnit, letter: c, count: j - i})
			i = j
		}
	}

	return toks, nil
}

/*
Format renders the receiver as text under pattern. A single-letter
standard pattern expands to its custom equivalent; o/O selects the
lossless round-trip layout; X selects the extensible layout; any
other text is interpreted as a custom pattern. An empty or
unrecognized single-letter pattern falls back to the general long
format. Perpetual values always render as the culture's infinity
symbol, regardless of pattern.
*/
func (r Duration) Format(pattern string, culture ...*Culture) (string, error) {
	cu := cultureOf(culture)

	if r.perpetual {
		if r.negative {
			return cu.NegativeInfinity, nil
		}
		return cu.PositiveInfinity, nil
	}

	custom := pattern
	if len(pattern) == 0 {
		custom = generalPattern
	} else if len(pattern) == 1 {
		switch pattern[0] {
		case 'o', 'O':
			return r.formatRoundTrip(), nil
		case 'X':
			return r.formatExtensible(), nil
		default:
			std, ok := standardPatterns[pattern[0]]
			if !ok {
				std = generalPattern
			}
			custom = std
		}
	}

	toks, err := tokenizePattern(custom)
	if err != nil {
		return "", err
	}
	return r.formatTokens(toks), nil
}

func (r Duration) formatTokens(toks []patToken) string {
	b := newStrBuilder()
	if r.negative {
		b.WriteByte('-')
	}

	for _, t := range toks {
		if t.kind == tokLiteral {
			b.WriteString(t.lit)
			continue
		}

		switch t.letter {
		case 'E':
			b.WriteString(padBig(r.totalYears(), t.count))
		case 'P':
			b.WriteString(padBig(r.planck, t.count))
		case 'f':
			b.WriteString(r.fractionDigits(t.count))
		default:
			b.WriteString(pad(r.unitValue(t.letter), t.count))
		}
	}

	return b.String()
}

/*
unitValue resolves a bounded unit letter to its derived projection.
*/
func (r Duration) unitValue(letter byte) (v uint64) {
	switch letter {
	case 'a':
		v = r.Attoseconds()
	case 'd':
		v = r.Days()
	case 'F':
		v = r.Femtoseconds()
	case 'H', 'h':
		v = r.Hours()
	case 'm':
		v = r.Minutes()
	case 'M':
		v = r.Milliseconds()
	case 'n':
		v = r.Nanoseconds()
	case 'p':
		v = r.Picoseconds()
	case 's':
		v = r.Seconds()
	case 'u':
		v = r.Microseconds()
	case 'y':
		v = r.years
	case 'Y':
		v = r.Yoctoseconds()
	case 'z':
		v = r.Zeptoseconds()
	}
	return
}

/*
maxFractionDigits is the deepest decimal fraction of a second the
chain can express positionally: nine nanosecond digits followed by
fifteen yoctosecond digits. Planck time is not a decimal subdivision
and never contributes fraction digits.
*/
const maxFractionDigits = 24

/*
fractionDigits returns the first n decimal fraction digits of the
current second. Requests beyond the positional maximum pad with
zeros; the reader requires the same placement, guaranteeing the
round-trip property.
*/
func (r Duration) fractionDigits(n int) string {
	full := pad(r.nanos%NanosecondsPerSecond, 9) + pad(r.yoctos, 15)
	if n <= maxFractionDigits {
		return full[:n]
	}
	return full + strrpt("0", n-maxFractionDigits)
}

/*
formatRoundTrip emits the lossless layout

	[-]<aeons>-<years>-<nanoseconds>-<yoctoseconds>-<planckTime>

Segment widths are not fixed -- the aeon and Planck-time magnitudes
are unbounded -- so the layout is unsuitable for lexicographic
sorting.
*/
func (r Duration) formatRoundTrip() string {
	b := newStrBuilder()
	if r.negative {
		b.WriteByte('-')
	}
	b.WriteString(bigOrZero(r.aeons).String())
	b.WriteByte('-')
	b.WriteString(fmtUint(r.years, 10))
	b.WriteByte('-')
	b.WriteString(fmtUint(r.nanos, 10))
	b.WriteByte('-')
	b.WriteString(fmtUint(r.yoctos, 10))
	b.WriteByte('-')
	b.WriteString(bigOrZero(r.planck).String())
	return b.String()
}

/*
xUnit binds an extensible-format symbol to its radix-chain column
and the column-quanta factor of one unit.
*/
type xUnit struct {
	sym    string
	col    column
	factor uint64
}

/*
xUnits lists the extensible-format units in descending magnitude.
*/
var xUnits = []xUnit{
	{"a", colAeon, 1},
	{"y", colYear, 1},
	{"d", colNano, NanosecondsPerDay},
	{"h", colNano, NanosecondsPerHour},
	{"min", colNano, NanosecondsPerMinute},
	{"s", colNano, NanosecondsPerSecond},
	{"ms", colNano, NanosecondsPerMillisecond},
	{"μs", colNano, NanosecondsPerMicrosecond},
	{"ns", colNano, 1},
	{"ps", colYocto, YoctosecondsPerPicosecond},
	{"fs", colYocto, YoctosecondsPerFemtosecond},
	{"as", colYocto, YoctosecondsPerAttosecond},
	{"zs", colYocto, YoctosecondsPerZeptosecond},
	{"ys", colYocto, 1},
	{"tP", colPlanck, 1},
}

/*
xValue returns the derived projection of u for d, as an unbounded
magnitude for the aeon and Planck columns.
*/
func (r Duration) xValue(u xUnit) *big.Int {
	switch u.sym {
	case "a":
		return bigOrZero(r.aeons)
	case "tP":
		return bigOrZero(r.planck)
	}

	var v uint64
	switch u.sym {
	case "y":
		v = r.years
	case "d":
		v = r.Days()
	case "h":
		v = r.Hours()
	case "min":
		v = r.Minutes()
	case "s":
		v = r.Seconds()
	case "ms":
		v = r.Milliseconds()
	case "μs":
		v = r.Microseconds()
	case "ns":
		v = r.Nanoseconds()
	case "ps":
		v = r.Picoseconds()
	case "fs":
		v = r.Femtoseconds()
	case "as":
		v = r.Attoseconds()
	case "zs":
		v = r.Zeptoseconds()
	case "ys":
		v = r.Yoctoseconds()
	}
	return new(big.Int).SetUint64(v)
}

/*
formatExtensible emits only the non-zero units of the receiver, each
suffixed with its SI-style symbol and space separated, or the
literal "0" for the zero duration.
*/
func (r Duration) formatExtensible() string {
	if r.IsZero() {
		return "0"
	}

	b := newStrBuilder()
	if r.negative {
		b.WriteByte('-')
	}

	first := true
	for _, u := range xUnits {
		v := r.xValue(u)
		if v.Sign() == 0 {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
		b.WriteByte(' ')
		b.WriteString(u.sym)
		first = false
	}

	return b.String()
}
