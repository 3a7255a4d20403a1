package aevum

/*
culture.go contains the culture symbol carrier consumed by the
format and parse entry points.
*/

/*
Culture describes the culture-sensitive symbols honored while
formatting and parsing [Duration] text: the positive and negative
infinity symbols rendered for perpetual values, and the decimal and
grouping separators recognized within extensible-format numeric
runs.
*/
type Culture struct {
	PositiveInfinity string
	NegativeInfinity string
	DecimalSeparator rune
	GroupSeparator   rune
}

/*
InvariantCulture is the default [Culture] applied whenever a format
or parse call supplies none.
*/
var InvariantCulture = &Culture{
	PositiveInfinity: "∞",
	NegativeInfinity: "-∞",
	DecimalSeparator: '.',
	GroupSeparator:   ',',
}

/*
cultureOf resolves the effective culture of a variadic culture
argument.
*/
func cultureOf(c []*Culture) *Culture {
	if len(c) > 0 && c[0] != nil {
		return c[0]
	}
	return InvariantCulture
}
