package aevum

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

var mkerr func(string) error = errors.New

var (
	errorNaNScalar       = argumentErr{mkerr("scaling factor is NaN; no sign available to resolve perpetual semantics")}
	errorBadInputType    = argumentErr{mkerr("unsupported numeric input type")}
	errorAeonDigits      = overflowErr{mkerr("aeon magnitude exceeds the maximum digit count")}
	errorEmptyInput      = parseErr{mkerr("empty or whitespace-only input")}
	errorEmptyPattern    = parseErr{mkerr("empty custom pattern")}
	errorEmptyNumber     = parseErr{mkerr("empty numeric slice")}
	errorInputExhausted  = parseErr{mkerr("input exhausted before pattern was satisfied")}
	errorTrailingInput   = parseErr{mkerr("input continues beyond pattern")}
	errorNotRoundTrip    = parseErr{mkerr("text is not in the round-trip layout")}
	errorNoStandardMatch = parseErr{mkerr("no standard pattern matched the input")}
)

/*
types which implement the error interface, one per failure
category: invalid argument, overflow and format failure.
*/
type (
	argumentErr struct{ e error }
	overflowErr struct{ e error }
	parseErr    struct{ e error }
)

func argumentErrorf(m ...any) error { return argumentErr{mkerrf(m...)} }
func overflowErrorf(m ...any) error { return overflowErr{mkerrf(m...)} }
func parseErrorf(m ...any) error    { return parseErr{mkerrf(m...)} }

func (r argumentErr) Error() string { return `INVALID ARGUMENT: ` + r.e.Error() }
func (r overflowErr) Error() string { return `OVERFLOW: ` + r.e.Error() }
func (r parseErr) Error() string    { return `FORMAT ERROR: ` + r.e.Error() }

/*
IsOverflowError returns a Boolean value indicative of err being an
overflow failure, as opposed to an invalid-argument or format failure.
*/
func IsOverflowError(err error) bool {
	_, is := err.(overflowErr)
	return is
}

/*
IsFormatError returns a Boolean value indicative of err being a
format (parse) failure.
*/
func IsFormatError(err error) bool {
	_, is := err.(parseErr)
	return is
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case byte:
			b.WriteByte(v)
		case int:
			b.WriteString(itoa(v))
		case uint64:
			b.WriteString(fmtUint(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
