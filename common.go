package aevum

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

/*
official import aliases.
*/
var (
	itoa       func(int) string                       = strconv.Itoa
	fmtUint    func(uint64, int) string               = strconv.FormatUint
	puint      func(string, int, int) (uint64, error) = strconv.ParseUint
	hasPfx     func(string, string) bool              = strings.HasPrefix
	trimS      func(string) string                    = strings.TrimSpace
	cntns      func(string, string) bool              = strings.Contains
	strrpt     func(string, int) string               = strings.Repeat
	split      func(string, string) []string          = strings.Split
	newBigInt  func(int64) *big.Int                   = big.NewInt
	decodeRune func(string) (rune, int)               = utf8.DecodeRuneInString
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

/*
pad returns the base-10 rendering of v, zero padded on the left
to a minimum of w digits.
*/
func pad(v uint64, w int) string {
	s := fmtUint(v, 10)
	if len(s) < w {
		s = strrpt("0", w-len(s)) + s
	}
	return s
}

/*
padBig behaves as pad for an unbounded non-negative magnitude.
A nil input denotes zero.
*/
func padBig(v *big.Int, w int) string {
	var s string
	if v == nil {
		s = "0"
	} else {
		s = v.String()
	}
	if len(s) < w {
		s = strrpt("0", w-len(s)) + s
	}
	return s
}

/*
cloneBig returns an independent copy of v, or nil if v is nil or
zero. Canonical instances never share big.Int storage with caller
supplied values.
*/
func cloneBig(v *big.Int) *big.Int {
	if v == nil || v.Sign() == 0 {
		return nil
	}
	return new(big.Int).Set(v)
}

/*
bigOrZero returns v, or an owned zero instance when v is nil.
*/
func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return newBigInt(0)
	}
	return v
}

/*
cmpBig compares two nil-means-zero magnitudes.
*/
func cmpBig(a, b *big.Int) int {
	return bigOrZero(a).Cmp(bigOrZero(b))
}

/*
parseBigUint parses a non-empty run of base-10 digits as an
unbounded non-negative magnitude.
*/
func parseBigUint(s string) (*big.Int, error) {
	if len(s) == 0 {
		return nil, errorEmptyNumber
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return nil, parseErrorf("malformed numeric slice: ", s)
		}
	}
	v, _ := new(big.Int).SetString(s, 10)
	return v, nil
}
