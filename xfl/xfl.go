// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xfl - the hook API's 64 bit decimal floating point format
//
// layout (most significant first):
//
//	1 bit   sign (1 = positive)
//	8 bits  exponent + 97
//	54 bits mantissa normalised to [1e15, 1e16)
//
// zero is the canonical value 0
package xfl

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strings"

	"github.com/mikpaszkowski/rentald/fault"
)

// XFL - an encoded value
type XFL int64

// limits of the format
const (
	minMantissa  = 1000000000000000
	maxMantissa  = 9999999999999999
	minExponent  = -96
	maxExponent  = 80
	exponentBias = 97

	mantissaBits  = 54
	maxSignDigits = 19 // digits that always fit in a uint64
)

// Zero - canonical zero
const Zero XFL = 0

// Make - normalise a mantissa and exponent
func Make(mantissa int64, exponent int) (XFL, error) {
	if 0 == mantissa {
		return Zero, nil
	}
	negative := mantissa < 0
	m := uint64(mantissa)
	if negative {
		m = uint64(-mantissa)
	}
	return makeUnsigned(negative, m, exponent)
}

func makeUnsigned(negative bool, m uint64, exponent int) (XFL, error) {
	for m > maxMantissa {
		m /= 10
		exponent++
	}
	for m < minMantissa {
		m *= 10
		exponent--
	}
	if exponent > maxExponent || exponent < minExponent {
		return Zero, fault.InvalidXFL
	}

	x := uint64(0)
	if !negative {
		x = 1
	}
	x = x<<8 | uint64(exponent+exponentBias)
	x = x<<mantissaBits | m
	return XFL(x), nil
}

// FromInt - encode an integer
func FromInt(n int64) (XFL, error) {
	return Make(n, 0)
}

// FromString - encode a decimal such as "12", "-0.25" or "1.5e3"
func FromString(s string) (XFL, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if "" == s {
		return Zero, fault.InvalidXFL
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	exponent := 0
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		e, err := parseExponent(s[i+1:])
		if nil != err {
			return Zero, err
		}
		exponent = e
		s = s[:i]
	}

	mantissa := uint64(0)
	digits := 0
	seenPoint := false
	seenDigit := false
	for _, c := range s {
		switch {
		case '.' == c && !seenPoint:
			seenPoint = true
		case c >= '0' && c <= '9':
			seenDigit = true
			if 0 == mantissa && '0' == c {
				if seenPoint {
					exponent--
				}
				continue
			}
			if digits < maxSignDigits {
				mantissa = mantissa*10 + uint64(c-'0')
				digits++
				if seenPoint {
					exponent--
				}
			} else if !seenPoint {
				// truncated digit left of the point
				exponent++
			}
		default:
			return Zero, fault.InvalidXFL
		}
	}
	if !seenDigit {
		return Zero, fault.InvalidXFL
	}
	if 0 == mantissa {
		return Zero, nil
	}
	return makeUnsigned(negative, mantissa, exponent)
}

func parseExponent(s string) (int, error) {
	if "" == s {
		return 0, fault.InvalidXFL
	}
	sign := 1
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if "" == s || len(s) > 4 {
		return 0, fault.InvalidXFL
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fault.InvalidXFL
		}
		n = n*10 + int(c-'0')
	}
	return sign * n, nil
}

// IsNegative - sign of a non zero value
func (x XFL) IsNegative() bool {
	return Zero != x && 0 == uint64(x)>>62&1
}

// Mantissa - the normalised mantissa
func (x XFL) Mantissa() int64 {
	return int64(uint64(x) & (1<<mantissaBits - 1))
}

// Exponent - the unbiased exponent
func (x XFL) Exponent() int {
	if Zero == x {
		return 0
	}
	return int(uint64(x)>>mantissaBits&0xff) - exponentBias
}

// Float - approximate value
func (x XFL) Float() float64 {
	if Zero == x {
		return 0
	}
	f := float64(x.Mantissa())
	if e := x.Exponent(); e < 0 {
		f /= math.Pow10(-e)
	} else {
		f *= math.Pow10(e)
	}
	if x.IsNegative() {
		return -f
	}
	return f
}

// LEHex - upper case hex of the little endian encoding
func (x XFL) LEHex() string {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(x))
	return strings.ToUpper(hex.EncodeToString(b[:]))
}

// LEHexFromString - encode a decimal straight to little endian hex
func LEHexFromString(s string) (string, error) {
	x, err := FromString(s)
	if nil != err {
		return "", err
	}
	return x.LEHex(), nil
}
