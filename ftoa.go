// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import "math"

// DefaultPrec is the number of significant digits used when AppendFloat and
// FormatFloat are called with a non-positive precision.
const DefaultPrec = 6

// AppendFloat appends the decimal representation of v to dst and returns the
// extended buffer. At most prec significant digits are produced (DefaultPrec
// when prec <= 0). Scientific notation is chosen when the decimal exponent
// falls outside [-3, prec]. The sign is rendered whenever the sign bit is
// set, including for NaN and infinities.
func AppendFloat(dst []byte, v float64, prec int) []byte {
	if prec <= 0 {
		prec = DefaultPrec
	}
	if math.Signbit(v) {
		dst = append(dst, '-')
		v = -v
	}
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...)
	case math.IsInf(v, 0):
		return append(dst, "Inf"...)
	case v == 0:
		return append(dst, '0')
	}
	var buf [DigitBufLen]byte
	d, exp := Digits(v, buf[:])
	return appendDecimal(dst, d, exp, prec)
}

// FormatFloat is a convenience wrapper around AppendFloat.
func FormatFloat(v float64, prec int) string {
	return string(AppendFloat(nil, v, prec))
}

// appendDecimal renders a digit string with decimal exponent exp (value ==
// 0.d1d2... * 10**exp) in fixed or scientific notation.
func appendDecimal(dst []byte, d []byte, exp, prec int) []byte {
	if len(d) > prec {
		d = d[:prec]
	}
	for len(d) > 1 && d[len(d)-1] == '0' {
		d = d[:len(d)-1]
	}

	if exp <= -4 || exp > prec {
		// d.ddddde±XX
		dst = append(dst, d[0])
		if len(d) > 1 {
			dst = append(dst, '.')
			dst = append(dst, d[1:]...)
		}
		dst = append(dst, 'e')
		e := exp - 1
		if e < 0 {
			dst = append(dst, '-')
			e = -e
		} else {
			dst = append(dst, '+')
		}
		if e < 10 {
			dst = append(dst, '0')
		}
		return AppendInt(dst, int64(e))
	}

	switch {
	case exp <= 0:
		dst = append(dst, '0', '.')
		for i := 0; i < -exp; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, d...)
	case exp >= len(d):
		dst = append(dst, d...)
		for i := len(d); i < exp; i++ {
			dst = append(dst, '0')
		}
	default:
		dst = append(dst, d[:exp]...)
		dst = append(dst, '.')
		dst = append(dst, d[exp:]...)
	}
	return dst
}
