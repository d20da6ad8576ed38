// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import "math"

// DigitBufLen is the recommended capacity for the scratch buffer passed to
// Digits. No finite float64 produces more digits than this.
const DigitBufLen = 512

// epsilon narrows the scaled boundary interval to absorb the rounding error
// of the plain float64 scale factor. Golden parameter, carried unchanged.
const epsilon = 8.78e-15

// maxFloatDigits is the shortest digit string for math.MaxFloat64. The
// general algorithm needs the next representable value above its input,
// which does not exist at the top of the range.
const maxFloatDigits = "17976931348623157"

// Digits generates the shortest decimal digit string that parses back to
// exactly v under round-to-nearest-even. v must be finite and positive;
// sign and special values are the caller's concern. The digits are written
// into buf, which should have capacity DigitBufLen to keep the call
// allocation free.
//
// The returned exponent places the decimal point such that
// v == 0.d1d2... * 10**exp.
func Digits(v float64, buf []byte) (d []byte, exp int) {
	if v == math.MaxFloat64 {
		return append(buf[:0], maxFloatDigits...), 309
	}

	// Estimate the decimal exponent from the binary one and pick the table
	// entry that scales v near [1, 10). Inputs beyond the table clamp to the
	// nearest edge; the loops below make up the difference.
	_, e := math.Frexp(v)
	i := pow10TabBias - int(float64(e)*0.30103)
	if i < 0 {
		i = 0
	} else if i >= len(pow10tab) {
		i = len(pow10tab) - 1
	}

	t := pow10tab[i]
	mid := t.mul(v)
	lten := t.base
	ten := 1.0
	exp = pow10TabBias + 1 - i

	// Rectify the estimate. The off-term tests decide inclusivity for
	// values landing exactly on a power of ten.
	for mid.base > 10.0 || (mid.base == 10.0 && mid.off >= 0.0) {
		exp++
		mid.div10()
		ten /= 10.0
	}
	for mid.base < 1.0 || (mid.base == 1.0 && mid.off < 0.0) {
		exp--
		mid.mul10()
		ten *= 10.0
	}

	// Narrow boundaries: the one-ULP neighbors of v, scaled by the same
	// factor. Any digit string strictly between them decodes to v.
	lo := extFloat{
		base: mid.base,
		off:  mid.off + (math.Nextafter(v, math.Inf(-1))-v)*lten*ten/(2.0+epsilon),
	}
	hi := extFloat{
		base: mid.base,
		off:  mid.off + (math.Nextafter(v, math.Inf(1))-v)*lten*ten/(2.0+epsilon),
	}
	lo.normalize()
	hi.normalize()

	// Boundary rectification, keeping exp in sync.
	for hi.base > 10.0 || (hi.base == 10.0 && hi.off >= 0.0) {
		exp++
		hi.div10()
		lo.div10()
	}
	for hi.base < 1.0 || (hi.base == 1.0 && hi.off < 0.0) {
		exp--
		hi.mul10()
		lo.mul10()
	}

	// Emit digits common to both boundaries. When they diverge, the rounded
	// midpoint digit is the shortest disambiguation; the zero test on the
	// upper bound terminates exact short decimals.
	d = buf[:0]
	for hi.base != 0.0 || hi.off != 0.0 {
		dHi := int(hi.base)
		if hi.base == float64(dHi) && hi.off < 0 {
			dHi--
		}
		dLo := int(lo.base)
		if lo.base == float64(dLo) && lo.off < 0 {
			dLo--
		}
		if dHi != dLo {
			return append(d, byte('0'+(dHi+dLo+1)/2)), exp
		}
		d = append(d, byte('0'+dHi))
		hi.base -= float64(dHi)
		lo.base -= float64(dLo)
		hi.mul10()
		lo.mul10()
	}
	return d, exp
}
