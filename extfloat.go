// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import "math"

// An extFloat represents a real number as the unevaluated sum base + off of
// two float64 values, giving roughly 106 bits of effective mantissa. After
// normalize, base holds the correctly rounded sum and off the exact rounding
// error of that sum.
type extFloat struct {
	base float64
	off  float64
}

// normalize renormalizes x using a two-sum compensation so that
// base' = fl(base + off) and off' absorbs exactly the rounding error.
func (x *extFloat) normalize() {
	b := x.base
	x.base += x.off
	x.off += b - x.base
}

// mul10 multiplies x by 10 in place. The rounding error of base*10 is
// recovered by splitting the factor into 8+2, both of which scale a float64
// exactly, and is folded into off.
func (x *extFloat) mul10() {
	b := x.base
	x.base *= 10.0
	x.off *= 10.0

	e := x.base
	e -= b * 8.0
	e -= b * 2.0
	x.off -= e

	x.normalize()
}

// div10 divides x by 10 in place, recovering the quotient's rounding error
// through the same 8+2 split.
func (x *extFloat) div10() {
	b := x.base
	x.base /= 10.0
	x.off /= 10.0

	b -= x.base * 8.0
	b -= x.base * 2.0
	x.off += b / 10.0

	x.normalize()
}

// highMask clears the low 27 mantissa bits, splitting a float64 into a high
// half whose product with another high half is exact.
const highMask = 0xFFFFFFFFF8000000

func split(v float64) (hi, lo float64) {
	hi = math.Float64frombits(math.Float64bits(v) & highMask)
	lo = v - hi
	return hi, lo
}

// mul returns x * v as a normalized extFloat. The product of the base parts
// is computed with a Dekker split so that the cross terms and the scaled
// incoming offset land in the result's off field instead of being rounded
// away.
func (x extFloat) mul(v float64) extFloat {
	xh, xl := split(x.base)
	vh, vl := split(v)

	p := x.base * v
	e := ((xh*vh - p) + xl*vh + xh*vl) + xl*vl

	r := extFloat{base: p, off: x.off*v + e}
	r.normalize()
	return r
}
