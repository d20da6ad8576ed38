// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math"
	"math/big"
	"math/rand"
	"testing"
)

var rnd = rand.New(rand.NewSource(0))

const testPrec = 300

func bigVal(x extFloat) *big.Float {
	b := new(big.Float).SetPrec(testPrec).SetFloat64(x.base)
	o := new(big.Float).SetPrec(testPrec).SetFloat64(x.off)
	return b.Add(b, o)
}

// relErr returns |got-want| / |want|.
func relErr(got, want *big.Float) *big.Float {
	d := new(big.Float).SetPrec(testPrec).Sub(got, want)
	d.Quo(d, want)
	return d.Abs(d)
}

// randFloat returns a positive finite float64 drawn from random bits,
// subnormals included.
func randFloat() float64 {
	for {
		v := math.Float64frombits(rnd.Uint64())
		if v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return math.Abs(v)
		}
	}
}

// randNormal returns a positive normal float64 far enough from the range
// edges that scaling it by small factors neither overflows nor drops into
// the subnormals.
func randNormal() float64 {
	m := rnd.Uint64() & (1<<52 - 1)
	e := uint64(rnd.Intn(1900) + 73)
	return math.Float64frombits(e<<52 | m)
}

func TestNormalize(t *testing.T) {
	for i := 0; i < 10000; i++ {
		b := randNormal()
		o := b * (rnd.Float64() - 0.5) * 1e-15
		x := extFloat{base: b, off: o}
		want := bigVal(x)
		x.normalize()
		if got := bigVal(x); got.Cmp(want) != 0 {
			t.Fatalf("normalize(%v + %v) lost information: got %g, want %g", b, o, got, want)
		}
		if math.Abs(x.off) > math.Abs(x.base)*0x1p-52 {
			t.Fatalf("normalize(%v + %v): off %v too large for base %v", b, o, x.off, x.base)
		}
	}
}

func TestMul10Exact(t *testing.T) {
	// with a zero offset the 8x+2x split recovers the rounding error of
	// base*10 exactly
	ten := new(big.Float).SetPrec(testPrec).SetInt64(10)
	for i := 0; i < 10000; i++ {
		b := randNormal()
		x := extFloat{base: b}
		want := bigVal(x).Mul(bigVal(x), ten)
		x.mul10()
		if got := bigVal(x); got.Cmp(want) != 0 {
			t.Fatalf("mul10(%v): got %g, want %g", b, got, want)
		}
	}
}

func TestDiv10(t *testing.T) {
	ten := new(big.Float).SetPrec(testPrec).SetInt64(10)
	maxErr := new(big.Float).SetPrec(testPrec).SetFloat64(1e-30)
	for i := 0; i < 10000; i++ {
		b := randNormal()
		x := extFloat{base: b}
		want := bigVal(x).Quo(bigVal(x), ten)
		x.div10()
		if e := relErr(bigVal(x), want); e.Cmp(maxErr) > 0 {
			t.Fatalf("div10(%v): relative error %g", b, e)
		}
	}
}

func TestMul(t *testing.T) {
	maxErr := new(big.Float).SetPrec(testPrec).SetFloat64(1e-30)
	for i := 0; i < 10000; i++ {
		b := randNormal()
		v := randNormal()
		p := b * v
		if p == 0 || math.IsInf(p, 0) || p < 1e-300 || p > 1e300 {
			continue
		}
		x := extFloat{base: b, off: b * (rnd.Float64() - 0.5) * 1e-17}
		bv := new(big.Float).SetPrec(testPrec).SetFloat64(v)
		want := bigVal(x).Mul(bigVal(x), bv)
		got := bigVal(x.mul(v))
		if e := relErr(got, want); e.Cmp(maxErr) > 0 {
			t.Fatalf("(%v + %v).mul(%v): relative error %g", x.base, x.off, v, e)
		}
	}
}

func TestSplit(t *testing.T) {
	for i := 0; i < 10000; i++ {
		v := randFloat()
		hi, lo := split(v)
		if hi+lo != v {
			t.Fatalf("split(%v): %v + %v != %v", v, hi, lo, v)
		}
		if math.Float64bits(hi)&^uint64(highMask) != 0 {
			t.Fatalf("split(%v): high part %x keeps low mantissa bits", v, math.Float64bits(hi))
		}
	}
}
