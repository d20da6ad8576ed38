// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math/big"
	"testing"
)

// TestPow10Tab checks the structural invariants of the golden table against
// independently computed correctly-rounded values. The table itself is
// never regenerated at runtime.
func TestPow10Tab(t *testing.T) {
	one := new(big.Float).SetPrec(testPrec).SetInt64(1)
	for i, x := range pow10tab {
		n := i - pow10TabBias

		p := new(big.Float).SetPrec(testPrec).SetInt64(10)
		e := n
		if e < 0 {
			e = -e
		}
		pw := new(big.Float).SetPrec(testPrec).SetInt64(1)
		for j := 0; j < e; j++ {
			pw.Mul(pw, p)
		}
		if n < 0 {
			pw.Quo(one, pw)
		}

		base, _ := pw.Float64()
		if base != x.base {
			t.Errorf("pow10tab[%d] (1e%d): base = %v, want %v", i, n, x.base, base)
		}
		res := new(big.Float).SetPrec(testPrec).SetFloat64(x.base)
		res.Sub(pw, res)
		off, _ := res.Float64()
		if off != x.off {
			t.Errorf("pow10tab[%d] (1e%d): off = %v, want %v", i, n, x.off, off)
		}

		y := x
		y.normalize()
		if y != x {
			t.Errorf("pow10tab[%d] (1e%d): entry not normalized", i, n)
		}
	}
}

func TestPow10TabSmallExact(t *testing.T) {
	// 10**n is exactly representable up to n == 22; those entries must have
	// a zero offset
	for n := 0; n <= 22; n++ {
		if x := pow10tab[n+pow10TabBias]; x.off != 0 {
			t.Errorf("pow10tab entry for 1e%d: off = %v, want 0", n, x.off)
		}
	}
}
