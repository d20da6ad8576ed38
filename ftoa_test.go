// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math"
	"strings"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	for _, test := range []struct {
		v    float64
		prec int
		want string
	}{
		{80, 0, "80"},
		{-80, 0, "-80"},
		{0, 0, "0"},
		{math.Copysign(0, -1), 0, "-0"},
		{0.1, 0, "0.1"},
		{0.000000000000000006, 0, "6e-18"},
		{1e8, 0, "1e+08"},
		{1000.0, 0, "1000"},
		{0.23432e304, 0, "2.3432e+303"},
		{18.51234334, 0, "18.5123"},
		{1.5, 0, "1.5"},
		{123456, 0, "123456"},
		{1234567, 0, "1.23456e+06"},
		{0.0001, 0, "0.0001"},
		{0.00001, 0, "1e-05"},
		{math.MaxFloat64, 0, "1.79769e+308"},
		{math.SmallestNonzeroFloat64, 0, "5e-324"},
		{math.NaN(), 0, "NaN"},
		{math.Float64frombits(math.Float64bits(math.NaN()) | 1<<63), 0, "-NaN"},
		{math.Inf(1), 0, "Inf"},
		{math.Inf(-1), 0, "-Inf"},
		{math.Pi, 0, "3.14159"},
		{math.Pi, 9, "3.14159265"},
		{math.Pi, 1, "3"},
		{2.5, 4, "2.5"},
		{100.25, 3, "100"},
		{-0.25, 0, "-0.25"},
		{1e-3, 0, "0.001"},
		{1e6, 0, "1e+06"},
		{1e6, 7, "1000000"},
	} {
		if got := FormatFloat(test.v, test.prec); got != test.want {
			t.Errorf("FormatFloat(%v, %d) = %q; want %q", test.v, test.prec, got, test.want)
		}
	}
}

func TestFormatFloatSign(t *testing.T) {
	for i := 0; i < 10000; i++ {
		v := randFloat()
		if got, want := FormatFloat(-v, 0), "-"+FormatFloat(v, 0); got != want {
			t.Fatalf("FormatFloat(%v) = %q; want %q", -v, got, want)
		}
	}
}

// TestFormatFloatPrec checks that no more than prec significant digits
// survive and that trailing zeros introduced by the clamp are stripped.
func TestFormatFloatPrec(t *testing.T) {
	for i := 0; i < 10000; i++ {
		v := randFloat()
		prec := 1 + rnd.Intn(17)
		s := FormatFloat(v, prec)
		digits := 0
		significant := false
		for j := 0; j < len(s); j++ {
			c := s[j]
			if c == 'e' {
				break
			}
			if c >= '1' && c <= '9' {
				significant = true
			}
			if significant && c >= '0' && c <= '9' {
				digits++
			}
		}
		if digits > prec {
			t.Fatalf("FormatFloat(%v, %d) = %q: %d significant digits", v, prec, s, digits)
		}
		mant := s
		if j := strings.IndexByte(s, 'e'); j >= 0 {
			mant = s[:j]
		}
		if strings.IndexByte(mant, '.') >= 0 && mant[len(mant)-1] == '0' {
			t.Fatalf("FormatFloat(%v, %d) = %q: trailing zero in fraction", v, prec, s)
		}
	}
}

func TestAppendFloatDst(t *testing.T) {
	dst := []byte("x = ")
	dst = AppendFloat(dst, 0.25, 0)
	if got, want := string(dst), "x = 0.25"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

var benchBuf [32]byte

func BenchmarkAppendFloat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchDigits = AppendFloat(benchBuf[:0], math.Pi, 0)
	}
}
