// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

import (
	"math"
	"strconv"
	"testing"
)

func TestAppendUint(t *testing.T) {
	for _, test := range []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{99999999, "99999999"},
		{100000000, "100000000"},
		{1000000007, "1000000007"},
		{4294967295, "4294967295"},
		{math.MaxUint64, "18446744073709551615"},
	} {
		if got := string(AppendUint(nil, test.v)); got != test.want {
			t.Errorf("AppendUint(%d) = %q; want %q", test.v, got, test.want)
		}
	}
	for i := 0; i < 10000; i++ {
		v := rnd.Uint64()
		if got, want := string(AppendUint(nil, v)), strconv.FormatUint(v, 10); got != want {
			t.Fatalf("AppendUint(%d) = %q; want %q", v, got, want)
		}
	}
}

func TestAppendInt(t *testing.T) {
	for _, test := range []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{-1, "-1"},
		{80, "80"},
		{-80, "-80"},
		{-2147483648, "-2147483648"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	} {
		if got := string(AppendInt(nil, test.v)); got != test.want {
			t.Errorf("AppendInt(%d) = %q; want %q", test.v, got, test.want)
		}
	}
}

func BenchmarkAppendUint(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchDigits = AppendUint(benchBuf[:0], 18446744073709551615)
	}
}
