// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strings"
	"testing"
)

type point struct {
	X, Y int
}

type empty struct{}

type nested struct {
	Name string
	P    point
	S    []float64
}

type upper string

func (u upper) AppendText(dst []byte) []byte {
	return append(dst, strings.ToUpper(string(u))...)
}

type handle struct{ id int }

func (h *handle) AppendText(dst []byte) []byte {
	return append(append(dst, "handle#"...), byte('0'+h.id))
}

func TestSprint(t *testing.T) {
	for _, test := range []struct {
		v    interface{}
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{"hello", "hello"},
		{[]byte("raw"), "raw"},
		{'x', "120"}, // runes are indistinguishable from int32
		{42, "42"},
		{int8(-7), "-7"},
		{uint64(4294967295), "4294967295"},
		{int64(-2147483648), "-2147483648"},
		{0.1, "0.1"},
		{float32(0.5), "0.5"},
		{-80.0, "-80"},
		{[]int{1, 2, 3}, "[1, 2, 3]"},
		{[]int{}, "[]"},
		{[3]string{"a", "b", "c"}, "[a, b, c]"},
		{[][]int{{1}, {2, 3}}, "[[1], [2, 3]]"},
		{point{1, 2}, "point(1, 2)"},
		{empty{}, "empty()"},
		{nested{"n", point{3, 4}, []float64{0.5}}, "nested(n, point(3, 4), [0.5])"},
		{upper("shout"), "SHOUT"},
		{&handle{7}, "handle#7"},
		{(*handle)(nil), "null"},
		{uintptr(0), "0x0"},
		{uintptr(0x1a2b), "0x1a2b"},
	} {
		if got := Sprint(test.v); got != test.want {
			t.Errorf("Sprint(%#v) = %q; want %q", test.v, got, test.want)
		}
	}
}

func TestSprintPointer(t *testing.T) {
	x := 5
	s := Sprint(&x)
	if !strings.HasPrefix(s, "0x") || len(s) < 3 {
		t.Errorf("Sprint(&x) = %q; want hex address", s)
	}
	if strings.HasPrefix(s, "0x0") && len(s) > 3 {
		t.Errorf("Sprint(&x) = %q; leading zero in address", s)
	}
	var p *int
	if got := Sprint(p); got != "0x0" {
		t.Errorf("Sprint((*int)(nil)) = %q; want 0x0", got)
	}
}

func TestSprintUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sprint(map) did not panic")
		}
	}()
	Sprint(map[string]int{"a": 1})
}

type color int

const (
	red color = iota
	green
	blue
)

func init() {
	RegisterEnum(color(0),
		EnumMember{"red", int64(red)},
		EnumMember{"green", int64(green)},
		EnumMember{"blue", int64(blue)},
	)
}

func TestEnum(t *testing.T) {
	for _, test := range []struct {
		v    color
		want string
	}{
		{red, "red"},
		{green, "green"},
		{blue, "blue"},
		{color(5), "5"}, // unknown member prints the raw ordinal
	} {
		if got := Sprint(test.v); got != test.want {
			t.Errorf("Sprint(color(%d)) = %q; want %q", int(test.v), got, test.want)
		}
	}
	// unregistered named types stay plain integers
	type weekday int
	if got := Sprint(weekday(3)); got != "3" {
		t.Errorf("Sprint(weekday(3)) = %q; want %q", got, "3")
	}
}

func TestEnumInStruct(t *testing.T) {
	type paint struct {
		C color
		N int
	}
	if got, want := Sprint(paint{blue, 3}), "paint(blue, 3)"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestRegisterEnumBadType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RegisterEnum(string) did not panic")
		}
	}()
	type name string
	RegisterEnum(name(""))
}
