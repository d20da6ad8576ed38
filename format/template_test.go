// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "testing"

func TestParse(t *testing.T) {
	for _, test := range []struct {
		tmpl  string
		slots int
	}{
		{"", 0},
		{"plain", 0},
		{"{}", 1},
		{"a{}b{}c", 2},
		{"{{}}", 0}, // escaped brace followed by literal '}'
		{"{{{}}}", 1},
		{"}", 0},
		{"{}{}{}", 3},
	} {
		tp, err := Parse(test.tmpl)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.tmpl, err)
			continue
		}
		if tp.NumSlots() != test.slots {
			t.Errorf("Parse(%q): %d slots; want %d", test.tmpl, tp.NumSlots(), test.slots)
		}
	}
}

func TestParseError(t *testing.T) {
	for _, tmpl := range []string{"{", "{x}", "tail{", "{ }"} {
		if _, err := Parse(tmpl); err != ErrPlaceholder {
			t.Errorf("Parse(%q) = %v; want ErrPlaceholder", tmpl, err)
		}
	}
}

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		tmpl string
		args []interface{}
		want string
	}{
		{"{} + {} = {}", []interface{}{1, 2, 3}, "1 + 2 = 3"},
		{"x = {}", []interface{}{0.1}, "x = 0.1"},
		{"{{} is a literal", nil, "{} is a literal"},
		{"{{}}", nil, "{}}"},
		{"no slots", nil, "no slots"},
		{"{}", []interface{}{nil}, "null"},
		{"v: {}", []interface{}{[]int{1, 2}}, "v: [1, 2]"},
		{"{}{}", []interface{}{"a", "b"}, "ab"},
	} {
		if got := Format(test.tmpl, test.args...); got != test.want {
			t.Errorf("Format(%q, %v) = %q; want %q", test.tmpl, test.args, got, test.want)
		}
	}
	// cached parse must behave identically
	if got := Format("{} + {} = {}", 2, 2, 4); got != "2 + 2 = 4" {
		t.Errorf("cached Format = %q; want %q", got, "2 + 2 = 4")
	}
}

func TestFormatArity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Format with missing argument did not panic")
		}
	}()
	Format("{} {}", 1)
}

func TestTemplateRender(t *testing.T) {
	tp, err := Parse("({}, {})")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tp.Render(1.5, -2), "(1.5, -2)"; got != want {
		t.Errorf("Render = %q; want %q", got, want)
	}
	if got, want := tp.String(), "({}, {})"; got != want {
		t.Errorf("String = %q; want %q", got, want)
	}
}
