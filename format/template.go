// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"errors"
	"sync"

	"github.com/db47h/errol/internal/hashtable"
)

// ErrPlaceholder is reported by Parse for a '{' that opens neither a {}
// substitution slot nor a {{ escape.
var ErrPlaceholder = errors.New("format: unterminated placeholder")

// A Template is a parsed format string: literal spans separated by
// substitution slots. Templates are immutable and safe for concurrent use.
type Template struct {
	src  string
	lits []string // len(lits) == number of slots + 1
}

// Parse splits tmpl into literal spans and {} substitution slots. A doubled
// open brace {{ is an escaped literal brace. Any other use of '{' is an
// error.
func Parse(tmpl string) (*Template, error) {
	lits := make([]string, 0, 4)
	var buf []byte
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '{' {
			buf = append(buf, c)
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '{' {
			buf = append(buf, '{')
			i++
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '}' {
			lits = append(lits, string(buf))
			buf = buf[:0]
			i++
			continue
		}
		return nil, ErrPlaceholder
	}
	lits = append(lits, string(buf))
	return &Template{src: tmpl, lits: lits}, nil
}

// NumSlots returns the number of substitution slots.
func (t *Template) NumSlots() int { return len(t.lits) - 1 }

// String returns the source text of the template.
func (t *Template) String() string { return t.src }

// Append renders the template with the given arguments appended to dst.
// The argument count must equal the slot count; a mismatch is a programming
// error and panics.
func (t *Template) Append(dst []byte, args ...interface{}) []byte {
	if len(args) != t.NumSlots() {
		panic("format: argument count does not match placeholder count")
	}
	dst = append(dst, t.lits[0]...)
	for i, a := range args {
		dst = Append(dst, a)
		dst = append(dst, t.lits[i+1]...)
	}
	return dst
}

// Render is shorthand for Append with a fresh buffer.
func (t *Template) Render(args ...interface{}) string {
	return string(t.Append(nil, args...))
}

var (
	cacheMu sync.Mutex
	cache   hashtable.Table
)

// Format parses tmpl, caching the result, and renders it with args. A
// malformed template or an argument count mismatch panics; use Parse to
// validate templates from non-literal sources.
func Format(tmpl string, args ...interface{}) string {
	t, err := parseCached(tmpl)
	if err != nil {
		panic(err)
	}
	return string(t.Append(nil, args...))
}

func parseCached(tmpl string) (*Template, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if s := cache.Locate(tmpl); s != nil {
		return s.Value.(*Template), nil
	}
	t, err := Parse(tmpl)
	if err != nil {
		return nil, err
	}
	s, err := cache.Insert(tmpl)
	if err != nil {
		return nil, err
	}
	s.Value = t
	return t, nil
}
