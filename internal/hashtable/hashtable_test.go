// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashtable

import (
	"strconv"
	"testing"
)

func TestInsertLocate(t *testing.T) {
	var tab Table
	const n = 1000
	for i := 0; i < n; i++ {
		s, err := tab.Insert("key" + strconv.Itoa(i))
		if err != nil {
			t.Fatal(err)
		}
		s.Value = i
	}
	if tab.Len() != n {
		t.Fatalf("Len = %d; want %d", tab.Len(), n)
	}
	for i := 0; i < n; i++ {
		k := "key" + strconv.Itoa(i)
		s := tab.Locate(k)
		if s == nil {
			t.Fatalf("Locate(%q) = nil", k)
		}
		if s.Value != i || s.Key() != k {
			t.Fatalf("Locate(%q) = %v, %v; want %v, %q", k, s.Key(), s.Value, i, k)
		}
	}
	if s := tab.Locate("missing"); s != nil {
		t.Fatalf("Locate(missing) = %v; want nil", s)
	}
}

func TestInsertExisting(t *testing.T) {
	var tab Table
	s, err := tab.Insert("a")
	if err != nil {
		t.Fatal(err)
	}
	s.Value = 1
	s2, err := tab.Insert("a")
	if err != nil {
		t.Fatal(err)
	}
	if s2.Value != 1 {
		t.Fatalf("second Insert returned a fresh slot")
	}
	if tab.Len() != 1 {
		t.Fatalf("Len = %d; want 1", tab.Len())
	}
}

func TestRemove(t *testing.T) {
	var tab Table
	const n = 200
	for i := 0; i < n; i++ {
		s, err := tab.Insert(strconv.Itoa(i))
		if err != nil {
			t.Fatal(err)
		}
		s.Value = i
	}
	// remove every other key; probe chains must keep running through the
	// tombstones
	for i := 0; i < n; i += 2 {
		if !tab.Remove(strconv.Itoa(i)) {
			t.Fatalf("Remove(%d) = false", i)
		}
	}
	if tab.Remove("42") {
		t.Fatal("Remove of removed key = true")
	}
	if tab.Len() != n/2 {
		t.Fatalf("Len = %d; want %d", tab.Len(), n/2)
	}
	for i := 0; i < n; i++ {
		s := tab.Locate(strconv.Itoa(i))
		if i%2 == 0 && s != nil {
			t.Fatalf("Locate(%d) found removed key", i)
		}
		if i%2 == 1 && (s == nil || s.Value != i) {
			t.Fatalf("Locate(%d) = %v; want %d", i, s, i)
		}
	}
	// removed keys can be reinserted, reusing tombstones
	for i := 0; i < n; i += 2 {
		s, err := tab.Insert(strconv.Itoa(i))
		if err != nil {
			t.Fatal(err)
		}
		s.Value = -i
	}
	if tab.Len() != n {
		t.Fatalf("Len = %d; want %d", tab.Len(), n)
	}
}

func TestRehashTooSmall(t *testing.T) {
	var tab Table
	const n = 100
	for i := 0; i < n; i++ {
		s, err := tab.Insert(strconv.Itoa(i))
		if err != nil {
			t.Fatal(err)
		}
		s.Value = i
	}
	if err := tab.Rehash(1); err != ErrNoSlot {
		t.Fatalf("Rehash(1) = %v; want ErrNoSlot", err)
	}
	// prior storage untouched
	if tab.Len() != n {
		t.Fatalf("Len = %d after failed Rehash; want %d", tab.Len(), n)
	}
	for i := 0; i < n; i++ {
		if s := tab.Locate(strconv.Itoa(i)); s == nil || s.Value != i {
			t.Fatalf("Locate(%d) = %v after failed Rehash; want %d", i, s, i)
		}
	}
	// a later call with a workable target proceeds
	if err := tab.Rehash(4 * n); err != nil {
		t.Fatalf("Rehash(%d) = %v", 4*n, err)
	}
	for i := 0; i < n; i++ {
		if s := tab.Locate(strconv.Itoa(i)); s == nil || s.Value != i {
			t.Fatalf("Locate(%d) = %v after Rehash; want %d", i, s, i)
		}
	}
}

func TestNextPrime(t *testing.T) {
	for _, test := range []struct{ n, want int }{
		{0, 5}, {5, 5}, {6, 11}, {100, 199}, {1 << 30, 2147483647},
	} {
		if got := nextPrime(test.n); got != test.want {
			t.Errorf("nextPrime(%d) = %d; want %d", test.n, got, test.want)
		}
	}
}
