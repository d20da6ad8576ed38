// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashtable implements a string-keyed open-addressing hash table
// with tombstone deletion and a fixed prime growth schedule.
package hashtable

import "errors"

// Slot states. A deleted slot keeps probe sequences running past it.
const (
	empty = iota
	used
	deleted
)

// ErrNoSlot is reported by Rehash when the requested storage cannot hold
// every live entry. The table is left untouched.
var ErrNoSlot = errors.New("hashtable: no free slot for every key")

// primes is the growth schedule. Each step roughly doubles the previous
// one; table storage is always sized to one of these.
var primes = [...]int{
	5, 11, 23, 47, 97, 199, 409, 823, 1741, 3469, 6949, 14033, 28411,
	57557, 116731, 236897, 480881, 976369, 1982627, 4026031, 8175383,
	16601593, 33712729, 68460391, 139022417, 282312799, 573292817,
	1164186217, 2147483647,
}

func nextPrime(n int) int {
	for _, p := range primes {
		if p >= n {
			return p
		}
	}
	return primes[len(primes)-1]
}

// A Slot holds one key/value association. The Value field is owned by the
// caller; the table never inspects it.
type Slot struct {
	Value interface{}
	key   string
	state byte
}

// Key returns the key the slot was inserted under.
func (s *Slot) Key() string { return s.key }

// A Table is an open-addressed hash table. The zero value is empty and
// ready for use. Tables are not safe for concurrent mutation.
type Table struct {
	slots []Slot
	live  int // used slots
	fill  int // used + deleted slots
}

// FNV-1a.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

func hash(s string) uint64 {
	h := uint64(fnvOffset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

// Len returns the number of live entries.
func (t *Table) Len() int { return t.live }

// Locate returns the slot holding key, or nil if the key is absent.
func (t *Table) Locate(key string) *Slot {
	if len(t.slots) == 0 {
		return nil
	}
	i := int(hash(key) % uint64(len(t.slots)))
	for n := 0; n < len(t.slots); n++ {
		s := &t.slots[i]
		switch s.state {
		case empty:
			return nil
		case used:
			if s.key == key {
				return s
			}
		}
		i++
		if i == len(t.slots) {
			i = 0
		}
	}
	return nil
}

// Insert returns the slot for key, creating it if necessary. The table
// grows when three quarters full, counting tombstones.
func (t *Table) Insert(key string) (*Slot, error) {
	if (t.fill+1)*4 > len(t.slots)*3 {
		if err := t.Rehash(t.live*2 + 1); err != nil {
			return nil, err
		}
	}
	i := int(hash(key) % uint64(len(t.slots)))
	var free *Slot
	for n := 0; n < len(t.slots); n++ {
		s := &t.slots[i]
		switch s.state {
		case empty:
			if free == nil {
				free = s
			} else {
				// reuse a tombstone seen on the way
				t.fill--
			}
			free.key = key
			free.state = used
			t.live++
			t.fill++
			return free, nil
		case deleted:
			if free == nil {
				free = s
			}
		case used:
			if s.key == key {
				return s, nil
			}
		}
		i++
		if i == len(t.slots) {
			i = 0
		}
	}
	if free != nil {
		free.key = key
		free.state = used
		t.live++
		t.fill++
		return free, nil
	}
	return nil, ErrNoSlot
}

// Remove deletes key from the table, reporting whether it was present. The
// slot becomes a tombstone so that collision chains through it survive.
func (t *Table) Remove(key string) bool {
	s := t.Locate(key)
	if s == nil {
		return false
	}
	s.state = deleted
	s.key = ""
	s.Value = nil
	t.live--
	return true
}

// Rehash moves all live entries into fresh storage of at least target
// slots, rounded up the prime schedule, and drops tombstones. If the new
// storage cannot hold every entry the table is left exactly as it was and
// ErrNoSlot is returned; a later call with a larger target proceeds from
// the next schedule step.
func (t *Table) Rehash(target int) error {
	size := nextPrime(target)
	slots := make([]Slot, size)
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != used {
			continue
		}
		if !place(slots, s) {
			return ErrNoSlot
		}
	}
	t.slots = slots
	t.fill = t.live
	return nil
}

func place(slots []Slot, s *Slot) bool {
	i := int(hash(s.key) % uint64(len(slots)))
	for n := 0; n < len(slots); n++ {
		d := &slots[i]
		if d.state == empty {
			d.key = s.key
			d.Value = s.Value
			d.state = used
			return true
		}
		i++
		if i == len(slots) {
			i = 0
		}
	}
	return false
}
