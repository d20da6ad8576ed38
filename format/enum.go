// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"reflect"
	"sync"

	"github.com/db47h/errol"
	"github.com/db47h/errol/internal/hashtable"
)

// An EnumMember associates a symbolic name with an enumeration value.
type EnumMember struct {
	Name  string
	Value int64
}

var (
	enumMu   sync.RWMutex
	enumTabs hashtable.Table
)

// RegisterEnum declares the members of a named integer type so that its
// values print symbolically. sample is any value of the type. Member lookup
// on print is a linear scan, first match wins; a value matching no member
// prints its raw ordinal. Registering the same type again replaces the
// member list.
func RegisterEnum(sample interface{}, members ...EnumMember) {
	t := reflect.TypeOf(sample)
	if t == nil || t.Name() == "" {
		panic("format: RegisterEnum requires a named type")
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		panic("format: RegisterEnum requires an integer type")
	}
	enumMu.Lock()
	defer enumMu.Unlock()
	s, err := enumTabs.Insert(enumKey(t))
	if err != nil {
		panic(err)
	}
	s.Value = append([]EnumMember(nil), members...)
}

func enumKey(t reflect.Type) string {
	return t.PkgPath() + "." + t.Name()
}

func lookupEnum(t reflect.Type) []EnumMember {
	if t.Name() == "" || t.PkgPath() == "" {
		return nil
	}
	enumMu.RLock()
	defer enumMu.RUnlock()
	s := enumTabs.Locate(enumKey(t))
	if s == nil {
		return nil
	}
	return s.Value.([]EnumMember)
}

func appendEnum(dst []byte, rv reflect.Value, members []EnumMember) []byte {
	var v int64
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v = int64(rv.Uint())
	default:
		v = rv.Int()
	}
	for _, m := range members {
		if m.Value == v {
			return append(dst, m.Name...)
		}
	}
	return errol.AppendInt(dst, v)
}
