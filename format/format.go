// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format renders arbitrary Go values as text, routing floating-point
// values through the shortest round-trip conversion of the parent package.
//
// Values are classified by their structural shape: booleans, integers,
// floats, strings and byte sequences, slices and arrays, structs, pointers
// and registered enumeration types each have a fixed rendering. A value
// implementing Texter takes precedence and renders itself. Value shapes
// outside this closed set (maps, channels, functions) are a programming
// error and panic.
package format

import (
	"reflect"

	"github.com/db47h/errol"
)

// Texter is the custom textual-conversion capability. A value implementing
// it renders through AppendText instead of the structural rules; a nil
// pointer carrying the capability renders as "null" without invoking it.
type Texter interface {
	AppendText(dst []byte) []byte
}

var texterType = reflect.TypeOf((*Texter)(nil)).Elem()

// Append appends the textual form of v to dst and returns the extended
// buffer.
func Append(dst []byte, v interface{}) []byte {
	if v == nil {
		return append(dst, "null"...)
	}
	return appendValue(dst, reflect.ValueOf(v))
}

// Sprint returns the textual form of v.
func Sprint(v interface{}) string {
	return string(Append(nil, v))
}

func appendValue(dst []byte, rv reflect.Value) []byte {
	if rv.Type().Implements(texterType) {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return append(dst, "null"...)
		}
		if rv.CanInterface() {
			return rv.Interface().(Texter).AppendText(dst)
		}
	}
	if m := lookupEnum(rv.Type()); m != nil {
		return appendEnum(dst, rv, m)
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case reflect.String:
		return append(dst, rv.String()...)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return errol.AppendInt(dst, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return errol.AppendUint(dst, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return errol.AppendFloat(dst, rv.Float(), 0)
	case reflect.Uintptr:
		return appendHex(dst, rv.Uint())
	case reflect.Ptr, reflect.UnsafePointer:
		return appendHex(dst, uint64(rv.Pointer()))
	case reflect.Slice, reflect.Array:
		return appendSequence(dst, rv)
	case reflect.Struct:
		return appendStruct(dst, rv)
	case reflect.Interface:
		if rv.IsNil() {
			return append(dst, "null"...)
		}
		return appendValue(dst, rv.Elem())
	}
	panic("format: unsupported value kind " + rv.Kind().String())
}

// appendSequence renders a slice or array. Byte sequences are copied
// verbatim, anything else prints bracketed and comma separated, recursing
// into the elements.
func appendSequence(dst []byte, rv reflect.Value) []byte {
	if rv.Type().Elem().Kind() == reflect.Uint8 && !rv.Type().Elem().Implements(texterType) {
		if rv.Kind() == reflect.Slice {
			return append(dst, rv.Bytes()...)
		}
		for i := 0; i < rv.Len(); i++ {
			dst = append(dst, byte(rv.Index(i).Uint()))
		}
		return dst
	}
	dst = append(dst, '[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			dst = append(dst, ',', ' ')
		}
		dst = appendValue(dst, rv.Index(i))
	}
	return append(dst, ']')
}

// appendStruct renders a struct as TypeName(field1, field2, ...), fields in
// declaration order. Unexported fields are included; only their shape is
// inspected, never their interface value.
func appendStruct(dst []byte, rv reflect.Value) []byte {
	t := rv.Type()
	dst = append(dst, t.Name()...)
	dst = append(dst, '(')
	for i := 0; i < rv.NumField(); i++ {
		if i > 0 {
			dst = append(dst, ',', ' ')
		}
		dst = appendValue(dst, rv.Field(i))
	}
	return append(dst, ')')
}

const hexDigits = "0123456789abcdef"

// appendHex renders an address as 0x followed by the minimal number of
// lowercase hex digits. A null pointer prints 0x0.
func appendHex(dst []byte, u uint64) []byte {
	dst = append(dst, '0', 'x')
	if u == 0 {
		return append(dst, '0')
	}
	var buf [16]byte
	i := len(buf)
	for u != 0 {
		i--
		buf[i] = hexDigits[u&0xf]
		u >>= 4
	}
	return append(dst, buf[i:]...)
}
