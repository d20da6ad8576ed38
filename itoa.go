// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errol

// chunk is the largest power of ten fitting 8 decimal digits. Splitting a
// uint64 into such chunks keeps all per-digit arithmetic in 32 bits and
// bounds the number of 64-bit divisions to two for any input.
const chunk = 100000000

// AppendUint appends the decimal representation of u to dst.
func AppendUint(dst []byte, u uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for u >= chunk {
		c := uint32(u % chunk)
		u /= chunk
		for j := 0; j < 8; j++ {
			i--
			buf[i] = byte('0' + c%10)
			c /= 10
		}
	}
	c := uint32(u)
	for {
		i--
		buf[i] = byte('0' + c%10)
		c /= 10
		if c == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// AppendInt appends the decimal representation of v to dst.
func AppendInt(dst []byte, v int64) []byte {
	u := uint64(v)
	if v < 0 {
		dst = append(dst, '-')
		u = -u
	}
	return AppendUint(dst, u)
}
