// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package errol converts binary floating-point values to their shortest
round-tripping decimal representation.

The conversion is exact: for any finite float64 v, parsing the digit string
produced by Digits back under round-to-nearest-even yields v again. The
engine works in double-double extended precision, representing intermediate
values as the unevaluated sum of two float64 values for roughly 106 bits of
effective mantissa. An input is scaled into [1, 10) against a table of
correctly rounded extended-precision powers of ten, its two adjacent
representable neighbors are scaled by the same factor, and digits are
emitted while both neighbor boundaries agree on them; the first disagreeing
position is resolved with the rounded midpoint digit.

The hot path performs no heap allocation: callers pass a scratch buffer
(DigitBufLen bytes is always enough) and receive a sub-slice of it:

	var buf [errol.DigitBufLen]byte
	d, exp := errol.Digits(3.25, buf[:])  // d = "325", exp = 1

The digit string and decimal exponent satisfy v == 0.d1d2... * 10**exp.

On top of the digit generator, AppendFloat and FormatFloat render a float64
in fixed or scientific notation under a significant-digit budget, following
the usual %g-style heuristics, and handle sign, zero, NaN and infinities.
AppendInt and AppendUint provide plain (non-shortest) decimal conversion for
integers.

Higher-level value formatting, including a {} placeholder template language,
lives in the format subpackage.

All functions are pure and safe for concurrent use; the only shared state is
the read-only power-of-ten table.
*/
package errol
