/*
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package q64fix

import "math/bits"

// DecimalPoint is the character Parse and the formatter use to separate
// the integer and fractional parts. It defaults to '.'. This is the one
// piece of process-wide mutable state in the package; callers that change
// it concurrently with a Parse/Format call own their own synchronization.
// Treat it as set once at init.
var DecimalPoint byte = '.'

const twoTo63 = 9223372036854775808.0
const twoTo64 = 18446744073709551616.0

// FromInt converts a signed 64-bit integer to Q. Values with |i| > 2^63
// can't occur (int64's own range tops out there), so this never wraps in
// practice; it is still a direct reinterpretation rather than a checked
// conversion.
func FromInt(i int64) Q {
	return Q{Hi: uint64(i), Lo: 0}
}

// FromDouble converts a float64 to Q, saturating to Min/Max when the
// integer part doesn't fit in 64 bits. Values that need more than a
// double's 53 mantissa bits lose precision.
func FromDouble(f float64) Q {
	if f < -twoTo63 {
		return Min
	}
	if f >= twoTo63 {
		return Max
	}

	negative := f < 0
	if negative {
		f = -f
	}

	intPart := float64(int64(f))
	if intPart > f {
		intPart -= 1 // int64(f) truncates toward zero; f is already >= 0 here
	}
	frac := f - intPart

	hi := uint64(intPart)
	loF := frac*twoTo64 + 0.5 // round to nearest

	var lo uint64
	if loF >= twoTo64 {
		hi++
		lo = 0
	} else {
		lo = uint64(loF)
	}

	result := Q{Hi: hi, Lo: lo}
	if negative {
		result = result.Neg()
	}
	return result
}

// ToInt returns q's signed integer part (Hi), discarding the fraction. Lo
// is a non-negative fraction, so this is the floor: ToInt of -2.5 is -3.
func (q Q) ToInt() int64 {
	return int64(q.Hi)
}

// ToDouble converts q to the nearest float64, computed in double precision
// (values needing more than 53 significant bits lose precision). This works
// directly off the two's complement decomposition: value == int64(Hi) +
// Lo/2^64, because in a multi-word two's complement integer the low word is
// always added as an unsigned quantity regardless of the high word's sign.
func (q Q) ToDouble() float64 {
	return float64(int64(q.Hi)) + float64(q.Lo)/twoTo64
}

func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Parse reads a signed decimal or hex (0x/0X prefixed) Q64.64 literal from
// the front of s. It returns the parsed value (Zero if no digits were
// consumed) and the number of bytes consumed; the Go analogue of an end
// pointer is s[n:], the unconsumed remainder.
//
// Integer digits accumulate into the integer part by repeated multiply-add,
// wrapping on overflow.
// Fractional digits (introduced by DecimalPoint) are walked from least to
// most significant, each folded in via an exact 128/64 division; the
// remainder of the final (most-significant-digit) division is the literal's
// residue below one ULP, and the fraction rounds half-up on it. Rounding to
// nearest here is what makes Parse(Format(v)) round-trip exactly: Format's
// 20-digit output sits within a tenth of an ULP of v, so the nearest
// representable value is always v itself.
func Parse(s []byte) (Q, int) {
	i := 0
	n := len(s)

	for i < n && isASCIISpace(s[i]) {
		i++
	}

	sign := 1
	if i < n && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	base := 10
	if i+1 < n && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base = 16
		i += 2
	}

	var hi uint64
	for i < n {
		d, ok := digitValue(s[i], base)
		if !ok {
			break
		}
		hi = hi*uint64(base) + uint64(d)
		i++
	}

	var lo uint64
	if i < n && s[i] == DecimalPoint {
		fracStart := i + 1
		j := fracStart
		for j < n {
			if _, ok := digitValue(s[j], base); !ok {
				break
			}
			j++
		}

		if j > fracStart {
			i = j
			var rem uint64
			for k := j - 1; k >= fracStart; k-- {
				d, _ := digitValue(s[k], base)
				// lo <- (lo + d*2^64) / base, exactly.
				lo, rem = bits.Div64(uint64(d), lo, uint64(base))
			}
			// rem is the first digit's division remainder: the residue is
			// rem/base plus a sub-digit tail strictly below 1/base, so the
			// total is >= 1/2 exactly when rem >= base/2. Round half-up,
			// carrying into the integer part when the fraction wraps.
			if rem >= uint64(base)/2 {
				var carry uint64
				lo, carry = bits.Add64(lo, 1, 0)
				hi += carry
			}
		}
	}

	result := Q{Hi: hi, Lo: lo}
	if sign < 0 {
		result = result.Neg()
	}

	return result, i
}
