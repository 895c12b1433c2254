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

// Q is a signed Q64.64 fixed-point value: a 128-bit two's-complement
// integer K, Hi:Lo, denoting the real number K * 2^-64. Hi is the signed
// integer part, Lo is the unsigned fractional part in units of 2^-64.
//
// Q is a plain 16-byte value type. Every operation below is total and pure:
// no allocation, no panics except on the documented precondition
// violations, and every bit pattern denotes a valid number (there is no
// NaN or infinity).
type Q struct {
	Hi, Lo uint64
}

var minMagnitude = word128{Hi: 0x8000000000000000, Lo: 0}

// Named constants.
var (
	Zero     = Q{Hi: 0, Lo: 0}
	One      = Q{Hi: 1, Lo: 0}
	Smallest = Q{Hi: 0, Lo: 1}
	Min      = Q{Hi: 0x8000000000000000, Lo: 0}
	Max      = Q{Hi: 0x7fffffffffffffff, Lo: 0xffffffffffffffff}
)

func (q Q) raw() word128 { return word128{Hi: q.Hi, Lo: q.Lo} }

func fromRaw(w word128) Q { return Q{Hi: w.Hi, Lo: w.Lo} }

// absMag returns the unsigned magnitude of q and whether q was negative.
// Negating the minimum value is a no-op in two's complement, so the
// magnitude of Min is Min's own bit pattern, reinterpreted as unsigned
// 2^127.
func (q Q) absMag() (word128, bool) {
	r := q.raw()
	if isNeg128(r) {
		return neg128(r), true
	}
	return r, false
}

// == Additive group (C3 wrappers) ==

// Add returns a+b. Overflow past 128 bits wraps silently, matching plain
// two's-complement addition.
func (a Q) Add(b Q) Q {
	sum, _ := add128(a.raw(), b.raw(), 0)
	return fromRaw(sum)
}

// Sub returns a-b.
func (a Q) Sub(b Q) Q {
	diff, _ := sub128(a.raw(), b.raw(), 0)
	return fromRaw(diff)
}

// Neg returns -a. Neg(Min) == Min; this is accepted, not an error.
func (a Q) Neg() Q {
	return fromRaw(neg128(a.raw()))
}

// == Comparison ==

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b,
// comparing the signed high word first and then the unsigned low word.
func Cmp(a, b Q) int {
	return cmp128s(a.raw(), b.raw())
}

// IsNegative reports whether q's sign bit is set.
func (q Q) IsNegative() bool {
	return isNeg128(q.raw())
}

// IsZero reports whether q is bit-exact zero.
func (q Q) IsZero() bool {
	return isZero128(q.raw())
}

// MinOf returns whichever of a, b compares smaller. (Named MinOf rather
// than Min because Min is already the package's minimum-value constant.)
func MinOf(a, b Q) Q {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

// MaxOf returns whichever of a, b compares larger.
func MaxOf(a, b Q) Q {
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}

// == Rounding ==

// Floor clears the fractional bits. Hi is already the two's-complement
// integer part of q (section 3: lo is an unsigned remainder in [0,1) ULPs
// added to the signed Hi), so masking Lo to zero is floor unconditionally,
// for both signs: floor(-2.333) has Hi == -3 stored directly, no further
// decrement needed.
func (q Q) Floor() Q {
	return Q{Hi: q.Hi, Lo: 0}
}

// Ceil clears the fractional bits, incrementing the integer part whenever
// there is a nonzero fraction, regardless of sign (the mirror image of
// Floor: ceil(-2.333) == -2 == Hi+1, ceil(2.333) == 3 == Hi+1).
func (q Q) Ceil() Q {
	if q.Lo != 0 {
		return Q{Hi: q.Hi + 1, Lo: 0}
	}
	return Q{Hi: q.Hi, Lo: 0}
}

// truncToInt truncates q toward zero, discarding the fraction. Unlike
// Floor, this rounds negative values up (toward zero): trunc(-2.333) == -2.
// Used internally by Mod, which is defined as a - trunc(a/b)*b with the
// fraction discarded rather than floored.
func (q Q) truncToInt() Q {
	if q.IsNegative() && q.Lo != 0 {
		return Q{Hi: q.Hi + 1, Lo: 0}
	}
	return Q{Hi: q.Hi, Lo: 0}
}

// == Bitwise / shift layer (C2 wrappers) ==

func (q Q) Not() Q      { return fromRaw(not128(q.raw())) }
func (a Q) And(b Q) Q   { return fromRaw(and128(a.raw(), b.raw())) }
func (a Q) Or(b Q) Q    { return fromRaw(or128(a.raw(), b.raw())) }
func (a Q) Xor(b Q) Q   { return fromRaw(xor128(a.raw(), b.raw())) }
func (q Q) Shl(n int) Q { return fromRaw(shl128(q.raw(), n)) }
func (q Q) Shr(n int) Q { return fromRaw(ushiftRight128(q.raw(), n)) }
func (q Q) Sar(n int) Q { return fromRaw(sshiftRight128(q.raw(), n)) }

// == Multiply / divide / modulo (C6 signed wrappers) ==

// Mul returns a*b. The full 256-bit product's middle 128 bits are rounded
// half-up on the discarded bit; any overflow past 128 bits after that
// rounding wraps rather than saturates.
func (a Q) Mul(b Q) Q {
	magA, signA := a.absMag()
	magB, signB := b.absMag()

	prod := mulQ128u(magA, magB)
	result := fromRaw(prod)

	if signA != signB {
		result = result.Neg()
	}

	return result
}

// Div returns a/b, truncating toward zero. Division by zero returns Min
// when the result's sign would be negative (i.e. a is negative), else Max.
// A quotient whose magnitude does not fit in 128 bits, or whose sign-
// applied result falls outside Q's representable range, saturates to Min
// or Max according to the combined sign.
func (a Q) Div(b Q) Q {
	if b.IsZero() {
		if a.IsNegative() {
			return Min
		}
		return Max
	}

	magA, signA := a.absMag()
	magB, signB := b.absMag()
	negative := signA != signB

	// Scale a up by 2^64 before dividing, so the Q64.64 quotient falls out
	// directly: (a*2^64)/b.
	nHi := word128{Hi: 0, Lo: magA.Hi}
	nLo := word128{Hi: magA.Lo, Lo: 0}

	quot, _, overflow := udiv256by128(nHi, nLo, magB)
	if overflow {
		if negative {
			return Min
		}
		return Max
	}

	if negative {
		if isNeg128(quot) && !isEqual128(quot, minMagnitude) {
			return Min
		}
		return fromRaw(neg128(quot))
	}

	if isNeg128(quot) {
		return Max
	}
	return fromRaw(quot)
}

// Mod returns a - trunc(a/b)*b; the result's sign follows the dividend, as
// with Go's own % operator (this is truncated modulo, not Euclidean).
// Division by zero shares Div's saturation policy.
//
// a.Div(b) carries full Q64.64 fractional precision (e.g. -7/3 is
// -2.333...), so it is truncated to its integer part via truncToInt before
// multiplying back out.
func (a Q) Mod(b Q) Q {
	if b.IsZero() {
		if a.IsNegative() {
			return Min
		}
		return Max
	}

	quotient := a.Div(b).truncToInt()
	return a.Sub(quotient.Mul(b))
}
