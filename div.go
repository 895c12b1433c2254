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

// mulWord128By64 multiplies a 128-bit value by a 64-bit value, returning the
// full 192-bit product as three words (most to least significant).
func mulWord128By64(a word128, b uint64) (hi, mid, lo uint64) {
	var w, z, carry uint64
	w, lo = bits.Mul64(a.Lo, b)
	hi, z = bits.Mul64(a.Hi, b)
	mid, carry = bits.Add64(w, z, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return
}

// divWW divides the 128-bit value (n2:n1) by d, where d's top bit is set
// (normalized) and n2 <= d (the classic Knuth Algorithm D precondition,
// allowing n2 == d which bits.Div64 itself would reject). When n2 == d the
// digit estimate is clamped to 2^64-1, since the caller guarantees the real
// digit fits in 64 bits (knuthDigit lowers the estimate further if it is
// too high); the synthesized remainder n1+d can exceed 64
// bits, in which case rOK is false and r must not be consulted (any q*d.Lo
// is already below a remainder that large).
func divWW(n2, n1, d uint64) (q, r uint64, rOK bool) {
	if n2 < d {
		q, r = bits.Div64(n2, n1, d)
		return q, r, true
	}
	q = ^uint64(0)
	var carry uint64
	r, carry = bits.Add64(n1, d, 0)
	return q, r, carry == 0
}

// knuthDigit extracts a single base-2^64 quotient digit from a 192-bit
// dividend (n2:n1:n0) and a normalized 128-bit divisor d (d.Hi's top bit
// set), following Knuth TAOCP section 4.3.1 Algorithm D: estimate the digit
// from the top two dividend words against d.Hi, refine it against d.Lo and
// the third dividend word (at most two decrements are ever needed), then
// multiply back and subtract, correcting once more if the estimate was
// still one too high.
func knuthDigit(n2, n1, n0 uint64, d word128) (digit uint64, rem word128) {
	q, r, rOK := divWW(n2, n1, d.Hi)

	for rOK {
		hi, lo := bits.Mul64(q, d.Lo)
		if hi < r || (hi == r && lo <= n0) {
			break
		}
		q--
		var carry uint64
		r, carry = bits.Add64(r, d.Hi, 0)
		if carry != 0 {
			// r would no longer fit in 64 bits, so q*d is now provably
			// small enough; two iterations always suffice here.
			break
		}
	}

	pHi, pMid, pLo := mulWord128By64(d, q)

	lo0, b0 := bits.Sub64(n0, pLo, 0)
	lo1, b1 := bits.Sub64(n1, pMid, b0)
	_, b2 := bits.Sub64(n2, pHi, b1)

	if b2 != 0 {
		// The refine loop above is usually enough, but the multiply-back
		// can still occasionally overshoot by one; correct it the same
		// way Algorithm D does, by adding back one divisor.
		q--
		var c uint64
		lo0, c = bits.Add64(lo0, d.Lo, 0)
		lo1, _ = bits.Add64(lo1, d.Hi, c)
	}

	return q, word128{Hi: lo1, Lo: lo0}
}

// udiv256by128 divides the unsigned 256-bit value (nHi:nLo) by the unsigned
// 128-bit value d, returning a 128-bit quotient and remainder. overflow is
// true when the true quotient would not fit in 128 bits (nHi >= d); in that
// case quot and rem are both zero and the caller is responsible for
// producing its saturating sentinel.
//
// Normalize by shifting both operands so the divisor's top bit is set, then
// extract the quotient as two base-2^64 digits via knuthDigit, denormalizing
// the remainder at the end. Normalizing up front keeps each digit extraction
// step a plain, literal reading of Algorithm D.
func udiv256by128(nHi, nLo, d word128) (quot, rem word128, overflow bool) {
	if isZero128(d) {
		panic("q64fix: division by zero in udiv256by128")
	}

	if !ult128(nHi, d) {
		return word128Zero, word128Zero, true
	}

	if d.Hi == 0 {
		// nHi < d and d.Hi == 0 together force nHi.Hi == 0, so the dividend
		// is effectively 192 bits wide; two ordinary 128/64 divisions
		// suffice.
		qHi, r1 := bits.Div64(nHi.Lo, nLo.Hi, d.Lo)
		qLo, r0 := bits.Div64(r1, nLo.Lo, d.Lo)
		return word128{Hi: qHi, Lo: qLo}, word128{Hi: 0, Lo: r0}, false
	}

	s := clz64(d.Hi)
	dNorm := shl128(d, s)

	n3, n2, n1, n0 := nHi.Hi, nHi.Lo, nLo.Hi, nLo.Lo
	if s > 0 {
		n3 = (n3 << s) | (n2 >> (64 - s))
		n2 = (n2 << s) | (n1 >> (64 - s))
		n1 = (n1 << s) | (n0 >> (64 - s))
		n0 = n0 << s
	}

	q1, r1 := knuthDigit(n3, n2, n1, dNorm)
	q0, r0 := knuthDigit(r1.Hi, r1.Lo, n0, dNorm)

	quot = word128{Hi: q1, Lo: q0}
	rem = ushiftRight128(r0, s)

	return quot, rem, false
}
