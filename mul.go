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

// umul128 computes the full unsigned 256-bit product of two 128-bit
// operands, split into the high 128 bits (hi) and low 128 bits (lo) of the
// product: value = hi*2^128 + lo. Portable four-partial-product
// decomposition: aH*bH at position 128, aH*bL and aL*bH at position 64,
// aL*bL at position 0.
func umul128(a, b word128) (hi, lo word128) {
	// u = aHi*bHi, v = aHi*bLo + aLo*bHi, w = aLo*bLo
	var u, v1, v2 word128
	var wHi uint64

	u.Hi, u.Lo = bits.Mul64(a.Hi, b.Hi)
	v1.Hi, v1.Lo = bits.Mul64(a.Hi, b.Lo)
	v2.Hi, v2.Lo = bits.Mul64(a.Lo, b.Hi)
	v, vCarry := add128(v1, v2, 0)
	wHi, lo.Lo = bits.Mul64(a.Lo, b.Lo)

	var midCarry, hiCarry uint64
	lo.Hi, midCarry = bits.Add64(v.Lo, wHi, 0)
	hi.Lo, hiCarry = bits.Add64(u.Lo, v.Hi, midCarry)
	hi.Hi, _ = bits.Add64(u.Hi, vCarry, hiCarry)

	return hi, lo
}

// mulQ128u computes the unsigned Q64.64 product of two unsigned magnitudes:
// it takes the middle 128 bits of the 256-bit product (bits [64,192)) and
// rounds half-up on the discarded bit 63. Half-up, not half-to-even: the
// decimal round trip depends on the exact rounding direction. Overflow past
// 128 bits (a nonzero hi.Hi after extraction) is truncated; the product
// wraps rather than saturates.
func mulQ128u(a, b word128) word128 {
	hi, lo := umul128(a, b)

	middle := word128{Hi: hi.Lo, Lo: lo.Hi}
	roundBit := lo.Lo >> 63

	result, _ := add128(middle, word128Zero, roundBit)

	return result
}
