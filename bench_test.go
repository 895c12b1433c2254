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

import (
	"math/big"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	x := Q{Hi: 123456789, Lo: 123456789123456789}
	y := Q{Hi: 987654321, Lo: 987654321987654321}
	for i := 0; i < b.N; i++ {
		_ = x.Add(y)
	}
}

func BenchmarkMul(b *testing.B) {
	x := Q{Hi: 123456789, Lo: 123456789123456789}
	y := Q{Hi: 12345, Lo: 987654321987654321}
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

func BenchmarkMul_Ref(b *testing.B) {
	x := Q{Hi: 123456789, Lo: 123456789123456789}
	y := Q{Hi: 12345, Lo: 987654321987654321}
	for i := 0; i < b.N; i++ {
		xB := new(big.Int).SetUint64(x.Hi)
		xB.Lsh(xB, 64)
		xB.Add(xB, new(big.Int).SetUint64(x.Lo))
		yB := new(big.Int).SetUint64(y.Hi)
		yB.Lsh(yB, 64)
		yB.Add(yB, new(big.Int).SetUint64(y.Lo))
		result := new(big.Int).Mul(xB, yB)
		result.Rsh(result, 64)
	}
}

func BenchmarkDiv(b *testing.B) {
	x := Q{Hi: 123456789, Lo: 123456789123456789}
	y := Q{Hi: 12345, Lo: 987654321987654321}
	for i := 0; i < b.N; i++ {
		_ = x.Div(y)
	}
}

func BenchmarkMod(b *testing.B) {
	x := Q{Hi: 123456789, Lo: 123456789123456789}
	y := Q{Hi: 12345, Lo: 987654321987654321}
	for i := 0; i < b.N; i++ {
		_ = x.Mod(y)
	}
}

func BenchmarkFormat(b *testing.B) {
	x := Q{Hi: 123456789, Lo: 123456789123456789}
	var buf [64]byte
	for i := 0; i < b.N; i++ {
		_ = Format(buf[:], x, FormatOptions{Precision: -1})
	}
}

func BenchmarkParse(b *testing.B) {
	s := []byte("123456789.0066926059431")
	for i := 0; i < b.N; i++ {
		_, _ = Parse(s)
	}
}
