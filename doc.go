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

// Package q64fix implements Q64.64 signed fixed-point arithmetic: a 128-bit
// two's-complement integer K represents the real value K * 2^-64. Every
// operation is a pure function of its bit-pattern inputs. The arithmetic,
// comparison, shift and parsing operations do not allocate; Format and
// String build their text in heap-allocated byte slices. There is no
// goroutine use, and the only mutable state is DecimalPoint.
package q64fix
