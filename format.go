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

// SignMode selects how FormatOptions renders the sign of a non-negative
// value. Negative values always get a '-', regardless of mode.
type SignMode int

const (
	// SignDefault omits any sign character on non-negative values.
	SignDefault SignMode = iota
	// SignSpace renders a leading space on non-negative values.
	SignSpace
	// SignPlus renders a leading '+' on non-negative values.
	SignPlus
)

// FormatOptions controls Format's rendering, a printf-derived option set.
type FormatOptions struct {
	Sign SignMode
	// Width is the minimum total character count; shorter output is padded.
	Width int
	// Precision is the number of fractional digits to print, or -1 to print
	// up to 20 digits (enough for an exact round trip through Parse),
	// omitting the trailing run of zero digits.
	Precision int
	ZeroPad   bool
	// ForceDecimal prints the decimal point even with zero fractional digits.
	ForceDecimal bool
	LeftAlign    bool
}

const maxFractionDigits = 20

// render builds the full textual form of v under opts with no width padding
// applied yet: extract fractional digits most-significant-first by repeated
// multiply-by-ten, round the trailing residue half-up with carry
// propagation, then emit the (possibly incremented) integer part.
func render(v Q, opts FormatOptions) []byte {
	mag, negative := v.absMag()

	fullPrecision := opts.Precision < 0
	maxDigits := opts.Precision
	trailingZeros := 0
	if fullPrecision {
		maxDigits = maxFractionDigits
	} else if maxDigits > maxFractionDigits {
		// The digit scratch holds 20 digits, which already exhausts Q64.64's
		// fractional precision; anything a larger precision asks for beyond
		// that is padded with zeros.
		trailingZeros = maxDigits - maxFractionDigits
		maxDigits = maxFractionDigits
	}

	var fracDigits [maxFractionDigits]byte
	fracCount := 0
	tmp := mag.Lo

	for fracCount < maxDigits {
		if fullPrecision && tmp == 0 {
			break
		}
		hi, lo := bits.Mul64(tmp, 10)
		fracDigits[fracCount] = byte(hi)
		tmp = lo
		fracCount++
	}

	intPart := mag.Hi
	if int64(tmp) < 0 {
		// Residue >= 0.5 ULP: round the last emitted fractional digit (or,
		// with no digits at all, the integer part itself) half-up.
		carry := true
		for i := fracCount - 1; i >= 0 && carry; i-- {
			if fracDigits[i] == 9 {
				fracDigits[i] = 0
			} else {
				fracDigits[i]++
				carry = false
			}
		}
		if carry {
			intPart++
		}
	}

	var intDigits [20]byte
	intCount := 0
	for {
		intDigits[intCount] = byte(intPart % 10)
		intPart /= 10
		intCount++
		if intPart == 0 {
			break
		}
	}

	out := make([]byte, 0, intCount+1+fracCount+1)

	switch {
	case negative:
		out = append(out, '-')
	case opts.Sign == SignPlus:
		out = append(out, '+')
	case opts.Sign == SignSpace:
		out = append(out, ' ')
	}

	for i := intCount - 1; i >= 0; i-- {
		out = append(out, '0'+intDigits[i])
	}

	if fracCount > 0 || trailingZeros > 0 || opts.ForceDecimal {
		out = append(out, DecimalPoint)
		for i := 0; i < fracCount; i++ {
			out = append(out, '0'+fracDigits[i])
		}
		for i := 0; i < trailingZeros; i++ {
			out = append(out, '0')
		}
	}

	return out
}

// pad applies width, zero-pad, and left-align to body, which already
// includes any sign character. Zero-pad inserts zeros between the sign and
// the digits; space padding goes before the sign.
func pad(body []byte, opts FormatOptions) []byte {
	padLen := opts.Width - len(body)
	if padLen <= 0 {
		return body
	}

	if opts.LeftAlign {
		out := make([]byte, 0, len(body)+padLen)
		out = append(out, body...)
		for i := 0; i < padLen; i++ {
			out = append(out, ' ')
		}
		return out
	}

	if opts.ZeroPad {
		signLen := 0
		if len(body) > 0 && (body[0] == '-' || body[0] == '+' || body[0] == ' ') {
			signLen = 1
		}
		out := make([]byte, 0, len(body)+padLen)
		out = append(out, body[:signLen]...)
		for i := 0; i < padLen; i++ {
			out = append(out, '0')
		}
		out = append(out, body[signLen:]...)
		return out
	}

	out := make([]byte, 0, len(body)+padLen)
	for i := 0; i < padLen; i++ {
		out = append(out, ' ')
	}
	out = append(out, body...)
	return out
}

// Format renders v under opts into buf, returning the number of bytes
// written (excluding a trailing NUL, which is written into buf if there is
// room for it). If buf is too small to hold the rendered value plus the
// terminator, the rendered text is truncated to fit; no re-rounding is
// applied at the truncation point.
func Format(buf []byte, v Q, opts FormatOptions) int {
	rendered := pad(render(v, opts), opts)

	if len(buf) == 0 {
		return 0
	}

	room := len(buf) - 1
	if room < 0 {
		room = 0
	}
	n := copy(buf[:room], rendered)
	buf[n] = 0
	return n
}

// Formatf renders v into buf using a simplified printf-style layout:
// an optional leading '%', flags ' '/'+'/'0'/'-'/'#' in any order, an
// optional decimal width, an optional '.precision', and an optional
// trailing 'f'. A precision is required to deviate from the round-trip
// default of printing up to 20 fractional digits.
func Formatf(buf []byte, layout string, v Q) int {
	return Format(buf, v, parseLayout(layout))
}

func parseLayout(layout string) FormatOptions {
	i := 0
	n := len(layout)

	if i < n && layout[i] == '%' {
		i++
	}

	opts := FormatOptions{Precision: -1}

flags:
	for i < n {
		switch layout[i] {
		case ' ':
			if opts.Sign == SignDefault {
				opts.Sign = SignSpace
			}
			i++
		case '+':
			opts.Sign = SignPlus
			i++
		case '0':
			opts.ZeroPad = true
			i++
		case '-':
			opts.LeftAlign = true
			i++
		case '#':
			opts.ForceDecimal = true
			i++
		default:
			break flags
		}
	}

	width := 0
	for i < n && layout[i] >= '0' && layout[i] <= '9' {
		width = width*10 + int(layout[i]-'0')
		i++
	}
	opts.Width = width

	if i < n && layout[i] == '.' {
		i++
		precision := 0
		for i < n && layout[i] >= '0' && layout[i] <= '9' {
			precision = precision*10 + int(layout[i]-'0')
			i++
		}
		opts.Precision = precision
	}

	if i < n && layout[i] == 'f' {
		i++
	}

	return opts
}

// String renders q with the default options: no forced sign, no width, and
// up to 20 fractional digits with the trailing zero run stripped, which is
// the round-trip precision mode.
func (q Q) String() string {
	var buf [64]byte
	n := Format(buf[:], q, FormatOptions{Precision: -1})
	return string(buf[:n])
}
