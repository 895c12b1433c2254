package q64fix

// Test data and oracle helpers shared across the property-style tests: an
// independent arbitrary-precision decimal oracle (github.com/ericlagergren/
// decimal) constructs reference values so the arithmetic under test never
// checks itself against itself.

import (
	"github.com/ericlagergren/decimal"
)

var decCtx128 = decimal.Context128

func deci(i int64) *decimal.Big {
	return decimal.WithPrecision(60).SetMantScale(i, 0)
}

// decTwoTo64 is 2^64 as an exact decimal, used to convert between the Hi/Lo
// word pair and its real value.
var decTwoTo64 = decCtx128.Pow(decimal.WithPrecision(60), deci(2), deci(64))

// deciu builds the exact decimal value of a signed-hi/unsigned-lo Q64.64
// pair: hi*2^64 + lo, then divided back down by 2^64.
func deciu(hi int64, lo uint64) *decimal.Big {
	decHi := decimal.WithPrecision(60).SetMantScale(hi, 0)
	decLo := decimal.WithPrecision(60).SetUint64(lo)
	decHi = decHi.Mul(decHi, decTwoTo64)

	val := decimal.WithPrecision(60).Add(decHi, decLo)
	return val.Quo(val, decTwoTo64)
}

// qToBig returns q's exact real value as a *decimal.Big.
func qToBig(q Q) *decimal.Big {
	return deciu(int64(q.Hi), q.Lo)
}

// qSamples is a fixed, hand-picked spread of Q values used across the
// property tests: zero, unit, fractional, negative, and the extremes.
// Not random (the test run must be deterministic and reproducible without
// a seed), but chosen to exercise sign crossings, exact powers of two, and
// the Min/Max boundary.
var qSamples = []Q{
	Zero,
	One,
	Smallest,
	Min,
	Max,
	{Hi: 3, Lo: 0},
	{Hi: 0xFFFFFFFFFFFFFFFD, Lo: 0}, // -3
	{Hi: 7, Lo: 0x8000000000000000},  // 7.5
	{Hi: 0xFFFFFFFFFFFFFFF9, Lo: 0x4000000000000000}, // -6.75
	{Hi: 123456, Lo: 0x1999999999999999},              // 123456.1 (approx)
	{Hi: 0, Lo: 1},
	{Hi: 0xFFFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF}, // -smallest
}
