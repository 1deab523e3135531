// Package addition sums numbers given as arguments, as a list, or as an
// addition-only expression such as "2+3+4".
//
// Integer operands are summed as int64. As soon as one operand is a float
// the sum is a float. Expression results are normalized: a float sum with no
// fractional part is returned as an integer.
package addition

import (
	"math"
	"strconv"
	"strings"
)

// Kind tells which representation a Number holds.
type Kind uint8

const (
	InvalidKind Kind = iota
	IntKind
	FloatKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	default:
		return "invalid"
	}
}

// Number is either an integer or a floating-point value. The zero Number is
// InvalidKind and is rejected by every summing function.
type Number struct {
	kind Kind
	i    int64
	f    float64
}

func Int(v int64) Number     { return Number{kind: IntKind, i: v} }
func Float(v float64) Number { return Number{kind: FloatKind, f: v} }

func (n Number) Kind() Kind  { return n.kind }
func (n Number) IsInt() bool { return n.kind == IntKind }

// Int64 returns the value truncated toward zero when n is a float.
func (n Number) Int64() int64 {
	if n.kind == FloatKind {
		return int64(n.f)
	}
	return n.i
}

func (n Number) Float64() float64 {
	if n.kind == IntKind {
		return float64(n.i)
	}
	return n.f
}

// Equal reports whether n and o have the same kind and value. Int(4) and
// Float(4) are not equal.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case IntKind:
		return n.i == o.i
	case FloatKind:
		return n.f == o.f || (math.IsNaN(n.f) && math.IsNaN(o.f))
	default:
		return true
	}
}

// String formats ints as "5" and floats with a fractional part, "7.0" or
// "3.14".
func (n Number) String() string {
	switch n.kind {
	case IntKind:
		return strconv.FormatInt(n.i, 10)
	case FloatKind:
		format := byte('f')
		if abs := math.Abs(n.f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
			format = 'e'
		}
		s := strconv.FormatFloat(n.f, format, -1, 64)
		if strings.ContainsAny(s, ".eIN") {
			return s
		}
		return s + ".0"
	default:
		return "<invalid>"
	}
}

// Normalize turns a float with no fractional part into an Int. Values that
// do not fit in an int64, NaN and infinities are returned unchanged.
func Normalize(n Number) Number {
	if n.kind != FloatKind {
		return n
	}
	f := n.f
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Mod(f, 1) != 0 {
		return n
	}
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return n
	}
	return Int(int64(f))
}
