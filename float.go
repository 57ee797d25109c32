package mpfloat

import "fmt"

// debugMpfloat enables the invariant checks the teacher (math/big's
// debugFloat) runs on every mutating operation. Flip to false once the
// implementation is trusted; kept true here the way the teacher shipped
// with debugFloat := true.
const debugMpfloat = true

type floatKind uint8

const (
	kindFinite floatKind = iota
	kindZero
	kindInf
	kindNaN
)

// Float is a multi-precision binary floating-point value: one of NaN,
// +Inf, -Inf, +0, -0, or a Finite value
//
//	sign * significand * 2**(exponent - precision)
//
// with significand normalized so that its bit length is exactly
// precision (top bit set, per spec.md §3). Float is a plain value type;
// assigning one Float to another is a full, safe copy because every
// operation below produces a fresh Natural rather than mutating a
// shared one in place — there is no separate "clone" step to remember.
type Float struct {
	kind floatKind
	neg  bool
	exp  int64
	prec uint64
	mant Natural
}

// NaN returns the single NaN value.
func NaN() Float {
	return Float{kind: kindNaN}
}

// Inf returns +Inf (sign >= 0) or -Inf (sign < 0).
func Inf(sign int) Float {
	return Float{kind: kindInf, neg: sign < 0}
}

// SignedZero returns +0 (sign >= 0) or -0 (sign < 0).
func SignedZero(sign int) Float {
	return Float{kind: kindZero, neg: sign < 0}
}

// newFinite builds a Finite value, validating (under debugMpfloat) that
// mant.BitLen() == prec as spec.md §3 requires.
func newFinite(neg bool, exp int64, prec uint64, mant Natural) Float {
	f := Float{kind: kindFinite, neg: neg, exp: exp, prec: prec, mant: mant}
	if debugMpfloat {
		f.validate()
	}
	return f
}

func (x Float) validate() {
	if x.kind != kindFinite {
		return
	}
	if x.mant.IsZero() {
		panic("mpfloat: Finite Float with zero significand")
	}
	if x.prec == 0 {
		panic(fmt.Sprintf("mpfloat: invalid precision %d", x.prec))
	}
	if uint64(x.mant.BitLen()) != x.prec {
		panic(fmt.Sprintf("mpfloat: significand bit length %d does not match precision %d", x.mant.BitLen(), x.prec))
	}
}

// IsNaN reports whether x is the NaN value.
func (x Float) IsNaN() bool { return x.kind == kindNaN }

// IsInf reports whether x is an infinity. If sign > 0 it must be +Inf,
// if sign < 0 it must be -Inf, if sign == 0 either sign qualifies.
func (x Float) IsInf(sign int) bool {
	return x.kind == kindInf && (sign == 0 || x.neg == (sign < 0))
}

// IsZero reports whether x is +0 or -0.
func (x Float) IsZero() bool {
	return x.kind == kindZero
}

// IsFinite reports whether x is a Finite value (possibly zero would NOT
// count here — zero has its own kind; IsFinite is true only for nonzero
// finite values carrying a significand).
func (x Float) IsFinite() bool {
	return x.kind == kindFinite
}

// Signbit reports the sign bit of x: true for negative values, -0, and
// -Inf. It is false for NaN by convention (NaN carries no sign here).
func (x Float) Signbit() bool {
	return x.kind != kindNaN && x.neg
}

// Sign returns -1, 0, or +1 according to the sign of x. It returns 0 for
// both +0 and -0, and panics for NaN (callers must check IsNaN first).
func (x Float) Sign() int {
	switch x.kind {
	case kindNaN:
		panic("mpfloat: Sign of NaN")
	case kindZero:
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Precision returns the declared precision of x in bits. It is 0 for
// NaN, Inf, and zero, which carry no significand.
func (x Float) Precision() uint64 {
	if x.kind != kindFinite {
		return 0
	}
	return x.prec
}

// GetExponent returns the unbiased exponent of a Finite x (such that
// 2**(exponent-1) <= |x| < 2**exponent), and false for NaN/Inf/Zero.
func (x Float) GetExponent() (int64, bool) {
	if x.kind != kindFinite {
		return 0, false
	}
	return x.exp, true
}

// Neg returns -x.
func (x Float) Neg() Float {
	switch x.kind {
	case kindNaN:
		return x
	default:
		x.neg = !x.neg
		return x
	}
}

// Abs returns |x|.
func (x Float) Abs() Float {
	if x.kind != kindNaN {
		x.neg = false
	}
	return x
}

// Equal reports whether x and y compare equal under IEEE-like rules:
// NaN is never equal to anything (including itself), and +0 == -0.
func (x Float) Equal(y Float) bool {
	if x.kind == kindNaN || y.kind == kindNaN {
		return false
	}
	return x.Cmp(y) == 0
}

// Cmp compares x and y and returns -1, 0, or +1. It panics if either
// value is NaN (NaN has no ordering; callers must check IsNaN first).
func (x Float) Cmp(y Float) int {
	if x.kind == kindNaN || y.kind == kindNaN {
		panic("mpfloat: Cmp involving NaN")
	}
	xz, yz := x.kind == kindZero, y.kind == kindZero
	if xz && yz {
		return 0
	}
	xSign, ySign := signOf(x), signOf(y)
	if xSign != ySign {
		if xSign < ySign {
			return -1
		}
		return 1
	}
	// equal signs, at least one nonzero
	if xz {
		return -xSign // y is the nonzero one, with sign xSign
	}
	if yz {
		return xSign
	}
	if x.kind == kindInf || y.kind == kindInf {
		xi, yi := x.kind == kindInf, y.kind == kindInf
		switch {
		case xi && yi:
			return 0
		case xi:
			return xSign
		default:
			return -xSign
		}
	}
	// both Finite, same sign
	c := ucmpFinite(x, y)
	if xSign < 0 {
		c = -c
	}
	return c
}

func signOf(x Float) int {
	if x.kind == kindZero {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// ucmpFinite compares the magnitudes of two Finite values. When the
// exponents agree it cannot compare the significands directly unless
// they share a precision: a significand is normalized to a bit length
// equal to its own precision, so two different precisions put the same
// exponent bracket at different scales. Shifting the lower-precision
// significand up to match (an exact operation — it only appends zero
// low bits) puts both on the same integer scale before comparing.
func ucmpFinite(x, y Float) int {
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return 1
	}
	switch {
	case x.prec == y.prec:
		return x.mant.Cmp(y.mant)
	case x.prec < y.prec:
		return x.mant.Lsh(uint(y.prec - x.prec)).Cmp(y.mant)
	default:
		return x.mant.Cmp(y.mant.Lsh(uint(x.prec - y.prec)))
	}
}

// SetPrecRound returns x rounded to prec bits under rm, and the Accuracy
// of that rounding. For NaN/Inf/Zero it is a no-op returning Equal (they
// carry no significand to round). prec == 0 is a contract violation.
func (x Float) SetPrecRound(prec uint64, rm RoundingMode) (Float, Accuracy) {
	if prec == 0 {
		panic("mpfloat: SetPrecRound: precision must be >= 1")
	}
	switch x.kind {
	case kindNaN, kindInf, kindZero:
		return x, Equal
	}
	if x.prec == prec {
		return x, Equal
	}
	mode := effectiveMagnitudeMode(rm, x.neg)
	sig, acc, overflow := roundNatural(x.mant, uint(prec), 0, mode)
	exp := x.exp
	if overflow {
		exp++
	}
	out := newFinite(x.neg, exp, prec, sig)
	if x.neg {
		acc = acc.Reverse()
	}
	return out, acc
}

// SetPrecRoundAssign mutates x in place to the result of SetPrecRound.
func (x *Float) SetPrecRoundAssign(prec uint64, rm RoundingMode) Accuracy {
	z, acc := x.SetPrecRound(prec, rm)
	*x = z
	return acc
}

// FromUint64 returns v rounded to prec bits under rm.
func FromUint64(v uint64, prec uint64, rm RoundingMode) (Float, Accuracy) {
	if v == 0 {
		return SignedZero(1), Equal
	}
	n := NaturalFromUint64(v)
	b := n.BitLen()
	f := newFinite(false, int64(b), uint64(b), n)
	return f.SetPrecRound(prec, rm)
}

// FromInt64 returns v rounded to prec bits under rm.
func FromInt64(v int64, prec uint64, rm RoundingMode) (Float, Accuracy) {
	if v == 0 {
		return SignedZero(1), Equal
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	f, acc := FromUint64(u, prec, rm)
	if neg {
		f = f.Neg()
		acc = acc.Reverse()
	}
	return f, acc
}
