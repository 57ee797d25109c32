package mpfloat

import "fmt"

// Rational is an arbitrary-precision fraction signPositive * num/den in
// lowest terms, per spec.md §3: den is never zero, gcd(num, den) == 1,
// and zero is the unique representation (0, 1, signPositive == true).
type Rational struct {
	signPositive bool
	num, den     Natural
}

// NewRational returns the reduced fraction signPositive*num/den. It
// panics if den is zero.
func NewRational(signPositive bool, num, den Natural) Rational {
	if den.IsZero() {
		panic("mpfloat: NewRational: zero denominator")
	}
	if num.IsZero() {
		return Rational{signPositive: true, den: NaturalFromUint64(1)}
	}
	g := GCD(num, den)
	if g.Cmp(NaturalFromUint64(1)) != 0 {
		num, _ = num.DivMod(g)
		den, _ = den.DivMod(g)
	}
	return Rational{signPositive: signPositive, num: num, den: den}
}

// RationalFromInt64s returns the reduced fraction num/den.
func RationalFromInt64s(num, den int64) Rational {
	if den == 0 {
		panic("mpfloat: RationalFromInt64s: zero denominator")
	}
	neg := (num < 0) != (den < 0)
	nu, nd := num, den
	if nu < 0 {
		nu = -nu
	}
	if nd < 0 {
		nd = -nd
	}
	return NewRational(!neg, NaturalFromUint64(uint64(nu)), NaturalFromUint64(uint64(nd)))
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool {
	return r.num.IsZero()
}

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rational) Sign() int {
	if r.num.IsZero() {
		return 0
	}
	if r.signPositive {
		return 1
	}
	return -1
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.IsZero() {
		return r
	}
	r.signPositive = !r.signPositive
	return r
}

func (r Rational) String() string {
	sign := ""
	if !r.signPositive {
		sign = "-"
	}
	if r.den.Cmp(NaturalFromUint64(1)) == 0 {
		return fmt.Sprintf("%s%s", sign, r.num.String())
	}
	return fmt.Sprintf("%s%s/%s", sign, r.num.String(), r.den.String())
}

// FromRationalPrec converts r to the nearest Float at precision prec,
// rounding ties to even. The returned Accuracy is Equal exactly when r
// is exactly representable at that precision — this is the "oracle"
// contract spec.md §4.3/§6 requires from L3, used by the adaptive loop
// in add_rational.go to detect the CheckExact transition.
func FromRationalPrec(r Rational, prec uint64) (Float, Accuracy) {
	return rationalToFloat(r, prec, Nearest)
}

// FromRationalPrecRound converts r to a Float at precision prec, rounded
// under rm.
func FromRationalPrecRound(r Rational, prec uint64, rm RoundingMode) (Float, Accuracy) {
	return rationalToFloat(r, prec, rm)
}

// rationalToFloat is the shared implementation backing both conversion
// entry points. Grounded on the teacher's uquo (Go-zh-go.old's
// math/big/float.go) for the "compute an oversized quotient, track the
// remainder as a sticky bit, then round once" shape, generalized from
// dividing two Floats to dividing two Naturals exactly.
func rationalToFloat(r Rational, prec uint64, rm RoundingMode) (Float, Accuracy) {
	if prec == 0 {
		panic("mpfloat: FromRationalPrec: precision must be >= 1")
	}
	if r.IsZero() {
		return SignedZero(1), Equal
	}
	neg := !r.signPositive
	num, den := r.num, r.den

	// guard bits beyond prec so the quotient's own rounding bit and a
	// meaningful span of sticky bits are available without needing a
	// second pass.
	const guardBits = 2
	bn, bd := int64(num.BitLen()), int64(den.BitLen())
	shift := bd + int64(prec) + guardBits - bn

	var shiftedNum, adjDen Natural
	if shift >= 0 {
		shiftedNum = num.Lsh(uint(shift))
		adjDen = den
	} else {
		shiftedNum = num
		adjDen = den.Lsh(uint(-shift))
	}

	q, rem := shiftedNum.DivMod(adjDen)
	sbit := uint(0)
	if !rem.IsZero() {
		sbit = 1
	}

	qBits := q.BitLen()
	lowScale := -shift

	mode := effectiveMagnitudeMode(rm, neg)
	roundedMant, acc, overflow := roundNatural(q, uint(prec), sbit, mode)
	exp := lowScale + int64(qBits)
	if overflow {
		exp++
	}
	if neg {
		acc = acc.Reverse()
	}
	return newFinite(neg, exp, prec, roundedMant), acc
}
