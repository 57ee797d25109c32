package mpfloat

// AdaptiveLoopTrace, when non-nil, is called once per iteration of the
// AddRationalPrecRound/SubRationalPrecRound loop, before that iteration
// converts y to the next working precision. It exists purely for
// observability (mpcalc's --verbose flag wires it to a logger); the core
// package stays free of any logging dependency, so the hook carries only
// plain values, not a logger interface.
var AdaptiveLoopTrace func(workingPrec uint64, iteration int)

// AddRationalPrecRound returns x+y, correctly rounded to prec bits under
// rm, where y is an exact (possibly non-dyadic, possibly non-terminating
// in binary) Rational. This is the adaptive-precision loop of spec.md
// §4.5.1(d): since y generally has no finite binary expansion, x+y is
// approximated at a growing working precision until enough of the
// result's leading bits are known to round unambiguously.
func AddRationalPrecRound(x Float, y Rational, prec uint64, rm RoundingMode) (Float, Accuracy) {
	return addRationalPrecRoundCore(x, y, prec, rm, false)
}

// SubRationalPrecRound returns x-y, correctly rounded.
func SubRationalPrecRound(x Float, y Rational, prec uint64, rm RoundingMode) (Float, Accuracy) {
	return addRationalPrecRoundCore(x, y, prec, rm, true)
}

// RationalAddFloatPrecRound returns x+y (operands in the mirrored
// order), correctly rounded. Addition commutes, so this simply forwards
// to AddRationalPrecRound with the operands swapped — the mirrored entry
// point exists because the original API gives Rational+Float and
// Float+Rational each their own method.
func RationalAddFloatPrecRound(x Rational, y Float, prec uint64, rm RoundingMode) (Float, Accuracy) {
	return AddRationalPrecRound(y, x, prec, rm)
}

// RationalSubFloatPrecRound returns x-y (x Rational, y Float), correctly
// rounded: x-y == (-y)+x, so this forwards to AddRationalPrecRound with
// y negated and the operands swapped.
func RationalSubFloatPrecRound(x Rational, y Float, prec uint64, rm RoundingMode) (Float, Accuracy) {
	return AddRationalPrecRound(y.Neg(), x, prec, rm)
}

// AddRational and SubRational round to Nearest at x's own precision (or
// 1 bit if x is not Finite), mirroring Add/Sub's defaulting rule.
func AddRational(x Float, y Rational) Float {
	z, _ := AddRationalPrecRound(x, y, ratDefaultPrec(x), Nearest)
	return z
}

func SubRational(x Float, y Rational) Float {
	z, _ := SubRationalPrecRound(x, y, ratDefaultPrec(x), Nearest)
	return z
}

// AddRationalRound and SubRationalRound round under rm at x's default
// precision, the Rational-operand counterpart of AddRound/SubRound.
func AddRationalRound(x Float, y Rational, rm RoundingMode) (Float, Accuracy) {
	return AddRationalPrecRound(x, y, ratDefaultPrec(x), rm)
}

func SubRationalRound(x Float, y Rational, rm RoundingMode) (Float, Accuracy) {
	return SubRationalPrecRound(x, y, ratDefaultPrec(x), rm)
}

// AddRationalPrec and SubRationalPrec round to Nearest at precision prec,
// the Rational-operand counterpart of AddPrec/SubPrec.
func AddRationalPrec(x Float, y Rational, prec uint64) (Float, Accuracy) {
	return AddRationalPrecRound(x, y, prec, Nearest)
}

func SubRationalPrec(x Float, y Rational, prec uint64) (Float, Accuracy) {
	return SubRationalPrecRound(x, y, prec, Nearest)
}

// AddRationalAssign, AddRationalRoundAssign, AddRationalPrecAssign, and
// AddRationalPrecRoundAssign mutate x in place to x+y, the Rational-operand
// counterpart of add.go's AddAssign family (see DESIGN.md's Open Question
// resolution on the collapsed own/ref ownership surface).
func (x *Float) AddRationalAssign(y Rational) {
	*x, _ = AddRationalPrecRound(*x, y, ratDefaultPrec(*x), Nearest)
}
func (x *Float) AddRationalRoundAssign(y Rational, rm RoundingMode) Accuracy {
	z, a := AddRationalPrecRound(*x, y, ratDefaultPrec(*x), rm)
	*x = z
	return a
}
func (x *Float) AddRationalPrecAssign(y Rational, prec uint64) Accuracy {
	z, a := AddRationalPrecRound(*x, y, prec, Nearest)
	*x = z
	return a
}
func (x *Float) AddRationalPrecRoundAssign(y Rational, prec uint64, rm RoundingMode) Accuracy {
	z, a := AddRationalPrecRound(*x, y, prec, rm)
	*x = z
	return a
}

// SubRationalAssign, SubRationalRoundAssign, SubRationalPrecAssign, and
// SubRationalPrecRoundAssign mirror the AddRational* family for
// subtraction.
func (x *Float) SubRationalAssign(y Rational) {
	*x, _ = SubRationalPrecRound(*x, y, ratDefaultPrec(*x), Nearest)
}
func (x *Float) SubRationalRoundAssign(y Rational, rm RoundingMode) Accuracy {
	z, a := SubRationalPrecRound(*x, y, ratDefaultPrec(*x), rm)
	*x = z
	return a
}
func (x *Float) SubRationalPrecAssign(y Rational, prec uint64) Accuracy {
	z, a := SubRationalPrecRound(*x, y, prec, Nearest)
	*x = z
	return a
}
func (x *Float) SubRationalPrecRoundAssign(y Rational, prec uint64, rm RoundingMode) Accuracy {
	z, a := SubRationalPrecRound(*x, y, prec, rm)
	*x = z
	return a
}

func ratDefaultPrec(x Float) uint64 {
	if p := x.Precision(); p != 0 {
		return p
	}
	return 1
}

// RationalAddFloat, RationalAddFloatRound, and RationalAddFloatPrec give
// the mirrored (Rational, Float) operand order the same
// default/round/prec granularity as RationalAddFloatPrecRound, matching
// the un-mirrored AddRational family one-for-one.
func RationalAddFloat(x Rational, y Float) Float {
	z, _ := RationalAddFloatPrecRound(x, y, ratDefaultPrec(y), Nearest)
	return z
}

func RationalAddFloatRound(x Rational, y Float, rm RoundingMode) (Float, Accuracy) {
	return RationalAddFloatPrecRound(x, y, ratDefaultPrec(y), rm)
}

func RationalAddFloatPrec(x Rational, y Float, prec uint64) (Float, Accuracy) {
	return RationalAddFloatPrecRound(x, y, prec, Nearest)
}

// RationalSubFloat, RationalSubFloatRound, and RationalSubFloatPrec mirror
// RationalAddFloat's family for x-y (x Rational, y Float).
func RationalSubFloat(x Rational, y Float) Float {
	z, _ := RationalSubFloatPrecRound(x, y, ratDefaultPrec(y), Nearest)
	return z
}

func RationalSubFloatRound(x Rational, y Float, rm RoundingMode) (Float, Accuracy) {
	return RationalSubFloatPrecRound(x, y, ratDefaultPrec(y), rm)
}

func RationalSubFloatPrec(x Rational, y Float, prec uint64) (Float, Accuracy) {
	return RationalSubFloatPrecRound(x, y, prec, Nearest)
}

// addRationalPrecRoundCore implements the loop. subtract folds into a
// sign flip on y up front exactly as addPrecRoundCore does for the
// Float+Float kernel, so everything below computes x + ySigned.
func addRationalPrecRoundCore(x Float, y Rational, prec uint64, rm RoundingMode, subtract bool) (Float, Accuracy) {
	if prec == 0 {
		panic("mpfloat: AddRationalPrecRound/SubRationalPrecRound: precision must be >= 1")
	}
	if x.IsNaN() {
		return NaN(), Equal
	}

	ySigned := y
	if subtract {
		ySigned = ySigned.Neg()
	}

	if x.IsInf(0) {
		return x, Equal
	}
	if x.IsZero() && ySigned.IsZero() {
		// A Rational zero carries no sign of its own, so it plays the role
		// of the Float+Float table's "+0" operand (spec.md §4.5.1(a)):
		// only a negative x can survive the cancellation, and only under
		// Floor.
		if x.neg && rm == Floor {
			return SignedZero(-1), Equal
		}
		return SignedZero(1), Equal
	}
	if ySigned.IsZero() {
		return x.SetPrecRound(prec, rm)
	}
	if x.IsZero() {
		return FromRationalPrecRound(ySigned, prec, rm)
	}

	// x Finite and nonzero, y nonzero: the general adaptive loop.
	workingPrec := prec + 10
	increment := uint64(_W)

	for iteration := 1; ; iteration++ {
		if AdaptiveLoopTrace != nil {
			AdaptiveLoopTrace(workingPrec, iteration)
		}
		yf, accYf := FromRationalPrec(ySigned, workingPrec)
		if accYf == Equal {
			// y is exactly representable at this working precision, so
			// x+yf is x+y exactly: one ordinary Finite+Finite add gives
			// both the correctly rounded value and its true ternary.
			return AddPrecRound(x, yf, prec, rm)
		}

		var exactMant Natural
		var lowScale int64
		var resultNeg bool
		sameSign := x.neg == yf.neg
		switch {
		case sameSign:
			resultNeg = x.neg
			exactMant, lowScale = addMagnitudesExact(x.mant, x.exp, yf.mant, yf.exp)
		default:
			switch ucmpFinite(x, yf) {
			case 0:
				// x exactly cancels the APPROXIMATION yf, which (since
				// yf != y strictly here) says nothing about x+y itself;
				// more working precision is required before this
				// iteration's arithmetic means anything.
				workingPrec += increment
				increment = workingPrec >> 1
				continue
			case 1:
				resultNeg = x.neg
				exactMant, lowScale = subMagnitudesExact(x.mant, x.exp, yf.mant, yf.exp)
			default:
				resultNeg = yf.neg
				exactMant, lowScale = subMagnitudesExact(yf.mant, yf.exp, x.mant, x.exp)
			}
		}

		// yf carries an error strictly less than 1 ulp at its own scale
		// (2**eyLow); that is the only source of uncertainty in
		// exactMant, since x entered the combination exactly.
		eyLow := yf.exp - int64(workingPrec)
		n := int64(exactMant.BitLen())
		errBits := n - (eyLow - lowScale)
		if errBits < 0 {
			errBits = 0
		}

		mode := effectiveMagnitudeMode(rm, resultNeg)
		mant, acc, overflow, ok := roundKnownInexact(exactMant, uint(errBits), uint(prec), mode)
		if ok {
			exp := lowScale + n
			if overflow {
				exp++
			}
			if resultNeg {
				acc = acc.Reverse()
			}
			return newFinite(resultNeg, exp, prec, mant), acc
		}

		workingPrec += increment
		increment = workingPrec >> 1
	}
}
