package mpfloat

// Add returns the correctly rounded sum x+y at the larger of x's and
// y's precisions (or 1 bit if neither operand is Finite), rounded to
// Nearest.
func Add(x, y Float) Float {
	z, _ := AddPrecRound(x, y, defaultPrec(x, y), Nearest)
	return z
}

// Sub returns the correctly rounded difference x-y, with the same
// defaulting rules as Add.
func Sub(x, y Float) Float {
	z, _ := SubPrecRound(x, y, defaultPrec(x, y), Nearest)
	return z
}

// AddRound returns x+y rounded under rm at the default precision.
func AddRound(x, y Float, rm RoundingMode) (Float, Accuracy) {
	return AddPrecRound(x, y, defaultPrec(x, y), rm)
}

// SubRound returns x-y rounded under rm at the default precision.
func SubRound(x, y Float, rm RoundingMode) (Float, Accuracy) {
	return SubPrecRound(x, y, defaultPrec(x, y), rm)
}

// AddPrec returns x+y rounded to Nearest at precision prec.
func AddPrec(x, y Float, prec uint64) (Float, Accuracy) {
	return AddPrecRound(x, y, prec, Nearest)
}

// SubPrec returns x-y rounded to Nearest at precision prec.
func SubPrec(x, y Float, prec uint64) (Float, Accuracy) {
	return SubPrecRound(x, y, prec, Nearest)
}

// AddPrecRound returns x+y rounded to prec bits under rm, and the
// resulting Accuracy. This is the single conceptual kernel operation of
// spec.md §4.5.1; every other Add* adapter forwards here.
func AddPrecRound(x, y Float, prec uint64, rm RoundingMode) (Float, Accuracy) {
	return addPrecRoundCore(x, y, prec, rm, false)
}

// SubPrecRound returns x-y rounded to prec bits under rm, and the
// resulting Accuracy. Implemented, per spec.md §4.5.1, as addition with
// the internal subtract flag set.
func SubPrecRound(x, y Float, prec uint64, rm RoundingMode) (Float, Accuracy) {
	return addPrecRoundCore(x, y, prec, rm, true)
}

// AddAssign, AddRoundAssign, AddPrecAssign, and AddPrecRoundAssign mutate
// x in place to x+y, the Go rendering of the spec's mutating "assign"
// entry-point family (see DESIGN.md's Open Question resolution on the
// collapsed own/ref ownership surface).
func (x *Float) AddAssign(y Float)                               { *x, _ = AddPrecRound(*x, y, defaultPrec(*x, y), Nearest) }
func (x *Float) AddRoundAssign(y Float, rm RoundingMode) Accuracy { z, a := AddPrecRound(*x, y, defaultPrec(*x, y), rm); *x = z; return a }
func (x *Float) AddPrecAssign(y Float, prec uint64) Accuracy      { z, a := AddPrecRound(*x, y, prec, Nearest); *x = z; return a }
func (x *Float) AddPrecRoundAssign(y Float, prec uint64, rm RoundingMode) Accuracy {
	z, a := AddPrecRound(*x, y, prec, rm)
	*x = z
	return a
}

// SubAssign, SubRoundAssign, SubPrecAssign, and SubPrecRoundAssign mirror
// the Add* family for subtraction.
func (x *Float) SubAssign(y Float)                               { *x, _ = SubPrecRound(*x, y, defaultPrec(*x, y), Nearest) }
func (x *Float) SubRoundAssign(y Float, rm RoundingMode) Accuracy { z, a := SubPrecRound(*x, y, defaultPrec(*x, y), rm); *x = z; return a }
func (x *Float) SubPrecAssign(y Float, prec uint64) Accuracy      { z, a := SubPrecRound(*x, y, prec, Nearest); *x = z; return a }
func (x *Float) SubPrecRoundAssign(y Float, prec uint64, rm RoundingMode) Accuracy {
	z, a := SubPrecRound(*x, y, prec, rm)
	*x = z
	return a
}

// defaultPrec is "the larger of x's or y's precision", with non-Finite
// operands (NaN/Inf/Zero, which carry no significand and so report
// Precision() == 0) excluded from the max so that e.g. Add(Zero, Zero)
// doesn't try to default to precision 0, which every rounding
// operation's contract (spec.md §7, "Precision-zero violation") forbids.
func defaultPrec(x, y Float) uint64 {
	p := maxUint64(x.Precision(), y.Precision())
	if p == 0 {
		return 1
	}
	return p
}

func maxUint64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// addPrecRoundCore is the dispatcher of spec.md §4.5.1: it matches on
// the (x, y, subtract) operand-kind cross product and delegates to
// addMagnitude/subMagnitude for the Finite x Finite case.
func addPrecRoundCore(x, y Float, prec uint64, rm RoundingMode, subtract bool) (Float, Accuracy) {
	if prec == 0 {
		panic("mpfloat: AddPrecRound/SubPrecRound: precision must be >= 1")
	}

	if x.IsNaN() || y.IsNaN() {
		return NaN(), Equal
	}

	// Fold subtraction into addition by flipping y's sign up front, as
	// the original implementation does (see DESIGN.md's ledger entry for
	// add.go): everything below is then a pure addition of x and yAdj.
	yAdj := y
	if subtract {
		yAdj = yAdj.Neg()
	}

	switch {
	case x.IsInf(0) && yAdj.IsInf(0):
		if x.neg == yAdj.neg {
			return Inf(signInt(x.neg)), Equal
		}
		return NaN(), Equal
	case x.IsInf(0):
		return Inf(signInt(x.neg)), Equal
	case yAdj.IsInf(0):
		return Inf(signInt(yAdj.neg)), Equal
	}

	switch {
	case x.IsZero() && yAdj.IsZero():
		if x.neg == yAdj.neg {
			return SignedZero(signInt(x.neg)), Equal
		}
		return cancelledZero(rm), Equal
	case x.IsZero():
		return yAdj.SetPrecRound(prec, rm)
	case yAdj.IsZero():
		return x.SetPrecRound(prec, rm)
	}

	// Both Finite and nonzero.
	if x.neg == yAdj.neg {
		return addSameSign(x, yAdj, prec, rm)
	}
	return addOppositeSign(x, yAdj, prec, rm)
}

func signInt(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// cancelledZero implements the "Floor => -0, else +0" rule spec.md §4.5.1
// table (a) gives for every exact same-magnitude cancellation, whether it
// comes from x + (-x) or from adding two opposite-signed zeros.
func cancelledZero(rm RoundingMode) Float {
	if rm == Floor {
		return SignedZero(-1)
	}
	return SignedZero(1)
}

// addSameSign handles spec.md §4.5.1(b): x and y (after folding in
// `subtract`) share a sign; align and add their magnitudes exactly, then
// round once to prec bits under the direction-adjusted rounding mode.
func addSameSign(x, y Float, prec uint64, rm RoundingMode) (Float, Accuracy) {
	resultNeg := x.neg
	sumMant, lowScale := addMagnitudesExact(x.mant, x.exp, y.mant, y.exp)
	mode := effectiveMagnitudeMode(rm, resultNeg)
	roundedMant, acc, overflow := roundNatural(sumMant, uint(prec), 0, mode)
	exp := lowScale + int64(sumMant.BitLen())
	if overflow {
		exp++
	}
	if resultNeg {
		acc = acc.Reverse()
	}
	return newFinite(resultNeg, exp, prec, roundedMant), acc
}

// addOppositeSign handles spec.md §4.5.1(c): x and y (after folding in
// `subtract`) have opposite signs, so the magnitudes are subtracted,
// taking the sign of the larger operand — including the "sign swap" case
// where exponents tie and the mantissas cross.
func addOppositeSign(x, y Float, prec uint64, rm RoundingMode) (Float, Accuracy) {
	switch ucmpFinite(x, y) {
	case 0:
		return cancelledZero(rm), Equal
	case 1:
		return subMagnitudesRounded(x, y, prec, rm)
	default:
		return subMagnitudesRounded(y, x, prec, rm)
	}
}

// subMagnitudesRounded computes |big| - |small| (big's magnitude is
// strictly larger) and rounds to prec bits, reporting the result with
// big's sign.
func subMagnitudesRounded(big, small Float, prec uint64, rm RoundingMode) (Float, Accuracy) {
	resultNeg := big.neg
	diffMant, lowScale := subMagnitudesExact(big.mant, big.exp, small.mant, small.exp)
	mode := effectiveMagnitudeMode(rm, resultNeg)
	roundedMant, acc, overflow := roundNatural(diffMant, uint(prec), 0, mode)
	exp := lowScale + int64(diffMant.BitLen())
	if overflow {
		exp++
	}
	if resultNeg {
		acc = acc.Reverse()
	}
	return newFinite(resultNeg, exp, prec, roundedMant), acc
}

// addMagnitudesExact returns the EXACT (unrounded) sum of two positive
// significands given in the Float representation (mant, exp, with
// mant.BitLen() implicitly giving each operand's precision), plus the
// "low scale" (the power of two the least-significant bit of the sum
// represents) needed to recover the sum's true exponent. No bits are
// ever discarded here — alignment always shifts the operand whose
// least-significant bit sits higher LEFT (extending it with zero low
// bits) down to the other operand's low scale, rather than shifting
// either one right, exactly as the teacher's uadd does (see
// DESIGN.md), so a single rounding pass at the end is always exact
// relative to the true sum.
func addMagnitudesExact(xMant Natural, xExp int64, yMant Natural, yExp int64) (sum Natural, lowScale int64) {
	exLow := xExp - int64(xMant.BitLen())
	eyLow := yExp - int64(yMant.BitLen())
	switch {
	case exLow < eyLow:
		shifted := yMant.Lsh(uint(eyLow - exLow))
		return xMant.Add(shifted), exLow
	case exLow > eyLow:
		shifted := xMant.Lsh(uint(exLow - eyLow))
		return shifted.Add(yMant), eyLow
	default:
		return xMant.Add(yMant), exLow
	}
}

// subMagnitudesExact returns the EXACT difference xMant-yMant (the
// caller guarantees x's magnitude is strictly larger), using the same
// left-shift-to-align alignment as addMagnitudesExact.
func subMagnitudesExact(xMant Natural, xExp int64, yMant Natural, yExp int64) (diff Natural, lowScale int64) {
	exLow := xExp - int64(xMant.BitLen())
	eyLow := yExp - int64(yMant.BitLen())
	switch {
	case exLow < eyLow:
		shifted := yMant.Lsh(uint(eyLow - exLow))
		return xMant.Sub(shifted), exLow
	case exLow > eyLow:
		shifted := xMant.Lsh(uint(exLow - eyLow))
		return shifted.Sub(yMant), eyLow
	default:
		return xMant.Sub(yMant), exLow
	}
}
