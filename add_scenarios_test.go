package mpfloat

import "testing"

// Decimal digit strings for pi and e (one leading integer digit, the rest
// fractional), used only to build the high-precision Rational constants
// the end-to-end scenarios below add together. naturalFromDecimalString
// mirrors the digit-accumulation loop natToDecimal runs in reverse.
const (
	piDigits = "314159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"
	eDigits  = "271828182845904523536028747135266249775724709369995957496696762772407663035354759457138217852516642742"
)

func naturalFromDecimalString(s string) Natural {
	n := Natural{}
	ten := NaturalFromUint64(10)
	for i := 0; i < len(s); i++ {
		n = n.Mul(ten).Add(NaturalFromUint64(uint64(s[i] - '0')))
	}
	return n
}

func decimalDigitsToRational(digits string) Rational {
	fracLen := uint(len(digits) - 1) // single leading integer digit in both constants
	num := naturalFromDecimalString(digits)
	den := powNatural(NaturalFromUint64(10), fracLen)
	return NewRational(true, num, den)
}

func piRational() Rational { return decimalDigitsToRational(piDigits) }
func eRational() Rational  { return decimalDigitsToRational(eDigits) }

// scenarioConstants returns pi and e rounded to IEEE-double-equivalent
// 53-bit precision, the inputs the S1-S5 scenarios in spec.md §8 add
// (S6/S7 use pi alone).
func scenarioConstants(t *testing.T) (pi, e Float) {
	t.Helper()
	pi, piAcc := FromRationalPrecRound(piRational(), 53, Nearest)
	if piAcc == Equal {
		t.Fatal("pi is irrational, should never round exactly")
	}
	e, eAcc := FromRationalPrecRound(eRational(), 53, Nearest)
	if eAcc == Equal {
		t.Fatal("e is irrational, should never round exactly")
	}
	return pi, e
}

// referenceSum is the exact (unrounded) sum of the 53-bit pi/e constants,
// computed at a working precision generous enough that no rounding loss
// occurs; every scenario's expected output is this value re-rounded to
// the scenario's target precision, per TESTABLE PROPERTIES #1.
func referenceSum(t *testing.T, pi, e Float) Float {
	t.Helper()
	sum, acc := AddPrecRound(pi, e, 200, Nearest)
	if acc != Equal {
		t.Fatal("200-bit working precision should exactly capture the 53+53 bit sum")
	}
	return sum
}

func checkScenario(t *testing.T, name string, got Float, gotAcc Accuracy, want Float, wantAcc Accuracy) {
	t.Helper()
	if got.Cmp(want) != 0 {
		t.Errorf("%s: got %s, want %s", name, got, want)
	}
	if gotAcc != wantAcc {
		t.Errorf("%s: accuracy = %s, want %s", name, gotAcc, wantAcc)
	}
}

// TestScenarioPiPlusEFloor5 is S1: add_prec_round(pi, e, p=5, Floor).
func TestScenarioPiPlusEFloor5(t *testing.T) {
	pi, e := scenarioConstants(t)
	ref := referenceSum(t, pi, e)
	want, wantAcc := ref.SetPrecRound(5, Floor)
	got, gotAcc := AddPrecRound(pi, e, 5, Floor)
	checkScenario(t, "S1", got, gotAcc, want, wantAcc)
	if gotAcc != Less {
		t.Errorf("S1: accuracy = %s, want Less", gotAcc)
	}
}

// TestScenarioPiPlusECeiling5 is S2: add_prec_round(pi, e, p=5, Ceiling).
func TestScenarioPiPlusECeiling5(t *testing.T) {
	pi, e := scenarioConstants(t)
	ref := referenceSum(t, pi, e)
	want, wantAcc := ref.SetPrecRound(5, Ceiling)
	got, gotAcc := AddPrecRound(pi, e, 5, Ceiling)
	checkScenario(t, "S2", got, gotAcc, want, wantAcc)
	if gotAcc != Greater {
		t.Errorf("S2: accuracy = %s, want Greater", gotAcc)
	}
	if got.Text() != "6" {
		t.Errorf("S2: Text() = %q, want \"6\"", got.Text())
	}
}

// TestScenarioPiPlusENearest5 is S3: add_prec_round(pi, e, p=5, Nearest).
func TestScenarioPiPlusENearest5(t *testing.T) {
	pi, e := scenarioConstants(t)
	ref := referenceSum(t, pi, e)
	want, wantAcc := ref.SetPrecRound(5, Nearest)
	got, gotAcc := AddPrecRound(pi, e, 5, Nearest)
	checkScenario(t, "S3", got, gotAcc, want, wantAcc)
	if gotAcc != Less {
		t.Errorf("S3: accuracy = %s, want Less", gotAcc)
	}
	// Nearest and Floor must agree here: the true sum sits closer to the
	// lower grid point than to the upper one at 5-bit precision.
	floorGot, _ := AddPrecRound(pi, e, 5, Floor)
	if got.Cmp(floorGot) != 0 {
		t.Errorf("S3: Nearest = %s, want same as Floor = %s", got, floorGot)
	}
}

// TestScenarioPiPlusEPrec20 is S4: p=20, Floor and Ceiling.
func TestScenarioPiPlusEPrec20(t *testing.T) {
	pi, e := scenarioConstants(t)
	ref := referenceSum(t, pi, e)

	wantFloor, wantFloorAcc := ref.SetPrecRound(20, Floor)
	gotFloor, gotFloorAcc := AddPrecRound(pi, e, 20, Floor)
	checkScenario(t, "S4 Floor", gotFloor, gotFloorAcc, wantFloor, wantFloorAcc)
	if gotFloorAcc != Less {
		t.Errorf("S4 Floor: accuracy = %s, want Less", gotFloorAcc)
	}

	wantCeil, wantCeilAcc := ref.SetPrecRound(20, Ceiling)
	gotCeil, gotCeilAcc := AddPrecRound(pi, e, 20, Ceiling)
	checkScenario(t, "S4 Ceiling", gotCeil, gotCeilAcc, wantCeil, wantCeilAcc)
	if gotCeilAcc != Greater {
		t.Errorf("S4 Ceiling: accuracy = %s, want Greater", gotCeilAcc)
	}

	// The sum is inexact at 20 bits, so Ceiling must lie strictly above
	// Floor.
	if gotCeil.Cmp(gotFloor) <= 0 {
		t.Error("S4: Ceiling result should be strictly greater than Floor result")
	}
}

// TestScenarioPiPlusE53Bit is S5: add_round(pi, e, Nearest/Ceiling) at the
// default (53-bit, since both inputs carry that precision) precision.
func TestScenarioPiPlusE53Bit(t *testing.T) {
	pi, e := scenarioConstants(t)
	ref := referenceSum(t, pi, e)

	wantNearest, wantNearestAcc := ref.SetPrecRound(53, Nearest)
	gotNearest, gotNearestAcc := AddRound(pi, e, Nearest)
	checkScenario(t, "S5 Nearest", gotNearest, gotNearestAcc, wantNearest, wantNearestAcc)
	if gotNearestAcc != Less {
		t.Errorf("S5 Nearest: accuracy = %s, want Less", gotNearestAcc)
	}
	// Text renders the exact binary value; its shortest round-trip
	// decimal form is 5.859874482048838.
	if got := gotNearest.Text(); got != "5.85987448204883776270435191690921783447265625" {
		t.Errorf("S5 Nearest: Text() = %q, want \"5.85987448204883776270435191690921783447265625\"", got)
	}

	wantCeil, wantCeilAcc := ref.SetPrecRound(53, Ceiling)
	gotCeil, gotCeilAcc := AddRound(pi, e, Ceiling)
	checkScenario(t, "S5 Ceiling", gotCeil, gotCeilAcc, wantCeil, wantCeilAcc)
	if gotCeilAcc != Greater {
		t.Errorf("S5 Ceiling: accuracy = %s, want Greater", gotCeilAcc)
	}
	// Shortest round-trip decimal form: 5.859874482048839.
	if got := gotCeil.Text(); got != "5.85987448204883865088277161703445017337799072265625" {
		t.Errorf("S5 Ceiling: Text() = %q, want \"5.85987448204883865088277161703445017337799072265625\"", got)
	}
}

// scenarioRatReference is the reference sum pi + 1/3, computed at a
// working precision far beyond what S6/S7 round to, so re-rounding it
// stands in for the true (never terminating) binary expansion.
func scenarioRatReference(t *testing.T, pi Float, oneThird Rational) Float {
	t.Helper()
	sum, acc := AddRationalPrecRound(pi, oneThird, 200, Nearest)
	if acc == Equal {
		t.Fatal("pi + 1/3 should never be exactly representable")
	}
	return sum
}

// TestScenarioPiPlusOneThirdPrec5 is S6: add_rational_prec_round(pi, 1/3,
// p=5, Floor/Ceiling/Nearest).
func TestScenarioPiPlusOneThirdPrec5(t *testing.T) {
	pi, _ := scenarioConstants(t)
	oneThird := RationalFromInt64s(1, 3)
	ref := scenarioRatReference(t, pi, oneThird)

	wantFloor, wantFloorAcc := ref.SetPrecRound(5, Floor)
	gotFloor, gotFloorAcc := AddRationalPrecRound(pi, oneThird, 5, Floor)
	checkScenario(t, "S6 Floor", gotFloor, gotFloorAcc, wantFloor, wantFloorAcc)
	if gotFloorAcc != Less {
		t.Errorf("S6 Floor: accuracy = %s, want Less", gotFloorAcc)
	}

	wantCeil, wantCeilAcc := ref.SetPrecRound(5, Ceiling)
	gotCeil, gotCeilAcc := AddRationalPrecRound(pi, oneThird, 5, Ceiling)
	checkScenario(t, "S6 Ceiling", gotCeil, gotCeilAcc, wantCeil, wantCeilAcc)
	if gotCeilAcc != Greater {
		t.Errorf("S6 Ceiling: accuracy = %s, want Greater", gotCeilAcc)
	}

	wantNearest, wantNearestAcc := ref.SetPrecRound(5, Nearest)
	gotNearest, gotNearestAcc := AddRationalPrecRound(pi, oneThird, 5, Nearest)
	checkScenario(t, "S6 Nearest", gotNearest, gotNearestAcc, wantNearest, wantNearestAcc)
	if gotNearestAcc != Greater {
		t.Errorf("S6 Nearest: accuracy = %s, want Greater", gotNearestAcc)
	}
	// Nearest agrees with Ceiling here: the true value sits closer to the
	// upper 5-bit grid point.
	if gotNearest.Cmp(gotCeil) != 0 {
		t.Errorf("S6: Nearest = %s, want same as Ceiling = %s", gotNearest, gotCeil)
	}
}

// TestScenarioPiPlusOneThirdPrec20 is S7: add_rational_prec_round(pi, 1/3,
// p=20, Floor/Ceiling).
func TestScenarioPiPlusOneThirdPrec20(t *testing.T) {
	pi, _ := scenarioConstants(t)
	oneThird := RationalFromInt64s(1, 3)
	ref := scenarioRatReference(t, pi, oneThird)

	wantFloor, wantFloorAcc := ref.SetPrecRound(20, Floor)
	gotFloor, gotFloorAcc := AddRationalPrecRound(pi, oneThird, 20, Floor)
	checkScenario(t, "S7 Floor", gotFloor, gotFloorAcc, wantFloor, wantFloorAcc)
	if gotFloorAcc != Less {
		t.Errorf("S7 Floor: accuracy = %s, want Less", gotFloorAcc)
	}

	wantCeil, wantCeilAcc := ref.SetPrecRound(20, Ceiling)
	gotCeil, gotCeilAcc := AddRationalPrecRound(pi, oneThird, 20, Ceiling)
	checkScenario(t, "S7 Ceiling", gotCeil, gotCeilAcc, wantCeil, wantCeilAcc)
	if gotCeilAcc != Greater {
		t.Errorf("S7 Ceiling: accuracy = %s, want Greater", gotCeilAcc)
	}

	if gotCeil.Cmp(gotFloor) <= 0 {
		t.Error("S7: Ceiling result should be strictly greater than Floor result")
	}
}
