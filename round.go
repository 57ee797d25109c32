package mpfloat

// RoundingMode determines how an operation's infinite-precision result is
// rounded to fit the requested precision.
type RoundingMode uint8

// The supported rounding modes, matching spec.md §3.
const (
	Floor   RoundingMode = iota // toward -Inf
	Ceiling                     // toward +Inf
	Down                        // toward 0
	Up                          // away from 0
	Nearest                     // to nearest, ties to even
	Exact                       // exact result required; panics if not exact
)

func (rm RoundingMode) String() string {
	switch rm {
	case Floor:
		return "Floor"
	case Ceiling:
		return "Ceiling"
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Nearest:
		return "Nearest"
	case Exact:
		return "Exact"
	default:
		return "RoundingMode(?)"
	}
}

// Negate returns -rm: Floor and Ceiling swap, the rest are self-negating.
// This is the "direction-adjusted rounding" table of spec.md §3/§9: to
// round a negative value under rm, round its magnitude under rm.Negate().
func (rm RoundingMode) Negate() RoundingMode {
	switch rm {
	case Floor:
		return Ceiling
	case Ceiling:
		return Floor
	default:
		return rm
	}
}

// magnitudeMode reduces rm to the mode that governs a magnitude
// (always-nonnegative) rounding decision once the sign has already been
// pushed into the choice of rm via Negate: Floor acts like Down and
// Ceiling acts like Up on a nonnegative value.
func magnitudeMode(rm RoundingMode) RoundingMode {
	switch rm {
	case Floor:
		return Down
	case Ceiling:
		return Up
	default:
		return rm
	}
}

// effectiveMagnitudeMode is the composition callers actually want: given
// the user-requested rm and the sign of the value being rounded, returns
// the Down/Up/Nearest/Exact mode that should drive the unsigned
// significand rounding machinery (roundNatural, roundKnownInexact).
func effectiveMagnitudeMode(rm RoundingMode, neg bool) RoundingMode {
	if neg {
		rm = rm.Negate()
	}
	return magnitudeMode(rm)
}

// Accuracy is the ternary value spec.md §3 requires every rounding
// operation to report: how the returned value compares to the exact
// mathematical result.
type Accuracy int8

// The three Accuracy values.
const (
	Less    Accuracy = -1
	Equal   Accuracy = 0
	Greater Accuracy = 1
)

func (a Accuracy) String() string {
	switch a {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Accuracy(?)"
	}
}

// Reverse swaps Less and Greater, leaving Equal unchanged.
func (a Accuracy) Reverse() Accuracy {
	return -a
}
