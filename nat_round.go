package mpfloat

// roundNatural rounds sig (a normalized significand: sig.BitLen() bits,
// top bit set) down to toBits bits under mode, which must already be one
// of {Down, Up, Nearest, Exact} — callers reduce the user-facing
// RoundingMode with effectiveMagnitudeMode first, since Natural itself
// has no sign.
//
// sbit carries in a sticky bit from any lossy operation that produced
// sig before this call (e.g. a long-division remainder); it must be 0 or
// 1. The add/sub kernel never discards bits before rounding (see
// addMagnitudesExact in add.go) and always passes sbit == 0.
//
// overflow reports that rounding carried the significand one bit wider
// than toBits (e.g. 111 -> 1000); the caller must bump the result's
// exponent by one when this happens, exactly as SetPrecRound in float.go
// does.
func roundNatural(sig Natural, toBits uint, sbit uint, mode RoundingMode) (result Natural, acc Accuracy, overflow bool) {
	bits := sig.BitLen()
	if bits == 0 {
		return sig, Equal, false
	}
	if bits <= toBits {
		if bits < toBits {
			sig = sig.Lsh(toBits - bits)
		}
		return sig, Equal, false
	}

	dropped := bits - toBits
	rbit := sig.Bit(dropped - 1)
	lowSticky := uint(0)
	if dropped > 1 {
		if _, s := sig.RshSticky(dropped - 1); s == 1 {
			lowSticky = 1
		}
	}
	if sbit != 0 {
		lowSticky = 1
	}

	kept := sig.Rsh(dropped)

	roundUp := false
	switch mode {
	case Down:
		roundUp = false
	case Up:
		roundUp = rbit == 1 || lowSticky == 1
	case Nearest:
		if rbit == 1 {
			if lowSticky == 1 {
				roundUp = true
			} else {
				roundUp = kept.Bit(0) == 1 // exact tie: round to even
			}
		}
	case Exact:
		if rbit == 1 || lowSticky == 1 {
			panic("mpfloat: Exact rounding requested but the result is not exactly representable at the requested precision")
		}
	default:
		panic("mpfloat: roundNatural: unsupported magnitude rounding mode " + mode.String())
	}

	acc = Equal
	if rbit == 1 || lowSticky == 1 {
		if roundUp {
			acc = Greater
		} else {
			acc = Less
		}
	}

	if roundUp {
		kept = kept.Add(NaturalFromUint64(1))
		if kept.BitLen() > toBits {
			kept = kept.Rsh(1)
			overflow = true
		}
	}
	return kept, acc, overflow
}

// roundKnownInexact is the decision oracle of spec.md §4.2/§6: given a
// working-precision significand sig whose top err bits are known to be
// exactly correct (the remaining low bits may be off by up to 1 ulp at
// that err-bit precision), it reports whether rounding sig to prec bits
// under mode (already reduced to {Down, Up, Nearest, Exact} by the
// caller, as with roundNatural) is unambiguous — i.e. the same answer,
// value AND Accuracy, would be obtained no matter what the unknown low
// bits turn out to be — and if so, performs that rounding directly so
// callers don't have to re-derive rbit/sticky a second time.
//
// ok == false is always safe (it just means "try more precision");
// roundKnownInexact must never set ok == true for a genuinely
// ambiguous case.
//
// Proving the value alone is not enough: this also has to prove the
// ternary Accuracy, which is strictly harder — even when the untrusted
// tail cannot change which way rounding goes, it can still turn a
// would-be Equal into a Less/Greater. So every branch below additionally
// requires the untrusted region to be empty (fullyTrusted) before
// claiming Equal.
func roundKnownInexact(sig Natural, err, prec uint, mode RoundingMode) (result Natural, acc Accuracy, overflow bool, ok bool) {
	n := sig.BitLen()
	if prec == 0 || err <= prec || n <= prec {
		return Natural{}, Equal, false, false
	}
	if err > n {
		err = n
	}

	roundPos := n - prec - 1
	knownFloor := n - err
	rbit := sig.Bit(roundPos)
	knownSticky := false
	for p := knownFloor; p < roundPos; p++ {
		if sig.Bit(p) == 1 {
			knownSticky = true
			break
		}
	}
	fullyTrusted := knownFloor == 0
	nonzeroTrusted := rbit == 1 || knownSticky

	kept := sig.Rsh(n - prec)
	var roundUp, decided bool
	switch mode {
	case Down:
		switch {
		case nonzeroTrusted:
			roundUp, decided, acc = false, true, Less
		case fullyTrusted:
			roundUp, decided, acc = false, true, Equal
		}
	case Up:
		switch {
		case nonzeroTrusted:
			roundUp, decided, acc = true, true, Greater
		case fullyTrusted:
			roundUp, decided, acc = false, true, Equal
		}
	case Nearest:
		switch {
		case rbit == 1 && knownSticky:
			roundUp, decided, acc = true, true, Greater
		case rbit == 1 && fullyTrusted:
			// a provably exact tie: the remainder is known to be exactly
			// half a ulp, so either resolution is a known nonzero
			// distance from the true value.
			roundUp = kept.Bit(0) == 1
			decided = true
			if roundUp {
				acc = Greater
			} else {
				acc = Less
			}
		case rbit == 1 && kept.Bit(0) == 1:
			// ambiguous between an exact tie and strictly-above-half, but
			// both resolve to rounding up, and either way up is farther
			// from the true value than down: Greater either way.
			roundUp, decided, acc = true, true, Greater
		case rbit == 0 && knownSticky:
			roundUp, decided, acc = false, true, Less
		case rbit == 0 && fullyTrusted:
			roundUp, decided, acc = false, true, Equal
		}
	case Exact:
		if nonzeroTrusted {
			panic("mpfloat: Exact rounding requested but the result is not exactly representable at the requested precision")
		}
		if fullyTrusted {
			roundUp, decided, acc = false, true, Equal
		}
	default:
		panic("mpfloat: roundKnownInexact: unsupported magnitude rounding mode " + mode.String())
	}

	if !decided {
		return Natural{}, Equal, false, false
	}
	if roundUp {
		kept = kept.Add(NaturalFromUint64(1))
		if kept.BitLen() > prec {
			kept = kept.Rsh(1)
			overflow = true
		}
	}
	return kept, acc, overflow, true
}
