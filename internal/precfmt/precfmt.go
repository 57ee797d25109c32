// Package precfmt parses the command-line spellings of the values
// mpcalc's subcommands need — precisions, rounding-mode names, and
// decimal-literal operands — into the mpfloat types those operations
// expect.
package precfmt

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mpfloat/mpfloat"
)

// RoundingModeNames lists the accepted --round values, in the order
// shown in mpcalc's flag usage text.
func RoundingModeNames() []string {
	return []string{"floor", "ceiling", "down", "up", "nearest", "exact"}
}

// ParseRoundingMode maps a --round flag value (case-insensitive, with a
// couple of common aliases) to an mpfloat.RoundingMode.
func ParseRoundingMode(s string) (mpfloat.RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "floor":
		return mpfloat.Floor, nil
	case "ceiling", "ceil":
		return mpfloat.Ceiling, nil
	case "down", "trunc", "tozero":
		return mpfloat.Down, nil
	case "up", "awayfromzero":
		return mpfloat.Up, nil
	case "nearest", "even":
		return mpfloat.Nearest, nil
	case "exact":
		return mpfloat.Exact, nil
	default:
		return 0, errors.Errorf("unknown --round value %q (want one of %s)", s, strings.Join(RoundingModeNames(), ", "))
	}
}

// ParsePrecision parses a --prec flag value. Precision must be a
// positive integer; mpfloat's contract forbids precision 0 everywhere.
func ParsePrecision(s string) (uint64, error) {
	p, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid --prec value %q", s)
	}
	if p == 0 {
		return 0, errors.Errorf("--prec must be >= 1, got %q", s)
	}
	return p, nil
}

// ParseDecimalRational parses a plain base-10 literal such as "-3.14159"
// or "42" into the exact Rational it denotes; no precision is lost here,
// so the caller decides separately how (and whether) to round it down to
// a Float.
func ParseDecimalRational(s string) (mpfloat.Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return mpfloat.Rational{}, errors.New("empty number")
	}
	neg := false
	switch s[0] {
	case '-':
		neg, s = true, s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	digits := intPart + fracPart
	if digits == "" || !isAllDigits(digits) {
		return mpfloat.Rational{}, errors.Errorf("invalid number %q", s)
	}

	num := naturalFromDecimalDigits(digits)
	den := mpfloat.NaturalFromUint64(1)
	ten := mpfloat.NaturalFromUint64(10)
	for range fracPart {
		den = den.Mul(ten)
	}
	return mpfloat.NewRational(!neg, num, den), nil
}

// ParseRational parses either "num/den" (integer numerator and
// denominator) or a plain decimal literal into a Rational.
func ParseRational(s string) (mpfloat.Rational, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		numStr, denStr := strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
		num, err := strconv.ParseInt(numStr, 10, 64)
		if err != nil {
			return mpfloat.Rational{}, errors.Wrapf(err, "invalid numerator %q", numStr)
		}
		den, err := strconv.ParseInt(denStr, 10, 64)
		if err != nil {
			return mpfloat.Rational{}, errors.Wrapf(err, "invalid denominator %q", denStr)
		}
		if den == 0 {
			return mpfloat.Rational{}, errors.Errorf("zero denominator in %q", s)
		}
		return mpfloat.RationalFromInt64s(num, den), nil
	}
	return ParseDecimalRational(s)
}

// ParseFloat parses a decimal literal into a Float at prec bits under
// rm, via an exact Rational intermediate so the rounding performed is
// exactly the one the caller asked for, not whatever strconv.ParseFloat
// would have done internally.
func ParseFloat(s string, prec uint64, rm mpfloat.RoundingMode) (mpfloat.Float, mpfloat.Accuracy, error) {
	r, err := ParseDecimalRational(s)
	if err != nil {
		return mpfloat.Float{}, 0, errors.Wrapf(err, "parsing %q as a number", s)
	}
	if r.IsZero() {
		return mpfloat.SignedZero(1), mpfloat.Equal, nil
	}
	f, acc := mpfloat.FromRationalPrecRound(r, prec, rm)
	return f, acc, nil
}

func naturalFromDecimalDigits(digits string) mpfloat.Natural {
	n := mpfloat.NaturalFromUint64(0)
	ten := mpfloat.NaturalFromUint64(10)
	for i := 0; i < len(digits); i++ {
		n = n.Mul(ten).Add(mpfloat.NaturalFromUint64(uint64(digits[i] - '0')))
	}
	return n
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
