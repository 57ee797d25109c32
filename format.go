package mpfloat

import "strings"

// natToDecimal renders n in decimal, grounded on the teacher's Int
// decimal conversion (Go-zh-go.old's math/big/intconv.go): repeatedly
// divide by a small constant and collect remainders, then reverse.
func natToDecimal(n Natural) string {
	if n.IsZero() {
		return "0"
	}
	ten := NaturalFromUint64(10)
	var digits []byte
	for !n.IsZero() {
		var rem Natural
		n, rem = n.DivMod(ten)
		digits = append(digits, byte('0')+byte(rem.Uint64()))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// powNatural returns base**k.
func powNatural(base Natural, k uint) Natural {
	result := NaturalFromUint64(1)
	for ; k > 0; k-- {
		result = result.Mul(base)
	}
	return result
}

// Text renders x as an exact decimal string. Every Float is a dyadic
// rational (significand * 2**e), so — unlike an arbitrary rational —
// its decimal expansion always terminates: a negative exponent shift is
// rewritten as significand*5**k/10**k before the decimal point is
// placed, matching how the teacher's ftoa machinery separates the
// integer and fractional digit runs.
func (x Float) Text() string {
	switch x.kind {
	case kindNaN:
		return "NaN"
	case kindInf:
		if x.neg {
			return "-Inf"
		}
		return "+Inf"
	case kindZero:
		if x.neg {
			return "-0"
		}
		return "0"
	}

	sign := ""
	if x.neg {
		sign = "-"
	}
	shift := x.exp - int64(x.prec)
	if shift >= 0 {
		return sign + natToDecimal(x.mant.Lsh(uint(shift)))
	}

	k := uint(-shift)
	scaled := x.mant.Mul(powNatural(NaturalFromUint64(5), k))
	s := natToDecimal(scaled)
	if uint(len(s)) <= k {
		s = strings.Repeat("0", int(k)-len(s)+1) + s
	}
	intDigits := s[:uint(len(s))-k]
	fracDigits := strings.TrimRight(s[uint(len(s))-k:], "0")
	if fracDigits == "" {
		return sign + intDigits
	}
	return sign + intDigits + "." + fracDigits
}

// String implements fmt.Stringer.
func (x Float) String() string {
	return x.Text()
}
