package mpfloat

import "testing"

func TestNaturalBitLen(t *testing.T) {
	tests := []struct {
		x uint64
		n uint
	}{
		{0, 0},
		{1, 1},
		{1023, 10},
		{1 << 63, 64},
	}
	for _, tt := range tests {
		if n := NaturalFromUint64(tt.x).BitLen(); n != tt.n {
			t.Errorf("BitLen(%d) = %d, want %d", tt.x, n, tt.n)
		}
	}
}

func TestNaturalAddSub(t *testing.T) {
	a := NaturalFromUint64(1<<63 + 5)
	b := NaturalFromUint64(1 << 63)
	sum := a.Add(b)
	if got := sum.String(); got != "18446744073709551621" {
		t.Errorf("sum = %s, want 18446744073709551621", got)
	}
	back := sum.Sub(b)
	if back.Cmp(a) != 0 {
		t.Errorf("sum.Sub(b) = %s, want %s", back, a)
	}
}

func TestNaturalSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Sub did not panic on underflow")
		}
	}()
	NaturalFromUint64(1).Sub(NaturalFromUint64(2))
}

func TestNaturalLshRsh(t *testing.T) {
	n := NaturalFromUint64(1)
	shifted := n.Lsh(100)
	if shifted.BitLen() != 101 {
		t.Errorf("BitLen after Lsh(100) = %d, want 101", shifted.BitLen())
	}
	back := shifted.Rsh(100)
	if back.Cmp(n) != 0 {
		t.Errorf("round-tripped shift = %s, want 1", back)
	}
}

func TestNaturalRshSticky(t *testing.T) {
	n := NaturalFromUint64(0b1011)
	q, s := n.RshSticky(2)
	if q.Uint64() != 0b10 || s != 1 {
		t.Errorf("RshSticky(0b1011, 2) = %d, sticky %d, want 2, 1", q.Uint64(), s)
	}
	q, s = NaturalFromUint64(0b1000).RshSticky(3)
	if q.Uint64() != 1 || s != 0 {
		t.Errorf("RshSticky(0b1000, 3) = %d, sticky %d, want 1, 0", q.Uint64(), s)
	}
}

func TestNaturalMul(t *testing.T) {
	a := NaturalFromUint64(1 << 40)
	b := NaturalFromUint64(1 << 40)
	got := a.Mul(b).String()
	if got != "1208925819614629174706176" { // 2**80
		t.Errorf("(2**40)**2 = %s, want 2**80", got)
	}
}

func TestNaturalDivMod(t *testing.T) {
	n := NaturalFromUint64(100)
	m := NaturalFromUint64(7)
	q, r := n.DivMod(m)
	if q.Uint64() != 14 || r.Uint64() != 2 {
		t.Errorf("100 DivMod 7 = (%d, %d), want (14, 2)", q.Uint64(), r.Uint64())
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{12, 18, 6},
		{17, 5, 1},
		{0, 9, 9},
		{1 << 20, 1 << 10, 1 << 10},
	}
	for _, tt := range tests {
		g := GCD(NaturalFromUint64(tt.a), NaturalFromUint64(tt.b))
		if g.Uint64() != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, g.Uint64(), tt.want)
		}
	}
}

func TestNaturalString(t *testing.T) {
	tests := []struct {
		x    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{1000000, "1000000"},
	}
	for _, tt := range tests {
		if got := NaturalFromUint64(tt.x).String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.x, got, tt.want)
		}
	}
}
