package bigint

import "testing"

func TestInt256SignedDivModTruncation(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int64
		wantQ    int64
		wantR    int64
	}{
		{"pos/pos", 7, 2, 3, 1},
		{"neg/pos", -7, 2, -3, -1},
		{"pos/neg", 7, -2, -3, 1},
		{"neg/neg", -7, -2, 3, -1},
		{"exact", 10, 5, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := IntFromInt64(tc.a)
			b := IntFromInt64(tc.b)
			q, r, err := a.DivMod(b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Cmp(IntFromInt64(tc.wantQ)) != 0 {
				t.Fatalf("quotient = %s want %d", q.Format(10, ""), tc.wantQ)
			}
			if r.Cmp(IntFromInt64(tc.wantR)) != 0 {
				t.Fatalf("remainder = %s want %d", r.Format(10, ""), tc.wantR)
			}
		})
	}
}

func TestInt256DivByZero(t *testing.T) {
	a := IntFromInt64(5)
	_, _, err := a.DivMod(IntFromInt64(0))
	if err == nil {
		t.Fatalf("expected error dividing by zero")
	}
}

func TestInt256Cmp(t *testing.T) {
	neg := IntFromInt64(-5)
	pos := IntFromInt64(5)
	if neg.Cmp(pos) != -1 {
		t.Fatalf("expected negative < positive")
	}
	if pos.Cmp(neg) != 1 {
		t.Fatalf("expected positive > negative")
	}
	if pos.Cmp(IntFromInt64(5)) != 0 {
		t.Fatalf("expected equal values to compare 0")
	}
	if IntFromInt64(-10).Cmp(IntFromInt64(-3)) != -1 {
		t.Fatalf("expected -10 < -3")
	}
}

func TestInt256ToSignedBytesBoundaries(t *testing.T) {
	cases := []struct {
		name string
		v    int64
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"127", 127, []byte{0x7F}},
		{"128", 128, []byte{0x80, 0x00}},
		{"-1", -1, []byte{0xFF}},
		{"-128", -128, []byte{0x80}},
		{"-129", -129, []byte{0x7F, 0xFF}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IntFromInt64(tc.v).ToSignedBytes()
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v want %v", got, tc.want)
				}
			}
			back, err := FromSignedBytes(got)
			if err != nil {
				t.Fatalf("roundtrip error: %v", err)
			}
			if back.Cmp(IntFromInt64(tc.v)) != 0 {
				t.Fatalf("roundtrip mismatch: got %s want %d", back.Format(10, ""), tc.v)
			}
		})
	}
}

func TestInt256NegAbs(t *testing.T) {
	v := IntFromInt64(42)
	if v.Neg().Cmp(IntFromInt64(-42)) != 0 {
		t.Fatalf("neg mismatch")
	}
	if IntFromInt64(-42).Abs().Cmp(IntFromInt64(42)) != 0 {
		t.Fatalf("abs mismatch")
	}
}

func TestParseIntNegative(t *testing.T) {
	v, err := ParseInt("-123", 10, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Cmp(IntFromInt64(-123)) != 0 {
		t.Fatalf("got %s want -123", v.Format(10, ""))
	}
}

func TestInt256SqrtRejectsNegative(t *testing.T) {
	_, err := IntFromInt64(-1).Sqrt()
	if err == nil {
		t.Fatalf("expected error for sqrt of negative value")
	}
}
