package bigint

import (
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

func TestIntXSmallRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 42, -42, 9223372036854775807, -9223372036854775808}
	for _, val := range values {
		w := wire.NewWriter(0)
		EncodeIntX(w, IntXFromInt64(val))
		c := wire.NewCursor(w.Bytes(), wire.Strict)
		got := DecodeIntX(c)
		if c.Failed() {
			t.Fatalf("val %d: unexpected decode failure: %v", val, c.Err())
		}
		if got.ToInt256().Cmp(IntFromInt64(val)) != 0 {
			t.Fatalf("val %d: roundtrip mismatch", val)
		}
	}
}

func TestIntXBoundaryPromotesToBig(t *testing.T) {
	// Exact boundary vector: header declares length 8,
	// non-negative, but the 8 payload bytes' own top bit is set — the
	// payload must be reinterpreted as an unsigned magnitude with the
	// header's (non-negative) sign applied, producing +2^63, a value
	// that does not fit in int64 and so is mandatorily promoted to Big.
	raw := []byte{0x08, 0, 0, 0, 0, 0, 0, 0, 0x80}
	c := wire.NewCursor(raw, wire.Strict)
	got := DecodeIntX(c)
	if c.Failed() {
		t.Fatalf("unexpected decode failure: %v", c.Err())
	}
	want := IntFromBits(UintFromUint64(1).Lsh(63))
	if got.ToInt256().Cmp(want) != 0 {
		t.Fatalf("got %s want %s", got.ToInt256().Format(10, ""), want.Format(10, ""))
	}
}

func TestIntXBoundaryReverseMismatchPromotesToBig(t *testing.T) {
	// Mirror of TestIntXBoundaryPromotesToBig for the opposite mismatch
	// direction: header declares length 8, negative, but the 8 payload
	// bytes' own top bit is clear. The reference decoder falls through to
	// its general-width reader here too, filling the upper 24 bytes from
	// the header's sign (all-ones) rather than the payload's, yielding
	// 1 - 2^64 = -(2^64-1), not the -1 a naive Abs/Neg reinterpretation of
	// the 8-byte payload would produce.
	raw := []byte{0x88, 0x01, 0, 0, 0, 0, 0, 0, 0}
	c := wire.NewCursor(raw, wire.Strict)
	got := DecodeIntX(c)
	if c.Failed() {
		t.Fatalf("unexpected decode failure: %v", c.Err())
	}
	want := IntFromBits(UintFromUint64(1).Lsh(64).Sub(UintFromUint64(1))).Neg()
	if got.ToInt256().Cmp(want) != 0 {
		t.Fatalf("got %s want %s", got.ToInt256().Format(10, ""), want.Format(10, ""))
	}
}

func TestIntXBigEnvelopeRoundTrip(t *testing.T) {
	big := IntFromBits(UintFromUint64(1).Lsh(200))
	w := wire.NewWriter(0)
	EncodeIntX(w, IntXFromInt256(big))
	c := wire.NewCursor(w.Bytes(), wire.Strict)
	got := DecodeIntX(c)
	if c.Failed() {
		t.Fatalf("unexpected decode failure: %v", c.Err())
	}
	if got.ToInt256().Cmp(big) != 0 {
		t.Fatalf("roundtrip mismatch for large value")
	}
}

func TestIntXHeaderTooShortFails(t *testing.T) {
	raw := []byte{0x04, 1, 2, 3, 4}
	c := wire.NewCursor(raw, wire.Strict)
	_ = DecodeIntX(c)
	if !c.Failed() {
		t.Fatalf("expected failure for header length shorter than 8")
	}
}
