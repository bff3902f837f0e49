package bigint

import (
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

func TestCompactEnvelopeZeroRoundTrip(t *testing.T) {
	w := wire.NewWriter(0)
	EncodeCompact(w, IntFromInt64(0))
	got := w.Bytes()
	if len(got) != 1 || got[0] != 0x00 {
		t.Fatalf("expected single zero header byte, got %v", got)
	}
	c := wire.NewCursor(got, wire.Strict)
	v := DecodeCompact(c)
	if c.Failed() {
		t.Fatalf("unexpected decode failure: %v", c.Err())
	}
	if !v.IsZero() {
		t.Fatalf("expected zero value")
	}
}

func TestCompactEnvelopeRoundTrip(t *testing.T) {
	values := []int64{1, -1, 127, -128, 1000000, -1000000}
	for _, val := range values {
		w := wire.NewWriter(0)
		EncodeCompact(w, IntFromInt64(val))
		c := wire.NewCursor(w.Bytes(), wire.Strict)
		got := DecodeCompact(c)
		if c.Failed() {
			t.Fatalf("val %d: unexpected decode failure: %v", val, c.Err())
		}
		if got.Cmp(IntFromInt64(val)) != 0 {
			t.Fatalf("val %d: roundtrip mismatch, got %s", val, got.Format(10, ""))
		}
	}
}

func TestCompactEnvelopeRejectsNonMinimalLength(t *testing.T) {
	// header declares length 2 for a value that fits in 1 byte: 0x01, 0x00
	raw := []byte{0x02, 0x01, 0x00}
	c := wire.NewCursor(raw, wire.Strict)
	_ = DecodeCompact(c)
	if !c.Failed() {
		t.Fatalf("expected failure decoding non-minimal compact envelope")
	}
}

func TestCompactEnvelopeRejectsSignMismatch(t *testing.T) {
	// header declares negative but payload's own top bit is 0
	raw := []byte{0x81, 0x01}
	c := wire.NewCursor(raw, wire.Strict)
	_ = DecodeCompact(c)
	if !c.Failed() {
		t.Fatalf("expected failure decoding sign-mismatched compact envelope")
	}
}

func TestLegacyEnvelopeTolerant(t *testing.T) {
	// redundant leading 0x00 sign byte: still decodes to 1.
	raw := []byte{0x02, 0x01, 0x00}
	c := wire.NewCursor(raw, wire.Strict)
	got := DecodeLegacy(c)
	if c.Failed() {
		t.Fatalf("legacy decode should tolerate non-minimal payload: %v", c.Err())
	}
	if got.Cmp(IntFromInt64(1)) != 0 {
		t.Fatalf("got %s want 1", got.Format(10, ""))
	}
}

func TestLegacyEnvelopeRejectsOversizedLength(t *testing.T) {
	raw := []byte{33}
	c := wire.NewCursor(raw, wire.Strict)
	_ = DecodeLegacy(c)
	if !c.Failed() {
		t.Fatalf("expected failure for length exceeding 32")
	}
}
