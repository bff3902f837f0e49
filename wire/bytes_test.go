package wire

import (
	"strings"
	"testing"
)

func TestSmallStringBounds(t *testing.T) {
	ok := strings.Repeat("a", 255)
	if _, err := NewSmallString(ok); err != nil {
		t.Fatalf("255-byte string should be accepted: %v", err)
	}
	tooLong := strings.Repeat("a", 256)
	_, err := NewSmallString(tooLong)
	if err == nil {
		t.Fatalf("256-byte string should fail")
	}
	ce, ok2 := err.(*CodecError)
	if !ok2 || ce.Kind != KindBoundsExceeded {
		t.Fatalf("expected BoundsExceeded, got %v", err)
	}
}

func TestBytes32RoundTrip(t *testing.T) {
	src := make([]byte, 32)
	for i := range src {
		src[i] = byte(i)
	}
	b, err := NewBytes32(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Bytes(b[:]).Equal(Bytes(src)) {
		t.Fatalf("roundtrip mismatch")
	}
	var zero Bytes32
	if !zero.IsZero() {
		t.Fatalf("zero value should be all-zero")
	}
	if b.IsZero() {
		t.Fatalf("populated value should not report zero")
	}
}

func TestNewBytes32WrongLength(t *testing.T) {
	_, err := NewBytes32(make([]byte, 31))
	if err == nil {
		t.Fatalf("expected error for wrong length")
	}
}
