package legacy

import (
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

func TestSignatureRoundTrip(t *testing.T) {
	var body wire.Bytes64
	for i := range body {
		body[i] = byte(i * 3)
	}
	sig := NewEd25519Signature(body)
	w := wire.NewWriter(0)
	WriteSignature(w, sig)
	c := wire.NewCursor(w.Bytes(), wire.Strict)
	got := ReadSignature(c)
	if c.Failed() {
		t.Fatalf("unexpected decode failure: %v", c.Err())
	}
	if got.Kind != SignatureEd25519 {
		t.Fatalf("kind mismatch: %d", got.Kind)
	}
	if len(got.Body) != 64 {
		t.Fatalf("body length mismatch: %d", len(got.Body))
	}
}

func TestSignatureWrongLengthFails(t *testing.T) {
	w := wire.NewWriter(0)
	w.WriteU8(1)
	WriteByteArray(w, []byte{1, 2, 3})
	c := wire.NewCursor(w.Bytes(), wire.Strict)
	_ = ReadSignature(c)
	if !c.Failed() {
		t.Fatalf("expected failure for wrong-length ed25519 body")
	}
}
