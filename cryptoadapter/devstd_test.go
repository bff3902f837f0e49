package cryptoadapter

import "testing"

func TestDevStdAdapterSignVerifyRoundTrip(t *testing.T) {
	a := DevStdAdapter{}
	var seed [32]byte
	if err := a.RandomBytes(seed[:]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pub := a.Ed25519PublicKeyFromSeed(seed)
	msg := []byte("hello carbon")
	sig, err := a.Ed25519SignDetached(msg, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Ed25519VerifyDetached(sig, msg, pub) {
		t.Fatalf("expected signature to verify")
	}
	if a.Ed25519VerifyDetached(sig, []byte("tampered"), pub) {
		t.Fatalf("expected signature over different message to fail")
	}
}

func TestDevStdAdapterSHA256(t *testing.T) {
	a := DevStdAdapter{}
	got := a.SHA256([]byte("abc"))
	want := [32]byte{
		0xba, 0x78, 0x16, 0xbf, 0x8f, 0x01, 0xcf, 0xea,
		0x41, 0x41, 0x40, 0xde, 0x5d, 0xae, 0x22, 0x23,
		0xb0, 0x03, 0x61, 0xa3, 0x96, 0x17, 0x7a, 0x9c,
		0xb4, 0x10, 0xff, 0x61, 0xf2, 0x00, 0x15, 0xad,
	}
	if got != want {
		t.Fatalf("got %x want %x", got, want)
	}
}
