package keys

import (
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/cryptoadapter"
)

func TestPhantasmaKeysGenerateSignVerifyRoundTrip(t *testing.T) {
	adapter := cryptoadapter.DevStdAdapter{}
	k, err := Generate(adapter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer k.Wipe()

	msg := []byte("carbon transaction payload")
	sig, err := k.Sign(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Verify(adapter, sig, msg, k.PublicKey()) {
		t.Fatalf("expected signature to verify")
	}
	if Verify(adapter, sig, []byte("tampered"), k.PublicKey()) {
		t.Fatalf("expected signature over different message to fail")
	}
}

func TestPhantasmaKeysFromWIFToWIFRoundTrip(t *testing.T) {
	adapter := cryptoadapter.DevStdAdapter{}
	original, err := Generate(adapter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer original.Wipe()

	wif := original.ToWIF()
	reloaded, err := FromWIF(adapter, wif)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reloaded.Wipe()

	if reloaded.Address() != original.Address() {
		t.Fatalf("address mismatch after WIF roundtrip: got %+v want %+v", reloaded.Address(), original.Address())
	}
	if reloaded.ToWIF() != wif {
		t.Fatalf("WIF did not roundtrip: got %q want %q", reloaded.ToWIF(), wif)
	}
}

func TestPhantasmaKeysAddressDerivesFromPublicKey(t *testing.T) {
	adapter := cryptoadapter.DevStdAdapter{}
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i + 7)
	}
	k, err := FromSeed(adapter, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer k.Wipe()

	want := FromPublicKey(k.PublicKey())
	if k.Address() != want {
		t.Fatalf("address mismatch: got %+v want %+v", k.Address(), want)
	}
}
