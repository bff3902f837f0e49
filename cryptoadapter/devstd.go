package cryptoadapter

import (
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/ed25519"
)

// DevStdAdapter is a development-only Adapter built on the standard
// library and golang.org/x/crypto/ed25519. It makes no hardware-backed
// or FIPS-compliance claims, mirroring a development-only crypto provider
// disclaimer — a production deployment should supply an adapter backed
// by an HSM or a vetted native provider instead.
type DevStdAdapter struct{}

func (DevStdAdapter) Ed25519PublicKeyFromSeed(seed [32]byte) [32]byte {
	priv := ed25519.NewKeyFromSeed(seed[:])
	pub := priv.Public().(ed25519.PublicKey)
	var out [32]byte
	copy(out[:], pub)
	return out
}

func (DevStdAdapter) Ed25519SignDetached(message []byte, privateKey [32]byte) ([64]byte, error) {
	priv := ed25519.NewKeyFromSeed(privateKey[:])
	sig := ed25519.Sign(priv, message)
	var out [64]byte
	copy(out[:], sig)
	return out, nil
}

func (DevStdAdapter) Ed25519VerifyDetached(signature [64]byte, message []byte, publicKey [32]byte) bool {
	return ed25519.Verify(ed25519.PublicKey(publicKey[:]), message, signature[:])
}

func (DevStdAdapter) SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

func (DevStdAdapter) RandomBytes(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}

// LegacySha256Func adapts an Adapter's SHA256 to legacy.Sha256Func's
// injected-capability shape.
func LegacySha256Func(a Adapter) func([]byte) [32]byte {
	return func(b []byte) [32]byte { return a.SHA256(b) }
}
