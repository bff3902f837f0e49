// Package cryptoadapter defines the fixed-shape crypto collaborator
// interface the core consumes and a development-grade
// implementation of it, following a narrow-interface,
// swappable-provider pattern (crypto.CryptoProvider / DevStdCryptoProvider).
package cryptoadapter

// Adapter is the crypto capability surface consumed by keys, legacy, and
// rpc — Ed25519 key derivation and signing, SHA-256 hashing for legacy
// transaction hashes, and secure randomness. Pinning and zeroing of secret
// buffers is not part of it; wire.PrivateBytes does that itself.
type Adapter interface {
	Ed25519PublicKeyFromSeed(seed [32]byte) [32]byte
	Ed25519SignDetached(message []byte, privateKey [32]byte) ([64]byte, error)
	Ed25519VerifyDetached(signature [64]byte, message []byte, publicKey [32]byte) bool
	SHA256(data []byte) [32]byte
	RandomBytes(buf []byte) error
}
