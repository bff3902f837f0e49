package keys

import (
	"github.com/phantasma-io/phantasma-go-sdk/cryptoadapter"
	"github.com/phantasma-io/phantasma-go-sdk/legacy"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// PhantasmaKeys is an Ed25519 signing identity: a pinned 32-byte seed,
// its derived public key, and the address built from it.
// Seed material lives in a wire.PrivateBytes for the lifetime of the
// value; callers MUST call Wipe when done with it.
type PhantasmaKeys struct {
	seed    *wire.PrivateBytes
	adapter cryptoadapter.Adapter
	pub     [32]byte
	address Address
}

// Generate creates a new PhantasmaKeys from fresh adapter-sourced
// randomness.
func Generate(adapter cryptoadapter.Adapter) (*PhantasmaKeys, error) {
	var seed [32]byte
	if err := adapter.RandomBytes(seed[:]); err != nil {
		return nil, wire.Wrap(wire.KindCryptoFailure, "failed to generate key seed", err)
	}
	return FromSeed(adapter, seed)
}

// FromSeed builds a PhantasmaKeys from an existing 32-byte seed,
// deriving the public key and address via the adapter.
func FromSeed(adapter cryptoadapter.Adapter, seed [32]byte) (*PhantasmaKeys, error) {
	pub := adapter.Ed25519PublicKeyFromSeed(seed)
	return &PhantasmaKeys{
		seed:    wire.NewPrivateBytes(seed[:]),
		adapter: adapter,
		pub:     pub,
		address: FromPublicKey(pub),
	}, nil
}

// FromWIF decodes a WIF string into a PhantasmaKeys.
func FromWIF(adapter cryptoadapter.Adapter, wif string) (*PhantasmaKeys, error) {
	seed, err := DecodeWIF(wif)
	if err != nil {
		return nil, err
	}
	return FromSeed(adapter, seed)
}

// ToWIF re-encodes the key's seed as a WIF string. Round-trips with
// FromWIF for any WIF the core can decode.
func (k *PhantasmaKeys) ToWIF() string {
	var seed [32]byte
	copy(seed[:], k.seed.Bytes())
	return EncodeWIF(seed)
}

// Address returns the key's derived user address.
func (k *PhantasmaKeys) Address() Address { return k.address }

// PublicKey returns the key's 32-byte Ed25519 public key.
func (k *PhantasmaKeys) PublicKey() [32]byte { return k.pub }

// Sign produces a 64-byte Ed25519 signature over message.
func (k *PhantasmaKeys) Sign(message []byte) (legacy.Signature, error) {
	var seed [32]byte
	copy(seed[:], k.seed.Bytes())
	sig, err := k.adapter.Ed25519SignDetached(message, seed)
	if err != nil {
		return legacy.Signature{}, wire.Wrap(wire.KindCryptoFailure, "Ed25519 sign failed", err)
	}
	return legacy.NewEd25519Signature(wire.Bytes64(sig)), nil
}

// Verify checks a detached Ed25519 signature over message against pub.
func Verify(adapter cryptoadapter.Adapter, sig legacy.Signature, message []byte, pub [32]byte) bool {
	if sig.Kind != legacy.SignatureEd25519 || len(sig.Body) != 64 {
		return false
	}
	var sig64 [64]byte
	copy(sig64[:], sig.Body)
	return adapter.Ed25519VerifyDetached(sig64, message, pub)
}

// Wipe zeroes and unpins the key's seed material. Safe to call multiple
// times.
func (k *PhantasmaKeys) Wipe() {
	if k.seed != nil {
		k.seed.Wipe()
	}
}
