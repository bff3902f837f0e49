// Package keys implements Phantasma addresses, WIF import/export, and
// Ed25519 signing key management, built on the
// injected cryptoadapter.Adapter capability rather than a hardcoded
// crypto backend.
package keys

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// AddressVersion is the Base58Check version byte for a Phantasma address
// text form.
const AddressVersion = 0x4F

// NullAddressText is the sentinel rendering for a zero-value Address. It
// deliberately does not round-trip through FromText.
const NullAddressText = "[Null address]"

const (
	// KindUser marks an address derived directly from an Ed25519 public
	// key.
	KindUser byte = 1
	// KindSystem marks a contract/system address derived by hashing a
	// name into the 32-byte payload.
	KindSystem byte = 0
)

// Address is the 34-byte Phantasma address: kind, platform, and a
// 32-byte payload (public key or name hash).
type Address struct {
	Kind    byte
	Platform byte
	Payload wire.Bytes32
}

// IsNull reports whether a is the all-zero sentinel address.
func (a Address) IsNull() bool {
	return a.Kind == 0 && a.Platform == 0 && a.Payload == wire.Bytes32{}
}

// Bytes returns the 34-byte wire form: kind || platform || payload.
func (a Address) Bytes() [34]byte {
	var out [34]byte
	out[0] = a.Kind
	out[1] = a.Platform
	copy(out[2:], a.Payload[:])
	return out
}

// FromBytes parses a 34-byte address.
func FromBytes(b []byte) (Address, error) {
	if len(b) != 34 {
		return Address{}, wire.Newf(wire.KindDataFormat, "address must be exactly 34 bytes, got %d", len(b))
	}
	payload, err := wire.NewBytes32(b[2:])
	if err != nil {
		return Address{}, err
	}
	return Address{Kind: b[0], Platform: b[1], Payload: payload}, nil
}

// FromPublicKey builds a user address (kind=1, platform=1) from an
// Ed25519 public key.
func FromPublicKey(pub [32]byte) Address {
	return Address{Kind: KindUser, Platform: 1, Payload: pub}
}

// FromName derives a system/contract address (kind=0, platform=0,
// payload=SHA-256(name)).
func FromName(name string) Address {
	return Address{Kind: KindSystem, Platform: 0, Payload: sha256.Sum256([]byte(name))}
}

// Text renders the address in its Base58Check text form, or the null
// sentinel for the zero address.
func (a Address) Text() string {
	if a.IsNull() {
		return NullAddressText
	}
	b := a.Bytes()
	return base58.CheckEncode(b[:], AddressVersion)
}

// FromText parses a Base58Check address. The null sentinel text does not
// decode — it is a display-only rendering.
func FromText(s string) (Address, error) {
	if s == NullAddressText {
		return Address{}, wire.Newf(wire.KindCryptoFailure, "the null address sentinel does not decode")
	}
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return Address{}, wire.Wrap(wire.KindCryptoFailure, "invalid Base58Check address", err)
	}
	if version != AddressVersion {
		return Address{}, wire.Newf(wire.KindCryptoFailure, "unexpected address version byte 0x%02x", version)
	}
	return FromBytes(payload)
}
