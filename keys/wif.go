package keys

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// WIFVersion is the Base58Check version byte for a WIF-encoded seed.
const WIFVersion = 0x80

// wifPayloadSuffix is the fixed trailer byte following the 32-byte seed
// in the WIF payload || 0x01).
const wifPayloadSuffix = 0x01

// EncodeWIF renders a 32-byte seed as Base58Check(0x80 || seed || 0x01).
func EncodeWIF(seed [32]byte) string {
	payload := make([]byte, 0, 33)
	payload = append(payload, seed[:]...)
	payload = append(payload, wifPayloadSuffix)
	return base58.CheckEncode(payload, WIFVersion)
}

// DecodeWIF parses a WIF string, verifying the 34-byte layout
// (0x80 || seed(32) || 0x01) and extracting the seed.
func DecodeWIF(wif string) ([32]byte, error) {
	var seed [32]byte
	payload, version, err := base58.CheckDecode(wif)
	if err != nil {
		return seed, wire.Wrap(wire.KindCryptoFailure, "invalid Base58Check WIF", err)
	}
	if version != WIFVersion {
		return seed, wire.Newf(wire.KindCryptoFailure, "unexpected WIF version byte 0x%02x", version)
	}
	if len(payload) != 33 {
		return seed, wire.Newf(wire.KindCryptoFailure, "WIF payload must be exactly 33 bytes, got %d", len(payload))
	}
	if payload[32] != wifPayloadSuffix {
		return seed, wire.Newf(wire.KindCryptoFailure, "WIF payload trailer byte must be 0x01")
	}
	copy(seed[:], payload[:32])
	return seed, nil
}
