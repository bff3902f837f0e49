package legacy

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// SignatureKind identifies the legacy signature variant.
type SignatureKind uint8

const (
	// SignatureEd25519 is the only kind this core produces: a 64-byte
	// detached Ed25519 signature.
	SignatureEd25519 SignatureKind = 1
	// SignatureRing is reserved on the wire but never emitted.
	SignatureRing SignatureKind = 2
)

// Signature is a legacy-format signature: a one-byte kind tag followed by
// a kind-specific body. Only Ed25519 (64 bytes) is produced by this core;
// Ring is recognized on read but its body is opaque here.
type Signature struct {
	Kind SignatureKind
	Body []byte
}

// NewEd25519Signature wraps a 64-byte detached signature.
func NewEd25519Signature(sig wire.Bytes64) Signature {
	body := make([]byte, 64)
	copy(body, sig[:])
	return Signature{Kind: SignatureEd25519, Body: body}
}

// WriteSignature writes kind=u8 followed by a VarInt-prefixed body.
func WriteSignature(w *wire.Writer, sig Signature) {
	w.WriteU8(uint8(sig.Kind))
	WriteByteArray(w, sig.Body)
}

// ReadSignature reads a legacy signature. A kind=1 body that is not
// exactly 64 bytes fails with DataFormat; kind=2 (Ring) is read as an
// opaque blob since this core never validates or produces it.
func ReadSignature(c *wire.Cursor) Signature {
	kind := SignatureKind(c.ReadU8())
	if c.Failed() {
		return Signature{}
	}
	body := ReadByteArray(c)
	if c.Failed() {
		return Signature{}
	}
	if kind == SignatureEd25519 && len(body) != 64 {
		c.Fail(wire.Newf(wire.KindDataFormat, "ed25519 legacy signature body must be 64 bytes, got %d", len(body)))
		return Signature{}
	}
	return Signature{Kind: kind, Body: body}
}
