package bigint

import (
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// EncodeCompact writes the Carbon compact 256-bit integer envelope: a single header byte whose low 6 bits hold the payload length
// (0..32) and whose 0x80 bit holds the sign, followed by the minimal
// two's-complement payload. Zero is special-cased to a lone header byte
// with length 0 and no payload.
func EncodeCompact(w *wire.Writer, n Int256) {
	if n.IsZero() {
		w.WriteU8(0x00)
		return
	}
	payload := n.ToSignedBytes()
	header := byte(len(payload))
	if n.IsNegative() {
		header |= 0x80
	}
	w.WriteU8(header)
	w.WriteBytes(payload)
}

// DecodeCompact reads a Carbon compact envelope. It rejects any encoding
// that is not the unique minimal form for its value: a non-minimal payload
// length, a header sign bit that disagrees with the payload's own sign
// bit, or a reserved 0x40 bit set, all fail with DataFormat. This codec
// never tolerates non-canonical input (contrast the legacy envelope).
func DecodeCompact(c *wire.Cursor) Int256 {
	header := c.ReadU8()
	if c.Failed() {
		return Int256{}
	}
	if header&0x40 != 0 {
		c.Fail(wire.Newf(wire.KindDataFormat, "compact integer header has reserved bit set: 0x%02x", header))
		return Int256{}
	}
	length := int(header & 0x3F)
	neg := header&0x80 != 0
	if length == 0 {
		if neg {
			c.Fail(wire.Newf(wire.KindDataFormat, "compact integer zero encoding must not set sign bit"))
			return Int256{}
		}
		return Int256{}
	}
	if length > 32 {
		c.Fail(wire.Newf(wire.KindDataFormat, "compact integer payload length %d exceeds 32", length))
		return Int256{}
	}
	payload := c.ReadBytes(length)
	if c.Failed() {
		return Int256{}
	}
	payloadNeg := payload[length-1]&0x80 != 0
	if payloadNeg != neg {
		c.Fail(wire.Newf(wire.KindDataFormat, "compact integer sign bit mismatch between header and payload"))
		return Int256{}
	}
	if !isMinimalTwosComplement(payload) {
		c.Fail(wire.Newf(wire.KindDataFormat, "compact integer payload is not minimally encoded"))
		return Int256{}
	}
	v, err := FromSignedBytes(payload)
	if err != nil {
		c.Fail(err)
		return Int256{}
	}
	return v
}

// EncodeLegacy writes the legacy BigInteger box: a one-byte
// length (0..32) followed by that many two's-complement payload bytes.
// Zero encodes as length 1, payload [0x00].
func EncodeLegacy(w *wire.Writer, n Int256) {
	payload := n.ToSignedBytes()
	w.WriteU8(byte(len(payload)))
	w.WriteBytes(payload)
}

// DecodeLegacy reads a legacy BigInteger box. Unlike the Carbon compact
// envelope, this reader tolerates a payload that is longer than the
// strictly minimal two's-complement form (e.g. a redundant leading sign
// byte); FromSignedBytes sign-extends correctly regardless, so no extra
// validation is needed beyond the length bound. See DESIGN.md for the
// rationale.
func DecodeLegacy(c *wire.Cursor) Int256 {
	length := int(c.ReadU8())
	if c.Failed() {
		return Int256{}
	}
	if length > 32 {
		c.Fail(wire.Newf(wire.KindDataFormat, "legacy biginteger length %d exceeds 32", length))
		return Int256{}
	}
	payload := c.ReadBytes(length)
	if c.Failed() {
		return Int256{}
	}
	v, err := FromSignedBytes(payload)
	if err != nil {
		c.Fail(err)
		return Int256{}
	}
	return v
}
