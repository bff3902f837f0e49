// Package legacy implements the original Phantasma wire codec: VarInt/VarString/ByteArray framing, the legacy BigInteger
// envelope, Ed25519 signatures, and Transaction serialization. It mirrors
// the compactsize/byte-concatenation
// style, rebuilt on top of wire.Cursor/wire.Writer instead of raw offset
// pointers.
package legacy

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// WriteVarInt writes v using the shortest of the four forms.
func WriteVarInt(w *wire.Writer, v uint64) {
	switch {
	case v <= 0xFC:
		w.WriteU8(uint8(v))
	case v <= 0xFFFF:
		w.WriteU8(0xFD)
		w.WriteU16(uint16(v))
	case v <= 0xFFFFFFFF:
		w.WriteU8(0xFE)
		w.WriteU32(uint32(v))
	default:
		w.WriteU8(0xFF)
		w.WriteU64(v)
	}
}

// ReadVarInt reads a VarInt. Readers accept any prefix regardless of
// whether the writer would have chosen a shorter form; spec's "shortest
// form" rule binds writers only.
func ReadVarInt(c *wire.Cursor) uint64 {
	prefix := c.ReadU8()
	if c.Failed() {
		return 0
	}
	switch prefix {
	case 0xFD:
		return uint64(c.ReadU16())
	case 0xFE:
		return uint64(c.ReadU32())
	case 0xFF:
		return c.ReadU64()
	default:
		return uint64(prefix)
	}
}

// WriteVarString writes a VarInt length prefix followed by the raw bytes.
func WriteVarString(w *wire.Writer, s string) {
	b := []byte(s)
	WriteVarInt(w, uint64(len(b)))
	w.WriteBytes(b)
}

// ReadVarString reads a VarInt-prefixed string.
func ReadVarString(c *wire.Cursor) string {
	n := ReadVarInt(c)
	if c.Failed() {
		return ""
	}
	b := c.ReadBytes(int(n))
	if c.Failed() {
		return ""
	}
	return string(b)
}

// WriteByteArray writes a VarInt length prefix followed by the raw bytes.
func WriteByteArray(w *wire.Writer, b []byte) {
	WriteVarInt(w, uint64(len(b)))
	w.WriteBytes(b)
}

// ReadByteArray reads a VarInt-prefixed byte array.
func ReadByteArray(c *wire.Cursor) []byte {
	n := ReadVarInt(c)
	if c.Failed() {
		return nil
	}
	b := c.ReadBytes(int(n))
	if c.Failed() {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
