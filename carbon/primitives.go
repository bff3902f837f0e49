// Package carbon implements the Carbon wire format: fixed-width little-endian primitives, length-prefixed arrays,
// C-strings, the VmType tag system, schema-directed struct encoding, and
// the VmDynamicVariable/VmDynamicStruct tagged-union codec. It is the
// higher-budget sibling of the legacy codec, grounded on the same
// Cursor/Writer primitives from package wire.
package carbon

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// WriteCString writes a NUL-terminated string: payload bytes then 0x00.
func WriteCString(w *wire.Writer, s []byte) { w.WriteSZ(s) }

// ReadCString reads a NUL-terminated string, excluding the terminator.
func ReadCString(c *wire.Cursor) []byte { return c.ReadSZ() }

// WriteBytesArray writes a length-prefixed byte array: u32_le(length)
// followed by the bytes themselves.
func WriteBytesArray(w *wire.Writer, b []byte) {
	w.WriteU32(uint32(len(b)))
	w.WriteBytes(b)
}

// ReadBytesArray reads a u32-length-prefixed byte array.
func ReadBytesArray(c *wire.Cursor) []byte {
	n := c.ReadU32()
	if c.Failed() {
		return nil
	}
	if int32(n) < 0 {
		c.Fail(wire.Newf(wire.KindDataFormat, "bytes array length %d is negative when interpreted as i32", n))
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

// WriteArrayHeader writes the u32 element-count prefix shared by every
// Carbon length-prefixed array form.
func WriteArrayHeader(w *wire.Writer, count int) { w.WriteU32(uint32(count)) }

// ReadArrayHeader reads and validates an array element count. The
// canonical source treats the count as i32 and rejects negative values.
func ReadArrayHeader(c *wire.Cursor) int {
	n := c.ReadU32()
	if c.Failed() {
		return 0
	}
	if int32(n) < 0 {
		c.Fail(wire.Newf(wire.KindDataFormat, "array length %d is negative when interpreted as i32", n))
		return 0
	}
	return int(n)
}
