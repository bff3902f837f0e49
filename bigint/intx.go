package bigint

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// IntX is the small-or-big tagged union used on the wire: values
// that fit an int64 travel as 8 raw bytes on the wire, larger values fall
// back to the compact 256-bit envelope. Equality is by numeric value, not
// by which representation was chosen.
type IntX struct {
	small   int64
	big     Int256
	isSmall bool
}

// IntXFromInt64 wraps a native int64 as the small-path representation.
func IntXFromInt64(v int64) IntX { return IntX{small: v, isSmall: true} }

// IntXFromInt256 wraps an Int256 as the big-path representation. A value
// that happens to fit an int64 is still tagged Big here; EncodeIntX
// re-derives the correct wire form independent of this tag.
func IntXFromInt256(v Int256) IntX { return IntX{big: v, isSmall: false} }

// ToInt256 widens the value to an Int256, regardless of which path it was
// constructed through.
func (x IntX) ToInt256() Int256 {
	if x.isSmall {
		return IntFromInt64(x.small)
	}
	return x.big
}

// Equal compares two IntX values by numeric value.
func (x IntX) Equal(o IntX) bool {
	return x.ToInt256().Cmp(o.ToInt256()) == 0
}

// EncodeIntX writes an IntX in its wire form: if the value's minimal
// two's-complement form fits in 8 bytes, it is written as a header byte
// (0x08, with 0x80 set if negative) followed by the 8 little-endian
// payload bytes, sign-extended as needed. Otherwise the header/payload
// pair is a compact 256-bit envelope the same as EncodeCompact (with
// length strictly > 8).
func EncodeIntX(w *wire.Writer, x IntX) {
	v := x.ToInt256()
	payload := v.ToSignedBytes()
	if len(payload) <= 8 {
		full := make([]byte, 8)
		copy(full, payload)
		signByte := byte(0x00)
		if len(payload) > 0 && payload[len(payload)-1]&0x80 != 0 {
			signByte = 0xFF
		}
		for i := len(payload); i < 8; i++ {
			full[i] = signByte
		}
		header := byte(0x08)
		if signByte == 0xFF {
			header |= 0x80
		}
		w.WriteU8(header)
		w.WriteBytes(full)
		return
	}
	EncodeCompact(w, v)
}

// DecodeIntX reads an IntX. A header length less than 8 is malformed
// (DataFormat). A header length of exactly 8 is read as 8 raw bytes; if
// their natural sign bit matches the header's declared sign bit, the
// value is the canonical int64 small form. If it disagrees — e.g. the
// boundary vector [0x08,0,0,0,0,0,0,0,0x80], whose header declares
// non-negative but whose payload's own top bit is set — the 8 bytes are
// re-read as the low half of a general 256-bit value, with the upper 24
// bytes filled from the HEADER's declared sign rather than the payload's
// own top bit (mirroring the reference decoder's fallthrough to its
// general-width reader on this mismatch). That always needs 9 bytes to
// represent minimally, so it is unconditionally promoted to the Big
// representation. A header length greater than 8 is read as a compact
// 256-bit envelope body; if the resulting value's minimal form would in
// fact fit in 8 bytes, that is flagged via OnNonStandard (strict mode
// rejects it, relaxed mode accepts it), since only this oversized-encoding
// case is spec'd as mode-dependent.
func DecodeIntX(c *wire.Cursor) IntX {
	header := c.ReadU8()
	if c.Failed() {
		return IntX{}
	}
	if header&0x40 != 0 {
		c.Fail(wire.Newf(wire.KindDataFormat, "intx header has reserved bit set: 0x%02x", header))
		return IntX{}
	}
	length := int(header & 0x3F)
	headerNeg := header&0x80 != 0
	if length < 8 {
		c.Fail(wire.Newf(wire.KindDataFormat, "intx header length %d is shorter than the minimum 8-byte small form", length))
		return IntX{}
	}
	if length == 8 {
		payload := c.ReadBytes(8)
		if c.Failed() {
			return IntX{}
		}
		payloadNeg := payload[7]&0x80 != 0
		if payloadNeg == headerNeg {
			v, err := FromSignedBytes(payload)
			if err != nil {
				c.Fail(err)
				return IntX{}
			}
			asInt64, ok := int256ToInt64(v)
			if ok {
				return IntXFromInt64(asInt64)
			}
			return IntXFromInt256(v)
		}
		// Sign-extension mismatch: re-read as a general 256-bit value,
		// filling the upper 24 bytes from the header's declared sign
		// rather than the payload's own top bit. This always yields a
		// value whose minimal form needs 9 bytes, so it can never be
		// 8-byte-safe and is unconditionally Big.
		full := make([]byte, 32)
		copy(full, payload)
		fill := byte(0x00)
		if headerNeg {
			fill = 0xFF
		}
		for i := 8; i < 32; i++ {
			full[i] = fill
		}
		v, err := FromSignedBytes(full)
		if err != nil {
			c.Fail(err)
			return IntX{}
		}
		return IntXFromInt256(v)
	}
	if length > 32 {
		c.Fail(wire.Newf(wire.KindDataFormat, "intx payload length %d exceeds 32", length))
		return IntX{}
	}
	payload := c.ReadBytes(length)
	if c.Failed() {
		return IntX{}
	}
	payloadNeg := payload[length-1]&0x80 != 0
	if payloadNeg != headerNeg {
		c.Fail(wire.Newf(wire.KindDataFormat, "intx sign bit mismatch between header and payload"))
		return IntX{}
	}
	v, err := FromSignedBytes(payload)
	if err != nil {
		c.Fail(err)
		return IntX{}
	}
	if len(v.ToSignedBytes()) <= 8 {
		c.OnNonStandard("intx value encoded via 256-bit envelope fits in the 8-byte small form")
	}
	return IntXFromInt256(v)
}

func int256ToInt64(v Int256) (int64, bool) {
	payload := v.ToSignedBytes()
	if len(payload) > 8 {
		return 0, false
	}
	full := make([]byte, 8)
	copy(full, payload)
	signByte := byte(0x00)
	if len(payload) > 0 && payload[len(payload)-1]&0x80 != 0 {
		signByte = 0xFF
	}
	for i := len(payload); i < 8; i++ {
		full[i] = signByte
	}
	var u uint64
	for i := 7; i >= 0; i-- {
		u = u<<8 | uint64(full[i])
	}
	return int64(u), true
}
