package wire

import "bytes"

// ByteView is a borrowed, non-owning range over someone else's backing
// array. Go's slices already carry pointer+length+cap; ByteView exists as a
// distinct name so codec signatures document borrowed-vs-owned intent the
// way this package's data model does.
type ByteView = []byte

// Bytes is an owning, resizable byte sequence.
type Bytes []byte

// Clone returns an owning copy of b.
func (b Bytes) Clone() Bytes {
	if b == nil {
		return nil
	}
	out := make(Bytes, len(b))
	copy(out, b)
	return out
}

// Equal reports whether b and other hold the same bytes.
func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b, other)
}

// Bytes16, Bytes32, Bytes64 are owning, fixed-size byte values, named per the
// spec's BytesN<N> with N in {16, 32, 64}. Equality is bytewise; the zero
// value is all-zero.
type (
	Bytes16 [16]byte
	Bytes32 [32]byte
	Bytes64 [64]byte
)

// NewBytes32 builds a Bytes32 from a slice, which must be exactly 32 bytes.
func NewBytes32(b []byte) (Bytes32, error) {
	var out Bytes32
	if len(b) != 32 {
		return out, Newf(KindBoundsExceeded, "expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

// NewBytes64 builds a Bytes64 from a slice, which must be exactly 64 bytes.
func NewBytes64(b []byte) (Bytes64, error) {
	var out Bytes64
	if len(b) != 64 {
		return out, Newf(KindBoundsExceeded, "expected 64 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

// NewBytes16 builds a Bytes16 from a slice, which must be exactly 16 bytes.
func NewBytes16(b []byte) (Bytes16, error) {
	var out Bytes16
	if len(b) != 16 {
		return out, Newf(KindBoundsExceeded, "expected 16 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

// IsZero reports whether every byte of b is zero.
func (b Bytes32) IsZero() bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// SmallString is a length-prefixed string of 0..255 bytes. The codec treats
// the payload as opaque; it is not required to be UTF-8 but the codec must
// never truncate it mid-codepoint, so callers must pass whole byte strings.
type SmallString struct {
	raw []byte
}

// MaxSmallStringLen is the hard limit enforced by the one-byte length prefix.
const MaxSmallStringLen = 255

// NewSmallString validates length and constructs a SmallString.
func NewSmallString(s string) (SmallString, error) {
	if len(s) > MaxSmallStringLen {
		return SmallString{}, Newf(KindBoundsExceeded, "SmallString exceeds %d bytes (got %d)", MaxSmallStringLen, len(s))
	}
	return SmallString{raw: []byte(s)}, nil
}

// MustSmallString panics if s exceeds the length bound. Intended for
// constant literals known at compile time to fit.
func MustSmallString(s string) SmallString {
	v, err := NewSmallString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// SmallStringFromBytes is like NewSmallString but takes raw, possibly
// non-UTF-8 bytes (metadata field names, payload tags).
func SmallStringFromBytes(b []byte) (SmallString, error) {
	if len(b) > MaxSmallStringLen {
		return SmallString{}, Newf(KindBoundsExceeded, "SmallString exceeds %d bytes (got %d)", MaxSmallStringLen, len(b))
	}
	out := make([]byte, len(b))
	copy(out, b)
	return SmallString{raw: out}, nil
}

// String returns the payload interpreted as UTF-8 (used for display only;
// the codec itself treats the bytes as opaque).
func (s SmallString) String() string { return string(s.raw) }

// Bytes returns the raw payload bytes.
func (s SmallString) Bytes() []byte { return s.raw }

// Len returns the payload length.
func (s SmallString) Len() int { return len(s.raw) }
