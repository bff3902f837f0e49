package wire

import "encoding/binary"

// Mode selects how a Cursor treats non-canonical but structurally valid
// input: Strict flags it as an error, Relaxed accepts it silently.
type Mode int

const (
	Strict Mode = iota
	Relaxed
)

// Cursor is the read-side counterpart of Writer, generalized with a
// sticky failure flag and a strict/relaxed toggle: once Failed() is true, every
// subsequent read is a no-op that preserves the flag and returns the
// type's zero value, and no read ever partially advances the position.
type Cursor struct {
	b         []byte
	pos       int
	failed    bool
	failErr   error
	mode      Mode
	nonStdHit bool
}

// NewCursor wraps b for reading, starting at position 0.
func NewCursor(b []byte, mode Mode) *Cursor {
	return &Cursor{b: b, mode: mode}
}

// Failed reports whether a prior read has set the sticky failure flag.
func (c *Cursor) Failed() bool { return c.failed }

// Err returns the error that tripped the failure flag, if any.
func (c *Cursor) Err() error { return c.failErr }

// Finished reports whether the cursor has consumed the entire buffer.
func (c *Cursor) Finished() bool { return c.pos >= len(c.b) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	if c.pos >= len(c.b) {
		return 0
	}
	return len(c.b) - c.pos
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

type Mark int

// Mark captures the current position for a later Rewind.
func (c *Cursor) MarkPos() Mark { return Mark(c.pos) }

// Rewind resets the position to a previously captured Mark. It does not
// clear the failure flag: a failure is sticky regardless of rewinding.
func (c *Cursor) Rewind(m Mark) { c.pos = int(m) }

func (c *Cursor) fail(err error) {
	if !c.failed {
		c.failed = true
		c.failErr = err
	}
}

// Fail sets the sticky failure flag from outside the package, for codecs
// layered on top of Cursor (bigint, legacy, carbon) that detect a
// domain-specific violation — e.g. a non-minimal integer encoding — after
// a successful byte-level read.
func (c *Cursor) Fail(err error) { c.fail(err) }

// OnNonStandard records that the current read observed a non-canonical
// encoding. In Strict mode this sets the failure flag (returning an error
// to the caller of the read that triggered it); in Relaxed mode it is
// recorded for inspection via NonStandardSeen but the read still succeeds.
func (c *Cursor) OnNonStandard(msg string) bool {
	c.nonStdHit = true
	if c.mode == Strict {
		c.fail(Newf(KindDataFormat, "non-canonical encoding: %s", msg))
		return true
	}
	return false
}

// NonStandardSeen reports whether any read so far observed a non-canonical
// encoding, regardless of mode.
func (c *Cursor) NonStandardSeen() bool { return c.nonStdHit }

func (c *Cursor) readExact(n int) ([]byte, bool) {
	if c.failed {
		return nil, false
	}
	if n < 0 || c.Remaining() < n {
		c.fail(Newf(KindBoundsExceeded, "unexpected EOF: need %d, have %d", n, c.Remaining()))
		return nil, false
	}
	start := c.pos
	c.pos += n
	return c.b[start:c.pos], true
}

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() uint8 {
	b, ok := c.readExact(1)
	if !ok {
		return 0
	}
	return b[0]
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() uint16 {
	b, ok := c.readExact(2)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() uint32 {
	b, ok := c.readExact(4)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() uint64 {
	b, ok := c.readExact(8)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadI64 reads a little-endian int64.
func (c *Cursor) ReadI64() int64 {
	return int64(c.ReadU64())
}

// ReadBytes reads exactly n bytes and returns a borrowed view into the
// underlying buffer.
func (c *Cursor) ReadBytes(n int) ByteView {
	b, ok := c.readExact(n)
	if !ok {
		return nil
	}
	return b
}

// ReadSZ reads a NUL-terminated C-string (used for Carbon dynamic-variable
// String values). The terminator is consumed but not included in the
// result.
func (c *Cursor) ReadSZ() []byte {
	if c.failed {
		return nil
	}
	start := c.pos
	for i := c.pos; i < len(c.b); i++ {
		if c.b[i] == 0 {
			out := c.b[start:i]
			c.pos = i + 1
			return out
		}
	}
	c.fail(Newf(KindDataFormat, "unterminated C-string"))
	return nil
}
