package wire

import (
	"encoding/hex"
	"testing"
)

func TestCursorReadU32LE(t *testing.T) {
	b, _ := hex.DecodeString("78563412")
	c := NewCursor(b, Strict)
	v := c.ReadU32()
	if c.Failed() {
		t.Fatalf("unexpected failure: %v", c.Err())
	}
	if v != 0x12345678 {
		t.Fatalf("got %x want 12345678", v)
	}
}

func TestCursorStickyFailure(t *testing.T) {
	c := NewCursor([]byte{1, 2}, Strict)
	_ = c.ReadU32() // only 2 bytes available, needs 4
	if !c.Failed() {
		t.Fatalf("expected failure flag set")
	}
	// Subsequent reads are no-ops returning zero values, flag stays set.
	if v := c.ReadU8(); v != 0 {
		t.Fatalf("expected zero value after failure, got %d", v)
	}
	if !c.Failed() {
		t.Fatalf("failure flag must remain sticky")
	}
}

func TestCursorReadSZ(t *testing.T) {
	c := NewCursor([]byte("hello\x00world"), Strict)
	got := c.ReadSZ()
	if string(got) != "hello" {
		t.Fatalf("got %q want hello", got)
	}
	if c.Pos() != 6 {
		t.Fatalf("pos=%d want 6", c.Pos())
	}
}

func TestCursorReadSZUnterminated(t *testing.T) {
	c := NewCursor([]byte("no-nul-here"), Strict)
	_ = c.ReadSZ()
	if !c.Failed() {
		t.Fatalf("expected failure for unterminated C-string")
	}
}

func TestWriterMarkViewFrom(t *testing.T) {
	w := NewWriter(0)
	w.WriteU8(0xAA)
	m := w.Mark()
	w.WriteU32(1)
	view := w.ViewFrom(m)
	if len(view) != 4 {
		t.Fatalf("expected 4-byte view, got %d", len(view))
	}
}
