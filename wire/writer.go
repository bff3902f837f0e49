package wire

import "encoding/binary"

// Writer is an append-only byte buffer, the write-side counterpart of
// Cursor. Writes never fail once the buffer is available to grow (append
// may allocate; out-of-memory is a fatal process condition,
// not a reportable error here). Mark/ViewFrom let a caller capture a
// ranged view of what was written since a point in time.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer, optionally pre-sized.
func NewWriter(capacityHint int) *Writer {
	return &Writer{buf: make([]byte, 0, capacityHint)}
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) { w.buf = append(w.buf, v) }

// WriteU16 appends a little-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteU32 appends a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteU64 appends a little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteI64 appends a little-endian int64.
func (w *Writer) WriteI64(v int64) { w.WriteU64(uint64(v)) }

// WriteBytes appends a raw byte slice with no framing.
func (w *Writer) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// WriteSZ appends a NUL-terminated C-string: the payload bytes then 0x00.
func (w *Writer) WriteSZ(b []byte) {
	w.buf = append(w.buf, b...)
	w.buf = append(w.buf, 0)
}

// Mark captures the current length for a later ViewFrom.
func (w *Writer) Mark() Mark { return Mark(len(w.buf)) }

// ViewFrom returns a borrowed view of everything written since m.
func (w *Writer) ViewFrom(m Mark) ByteView { return w.buf[int(m):] }

// Bytes returns the accumulated buffer as a borrowed view.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }
