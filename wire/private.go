package wire

import "runtime"

// PrivateBytes is a fixed-size secret buffer pinned against swap for its
// lifetime and zeroed on Wipe. It backs private key seeds and WIF material.
// Unlike the one-shot AES-KW wrap/unwrap calls in crypto/aeskw.go, which
// only ever touch secrets for the duration of a single wrap operation,
// PrivateBytes is held for as long as a PhantasmaKeys value is alive, so
// pinning/zeroing are lifecycle operations here rather than call-scoped
// ones.
type PrivateBytes struct {
	data   []byte
	locked bool
}

// NewPrivateBytes copies src into pinned storage. src is not modified or
// retained; callers that generated src themselves should zero it afterward.
func NewPrivateBytes(src []byte) *PrivateBytes {
	pb := &PrivateBytes{data: make([]byte, len(src))}
	copy(pb.data, src)
	pb.locked = mlock(pb.data)
	runtime.SetFinalizer(pb, func(p *PrivateBytes) { p.Wipe() })
	return pb
}

// Bytes returns the borrowed secret buffer. Callers must not retain it past
// the PrivateBytes' lifetime.
func (pb *PrivateBytes) Bytes() []byte {
	if pb == nil {
		return nil
	}
	return pb.data
}

// Len reports the buffer length.
func (pb *PrivateBytes) Len() int {
	if pb == nil {
		return 0
	}
	return len(pb.data)
}

// Wipe zeroes the buffer and releases the memory lock. Safe to call more
// than once and on a nil receiver. Every exit path that holds a
// PrivateBytes — normal return, early error return, or panic unwind via a
// deferred Wipe — must reach this.
func (pb *PrivateBytes) Wipe() {
	if pb == nil || pb.data == nil {
		return
	}
	for i := range pb.data {
		pb.data[i] = 0
	}
	if pb.locked {
		munlock(pb.data)
		pb.locked = false
	}
	pb.data = nil
	runtime.SetFinalizer(pb, nil)
}

// Clone returns a new PrivateBytes holding an independent copy of the secret.
func (pb *PrivateBytes) Clone() *PrivateBytes {
	if pb == nil {
		return nil
	}
	return NewPrivateBytes(pb.data)
}
