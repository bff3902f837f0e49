package legacy

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// Sha256Func is the injected hashing capability Transaction needs to
// compute its hash. The legacy codec itself never implements SHA-256 —
// that adapter is a capability supplied by the host, not a
// dependency of the pure codec packages.
type Sha256Func func([]byte) [32]byte

// Transaction is the legacy Phantasma transaction envelope: nexus/chain identifiers, an embedded script, an expiration
// timestamp, an opaque payload, and an optional list of signatures.
type Transaction struct {
	Nexus      string
	Chain      string
	Script     []byte
	Expiration uint32
	Payload    []byte
	Signatures []Signature
}

// writeUnsigned appends the unsigned body (everything but the signature
// list) to w.
func (tx Transaction) writeUnsigned(w *wire.Writer) {
	WriteVarString(w, tx.Nexus)
	WriteVarString(w, tx.Chain)
	WriteByteArray(w, tx.Script)
	w.WriteU32(tx.Expiration)
	WriteByteArray(w, tx.Payload)
}

// MarshalUnsigned returns the serialized unsigned form, used both for
// transmission of an as-yet-unsigned transaction and as the hash preimage.
func (tx Transaction) MarshalUnsigned() []byte {
	w := wire.NewWriter(0)
	tx.writeUnsigned(w)
	return w.Bytes()
}

// Marshal returns the full serialized transaction: the unsigned body
// followed by the signature section when any signatures are present.
func (tx Transaction) Marshal() []byte {
	w := wire.NewWriter(0)
	tx.writeUnsigned(w)
	if len(tx.Signatures) > 0 {
		WriteVarInt(w, uint64(len(tx.Signatures)))
		for _, sig := range tx.Signatures {
			WriteSignature(w, sig)
		}
	}
	return w.Bytes()
}

// Hash returns SHA-256 of the unsigned serialization, using
// the caller-supplied hash function.
func (tx Transaction) Hash(sha256 Sha256Func) [32]byte {
	return sha256(tx.MarshalUnsigned())
}

// ParseTransaction decodes a Transaction. The signature section is read
// only if the cursor has remaining bytes after the payload, matching the
// "signed form is present only when signed" rule.
func ParseTransaction(c *wire.Cursor) Transaction {
	var tx Transaction
	tx.Nexus = ReadVarString(c)
	tx.Chain = ReadVarString(c)
	tx.Script = ReadByteArray(c)
	tx.Expiration = c.ReadU32()
	tx.Payload = ReadByteArray(c)
	if c.Failed() {
		return Transaction{}
	}
	if c.Finished() {
		return tx
	}
	numSigs := ReadVarInt(c)
	if c.Failed() {
		return Transaction{}
	}
	sigs := make([]Signature, 0, numSigs)
	for i := uint64(0); i < numSigs; i++ {
		sigs = append(sigs, ReadSignature(c))
		if c.Failed() {
			return Transaction{}
		}
	}
	tx.Signatures = sigs
	return tx
}
