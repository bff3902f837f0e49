package carbontx

import (
	"github.com/phantasma-io/phantasma-go-sdk/carbon"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// Witness pairs a signer address with its detached signature over the
// transaction hash. For the single-signer variants the
// address is implicit (it must equal the header's gas_from) and only
// the signature travels on the wire; multi-witness variants carry both.
type Witness struct {
	Address   wire.Bytes32
	Signature wire.Bytes64
}

// witnessLayout describes how many witnesses a variant carries and
// whether addresses are explicit on the wire or implied by gas_from.
type witnessLayout int

const (
	// witnessNone: no witnesses at all (TxPhantasmaRaw — the embedded
	// Phantasma transaction already carries its own signatures).
	witnessNone witnessLayout = iota
	// witnessSingle: exactly one signature, address implied to be gas_from.
	witnessSingle
	// witnessGasPayerPair: two signatures in fixed order (gas payer, then
	// source), both addresses implied by the body (gas_from, then From).
	witnessGasPayerPair
	// witnessMulti: a length-prefixed list of explicit (address, signature)
	// pairs; witness index 0's address MUST equal gas_from.
	witnessMulti
)

func layoutFor(t TxType) witnessLayout {
	switch t {
	case TxPhantasmaRaw:
		return witnessNone
	case TxTransferFungible, TxTransferNonFungibleSingle, TxTransferNonFungibleMulti,
		TxMintFungible, TxBurnFungible, TxMintNonFungible, TxBurnNonFungible:
		return witnessSingle
	case TxTransferFungibleGasPayer, TxTransferNonFungibleSingleGasPayer, TxTransferNonFungibleMultiGasPayer,
		TxBurnFungibleGasPayer, TxBurnNonFungibleGasPayer:
		return witnessGasPayerPair
	case TxCall, TxCallMulti, TxTrade, TxPhantasma:
		return witnessMulti
	default:
		return witnessMulti
	}
}

// writeWitnesses validates and serializes the witness section for a
// given header. Witness 0's address is checked against h.GasFrom; no
// other witness address is checked. witnesses is the caller-supplied list
// of (address, signature) pairs in wire order.
func writeWitnesses(w *wire.Writer, h Header, witnesses []Witness) error {
	layout := layoutFor(h.Type)
	switch layout {
	case witnessNone:
		return nil
	case witnessSingle:
		if len(witnesses) != 1 {
			return wire.Newf(wire.KindSchemaViolation, "variant %d requires exactly one witness, got %d", h.Type, len(witnesses))
		}
		if witnesses[0].Address != h.GasFrom {
			return wire.Newf(wire.KindSchemaViolation, "witness 0 address does not match gas_from")
		}
		w.WriteBytes(witnesses[0].Signature[:])
		return nil
	case witnessGasPayerPair:
		if len(witnesses) != 2 {
			return wire.Newf(wire.KindSchemaViolation, "variant %d requires exactly two witnesses, got %d", h.Type, len(witnesses))
		}
		if witnesses[0].Address != h.GasFrom {
			return wire.Newf(wire.KindSchemaViolation, "witness 0 (gas payer) address does not match gas_from")
		}
		w.WriteBytes(witnesses[0].Signature[:])
		w.WriteBytes(witnesses[1].Signature[:])
		return nil
	default: // witnessMulti
		if len(witnesses) == 0 {
			return wire.Newf(wire.KindSchemaViolation, "variant %d requires at least one witness", h.Type)
		}
		if witnesses[0].Address != h.GasFrom {
			return wire.Newf(wire.KindSchemaViolation, "witness 0 address does not match gas_from")
		}
		carbon.WriteArrayHeader(w, len(witnesses))
		for _, wit := range witnesses {
			w.WriteBytes(wit.Address[:])
			w.WriteBytes(wit.Signature[:])
		}
		return nil
	}
}

func readWitnesses(c *wire.Cursor, h Header, secondSignerAddr *wire.Bytes32) []Witness {
	layout := layoutFor(h.Type)
	switch layout {
	case witnessNone:
		return nil
	case witnessSingle:
		sig := readBytes64(c)
		if c.Failed() {
			return nil
		}
		return []Witness{{Address: h.GasFrom, Signature: sig}}
	case witnessGasPayerPair:
		gasSig := readBytes64(c)
		srcSig := readBytes64(c)
		if c.Failed() {
			return nil
		}
		result := []Witness{{Address: h.GasFrom, Signature: gasSig}}
		if secondSignerAddr != nil {
			result = append(result, Witness{Address: *secondSignerAddr, Signature: srcSig})
		} else {
			result = append(result, Witness{Signature: srcSig})
		}
		return result
	default: // witnessMulti
		n := carbon.ReadArrayHeader(c)
		if c.Failed() {
			return nil
		}
		if n == 0 {
			c.Fail(wire.Newf(wire.KindSchemaViolation, "variant %d requires at least one witness", h.Type))
			return nil
		}
		out := make([]Witness, 0, n)
		for i := 0; i < n; i++ {
			addr := c.ReadBytes(32)
			if c.Failed() {
				return nil
			}
			addrB, err := wire.NewBytes32(addr)
			if err != nil {
				c.Fail(err)
				return nil
			}
			sig := readBytes64(c)
			if c.Failed() {
				return nil
			}
			out = append(out, Witness{Address: addrB, Signature: sig})
		}
		if out[0].Address != h.GasFrom {
			c.Fail(wire.Newf(wire.KindSchemaViolation, "witness 0 address does not match gas_from"))
			return nil
		}
		return out
	}
}

func readBytes64(c *wire.Cursor) wire.Bytes64 {
	raw := c.ReadBytes(64)
	if c.Failed() {
		return wire.Bytes64{}
	}
	b, err := wire.NewBytes64(raw)
	if err != nil {
		c.Fail(err)
		return wire.Bytes64{}
	}
	return b
}
