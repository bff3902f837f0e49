// Package carbontx implements the Carbon transaction message union: the fixed TxMsg header, its 17 variant bodies, and
// the per-variant witness layout. There is no variant length prefix —
// the header's type byte alone dispatches to the correct body codec.
package carbontx

import (
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// TxType is the one-byte variant discriminator.
type TxType uint8

const (
	TxCall                               TxType = 0
	TxCallMulti                          TxType = 1
	TxTrade                               TxType = 2
	TxTransferFungible                    TxType = 3
	TxTransferFungibleGasPayer            TxType = 4
	TxTransferNonFungibleSingle           TxType = 5
	TxTransferNonFungibleSingleGasPayer   TxType = 6
	TxTransferNonFungibleMulti            TxType = 7
	TxTransferNonFungibleMultiGasPayer    TxType = 8
	TxMintFungible                        TxType = 9
	TxBurnFungible                        TxType = 10
	TxBurnFungibleGasPayer                TxType = 11
	TxMintNonFungible                     TxType = 12
	TxBurnNonFungible                     TxType = 13
	TxBurnNonFungibleGasPayer             TxType = 14
	TxPhantasma                           TxType = 15
	TxPhantasmaRaw                        TxType = 16
)

// Header is the fixed-layout TxMsg header common to every variant.
type Header struct {
	Type     TxType
	Expiry   int64
	MaxGas   uint64
	MaxData  uint64
	GasFrom  wire.Bytes32
	Payload  wire.SmallString
}

func writeHeader(w *wire.Writer, h Header) {
	w.WriteU8(uint8(h.Type))
	w.WriteI64(h.Expiry)
	w.WriteU64(h.MaxGas)
	w.WriteU64(h.MaxData)
	w.WriteBytes(h.GasFrom[:])
	w.WriteU8(uint8(h.Payload.Len()))
	w.WriteBytes(h.Payload.Bytes())
}

func readHeader(c *wire.Cursor) Header {
	var h Header
	h.Type = TxType(c.ReadU8())
	h.Expiry = c.ReadI64()
	h.MaxGas = c.ReadU64()
	h.MaxData = c.ReadU64()
	gasFrom := c.ReadBytes(32)
	if c.Failed() {
		return Header{}
	}
	b32, err := wire.NewBytes32(gasFrom)
	if err != nil {
		c.Fail(err)
		return Header{}
	}
	h.GasFrom = b32
	nameLen := c.ReadU8()
	if c.Failed() {
		return Header{}
	}
	nameBytes := c.ReadBytes(int(nameLen))
	if c.Failed() {
		return Header{}
	}
	ss, err := wire.SmallStringFromBytes(nameBytes)
	if err != nil {
		c.Fail(err)
		return Header{}
	}
	h.Payload = ss
	return h
}
