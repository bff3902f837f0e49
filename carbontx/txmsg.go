package carbontx

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// Body is a tagged union over the 17 TxMsg variant bodies.
// Only the field matching Header.Type is meaningful; this mirrors the
// carbon package's VmDynamicVariable sum-type-emulation approach rather
// than an interface, so TxMsg stays a plain comparable-by-inspection
// value type.
type Body struct {
	Call                               CallBody
	CallMulti                          CallMultiBody
	Trade                              TradeBody
	TransferFungible                   TransferFungibleBody
	TransferFungibleGasPayer           TransferFungibleGasPayerBody
	TransferNonFungibleSingle          TransferNonFungibleSingleBody
	TransferNonFungibleSingleGasPayer  TransferNonFungibleSingleGasPayerBody
	TransferNonFungibleMulti           TransferNonFungibleMultiBody
	TransferNonFungibleMultiGasPayer   TransferNonFungibleMultiGasPayerBody
	MintFungible                       MintFungibleBody
	BurnFungible                       BurnFungibleBody
	BurnFungibleGasPayer               BurnFungibleGasPayerBody
	MintNonFungible                    MintNonFungibleBody
	BurnNonFungible                    BurnNonFungibleBody
	BurnNonFungibleGasPayer            BurnNonFungibleGasPayerBody
	Phantasma                          PhantasmaBody
	PhantasmaRaw                       PhantasmaRawBody
}

// TxMsg is a complete Carbon transaction message: header, variant body
// dispatched by Header.Type, and witnesses.
type TxMsg struct {
	Header    Header
	Body      Body
	Witnesses []Witness
}

// Marshal serializes the message. A message with no witnesses is written
// in its unsigned form (header and body only); ParseTxMsg reads only the
// signed form, except for variants whose layout carries no witnesses.
// Otherwise it returns an error if the witness layout for the header's
// type is violated (wrong witness count, or witness 0's address does not
// match gas_from).
func (tx TxMsg) Marshal() ([]byte, error) {
	w := wire.NewWriter(0)
	writeHeader(w, tx.Header)
	writeBody(w, tx.Header.Type, tx.Body)
	if len(tx.Witnesses) == 0 {
		return w.Bytes(), nil
	}
	if err := writeWitnesses(w, tx.Header, tx.Witnesses); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// ParseTxMsg reads a complete TxMsg, dispatching on the header's type
// byte to the correct body and witness-layout codecs.
func ParseTxMsg(c *wire.Cursor) TxMsg {
	var tx TxMsg
	tx.Header = readHeader(c)
	if c.Failed() {
		return TxMsg{}
	}
	tx.Body = readBody(c, tx.Header.Type)
	if c.Failed() {
		return TxMsg{}
	}
	var secondSigner *wire.Bytes32
	switch tx.Header.Type {
	case TxTransferFungibleGasPayer:
		secondSigner = &tx.Body.TransferFungibleGasPayer.From
	case TxTransferNonFungibleSingleGasPayer:
		secondSigner = &tx.Body.TransferNonFungibleSingleGasPayer.From
	case TxTransferNonFungibleMultiGasPayer:
		secondSigner = &tx.Body.TransferNonFungibleMultiGasPayer.From
	case TxBurnFungibleGasPayer:
		secondSigner = &tx.Body.BurnFungibleGasPayer.From
	case TxBurnNonFungibleGasPayer:
		secondSigner = &tx.Body.BurnNonFungibleGasPayer.From
	}
	tx.Witnesses = readWitnesses(c, tx.Header, secondSigner)
	return tx
}

func writeBody(w *wire.Writer, t TxType, b Body) {
	switch t {
	case TxCall:
		writeCallBody(w, b.Call)
	case TxCallMulti:
		writeCallMulti(w, b.CallMulti)
	case TxTrade:
		writeTrade(w, b.Trade)
	case TxTransferFungible:
		writeTransferFungible(w, b.TransferFungible)
	case TxTransferFungibleGasPayer:
		writeTransferFungibleGasPayer(w, b.TransferFungibleGasPayer)
	case TxTransferNonFungibleSingle:
		writeTransferNonFungibleSingle(w, b.TransferNonFungibleSingle)
	case TxTransferNonFungibleSingleGasPayer:
		writeTransferNonFungibleSingleGasPayer(w, b.TransferNonFungibleSingleGasPayer)
	case TxTransferNonFungibleMulti:
		writeTransferNonFungibleMulti(w, b.TransferNonFungibleMulti)
	case TxTransferNonFungibleMultiGasPayer:
		writeTransferNonFungibleMultiGasPayer(w, b.TransferNonFungibleMultiGasPayer)
	case TxMintFungible:
		writeMintFungible(w, b.MintFungible)
	case TxBurnFungible:
		writeBurnFungible(w, b.BurnFungible)
	case TxBurnFungibleGasPayer:
		writeBurnFungibleGasPayer(w, b.BurnFungibleGasPayer)
	case TxMintNonFungible:
		writeMintNonFungible(w, b.MintNonFungible)
	case TxBurnNonFungible:
		writeBurnNonFungible(w, b.BurnNonFungible)
	case TxBurnNonFungibleGasPayer:
		writeBurnNonFungibleGasPayer(w, b.BurnNonFungibleGasPayer)
	case TxPhantasma:
		writePhantasma(w, b.Phantasma)
	case TxPhantasmaRaw:
		writePhantasmaRaw(w, b.PhantasmaRaw)
	}
}

func readBody(c *wire.Cursor, t TxType) Body {
	var b Body
	switch t {
	case TxCall:
		b.Call = readCallBody(c)
	case TxCallMulti:
		b.CallMulti = readCallMulti(c)
	case TxTrade:
		b.Trade = readTrade(c)
	case TxTransferFungible:
		b.TransferFungible = readTransferFungible(c)
	case TxTransferFungibleGasPayer:
		b.TransferFungibleGasPayer = readTransferFungibleGasPayer(c)
	case TxTransferNonFungibleSingle:
		b.TransferNonFungibleSingle = readTransferNonFungibleSingle(c)
	case TxTransferNonFungibleSingleGasPayer:
		b.TransferNonFungibleSingleGasPayer = readTransferNonFungibleSingleGasPayer(c)
	case TxTransferNonFungibleMulti:
		b.TransferNonFungibleMulti = readTransferNonFungibleMulti(c)
	case TxTransferNonFungibleMultiGasPayer:
		b.TransferNonFungibleMultiGasPayer = readTransferNonFungibleMultiGasPayer(c)
	case TxMintFungible:
		b.MintFungible = readMintFungible(c)
	case TxBurnFungible:
		b.BurnFungible = readBurnFungible(c)
	case TxBurnFungibleGasPayer:
		b.BurnFungibleGasPayer = readBurnFungibleGasPayer(c)
	case TxMintNonFungible:
		b.MintNonFungible = readMintNonFungible(c)
	case TxBurnNonFungible:
		b.BurnNonFungible = readBurnNonFungible(c)
	case TxBurnNonFungibleGasPayer:
		b.BurnNonFungibleGasPayer = readBurnNonFungibleGasPayer(c)
	case TxPhantasma:
		b.Phantasma = readPhantasma(c)
	case TxPhantasmaRaw:
		b.PhantasmaRaw = readPhantasmaRaw(c)
	default:
		c.Fail(wire.Newf(wire.KindDataFormat, "unrecognized TxMsg type byte %d", t))
	}
	return b
}
