package carbontx

import (
	"github.com/phantasma-io/phantasma-go-sdk/bigint"
	"github.com/phantasma-io/phantasma-go-sdk/carbon"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

type TransferFungibleBody struct {
	To     wire.Bytes32
	TokenID uint64
	Amount  uint64
}

type TransferFungibleGasPayerBody struct {
	To      wire.Bytes32
	From    wire.Bytes32
	TokenID uint64
	Amount  uint64
}

type TransferNonFungibleSingleBody struct {
	To         wire.Bytes32
	TokenID    uint64
	InstanceID uint64
}

type TransferNonFungibleSingleGasPayerBody struct {
	To         wire.Bytes32
	From       wire.Bytes32
	TokenID    uint64
	InstanceID uint64
}

type TransferNonFungibleMultiBody struct {
	To          wire.Bytes32
	TokenID     uint64
	InstanceIDs []uint64
}

type TransferNonFungibleMultiGasPayerBody struct {
	To          wire.Bytes32
	From        wire.Bytes32
	TokenID     uint64
	InstanceIDs []uint64
}

type MintFungibleBody struct {
	TokenID uint64
	To      wire.Bytes32
	Amount  bigint.IntX
}

type BurnFungibleBody struct {
	TokenID uint64
	Amount  bigint.IntX
}

type BurnFungibleGasPayerBody struct {
	TokenID uint64
	From    wire.Bytes32
	Amount  bigint.IntX
}

type MintNonFungibleBody struct {
	TokenID  uint64
	To       wire.Bytes32
	SeriesID uint32
	Rom      []byte
	Ram      []byte
}

type BurnNonFungibleBody struct {
	TokenID    uint64
	InstanceID uint64
}

type BurnNonFungibleGasPayerBody struct {
	TokenID    uint64
	From       wire.Bytes32
	InstanceID uint64
}

type PhantasmaBody struct {
	Nexus  wire.SmallString
	Chain  wire.SmallString
	Script []byte
}

type PhantasmaRawBody struct {
	TransactionBlob []byte
}

type CallMultiBody struct {
	Calls []CallBody
}

type TradeBody struct {
	TransferFungibleGasPayer           []TransferFungibleGasPayerBody
	TransferNonFungibleSingleGasPayer  []TransferNonFungibleSingleGasPayerBody
	MintFungible                       []MintFungibleBody
	BurnFungibleGasPayer               []BurnFungibleGasPayerBody
	MintNonFungible                    []MintNonFungibleBody
	BurnNonFungibleGasPayer            []BurnNonFungibleGasPayerBody
}

func writeSmallString(w *wire.Writer, s wire.SmallString) {
	w.WriteU8(uint8(s.Len()))
	w.WriteBytes(s.Bytes())
}

func readSmallString(c *wire.Cursor) wire.SmallString {
	n := c.ReadU8()
	if c.Failed() {
		return wire.SmallString{}
	}
	b := c.ReadBytes(int(n))
	if c.Failed() {
		return wire.SmallString{}
	}
	ss, err := wire.SmallStringFromBytes(b)
	if err != nil {
		c.Fail(err)
		return wire.SmallString{}
	}
	return ss
}

func writeTransferFungible(w *wire.Writer, b TransferFungibleBody) {
	w.WriteBytes(b.To[:])
	w.WriteU64(b.TokenID)
	w.WriteU64(b.Amount)
}

func readTransferFungible(c *wire.Cursor) TransferFungibleBody {
	var b TransferFungibleBody
	to := c.ReadBytes(32)
	if c.Failed() {
		return TransferFungibleBody{}
	}
	b32, err := wire.NewBytes32(to)
	if err != nil {
		c.Fail(err)
		return TransferFungibleBody{}
	}
	b.To = b32
	b.TokenID = c.ReadU64()
	b.Amount = c.ReadU64()
	return b
}

func writeTransferFungibleGasPayer(w *wire.Writer, b TransferFungibleGasPayerBody) {
	w.WriteBytes(b.To[:])
	w.WriteBytes(b.From[:])
	w.WriteU64(b.TokenID)
	w.WriteU64(b.Amount)
}

func readTransferFungibleGasPayer(c *wire.Cursor) TransferFungibleGasPayerBody {
	var b TransferFungibleGasPayerBody
	to := c.ReadBytes(32)
	from := c.ReadBytes(32)
	if c.Failed() {
		return TransferFungibleGasPayerBody{}
	}
	toB, err := wire.NewBytes32(to)
	if err != nil {
		c.Fail(err)
		return TransferFungibleGasPayerBody{}
	}
	fromB, err := wire.NewBytes32(from)
	if err != nil {
		c.Fail(err)
		return TransferFungibleGasPayerBody{}
	}
	b.To, b.From = toB, fromB
	b.TokenID = c.ReadU64()
	b.Amount = c.ReadU64()
	return b
}

func writeTransferNonFungibleSingle(w *wire.Writer, b TransferNonFungibleSingleBody) {
	w.WriteBytes(b.To[:])
	w.WriteU64(b.TokenID)
	w.WriteU64(b.InstanceID)
}

func readTransferNonFungibleSingle(c *wire.Cursor) TransferNonFungibleSingleBody {
	var b TransferNonFungibleSingleBody
	to := c.ReadBytes(32)
	if c.Failed() {
		return TransferNonFungibleSingleBody{}
	}
	b32, err := wire.NewBytes32(to)
	if err != nil {
		c.Fail(err)
		return TransferNonFungibleSingleBody{}
	}
	b.To = b32
	b.TokenID = c.ReadU64()
	b.InstanceID = c.ReadU64()
	return b
}

func writeTransferNonFungibleSingleGasPayer(w *wire.Writer, b TransferNonFungibleSingleGasPayerBody) {
	w.WriteBytes(b.To[:])
	w.WriteBytes(b.From[:])
	w.WriteU64(b.TokenID)
	w.WriteU64(b.InstanceID)
}

func readTransferNonFungibleSingleGasPayer(c *wire.Cursor) TransferNonFungibleSingleGasPayerBody {
	var b TransferNonFungibleSingleGasPayerBody
	to := c.ReadBytes(32)
	from := c.ReadBytes(32)
	if c.Failed() {
		return TransferNonFungibleSingleGasPayerBody{}
	}
	toB, err := wire.NewBytes32(to)
	if err != nil {
		c.Fail(err)
		return TransferNonFungibleSingleGasPayerBody{}
	}
	fromB, err := wire.NewBytes32(from)
	if err != nil {
		c.Fail(err)
		return TransferNonFungibleSingleGasPayerBody{}
	}
	b.To, b.From = toB, fromB
	b.TokenID = c.ReadU64()
	b.InstanceID = c.ReadU64()
	return b
}

func writeTransferNonFungibleMulti(w *wire.Writer, b TransferNonFungibleMultiBody) {
	w.WriteBytes(b.To[:])
	w.WriteU64(b.TokenID)
	w.WriteU32(uint32(len(b.InstanceIDs)))
	for _, id := range b.InstanceIDs {
		w.WriteU64(id)
	}
}

func readTransferNonFungibleMulti(c *wire.Cursor) TransferNonFungibleMultiBody {
	var b TransferNonFungibleMultiBody
	to := c.ReadBytes(32)
	if c.Failed() {
		return TransferNonFungibleMultiBody{}
	}
	b32, err := wire.NewBytes32(to)
	if err != nil {
		c.Fail(err)
		return TransferNonFungibleMultiBody{}
	}
	b.To = b32
	b.TokenID = c.ReadU64()
	n := carbon.ReadArrayHeader(c)
	if c.Failed() {
		return TransferNonFungibleMultiBody{}
	}
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, c.ReadU64())
		if c.Failed() {
			return TransferNonFungibleMultiBody{}
		}
	}
	b.InstanceIDs = ids
	return b
}

func writeTransferNonFungibleMultiGasPayer(w *wire.Writer, b TransferNonFungibleMultiGasPayerBody) {
	w.WriteBytes(b.To[:])
	w.WriteBytes(b.From[:])
	w.WriteU64(b.TokenID)
	w.WriteU32(uint32(len(b.InstanceIDs)))
	for _, id := range b.InstanceIDs {
		w.WriteU64(id)
	}
}

func readTransferNonFungibleMultiGasPayer(c *wire.Cursor) TransferNonFungibleMultiGasPayerBody {
	var b TransferNonFungibleMultiGasPayerBody
	to := c.ReadBytes(32)
	from := c.ReadBytes(32)
	if c.Failed() {
		return TransferNonFungibleMultiGasPayerBody{}
	}
	toB, err := wire.NewBytes32(to)
	if err != nil {
		c.Fail(err)
		return TransferNonFungibleMultiGasPayerBody{}
	}
	fromB, err := wire.NewBytes32(from)
	if err != nil {
		c.Fail(err)
		return TransferNonFungibleMultiGasPayerBody{}
	}
	b.To, b.From = toB, fromB
	b.TokenID = c.ReadU64()
	n := carbon.ReadArrayHeader(c)
	if c.Failed() {
		return TransferNonFungibleMultiGasPayerBody{}
	}
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, c.ReadU64())
		if c.Failed() {
			return TransferNonFungibleMultiGasPayerBody{}
		}
	}
	b.InstanceIDs = ids
	return b
}

func writeMintFungible(w *wire.Writer, b MintFungibleBody) {
	w.WriteU64(b.TokenID)
	w.WriteBytes(b.To[:])
	bigint.EncodeIntX(w, b.Amount)
}

func readMintFungible(c *wire.Cursor) MintFungibleBody {
	var b MintFungibleBody
	b.TokenID = c.ReadU64()
	to := c.ReadBytes(32)
	if c.Failed() {
		return MintFungibleBody{}
	}
	b32, err := wire.NewBytes32(to)
	if err != nil {
		c.Fail(err)
		return MintFungibleBody{}
	}
	b.To = b32
	b.Amount = bigint.DecodeIntX(c)
	return b
}

func writeBurnFungible(w *wire.Writer, b BurnFungibleBody) {
	w.WriteU64(b.TokenID)
	bigint.EncodeIntX(w, b.Amount)
}

func readBurnFungible(c *wire.Cursor) BurnFungibleBody {
	var b BurnFungibleBody
	b.TokenID = c.ReadU64()
	b.Amount = bigint.DecodeIntX(c)
	return b
}

func writeBurnFungibleGasPayer(w *wire.Writer, b BurnFungibleGasPayerBody) {
	w.WriteU64(b.TokenID)
	w.WriteBytes(b.From[:])
	bigint.EncodeIntX(w, b.Amount)
}

func readBurnFungibleGasPayer(c *wire.Cursor) BurnFungibleGasPayerBody {
	var b BurnFungibleGasPayerBody
	b.TokenID = c.ReadU64()
	from := c.ReadBytes(32)
	if c.Failed() {
		return BurnFungibleGasPayerBody{}
	}
	b32, err := wire.NewBytes32(from)
	if err != nil {
		c.Fail(err)
		return BurnFungibleGasPayerBody{}
	}
	b.From = b32
	b.Amount = bigint.DecodeIntX(c)
	return b
}

func writeMintNonFungible(w *wire.Writer, b MintNonFungibleBody) {
	w.WriteU64(b.TokenID)
	w.WriteBytes(b.To[:])
	w.WriteU32(b.SeriesID)
	carbon.WriteBytesArray(w, b.Rom)
	carbon.WriteBytesArray(w, b.Ram)
}

func readMintNonFungible(c *wire.Cursor) MintNonFungibleBody {
	var b MintNonFungibleBody
	b.TokenID = c.ReadU64()
	to := c.ReadBytes(32)
	if c.Failed() {
		return MintNonFungibleBody{}
	}
	b32, err := wire.NewBytes32(to)
	if err != nil {
		c.Fail(err)
		return MintNonFungibleBody{}
	}
	b.To = b32
	b.SeriesID = c.ReadU32()
	b.Rom = carbon.ReadBytesArray(c)
	b.Ram = carbon.ReadBytesArray(c)
	return b
}

func writeBurnNonFungible(w *wire.Writer, b BurnNonFungibleBody) {
	w.WriteU64(b.TokenID)
	w.WriteU64(b.InstanceID)
}

func readBurnNonFungible(c *wire.Cursor) BurnNonFungibleBody {
	var b BurnNonFungibleBody
	b.TokenID = c.ReadU64()
	b.InstanceID = c.ReadU64()
	return b
}

func writeBurnNonFungibleGasPayer(w *wire.Writer, b BurnNonFungibleGasPayerBody) {
	w.WriteU64(b.TokenID)
	w.WriteBytes(b.From[:])
	w.WriteU64(b.InstanceID)
}

func readBurnNonFungibleGasPayer(c *wire.Cursor) BurnNonFungibleGasPayerBody {
	var b BurnNonFungibleGasPayerBody
	b.TokenID = c.ReadU64()
	from := c.ReadBytes(32)
	if c.Failed() {
		return BurnNonFungibleGasPayerBody{}
	}
	b32, err := wire.NewBytes32(from)
	if err != nil {
		c.Fail(err)
		return BurnNonFungibleGasPayerBody{}
	}
	b.From = b32
	b.InstanceID = c.ReadU64()
	return b
}

func writePhantasma(w *wire.Writer, b PhantasmaBody) {
	writeSmallString(w, b.Nexus)
	writeSmallString(w, b.Chain)
	carbon.WriteBytesArray(w, b.Script)
}

func readPhantasma(c *wire.Cursor) PhantasmaBody {
	var b PhantasmaBody
	b.Nexus = readSmallString(c)
	b.Chain = readSmallString(c)
	if c.Failed() {
		return PhantasmaBody{}
	}
	b.Script = carbon.ReadBytesArray(c)
	return b
}

func writePhantasmaRaw(w *wire.Writer, b PhantasmaRawBody) {
	carbon.WriteBytesArray(w, b.TransactionBlob)
}

func readPhantasmaRaw(c *wire.Cursor) PhantasmaRawBody {
	return PhantasmaRawBody{TransactionBlob: carbon.ReadBytesArray(c)}
}

func writeCallMulti(w *wire.Writer, b CallMultiBody) {
	w.WriteU32(uint32(len(b.Calls)))
	for _, call := range b.Calls {
		writeCallBody(w, call)
	}
}

func readCallMulti(c *wire.Cursor) CallMultiBody {
	n := carbon.ReadArrayHeader(c)
	if c.Failed() {
		return CallMultiBody{}
	}
	calls := make([]CallBody, 0, n)
	for i := 0; i < n; i++ {
		calls = append(calls, readCallBody(c))
		if c.Failed() {
			return CallMultiBody{}
		}
	}
	return CallMultiBody{Calls: calls}
}

func writeTrade(w *wire.Writer, b TradeBody) {
	w.WriteU32(uint32(len(b.TransferFungibleGasPayer)))
	for _, e := range b.TransferFungibleGasPayer {
		writeTransferFungibleGasPayer(w, e)
	}
	w.WriteU32(uint32(len(b.TransferNonFungibleSingleGasPayer)))
	for _, e := range b.TransferNonFungibleSingleGasPayer {
		writeTransferNonFungibleSingleGasPayer(w, e)
	}
	w.WriteU32(uint32(len(b.MintFungible)))
	for _, e := range b.MintFungible {
		writeMintFungible(w, e)
	}
	w.WriteU32(uint32(len(b.BurnFungibleGasPayer)))
	for _, e := range b.BurnFungibleGasPayer {
		writeBurnFungibleGasPayer(w, e)
	}
	w.WriteU32(uint32(len(b.MintNonFungible)))
	for _, e := range b.MintNonFungible {
		writeMintNonFungible(w, e)
	}
	w.WriteU32(uint32(len(b.BurnNonFungibleGasPayer)))
	for _, e := range b.BurnNonFungibleGasPayer {
		writeBurnNonFungibleGasPayer(w, e)
	}
}

func readTrade(c *wire.Cursor) TradeBody {
	var b TradeBody
	n1 := carbon.ReadArrayHeader(c)
	for i := 0; i < n1 && !c.Failed(); i++ {
		b.TransferFungibleGasPayer = append(b.TransferFungibleGasPayer, readTransferFungibleGasPayer(c))
	}
	n2 := carbon.ReadArrayHeader(c)
	for i := 0; i < n2 && !c.Failed(); i++ {
		b.TransferNonFungibleSingleGasPayer = append(b.TransferNonFungibleSingleGasPayer, readTransferNonFungibleSingleGasPayer(c))
	}
	n3 := carbon.ReadArrayHeader(c)
	for i := 0; i < n3 && !c.Failed(); i++ {
		b.MintFungible = append(b.MintFungible, readMintFungible(c))
	}
	n4 := carbon.ReadArrayHeader(c)
	for i := 0; i < n4 && !c.Failed(); i++ {
		b.BurnFungibleGasPayer = append(b.BurnFungibleGasPayer, readBurnFungibleGasPayer(c))
	}
	n5 := carbon.ReadArrayHeader(c)
	for i := 0; i < n5 && !c.Failed(); i++ {
		b.MintNonFungible = append(b.MintNonFungible, readMintNonFungible(c))
	}
	n6 := carbon.ReadArrayHeader(c)
	for i := 0; i < n6 && !c.Failed(); i++ {
		b.BurnNonFungibleGasPayer = append(b.BurnNonFungibleGasPayer, readBurnNonFungibleGasPayer(c))
	}
	if c.Failed() {
		return TradeBody{}
	}
	return b
}
