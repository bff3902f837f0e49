package script

import (
	"github.com/phantasma-io/phantasma-go-sdk/bigint"
	"github.com/phantasma-io/phantasma-go-sdk/legacy"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// VMType is the legacy Phantasma VM's one-byte LOAD operand type tag. It
// is a distinct, smaller enum from carbon.VmType (Carbon's dynamic-value
// tag) — the two VMs box values differently and happen to only coincide
// on the Bytes tag.
type VMType uint8

const (
	VMTypeNone VMType = iota
	VMTypeStruct
	VMTypeBytes
	VMTypeNumber
	VMTypeString
	VMTypeTimestamp
	VMTypeBool
	VMTypeEnum
	VMTypeObject
)

// scratchRegister is the single register this builder uses for every
// LOAD/PUSH pair. Execution semantics (register allocation across a live
// call) are out of scope — the builder only needs to emit a
// byte-identical, replayable push sequence, and a constant register
// index does that without tracking a register file.
const scratchRegister = 0

// ctxRegister is the register CTX stores its resolved context into, and
// the one SWITCH reads back from.
const ctxRegister = 1

// BehaviorVersion selects how the LOAD opcode's operand length is framed.
// The source keeps both paths and selects at runtime; this builder exposes the same compatibility flag rather
// than picking one and guessing.
type BehaviorVersion int

const (
	// BehaviorV0 caps LOAD's data length at a single byte (0..255); data
	// longer than that is a builder error.
	BehaviorV0 BehaviorVersion = iota
	// BehaviorLatest frames LOAD's data length as a full legacy VarInt
	//, matching every other length-prefixed field.
	BehaviorLatest
)

// Builder is a fluent emitter for legacy VM scripts. Each
// high-level call (PushBytes, AllowGas, CallContract, ...) appends
// opcodes and operands to an internal buffer; EndScript returns the
// accumulated bytes.
type Builder struct {
	w       *wire.Writer
	version BehaviorVersion
	err     error
}

// NewBuilder returns an empty script builder using BehaviorLatest framing.
func NewBuilder() *Builder {
	return NewBuilderWithVersion(BehaviorLatest)
}

// NewBuilderWithVersion returns an empty script builder using the given
// LOAD length-framing behavior.
func NewBuilderWithVersion(version BehaviorVersion) *Builder {
	return &Builder{w: wire.NewWriter(0), version: version}
}

// Err returns the first error encountered by a v0-behavior Load call
// whose data exceeded the single-byte length cap, if any.
func (b *Builder) Err() error { return b.err }

func (b *Builder) opcode(op Opcode) { b.w.WriteU8(byte(op)) }

// Load emits `LOAD reg, type, data`. Under BehaviorLatest the operand is
// framed as a legacy ByteArray (VarInt length + bytes). Under
// BehaviorV0 the length is a single byte capped at 0xFF; data longer than
// that sets Err and leaves the buffer unchanged for this call.
func (b *Builder) Load(reg uint8, vmType VMType, data []byte) *Builder {
	if b.version == BehaviorV0 {
		if len(data) > 0xFF {
			if b.err == nil {
				b.err = wire.Newf(wire.KindBoundsExceeded, "LOAD data exceeds BehaviorV0's single-byte length cap (255), got %d", len(data))
			}
			return b
		}
		b.opcode(LOAD)
		b.w.WriteU8(reg)
		b.w.WriteU8(uint8(vmType))
		b.w.WriteU8(uint8(len(data)))
		b.w.WriteBytes(data)
		return b
	}
	b.opcode(LOAD)
	b.w.WriteU8(reg)
	b.w.WriteU8(uint8(vmType))
	legacy.WriteByteArray(b.w, data)
	return b
}

// Push emits `PUSH reg`.
func (b *Builder) Push(reg uint8) *Builder {
	b.opcode(PUSH)
	b.w.WriteU8(reg)
	return b
}

// PushBytes is the common LOAD+PUSH sequence for an opaque byte operand.
func (b *Builder) PushBytes(vmType VMType, data []byte) *Builder {
	return b.Load(scratchRegister, vmType, data).Push(scratchRegister)
}

// PushString pushes a name/method argument as a String operand.
func (b *Builder) PushString(s string) *Builder {
	return b.PushBytes(VMTypeString, []byte(s))
}

// PushAddress pushes a 34-byte address value. The Bytes-typed LOAD operand
// frames the address with its own legacy ByteArray length prefix (VarInt
// length + payload) ahead of the raw address bytes, not just the raw 34
// bytes — the VM re-parses a popped Bytes value of length
// len(addr)+1 as a nested length-prefixed Address on the other end.
func (b *Builder) PushAddress(addr []byte) *Builder {
	framed := wire.NewWriter(len(addr) + 1)
	legacy.WriteByteArray(framed, addr)
	return b.PushBytes(VMTypeBytes, framed.Bytes())
}

// PushBigInteger pushes a signed 256-bit integer as its minimal
// two's-complement byte form.
func (b *Builder) PushBigInteger(v bigint.Int256) *Builder {
	return b.PushBytes(VMTypeNumber, v.ToSignedBytes())
}

// Ctx emits CTX, resolving a call context from the contract/method names
// already on the stack into ctxRegister.
func (b *Builder) Ctx() *Builder {
	b.opcode(CTX)
	b.w.WriteU8(scratchRegister)
	b.w.WriteU8(ctxRegister)
	return b
}

// Switch emits SWITCH, transferring control to the context most recently
// bound via Ctx.
func (b *Builder) Switch() *Builder {
	b.opcode(SWITCH)
	b.w.WriteU8(ctxRegister)
	return b
}

// AllowGas appends the standard AllowGas preamble: pushes price, limit,
// target, from (CallContract's reversed argument order for
// args=[from,target,limit,price]), then the method name "AllowGas" and
// contract name "gas", then CTX/SWITCH.
func (b *Builder) AllowGas(from, target []byte, price, limit bigint.Int256) *Builder {
	return b.PushBigInteger(price).
		PushBigInteger(limit).
		PushAddress(target).
		PushAddress(from).
		PushString("AllowGas").
		PushString("gas").
		Ctx().
		Switch()
}

// SpendGas appends the standard SpendGas call: pushes from, then method
// "SpendGas" and contract "gas", then CTX/SWITCH.
func (b *Builder) SpendGas(from []byte) *Builder {
	return b.PushAddress(from).
		PushString("SpendGas").
		PushString("gas").
		Ctx().
		Switch()
}

// ContractArg is one argument to CallContract: its legacy VM type tag and
// its raw operand bytes (already framed the way PushBytes expects).
type ContractArg struct {
	Type VMType
	Data []byte
}

// CallContract pushes args in reverse order (stack-post-order), then the
// method name, then the contract name, then CTX/SWITCH.
func (b *Builder) CallContract(contract, method string, args ...ContractArg) *Builder {
	for i := len(args) - 1; i >= 0; i-- {
		b.PushBytes(args[i].Type, args[i].Data)
	}
	return b.PushString(method).PushString(contract).Ctx().Switch()
}

// EndScript appends the terminating RET opcode and returns the
// accumulated script bytes.
func (b *Builder) EndScript() []byte {
	b.opcode(RET)
	return b.w.Bytes()
}
