package script

import (
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/bigint"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

func TestBuilderSimpleLoadPush(t *testing.T) {
	b := NewBuilder()
	script := b.PushString("hello").EndScript()
	c := wire.NewCursor(script, wire.Strict)
	if op := Opcode(c.ReadU8()); op != LOAD {
		t.Fatalf("expected LOAD, got %d", op)
	}
	reg := c.ReadU8()
	if reg != scratchRegister {
		t.Fatalf("expected register %d, got %d", scratchRegister, reg)
	}
	_ = c.ReadU8() // vm type tag
	n := c.ReadU8()
	if int(n) != len("hello") {
		t.Fatalf("expected length-prefixed byte array of len %d, got %d", len("hello"), n)
	}
	data := c.ReadBytes(int(n))
	if string(data) != "hello" {
		t.Fatalf("got %q want hello", data)
	}
	if op := Opcode(c.ReadU8()); op != PUSH {
		t.Fatalf("expected PUSH, got %d", op)
	}
	if op := Opcode(c.ReadU8()); op != RET {
		t.Fatalf("expected trailing RET, got %d", op)
	}
	if !c.Finished() {
		t.Fatalf("expected cursor fully consumed")
	}
}

func TestBuilderAllowGasEndsWithCtxSwitchRet(t *testing.T) {
	from := make([]byte, 34)
	target := make([]byte, 34)
	script := NewBuilder().AllowGas(from, target, bigint.IntFromInt64(1), bigint.IntFromInt64(10000)).EndScript()
	if len(script) == 0 {
		t.Fatalf("expected non-empty script")
	}
	if script[len(script)-1] != byte(RET) {
		t.Fatalf("expected script to terminate with RET")
	}
	// SWITCH carries one register operand, so it sits 2 bytes before RET.
	if script[len(script)-3] != byte(SWITCH) {
		t.Fatalf("expected SWITCH two bytes before RET")
	}
	// CTX carries two register operands, so it sits 3 bytes before SWITCH.
	if script[len(script)-6] != byte(CTX) {
		t.Fatalf("expected CTX three bytes before SWITCH")
	}
}

func TestBuilderCallContractArgOrderReversed(t *testing.T) {
	args := []ContractArg{
		{Type: 0x02, Data: []byte("first")},
		{Type: 0x02, Data: []byte("second")},
	}
	script := NewBuilder().CallContract("token", "transfer", args...).EndScript()
	c := wire.NewCursor(script, wire.Strict)
	// first LOAD/PUSH pair should carry "second" (reverse push order).
	if op := Opcode(c.ReadU8()); op != LOAD {
		t.Fatalf("expected LOAD, got %d", op)
	}
	_ = c.ReadU8() // reg
	_ = c.ReadU8() // type
	n := c.ReadU8()
	data := c.ReadBytes(int(n))
	if string(data) != "second" {
		t.Fatalf("expected reversed arg order, got %q first", data)
	}
}
