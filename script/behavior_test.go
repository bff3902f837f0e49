package script

import (
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

func TestBuilderBehaviorV0CapsLoadLengthAtOneByte(t *testing.T) {
	b := NewBuilderWithVersion(BehaviorV0)
	script := b.Load(0, VMTypeString, []byte("hello")).EndScript()
	c := wire.NewCursor(script, wire.Strict)
	if op := Opcode(c.ReadU8()); op != LOAD {
		t.Fatalf("expected LOAD, got %d", op)
	}
	_ = c.ReadU8() // reg
	_ = c.ReadU8() // type
	n := c.ReadU8()
	if int(n) != len("hello") {
		t.Fatalf("expected single-byte length %d, got %d", len("hello"), n)
	}
	data := c.ReadBytes(int(n))
	if string(data) != "hello" {
		t.Fatalf("got %q want hello", data)
	}
}

func TestBuilderBehaviorV0RejectsOversizedData(t *testing.T) {
	b := NewBuilderWithVersion(BehaviorV0)
	big := make([]byte, 256)
	b.Load(0, VMTypeBytes, big)
	if b.Err() == nil {
		t.Fatalf("expected error for data exceeding the single-byte length cap")
	}
}

func TestBuilderDefaultVersionIsLatest(t *testing.T) {
	b := NewBuilder()
	if b.version != BehaviorLatest {
		t.Fatalf("expected NewBuilder to default to BehaviorLatest")
	}
}
