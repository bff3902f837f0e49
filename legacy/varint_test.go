package legacy

import (
	"encoding/hex"
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

func TestVarIntShortestForm(t *testing.T) {
	cases := []struct {
		name string
		val  uint64
		hex  string
	}{
		{"single-byte-max", 0xFC, "fc"},
		{"u16-min", 0xFD, "fdfd00"},
		{"u16-max", 0xFFFF, "fdffff"},
		{"u32-min", 0x10000, "fe00000100"},
		{"u32-max", 0xFFFFFFFF, "feffffffff"},
		{"u64-min", 0x100000000, "ff0000000001000000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := wire.NewWriter(0)
			WriteVarInt(w, tc.val)
			got := hex.EncodeToString(w.Bytes())
			if got != tc.hex {
				t.Fatalf("got %s want %s", got, tc.hex)
			}
			c := wire.NewCursor(w.Bytes(), wire.Strict)
			back := ReadVarInt(c)
			if c.Failed() {
				t.Fatalf("unexpected decode failure: %v", c.Err())
			}
			if back != tc.val {
				t.Fatalf("roundtrip got %d want %d", back, tc.val)
			}
		})
	}
}

func TestVarStringAndByteArrayRoundTrip(t *testing.T) {
	w := wire.NewWriter(0)
	WriteVarString(w, "mainnet")
	WriteByteArray(w, []byte{1, 2, 3, 4})
	c := wire.NewCursor(w.Bytes(), wire.Strict)
	s := ReadVarString(c)
	b := ReadByteArray(c)
	if c.Failed() {
		t.Fatalf("unexpected decode failure: %v", c.Err())
	}
	if s != "mainnet" {
		t.Fatalf("got %q want mainnet", s)
	}
	if len(b) != 4 || b[3] != 4 {
		t.Fatalf("byte array mismatch: %v", b)
	}
}
