package carbontx

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// CallArgSection is one entry of the arg-sections form of a Call body's
// argument list: either a negative register offset or a literal byte
// payload.
type CallArgSection struct {
	IsRegisterOffset bool
	RegisterOffset   int32 // meaningful when IsRegisterOffset; always negative
	Data             []byte
}

// CallBody is the body of TxCall. Args are encoded either as
// a single inline byte blob (InlineArgs, UseSections=false) or as a
// signed-count list of sections (Sections, UseSections=true).
type CallBody struct {
	ModuleID   uint32
	MethodID   uint32
	UseSections bool
	InlineArgs []byte
	Sections   []CallArgSection
}

func peekI32(c *wire.Cursor) int32 {
	mark := c.MarkPos()
	raw := c.ReadU32()
	if c.Failed() {
		return 0
	}
	c.Rewind(mark)
	return int32(raw)
}

func writeCallBody(w *wire.Writer, b CallBody) {
	w.WriteU32(b.ModuleID)
	w.WriteU32(b.MethodID)
	if !b.UseSections {
		w.WriteU32(uint32(len(b.InlineArgs)))
		w.WriteBytes(b.InlineArgs)
		return
	}
	// -N as an i32 stored in the low 32 bits of a u32 write.
	w.WriteU32(uint32(int32(-len(b.Sections))))
	for _, s := range b.Sections {
		if s.IsRegisterOffset {
			w.WriteU32(uint32(s.RegisterOffset))
			continue
		}
		w.WriteU32(uint32(len(s.Data)))
		w.WriteBytes(s.Data)
	}
}

func readCallBody(c *wire.Cursor) CallBody {
	var b CallBody
	b.ModuleID = c.ReadU32()
	b.MethodID = c.ReadU32()
	if c.Failed() {
		return CallBody{}
	}
	lead := peekI32(c)
	if c.Failed() {
		return CallBody{}
	}
	if lead >= 0 {
		n := c.ReadU32()
		if c.Failed() {
			return CallBody{}
		}
		data := c.ReadBytes(int(n))
		if c.Failed() {
			return CallBody{}
		}
		out := make([]byte, len(data))
		copy(out, data)
		b.InlineArgs = out
		return b
	}
	// Arg-sections form: consume the leading -N marker, then N sections.
	_ = c.ReadU32()
	if c.Failed() {
		return CallBody{}
	}
	n := int(-lead)
	b.UseSections = true
	b.Sections = make([]CallArgSection, 0, n)
	for i := 0; i < n; i++ {
		tag := peekI32(c)
		if c.Failed() {
			return CallBody{}
		}
		if tag < 0 {
			offset := int32(c.ReadU32())
			if c.Failed() {
				return CallBody{}
			}
			b.Sections = append(b.Sections, CallArgSection{IsRegisterOffset: true, RegisterOffset: offset})
			continue
		}
		length := c.ReadU32()
		if c.Failed() {
			return CallBody{}
		}
		data := c.ReadBytes(int(length))
		if c.Failed() {
			return CallBody{}
		}
		out := make([]byte, len(data))
		copy(out, data)
		b.Sections = append(b.Sections, CallArgSection{Data: out})
	}
	return b
}
