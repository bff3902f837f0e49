package carbon

import (
	"sort"
	"sync"

	"github.com/phantasma-io/phantasma-go-sdk/bigint"
	"github.com/phantasma-io/phantasma-go-sdk/internal/alloctrack"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// VmDynamicVariable is a self-describing Carbon value: a one-byte type
// tag plus a tag-specific body. Only the field matching
// Tag is meaningful; the rest are zero.
type VmDynamicVariable struct {
	Tag    VmType
	Int    int64
	Big    bigint.Int256
	Blob   []byte
	B16    wire.Bytes16
	B32    wire.Bytes32
	B64    wire.Bytes64
	Str    string
	Struct *VmDynamicStruct
	Array  []VmDynamicVariable
	Inner  *VmDynamicVariable
}

func NewInt8(v int8) VmDynamicVariable   { return VmDynamicVariable{Tag: VmTypeInt8, Int: int64(v)} }
func NewInt16(v int16) VmDynamicVariable { return VmDynamicVariable{Tag: VmTypeInt16, Int: int64(v)} }
func NewInt32(v int32) VmDynamicVariable { return VmDynamicVariable{Tag: VmTypeInt32, Int: int64(v)} }
func NewInt64(v int64) VmDynamicVariable { return VmDynamicVariable{Tag: VmTypeInt64, Int: v} }
func NewInt256(v bigint.Int256) VmDynamicVariable {
	return VmDynamicVariable{Tag: VmTypeInt256, Big: v}
}
func NewBytesValue(b []byte) VmDynamicVariable { return VmDynamicVariable{Tag: VmTypeBytes, Blob: b} }
func NewBytes16Value(b wire.Bytes16) VmDynamicVariable {
	return VmDynamicVariable{Tag: VmTypeBytes16, B16: b}
}
func NewBytes32Value(b wire.Bytes32) VmDynamicVariable {
	return VmDynamicVariable{Tag: VmTypeBytes32, B32: b}
}
func NewBytes64Value(b wire.Bytes64) VmDynamicVariable {
	return VmDynamicVariable{Tag: VmTypeBytes64, B64: b}
}
func NewStringValue(s string) VmDynamicVariable { return VmDynamicVariable{Tag: VmTypeString, Str: s} }
func NewStructValue(s *VmDynamicStruct) VmDynamicVariable {
	return VmDynamicVariable{Tag: VmTypeStruct, Struct: s}
}
func NewArrayValue(elemTag VmType, elems []VmDynamicVariable) VmDynamicVariable {
	return VmDynamicVariable{Tag: elemTag.AsArray(), Array: elems}
}
func NewDynamicValue(inner VmDynamicVariable) VmDynamicVariable {
	return VmDynamicVariable{Tag: VmTypeDynamic, Inner: &inner}
}

// WriteDynamicVariable writes the self-describing form: u8(tag) followed
// by the tag-specific body.
func WriteDynamicVariable(w *wire.Writer, v VmDynamicVariable) {
	WriteVmType(w, v.Tag)
	writeDynamicBody(w, v)
}

func writeDynamicBody(w *wire.Writer, v VmDynamicVariable) {
	switch v.Tag {
	case VmTypeInt8:
		w.WriteU8(uint8(int8(v.Int)))
	case VmTypeInt16:
		w.WriteU16(uint16(int16(v.Int)))
	case VmTypeInt32:
		w.WriteU32(uint32(int32(v.Int)))
	case VmTypeInt64:
		w.WriteI64(v.Int)
	case VmTypeInt256:
		bigint.EncodeCompact(w, v.Big)
	case VmTypeBytes16:
		w.WriteBytes(v.B16[:])
	case VmTypeBytes32:
		w.WriteBytes(v.B32[:])
	case VmTypeBytes64:
		w.WriteBytes(v.B64[:])
	case VmTypeBytes:
		WriteBytesArray(w, v.Blob)
	case VmTypeString:
		WriteCString(w, []byte(v.Str))
	case VmTypeStruct:
		writeStructNoSchema(w, v.Struct)
	case VmTypeDynamic:
		if v.Inner == nil {
			WriteDynamicVariable(w, VmDynamicVariable{Tag: VmTypeBytes})
			return
		}
		WriteDynamicVariable(w, *v.Inner)
	default:
		if v.Tag.IsArray() {
			elem := v.Tag.Elem()
			WriteArrayHeader(w, len(v.Array))
			if elem == VmTypeStruct {
				if v.Struct != nil {
					writeStructSchemaInline(w, v.Struct)
				} else {
					w.WriteU32(0)
				}
			}
			for _, e := range v.Array {
				writeDynamicBody(w, e)
			}
			return
		}
	}
}

// ReadDynamicVariable reads a self-describing value: the tag, then its
// body, recursing for Struct/Array/Dynamic as needed.
func ReadDynamicVariable(c *wire.Cursor) VmDynamicVariable {
	tag := ReadVmType(c)
	if c.Failed() {
		return VmDynamicVariable{}
	}
	return readDynamicBody(c, tag)
}

func readDynamicBody(c *wire.Cursor, tag VmType) VmDynamicVariable {
	switch tag {
	case VmTypeInt8:
		return VmDynamicVariable{Tag: tag, Int: int64(int8(c.ReadU8()))}
	case VmTypeInt16:
		return VmDynamicVariable{Tag: tag, Int: int64(int16(c.ReadU16()))}
	case VmTypeInt32:
		return VmDynamicVariable{Tag: tag, Int: int64(int32(c.ReadU32()))}
	case VmTypeInt64:
		return VmDynamicVariable{Tag: tag, Int: c.ReadI64()}
	case VmTypeInt256:
		return VmDynamicVariable{Tag: tag, Big: bigint.DecodeCompact(c)}
	case VmTypeBytes16:
		b := c.ReadBytes(16)
		if c.Failed() {
			return VmDynamicVariable{}
		}
		v, err := wire.NewBytes16(b)
		if err != nil {
			c.Fail(err)
			return VmDynamicVariable{}
		}
		return VmDynamicVariable{Tag: tag, B16: v}
	case VmTypeBytes32:
		b := c.ReadBytes(32)
		if c.Failed() {
			return VmDynamicVariable{}
		}
		v, err := wire.NewBytes32(b)
		if err != nil {
			c.Fail(err)
			return VmDynamicVariable{}
		}
		return VmDynamicVariable{Tag: tag, B32: v}
	case VmTypeBytes64:
		b := c.ReadBytes(64)
		if c.Failed() {
			return VmDynamicVariable{}
		}
		v, err := wire.NewBytes64(b)
		if err != nil {
			c.Fail(err)
			return VmDynamicVariable{}
		}
		return VmDynamicVariable{Tag: tag, B64: v}
	case VmTypeBytes:
		return VmDynamicVariable{Tag: tag, Blob: ReadBytesArray(c)}
	case VmTypeString:
		return VmDynamicVariable{Tag: tag, Str: string(ReadCString(c))}
	case VmTypeStruct:
		s := readStructNoSchema(c)
		return VmDynamicVariable{Tag: tag, Struct: s}
	case VmTypeDynamic:
		inner := ReadDynamicVariable(c)
		if c.Failed() {
			return VmDynamicVariable{}
		}
		return VmDynamicVariable{Tag: tag, Inner: &inner}
	default:
		if tag.IsArray() {
			elem := tag.Elem()
			n := ReadArrayHeader(c)
			if c.Failed() {
				return VmDynamicVariable{}
			}
			var schema *VmDynamicStruct
			if elem == VmTypeStruct {
				schema = readStructSchemaInlineMarker(c)
				if c.Failed() {
					return VmDynamicVariable{}
				}
			}
			elems := make([]VmDynamicVariable, 0, n)
			for i := 0; i < n; i++ {
				elems = append(elems, readDynamicBody(c, elem))
				if c.Failed() {
					return VmDynamicVariable{}
				}
			}
			return VmDynamicVariable{Tag: tag, Array: elems, Struct: schema}
		}
		c.Fail(wire.Newf(wire.KindDataFormat, "unrecognized VmType tag 0x%02x", uint8(tag)))
		return VmDynamicVariable{}
	}
}

// VmStructField is one (name, value) pair of a VmDynamicStruct.
type VmStructField struct {
	Name  string
	Value VmDynamicVariable
}

// VmDynamicStruct is an unordered-on-construction, sortable-on-demand
// list of named dynamic values.
type VmDynamicStruct struct {
	Fields []VmStructField

	indexOnce sync.Once
	index     map[uint64][]int
}

// Canonical returns a copy of s with fields sorted lexicographically
// ascending by name, the wire-canonical order.
func (s *VmDynamicStruct) Canonical() *VmDynamicStruct {
	out := &VmDynamicStruct{Fields: make([]VmStructField, len(s.Fields))}
	copy(out.Fields, s.Fields)
	sort.Slice(out.Fields, func(i, j int) bool { return out.Fields[i].Name < out.Fields[j].Name })
	return out
}

// Field looks up a field by name. The struct's fields are bucketed once,
// lazily, by the process-wide SipHash-2-4 key into an index map, so repeated lookups on a wide struct
// (e.g. checking several mandatory token/NFT schema fields in sequence)
// don't re-scan the whole field list each time.
func (s *VmDynamicStruct) Field(name string) (VmStructField, bool) {
	s.indexOnce.Do(func() {
		s.index = make(map[uint64][]int, len(s.Fields))
		for i, f := range s.Fields {
			h := alloctrack.HashFieldName(f.Name)
			s.index[h] = append(s.index[h], i)
		}
	})
	h := alloctrack.HashFieldName(name)
	for _, idx := range s.index[h] {
		if s.Fields[idx].Name == name {
			return s.Fields[idx], true
		}
	}
	return VmStructField{}, false
}

// IsCanonical reports whether field names are strictly increasing.
func (s *VmDynamicStruct) IsCanonical() bool {
	for i := 1; i < len(s.Fields); i++ {
		if s.Fields[i-1].Name >= s.Fields[i].Name {
			return false
		}
	}
	return true
}

func writeStructNoSchema(w *wire.Writer, s *VmDynamicStruct) {
	if s == nil {
		w.WriteU32(0)
		return
	}
	canon := s.Canonical()
	w.WriteU32(uint32(len(canon.Fields)))
	for _, f := range canon.Fields {
		name, err := wire.NewSmallString(f.Name)
		if err != nil {
			name = wire.MustSmallString("")
		}
		w.WriteU8(uint8(name.Len()))
		w.WriteBytes(name.Bytes())
		WriteDynamicVariable(w, f.Value)
	}
}

func readStructNoSchema(c *wire.Cursor) *VmDynamicStruct {
	n := ReadArrayHeader(c)
	if c.Failed() {
		return nil
	}
	out := &VmDynamicStruct{Fields: make([]VmStructField, 0, n)}
	for i := 0; i < n; i++ {
		nameLen := c.ReadU8()
		if c.Failed() {
			return nil
		}
		nameBytes := c.ReadBytes(int(nameLen))
		if c.Failed() {
			return nil
		}
		v := ReadDynamicVariable(c)
		if c.Failed() {
			return nil
		}
		out.Fields = append(out.Fields, VmStructField{Name: string(nameBytes), Value: v})
	}
	return out
}

// writeStructSchemaInline serializes a VmStructSchema inline, used once
// ahead of an Array_Struct's elements when no schema is already in scope.
func writeStructSchemaInline(w *wire.Writer, s *VmDynamicStruct) {
	canon := s.Canonical()
	w.WriteU32(uint32(len(canon.Fields)))
	for _, f := range canon.Fields {
		name, err := wire.NewSmallString(f.Name)
		if err != nil {
			name = wire.MustSmallString("")
		}
		w.WriteU8(uint8(name.Len()))
		w.WriteBytes(name.Bytes())
		WriteVmType(w, f.Value.Tag)
	}
}

func readStructSchemaInlineMarker(c *wire.Cursor) *VmDynamicStruct {
	n := ReadArrayHeader(c)
	if c.Failed() {
		return nil
	}
	out := &VmDynamicStruct{Fields: make([]VmStructField, 0, n)}
	for i := 0; i < n; i++ {
		nameLen := c.ReadU8()
		if c.Failed() {
			return nil
		}
		nameBytes := c.ReadBytes(int(nameLen))
		if c.Failed() {
			return nil
		}
		tag := ReadVmType(c)
		if c.Failed() {
			return nil
		}
		out.Fields = append(out.Fields, VmStructField{Name: string(nameBytes), Value: VmDynamicVariable{Tag: tag}})
	}
	return out
}
