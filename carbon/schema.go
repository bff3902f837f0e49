package carbon

import (
	"sort"

	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// VmSchemaField is one declared field of a VmStructSchema: a name, a
// type tag, and — for Struct/Array_Struct fields — the nested schema
// describing their element layout.
type VmSchemaField struct {
	Name   string
	Type   VmType
	Nested *VmStructSchema
}

// VmStructSchema is an ordered field list describing how a struct's
// fields are written without repeating their names on the wire. IsSorted records whether Fields is already in canonical
// (lexicographic ascending) order; DynamicExtras permits unknown fields
// beyond the declared set to ride along in a second, self-describing
// block.
type VmStructSchema struct {
	Fields        []VmSchemaField
	IsSorted      bool
	DynamicExtras bool
}

// NewStructSchema builds a schema from a field list, computing IsSorted
// from the field order as given (the caller does not assert it).
func NewStructSchema(fields []VmSchemaField, dynamicExtras bool) *VmStructSchema {
	sorted := true
	for i := 1; i < len(fields); i++ {
		if fields[i-1].Name >= fields[i].Name {
			sorted = false
			break
		}
	}
	return &VmStructSchema{Fields: fields, IsSorted: sorted, DynamicExtras: dynamicExtras}
}

func zeroValueFor(t VmType) VmDynamicVariable {
	switch t {
	case VmTypeInt8, VmTypeInt16, VmTypeInt32, VmTypeInt64:
		return VmDynamicVariable{Tag: t}
	case VmTypeInt256:
		return VmDynamicVariable{Tag: t}
	case VmTypeBytes16, VmTypeBytes32, VmTypeBytes64, VmTypeBytes:
		return VmDynamicVariable{Tag: t}
	case VmTypeString:
		return VmDynamicVariable{Tag: t}
	case VmTypeStruct:
		return VmDynamicVariable{Tag: t, Struct: &VmDynamicStruct{}}
	default:
		if t.IsArray() {
			return VmDynamicVariable{Tag: t, Array: nil}
		}
		return VmDynamicVariable{Tag: t}
	}
}

func findField(values *VmDynamicStruct, name string) (VmDynamicVariable, bool) {
	if values == nil {
		return VmDynamicVariable{}, false
	}
	for _, f := range values.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return VmDynamicVariable{}, false
}

// WriteStructWithSchema writes values field-by-field in schema order
// without repeating names, then — if the schema allows it — an extras
// block for any fields present in values but absent from the schema
//. A field the schema requires but values lacks is written
// as a zero value of the declared type and reported via the returned
// error (serialization is not aborted; the first such miss is reported).
func WriteStructWithSchema(w *wire.Writer, schema *VmStructSchema, values *VmDynamicStruct) error {
	var structuralErr error
	for _, sf := range schema.Fields {
		v, ok := findField(values, sf.Name)
		if !ok {
			if structuralErr == nil {
				structuralErr = wire.Newf(wire.KindSchemaViolation, "missing required field %q of type %s", sf.Name, sf.Type)
			}
			v = zeroValueFor(sf.Type)
		}
		writeDynamicBody(w, v)
	}
	if schema.DynamicExtras {
		extras := extrasOf(schema, values)
		w.WriteU32(uint32(len(extras)))
		for _, f := range extras {
			name, err := wire.NewSmallString(f.Name)
			if err != nil {
				name = wire.MustSmallString("")
			}
			w.WriteU8(uint8(name.Len()))
			w.WriteBytes(name.Bytes())
			WriteVmType(w, f.Value.Tag)
			writeDynamicBody(w, f.Value)
		}
	}
	return structuralErr
}

func extrasOf(schema *VmStructSchema, values *VmDynamicStruct) []VmStructField {
	if values == nil {
		return nil
	}
	declared := make(map[string]bool, len(schema.Fields))
	for _, sf := range schema.Fields {
		declared[sf.Name] = true
	}
	var extras []VmStructField
	for _, f := range values.Fields {
		if !declared[f.Name] {
			extras = append(extras, f)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].Name < extras[j].Name })
	return extras
}

// ReadStructWithSchema decodes a struct using schema to drive field-by-
// field reads. In DynamicExtras mode, any trailing extras are appended
// and the whole result re-sorted to canonical order; a missing required
// field is impossible to detect in this mode by construction (the reader
// reads exactly schema.Fields worth of values). Outside DynamicExtras
// mode, reaching end-of-input mid-field fails via the cursor's own bounds
// check (BoundsExceeded for fixed-size reads), which already fulfils the "missing required
// field fails" rule since there is no length prefix to tell them apart.
func ReadStructWithSchema(c *wire.Cursor, schema *VmStructSchema) *VmDynamicStruct {
	out := &VmDynamicStruct{Fields: make([]VmStructField, 0, len(schema.Fields))}
	for _, sf := range schema.Fields {
		v := readDynamicBody(c, sf.Type)
		if c.Failed() {
			return nil
		}
		out.Fields = append(out.Fields, VmStructField{Name: sf.Name, Value: v})
	}
	if schema.DynamicExtras {
		n := ReadArrayHeader(c)
		if c.Failed() {
			return nil
		}
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
	}
	return out.Canonical()
}
