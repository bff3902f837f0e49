package token

import (
	"encoding/hex"
	"strings"

	"github.com/phantasma-io/phantasma-go-sdk/bigint"
	"github.com/phantasma-io/phantasma-go-sdk/carbon"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// MetadataValue is a runtime-typed value supplied by a caller building
// token/series/NFT metadata, before it has been coerced to a schema's
// declared VmType.
type MetadataValue struct {
	kind   metaKind
	i64    int64
	u64    uint64
	isU64  bool
	str    string
	fields []MetadataField
	array  []MetadataValue
}

type metaKind int

const (
	metaInt metaKind = iota
	metaString
	metaStruct
	metaArray
)

// MetadataField pairs a name with a caller-supplied MetadataValue.
type MetadataField struct {
	Name  string
	Value MetadataValue
}

func MetaInt64(v int64) MetadataValue   { return MetadataValue{kind: metaInt, i64: v} }
func MetaUint64(v uint64) MetadataValue { return MetadataValue{kind: metaInt, u64: v, isU64: true} }
func MetaString(s string) MetadataValue { return MetadataValue{kind: metaString, str: s} }
func MetaStruct(fields []MetadataField) MetadataValue {
	return MetadataValue{kind: metaStruct, fields: fields}
}
func MetaArray(values []MetadataValue) MetadataValue {
	return MetadataValue{kind: metaArray, array: values}
}

func (v MetadataValue) asInt() (int64, bool) {
	if v.kind != metaInt {
		return 0, false
	}
	if v.isU64 {
		return int64(v.u64), true
	}
	return v.i64, true
}

// CoerceField coerces a single named metadata value into the VmType
// declared by field, appending the result to fields. Integer range is
// enforced per width, Bytes fields accept a raw hex string with an
// optional 0x prefix, Struct fields require every child schema field to
// be present with no unknown children, and array element types must all
// match.
func CoerceField(field carbon.VmSchemaField, fields *[]carbon.VmStructField, metadata []MetadataField) error {
	mv, found := findMeta(metadata, field.Name)
	if !found {
		return wire.Newf(wire.KindSchemaViolation, "field %q is mandatory", field.Name)
	}
	v, err := coerceValue(field, mv)
	if err != nil {
		return err
	}
	*fields = append(*fields, carbon.VmStructField{Name: field.Name, Value: v})
	return nil
}

func findMeta(metadata []MetadataField, name string) (MetadataValue, bool) {
	for _, f := range metadata {
		if f.Name == name {
			return f.Value, true
		}
	}
	return MetadataValue{}, false
}

func coerceValue(field carbon.VmSchemaField, mv MetadataValue) (carbon.VmDynamicVariable, error) {
	t := field.Type
	switch t {
	case carbon.VmTypeInt8, carbon.VmTypeInt16, carbon.VmTypeInt32, carbon.VmTypeInt64:
		n, ok := mv.asInt()
		if !ok {
			return carbon.VmDynamicVariable{}, wire.Newf(wire.KindNumericDomain, "field %q must be a number", field.Name)
		}
		if err := checkIntRange(field.Name, t, n, mv.isU64); err != nil {
			return carbon.VmDynamicVariable{}, err
		}
		switch t {
		case carbon.VmTypeInt8:
			return carbon.NewInt8(int8(n)), nil
		case carbon.VmTypeInt16:
			return carbon.NewInt16(int16(n)), nil
		case carbon.VmTypeInt32:
			return carbon.NewInt32(int32(n)), nil
		default:
			return carbon.NewInt64(n), nil
		}
	case carbon.VmTypeInt256:
		n, ok := mv.asInt()
		if !ok {
			return carbon.VmDynamicVariable{}, wire.Newf(wire.KindNumericDomain, "field %q must be a number", field.Name)
		}
		return carbon.NewInt256(bigint.IntFromInt64(n)), nil
	case carbon.VmTypeString:
		if mv.kind != metaString {
			return carbon.VmDynamicVariable{}, wire.Newf(wire.KindDataFormat, "field %q must be a string", field.Name)
		}
		return carbon.NewStringValue(mv.str), nil
	case carbon.VmTypeBytes:
		b, err := coerceBytes(field.Name, mv)
		if err != nil {
			return carbon.VmDynamicVariable{}, err
		}
		return carbon.NewBytesValue(b), nil
	case carbon.VmTypeBytes16, carbon.VmTypeBytes32, carbon.VmTypeBytes64:
		return coerceFixedBytes(field.Name, t, mv)
	case carbon.VmTypeStruct:
		return coerceStruct(field, mv)
	default:
		if t.IsArray() {
			return coerceArray(field, mv)
		}
		return carbon.VmDynamicVariable{}, wire.Newf(wire.KindSchemaViolation, "unsupported metadata field type for %q", field.Name)
	}
}

func checkIntRange(name string, t carbon.VmType, n int64, fromU64 bool) error {
	switch t {
	case carbon.VmTypeInt8:
		if fromU64 && (n < 0 || n > 0xFF) {
			return wire.Newf(wire.KindNumericDomain, "field %q must be between -128 and 255", name)
		}
		if !fromU64 && (n < -128 || n > 255) {
			return wire.Newf(wire.KindNumericDomain, "field %q must be between -128 and 255", name)
		}
	case carbon.VmTypeInt16:
		if (fromU64 && uint64(n) > 0xFFFF) || (!fromU64 && (n < -32768 || n > 0xFFFF)) {
			return wire.Newf(wire.KindNumericDomain, "field %q must be between -32768 and 65535", name)
		}
	case carbon.VmTypeInt32:
		if (fromU64 && uint64(n) > 0xFFFFFFFF) || (!fromU64 && (n < -2147483648 || n > 0xFFFFFFFF)) {
			return wire.Newf(wire.KindNumericDomain, "field %q must be between -2147483648 and 4294967295", name)
		}
	}
	return nil
}

func coerceBytes(name string, mv MetadataValue) ([]byte, error) {
	if mv.kind != metaString {
		return nil, wire.Newf(wire.KindDataFormat, "field %q must be a byte array or hex string", name)
	}
	s := strings.TrimPrefix(mv.str, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, wire.Newf(wire.KindDataFormat, "field %q must be a byte array or hex string", name)
	}
	return b, nil
}

func coerceFixedBytes(name string, t carbon.VmType, mv MetadataValue) (carbon.VmDynamicVariable, error) {
	b, err := coerceBytes(name, mv)
	if err != nil {
		return carbon.VmDynamicVariable{}, err
	}
	switch t {
	case carbon.VmTypeBytes16:
		fb, err := wire.NewBytes16(b)
		if err != nil {
			return carbon.VmDynamicVariable{}, wire.Newf(wire.KindBoundsExceeded, "field %q must be exactly 16 bytes", name)
		}
		return carbon.NewBytes16Value(fb), nil
	case carbon.VmTypeBytes32:
		fb, err := wire.NewBytes32(b)
		if err != nil {
			return carbon.VmDynamicVariable{}, wire.Newf(wire.KindBoundsExceeded, "field %q must be exactly 32 bytes", name)
		}
		return carbon.NewBytes32Value(fb), nil
	default:
		fb, err := wire.NewBytes64(b)
		if err != nil {
			return carbon.VmDynamicVariable{}, wire.Newf(wire.KindBoundsExceeded, "field %q must be exactly 64 bytes", name)
		}
		return carbon.NewBytes64Value(fb), nil
	}
}

func coerceStruct(field carbon.VmSchemaField, mv MetadataValue) (carbon.VmDynamicVariable, error) {
	if mv.kind != metaStruct {
		return carbon.VmDynamicVariable{}, wire.Newf(wire.KindDataFormat, "field %q must be a struct", field.Name)
	}
	if field.Nested == nil {
		return carbon.VmDynamicVariable{}, wire.Newf(wire.KindSchemaViolation, "field %q has no nested schema", field.Name)
	}
	declared := make(map[string]bool, len(field.Nested.Fields))
	for _, nf := range field.Nested.Fields {
		declared[nf.Name] = true
	}
	for _, f := range mv.fields {
		if !declared[f.Name] {
			return carbon.VmDynamicVariable{}, wire.Newf(wire.KindSchemaViolation, "field %q received unknown property %q", field.Name, f.Name)
		}
	}
	var out []carbon.VmStructField
	for _, nf := range field.Nested.Fields {
		if err := CoerceField(nf, &out, mv.fields); err != nil {
			return carbon.VmDynamicVariable{}, err
		}
	}
	return carbon.NewStructValue((&carbon.VmDynamicStruct{Fields: out}).Canonical()), nil
}

func coerceArray(field carbon.VmSchemaField, mv MetadataValue) (carbon.VmDynamicVariable, error) {
	if mv.kind != metaArray {
		return carbon.VmDynamicVariable{}, wire.Newf(wire.KindDataFormat, "field %q must be an array", field.Name)
	}
	elemType := field.Type.Elem()
	elemField := carbon.VmSchemaField{Name: field.Name, Type: elemType, Nested: field.Nested}
	elems := make([]carbon.VmDynamicVariable, 0, len(mv.array))
	for _, item := range mv.array {
		v, err := coerceValue(elemField, item)
		if err != nil {
			return carbon.VmDynamicVariable{}, err
		}
		elems = append(elems, v)
	}
	return carbon.NewArrayValue(elemType, elems), nil
}
