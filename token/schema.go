package token

import (
	"strings"

	"github.com/phantasma-io/phantasma-go-sdk/carbon"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// FieldType is a caller-declared schema field: a name and its VmType.
type FieldType struct {
	Name string
	Type carbon.VmType
}

// nftStandardFields are the mandatory NFT metadata fields, required to
// be present (by exact name and type) somewhere across the combined
// seriesMetadata ∪ rom field lists.
var nftStandardFields = []FieldType{
	{"name", carbon.VmTypeString},
	{"description", carbon.VmTypeString},
	{"imageURL", carbon.VmTypeString},
	{"infoURL", carbon.VmTypeString},
	{"royalties", carbon.VmTypeInt32},
}

// seriesOwnFields are mandatory fields the seriesMetadata schema must
// declare itself.
var seriesOwnFields = []FieldType{
	{"_i", carbon.VmTypeInt256},
	{"mode", carbon.VmTypeInt8},
	{"rom", carbon.VmTypeBytes},
}

// romOwnFields are mandatory fields the rom schema must declare itself.
var romOwnFields = []FieldType{
	{"_i", carbon.VmTypeInt256},
	{"rom", carbon.VmTypeBytes},
}

func checkMandatory(required []FieldType, against []FieldType) error {
	for _, req := range required {
		var caseInsensitiveMatch *FieldType
		var exact *FieldType
		for i := range against {
			f := against[i]
			if f.Name == req.Name {
				exact = &against[i]
				break
			}
			if caseInsensitiveMatch == nil && strings.EqualFold(f.Name, req.Name) {
				caseInsensitiveMatch = &against[i]
			}
		}
		if exact == nil && caseInsensitiveMatch == nil {
			return wire.Newf(wire.KindSchemaViolation, "Mandatory metadata field not found: %s", req.Name)
		}
		if exact == nil {
			return wire.Newf(wire.KindSchemaViolation, "Case mismatch for field %s", req.Name)
		}
		if exact.Type != req.Type {
			return wire.Newf(wire.KindSchemaViolation, "Type mismatch for field %s", req.Name)
		}
	}
	return nil
}

// BuildFromFields validates caller-declared series/rom/ram field lists
// against the schema's mandatory-field rules and, if they pass, builds
// the three VmStructSchema values. ramFields carries no mandatory
// fields of its own; it is validated only for internal consistency
// (handled by NewStructSchema).
func BuildFromFields(seriesFields, romFields, ramFields []FieldType) (*carbon.VmStructSchema, *carbon.VmStructSchema, *carbon.VmStructSchema, error) {
	combined := make([]FieldType, 0, len(seriesFields)+len(romFields))
	combined = append(combined, seriesFields...)
	combined = append(combined, romFields...)

	if err := checkMandatory(nftStandardFields, combined); err != nil {
		return nil, nil, nil, err
	}
	if err := checkMandatory(seriesOwnFields, seriesFields); err != nil {
		return nil, nil, nil, err
	}
	if err := checkMandatory(romOwnFields, romFields); err != nil {
		return nil, nil, nil, err
	}

	seriesSchema := carbon.NewStructSchema(toSchemaFields(seriesFields), false)
	romSchema := carbon.NewStructSchema(toSchemaFields(romFields), false)
	ramSchema := carbon.NewStructSchema(toSchemaFields(ramFields), false)
	return seriesSchema, romSchema, ramSchema, nil
}

func toSchemaFields(fields []FieldType) []carbon.VmSchemaField {
	out := make([]carbon.VmSchemaField, 0, len(fields))
	for _, f := range fields {
		out = append(out, carbon.VmSchemaField{Name: f.Name, Type: f.Type})
	}
	return out
}

// BuildAndSerialize validates fieldLists the same way as BuildFromFields
// and writes the three resulting schemas back to back, in seriesMetadata,
// rom, ram order. Each is a u32 field count followed, per field, by a
// one-byte name length, the name bytes and the VmType byte. The output
// has no enclosing struct value and does not carry the schema names.
func BuildAndSerialize(seriesFields, romFields, ramFields []FieldType) ([]byte, error) {
	seriesSchema, romSchema, ramSchema, err := BuildFromFields(seriesFields, romFields, ramFields)
	if err != nil {
		return nil, err
	}
	w := wire.NewWriter(0)
	writeSchemaDescriptor(w, seriesSchema)
	writeSchemaDescriptor(w, romSchema)
	writeSchemaDescriptor(w, ramSchema)
	return w.Bytes(), nil
}

func writeSchemaDescriptor(w *wire.Writer, schema *carbon.VmStructSchema) {
	w.WriteU32(uint32(len(schema.Fields)))
	for _, f := range schema.Fields {
		name := wire.MustSmallString(f.Name)
		w.WriteU8(uint8(name.Len()))
		w.WriteBytes(name.Bytes())
		carbon.WriteVmType(w, f.Type)
	}
}
