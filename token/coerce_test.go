package token

import (
	"strings"
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/carbon"
)

func TestCoerceFieldInt32Accepts(t *testing.T) {
	schema := carbon.VmSchemaField{Name: "royalties", Type: carbon.VmTypeInt32}
	var out []carbon.VmStructField
	err := CoerceField(schema, &out, []MetadataField{{Name: "royalties", Value: MetaInt64(42)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Value.Int != 42 {
		t.Fatalf("got %d want 42", out[0].Value.Int)
	}
}

func TestCoerceFieldInt32RangeError(t *testing.T) {
	schema := carbon.VmSchemaField{Name: "royalties", Type: carbon.VmTypeInt32}
	var out []carbon.VmStructField
	err := CoerceField(schema, &out, []MetadataField{{Name: "royalties", Value: MetaUint64(0x100000000)}})
	if err == nil || !strings.Contains(err.Error(), "between -2147483648") {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestCoerceFieldBytesHexWithAndWithoutPrefix(t *testing.T) {
	schema := carbon.VmSchemaField{Name: "payload", Type: carbon.VmTypeBytes}
	for _, s := range []string{"0a0b", "0x0a0b"} {
		var out []carbon.VmStructField
		err := CoerceField(schema, &out, []MetadataField{{Name: "payload", Value: MetaString(s)}})
		if err != nil {
			t.Fatalf("hex %q: unexpected error: %v", s, err)
		}
		if len(out[0].Value.Blob) != 2 || out[0].Value.Blob[0] != 0x0A || out[0].Value.Blob[1] != 0x0B {
			t.Fatalf("hex %q: got %x", s, out[0].Value.Blob)
		}
	}
}

func TestCoerceFieldBytesInvalidHex(t *testing.T) {
	schema := carbon.VmSchemaField{Name: "payload", Type: carbon.VmTypeBytes}
	var out []carbon.VmStructField
	err := CoerceField(schema, &out, []MetadataField{{Name: "payload", Value: MetaString("xyz")}})
	if err == nil || !strings.Contains(err.Error(), "byte array or hex string") {
		t.Fatalf("expected hex error, got %v", err)
	}
}

func TestCoerceFieldStructNestedMandatoryAndUnknown(t *testing.T) {
	nested := carbon.NewStructSchema([]carbon.VmSchemaField{{Name: "innerName", Type: carbon.VmTypeString}}, false)
	schema := carbon.VmSchemaField{Name: "details", Type: carbon.VmTypeStruct, Nested: nested}

	var out []carbon.VmStructField
	err := CoerceField(schema, &out, []MetadataField{{Name: "details", Value: MetaStruct([]MetadataField{
		{Name: "innerName", Value: MetaString("demo")},
		{Name: "extra", Value: MetaString("oops")},
	})}})
	if err == nil || !strings.Contains(err.Error(), "received unknown property") {
		t.Fatalf("expected unknown property error, got %v", err)
	}

	var out2 []carbon.VmStructField
	err2 := CoerceField(schema, &out2, []MetadataField{{Name: "details", Value: MetaStruct(nil)}})
	if err2 == nil || !strings.Contains(err2.Error(), "is mandatory") {
		t.Fatalf("expected mandatory field error, got %v", err2)
	}
}

func TestCoerceFieldArrayOfStrings(t *testing.T) {
	schema := carbon.VmSchemaField{Name: "tags", Type: carbon.VmTypeArrayString}
	var out []carbon.VmStructField
	err := CoerceField(schema, &out, []MetadataField{{Name: "tags", Value: MetaArray([]MetadataValue{
		MetaString("alpha"), MetaString("beta"),
	})}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out[0].Value.Array) != 2 || out[0].Value.Array[0].Str != "alpha" {
		t.Fatalf("array mismatch: %+v", out[0].Value.Array)
	}
}
