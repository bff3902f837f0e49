package token

import (
	"strings"
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/carbon"
)

func TestBuildFromFieldsMissingMandatory(t *testing.T) {
	_, _, _, err := BuildFromFields(nil, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "Mandatory metadata field not found: name") {
		t.Fatalf("expected missing name error, got %v", err)
	}
}

func TestBuildFromFieldsTypeMismatch(t *testing.T) {
	_, _, _, err := BuildFromFields([]FieldType{{"name", carbon.VmTypeInt32}}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "Type mismatch for field name") {
		t.Fatalf("expected type mismatch error, got %v", err)
	}
}

func TestBuildFromFieldsCaseMismatch(t *testing.T) {
	_, _, _, err := BuildFromFields([]FieldType{{"Name", carbon.VmTypeString}}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "Case mismatch for field name") {
		t.Fatalf("expected case mismatch error, got %v", err)
	}
}

func fullSeriesAndRom() ([]FieldType, []FieldType) {
	series := []FieldType{
		{"name", carbon.VmTypeString},
		{"description", carbon.VmTypeString},
		{"imageURL", carbon.VmTypeString},
		{"infoURL", carbon.VmTypeString},
		{"royalties", carbon.VmTypeInt32},
		{"_i", carbon.VmTypeInt256},
		{"mode", carbon.VmTypeInt8},
		{"rom", carbon.VmTypeBytes},
	}
	rom := []FieldType{
		{"_i", carbon.VmTypeInt256},
		{"rom", carbon.VmTypeBytes},
	}
	return series, rom
}

func TestBuildFromFieldsValid(t *testing.T) {
	series, rom := fullSeriesAndRom()
	seriesSchema, romSchema, ramSchema, err := BuildFromFields(series, rom, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seriesSchema.Fields) != len(series) || len(romSchema.Fields) != len(rom) || ramSchema == nil {
		t.Fatalf("schema field counts mismatch")
	}
}
