package carbon

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// VmType is the one-byte dynamic-value type tag. Setting the
// low "array" bit (0x01) on any scalar tag names the array-of-that-type
// variant, e.g. Bytes (0x02) / Array_Bytes (0x03).
type VmType uint8

const (
	VmTypeDynamic VmType = 0x00
	VmTypeArrayDynamic VmType = 0x01
	VmTypeBytes        VmType = 0x02
	VmTypeArrayBytes   VmType = 0x03
	VmTypeStruct       VmType = 0x04
	VmTypeArrayStruct  VmType = 0x05
	VmTypeInt8         VmType = 0x06
	VmTypeArrayInt8    VmType = 0x07
	VmTypeInt16        VmType = 0x08
	VmTypeArrayInt16   VmType = 0x09
	VmTypeInt32        VmType = 0x0A
	VmTypeArrayInt32   VmType = 0x0B
	VmTypeInt64        VmType = 0x0C
	VmTypeArrayInt64   VmType = 0x0D
	VmTypeInt256       VmType = 0x0E
	VmTypeArrayInt256  VmType = 0x0F
	VmTypeBytes16      VmType = 0x10
	VmTypeArrayBytes16 VmType = 0x11
	VmTypeBytes32      VmType = 0x12
	VmTypeArrayBytes32 VmType = 0x13
	VmTypeBytes64      VmType = 0x14
	VmTypeArrayBytes64 VmType = 0x15
	VmTypeString       VmType = 0x16
	VmTypeArrayString  VmType = 0x17
)

// IsArray reports whether the tag names an array-of-T variant.
func (t VmType) IsArray() bool { return t&0x01 != 0 }

// Elem returns the scalar element tag for an array variant (a no-op for
// scalar tags).
func (t VmType) Elem() VmType { return t &^ 0x01 }

// AsArray returns the array-of-t variant for a scalar tag.
func (t VmType) AsArray() VmType { return t | 0x01 }

func (t VmType) String() string {
	switch t {
	case VmTypeDynamic:
		return "Dynamic"
	case VmTypeArrayDynamic:
		return "Array_Dynamic"
	case VmTypeBytes:
		return "Bytes"
	case VmTypeArrayBytes:
		return "Array_Bytes"
	case VmTypeStruct:
		return "Struct"
	case VmTypeArrayStruct:
		return "Array_Struct"
	case VmTypeInt8:
		return "Int8"
	case VmTypeArrayInt8:
		return "Array_Int8"
	case VmTypeInt16:
		return "Int16"
	case VmTypeArrayInt16:
		return "Array_Int16"
	case VmTypeInt32:
		return "Int32"
	case VmTypeArrayInt32:
		return "Array_Int32"
	case VmTypeInt64:
		return "Int64"
	case VmTypeArrayInt64:
		return "Array_Int64"
	case VmTypeInt256:
		return "Int256"
	case VmTypeArrayInt256:
		return "Array_Int256"
	case VmTypeBytes16:
		return "Bytes16"
	case VmTypeArrayBytes16:
		return "Array_Bytes16"
	case VmTypeBytes32:
		return "Bytes32"
	case VmTypeArrayBytes32:
		return "Array_Bytes32"
	case VmTypeBytes64:
		return "Bytes64"
	case VmTypeArrayBytes64:
		return "Array_Bytes64"
	case VmTypeString:
		return "String"
	case VmTypeArrayString:
		return "Array_String"
	default:
		return "Unknown"
	}
}

// WriteVmType writes the one-byte tag.
func WriteVmType(w *wire.Writer, t VmType) { w.WriteU8(uint8(t)) }

// ReadVmType reads the one-byte tag. An unrecognized value is not itself
// rejected here — callers dispatching on an unknown tag fail with
// DataFormat at the point of use.
func ReadVmType(c *wire.Cursor) VmType { return VmType(c.ReadU8()) }
