package bigint

import (
	"strings"

	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// Int256 is a 256-bit signed integer stored as the two's complement of its
// Uint256 bit pattern. Addition, subtraction, multiplication,
// bitwise operations, and left shift are identical bit-for-bit to their
// unsigned counterparts in a two's-complement ring, so Int256 delegates
// those directly to Uint256; only division, modulo, comparison, right
// shift, and the textual/wire forms need sign-aware logic.
type Int256 struct {
	bits Uint256
}

// IntFromInt64 builds an Int256 from a native int64.
func IntFromInt64(x int64) Int256 {
	return Int256{bits: UintFromUint64(uint64(x))}
}

// IntFromBits reinterprets a raw 256-bit pattern as signed.
func IntFromBits(u Uint256) Int256 { return Int256{bits: u} }

// Bits returns the raw two's-complement 256-bit pattern.
func (n Int256) Bits() Uint256 { return n.bits }

// IsZero reports whether n is zero.
func (n Int256) IsZero() bool { return n.bits.IsZero() }

// IsNegative reports whether the top bit of the 256-bit pattern is set.
func (n Int256) IsNegative() bool {
	be := n.bits.BigEndianBytes32()
	return be[0]&0x80 != 0
}

// Neg returns the two's-complement negation of n.
func (n Int256) Neg() Int256 {
	return Int256{bits: n.bits.Not().Add(UintFromUint64(1))}
}

// Abs returns the magnitude of n as a non-negative Int256. The minimum
// representable value's absolute value overflows back to itself, matching
// two's-complement hardware semantics (no panic).
func (n Int256) Abs() Int256 {
	if n.IsNegative() {
		return n.Neg()
	}
	return n
}

func (n Int256) Add(o Int256) Int256 { return Int256{bits: n.bits.Add(o.bits)} }
func (n Int256) Sub(o Int256) Int256 { return Int256{bits: n.bits.Sub(o.bits)} }
func (n Int256) Mul(o Int256) Int256 { return Int256{bits: n.bits.Mul(o.bits)} }
func (n Int256) And(o Int256) Int256 { return Int256{bits: n.bits.And(o.bits)} }
func (n Int256) Or(o Int256) Int256  { return Int256{bits: n.bits.Or(o.bits)} }
func (n Int256) Xor(o Int256) Int256 { return Int256{bits: n.bits.Xor(o.bits)} }
func (n Int256) Not() Int256         { return Int256{bits: n.bits.Not()} }
func (n Int256) Lsh(s uint) Int256   { return Int256{bits: n.bits.Lsh(s)} }

// Rsh is an arithmetic (sign-extending) right shift.
func (n Int256) Rsh(s uint) Int256 {
	if !n.IsNegative() {
		return Int256{bits: n.bits.Rsh(s)}
	}
	if s == 0 {
		return n
	}
	if s >= 256 {
		return Int256{bits: UintFromUint64(0).Not()} // all-ones: -1
	}
	shifted := n.bits.Rsh(s)
	mask := UintFromUint64(0).Not().Lsh(256 - s)
	return Int256{bits: shifted.Or(mask)}
}

// Cmp returns -1, 0, or 1 comparing n and o as signed values.
func (n Int256) Cmp(o Int256) int {
	na, oa := n.IsNegative(), o.IsNegative()
	if na != oa {
		if na {
			return -1
		}
		return 1
	}
	return n.bits.Cmp(o.bits)
}

// DivMod performs truncated division (quotient toward zero; remainder
// takes the dividend's sign). Division by zero reports
// NumericDomain.
func (n Int256) DivMod(o Int256) (q, r Int256, err error) {
	if o.IsZero() {
		return Int256{}, Int256{}, wire.Newf(wire.KindNumericDomain, "division by zero")
	}
	negN, negO := n.IsNegative(), o.IsNegative()
	magN, magO := n.Abs().bits, o.Abs().bits
	qv, errDiv := magN.Div(magO)
	if errDiv != nil {
		return Int256{}, Int256{}, errDiv
	}
	rv, errMod := magN.Mod(magO)
	if errMod != nil {
		return Int256{}, Int256{}, errMod
	}
	q = Int256{bits: qv}
	r = Int256{bits: rv}
	if negN != negO && !q.IsZero() {
		q = q.Neg()
	}
	if negN && !r.IsZero() {
		r = r.Neg()
	}
	return q, r, nil
}

// Div returns truncated quotient only.
func (n Int256) Div(o Int256) (Int256, error) {
	q, _, err := n.DivMod(o)
	return q, err
}

// Mod returns the dividend-sign remainder only.
func (n Int256) Mod(o Int256) (Int256, error) {
	_, r, err := n.DivMod(o)
	return r, err
}

// Pow raises n to a non-negative exponent via repeated multiplication
// (bit-identical to the unsigned case in a two's-complement ring), capped
// at the same iteration limit as Uint256.Pow.
func (n Int256) Pow(exponent Int256) (Int256, error) {
	if exponent.IsNegative() {
		return Int256{}, wire.Newf(wire.KindNumericDomain, "negative exponent")
	}
	bits, err := n.bits.Pow(exponent.bits)
	if err != nil {
		return Int256{}, err
	}
	return Int256{bits: bits}, nil
}

// Sqrt returns the integer square root. n must be non-negative.
func (n Int256) Sqrt() (Int256, error) {
	if n.IsNegative() {
		return Int256{}, wire.Newf(wire.KindNumericDomain, "sqrt of negative value")
	}
	return Int256{bits: n.bits.Sqrt()}, nil
}

// ParseInt decodes a signed integer string in base 2..len(dict), with an
// optional leading '-'. See ParseUint for dictionary/whitespace rules.
func ParseInt(s string, base int, dict string) (Int256, error) {
	s = strings.Trim(s, " \t\r\n")
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	mag, err := ParseUint(s, base, dict)
	if err != nil {
		v := Int256{bits: mag}
		if neg {
			v = v.Neg()
		}
		return v, err
	}
	v := Int256{bits: mag}
	if neg {
		v = v.Neg()
	}
	return v, nil
}

// Format renders n in the given base; negative values print '-' followed
// by the formatted absolute value.
func (n Int256) Format(base int, dict string) string {
	if n.IsNegative() {
		return "-" + n.Abs().bits.Format(base, dict)
	}
	return n.bits.Format(base, dict)
}

// ToSignedBytes returns the minimum-length little-endian two's-complement
// byte sequence that preserves the sign bit of its top byte. The zero value encodes as a single 0x00 byte.
func (n Int256) ToSignedBytes() []byte {
	be := n.bits.BigEndianBytes32()
	le := make([]byte, 32)
	for i := 0; i < 32; i++ {
		le[i] = be[31-i]
	}
	length := 32
	signByte := byte(0x00)
	if le[31]&0x80 != 0 {
		signByte = 0xFF
	}
	for length > 1 {
		top := le[length-1]
		next := le[length-2]
		if top == signByte && (next&0x80) == (signByte & 0x80) {
			length--
			continue
		}
		break
	}
	return le[:length]
}

// FromSignedBytes reconstructs an Int256 from a little-endian two's
// complement byte sequence of 0..32 bytes, sign-extending from the top bit
// of the last byte. The input is not required to be minimal (the legacy
// codec tolerates non-canonical, non-minimal input; see DESIGN.md).
func FromSignedBytes(b []byte) (Int256, error) {
	if len(b) > 32 {
		return Int256{}, wire.Newf(wire.KindBoundsExceeded, "signed byte array exceeds 32 bytes (got %d)", len(b))
	}
	signByte := byte(0x00)
	if len(b) > 0 && b[len(b)-1]&0x80 != 0 {
		signByte = 0xFF
	}
	le := make([]byte, 32)
	copy(le, b)
	for i := len(b); i < 32; i++ {
		le[i] = signByte
	}
	be := make([]byte, 32)
	for i := 0; i < 32; i++ {
		be[i] = le[31-i]
	}
	u, err := UintFromBigEndianBytes(be)
	if err != nil {
		return Int256{}, err
	}
	return Int256{bits: u}, nil
}

// isMinimalTwosComplement reports whether b (little-endian, len>=1) cannot
// be shortened by one byte without changing the represented value — i.e.
// there is no redundant sign-extension byte at the top.
func isMinimalTwosComplement(b []byte) bool {
	if len(b) <= 1 {
		return true
	}
	signByte := byte(0x00)
	if b[len(b)-1]&0x80 != 0 {
		signByte = 0xFF
	}
	top := b[len(b)-1]
	next := b[len(b)-2]
	return !(top == signByte && (next&0x80) == (signByte & 0x80))
}
