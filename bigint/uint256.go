// Package bigint implements the 256-bit signed/unsigned integer type the
// spec calls for (§3.2, §4.2), the small-or-big intx tagged union (§3.2,
// §4.2), and both of the on-wire integer envelopes used by the legacy and
// Carbon codecs (§6.2). Unsigned arithmetic is delegated to
// github.com/holiman/uint256, the pack's standard 256-bit limb type
// (grounded on its use in orbas1-Synnergy and luxfi-precompiles); the
// signed interpretation, arbitrary-base parsing, cap-bounded exponentiation
// and the wire envelopes are specific to this spec and have no library
// equivalent, so they are built by hand on top of that storage type.
package bigint

import (
	"strings"

	"github.com/holiman/uint256"

	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

const defaultDict = "0123456789ABCDEF"

// Uint256 is an unsigned 256-bit integer.
type Uint256 struct {
	v uint256.Int
}

// UintFromUint64 builds a Uint256 from a native uint64.
func UintFromUint64(x uint64) Uint256 {
	var u Uint256
	u.v.SetUint64(x)
	return u
}

// UintFromBigEndianBytes builds a Uint256 from a big-endian byte slice of at
// most 32 bytes (shorter slices are zero-extended on the left).
func UintFromBigEndianBytes(b []byte) (Uint256, error) {
	if len(b) > 32 {
		return Uint256{}, wire.Newf(wire.KindBoundsExceeded, "uint256 source exceeds 32 bytes (got %d)", len(b))
	}
	var u Uint256
	u.v.SetBytes(b)
	return u, nil
}

// BigEndianBytes32 returns the value as a fixed 32-byte big-endian array.
func (u Uint256) BigEndianBytes32() [32]byte { return u.v.Bytes32() }

// IsZero reports whether the value is zero.
func (u Uint256) IsZero() bool { return u.v.IsZero() }

// Cmp returns -1, 0, or 1 as u is less than, equal to, or greater than o,
// comparing as unsigned magnitudes.
func (u Uint256) Cmp(o Uint256) int { return u.v.Cmp(&o.v) }

func (u Uint256) Add(o Uint256) Uint256 {
	var z Uint256
	z.v.Add(&u.v, &o.v)
	return z
}

func (u Uint256) Sub(o Uint256) Uint256 {
	var z Uint256
	z.v.Sub(&u.v, &o.v)
	return z
}

func (u Uint256) Mul(o Uint256) Uint256 {
	var z Uint256
	z.v.Mul(&u.v, &o.v)
	return z
}

// Div performs truncating unsigned division. Division by zero reports
// NumericDomain rather than the library's silent-zero behavior.
func (u Uint256) Div(o Uint256) (Uint256, error) {
	if o.IsZero() {
		return Uint256{}, wire.Newf(wire.KindNumericDomain, "division by zero")
	}
	var z Uint256
	z.v.Div(&u.v, &o.v)
	return z, nil
}

func (u Uint256) Mod(o Uint256) (Uint256, error) {
	if o.IsZero() {
		return Uint256{}, wire.Newf(wire.KindNumericDomain, "modulo by zero")
	}
	var z Uint256
	z.v.Mod(&u.v, &o.v)
	return z, nil
}

func (u Uint256) And(o Uint256) Uint256 {
	var z Uint256
	z.v.And(&u.v, &o.v)
	return z
}

func (u Uint256) Or(o Uint256) Uint256 {
	var z Uint256
	z.v.Or(&u.v, &o.v)
	return z
}

func (u Uint256) Xor(o Uint256) Uint256 {
	var z Uint256
	z.v.Xor(&u.v, &o.v)
	return z
}

func (u Uint256) Not() Uint256 {
	var z Uint256
	z.v.Not(&u.v)
	return z
}

// Lsh is a logical left shift.
func (u Uint256) Lsh(n uint) Uint256 {
	var z Uint256
	z.v.Lsh(&u.v, n)
	return z
}

// Rsh is a logical (zero-filling) right shift.
func (u Uint256) Rsh(n uint) Uint256 {
	var z Uint256
	z.v.Rsh(&u.v, n)
	return z
}

// Sqrt returns the integer square root (floor).
func (u Uint256) Sqrt() Uint256 {
	var z Uint256
	z.v.Sqrt(&u.v)
	return z
}

// maxPowIterations bounds Pow's iteration count; exceeding it is a fault
// rather than an unbounded loop.
const maxPowIterations = 255

// Pow raises u to exponent using right-to-left repeated multiplication,
// capped at maxPowIterations squarings; exceeding the cap fails with
// NumericDomain.
func (u Uint256) Pow(exponent Uint256) (Uint256, error) {
	result := UintFromUint64(1)
	base := u
	exp := exponent
	one := UintFromUint64(1)
	iterations := 0
	for !exp.IsZero() {
		iterations++
		if iterations > maxPowIterations {
			return Uint256{}, wire.Newf(wire.KindNumericDomain, "pow exceeded iteration cap (%d)", maxPowIterations)
		}
		if isOdd(exp) {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp, _ = exp.Div(UintFromUint64(2))
		_ = one
	}
	return result, nil
}

func isOdd(u Uint256) bool {
	r, _ := u.Mod(UintFromUint64(2))
	return !r.IsZero()
}

// ParseUint decodes a non-negative integer string in base 2..len(dict).
// dict defaults to "0123456789ABCDEF" (matching bases up to 16) when empty;
// higher bases require an explicit custom dictionary. Leading/trailing
// whitespace and CR/LF are trimmed. An invalid character sets an error
// while still returning the best-effort partial value accumulated so far.
func ParseUint(s string, base int, dict string) (Uint256, error) {
	if dict == "" {
		dict = defaultDict
	}
	if base < 2 || base > len(dict) {
		return Uint256{}, wire.Newf(wire.KindDataFormat, "invalid base %d for dictionary of length %d", base, len(dict))
	}
	s = strings.Trim(s, " \t\r\n")
	if s == "" {
		return Uint256{}, wire.Newf(wire.KindDataFormat, "empty integer literal")
	}
	digitValue := make(map[byte]int, len(dict))
	for i := 0; i < len(dict); i++ {
		digitValue[upperByte(dict[i])] = i
	}
	result := UintFromUint64(0)
	baseU := UintFromUint64(uint64(base))
	for i := 0; i < len(s); i++ {
		dv, ok := digitValue[upperByte(s[i])]
		if !ok || dv >= base {
			return result, wire.Newf(wire.KindDataFormat, "invalid digit %q at offset %d", s[i], i)
		}
		result = result.Mul(baseU).Add(UintFromUint64(uint64(dv)))
	}
	return result, nil
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// Format renders u in the given base using dict as the digit alphabet
// (default "0123456789ABCDEF"). The zero value formats as the dictionary's
// first character.
func (u Uint256) Format(base int, dict string) string {
	if dict == "" {
		dict = defaultDict
	}
	if u.IsZero() {
		return string(dict[0])
	}
	baseU := UintFromUint64(uint64(base))
	var digits []byte
	v := u
	for !v.IsZero() {
		r, _ := v.Mod(baseU)
		digits = append(digits, dict[r.v.Uint64()])
		v, _ = v.Div(baseU)
	}
	// reverse
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Uint64 returns the low 64 bits of u (used internally for small digit
// extraction; callers needing overflow detection should compare against a
// 64-bit-max Uint256 first).
func (u Uint256) Uint64() uint64 { return u.v.Uint64() }
