package token

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// ValidateSymbol enforces the symbol rules: non-empty, length 1..255, and every
// character strictly in [A-Z] — no digits, no lowercase, no accents.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return wire.Newf(wire.KindDataFormat, "Empty string is invalid")
	}
	if len(symbol) > 255 {
		return wire.Newf(wire.KindDataFormat, "Too long")
	}
	for _, r := range symbol {
		if r < 'A' || r > 'Z' {
			return wire.Newf(wire.KindDataFormat, "Symbol validation error: Anything outside A-Z is forbidden")
		}
	}
	return nil
}
