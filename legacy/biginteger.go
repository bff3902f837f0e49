package legacy

import (
	"github.com/phantasma-io/phantasma-go-sdk/bigint"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// WriteBigInteger writes the legacy BigInteger envelope: a one-byte
// length followed by that many minimal two's-complement payload bytes.
func WriteBigInteger(w *wire.Writer, n bigint.Int256) {
	bigint.EncodeLegacy(w, n)
}

// ReadBigInteger reads a legacy BigInteger envelope. Unlike the Carbon
// compact envelope, this reader tolerates payloads longer than the
// strictly minimal form (see bigint.DecodeLegacy and DESIGN.md).
func ReadBigInteger(c *wire.Cursor) bigint.Int256 {
	return bigint.DecodeLegacy(c)
}
