package token

import (
	"math"

	"github.com/phantasma-io/phantasma-go-sdk/bigint"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// TokenInfo is the validated, ready-to-broadcast description of a token
//. IsBigFungible is set when a fungible token's max supply
// does not fit a signed 64-bit value; NFTs reject that case outright
// instead.
type TokenInfo struct {
	Symbol        string
	MaxSupply     bigint.IntX
	IsNFT         bool
	Decimals      uint8
	Creator       wire.Bytes32
	Metadata      []byte
	TokenSchemas  []byte
	IsBigFungible bool
}

var int64Max = bigint.IntFromInt64(math.MaxInt64)
var int64Min = bigint.IntFromInt64(math.MinInt64)

// Is8ByteSafe reports whether v's value fits in a signed 64-bit integer.
func Is8ByteSafe(v bigint.IntX) bool {
	n := v.ToInt256()
	return n.Cmp(int64Min) >= 0 && n.Cmp(int64Max) <= 0
}

// BuildTokenInfo is the eager validator behind TokenInfoBuilder: every
// required field and constraint is checked, in order, before any
// TokenInfo is produced.
func BuildTokenInfo(symbol string, maxSupply bigint.IntX, isNFT bool, decimals uint8, creator wire.Bytes32, metadata []byte, tokenSchemas []byte) (*TokenInfo, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	if len(metadata) == 0 {
		return nil, wire.Newf(wire.KindDataFormat, "metadata is required")
	}
	if maxSupply.ToInt256().IsNegative() {
		return nil, wire.Newf(wire.KindNumericDomain, "max supply must be non-negative")
	}

	info := &TokenInfo{
		Symbol:    symbol,
		MaxSupply: maxSupply,
		IsNFT:     isNFT,
		Decimals:  decimals,
		Creator:   creator,
		Metadata:  metadata,
	}

	if isNFT {
		if !Is8ByteSafe(maxSupply) {
			return nil, wire.Newf(wire.KindNumericDomain, "NFT maximum supply must fit into Int64")
		}
		if len(tokenSchemas) == 0 {
			return nil, wire.Newf(wire.KindSchemaViolation, "tokenSchemas is required")
		}
		info.TokenSchemas = tokenSchemas
		return info, nil
	}

	info.IsBigFungible = !Is8ByteSafe(maxSupply)
	return info, nil
}

// SeriesInfo is a validated NFT series descriptor.
type SeriesInfo struct {
	SeriesID bigint.Int256
	MaxCount int64
	Mode     int64
	Creator  wire.Bytes32
	Metadata []byte
}

// BuildSeriesInfo validates and builds a SeriesInfo. Series metadata is
// mandatory, mirroring TokenInfo's metadata requirement.
func BuildSeriesInfo(seriesID bigint.Int256, maxCount, mode int64, creator wire.Bytes32, metadata []byte) (*SeriesInfo, error) {
	if len(metadata) == 0 {
		return nil, wire.Newf(wire.KindDataFormat, "series metadata is required")
	}
	return &SeriesInfo{SeriesID: seriesID, MaxCount: maxCount, Mode: mode, Creator: creator, Metadata: metadata}, nil
}
