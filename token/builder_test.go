package token

import (
	"strings"
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/bigint"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

func buildTestMetadata(t *testing.T) []byte {
	t.Helper()
	b, err := BuildAndSerialize(TokenMetadataFields{
		Name: "My test token!", Icon: pngIcon(), URL: "http://example.com", Description: "My test token description",
	})
	if err != nil {
		t.Fatalf("unexpected metadata build error: %v", err)
	}
	return b
}

func TestBuildTokenInfoRejectsEmptySymbol(t *testing.T) {
	_, err := BuildTokenInfo("", bigint.IntXFromInt64(0), false, 0, wire.Bytes32{}, buildTestMetadata(t), nil)
	if err == nil || !strings.Contains(err.Error(), "Empty string is invalid") {
		t.Fatalf("expected empty symbol error, got %v", err)
	}
}

func TestBuildTokenInfoRequiresMetadata(t *testing.T) {
	_, err := BuildTokenInfo("ABC", bigint.IntXFromInt64(0), false, 0, wire.Bytes32{}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "metadata is required") {
		t.Fatalf("expected metadata required error, got %v", err)
	}
}

func TestBuildTokenInfoNFTRequiresInt64SafeSupply(t *testing.T) {
	metadata := buildTestMetadata(t)
	tokenSchemas := []byte{1}
	bigSupply := bigint.IntXFromInt256(bigint.IntFromBits(bigint.UintFromUint64(1).Lsh(63)))
	_, err := BuildTokenInfo("NFT", bigSupply, true, 0, wire.Bytes32{}, metadata, tokenSchemas)
	if err == nil || !strings.Contains(err.Error(), "NFT maximum supply must fit into Int64") {
		t.Fatalf("expected NFT Int64 supply error, got %v", err)
	}
}

func TestBuildTokenInfoNFTRequiresTokenSchemas(t *testing.T) {
	metadata := buildTestMetadata(t)
	_, err := BuildTokenInfo("NFT", bigint.IntXFromInt64(0), true, 0, wire.Bytes32{}, metadata, nil)
	if err == nil || !strings.Contains(err.Error(), "tokenSchemas is required") {
		t.Fatalf("expected tokenSchemas required error, got %v", err)
	}
}

func TestBuildTokenInfoValidFungible(t *testing.T) {
	metadata := buildTestMetadata(t)
	info, err := BuildTokenInfo("FUNGIBLE", bigint.IntXFromInt64(0), false, 8, wire.Bytes32{}, metadata, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.IsBigFungible {
		t.Fatalf("zero supply should not be flagged big fungible")
	}
}

func TestBuildTokenInfoBigFungibleFlagged(t *testing.T) {
	metadata := buildTestMetadata(t)
	huge := bigint.IntXFromInt256(bigint.IntFromBits(bigint.UintFromUint64(1).Lsh(70)))
	info, err := BuildTokenInfo("FUNGIBLE", huge, false, 8, wire.Bytes32{}, metadata, nil)
	if err != nil {
		t.Fatalf("big fungible supply should not be rejected: %v", err)
	}
	if !info.IsBigFungible {
		t.Fatalf("expected IsBigFungible to be set")
	}
}

func TestBuildSeriesInfoRequiresMetadata(t *testing.T) {
	_, err := BuildSeriesInfo(bigint.IntFromInt64(1), 1, 1, wire.Bytes32{}, nil)
	if err == nil || !strings.Contains(err.Error(), "series metadata is required") {
		t.Fatalf("expected series metadata required error, got %v", err)
	}
}
