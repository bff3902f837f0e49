package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phantasma-io/phantasma-go-sdk/bigint"
	"github.com/phantasma-io/phantasma-go-sdk/carbontx"
	"github.com/phantasma-io/phantasma-go-sdk/cryptoadapter"
	"github.com/phantasma-io/phantasma-go-sdk/keys"
	"github.com/phantasma-io/phantasma-go-sdk/legacy"
	"github.com/phantasma-io/phantasma-go-sdk/script"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// vector is one named conformance fixture: a human-readable label plus the
// hex-encoded bytes a downstream test can assert against.
type vector struct {
	Name string            `json:"name"`
	Hex  map[string]string `json:"hex"`
}

// fixtureFile is the on-disk shape written to conformance/fixtures.json.
type fixtureFile struct {
	Vectors []vector `json:"vectors"`
}

const sampleWIF = "KwPpBSByydVKqStGHAnZzQofCqhDmD2bfRgc9BmZqM3ZmsdWJw4d"

// legacyVoteWIF is the exact key scenario 1's ground-truth vector was
// generated from. It differs from sampleWIF (scenarios 4/5's key).
const legacyVoteWIF = "L5UEVHBjujaR1721aZM5Zm5ayjDyamMZS9W35RE9Y9giRkdf3dVx"

func runGeneratorCLI() {
	repoRoot, err := repoRootFromGoModule()
	if err != nil {
		fatalf("repo root: %v", err)
	}
	out := filepath.Join(repoRoot, "conformance", "fixtures.json")

	adapter := cryptoadapter.DevStdAdapter{}
	f := &fixtureFile{}

	f.Vectors = append(f.Vectors, legacySingleVoteVector(adapter))
	f.Vectors = append(f.Vectors, carbonTransferFungibleVector())
	f.Vectors = append(f.Vectors, wifRoundTripVector(adapter))
	f.Vectors = append(f.Vectors, ed25519SignVerifyVector(adapter))

	mustWriteFixture(out, f)
}

// legacySingleVoteVector builds the allow_gas -> SingleVote -> spend_gas
// script, wraps it in a legacy transaction and signs it, recording both the
// unsigned and the signed serialization (scenario 1: consensus.SingleVote).
func legacySingleVoteVector(adapter cryptoadapter.Adapter) vector {
	k, err := keys.FromWIF(adapter, legacyVoteWIF)
	if err != nil {
		fatalf("legacy vector: FromWIF: %v", err)
	}
	sender := k.Address().Bytes()
	nullAddr := keys.Address{}.Bytes()

	gasLimit := bigint.IntFromInt64(10000)
	gasPrice := bigint.IntFromInt64(210000)
	choice := bigint.IntFromInt64(0)

	b := script.NewBuilder()
	b.AllowGas(sender[:], nullAddr[:], gasPrice, gasLimit).
		CallContract("consensus", "SingleVote",
			script.ContractArg{Type: script.VMTypeString, Data: []byte(k.Address().Text())},
			script.ContractArg{Type: script.VMTypeString, Data: []byte("system.nexus.protocol.version")},
			script.ContractArg{Type: script.VMTypeNumber, Data: choice.ToSignedBytes()},
		).
		SpendGas(sender[:])
	scriptBytes := b.EndScript()

	tx := legacy.Transaction{
		Nexus:      "testnet",
		Chain:      "main",
		Script:     scriptBytes,
		Expiration: 1234567890,
		Payload:    []byte("Consensus"),
	}

	sig, err := k.Sign(tx.MarshalUnsigned())
	if err != nil {
		fatalf("legacy vector: sign: %v", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	return vector{
		Name: "legacy-single-vote",
		Hex: map[string]string{
			"script":             hex.EncodeToString(scriptBytes),
			"unsigned_tx":        hex.EncodeToString(tx.MarshalUnsigned()),
			"signed_tx":          hex.EncodeToString(tx.Marshal()),
			"sender_address_hex": hex.EncodeToString(sender[:]),
		},
	}
}

// carbonTransferFungibleVector reproduces scenario 2 (Carbon
// TransferFungible, unsigned) with the exact header/body values the
// fixture specifies.
func carbonTransferFungibleVector() vector {
	var zero32 wire.Bytes32
	tx := carbontx.TxMsg{
		Header: carbontx.Header{
			Type:    carbontx.TxTransferFungible,
			Expiry:  1759711416000,
			MaxGas:  10000000,
			MaxData: 1000,
			GasFrom: zero32,
			Payload: wire.MustSmallString("test-payload"),
		},
		Body: carbontx.Body{
			TransferFungible: carbontx.TransferFungibleBody{
				To:      zero32,
				TokenID: 1,
				Amount:  100000000,
			},
		},
	}
	raw, err := tx.Marshal()
	if err != nil {
		fatalf("carbon vector: marshal: %v", err)
	}
	return vector{
		Name: "carbon-transfer-fungible",
		Hex: map[string]string{
			"unsigned_tx": hex.EncodeToString(raw),
		},
	}
}

// wifRoundTripVector checks the sample WIF decodes to a key whose
// re-encoded WIF matches the input (scenario 4).
func wifRoundTripVector(adapter cryptoadapter.Adapter) vector {
	k, err := keys.FromWIF(adapter, sampleWIF)
	if err != nil {
		fatalf("wif vector: FromWIF: %v", err)
	}
	if k.ToWIF() != sampleWIF {
		fatalf("wif vector: round-trip mismatch: got %s want %s", k.ToWIF(), sampleWIF)
	}
	pub := k.PublicKey()
	return vector{
		Name: "wif-roundtrip",
		Hex: map[string]string{
			"wif":        sampleWIF,
			"public_key": hex.EncodeToString(pub[:]),
			"address":    k.Address().Text(),
		},
	}
}

// ed25519SignVerifyVector signs "hello world" and confirms it verifies
// against the derived key and fails against a tampered message (scenario 5).
func ed25519SignVerifyVector(adapter cryptoadapter.Adapter) vector {
	k, err := keys.FromWIF(adapter, sampleWIF)
	if err != nil {
		fatalf("ed25519 vector: FromWIF: %v", err)
	}
	msg := []byte("hello world")
	sig, err := k.Sign(msg)
	if err != nil {
		fatalf("ed25519 vector: sign: %v", err)
	}
	pub := k.PublicKey()
	if !keys.Verify(adapter, sig, msg, pub) {
		fatalf("ed25519 vector: signature does not verify against its own message")
	}
	if keys.Verify(adapter, sig, []byte("hello worlds"), pub) {
		fatalf("ed25519 vector: signature unexpectedly verifies against a tampered message")
	}
	return vector{
		Name: "ed25519-sign-verify",
		Hex: map[string]string{
			"message":   hex.EncodeToString(msg),
			"signature": hex.EncodeToString(legacySignatureBytes(sig)),
		},
	}
}

func legacySignatureBytes(sig legacy.Signature) []byte {
	w := wire.NewWriter(0)
	legacy.WriteSignature(w, sig)
	return w.Bytes()
}

func mustWriteFixture(path string, f *fixtureFile) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		fatalf("write %s: %v", path, err)
	}
}

func repoRootFromGoModule() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := wd
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		next := filepath.Dir(dir)
		if next == dir {
			break
		}
		dir = next
	}
	return "", fmt.Errorf("go.mod not found above %s", wd)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "fatal: "+format+"\n", args...)
	os.Exit(1)
}
