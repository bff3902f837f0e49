// Package token implements the token/series/NFT metadata and schema
// builders and the gas-fee formulas (§4.9): eager validators
// that check every required field and constraint before producing any
// output, surfacing the first violation as the error.
package token

import (
	"encoding/base64"
	"strings"

	"github.com/phantasma-io/phantasma-go-sdk/carbon"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

// allowedIconMIMEs is the base64 data-URI MIME whitelist for token icons.
var allowedIconMIMEs = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// TokenMetadataFields are the four mandatory fields of a token's
// top-level metadata.
type TokenMetadataFields struct {
	Name        string
	Icon        string
	URL         string
	Description string
}

// BuildAndSerialize validates fields and serializes them as a
// self-describing struct value. All four fields are mandatory and must
// be non-empty after whitespace trimming; icon must additionally be a
// valid base64 PNG/JPEG/WebP data URI.
func BuildAndSerialize(fields TokenMetadataFields) ([]byte, error) {
	name := strings.TrimSpace(fields.Name)
	icon := strings.TrimSpace(fields.Icon)
	url := strings.TrimSpace(fields.URL)
	description := strings.TrimSpace(fields.Description)

	if name == "" {
		return nil, wire.Newf(wire.KindDataFormat, "token metadata field \"name\" is required")
	}
	if icon == "" {
		return nil, wire.Newf(wire.KindDataFormat, "token metadata field \"icon\" is required")
	}
	if url == "" {
		return nil, wire.Newf(wire.KindDataFormat, "token metadata field \"url\" is required")
	}
	if description == "" {
		return nil, wire.Newf(wire.KindDataFormat, "token metadata field \"description\" is required")
	}
	if err := validateIconDataURI(icon); err != nil {
		return nil, err
	}

	s := &carbon.VmDynamicStruct{Fields: []carbon.VmStructField{
		{Name: "name", Value: carbon.NewStringValue(name)},
		{Name: "icon", Value: carbon.NewStringValue(icon)},
		{Name: "url", Value: carbon.NewStringValue(url)},
		{Name: "description", Value: carbon.NewStringValue(description)},
	}}
	w := wire.NewWriter(0)
	carbon.WriteDynamicVariable(w, carbon.NewStructValue(s.Canonical()))
	return w.Bytes(), nil
}

// validateIconDataURI enforces the icon rule: a data URI of form
// data:image/{png|jpeg|webp};base64,<payload> (MIME match case-
// insensitive), with a non-empty, strictly-formed base64 payload.
func validateIconDataURI(icon string) error {
	const prefix = "data:"
	if !strings.HasPrefix(icon, prefix) {
		return wire.Newf(wire.KindDataFormat, "icon must be a base64-encoded data URI")
	}
	rest := icon[len(prefix):]
	commaIdx := strings.IndexByte(rest, ',')
	if commaIdx < 0 {
		return wire.Newf(wire.KindDataFormat, "icon must be a base64-encoded data URI")
	}
	header := rest[:commaIdx]
	payload := rest[commaIdx+1:]

	parts := strings.SplitN(header, ";", 2)
	if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[1]), "base64") {
		return wire.Newf(wire.KindDataFormat, "icon must be a base64-encoded data URI")
	}
	mime := strings.ToLower(strings.TrimSpace(parts[0]))
	if !allowedIconMIMEs[mime] {
		return wire.Newf(wire.KindDataFormat, "icon must be a base64-encoded data URI")
	}
	if payload == "" {
		return wire.Newf(wire.KindDataFormat, "icon data URI must include a non-empty base64 payload")
	}
	if len(payload)%4 != 0 || !isStrictBase64Alphabet(payload) {
		return wire.Newf(wire.KindDataFormat, "icon payload is not valid base64")
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return wire.Newf(wire.KindDataFormat, "icon payload is not valid base64")
	}
	if strings.TrimRight(base64.StdEncoding.EncodeToString(decoded), "=") != strings.TrimRight(payload, "=") {
		return wire.Newf(wire.KindDataFormat, "icon payload is not valid base64")
	}
	return nil
}

func isStrictBase64Alphabet(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '/', r == '=':
		default:
			return false
		}
	}
	return true
}
