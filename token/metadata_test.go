package token

import (
	"strings"
	"testing"
)

func pngIcon() string {
	return "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR4nGMAAQAABQABDQottAAAAABJRU5ErkJggg=="
}

func TestBuildAndSerializeValidPNG(t *testing.T) {
	_, err := BuildAndSerialize(TokenMetadataFields{
		Name:        "My test token!",
		Icon:        pngIcon(),
		URL:         "http://example.com",
		Description: "My test token description",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildAndSerializeRejectsSVG(t *testing.T) {
	svg := "data:image/svg+xml;base64,PHN2ZyB4bWxucz0naHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmcnPjwvc3ZnPg=="
	_, err := BuildAndSerialize(TokenMetadataFields{
		Name: "t", Icon: svg, URL: "u", Description: "d",
	})
	if err == nil || !strings.Contains(err.Error(), "base64-encoded data URI") {
		t.Fatalf("expected base64-encoded data URI error, got %v", err)
	}
}

func TestBuildAndSerializeRejectsEmptyPayload(t *testing.T) {
	_, err := BuildAndSerialize(TokenMetadataFields{
		Name: "t", Icon: "data:image/png;base64,", URL: "u", Description: "d",
	})
	if err == nil || !strings.Contains(err.Error(), "non-empty base64 payload") {
		t.Fatalf("expected non-empty payload error, got %v", err)
	}
}

func TestBuildAndSerializeRejectsInvalidBase64(t *testing.T) {
	_, err := BuildAndSerialize(TokenMetadataFields{
		Name: "t", Icon: "data:image/jpeg;base64,@@@", URL: "u", Description: "d",
	})
	if err == nil || !strings.Contains(err.Error(), "not valid base64") {
		t.Fatalf("expected invalid base64 error, got %v", err)
	}
}

func TestBuildAndSerializeRequiresAllFields(t *testing.T) {
	_, err := BuildAndSerialize(TokenMetadataFields{Icon: pngIcon(), URL: "u", Description: "d"})
	if err == nil || !strings.Contains(err.Error(), "\"name\"") {
		t.Fatalf("expected missing name error, got %v", err)
	}
}
