package keys

import "testing"

func TestNullAddressRendersSentinelAndDoesNotDecode(t *testing.T) {
	var a Address
	if !a.IsNull() {
		t.Fatalf("zero-value address should be null")
	}
	if a.Text() != NullAddressText {
		t.Fatalf("got %q want %q", a.Text(), NullAddressText)
	}
	if _, err := FromText(NullAddressText); err == nil {
		t.Fatalf("expected null sentinel to fail decoding")
	}
}

func TestAddressTextRoundTrip(t *testing.T) {
	a := FromName("consensus")
	text := a.Text()
	if len(text) == 0 || text[0] != 'P' {
		t.Fatalf("expected address text to start with 'P', got %q", text)
	}
	got, err := FromText(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != a {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, a)
	}
}

func TestFromPublicKeyIsUserKind(t *testing.T) {
	var pub [32]byte
	for i := range pub {
		pub[i] = byte(i)
	}
	a := FromPublicKey(pub)
	if a.Kind != KindUser || a.Platform != 1 {
		t.Fatalf("unexpected kind/platform: %+v", a)
	}
}
