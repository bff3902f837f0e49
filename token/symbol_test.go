package token

import (
	"strings"
	"testing"
)

func TestValidateSymbol(t *testing.T) {
	cases := []struct {
		symbol  string
		wantErr string
	}{
		{"", "Empty string is invalid"},
		{strings.Repeat("A", 256), "Too long"},
		{"AB1", "Anything outside A-Z is forbidden"},
		{"FUNGIBLE", ""},
	}
	for _, c := range cases {
		err := ValidateSymbol(c.symbol)
		if c.wantErr == "" {
			if err != nil {
				t.Fatalf("symbol %q: unexpected error: %v", c.symbol, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), c.wantErr) {
			t.Fatalf("symbol %q: expected error containing %q, got %v", c.symbol, c.wantErr, err)
		}
	}
}
