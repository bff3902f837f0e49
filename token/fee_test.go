package token

import (
	"math"
	"testing"
)

func TestGenericFee(t *testing.T) {
	got, err := GenericFee(100000, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 300000 {
		t.Fatalf("got %d want 300000", got)
	}
}

func TestGenericFeeOverflow(t *testing.T) {
	_, err := GenericFee(math.MaxUint64, 2)
	if err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestCreateTokenFeeSymbolShift(t *testing.T) {
	got, err := CreateTokenFee(100, 200, 1600, 5, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// shift = symbolLen-1 = 4, 1600>>4 = 100
	want := uint64(100 + 200 + 100)
	if got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}

func TestCreateTokenFeeSingleCharSymbolNoShift(t *testing.T) {
	got, err := CreateTokenFee(100, 200, 1600, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint64(100 + 200 + 1600)
	if got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}

func TestCreateSeriesFee(t *testing.T) {
	got, err := CreateSeriesFee(100, 50, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 300 {
		t.Fatalf("got %d want 300", got)
	}
}
