package keystore

import (
	"path/filepath"
	"testing"

	"github.com/phantasma-io/phantasma-go-sdk/cryptoadapter"
	"github.com/phantasma-io/phantasma-go-sdk/keys"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keystore.db")
	s, err := Open(DefaultConfig(path), cryptoadapter.DevStdAdapter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorePutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	adapter := cryptoadapter.DevStdAdapter{}
	k, err := keys.Generate(adapter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer k.Wipe()

	if err := s.Put(k, "correct horse battery staple", 100000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := s.Get(k.Address().Text(), "correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer loaded.Wipe()

	if loaded.Address() != k.Address() {
		t.Fatalf("address mismatch: got %+v want %+v", loaded.Address(), k.Address())
	}
	if loaded.ToWIF() != k.ToWIF() {
		t.Fatalf("WIF mismatch after store roundtrip")
	}
}

func TestStoreGetWrongPassphraseFails(t *testing.T) {
	s := openTestStore(t)
	adapter := cryptoadapter.DevStdAdapter{}
	k, err := keys.Generate(adapter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer k.Wipe()

	if err := s.Put(k, "right passphrase", 100000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Get(k.Address().Text(), "wrong passphrase"); err == nil {
		t.Fatalf("expected wrong passphrase to fail unwrap")
	}
}

func TestStoreListAndDelete(t *testing.T) {
	s := openTestStore(t)
	adapter := cryptoadapter.DevStdAdapter{}
	k, err := keys.Generate(adapter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer k.Wipe()
	if err := s.Put(k, "pw", 100000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	addrs, err := s.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(addrs) != 1 || addrs[0] != k.Address().Text() {
		t.Fatalf("unexpected address list: %v", addrs)
	}

	if err := s.Delete(k.Address().Text()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Get(k.Address().Text(), "pw"); err == nil {
		t.Fatalf("expected lookup after delete to fail")
	}
}
