package keystore

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"
	"golang.org/x/crypto/pbkdf2"

	sdkcrypto "github.com/phantasma-io/phantasma-go-sdk/crypto"
	"github.com/phantasma-io/phantasma-go-sdk/cryptoadapter"
	"github.com/phantasma-io/phantasma-go-sdk/keys"
	"github.com/phantasma-io/phantasma-go-sdk/wire"
)

var keysBucket = []byte("phantasma_keys")

const (
	wrapSuffix = 0x01 // AES-KW requires a multiple-of-8-byte payload; seed(32)+suffix(1) needs padding to 40.
	saltLen    = 16
)

// record is the at-rest representation of one wrapped key: a version tag,
// the salt and iteration count used to derive its key-encryption key, and
// the AES-KW wrapped seed, stored as a bbolt value instead of a JSON file.
type record struct {
	version    uint8
	salt       [saltLen]byte
	iterations uint32
	wrapped    []byte // AES-256-KW ciphertext over the 40-byte padded seed
}

const recordVersion = 1

func (r record) marshal() []byte {
	out := make([]byte, 0, 1+saltLen+4+2+len(r.wrapped))
	out = append(out, r.version)
	out = append(out, r.salt[:]...)
	var itersBuf [4]byte
	binary.LittleEndian.PutUint32(itersBuf[:], r.iterations)
	out = append(out, itersBuf[:]...)
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(r.wrapped)))
	out = append(out, lenBuf[:]...)
	out = append(out, r.wrapped...)
	return out
}

func unmarshalRecord(b []byte) (record, error) {
	if len(b) < 1+saltLen+4+2 {
		return record{}, wire.Newf(wire.KindDataFormat, "keystore record truncated")
	}
	var r record
	r.version = b[0]
	off := 1
	copy(r.salt[:], b[off:off+saltLen])
	off += saltLen
	r.iterations = binary.LittleEndian.Uint32(b[off : off+4])
	off += 4
	wrappedLen := int(binary.LittleEndian.Uint16(b[off : off+2]))
	off += 2
	if len(b[off:]) != wrappedLen {
		return record{}, wire.Newf(wire.KindDataFormat, "keystore record length mismatch")
	}
	r.wrapped = append([]byte(nil), b[off:]...)
	return r, nil
}

// Store is a bbolt-backed at-rest store of PhantasmaKeys, each wrapped
// with AES-256-KW under a PBKDF2-derived KEK and keyed by the key's
// address text.
type Store struct {
	db      *bbolt.DB
	adapter cryptoadapter.Adapter
	log     *logrus.Entry
}

// Open opens (creating if absent) the bbolt keystore file at cfg.Path.
func Open(cfg Config, adapter cryptoadapter.Adapter) (*Store, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(cfg.Path, 0o600, nil)
	if err != nil {
		return nil, wire.Wrap(wire.KindCryptoFailure, "failed to open keystore file", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists(keysBucket)
		return e
	})
	if err != nil {
		db.Close()
		return nil, wire.Wrap(wire.KindCryptoFailure, "failed to initialize keystore bucket", err)
	}
	return &Store{
		db:      db,
		adapter: adapter,
		log:     logrus.NewEntry(logrus.StandardLogger()).WithField("keystore", cfg.Path),
	}, nil
}

// Close releases the underlying bbolt file handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func deriveKEK(passphrase string, salt [saltLen]byte, iterations int) []byte {
	return pbkdf2.Key([]byte(passphrase), salt[:], iterations, 32, sha256.New)
}

// Put wraps k's seed under a passphrase-derived KEK and persists it keyed
// by the key's address text. Overwrites any existing entry at that
// address.
func (s *Store) Put(k *keys.PhantasmaKeys, passphrase string, iterations int) error {
	wif := k.ToWIF()
	seed, err := keys.DecodeWIF(wif)
	if err != nil {
		return err
	}
	defer func() {
		for i := range seed {
			seed[i] = 0
		}
	}()

	var salt [saltLen]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return wire.Wrap(wire.KindCryptoFailure, "failed to generate keystore salt", err)
	}
	kek := deriveKEK(passphrase, salt, iterations)

	padded := make([]byte, 40)
	copy(padded, seed[:])
	padded[32] = wrapSuffix

	wrapped, err := sdkcrypto.AESKeyWrapRFC3394(kek, padded)
	if err != nil {
		return wire.Wrap(wire.KindCryptoFailure, "failed to wrap key seed", err)
	}

	rec := record{
		version:    recordVersion,
		salt:       salt,
		iterations: uint32(iterations),
		wrapped:    wrapped,
	}

	addr := k.Address().Text()
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(keysBucket)
		return b.Put([]byte(addr), rec.marshal())
	})
	if err != nil {
		return wire.Wrap(wire.KindCryptoFailure, "failed to persist wrapped key", err)
	}
	s.log.WithField("address", addr).Info("key stored")
	return nil
}

// Get decrypts and reconstructs the PhantasmaKeys stored under address,
// given the passphrase it was wrapped with.
func (s *Store) Get(address string, passphrase string) (*keys.PhantasmaKeys, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(keysBucket)
		v := b.Get([]byte(address))
		if v == nil {
			return wire.Newf(wire.KindDataFormat, "no key stored for address %q", address)
		}
		raw = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	rec, err := unmarshalRecord(raw)
	if err != nil {
		return nil, err
	}
	kek := deriveKEK(passphrase, rec.salt, int(rec.iterations))
	padded, err := sdkcrypto.AESKeyUnwrapRFC3394(kek, rec.wrapped)
	if err != nil {
		s.log.WithField("address", address).Warn("key unwrap failed (wrong passphrase or corrupted record)")
		return nil, wire.Wrap(wire.KindCryptoFailure, "failed to unwrap key seed", err)
	}
	if len(padded) != 40 || padded[32] != wrapSuffix {
		return nil, wire.Newf(wire.KindDataFormat, "unexpected unwrapped key seed layout")
	}
	var seed [32]byte
	copy(seed[:], padded[:32])
	for i := range padded {
		padded[i] = 0
	}
	k, err := keys.FromSeed(s.adapter, seed)
	for i := range seed {
		seed[i] = 0
	}
	if err != nil {
		return nil, err
	}
	s.log.WithField("address", address).Debug("key loaded")
	return k, nil
}

// Delete removes the wrapped key stored under address, if any.
func (s *Store) Delete(address string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(keysBucket).Delete([]byte(address))
	})
}

// List returns the addresses of every key currently stored.
func (s *Store) List() ([]string, error) {
	var addrs []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(keysBucket)
		return b.ForEach(func(k, _ []byte) error {
			addrs = append(addrs, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list keystore addresses: %w", err)
	}
	return addrs, nil
}
