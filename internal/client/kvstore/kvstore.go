// Package kvstore is the client's durable key/value store, backed by an
// embedded BadgerDB. Values are stored as JSON text.
//
// The adapter contains every failure: Get hands back the caller's fallback
// on any read, decode or storage fault, and Set/Remove log and swallow their
// errors. A broken store degrades to "empty state", it never crashes the
// session.
package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// Config holds configuration for the store.
type Config struct {
	// Path is the directory for the database files. Ignored when InMemory
	// is true.
	Path string
	// InMemory keeps everything in RAM. Used by tests.
	InMemory bool
}

// Store wraps one open Badger instance.
type Store struct {
	db  *badger.DB
	log zerolog.Logger
}

// Open opens (or creates) the store. Opening is the one operation that can
// fail loudly: without a database there is no session to degrade.
func Open(cfg Config, log zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithLogger(nil)
	if cfg.InMemory {
		opts = opts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kvstore: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// GetRaw returns the raw bytes for key, or ok=false when the key is absent
// or the read failed.
func (s *Store) GetRaw(key string) ([]byte, bool) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			s.log.Error().Err(err).Str("key", key).Msg("kvstore read failed")
		}
		return nil, false
	}
	return raw, true
}

// SetRaw stores raw bytes under key. Failures are logged and swallowed.
func (s *Store) SetRaw(key string, raw []byte) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore write failed")
	}
}

// Remove deletes key. Removing an absent key is a no-op; failures are logged
// and swallowed.
func (s *Store) Remove(key string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore delete failed")
	}
}

// Get decodes the JSON value stored under key into a fresh T. The fallback is
// returned when the key is absent, the stored text is not valid JSON for T,
// or the underlying read fails.
func Get[T any](s *Store, key string, fallback T) T {
	raw, ok := s.GetRaw(key)
	if !ok {
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore value corrupted")
		return fallback
	}
	return value
}

// Set encodes value as JSON and stores it under key. Failures are logged and
// swallowed.
func Set[T any](s *Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore encode failed")
		return
	}
	s.SetRaw(key, raw)
}
