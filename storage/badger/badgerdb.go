// Package badger provides a persistent, digest-keyed preimage store
// backed by BadgerDB, for callers that want hydrated preimages to
// survive across process restarts.
package badger

import (
	"errors"
	"fmt"
	"github.com/dgraph-io/badger/v4"
	"triecodec/storage"
)

// Store is a badger-backed preimage store.
type Store struct {
	db *badger.DB
}

// New opens (or creates) a badger preimage
// store at the specified path.
func New(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open preimage store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Has checks if the specified digest is
// present in the store.
func (s *Store) Has(key []byte) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Get retrieves the preimage for the specified
// digest, if present.
func (s *Store) Get(key []byte) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, storage.ErrKeyNotFound
	}
	return val, err
}

// Put inserts the specified digest-preimage
// pair into the store.
func (s *Store) Put(key, val []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}
