// Package mem provides an in-memory preimage store, used by the
// hydration path as a cache of commitment-to-preimage pairs.
package mem

import (
	"triecodec/storage"
	"sync"
)

// Store is an in-memory, digest-keyed preimage store.
type Store struct {
	vals map[string][]byte
	lock sync.RWMutex
}

// New creates a new, empty in-memory store.
func New() *Store {
	return &Store{
		vals: make(map[string][]byte),
	}
}

// Close deallocates the store. Any consecutive
// access fails with ErrDbClosed.
func (s *Store) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.vals = nil
	return nil
}

// Has checks if the specified digest is
// present in the store.
func (s *Store) Has(key []byte) (bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.vals == nil {
		return false, storage.ErrDbClosed
	}

	_, ok := s.vals[string(key)]
	return ok, nil
}

// Get retrieves the preimage for the specified
// digest, if present.
func (s *Store) Get(key []byte) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.vals == nil {
		return nil, storage.ErrDbClosed
	}

	if val, ok := s.vals[string(key)]; ok {
		return storage.CopyBytes(val), nil
	}

	return nil, storage.ErrKeyNotFound
}

// Put inserts the specified digest-preimage
// pair into the store.
func (s *Store) Put(key, value []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.vals == nil {
		return storage.ErrDbClosed
	}

	s.vals[string(key)] = storage.CopyBytes(value)
	return nil
}
