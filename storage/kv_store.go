package storage

import "errors"

var (
	// ErrDbClosed is returned when the
	// store is already closed.
	ErrDbClosed = errors.New("store closed")

	// ErrKeyNotFound is returned if the requested
	// key is not found in the store.
	ErrKeyNotFound = errors.New("key not found")
)

// KeyValStore defines the point-lookup key-value
// operations a preimage store must support. Unlike a
// general trie database, preimages are always addressed
// by their digest and never range-scanned, so no
// iterator or batch surface is exposed here.
type KeyValStore interface {
	// Has checks if the specified key is
	// present in the store.
	Has(key []byte) (bool, error)

	// Get retrieves the specified key if
	// it is present in the store.
	Get(key []byte) ([]byte, error)

	// Put inserts the specified key-val
	// pair into the store.
	Put(key, value []byte) error

	// Close closes the underlying store.
	Close() error
}

// CopyBytes creates a copy of the
// provided byte slice.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}

	copied := make([]byte, len(b))
	copy(copied, b)
	return copied
}
