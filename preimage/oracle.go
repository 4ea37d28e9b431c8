// Package preimage hydrates Blinded trie nodes on demand. The codec
// in mpt/node never looks inside a commitment; this package is the
// external collaborator that resolves one to its preimage bytes and
// feeds them back through node.Decode.
package preimage

import (
	"context"
	"fmt"

	"triecodec/storage"
)

// Oracle resolves a commitment to the preimage bytes it commits to.
type Oracle interface {
	// Get fetches the preimage of the given commitment.
	Get(ctx context.Context, commitment [32]byte) ([]byte, error)
}

// Hinter informs a host process that a commitment will be requested
// soon, allowing it to prefetch the preimage out of band before Get
// is called.
type Hinter interface {
	// Hint informs the host that the given commitment will be
	// requested soon.
	Hint(ctx context.Context, commitment [32]byte) error
}

// StoreOracle backs Oracle with a digest-keyed storage.KeyValStore,
// the shape the teacher's storage/mem and storage/badger packages
// both implement.
type StoreOracle struct {
	store storage.KeyValStore
}

// NewStoreOracle wraps store as an Oracle.
func NewStoreOracle(store storage.KeyValStore) *StoreOracle {
	return &StoreOracle{store: store}
}

// Get retrieves the preimage of commitment from the backing store.
// The store itself performs no I/O cancellation, so ctx is only
// checked before the lookup begins.
func (o *StoreOracle) Get(ctx context.Context, commitment [32]byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, err := o.store.Get(commitment[:])
	if err != nil {
		return nil, fmt.Errorf("failed to resolve commitment %x: %w", commitment, err)
	}
	return val, nil
}

// Put stores the preimage for commitment, for callers (tests, or a
// hint-driven prefetcher) populating the store directly.
func (o *StoreOracle) Put(commitment [32]byte, preimage []byte) error {
	return o.store.Put(commitment[:], preimage)
}
