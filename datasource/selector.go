// Package datasource picks between blob and calldata data-availability
// sources for a given block, the way the upstream derivation pipeline
// this codec was distilled from switches at its data-availability
// cutover (Ecotone) activation time. It is a pure timestamp predicate,
// not a blob verifier: no KZG or Verkle commitment scheme lives here.
package datasource

import "context"

// Source yields the next chunk of data-availability payload bytes.
type Source interface {
	Next(ctx context.Context) ([]byte, error)
}

// Selector picks Blob or Calldata for a given block's timestamp,
// switching over at CutoverTime.
type Selector struct {
	// CutoverTime is the block timestamp at or after which Blob is
	// selected instead of Calldata.
	CutoverTime uint64

	// Blob constructs the blob data source for a block with the
	// given timestamp.
	Blob func(blockTime uint64) Source

	// Calldata constructs the calldata data source for a block
	// with the given timestamp.
	Calldata func(blockTime uint64) Source
}

// Open returns the data source appropriate for a block with the
// given timestamp: Blob once blockTime reaches CutoverTime, Calldata
// before it.
func (s *Selector) Open(blockTime uint64) Source {
	if blockTime >= s.CutoverTime {
		return s.Blob(blockTime)
	}
	return s.Calldata(blockTime)
}
