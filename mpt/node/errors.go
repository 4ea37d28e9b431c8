package node

import (
	"errors"
	"fmt"
)

// The decode error taxonomy is closed and small: every failure the
// codec can report is one of these five sentinels, optionally wrapped
// with the underlying cause via %w so callers can still use
// errors.Is against the sentinel.
var (
	// ErrMalformedFraming is returned when a length prefix is
	// inconsistent with the buffer it describes: the prefix
	// overflows the buffer, or the declared length does not match
	// the payload actually present.
	ErrMalformedFraming = errors.New("node: malformed framing")

	// ErrUnexpectedLength is returned when a byte-string item's
	// payload length is neither 0 (Empty) nor 32 (Blinded).
	ErrUnexpectedLength = errors.New("node: unexpected length")

	// ErrUnexpectedArity is returned when a list item's element
	// count is neither 2 (Leaf/Extension) nor 17 (Branch).
	ErrUnexpectedArity = errors.New("node: unexpected arity")

	// ErrBadPathPrefix is returned when a Leaf/Extension path's
	// leading nibble falls outside {0,1,2,3}.
	ErrBadPathPrefix = errors.New("node: bad path prefix")

	// ErrTrailingBytes is returned only by the outermost Decode
	// call when bytes remain after the top-level item has been
	// consumed.
	ErrTrailingBytes = errors.New("node: trailing bytes after node")
)

// malformed wraps a lower-level framing error (typically from the
// rlp package's raw primitives) as ErrMalformedFraming.
func malformed(cause error) error {
	return fmt.Errorf("%w: %v", ErrMalformedFraming, cause)
}
