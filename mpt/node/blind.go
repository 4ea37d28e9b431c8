package node

import (
	"bytes"

	"github.com/ethereum/go-ethereum/crypto"
)

// blindedThreshold is the encoded length of a 32-byte digest string
// (tag byte + 32 payload bytes). Any child whose own encoding fits in
// at most this many bytes is inlined; anything larger collapses to
// its commitment.
const blindedThreshold = 33

// Blind replaces n with its commitment if n's own encoding exceeds
// blindedThreshold, otherwise returns n unchanged. It is idempotent:
// Blind(Blind(n)) always equals Blind(n), since a Blinded node always
// encodes to exactly 33 bytes.
func Blind(n Node) Node {
	if n.length() <= blindedThreshold {
		return n
	}
	var buf bytes.Buffer
	n.encode(&buf)
	return Blinded{Commitment: digest(buf.Bytes())}
}

// blindedLength returns the length encodeBlinded would produce for
// child: its own length if that fits within blindedThreshold, or
// blindedThreshold if it would be replaced by a commitment.
func blindedLength(child Node) int {
	if l := child.length(); l <= blindedThreshold {
		return l
	}
	return blindedThreshold
}

// encodeBlinded appends child's encoding to out, replacing it with a
// Blinded commitment first if its own encoding would exceed
// blindedThreshold. This is the per-slot rule Branch and Extension
// apply to their children; it is never applied to a Leaf's value.
func encodeBlinded(child Node, out *bytes.Buffer) {
	if child.length() <= blindedThreshold {
		child.encode(out)
		return
	}
	var buf bytes.Buffer
	child.encode(&buf)
	Blinded{Commitment: digest(buf.Bytes())}.encode(out)
}

// digest is the keccak256 commitment function used throughout the
// codec: the preimage is always a node's own canonical encoding.
func digest(preimage []byte) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256(preimage))
	return out
}
