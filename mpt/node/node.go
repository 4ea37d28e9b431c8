// Package node implements the canonical node model and byte-level
// codec for an Ethereum-style hexary Merkle Patricia Trie: the tagged
// node variants (Empty, Blinded, Leaf, Extension, Branch), the
// length-prefixed list framing they are serialized with, and the
// blinding transform that replaces any child encoding longer than 33
// bytes with a keccak256 commitment.
//
// The codec is pure and stateless: Encode and Decode never perform
// I/O, never hold a blinded child's preimage, and never mutate their
// input. Hydrating a Blinded node is the job of an external preimage
// provider (see package preimage); this package only produces and
// consumes the commitment.
package node

import "bytes"

// Node is the closed set of trie node shapes this codec knows how to
// encode and decode. The interface is sealed to this package: Empty,
// Blinded, Leaf, Extension, and Branch are the only implementations,
// so a type switch on Node is exhaustive.
type Node interface {
	encode(out *bytes.Buffer)
	length() int

	sealed()
}

// Empty represents the absence of a child. It is the value stored in
// unused Branch slots and serializes as the single empty-string
// sentinel byte.
type Empty struct{}

// Blinded is an opaque reference to a subtree, identified by the
// keccak256 digest of that subtree's canonical encoding. It stands in
// for any child whose own encoding would exceed 33 bytes.
type Blinded struct {
	Commitment [32]byte
}

// Leaf is a terminal trie entry. Key is a nibble-encoded path whose
// leading nibble carries parity in its high bits (2 for even length,
// 3 for odd). Value is never blinded: leaf values are always literal.
type Leaf struct {
	Key   []byte
	Value []byte
}

// Extension is a path-compression node. Prefix carries parity the
// same way Leaf.Key does (0 even, 1 odd), and Child is the exclusively
// owned subtree the prefix points to.
type Extension struct {
	Prefix []byte
	Child  Node
}

// Branch has exactly 16 child slots, one per nibble value, followed
// by a conventional 17th "value" slot. Every slot, the value slot
// included, decodes through the same recursive entry point as any
// other node, so it holds Empty, Blinded, or an inline node; a literal
// byte-string value that is neither empty nor 32 bytes long is not
// representable there and fails to decode with ErrUnexpectedLength.
type Branch struct {
	Stack [17]Node
}

func (Empty) sealed()     {}
func (Blinded) sealed()   {}
func (Leaf) sealed()      {}
func (Extension) sealed() {}
func (Branch) sealed()    {}

// Encode appends the canonical encoding of n to out.
func Encode(n Node, out *bytes.Buffer) {
	n.encode(out)
}

// Length returns the exact number of bytes Encode would append for n,
// without allocating.
func Length(n Node) int {
	return n.length()
}
