package node

import (
	"bytes"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/rlp"
)

// emptyStringCode is the sentinel byte for the canonical empty
// string, used verbatim by an Empty node.
const emptyStringCode = 0x80

// header is the result of inspecting a framed item's leading tag.
type header struct {
	isList        bool
	payloadLength int
}

// readHeader inspects the leading tag of b without mutating the
// slice the caller holds (Go passes the slice header by value, so
// this is the non-consuming "clone the cursor" semantics Design Note
// #1 requires). It returns the parsed header along with the item's
// payload and whatever bytes follow the item.
func readHeader(b []byte) (hdr header, content []byte, rest []byte, err error) {
	kind, content, rest, err := rlp.Split(b)
	if err != nil {
		return header{}, nil, nil, malformed(err)
	}
	return header{isList: kind == rlp.List, payloadLength: len(content)}, content, rest, nil
}

// decodeBytes consumes a single byte-string item from b and returns
// its payload plus whatever follows it. It rejects list items.
func decodeBytes(b []byte) (content []byte, rest []byte, err error) {
	kind, content, rest, err := rlp.Split(b)
	if err != nil {
		return nil, nil, malformed(err)
	}
	if kind == rlp.List {
		return nil, nil, malformed(errNotAString)
	}
	return content, rest, nil
}

// listArity walks a list item's payload and returns the number of
// top-level elements it contains, without consuming the caller's
// view of b: payload is read from the header's content, a value
// already independent of the caller's original slice.
func listArity(payload []byte) (int, error) {
	n, err := rlp.CountValues(payload)
	if err != nil {
		return 0, malformed(err)
	}
	return n, nil
}

// appendString appends the canonical byte-string encoding of s to
// out, using the rlp package's own writer so that short, long, and
// single-byte-optimized forms all match go-ethereum bit-for-bit.
func appendString(out *bytes.Buffer, s []byte) {
	// rlp.Encode never fails for a []byte value.
	_ = rlp.Encode(out, s)
}

// stringLen returns the exact length appendString would produce for s.
func stringLen(s []byte) int {
	return len(s) + stringHeaderLen(s)
}

// stringHeaderLen returns the number of header bytes a byte-string
// encoding of s carries: zero for a single byte under 0x80 (which is
// self-encoding), one for a short string, or 1+intsize(len) for a
// long string.
func stringHeaderLen(s []byte) int {
	if len(s) == 1 && s[0] < 0x80 {
		return 0
	}
	if len(s) <= 55 {
		return 1
	}
	return 1 + intsize(uint64(len(s)))
}

// appendListHeader appends the canonical list header for a payload of
// the given length: short form (0xc0+len) when the payload is at most
// 55 bytes, long form (0xf7+len_of_len, then the length big-endian)
// otherwise.
func appendListHeader(out *bytes.Buffer, payloadLen int) {
	if payloadLen <= 55 {
		out.WriteByte(0xc0 + byte(payloadLen))
		return
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(payloadLen))
	enc := buf[8-intsize(uint64(payloadLen)):]
	out.WriteByte(0xf7 + byte(len(enc)))
	out.Write(enc)
}

// listHeaderLen returns the exact length appendListHeader would
// produce for a payload of the given length.
func listHeaderLen(payloadLen int) int {
	if payloadLen <= 55 {
		return 1
	}
	return 1 + intsize(uint64(payloadLen))
}

// intsize returns the minimal number of big-endian bytes needed to
// represent i (i must be nonzero for a meaningful length prefix, but
// is never called with the payload-length 0 case since that takes
// the short-form branch above).
func intsize(i uint64) int {
	n := 1
	for i >= 256 {
		i >>= 8
		n++
	}
	return n
}

var errNotAString = rlpKindError("expected byte-string item, got list")

// rlpKindError is a trivial string error, used only to give
// malformed() a concrete cause to wrap when the codec itself (rather
// than the rlp package) detects the mismatch.
type rlpKindError string

func (e rlpKindError) Error() string { return string(e) }
