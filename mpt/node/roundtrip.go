package node

import "bytes"

// RoundTrip encodes n, decodes the result back, and returns both the
// decoded node and the intermediate bytes so callers (chiefly tests)
// can assert structural equality and byte-exactness in one call.
func RoundTrip(n Node) (decoded Node, encoded []byte, err error) {
	var buf bytes.Buffer
	Encode(n, &buf)
	encoded = buf.Bytes()

	decoded, err = Decode(encoded)
	return decoded, encoded, err
}
