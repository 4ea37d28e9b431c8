package node

// Decode parses b as a single trie node and verifies no bytes remain
// afterward. Inner recursion tolerates trailing bytes in an enclosing
// list, but the outer call must see the cursor fully exhausted.
func Decode(b []byte) (Node, error) {
	n, rest, err := decode(b)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, ErrTrailingBytes
	}
	return n, nil
}

// decode parses a single item from the front of b and returns the
// decoded node together with whatever bytes follow it. Blinded
// children are left blinded; hydrating them is the caller's job.
func decode(b []byte) (Node, []byte, error) {
	hdr, content, rest, err := readHeader(b)
	if err != nil {
		return nil, nil, err
	}

	if !hdr.isList {
		switch hdr.payloadLength {
		case 0:
			return Empty{}, rest, nil
		case 32:
			var c [32]byte
			copy(c[:], content)
			return Blinded{Commitment: c}, rest, nil
		default:
			return nil, nil, ErrUnexpectedLength
		}
	}

	arity, err := listArity(content)
	if err != nil {
		return nil, nil, err
	}

	switch arity {
	case 17:
		stack, err := decodeBranchStack(content)
		if err != nil {
			return nil, nil, err
		}
		return Branch{Stack: stack}, rest, nil
	case 2:
		n, err := decodeLeafOrExtension(content)
		if err != nil {
			return nil, nil, err
		}
		return n, rest, nil
	default:
		return nil, nil, ErrUnexpectedArity
	}
}

// decodeBranchStack decodes exactly 17 nodes from payload, the
// concatenated encodings of a branch's slots.
func decodeBranchStack(payload []byte) ([17]Node, error) {
	var stack [17]Node
	cur := payload
	for i := range stack {
		n, rest, err := decode(cur)
		if err != nil {
			return stack, err
		}
		stack[i] = n
		cur = rest
	}
	return stack, nil
}

// decodeLeafOrExtension decodes a 2-element list payload as either a
// Leaf or an Extension, discriminated by the high nibble of the
// path's leading byte.
func decodeLeafOrExtension(payload []byte) (Node, error) {
	path, rest, err := decodeBytes(payload)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, malformed(errEmptyPath)
	}

	kind, err := classifyPathPrefix(path[0])
	if err != nil {
		return nil, err
	}

	switch kind {
	case pathExtension:
		child, tail, err := decode(rest)
		if err != nil {
			return nil, err
		}
		if len(tail) != 0 {
			return nil, malformed(errTrailingListElement)
		}
		return Extension{Prefix: path, Child: child}, nil
	default: // pathLeaf
		value, tail, err := decodeBytes(rest)
		if err != nil {
			return nil, err
		}
		if len(tail) != 0 {
			return nil, malformed(errTrailingListElement)
		}
		return Leaf{Key: path, Value: value}, nil
	}
}

var (
	errEmptyPath           = rlpKindError("leaf/extension path is empty")
	errTrailingListElement = rlpKindError("leaf/extension list carried more than two elements")
)
