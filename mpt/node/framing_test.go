package node

import (
	"bytes"
	"testing"
)

func TestReadHeader(t *testing.T) {
	t.Run("string item", func(t *testing.T) {
		hdr, content, rest, err := readHeader([]byte{0x83, 'a', 'b', 'c', 0xff})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if hdr.isList {
			t.Errorf("expected isList = false")
		}
		if hdr.payloadLength != 3 {
			t.Errorf("expected payload length 3, got %d", hdr.payloadLength)
		}
		if !bytes.Equal(content, []byte("abc")) {
			t.Errorf("unexpected content %q", content)
		}
		if !bytes.Equal(rest, []byte{0xff}) {
			t.Errorf("unexpected rest %x", rest)
		}
	})

	t.Run("list item", func(t *testing.T) {
		hdr, content, _, err := readHeader([]byte{0xc2, 0x80, 0x80})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !hdr.isList {
			t.Errorf("expected isList = true")
		}
		if hdr.payloadLength != 2 {
			t.Errorf("expected payload length 2, got %d", hdr.payloadLength)
		}
		if !bytes.Equal(content, []byte{0x80, 0x80}) {
			t.Errorf("unexpected content %x", content)
		}
	})

	t.Run("does not mutate caller's slice", func(t *testing.T) {
		b := []byte{0xc2, 0x80, 0x80}
		before := append([]byte(nil), b...)

		if _, _, _, err := readHeader(b); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !bytes.Equal(b, before) {
			t.Errorf("readHeader mutated caller's slice: %x != %x", b, before)
		}
	})
}

func TestListArity(t *testing.T) {
	t.Run("two elements", func(t *testing.T) {
		_, content, _, err := readHeader([]byte{0xc2, 0x80, 0x80})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		n, err := listArity(content)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if n != 2 {
			t.Errorf("expected arity 2, got %d", n)
		}
	})

	t.Run("seventeen elements", func(t *testing.T) {
		payload := bytes.Repeat([]byte{0x80}, 17)
		n, err := listArity(payload)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if n != 17 {
			t.Errorf("expected arity 17, got %d", n)
		}
	})
}

func TestListHeaderLen_LongForm(t *testing.T) {
	t.Run("55 bytes uses the short form, 56 bytes the long form", func(t *testing.T) {
		if got := listHeaderLen(55); got != 1 {
			t.Errorf("expected 1 header byte for payload 55, got %d", got)
		}
		if got := listHeaderLen(56); got != 2 {
			t.Errorf("expected 2 header bytes for payload 56, got %d", got)
		}
	})

	t.Run("appendListHeader matches listHeaderLen", func(t *testing.T) {
		for _, payloadLen := range []int{0, 1, 55, 56, 300, 70000} {
			var buf bytes.Buffer
			appendListHeader(&buf, payloadLen)
			if buf.Len() != listHeaderLen(payloadLen) {
				t.Errorf("payload %d: header is %d bytes, listHeaderLen says %d", payloadLen, buf.Len(), listHeaderLen(payloadLen))
			}
		}
	})
}

func TestStringLen_SingleByteSelfEncodes(t *testing.T) {
	if got := stringLen([]byte{0x10}); got != 1 {
		t.Errorf("expected self-encoded single byte to have length 1, got %d", got)
	}
	if got := stringLen([]byte{0x80}); got != 2 {
		t.Errorf("expected byte >= 0x80 to carry a header, got length %d", got)
	}
}
