// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keydecoder

import "math/big"

// DER tag bytes this parser recognizes. Only the primitive/universal
// tags needed for RSAPrivateKey and PrivateKeyInfo are supported;
// anything else is a structural error.
const (
	tagInteger        = 0x02
	tagOctetString    = 0x04
	tagNull           = 0x05
	tagObjectID       = 0x06
	tagSequence       = 0x30
)

// derReader walks a flat DER byte buffer as a sequence of
// type-length-value triples. It never copies; every returned slice
// aliases buf.
type derReader struct {
	buf []byte
	pos int
}

func newDERReader(buf []byte) *derReader {
	return &derReader{buf: buf}
}

func (r *derReader) empty() bool {
	return r.pos >= len(r.buf)
}

// readLength parses a DER length octet sequence starting at r.pos,
// honoring both the short form (a single byte < 0x80) and the long
// form (0x80|n followed by n big-endian length bytes, 1 <= n <= 4).
func (r *derReader) readLength() (int, error) {
	if r.pos >= len(r.buf) {
		return 0, ErrMalformedKey
	}
	b := r.buf[r.pos]
	r.pos++
	if b < 0x80 {
		return int(b), nil
	}
	n := int(b &^ 0x80)
	if n == 0 || n > 4 {
		return 0, ErrMalformedKey
	}
	if r.pos+n > len(r.buf) {
		return 0, ErrMalformedKey
	}
	length := 0
	for i := 0; i < n; i++ {
		length = length<<8 | int(r.buf[r.pos])
		r.pos++
	}
	if length < 0 {
		// overflowed a native int on a 32-bit platform; not a valid key.
		return 0, ErrMalformedKey
	}
	return length, nil
}

// readTLV reads one tag-length-value triple, verifying the tag
// matches wantTag, and returns the content slice. r advances past
// the value.
func (r *derReader) readTLV(wantTag byte) ([]byte, error) {
	if r.pos >= len(r.buf) {
		return nil, ErrMalformedKey
	}
	gotTag := r.buf[r.pos]
	if gotTag != wantTag {
		return nil, ErrMalformedKey
	}
	r.pos++
	length, err := r.readLength()
	if err != nil {
		return nil, err
	}
	if length < 0 || r.pos+length > len(r.buf) {
		return nil, ErrMalformedKey
	}
	content := r.buf[r.pos : r.pos+length]
	r.pos += length
	return content, nil
}

// readSequence reads a SEQUENCE TLV and returns a new derReader
// scoped to its content, so nested TLV boundaries (e.g. a SEQUENCE
// inside an OCTET STRING inside a SEQUENCE) cannot be mis-anchored by
// scanning past them.
func (r *derReader) readSequence() (*derReader, error) {
	content, err := r.readTLV(tagSequence)
	if err != nil {
		return nil, err
	}
	return newDERReader(content), nil
}

// readInteger reads an INTEGER TLV and returns it as a non-negative
// big.Int, stripping a single leading 0x00 sign-pad byte when the DER
// encoding required one to keep the value unsigned.
func (r *derReader) readInteger() (*big.Int, error) {
	content, err := r.readTLV(tagInteger)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, ErrMalformedKey
	}
	if content[0] == 0x00 && len(content) > 1 && content[1]&0x80 != 0 {
		content = content[1:]
	}
	return new(big.Int).SetBytes(content), nil
}

// readSmallInteger reads an INTEGER TLV expected to hold a small
// non-negative value (e.g. a structure version) and returns it as an
// int.
func (r *derReader) readSmallInteger() (int, error) {
	v, err := r.readInteger()
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, ErrMalformedKey
	}
	return int(v.Int64()), nil
}

// readObjectID reads an OBJECT IDENTIFIER TLV and returns its content
// bytes unparsed; callers compare these directly against a known
// encoded OID rather than decoding to dotted form.
func (r *derReader) readObjectID() ([]byte, error) {
	return r.readTLV(tagObjectID)
}

// readOctetString reads an OCTET STRING TLV and returns its content.
func (r *derReader) readOctetString() ([]byte, error) {
	return r.readTLV(tagOctetString)
}

// readNull reads a NULL TLV, requiring zero-length content.
func (r *derReader) readNull() error {
	content, err := r.readTLV(tagNull)
	if err != nil {
		return err
	}
	if len(content) != 0 {
		return ErrMalformedKey
	}
	return nil
}

// decodeObjectID renders the base-128 VLQ content of an OBJECT
// IDENTIFIER into dotted-decimal form. It exists for diagnostics only;
// comparisons against the fixed rsaEncryption OID use the raw encoded
// bytes (see rsaEncryptionOID in pkcs8.go).
func decodeObjectID(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	z := int(content[0])
	x := z / 40
	if x > 2 {
		x = 2
	}
	y := z - 40*x
	s := itoa(x) + "." + itoa(y)
	var v int64
	for _, b := range content[1:] {
		v = v<<7 | int64(b&0x7f)
		if b&0x80 == 0 {
			s += "." + itoa(int(v))
			v = 0
		}
	}
	return s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
