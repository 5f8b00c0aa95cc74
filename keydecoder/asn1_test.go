// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keydecoder

import "testing"

func TestReadIntegerStripsLeadingZero(t *testing.T) {
	// INTEGER 0x00 0x80 -> unsigned value 0x80 (the 0x00 is a sign pad
	// because the next byte's high bit is set).
	der := []byte{tagInteger, 0x02, 0x00, 0x80}
	r := newDERReader(der)
	v, err := r.readInteger()
	if err != nil {
		t.Fatalf("readInteger: %v", err)
	}
	if v.Int64() != 0x80 {
		t.Errorf("readInteger = %v; want 0x80", v)
	}
}

func TestReadIntegerKeepsZeroWithoutHighBit(t *testing.T) {
	// INTEGER 0x00 0x7F -> the leading 0x00 is NOT a sign pad (next
	// byte's high bit is clear), so the value is 0x007F = 0x7F.
	der := []byte{tagInteger, 0x02, 0x00, 0x7f}
	r := newDERReader(der)
	v, err := r.readInteger()
	if err != nil {
		t.Fatalf("readInteger: %v", err)
	}
	if v.Int64() != 0x7f {
		t.Errorf("readInteger = %v; want 0x7f", v)
	}
}

func TestLongFormLengthTwoBytes(t *testing.T) {
	// A 300-byte OCTET STRING: tag, 0x82 (long form, 2 length bytes),
	// 0x01 0x2C (=300), followed by 300 content bytes.
	content := make([]byte, 300)
	for i := range content {
		content[i] = byte(i)
	}
	der := append([]byte{tagOctetString, 0x82, 0x01, 0x2c}, content...)
	r := newDERReader(der)
	got, err := r.readOctetString()
	if err != nil {
		t.Fatalf("readOctetString: %v", err)
	}
	if len(got) != 300 {
		t.Fatalf("len(got) = %d; want 300", len(got))
	}
	for i := range got {
		if got[i] != byte(i) {
			t.Fatalf("got[%d] = %d; want %d", i, got[i], byte(i))
		}
	}
	if !r.empty() {
		t.Error("reader not empty after consuming the whole buffer")
	}
}

func TestReadLengthRejectsOversizedLongForm(t *testing.T) {
	r := newDERReader([]byte{0x85, 0, 0, 0, 0, 0})
	if _, err := r.readLength(); err != ErrMalformedKey {
		t.Errorf("readLength error = %v; want ErrMalformedKey", err)
	}
}

func TestReadTLVRejectsWrongTag(t *testing.T) {
	der := []byte{tagInteger, 0x01, 0x05}
	r := newDERReader(der)
	if _, err := r.readTLV(tagOctetString); err != ErrMalformedKey {
		t.Errorf("readTLV error = %v; want ErrMalformedKey", err)
	}
}

func TestDecodeObjectID(t *testing.T) {
	// 1.2.840.113549.1.1.1 (rsaEncryption)
	if got, want := decodeObjectID(rsaEncryptionOID), "1.2.840.113549.1.1.1"; got != want {
		t.Errorf("decodeObjectID = %q; want %q", got, want)
	}
}
