// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rs256_test

import (
	"encoding/hex"
	"math/big"
	"os"
	"testing"

	"github.com/jfcote87/rsajwt/keydecoder"
	"github.com/jfcote87/rsajwt/rs256"
)

func loadKey(t *testing.T) *keydecoder.RSAPrivateKey {
	t.Helper()
	pem, err := os.ReadFile("testdata/rsa2048_pkcs1.pem")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	key, err := keydecoder.Decode(string(pem))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return key
}

// TestSignKnownVector checks Sign against a signature computed
// independently (via the same RFC 8017 8.2.1 algorithm, implemented
// in Python against the same 2048-bit key) for the message "hello".
func TestSignKnownVector(t *testing.T) {
	key := loadKey(t)
	want, err := os.ReadFile("testdata/sig_hello.bin")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	got, err := rs256.Sign(key, []byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(got) != len(want) || hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Fatalf("Sign(%q) = %x; want %x", "hello", got, want)
	}
	if !rs256.Verify(key, []byte("hello"), got) {
		t.Error("Verify of known-good signature returned false")
	}
}

func TestSignProducesExactModulusLength(t *testing.T) {
	key := loadKey(t)
	for _, msg := range [][]byte{nil, []byte(""), []byte("a"), []byte("the quick brown fox")} {
		sig, err := rs256.Sign(key, msg)
		if err != nil {
			t.Fatalf("Sign(%q): %v", msg, err)
		}
		if len(sig) != key.Size() {
			t.Errorf("len(Sign(%q)) = %d; want %d", msg, len(sig), key.Size())
		}
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	key := loadKey(t)
	sig, err := rs256.Sign(key, []byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if rs256.Verify(key, []byte("goodbye"), sig) {
		t.Error("Verify accepted signature for a different message")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	key := loadKey(t)
	sig, err := rs256.Sign(key, []byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	for _, idx := range []int{0, 100, len(sig) - 1} {
		tampered := append([]byte(nil), sig...)
		tampered[idx] ^= 0x01
		if rs256.Verify(key, []byte("hello"), tampered) {
			t.Errorf("Verify accepted signature tampered at byte %d", idx)
		}
	}
}

func TestVerifyRejectsWrongLength(t *testing.T) {
	key := loadKey(t)
	sig, err := rs256.Sign(key, []byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if rs256.Verify(key, []byte("hello"), sig[:len(sig)-1]) {
		t.Error("Verify accepted a short signature")
	}
	if rs256.Verify(key, []byte("hello"), append(sig, 0x00)) {
		t.Error("Verify accepted an overlong signature")
	}
}

// TestMessageTooLong constructs a synthetic key whose modulus is
// just short of / exactly at the minimum usable size (k = 61 vs.
// k = 62 bytes), reusing the loaded key's exponents over a truncated
// modulus so the arithmetic stays internally consistent for the
// boundary check itself (Sign fails before doing any modular
// exponentiation in the too-short case).
func TestMessageTooLong(t *testing.T) {
	base := loadKey(t)

	shrink := func(bytesLen int) *keydecoder.RSAPrivateKey {
		n := new(big.Int).Rsh(base.Modulus, uint((base.Size()-bytesLen)*8))
		n.SetBit(n, bytesLen*8-1, 1) // keep the top bit set so Size() matches
		k := *base
		k.Modulus = n
		return &k
	}

	short := shrink(61)
	if _, err := rs256.Sign(short, []byte("hello")); err != rs256.ErrMessageTooLong {
		t.Errorf("Sign with k=61 error = %v; want ErrMessageTooLong", err)
	}

	ok := shrink(62)
	if _, err := rs256.Sign(ok, []byte("hello")); err != nil {
		t.Errorf("Sign with k=62 error = %v; want nil", err)
	}
}
