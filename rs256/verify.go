// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rs256

import "github.com/jfcote87/rsajwt/keydecoder"

// Verify reports whether signature is a valid RS256 signature of
// message under key, following RFC 8017 section 8.2.2
// (RSASSA-PKCS1-V1_5-VERIFY), using the private key's own modulus and
// public exponent (the degenerate verification path: this package
// never decodes a standalone SubjectPublicKeyInfo).
//
// Verify returns false for any mismatch — wrong signature length, a
// signature representative not smaller than the modulus, or a
// recomputed encoding that does not match — and never returns an
// error.
func Verify(key *keydecoder.RSAPrivateKey, message, signature []byte) bool {
	k := key.Size()
	if len(signature) != k {
		return false
	}

	s := os2ip(signature)
	if s.Cmp(key.Modulus) >= 0 {
		return false
	}

	m := modPow(s, key.PublicExponent, key.Modulus)
	emPrime, err := i2osp(m, k)
	if err != nil {
		return false
	}

	t := digestInfo(message)
	tLen := len(t)
	if k < tLen+3+minPaddingLen {
		return false
	}
	psLen := k - tLen - 3

	em := make([]byte, k)
	em[0] = 0x00
	em[1] = 0x01
	for i := 0; i < psLen; i++ {
		em[2+i] = 0xff
	}
	em[2+psLen] = 0x00
	copy(em[3+psLen:], t)

	return constantTimeEqual(em, emPrime)
}

// constantTimeEqual compares two equal-length byte strings by
// OR-accumulating the XOR of each pair of bytes, with no early
// return, so its running time does not depend on where (or whether) a
// mismatch occurs. Unequal lengths are rejected before any byte
// comparison, since length itself is not secret here (k is public).
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}
