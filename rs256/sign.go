// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rs256

import "github.com/jfcote87/rsajwt/keydecoder"

// minPaddingLen is the minimum number of 0xFF padding bytes EMSA-
// PKCS1-v1_5 requires (RFC 8017 section 9.2, step 3).
const minPaddingLen = 8

// Sign produces an RS256 signature of message under key, following
// RFC 8017 section 8.2.1 (RSASSA-PKCS1-V1_5-SIGN). The result is
// exactly k = ceil(bitLen(key.Modulus)/8) bytes.
//
// Sign returns ErrMessageTooLong if k is too small to hold the
// encoded DigestInfo with the required minimum padding (k < 62), and
// ErrIntegerOutOfRange if the encoded message representative is not
// smaller than the modulus (this cannot occur for a well-formed
// encoding and is checked defensively).
func Sign(key *keydecoder.RSAPrivateKey, message []byte) ([]byte, error) {
	k := key.Size()
	t := digestInfo(message)

	tLen := len(t)
	if k < tLen+3+minPaddingLen {
		return nil, ErrMessageTooLong
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

	m := os2ip(em)
	if m.Cmp(key.Modulus) >= 0 {
		return nil, ErrIntegerOutOfRange
	}

	s := modPow(m, key.PrivateExponent, key.Modulus)
	return i2osp(s, k)
}
