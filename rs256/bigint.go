// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rs256

import "math/big"

// os2ip converts a big-endian byte string to a non-negative integer,
// per RFC 8017 section 4.1. big.Int.SetBytes already interprets its
// argument as big-endian, which is the representation EM is built in
// throughout this package; there is no little-endian accumulation
// here, unlike the source this library was derived from.
func os2ip(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// i2osp converts a non-negative integer to a big-endian byte string
// of exactly length k, left-padded with 0x00, per RFC 8017 section
// 4.2. It fails if x does not fit in k octets.
func i2osp(x *big.Int, k int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, ErrIntegerOutOfRange
	}
	out := make([]byte, k)
	b := x.Bytes()
	if len(b) > k {
		return nil, ErrIntegerOutOfRange
	}
	copy(out[k-len(b):], b)
	return out, nil
}

// modPow computes base^exp mod m via big.Int's square-and-multiply
// implementation. CRT acceleration through p, q, dP, dQ, qInv is an
// allowed optimization per RFC 8017 section 5.1.2 but is not required
// for correctness, so the plain d-mod-n path is used throughout.
func modPow(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}
