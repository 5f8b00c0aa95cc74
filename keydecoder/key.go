// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keydecoder

import "math/big"

// RSAPrivateKey holds the nine integers of a parsed PKCS#1
// RSAPrivateKey. All fields are non-negative; leading 0x00 padding
// bytes present only to keep a DER INTEGER unsigned have already been
// stripped.
type RSAPrivateKey struct {
	Version         int
	Modulus         *big.Int // n
	PublicExponent  *big.Int // e
	PrivateExponent *big.Int // d
	Prime1          *big.Int // p
	Prime2          *big.Int // q
	Exponent1       *big.Int // dP = d mod (p-1)
	Exponent2       *big.Int // dQ = d mod (q-1)
	Coefficient     *big.Int // qInv = q^-1 mod p
}

// Size returns k, the byte length of the modulus: ceil(bitLen(n)/8).
// This is also the length of an RS256 signature produced with this
// key.
func (k *RSAPrivateKey) Size() int {
	return (k.Modulus.BitLen() + 7) / 8
}
