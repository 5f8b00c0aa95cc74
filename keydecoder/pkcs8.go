// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keydecoder

import "bytes"

// rsaEncryptionOID is the DER content of the OBJECT IDENTIFIER
// 1.2.840.113549.1.1.1 (rsaEncryption), per RFC 8017 appendix A.1.
var rsaEncryptionOID = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}

// parsePKCS8 parses a PKCS#8 PrivateKeyInfo DER blob wrapping an RSA
// PKCS#1 key:
//
//	PrivateKeyInfo ::= SEQUENCE {
//	    version                   INTEGER,
//	    privateKeyAlgorithm       AlgorithmIdentifier,
//	    privateKey                OCTET STRING -- contains RSAPrivateKey
//	}
//
//	AlgorithmIdentifier ::= SEQUENCE {
//	    algorithm   OBJECT IDENTIFIER,
//	    parameters  ANY DEFINED BY algorithm OPTIONAL  -- NULL for RSA
//	}
//
// The SEQUENCE/OCTET STRING boundaries are walked structurally; a
// nested SEQUENCE tag inside privateKey cannot mis-anchor the parse,
// because parsePKCS1 is handed only the OCTET STRING's own content.
func parsePKCS8(der []byte) (*RSAPrivateKey, error) {
	outer := newDERReader(der)
	body, err := outer.readSequence()
	if err != nil {
		return nil, err
	}

	version, err := body.readSmallInteger()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, ErrMalformedKey
	}

	algID, err := body.readSequence()
	if err != nil {
		return nil, err
	}
	oid, err := algID.readObjectID()
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(oid, rsaEncryptionOID) {
		return nil, ErrUnsupportedKeyFormat
	}
	// parameters (NULL) are optional and ignored; skip if present.
	if !algID.empty() {
		_ = algID.readNull()
	}

	privateKey, err := body.readOctetString()
	if err != nil {
		return nil, err
	}
	return parsePKCS1(privateKey)
}
