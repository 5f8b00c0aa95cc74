// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rs256

import "crypto/sha256"

// sha256DigestInfoPrefix is the fixed 19-byte ASN.1 DER prefix of a
// DigestInfo structure identifying SHA-256, per RFC 8017 appendix B.1:
//
//	SEQUENCE {
//	    SEQUENCE { OBJECT IDENTIFIER sha256, NULL },
//	    OCTET STRING (32 bytes, the digest)
//	}
var sha256DigestInfoPrefix = []byte{
	0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
	0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20,
}

// digestInfoLen is the total byte length of a SHA-256 DigestInfo:
// the 19-byte prefix plus the 32-byte digest.
const digestInfoLen = len(sha256DigestInfoPrefix) + sha256.Size

// digestInfo computes T = sha256DigestInfoPrefix || SHA256(message).
func digestInfo(message []byte) []byte {
	sum := sha256.Sum256(message)
	t := make([]byte, 0, digestInfoLen)
	t = append(t, sha256DigestInfoPrefix...)
	t = append(t, sum[:]...)
	return t
}
