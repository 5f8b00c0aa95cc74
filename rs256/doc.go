// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rs256 implements RSASSA-PKCS1-v1_5 signing and verification
// with a SHA-256 digest (RS256), per RFC 8017 sections 8.2.1 and
// 8.2.2. It operates on *keydecoder.RSAPrivateKey values; it never
// handles PEM text directly.
package rs256 // import "github.com/jfcote87/rsajwt/rs256"
