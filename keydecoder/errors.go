// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keydecoder

import "errors"

// ErrUnsupportedKeyFormat is returned when the PEM armour label is
// neither "RSA PRIVATE KEY" nor "PRIVATE KEY", or when a PKCS#8
// PrivateKeyInfo's algorithm OID is not rsaEncryption.
var ErrUnsupportedKeyFormat = errors.New("keydecoder: unsupported key format")

// ErrMalformedKey is returned when base64 decoding or the DER walk
// fails any structural invariant: truncated input, a mis-tagged or
// missing field, a version other than 0, or fewer than nine INTEGER
// fields in a PKCS#1 body.
var ErrMalformedKey = errors.New("keydecoder: malformed key")
