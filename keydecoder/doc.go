// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keydecoder decodes unencrypted RSA private keys from PEM
// text armoring either a PKCS#1 RSAPrivateKey or a PKCS#8
// PrivateKeyInfo wrapping one. The ASN.1/DER walk is hand rolled: no
// encoding/asn1 or crypto/x509 parsing is used, since the host
// environment this package targets has neither.
package keydecoder // import "github.com/jfcote87/rsajwt/keydecoder"
