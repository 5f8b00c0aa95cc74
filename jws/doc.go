// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jws provides the JSON Web Signature assembly this project's
// RS256 core exists to serve: a header and a ClaimSet, base64url
// encoded and signed, per RFC 7515. Unlike
// golang.org/x/oauth2-style jws packages, the RS256 signer here is
// backed by github.com/jfcote87/rsajwt/rs256 and
// github.com/jfcote87/rsajwt/keydecoder rather than crypto/rsa and
// crypto/x509, so it runs without a native RSA implementation.
package jws // import "github.com/jfcote87/rsajwt/jws"
