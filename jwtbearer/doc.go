// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jwtbearer implements the two-legged OAuth 2.0 JSON Web
// Token flow (the JWT-bearer grant, RFC 7523): a service account
// signs an assertion with its own RSA key and exchanges it directly
// for an access token, with no user interaction.
//
// This is the motivating use case for the keydecoder/rs256 core:
// issuing bearer assertions in environments without a native RSA
// implementation.
package jwtbearer // import "github.com/jfcote87/rsajwt/jwtbearer"
