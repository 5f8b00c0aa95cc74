// Copyright 2019 James Cote All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctxclient offers utilities for handling the selection and
// creation of an *http.Client based on the context, and for issuing
// the simple POST-form requests jwtbearer needs to reach a token
// endpoint.
//
// This is a trimmed adaptation: the default-registration mechanism
// (RegisterFunc and the App Engine default client it exists to
// support) is dropped, since this module targets no App Engine-style
// runtime that needs a non-default http.Client picked up implicitly.
// A caller that wants a particular client supplies a Func directly.
package ctxclient // import "github.com/jfcote87/rsajwt/ctxclient"
