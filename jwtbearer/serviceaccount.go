// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jwtbearer

import (
	"time"

	"github.com/jfcote87/rsajwt/jws"
)

// ServiceAccount mirrors the JSON shape of a downloadable service
// account key file: an issuer email, an RSA private key (PEM,
// unencrypted PKCS#1 or PKCS#8), and a token endpoint. Config
// converts it into a ready-to-use Config.
type ServiceAccount struct {
	// Email is the OAuth client identifier — the service account's
	// address, used as the claim set's issuer.
	Email string `json:"client_email,omitempty"`

	// PrivateKey holds a PEM-encoded, unencrypted RSA private key.
	PrivateKey string `json:"private_key,omitempty"`

	// PrivateKeyID is an optional hint identifying which key is in
	// use, carried into the JWT header's kid field.
	PrivateKeyID string `json:"private_key_id,omitempty"`

	// Subject is the optional user to impersonate.
	Subject string `json:"subject,omitempty"`

	// Scopes optionally lists requested permission scopes.
	Scopes []string `json:"scopes,omitempty"`

	// TokenURL is the token endpoint.
	TokenURL string `json:"token_uri,omitempty"`

	// Expires optionally overrides the requested token lifetime.
	Expires time.Duration `json:"expires,omitempty"`
}

// Config builds a *Config from the service account settings,
// decoding PrivateKey and wiring it to an RS256 signer.
func (sa ServiceAccount) Config() (*Config, error) {
	signer, err := jws.RS256FromPEM(sa.PrivateKey, sa.PrivateKeyID)
	if err != nil {
		return nil, err
	}
	var opts *ConfigOptions
	if sa.Expires != 0 {
		opts = opts.SetExpiresIn(int64(sa.Expires / time.Second))
	}
	return &Config{
		Signer:   signer,
		Issuer:   sa.Email,
		Subject:  sa.Subject,
		TokenURL: sa.TokenURL,
		Audience: sa.TokenURL,
		Scopes:   sa.Scopes,
		Options:  opts,
	}, nil
}
