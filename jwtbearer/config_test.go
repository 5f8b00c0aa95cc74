// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jwtbearer_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/jfcote87/rsajwt/jws"
	"github.com/jfcote87/rsajwt/jwtbearer"
	"github.com/jfcote87/testutils"
)

const tokenSuccessResponse = `{
	"access_token": "ISSUED_ACCESS_TOKEN",
	"token_type": "Bearer",
	"expires_in": 3600
}`

func loadSigner(t *testing.T) jws.Signer {
	t.Helper()
	b, err := os.ReadFile("testdata/rsa2048_pkcs1.pem")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	signer, err := jws.RS256FromPEM(string(b), "key-1")
	if err != nil {
		t.Fatalf("RS256FromPEM: %v", err)
	}
	return signer
}

func testConfig(t *testing.T, rt http.RoundTripper) *jwtbearer.Config {
	t.Helper()
	clx := &http.Client{Transport: rt}
	return &jwtbearer.Config{
		Signer:   loadSigner(t),
		Issuer:   "service-account@example.com",
		Audience: "https://example.com/oauth/token",
		TokenURL: "https://example.com/oauth/token",
		Scopes:   []string{"scope.a", "scope.b"},
		HTTPClientFunc: func(ctx context.Context) (*http.Client, error) {
			return clx, nil
		},
	}
}

func TestConfigToken(t *testing.T) {
	rt := &testutils.Transport{
		Queue: []*testutils.RequestTester{
			{
				Path:   "/oauth/token",
				Method: "POST",
				Response: testutils.MakeResponse(
					http.StatusOK, []byte(tokenSuccessResponse), nil),
			},
		},
	}
	cfg := testConfig(t, rt)
	tk, err := cfg.Token(context.Background())
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tk.AccessToken != "ISSUED_ACCESS_TOKEN" {
		t.Errorf("AccessToken = %q; want ISSUED_ACCESS_TOKEN", tk.AccessToken)
	}
	if !tk.Valid() {
		t.Error("token reported invalid immediately after issuance")
	}
}

func TestConfigTokenServerError(t *testing.T) {
	rt := &testutils.Transport{
		Queue: []*testutils.RequestTester{
			{
				Response: testutils.MakeResponse(
					http.StatusUnauthorized, []byte(`{"error":"invalid_grant"}`), nil),
			},
		},
	}
	cfg := testConfig(t, rt)
	if _, err := cfg.Token(context.Background()); err == nil {
		t.Error("Token succeeded against a non-2xx response")
	}
}

func TestServiceAccountConfig(t *testing.T) {
	b, err := os.ReadFile("testdata/rsa2048_pkcs1.pem")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	sa := jwtbearer.ServiceAccount{
		Email:        "service-account@example.com",
		PrivateKey:   string(b),
		PrivateKeyID: "key-1",
		TokenURL:     "https://example.com/oauth/token",
	}
	cfg, err := sa.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.Issuer != sa.Email {
		t.Errorf("Issuer = %q; want %q", cfg.Issuer, sa.Email)
	}
	if cfg.Audience != sa.TokenURL {
		t.Errorf("Audience = %q; want %q", cfg.Audience, sa.TokenURL)
	}
}
