// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jwtbearer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jfcote87/rsajwt/ctxclient"
	"github.com/jfcote87/rsajwt/jws"
)

const grantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// Config holds the settings needed to obtain an access token using
// the two-legged JWT-bearer grant.
type Config struct {
	// Signer signs the JWT header and claim set.
	Signer jws.Signer

	// Issuer is the OAuth client identifier — typically a service
	// account's email address.
	Issuer string

	// Subject is the optional user to impersonate.
	Subject string

	// TokenURL is the token endpoint that completes the grant.
	TokenURL string

	// Audience fills the claim set's aud field. For most providers
	// this matches TokenURL.
	Audience string

	// Scopes is included as a space-joined "scope" private claim
	// when non-empty.
	Scopes []string

	// Options holds rarely-used settings; nil is fine.
	Options *ConfigOptions

	// HTTPClientFunc selects the *http.Client used for the token
	// request. Nil uses http.DefaultClient.
	HTTPClientFunc ctxclient.Func
}

func (c *Config) payload() (url.Values, error) {
	privateClaims := make(map[string]interface{})
	for k, v := range c.Options.getPrivateClaims() {
		privateClaims[k] = v
	}
	if len(c.Scopes) > 0 {
		privateClaims["scope"] = strings.Join(c.Scopes, " ")
	}

	claimSet := &jws.ClaimSet{
		Issuer:        c.Issuer,
		Audience:      c.Audience,
		Subject:       c.Subject,
		PrivateClaims: privateClaims,
	}
	if err := claimSet.SetExpirationClaims(c.Options.getIatOffset(), c.Options.getExpiresIn()); err != nil {
		return nil, err
	}

	assertion, err := claimSet.JWT(c.Signer)
	if err != nil {
		return nil, err
	}
	formValues := url.Values{
		"grant_type": {grantType},
		"assertion":  {assertion},
	}
	for k, v := range c.Options.getFormValues() {
		formValues[k] = v
	}
	return formValues, nil
}

// Token signs a fresh assertion and exchanges it for an access token.
func (c *Config) Token(ctx context.Context) (*Token, error) {
	payload, err := c.payload()
	if err != nil {
		return nil, fmt.Errorf("jwtbearer: %w", err)
	}
	resp, err := c.HTTPClientFunc.PostForm(ctx, c.TokenURL, payload)
	if err != nil {
		return nil, fmt.Errorf("jwtbearer: cannot fetch token: %w", err)
	}
	defer resp.Body.Close()
	raw := make(map[string]interface{})
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("jwtbearer: cannot decode token response: %w", err)
	}
	tk, err := tokenFromMap(raw, c.Options.getExpiryDelta())
	if err != nil {
		return nil, err
	}
	return tk, c.Options.postToken(ctx, tk, c)
}
