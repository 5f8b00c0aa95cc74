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
	"fmt"
	"time"
)

// DefaultExpiryDelta is subtracted from a token's reported expiry so
// that Valid reports false a little before the issuing server would
// actually reject the token.
const DefaultExpiryDelta = 10 * time.Second

// Token is an access token returned by a JWT-bearer token exchange.
type Token struct {
	AccessToken string
	TokenType   string
	Expiry      time.Time

	raw map[string]interface{}
}

// Valid reports whether t is non-nil, carries an access token, and
// has not yet reached its expiry.
func (t *Token) Valid() bool {
	return t != nil && t.AccessToken != "" && !t.expired()
}

func (t *Token) expired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return t.Expiry.Round(0).Before(time.Now())
}

// Extra returns a value from the raw JSON token response, for fields
// this package does not surface directly (e.g. id_token).
func (t *Token) Extra(key string) interface{} {
	if t == nil || t.raw == nil {
		return nil
	}
	return t.raw[key]
}

// tokenFromMap builds a Token from a decoded token-endpoint JSON
// response, applying expiryDelta to the reported expires_in.
func tokenFromMap(vals map[string]interface{}, expiryDelta time.Duration) (*Token, error) {
	accessToken, _ := vals["access_token"].(string)
	if accessToken == "" {
		return nil, fmt.Errorf("jwtbearer: token response missing access_token")
	}
	tokenType, _ := vals["token_type"].(string)
	tk := &Token{
		AccessToken: accessToken,
		TokenType:   tokenType,
		raw:         vals,
	}
	if expiresIn, ok := numberValue(vals["expires_in"]); ok {
		tk.Expiry = time.Now().Add(time.Duration(expiresIn)*time.Second - expiryDelta)
	}
	return tk, nil
}

func numberValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case string:
		var f float64
		if _, err := fmt.Sscanf(n, "%f", &f); err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
