// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jws

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jfcote87/rsajwt/keydecoder"
	"github.com/jfcote87/rsajwt/rs256"
)

// ClaimSet contains the permissions being requested (scopes), the
// target of the assertion, the issuer, the time the token was issued,
// and the assertion's lifetime. See https://tools.ietf.org/html/rfc7519.
type ClaimSet struct {
	Issuer    string // iss: client_id of the application making the request
	Audience  string // aud: descriptor of the intended target of the assertion
	ExpiresAt int64  // exp: expiration time, seconds since Unix epoch
	IssuedAt  int64  // iat: issued-at time, seconds since Unix epoch
	NotBefore int64  // nbf: time before which the JWT must not be accepted (optional)
	ID        string // jti: unique identifier for the JWT (optional)
	Subject   string // sub: email/user ID for delegated access (optional)

	// PrivateClaims is marshalled flattened alongside the named
	// claims above; see MarshalJSON.
	PrivateClaims map[string]interface{}
}

// MarshalJSON flattens PrivateClaims into the top-level JSON object
// alongside the named claims.
func (c *ClaimSet) MarshalJSON() ([]byte, error) {
	pc := make(map[string]interface{})
	keys := []string{"iss", "aud", "jti", "sub"}
	for i, v := range []string{c.Issuer, c.Audience, c.ID, c.Subject} {
		if v != "" {
			pc[keys[i]] = v
		}
	}
	keys = []string{"exp", "iat", "nbf"}
	for i, v := range []int64{c.ExpiresAt, c.IssuedAt, c.NotBefore} {
		if v > 0 {
			pc[keys[i]] = v
		}
	}
	for k, v := range c.PrivateClaims {
		pc[k] = v
	}
	return json.Marshal(pc)
}

// SetExpirationClaims sets IssuedAt and ExpiresAt relative to now,
// subtracting startOffset from the issued-at time to tolerate a
// caller's clock running fast of the verifying server.
func (c *ClaimSet) SetExpirationClaims(startOffset, tokenDuration time.Duration) error {
	if c == nil {
		return errors.New("jws: nil ClaimSet")
	}
	now := time.Now().Add(-startOffset)
	c.IssuedAt = now.Unix()
	c.ExpiresAt = now.Add(tokenDuration).Unix()
	if c.ExpiresAt <= c.IssuedAt {
		return fmt.Errorf("jws: invalid exp = %v; must be later than iat = %v", c.ExpiresAt, c.IssuedAt)
	}
	return nil
}

// Signer signs the header-and-payload content of a JWT and supplies
// its own pre-encoded header bytes.
type Signer interface {
	Sign([]byte) ([]byte, error)
	Header() []byte
}

// JWT assembles a compact JWS: base64url(header) + "." +
// base64url(payload) + "." + base64url(signature).
func (c *ClaimSet) JWT(signer Signer) (string, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	encodedPayload := make([]byte, base64.RawURLEncoding.EncodedLen(len(payload))+1)
	base64.RawURLEncoding.Encode(encodedPayload[1:], payload)
	encodedPayload[0] = '.'
	contentData := append(signer.Header(), encodedPayload...)
	sig, err := signer.Sign(contentData)
	if err != nil {
		return "", err
	}
	return string(contentData) + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

func encodeHeader(keyID string) []byte {
	hdr := struct {
		Alg string `json:"alg"`
		Typ string `json:"typ"`
		Kid string `json:"kid,omitempty"`
	}{"RS256", "JWT", keyID}
	hdrBytes, _ := json.Marshal(hdr)
	encoded := make([]byte, base64.RawURLEncoding.EncodedLen(len(hdrBytes)))
	base64.RawURLEncoding.Encode(encoded, hdrBytes)
	return encoded
}

// rsaSigner implements Signer over a decoded RSA private key using
// this project's hand-rolled RS256 engine.
type rsaSigner struct {
	key    *keydecoder.RSAPrivateKey
	header []byte
}

func (rs *rsaSigner) Sign(data []byte) ([]byte, error) {
	return rs256.Sign(rs.key, data)
}

func (rs *rsaSigner) Header() []byte {
	return rs.header
}

// RS256 returns a Signer for an already-decoded RSA private key.
func RS256(key *keydecoder.RSAPrivateKey, keyID string) Signer {
	return &rsaSigner{key: key, header: encodeHeader(keyID)}
}

// RS256FromPEM decodes pem (PKCS#1 or PKCS#8, unencrypted) via
// keydecoder.Decode and returns a Signer for it.
func RS256FromPEM(pem string, keyID string) (Signer, error) {
	key, err := keydecoder.Decode(pem)
	if err != nil {
		return nil, err
	}
	return RS256(key, keyID), nil
}

// Verifier reports whether signature is a valid signature of content.
type Verifier func(signature, content []byte) bool

// RS256Verifier verifies using the modulus and public exponent
// carried by an already-decoded RSA private key — the degenerate
// verify-with-private-key path; this package does not decode a
// standalone SubjectPublicKeyInfo.
func RS256Verifier(key *keydecoder.RSAPrivateKey) Verifier {
	return func(signature, content []byte) bool {
		return rs256.Verify(key, content, signature)
	}
}

// Verify checks the signature of a compact JWS token string.
func Verify(token string, v Verifier) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return errors.New("jws: invalid token, must have 3 parts")
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return err
	}
	signedContent := parts[0] + "." + parts[1]
	if !v(sig, []byte(signedContent)) {
		return errors.New("jws: invalid signature")
	}
	return nil
}
