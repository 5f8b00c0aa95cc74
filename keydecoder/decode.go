// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keydecoder

import (
	"encoding/base64"
	"strings"
)

const (
	labelPKCS1 = "RSA PRIVATE KEY"
	labelPKCS8 = "PRIVATE KEY"
)

// Decode turns a PEM-armoured RSA private key into an *RSAPrivateKey.
// Only the unencrypted "RSA PRIVATE KEY" (PKCS#1) and "PRIVATE KEY"
// (PKCS#8 wrapping a PKCS#1 body) labels are accepted; any other
// label, including ENCRYPTED or PUBLIC KEY variants, is rejected with
// ErrUnsupportedKeyFormat.
func Decode(pem string) (*RSAPrivateKey, error) {
	label, body, err := splitPEM(pem)
	if err != nil {
		return nil, err
	}
	der, err := decodeBase64Body(body)
	if err != nil {
		return nil, err
	}
	switch label {
	case labelPKCS1:
		return parsePKCS1(der)
	case labelPKCS8:
		return parsePKCS8(der)
	default:
		return nil, ErrUnsupportedKeyFormat
	}
}

// splitPEM extracts the armour label and base64 body between the
// opening and closing five-dash delimiters. It does not validate the
// label beyond extracting it; Decode does that.
func splitPEM(pem string) (label, body string, err error) {
	const delim = "-----"
	start := strings.Index(pem, delim)
	if start < 0 {
		return "", "", ErrMalformedKey
	}
	afterStart := start + len(delim)
	beginEnd := strings.Index(pem[afterStart:], delim)
	if beginEnd < 0 {
		return "", "", ErrMalformedKey
	}
	header := pem[afterStart : afterStart+beginEnd]
	if !strings.HasPrefix(header, "BEGIN ") {
		return "", "", ErrMalformedKey
	}
	label = strings.TrimPrefix(header, "BEGIN ")
	bodyStart := afterStart + beginEnd + len(delim)

	footer := "-----END " + label + "-----"
	footerIdx := strings.Index(pem[bodyStart:], footer)
	if footerIdx < 0 {
		return "", "", ErrMalformedKey
	}
	return label, pem[bodyStart : bodyStart+footerIdx], nil
}

// decodeBase64Body strips all whitespace from a PEM body and base64
// decodes it into a DER byte buffer.
func decodeBase64Body(body string) ([]byte, error) {
	var b strings.Builder
	b.Grow(len(body))
	for _, r := range body {
		switch r {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			b.WriteRune(r)
		}
	}
	der, err := base64.StdEncoding.DecodeString(b.String())
	if err != nil {
		return nil, ErrMalformedKey
	}
	return der, nil
}
