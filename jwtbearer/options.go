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
	"net/url"
	"time"
)

// ConfigOptions provides additional, rarely-used settings for a
// Config's token requests. The zero value (including a nil
// *ConfigOptions) is ready to use; every getter supplies a sensible
// default.
type ConfigOptions struct {
	// ExpiresIn specifies how many seconds the requested token should
	// be valid for. A server may ignore this. Defaults to one hour.
	// Use SetExpiresIn to set.
	ExpiresIn *int64

	// IatOffset is the number of seconds subtracted from the current
	// time to set the iat claim, tolerating a local clock running
	// fast of the token server's. Nil means DefaultExpiryDelta. Use
	// SetIatOffset to set.
	IatOffset *int64

	// ExpiryDelta determines how many seconds sooner a token should
	// be considered expired than its reported expires_in. Nil means
	// DefaultExpiryDelta. Use SetExpiryDelta to set.
	ExpiryDelta *int64

	// PrivateClaims adds additional private claims to the signed
	// assertion.
	PrivateClaims map[string]interface{}

	// FormValues adds additional fields to the token request body.
	FormValues url.Values

	// NewTokenFunc, if set, is called after a new Token is obtained
	// and may mutate it or return an error that aborts Token.
	NewTokenFunc func(context.Context, *Token, *Config) error
}

func (opts *ConfigOptions) getIatOffset() time.Duration {
	if opts == nil || opts.IatOffset == nil {
		return DefaultExpiryDelta
	}
	return time.Duration(*opts.IatOffset) * time.Second
}

func (opts *ConfigOptions) getExpiryDelta() time.Duration {
	if opts == nil || opts.ExpiryDelta == nil {
		return DefaultExpiryDelta
	}
	return time.Duration(*opts.ExpiryDelta) * time.Second
}

func (opts *ConfigOptions) getExpiresIn() time.Duration {
	if opts == nil || opts.ExpiresIn == nil {
		return time.Hour
	}
	return time.Duration(*opts.ExpiresIn) * time.Second
}

func (opts *ConfigOptions) getPrivateClaims() map[string]interface{} {
	if opts == nil {
		return nil
	}
	return opts.PrivateClaims
}

func (opts *ConfigOptions) getFormValues() url.Values {
	if opts == nil {
		return nil
	}
	return opts.FormValues
}

func (opts *ConfigOptions) postToken(ctx context.Context, tk *Token, c *Config) error {
	if opts == nil || opts.NewTokenFunc == nil {
		return nil
	}
	return opts.NewTokenFunc(ctx, tk, c)
}

// SetExpiresIn sets ExpiresIn, allocating opts if it is nil.
func (opts *ConfigOptions) SetExpiresIn(numOfSeconds int64) *ConfigOptions {
	if opts == nil {
		opts = &ConfigOptions{}
	}
	opts.ExpiresIn = &numOfSeconds
	return opts
}

// SetIatOffset sets IatOffset, allocating opts if it is nil.
func (opts *ConfigOptions) SetIatOffset(numOfSeconds int64) *ConfigOptions {
	if opts == nil {
		opts = &ConfigOptions{}
	}
	opts.IatOffset = &numOfSeconds
	return opts
}

// SetExpiryDelta sets ExpiryDelta, allocating opts if it is nil.
func (opts *ConfigOptions) SetExpiryDelta(numOfSeconds int64) *ConfigOptions {
	if opts == nil {
		opts = &ConfigOptions{}
	}
	opts.ExpiryDelta = &numOfSeconds
	return opts
}

// SetPrivateClaims sets PrivateClaims, allocating opts if it is nil.
func (opts *ConfigOptions) SetPrivateClaims(claims map[string]interface{}) *ConfigOptions {
	if opts == nil {
		opts = &ConfigOptions{}
	}
	opts.PrivateClaims = claims
	return opts
}

// SetFormValues sets FormValues, allocating opts if it is nil.
func (opts *ConfigOptions) SetFormValues(values url.Values) *ConfigOptions {
	if opts == nil {
		opts = &ConfigOptions{}
	}
	opts.FormValues = values
	return opts
}

// AddPrivateClaim adds a single private claim, allocating opts and
// its PrivateClaims map as needed.
func (opts *ConfigOptions) AddPrivateClaim(key string, value interface{}) *ConfigOptions {
	if opts == nil {
		return &ConfigOptions{PrivateClaims: map[string]interface{}{key: value}}
	}
	if opts.PrivateClaims == nil {
		opts.PrivateClaims = map[string]interface{}{key: value}
	} else {
		opts.PrivateClaims[key] = value
	}
	return opts
}

// AddFormValue adds a single form field, allocating opts and its
// FormValues as needed.
func (opts *ConfigOptions) AddFormValue(key, value string) *ConfigOptions {
	if opts == nil {
		return &ConfigOptions{FormValues: url.Values{key: []string{value}}}
	}
	if opts.FormValues == nil {
		opts.FormValues = url.Values{key: []string{value}}
	} else {
		opts.FormValues.Add(key, value)
	}
	return opts
}
