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
	"sync"
)

// TokenSource returns a Token. The TokenSource built by
// NewTokenSource signs and exchanges a fresh assertion only when the
// previously returned Token has expired, and is safe for concurrent
// use.
type TokenSource interface {
	Token(context.Context) (*Token, error)
}

// configTokenSource adapts *Config to TokenSource by issuing a new
// assertion on every call.
type configTokenSource struct {
	cfg *Config
}

func (s configTokenSource) Token(ctx context.Context) (*Token, error) {
	return s.cfg.Token(ctx)
}

// cachedToken holds a single Token in memory, refreshing it from new
// only once the cached copy's Valid reports false.
type cachedToken struct {
	new TokenSource

	mu sync.Mutex
	t  *Token
}

func (s *cachedToken) Token(ctx context.Context) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.t.Valid() {
		return s.t, nil
	}
	t, err := s.new.Token(ctx)
	if err != nil {
		return nil, err
	}
	s.t = t
	return t, nil
}

// NewTokenSource returns a TokenSource that repeatedly returns the
// same Token as long as it remains valid, obtaining a new one from
// cfg only when it expires. The initial token t may be nil.
func NewTokenSource(t *Token, cfg *Config) TokenSource {
	return &cachedToken{t: t, new: configTokenSource{cfg: cfg}}
}
