// Copyright 2019 James Cote All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctxclient

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
)

// Func returns the http.Client to use for a request made under ctx.
// A nil Func means "use http.DefaultClient".
type Func func(ctx context.Context) (*http.Client, error)

// Client returns f's client, or http.DefaultClient if f is nil. If f
// returns an error, the returned client's Transport is an
// ErrorTransport that fails every request with that error.
func (f Func) Client(ctx context.Context) *http.Client {
	if f == nil {
		return http.DefaultClient
	}
	cl, err := f(ctx)
	if err != nil {
		return &http.Client{Transport: &ErrorTransport{Err: err}}
	}
	if cl == nil {
		return http.DefaultClient
	}
	return cl
}

func do(ctx context.Context, cl *http.Client, req *http.Request) (*http.Response, error) {
	res, err := cl.Do(req.WithContext(ctx))
	if err != nil {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		return nil, err
	}
	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return res, nil
	}
	buff, readErr := ioutil.ReadAll(res.Body)
	if readErr != nil {
		buff = []byte(readErr.Error())
	}
	res.Body.Close()
	return nil, &NotSuccess{
		StatusCode:    res.StatusCode,
		StatusMessage: res.Status,
		Header:        res.Header,
		Body:          buff,
	}
}

// Do sends req using the client f selects, wrapping a non-2xx
// response as a *NotSuccess error. ctx must be non-nil.
func (f Func) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	return do(ctx, f.Client(ctx), req)
}

// PostForm issues a POST of payload as an
// application/x-www-form-urlencoded body, using the client f selects.
func (f Func) PostForm(ctx context.Context, postURL string, payload url.Values) (*http.Response, error) {
	req, err := newPostFormRequest(postURL, payload)
	if err != nil {
		return nil, err
	}
	return do(ctx, f.Client(ctx), req)
}

func newPostFormRequest(postURL string, data url.Values) (*http.Request, error) {
	req, err := http.NewRequest("POST", postURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

// NotSuccess holds the body of a non-2xx HTTP response.
type NotSuccess struct {
	StatusCode    int
	StatusMessage string
	Body          []byte
	Header        http.Header
}

func (re NotSuccess) Error() string {
	return fmt.Sprintf("response returned %d %s: %s", re.StatusCode, re.StatusMessage, string(re.Body))
}

// ErrorTransport always fails a RoundTrip with the embedded error,
// for deferring HTTP client selection errors to request time.
type ErrorTransport struct{ Err error }

func (t *ErrorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req != nil && req.Body != nil {
		req.Body.Close()
	}
	return nil, t.Err
}
