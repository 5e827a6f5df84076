// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	cleanhttp "github.com/hashicorp/go-cleanhttp"

	"github.com/trbs/statuscake/auth"
)

const (
	// JSONMediaType is the content type of every legacy API response body.
	JSONMediaType = "application/json"

	// FormMediaType is the content type of mutation request bodies.
	FormMediaType = "application/x-www-form-urlencoded"

	userAgent = "statuscake-go"
)

// Client holds configuration data associated with the HTTP(s) session.
// Requests issued through the resource helpers carry the credential headers
// produced by Auth; a request is never sent when those cannot be produced.
type Client struct {
	HTTPClient http.Client
	Auth       auth.IAuthenticator
}

// NewClient instantiates a new Client with a pooled transport and the
// API's documented 10 second timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient: http.Client{
			Transport: cleanhttp.DefaultPooledTransport(),
			Timeout:   10 * time.Second,
		},
	}
}

// GetResource issues an authenticated GET against uri.
func (c Client) GetResource(accept, uri string) (*http.Response, error) {
	req, err := c.newRequest(http.MethodGet, uri, nil, "", accept, true)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// GetPublicResource issues a GET against uri without credential headers, for
// the handful of endpoints that do not require them.
func (c Client) GetPublicResource(accept, uri string) (*http.Response, error) {
	req, err := c.newRequest(http.MethodGet, uri, nil, "", accept, false)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// PutForm issues an authenticated form-encoded PUT against uri. The legacy
// API uses PUT with form bodies for both inserts and updates.
func (c Client) PutForm(data url.Values, accept, uri string) (*http.Response, error) {
	req, err := c.newRequest(
		http.MethodPut, uri, strings.NewReader(data.Encode()), FormMediaType, accept, true,
	)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// DeleteResource issues an authenticated DELETE against uri. The response is
// returned rather than discarded because the legacy API reports the outcome
// in a JSON body.
func (c Client) DeleteResource(accept, uri string) (*http.Response, error) {
	req, err := c.newRequest(http.MethodDelete, uri, nil, "", accept, true)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

func (c Client) newRequest(
	method, uri string,
	body io.Reader,
	ct, accept string,
	authenticated bool,
) (*http.Request, error) {
	req, err := http.NewRequest(method, uri, body)
	if err != nil {
		return nil, fmt.Errorf("%s %q, request creation failed: %w", method, uri, err)
	}

	if ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	if authenticated {
		if c.Auth == nil {
			return nil, &ConfigurationError{Reason: "no authenticator configured"}
		}

		headers, err := c.Auth.EncodeHeaders()
		if err != nil {
			return nil, &ConfigurationError{Reason: err.Error()}
		}

		for name, value := range headers {
			req.Header.Set(name, value)
		}
	}

	return req, nil
}

func (c Client) do(req *http.Request) (*http.Response, error) {
	hc := &c.HTTPClient

	res, err := hc.Do(req)
	if err != nil {
		return nil, &ServiceUnavailableError{Err: err}
	}

	return res, nil
}
