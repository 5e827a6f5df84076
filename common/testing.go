// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"

	"github.com/trbs/statuscake/auth"
)

// NewTestingHTTPClient creates an HTTP test server (with a configurable
// request handler), an API Client and connects them together. Every request
// the client makes is dialed to the test server regardless of the URI host.
// The client and the server's shutdown switch are returned.
func NewTestingHTTPClient(handler http.Handler) (cli *Client, closerFn func()) {
	srv := httptest.NewServer(handler)

	cli = &Client{
		HTTPClient: http.Client{
			Transport: &http.Transport{
				DialContext: func(_ context.Context, network, _ string) (net.Conn, error) {
					return net.Dial(network, srv.Listener.Addr().String())
				},
			},
		},
		Auth: &auth.KeyPairAuthenticator{APIKey: "test-key", Username: "test-user"},
	}

	closerFn = srv.Close

	return
}
