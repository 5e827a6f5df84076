// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package statuscake

import (
	"errors"

	"github.com/trbs/statuscake/account"
	"github.com/trbs/statuscake/auth"
	"github.com/trbs/statuscake/common"
	"github.com/trbs/statuscake/contactgroup"
	"github.com/trbs/statuscake/uptime"
)

// DefaultEndpointURI is the base URI of the legacy API surface.
const DefaultEndpointURI = "https://www.statuscake.com/API"

// API bundles the per-area services over a single shared client, so a caller
// only wires credentials once. The zero value is not usable; construct one
// with New or NewWithClient.
type API struct {
	Uptime        *uptime.Service
	ContactGroups *contactgroup.Service
	Account       *account.Service
}

// New creates an API handle for the default endpoint, authenticating with
// the supplied API key / account username pair. Both are required.
func New(apiKey, apiUser string) (*API, error) {
	if apiKey == "" {
		return nil, &common.ConfigurationError{Reason: "missing API key"}
	}

	if apiUser == "" {
		return nil, &common.ConfigurationError{Reason: "missing API username"}
	}

	client := common.NewClient()
	client.Auth = &auth.KeyPairAuthenticator{APIKey: apiKey, Username: apiUser}

	return NewWithClient(client, DefaultEndpointURI)
}

// NewWithClient creates an API handle from a caller-supplied client, for
// example one with a custom TLS transport or a different authenticator, and
// an explicit endpoint URI.
func NewWithClient(client *common.Client, uri string) (*API, error) {
	if client == nil {
		return nil, errors.New("no client supplied")
	}

	up, err := uptime.NewService(uri)
	if err != nil {
		return nil, err
	}
	if err := up.SetClient(client); err != nil {
		return nil, err
	}

	groups, err := contactgroup.NewService(uri)
	if err != nil {
		return nil, err
	}
	if err := groups.SetClient(client); err != nil {
		return nil, err
	}

	acct, err := account.NewService(uri)
	if err != nil {
		return nil, err
	}
	if err := acct.SetClient(client); err != nil {
		return nil, err
	}

	return &API{
		Uptime:        up,
		ContactGroups: groups,
		Account:       acct,
	}, nil
}
