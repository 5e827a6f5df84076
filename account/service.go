// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/trbs/statuscake/common"
)

// UserDetails is the account profile reported by the auth endpoint.
type UserDetails struct {
	Username  string `json:"Username"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
}

// Service is the primary interface to the account/auth API.
type Service struct {
	// Client is the underlying client used for HTTP requests.
	Client *common.Client

	// EndPointURI is the top-level service API URL. Individual operations
	// endpoints are relative to this.
	EndPointURI *url.URL
}

// NewService creates a new Service instance using the provided endpoint
// URI and the default HTTP client.
func NewService(uri string) (*Service, error) {
	o := Service{Client: common.NewClient()}

	if err := o.SetEndpointURI(uri); err != nil {
		return nil, err
	}

	return &o, nil
}

// SetClient sets the HTTP(s) client connection configuration
func (o *Service) SetClient(client *common.Client) error {
	if client == nil {
		return errors.New("no client supplied")
	}
	o.Client = client
	return nil
}

// SetEndpointURI sets the URI of the service API endpoint.
func (o *Service) SetEndpointURI(uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("malformed URI: %w", err)
	}

	if !u.IsAbs() {
		return fmt.Errorf("URI is not absolute: %q", uri)
	}

	o.EndPointURI = u

	return nil
}

// Check verifies the configured credentials against the service. A nil
// return means the credentials are valid.
func (o *Service) Check() error {
	res, err := o.getAuth()
	if err != nil {
		return err
	}

	return common.DecodeJSONResponse(res, nil)
}

// UserDetails returns the profile of the authenticated account.
func (o *Service) UserDetails() (*UserDetails, error) {
	res, err := o.getAuth()
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Details UserDetails `json:"Details"`
	}
	if err := common.DecodeJSONResponse(res, &wrapper); err != nil {
		return nil, err
	}

	return &wrapper.Details, nil
}

func (o *Service) getAuth() (*http.Response, error) {
	getURI := o.EndPointURI.JoinPath("Auth")

	res, err := o.Client.GetResource(common.JSONMediaType, getURI.String())
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	return res, nil
}
