// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package contactgroup

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/trbs/statuscake/common"
)

// Service is the primary interface to the contact group API.
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

// List returns every contact group on the account.
func (o *Service) List() ([]ContactGroup, error) {
	getURI := o.EndPointURI.JoinPath("ContactGroups")

	res, err := o.Client.GetResource(common.JSONMediaType, getURI.String())
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var groups []ContactGroup
	if err := common.DecodeJSONResponse(res, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// Create creates a new contact group. GroupName is required. On success the
// returned Result carries the new group's ID in InsertID.
func (o *Service) Create(g ContactGroup) (*common.Result, error) {
	if g.GroupName == "" {
		return nil, &common.InvalidRequestError{Message: "GroupName missing"}
	}

	return o.putGroup(g)
}

// Update updates an existing contact group identified by its ContactID.
func (o *Service) Update(g ContactGroup) (*common.Result, error) {
	if g.ContactID == 0 {
		return nil, &common.InvalidRequestError{Message: "ContactID missing"}
	}

	return o.putGroup(g)
}

func (o *Service) putGroup(g ContactGroup) (*common.Result, error) {
	putURI := o.EndPointURI.JoinPath("ContactGroups", "Update")

	res, err := o.Client.PutForm(g.values(), common.JSONMediaType, putURI.String())
	if err != nil {
		return nil, fmt.Errorf("put request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var result common.Result
	if err := common.DecodeJSONResponse(res, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
