// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package uptime

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/trbs/statuscake/common"
)

// Service is the primary interface to the uptime test API.
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

// GetAllTests returns every uptime test on the account.
func (o *Service) GetAllTests() ([]Test, error) {
	getURI := o.EndPointURI.JoinPath("Tests")

	res, err := o.Client.GetResource(common.JSONMediaType, getURI.String())
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var tests []Test
	if err := common.DecodeJSONResponse(res, &tests); err != nil {
		return nil, err
	}

	return tests, nil
}

// GetTest returns the full detail record for the test with the supplied ID.
func (o *Service) GetTest(testID int) (*Test, error) {
	getURI := o.EndPointURI.JoinPath("Tests", "Details")
	getURI.RawQuery = testIDQuery(testID)

	res, err := o.Client.GetResource(common.JSONMediaType, getURI.String())
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var t Test
	if err := common.DecodeJSONResponse(res, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// CreateTest creates a new uptime test. WebsiteName, WebsiteURL and TestType
// are required. On success the returned Result carries the new test's ID in
// InsertID.
func (o *Service) CreateTest(t Test) (*common.Result, error) {
	if err := t.validateCreate(); err != nil {
		return nil, err
	}

	return o.putTest(t)
}

// UpdateTest updates an existing uptime test identified by its TestID.
func (o *Service) UpdateTest(t Test) (*common.Result, error) {
	if err := t.validateUpdate(); err != nil {
		return nil, err
	}

	return o.putTest(t)
}

// DeleteTest deletes the test with the supplied ID.
func (o *Service) DeleteTest(testID int) error {
	delURI := o.EndPointURI.JoinPath("Tests", "Details")
	delURI.RawQuery = testIDQuery(testID)

	res, err := o.Client.DeleteResource(common.JSONMediaType, delURI.String())
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return err
	}

	return common.DecodeJSONResponse(res, nil)
}

// GetAlerts returns the alert log for the test with the supplied ID, most
// recent first.
func (o *Service) GetAlerts(testID int) ([]Alert, error) {
	getURI := o.EndPointURI.JoinPath("Alerts")
	getURI.RawQuery = testIDQuery(testID)

	res, err := o.Client.GetResource(common.JSONMediaType, getURI.String())
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var alerts []Alert
	if err := common.DecodeJSONResponse(res, &alerts); err != nil {
		return nil, err
	}

	return alerts, nil
}

// GetNodeLocations returns the monitoring node locations keyed by server
// code. The endpoint is public and needs no credentials.
func (o *Service) GetNodeLocations() (map[string]NodeLocation, error) {
	getURI := o.EndPointURI.JoinPath("Locations", "json")

	res, err := o.Client.GetPublicResource(common.JSONMediaType, getURI.String())
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}

	if err := common.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var locations map[string]NodeLocation
	if err := common.DecodeJSONResponse(res, &locations); err != nil {
		return nil, err
	}

	return locations, nil
}

func (o *Service) putTest(t Test) (*common.Result, error) {
	putURI := o.EndPointURI.JoinPath("Tests", "Update")

	res, err := o.Client.PutForm(t.values(), common.JSONMediaType, putURI.String())
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

func testIDQuery(testID int) string {
	qvals := url.Values{}
	qvals.Add("TestID", strconv.Itoa(testID))
	return qvals.Encode()
}
