// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package uptime

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trbs/statuscake/common"
)

const testEndpointURI = "http://statuscake.example/API"

func newTestService(t *testing.T, h http.Handler) (*Service, func()) {
	t.Helper()

	client, teardown := common.NewTestingHTTPClient(h)

	svc, err := NewService(testEndpointURI)
	require.NoError(t, err)
	require.NoError(t, svc.SetClient(client))

	return svc, teardown
}

func TestNewService_bad_uri(t *testing.T) {
	_, err := NewService("statuscake.example/API")
	assert.EqualError(t, err, `URI is not absolute: "statuscake.example/API"`)
}

func TestService_GetAllTests_ok(t *testing.T) {
	requests := 0

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/API/Tests", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("API"))
		assert.Equal(t, "test-user", r.Header.Get("Username"))

		_, e := w.Write([]byte(`[
			{"TestID": 1, "WebsiteName": "example", "TestType": "HTTP", "Status": "Up", "Uptime": 99.98},
			{"TestID": 2, "WebsiteName": "backup", "TestType": "PING", "Status": "Down", "Paused": true}
		]`))
		require.Nil(t, e)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	tests, err := svc.GetAllTests()
	require.NoError(t, err)

	expected := []Test{
		{TestID: 1, WebsiteName: "example", TestType: TestTypeHTTP, Status: "Up", Uptime: 99.98},
		{TestID: 2, WebsiteName: "backup", TestType: TestTypePING, Status: "Down", Paused: true},
	}
	assert.Equal(t, expected, tests)
	assert.Equal(t, 1, requests)
}

func TestService_GetAllTests_unauthorized(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	_, err := svc.GetAllTests()

	var authErr *common.AuthenticationError
	require.ErrorAs(t, err, &authErr)
}

func TestService_GetAllTests_server_error(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	_, err := svc.GetAllTests()

	var svcErr *common.ServiceUnavailableError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
}

func TestService_GetAllTests_bad_body(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, e := w.Write([]byte(`<html>maintenance</html>`))
		require.Nil(t, e)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	_, err := svc.GetAllTests()

	var parseErr *common.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestService_GetTest_ok(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/API/Tests/Details", r.URL.Path)
		assert.Equal(t, "6489923", r.URL.Query().Get("TestID"))

		_, e := w.Write([]byte(`{
			"TestID": 6489923,
			"WebsiteName": "example",
			"WebsiteURL": "https://example.com",
			"TestType": "HTTP",
			"CheckRate": 300,
			"ContactGroup": 536,
			"Status": "Up"
		}`))
		require.Nil(t, e)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	tst, err := svc.GetTest(6489923)
	require.NoError(t, err)

	assert.Equal(t, 6489923, tst.TestID)
	assert.Equal(t, "https://example.com", tst.WebsiteURL)
	assert.Equal(t, 300, tst.CheckRate)
	assert.Equal(t, 536, tst.ContactGroup)
}

func TestService_CreateTest_ok(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/API/Tests/Update", r.URL.Path)
		assert.Equal(t, common.FormMediaType, r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "example", r.PostForm.Get("WebsiteName"))
		assert.Equal(t, "https://example.com", r.PostForm.Get("WebsiteURL"))
		assert.Equal(t, "HTTP", r.PostForm.Get("TestType"))
		assert.Equal(t, "300", r.PostForm.Get("CheckRate"))
		assert.Equal(t, "UK1,USNY3", r.PostForm.Get("NodeLocations"))
		assert.Empty(t, r.PostForm.Get("TestID"))

		_, e := w.Write([]byte(`{"Success": true, "Message": "Test Inserted", "InsertID": 6489923}`))
		require.Nil(t, e)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	result, err := svc.CreateTest(Test{
		WebsiteName:   "example",
		WebsiteURL:    "https://example.com",
		TestType:      TestTypeHTTP,
		CheckRate:     300,
		NodeLocations: []string{"UK1", "USNY3"},
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 6489923, result.InsertID)
}

func TestService_CreateTest_missing_fields(t *testing.T) {
	requests := 0

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	_, err := svc.CreateTest(Test{WebsiteURL: "https://example.com", TestType: TestTypeHTTP})

	var reqErr *common.InvalidRequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "WebsiteName missing", reqErr.Message)
	assert.Equal(t, 0, requests)
}

func TestService_UpdateTest_ok(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "6489923", r.PostForm.Get("TestID"))
		assert.Equal(t, "1", r.PostForm.Get("Paused"))

		_, e := w.Write([]byte(`{"Success": true, "Message": "Test Updated"}`))
		require.Nil(t, e)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	result, err := svc.UpdateTest(Test{TestID: 6489923, Paused: true})
	require.NoError(t, err)
	assert.Equal(t, "Test Updated", result.Message)
}

func TestService_UpdateTest_missing_id(t *testing.T) {
	svc, teardown := newTestService(t, http.NotFoundHandler())
	defer teardown()

	_, err := svc.UpdateTest(Test{Paused: true})

	var reqErr *common.InvalidRequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "TestID missing", reqErr.Message)
}

func TestService_DeleteTest_ok(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/API/Tests/Details", r.URL.Path)
		assert.Equal(t, "6489923", r.URL.Query().Get("TestID"))

		_, e := w.Write([]byte(`{"Success": true, "Message": "This Test Has Been Deleted"}`))
		require.Nil(t, e)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	require.NoError(t, svc.DeleteTest(6489923))
}

func TestService_DeleteTest_envelope_failure(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, e := w.Write([]byte(`{"ErrNo": 0, "Success": false, "Error": "Authentication Failed"}`))
		require.Nil(t, e)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	err := svc.DeleteTest(6489923)

	var authErr *common.AuthenticationError
	require.ErrorAs(t, err, &authErr)
}

func TestService_GetAlerts_ok(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/API/Alerts", r.URL.Path)
		assert.Equal(t, "6489923", r.URL.Query().Get("TestID"))

		_, e := w.Write([]byte(`[
			{"TestID": 6489923, "Status": "Down", "StatusCode": 500, "Triggered": "2026-08-20 12:00:01", "Unix": 1786968001}
		]`))
		require.Nil(t, e)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	alerts, err := svc.GetAlerts(6489923)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	assert.Equal(t, "Down", alerts[0].Status)
	assert.Equal(t, 500, alerts[0].StatusCode)
	assert.Equal(t, int64(1786968001), alerts[0].Unix)
}

func TestService_GetNodeLocations_ok(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/API/Locations/json", r.URL.Path)
		// Public endpoint, no credential headers.
		assert.Empty(t, r.Header.Get("API"))
		assert.Empty(t, r.Header.Get("Username"))

		_, e := w.Write([]byte(`{
			"UK1": {"guid": "g-1", "servercode": "UK1", "title": "England, London", "ip": "10.0.0.1", "countryiso": "GB", "status": "ACTIVE"}
		}`))
		require.Nil(t, e)
	})

	svc, teardown := newTestService(t, h)
	defer teardown()

	locations, err := svc.GetNodeLocations()
	require.NoError(t, err)
	require.Contains(t, locations, "UK1")

	assert.Equal(t, "England, London", locations["UK1"].Title)
	assert.Equal(t, "GB", locations["UK1"].CountryISO)
}
