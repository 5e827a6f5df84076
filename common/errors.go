// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/moogar0880/problems"
)

// ConfigurationError means the client was asked to issue a request without
// the credentials (or endpoint wiring) it needs. Nothing is sent.
type ConfigurationError struct {
	Reason string
}

func (o *ConfigurationError) Error() string {
	return fmt.Sprintf("bad configuration: %s", o.Reason)
}

// AuthenticationError means the service rejected the supplied credentials,
// either with an HTTP 401/403 or through the legacy failure envelope.
// NotLinked is set when the account exists but is not linked to the API.
type AuthenticationError struct {
	Message   string
	NotLinked bool
	Err       error
}

func (o *AuthenticationError) Error() string {
	if o.Message == "" {
		return "authentication failed"
	}
	return fmt.Sprintf("authentication failed: %s", o.Message)
}

func (o *AuthenticationError) Unwrap() error { return o.Err }

// InvalidRequestError means the request was malformed or named a resource
// the service does not know about. StatusCode is zero when the request was
// rejected client-side before being sent.
type InvalidRequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (o *InvalidRequestError) Error() string {
	if o.StatusCode != 0 {
		return fmt.Sprintf("invalid request (HTTP %d): %s", o.StatusCode, o.Message)
	}
	return fmt.Sprintf("invalid request: %s", o.Message)
}

func (o *InvalidRequestError) Unwrap() error { return o.Err }

// ServiceUnavailableError means the service answered with a 5xx or could not
// be reached at all. StatusCode is zero for transport-level failures.
type ServiceUnavailableError struct {
	StatusCode int
	Err        error
}

func (o *ServiceUnavailableError) Error() string {
	if o.StatusCode != 0 {
		return fmt.Sprintf("service unavailable (HTTP %d)", o.StatusCode)
	}
	return fmt.Sprintf("service unavailable: %v", o.Err)
}

func (o *ServiceUnavailableError) Unwrap() error { return o.Err }

// ParseError means the response body could not be decoded as the expected
// JSON shape.
type ParseError struct {
	Err error
}

func (o *ParseError) Error() string {
	return fmt.Sprintf("could not parse response body: %v", o.Err)
}

func (o *ParseError) Unwrap() error { return o.Err }

// ProblemError carries an RFC 7807 problem body returned by the service.
type ProblemError struct {
	problems.DefaultProblem
}

func (o *ProblemError) Error() string {
	return fmt.Sprintf("%d %s: %s", o.ProblemStatus(), o.ProblemTitle(), o.Detail)
}

// CheckResponse maps an unexpected HTTP status to the matching error,
// extracting the remote error message from a problem+json or legacy
// envelope body when one is present.
func CheckResponse(res *http.Response, expected ...int) error {
	for _, exp := range expected {
		if res.StatusCode == exp {
			return nil
		}
	}

	detail, cause := responseDetail(res)

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return &AuthenticationError{Message: detail, Err: cause}
	case res.StatusCode >= 400 && res.StatusCode < 500:
		return &InvalidRequestError{StatusCode: res.StatusCode, Message: detail, Err: cause}
	case res.StatusCode >= 500:
		return &ServiceUnavailableError{StatusCode: res.StatusCode, Err: cause}
	}

	return fmt.Errorf("unexpected HTTP response code %d", res.StatusCode)
}

// responseDetail drains the body of a failed response looking for a remote
// error message. Best effort: an unreadable or opaque body yields none.
func responseDetail(res *http.Response) (string, error) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", nil
	}

	if res.Header.Get("Content-Type") == problems.ProblemMediaType {
		var prob ProblemError
		if err := json.Unmarshal(body, &prob.DefaultProblem); err != nil {
			return "", nil
		}
		return prob.Detail, &prob
	}

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", nil
	}
	if env.Error != "" {
		return env.Error, nil
	}

	return env.Message, nil
}
