// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// Result models the JSON body returned by the legacy mutation endpoints
// (test and contact group inserts, updates and deletes).
type Result struct {
	Success  bool   `json:"Success"`
	Message  string `json:"Message"`
	InsertID int    `json:"InsertID"`
}

// apiEnvelope is the failure wrapper the legacy API folds into otherwise
// successful (HTTP 200) responses. A body is a failure when Success is
// explicitly false or an Error string is present.
type apiEnvelope struct {
	Success *bool  `json:"Success"`
	Error   string `json:"Error"`
	ErrNo   *int   `json:"ErrNo"`
	Message string `json:"Message"`
}

func (e apiEnvelope) failed() bool {
	return (e.Success != nil && !*e.Success) || e.Error != ""
}

func (e apiEnvelope) toError() error {
	msg := e.Error
	if msg == "" {
		msg = e.Message
	}

	if e.ErrNo != nil {
		switch *e.ErrNo {
		case 0:
			if msg == "" {
				msg = "authentication failed"
			}
			return &AuthenticationError{Message: msg}
		case 1:
			if msg == "" {
				msg = "account not linked"
			}
			return &AuthenticationError{Message: msg, NotLinked: true}
		}
	}

	if msg == "" {
		msg = "API call failed"
	}

	return &InvalidRequestError{Message: msg}
}

// DecodeJSONResponse decodes the response body into v after checking it for
// the legacy failure envelope. Passing a nil v checks the envelope only,
// which is all the delete and auth check endpoints need.
func DecodeJSONResponse(res *http.Response, v interface{}) error {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &ServiceUnavailableError{Err: err}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		if v == nil {
			return nil
		}
		return &ParseError{Err: errors.New("empty body")}
	}

	// The envelope only ever appears on object bodies; list responses
	// (all tests, contact groups, alerts) cannot carry it.
	if body[0] == '{' {
		var env apiEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return &ParseError{Err: err}
		}
		if env.failed() {
			return env.toError()
		}
	}

	if v == nil {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{Err: err}
	}

	return nil
}

// CommaList flattens a list-valued field into the comma separated form the
// legacy form endpoints expect.
func CommaList(values []string) string {
	return strings.Join(values, ",")
}
