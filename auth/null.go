// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0
package auth

type NullAuthenticator struct{}

func (o *NullAuthenticator) Configure(cfg map[string]interface{}) error {
	return nil
}

func (o *NullAuthenticator) EncodeHeaders() (map[string]string, error) {
	return map[string]string{}, nil
}
