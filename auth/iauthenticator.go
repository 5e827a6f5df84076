// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0
package auth

// IAuthenticator produces the credential headers attached to outgoing
// requests. EncodeHeaders fails when the authenticator is missing any of the
// fields it needs, which keeps incomplete credentials off the wire.
type IAuthenticator interface {
	Configure(cfg map[string]interface{}) error
	EncodeHeaders() (map[string]string, error)
}
