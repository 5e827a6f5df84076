// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package auth

import "fmt"

// Method is the enumeration of authentication methods supported by the
// StatusCake service. It implements the pflag.Value interface.
type Method string

const (
	MethodPassthrough Method = "passthrough"
	MethodKeyPair     Method = "keypair"
	MethodToken       Method = "token"
)

// String representation of the Method
func (o *Method) String() string {
	return string(*o)
}

// Set the value of the Method
func (o *Method) Set(v string) error {
	switch v {
	case "none", "passthrough":
		*o = MethodPassthrough
	case "keypair":
		*o = MethodKeyPair
	case "token":
		*o = MethodToken
	default:
		return fmt.Errorf("unexpected Method %q", v)
	}

	return nil
}

// Type returns the string representing the type name (used by pflag).
func (o *Method) Type() string {
	return "Method"
}
