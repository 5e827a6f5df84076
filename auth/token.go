// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// TokenAuthenticator carries a pre-issued personal access token, sent as a
// bearer Authorization header. Accounts on the newer API surface use this in
// place of the key pair.
type TokenAuthenticator struct {
	Token string
}

func (o *TokenAuthenticator) Configure(cfg map[string]interface{}) error {
	decoded := struct {
		Token string                 `mapstructure:"token"`
		Rest  map[string]interface{} `mapstructure:",remain"`
	}{}

	if err := mapstructure.Decode(cfg, &decoded); err != nil {
		return err
	}

	o.Token = decoded.Token

	if err := o.validate(); err != nil {
		return err
	}

	if len(decoded.Rest) > 0 {
		var unexpected []string
		for k := range decoded.Rest {
			unexpected = append(unexpected, k)
		}
		return fmt.Errorf("unexpected fields in config: %s",
			strings.Join(unexpected, ", "))
	}

	return nil
}

func (o *TokenAuthenticator) EncodeHeaders() (map[string]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", o.Token),
	}, nil
}

func (o *TokenAuthenticator) validate() error {
	if o.Token == "" {
		return errors.New("missing token")
	}

	return nil
}
