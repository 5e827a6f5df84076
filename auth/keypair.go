// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// KeyPairAuthenticator carries the legacy API key / account username pair.
// The pair is sent as the API and Username request headers.
type KeyPairAuthenticator struct {
	APIKey   string
	Username string
}

func (o *KeyPairAuthenticator) Configure(cfg map[string]interface{}) error {
	decoded := struct {
		APIKey   string                 `mapstructure:"api_key"`
		Username string                 `mapstructure:"username"`
		Rest     map[string]interface{} `mapstructure:",remain"`
	}{}

	if err := mapstructure.Decode(cfg, &decoded); err != nil {
		return err
	}

	o.APIKey = decoded.APIKey
	o.Username = decoded.Username

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

func (o *KeyPairAuthenticator) EncodeHeaders() (map[string]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	return map[string]string{
		"API":      o.APIKey,
		"Username": o.Username,
	}, nil
}

func (o *KeyPairAuthenticator) validate() error {
	if o.APIKey == "" {
		return errors.New("missing api_key")
	}

	if o.Username == "" {
		return errors.New("missing username")
	}

	return nil
}
