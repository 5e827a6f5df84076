// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
)

// NewTLSTransport returns a pointer to a new http.Transport whose TLS config
// trusts the system roots plus the PEM certificates at the given paths.
func NewTLSTransport(certPaths ...string) (*http.Transport, error) {
	certPool, err := x509.SystemCertPool()
	if err != nil {
		return nil, err
	}

	for _, certPath := range certPaths {
		rawCert, err := os.ReadFile(certPath)
		if err != nil {
			return nil, fmt.Errorf("could not read cert: %w", err)
		}

		if ok := certPool.AppendCertsFromPEM(rawCert); !ok {
			return nil, fmt.Errorf("invalid cert in %s", certPath)
		}
	}

	return &http.Transport{
		TLSClientConfig: &tls.Config{
			RootCAs:    certPool,
			MinVersion: tls.VersionTLS12,
		},
	}, nil
}
