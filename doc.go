// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

/*
Package statuscake implements a client for the StatusCake uptime monitoring
REST API.

Getting started

The user constructs an API handle with the account's API key and username:

	sc, err := statuscake.New("my-api-key", "my-username")
	if err != nil { ... }

and then calls endpoint methods on the bundled services:

	tests, err := sc.Uptime.GetAllTests()
	if err != nil { ... }

	for _, t := range tests {
		fmt.Println(t.WebsiteName, t.Status)
	}

Each call issues exactly one synchronous HTTP request carrying the credential
headers, and returns either the decoded response or an error from the
taxonomy in the common package (ConfigurationError, AuthenticationError,
InvalidRequestError, ServiceUnavailableError, ParseError), matchable with
errors.As.

Creating and updating resources follows the legacy API's form-encoded
contract:

	result, err := sc.Uptime.CreateTest(uptime.Test{
		WebsiteName: "example",
		WebsiteURL:  "https://example.com",
		TestType:    uptime.TestTypeHTTP,
		CheckRate:   300,
	})
	if err != nil { ... }

	fmt.Println("created test", result.InsertID)

The user can also supply a custom Client object, for example to appropriately
configure the underlying TLS transport:

	transport, err := auth.NewTLSTransport("extra-ca.pem")
	if err != nil { ... }

	client := common.NewClient()
	client.HTTPClient.Transport = transport
	client.Auth = &auth.KeyPairAuthenticator{APIKey: key, Username: user}

	sc, err := statuscake.NewWithClient(client, statuscake.DefaultEndpointURI)
*/
package statuscake
