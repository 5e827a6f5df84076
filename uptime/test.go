// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package uptime

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/trbs/statuscake/common"
)

// Test types accepted by the service.
const (
	TestTypeHTTP = "HTTP"
	TestTypeTCP  = "TCP"
	TestTypePING = "PING"
)

// Test models an uptime test. The same type is used for records decoded
// from the service and for create/update submissions; when submitted,
// zero-valued fields are omitted from the form.
type Test struct {
	// TestID is the unique identifier of the test. Required for updates,
	// assigned by the service on create.
	TestID int `json:"TestID,omitempty"`

	// Paused stops checks from running without deleting the test.
	Paused bool `json:"Paused,omitempty"`

	// WebsiteName is the display name of the test. Required on create.
	WebsiteName string `json:"WebsiteName,omitempty"`

	// WebsiteURL is the URL or host being monitored. Required on create.
	WebsiteURL string `json:"WebsiteURL,omitempty"`

	// Port to connect to, for TCP tests.
	Port int `json:"Port,omitempty"`

	// NodeLocations restricts the test to the given node server codes.
	NodeLocations []string `json:"NodeLocations,omitempty"`

	// Timeout in seconds, 5 to 100.
	Timeout int `json:"Timeout,omitempty"`

	// PingURL is hit whenever an alert triggers.
	PingURL string `json:"PingURL,omitempty"`

	// Confirmation is the number of confirmation servers, 0 to 10.
	Confirmation int `json:"Confirmation,omitempty"`

	// CheckRate is the number of seconds between checks, up to 24000.
	CheckRate int `json:"CheckRate,omitempty"`

	BasicUser string `json:"BasicUser,omitempty"`
	BasicPass string `json:"BasicPass,omitempty"`

	// Public exposes the test on the public reporting page.
	Public bool `json:"Public,omitempty"`

	LogoImage   string `json:"LogoImage,omitempty"`
	Branding    bool   `json:"Branding,omitempty"`
	WebsiteHost string `json:"WebsiteHost,omitempty"`
	Virus       bool   `json:"Virus,omitempty"`

	// FindString is searched for in the response body; DoNotFind inverts
	// the match.
	FindString string `json:"FindString,omitempty"`
	DoNotFind  bool   `json:"DoNotFind,omitempty"`

	// TestType is one of HTTP, TCP or PING. Required on create.
	TestType string `json:"TestType,omitempty"`

	// ContactGroup is the ID of the contact group to alert.
	ContactGroup int `json:"ContactGroup,omitempty"`

	RealBrowser bool `json:"RealBrowser,omitempty"`

	// TriggerRate is the number of minutes a test must be down before an
	// alert triggers, 0 to 60.
	TriggerRate int `json:"TriggerRate,omitempty"`

	TestTags []string `json:"TestTags,omitempty"`

	// Read-only fields reported by the service.
	Status string  `json:"Status,omitempty"`
	Uptime float64 `json:"Uptime,omitempty"`
}

func (t Test) validate() error {
	switch t.TestType {
	case "", TestTypeHTTP, TestTypeTCP, TestTypePING:
	default:
		return invalidField(fmt.Sprintf(
			"TestType must be one of HTTP, TCP or PING, got %q", t.TestType))
	}

	if t.Timeout != 0 && (t.Timeout < 5 || t.Timeout > 100) {
		return invalidField("Timeout must be between 5 and 100")
	}

	if t.Confirmation < 0 || t.Confirmation > 10 {
		return invalidField("Confirmation must be between 0 and 10")
	}

	if t.CheckRate < 0 || t.CheckRate > 24000 {
		return invalidField("CheckRate must be between 0 and 24000")
	}

	if t.TriggerRate < 0 || t.TriggerRate > 60 {
		return invalidField("TriggerRate must be between 0 and 60")
	}

	return nil
}

func (t Test) validateCreate() error {
	if t.WebsiteName == "" {
		return invalidField("WebsiteName missing")
	}

	if t.WebsiteURL == "" {
		return invalidField("WebsiteURL missing")
	}

	if t.TestType == "" {
		return invalidField("TestType missing")
	}

	return t.validate()
}

func (t Test) validateUpdate() error {
	if t.TestID == 0 {
		return invalidField("TestID missing")
	}

	return t.validate()
}

// values encodes the test for submission to the update endpoint.
func (t Test) values() url.Values {
	v := url.Values{}

	setString := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	setInt := func(key string, val int) {
		if val != 0 {
			v.Set(key, strconv.Itoa(val))
		}
	}
	setFlag := func(key string, val bool) {
		if val {
			v.Set(key, "1")
		}
	}

	setInt("TestID", t.TestID)
	setFlag("Paused", t.Paused)
	setString("WebsiteName", t.WebsiteName)
	setString("WebsiteURL", t.WebsiteURL)
	setInt("Port", t.Port)
	setString("NodeLocations", common.CommaList(t.NodeLocations))
	setInt("Timeout", t.Timeout)
	setString("PingURL", t.PingURL)
	setInt("Confirmation", t.Confirmation)
	setInt("CheckRate", t.CheckRate)
	setString("BasicUser", t.BasicUser)
	setString("BasicPass", t.BasicPass)
	setFlag("Public", t.Public)
	setString("LogoImage", t.LogoImage)
	setFlag("Branding", t.Branding)
	setString("WebsiteHost", t.WebsiteHost)
	setFlag("Virus", t.Virus)
	setString("FindString", t.FindString)
	setFlag("DoNotFind", t.DoNotFind)
	setString("TestType", t.TestType)
	setInt("ContactGroup", t.ContactGroup)
	setFlag("RealBrowser", t.RealBrowser)
	setInt("TriggerRate", t.TriggerRate)
	setString("TestTags", common.CommaList(t.TestTags))

	return v
}

func invalidField(msg string) error {
	return &common.InvalidRequestError{Message: msg}
}
