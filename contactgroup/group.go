// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package contactgroup

import (
	"net/url"
	"strconv"

	"github.com/trbs/statuscake/common"
)

// ContactGroup models a set of alert recipients. The JSON tags follow the
// response shape; submission uses the singular form field names, with
// list-valued fields joined into comma separated strings.
type ContactGroup struct {
	// ContactID is the unique identifier of the group. Required for
	// updates, assigned by the service on create.
	ContactID int `json:"ContactID,omitempty"`

	// GroupName is the display name of the group. Required on create.
	GroupName string `json:"GroupName"`

	DesktopAlert bool     `json:"DesktopAlert,omitempty"`
	Email        []string `json:"Emails,omitempty"`
	Boxcar       string   `json:"Boxcar,omitempty"`
	Pushover     string   `json:"Pushover,omitempty"`
	PingURL      string   `json:"PingURL,omitempty"`
	Mobile       []string `json:"Mobiles,omitempty"`
}

// values encodes the group for submission to the update endpoint,
// omitting zero-valued fields.
func (g ContactGroup) values() url.Values {
	v := url.Values{}

	if g.ContactID != 0 {
		v.Set("ContactID", strconv.Itoa(g.ContactID))
	}
	if g.GroupName != "" {
		v.Set("GroupName", g.GroupName)
	}
	if g.DesktopAlert {
		v.Set("DesktopAlert", "1")
	}
	if len(g.Email) > 0 {
		v.Set("Email", common.CommaList(g.Email))
	}
	if g.Boxcar != "" {
		v.Set("Boxcar", g.Boxcar)
	}
	if g.Pushover != "" {
		v.Set("Pushover", g.Pushover)
	}
	if g.PingURL != "" {
		v.Set("PingURL", g.PingURL)
	}
	if len(g.Mobile) > 0 {
		v.Set("Mobile", common.CommaList(g.Mobile))
	}

	return v
}
