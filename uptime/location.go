// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package uptime

// NodeLocation describes one monitoring node. The locations endpoint keys
// its result set by server code.
type NodeLocation struct {
	GUID       string `json:"guid"`
	ServerCode string `json:"servercode"`
	Title      string `json:"title"`
	IP         string `json:"ip"`
	CountryISO string `json:"countryiso"`
	Status     string `json:"status"`
}
