// Copyright 2026 Contributors to the statuscake project.
// SPDX-License-Identifier: Apache-2.0

package uptime

// Alert is one entry in a test's alert log.
type Alert struct {
	TestID     int    `json:"TestID"`
	Status     string `json:"Status"`
	StatusCode int    `json:"StatusCode"`
	Triggered  string `json:"Triggered"`
	Unix       int64  `json:"Unix"`
}
