// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2025 The LineageOS Project
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package client

import (
	"encoding/json"
)

type powerShareState struct {
	Enabled bool `json:"enabled"`
}

type minBatteryLevel struct {
	MinBattery int `json:"min-battery"`
}

// Enabled reports whether PowerShare is currently transmitting.
func (client *Client) Enabled() (bool, error) {
	var st powerShareState

	if err := client.doSync("GET", "/v1/powershare", nil, nil, &st); err != nil {
		return false, err
	}

	return st.Enabled, nil
}

// SetEnabled switches PowerShare transmission on or off. On devices
// without driver support this succeeds without effect; callers that
// care re-query Enabled.
func (client *Client) SetEnabled(enable bool) error {
	body, err := json.Marshal(powerShareState{Enabled: enable})
	if err != nil {
		return err
	}

	return client.doSync("PUT", "/v1/powershare", nil, body, nil)
}

// MinBattery returns the minimum battery percentage below which the
// driver stops transmitting.
func (client *Client) MinBattery() (int, error) {
	var lvl minBatteryLevel

	if err := client.doSync("GET", "/v1/powershare/min-battery", nil, nil, &lvl); err != nil {
		return 0, err
	}

	return lvl.MinBattery, nil
}

// SetMinBattery sets the minimum battery percentage.
func (client *Client) SetMinBattery(minBattery int) error {
	body, err := json.Marshal(minBatteryLevel{MinBattery: minBattery})
	if err != nil {
		return err
	}

	return client.doSync("PUT", "/v1/powershare/min-battery", nil, body, nil)
}
