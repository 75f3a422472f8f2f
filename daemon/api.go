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

package daemon

import (
	"encoding/json"
	"net/http"
)

var api = []*Command{
	rootCmd,
	sysInfoCmd,
	powerShareCmd,
	minBatteryCmd,
}

var (
	rootCmd = &Command{
		Path:    "/",
		GuestOK: true,
		GET:     getRoot,
	}

	sysInfoCmd = &Command{
		Path:    "/v1/system-info",
		GuestOK: true,
		GET:     getSystemInfo,
	}

	powerShareCmd = &Command{
		Path:   "/v1/powershare",
		UserOK: true,
		GET:    getPowerShare,
		PUT:    putPowerShare,
	}

	minBatteryCmd = &Command{
		Path:   "/v1/powershare/min-battery",
		UserOK: true,
		GET:    getMinBattery,
		PUT:    putMinBattery,
	}
)

func getRoot(c *Command, r *http.Request) Response {
	return SyncResponse([]string{"/v1"})
}

// systemInfoResult is the payload of /v1/system-info.
type systemInfoResult struct {
	Version     string `json:"version"`
	ControlPath string `json:"control-path"`
	// Supported reports whether the device kernel has the control
	// node at all; clients use it to hide the toggle entirely.
	Supported bool `json:"supported"`
}

func getSystemInfo(c *Command, r *http.Request) Response {
	return SyncResponse(systemInfoResult{
		Version:     c.d.Version,
		ControlPath: c.d.svc.Path(),
		Supported:   c.d.svc.Supported(),
	})
}

// powerShareState is both the GET result and the PUT request body of
// /v1/powershare.
type powerShareState struct {
	Enabled bool `json:"enabled"`
}

func getPowerShare(c *Command, r *http.Request) Response {
	return SyncResponse(powerShareState{
		Enabled: c.d.svc.IsEnabled(),
	})
}

func putPowerShare(c *Command, r *http.Request) Response {
	var st powerShareState

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&st); err != nil {
		return BadRequest("cannot decode request body into powershare state: %v", err)
	}

	// never fails towards the client; a write that did not take
	// effect is observable via the next GET
	c.d.svc.SetEnabled(st.Enabled)

	return SyncResponse(nil)
}

// minBatteryLevel is both the GET result and the PUT request body of
// /v1/powershare/min-battery.
type minBatteryLevel struct {
	MinBattery int `json:"min-battery"`
}

func getMinBattery(c *Command, r *http.Request) Response {
	return SyncResponse(minBatteryLevel{
		MinBattery: c.d.svc.MinBattery(),
	})
}

func putMinBattery(c *Command, r *http.Request) Response {
	var lvl minBatteryLevel

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&lvl); err != nil {
		return BadRequest("cannot decode request body into min battery level: %v", err)
	}

	c.d.svc.SetMinBattery(lvl.MinBattery)

	return SyncResponse(nil)
}
