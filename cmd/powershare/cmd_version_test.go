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

package main

import (
	"fmt"
	"net/http"

	. "gopkg.in/check.v1"

	"github.com/lineage-devices/powershared/cmd"
)

type versionSuite struct {
	BasePowerShareSuite
}

var _ = Suite(&versionSuite{})

func (s *versionSuite) TestVersion(c *C) {
	restore := cmd.MockVersion("4.56")
	defer restore()

	s.RedirectClientToTestServer(func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/v1/system-info")
		fmt.Fprintln(w, `{"type": "sync", "status-code": 200, "result": {"version": "7.89"}}`)
	})

	c.Assert(RunMain([]string{"version"}), IsNil)
	c.Check(s.Stdout(), Equals, "powershare   4.56\npowershared  7.89\n")
}

func (s *versionSuite) TestVersionDaemonUnavailable(c *C) {
	restore := cmd.MockVersion("4.56")
	defer restore()

	s.RedirectClientToTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintln(w, `{"type": "error", "status-code": 500, "result": {"message": "boom"}}`)
	})

	c.Assert(RunMain([]string{"version"}), IsNil)
	c.Check(s.Stdout(), Equals, "powershare   4.56\npowershared  unavailable\n")
}
