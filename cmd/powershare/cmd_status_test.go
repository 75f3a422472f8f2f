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
)

type statusSuite struct {
	BasePowerShareSuite
}

var _ = Suite(&statusSuite{})

func (s *statusSuite) redirectWithState(c *C, supported, enabled bool) {
	s.RedirectClientToTestServer(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/system-info":
			fmt.Fprintf(w, `{"type": "sync", "status-code": 200, "result": {"version": "1.0", "supported": %v}}`, supported)
		case "/v1/powershare":
			fmt.Fprintf(w, `{"type": "sync", "status-code": 200, "result": {"enabled": %v}}`, enabled)
		default:
			c.Fatalf("unexpected path %q", r.URL.Path)
		}
	})
}

func (s *statusSuite) TestStatusEnabled(c *C) {
	s.redirectWithState(c, true, true)

	c.Assert(RunMain([]string{"status"}), IsNil)
	c.Check(s.Stdout(), Equals, "enabled\n")
	c.Check(s.Stderr(), Equals, "")
}

func (s *statusSuite) TestStatusDisabled(c *C) {
	s.redirectWithState(c, true, false)

	c.Assert(RunMain([]string{"status"}), IsNil)
	c.Check(s.Stdout(), Equals, "disabled\n")
}

func (s *statusSuite) TestStatusUnsupported(c *C) {
	s.redirectWithState(c, false, false)

	c.Assert(RunMain([]string{"status"}), IsNil)
	c.Check(s.Stdout(), Equals, "unsupported\n")
}

func (s *statusSuite) TestStatusExtraArgs(c *C) {
	c.Check(RunMain([]string{"status", "extra"}), Equals, ErrExtraArgs)
}
