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
	"io"
	"net/http"

	. "gopkg.in/check.v1"

	"github.com/lineage-devices/powershared/testutil"
)

type toggleSuite struct {
	BasePowerShareSuite

	putBodies []string
}

var _ = Suite(&toggleSuite{})

func (s *toggleSuite) redirectWithToggle(c *C, enabledAfter bool) {
	s.putBodies = nil
	s.RedirectClientToTestServer(func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/v1/powershare")
		switch r.Method {
		case "PUT":
			body, err := io.ReadAll(r.Body)
			c.Check(err, IsNil)
			s.putBodies = append(s.putBodies, string(body))
			fmt.Fprintln(w, `{"type": "sync", "status-code": 200, "result": null}`)
		case "GET":
			fmt.Fprintf(w, `{"type": "sync", "status-code": 200, "result": {"enabled": %v}}`, enabledAfter)
		default:
			c.Fatalf("unexpected method %q", r.Method)
		}
	})
}

func (s *toggleSuite) TestEnable(c *C) {
	s.redirectWithToggle(c, true)

	c.Assert(RunMain([]string{"enable"}), IsNil)
	c.Check(s.putBodies, DeepEquals, []string{`{"enabled":true}`})
	c.Check(s.Stderr(), Equals, "")
}

func (s *toggleSuite) TestEnableDidNotTakeEffect(c *C) {
	s.redirectWithToggle(c, false)

	c.Assert(RunMain([]string{"enable"}), IsNil)
	c.Check(s.Stderr(), testutil.Contains, "not enabled")
}

func (s *toggleSuite) TestDisable(c *C) {
	s.redirectWithToggle(c, false)

	c.Assert(RunMain([]string{"disable"}), IsNil)
	c.Check(s.putBodies, DeepEquals, []string{`{"enabled":false}`})
	c.Check(s.Stderr(), Equals, "")
}

func (s *toggleSuite) TestEnableExtraArgs(c *C) {
	c.Check(RunMain([]string{"enable", "now"}), Equals, ErrExtraArgs)
	c.Check(RunMain([]string{"disable", "now"}), Equals, ErrExtraArgs)
}
