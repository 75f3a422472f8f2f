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
)

type minBatterySuite struct {
	BasePowerShareSuite

	putBodies []string
}

var _ = Suite(&minBatterySuite{})

func (s *minBatterySuite) redirect(c *C) {
	s.putBodies = nil
	s.RedirectClientToTestServer(func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/v1/powershare/min-battery")
		switch r.Method {
		case "PUT":
			body, err := io.ReadAll(r.Body)
			c.Check(err, IsNil)
			s.putBodies = append(s.putBodies, string(body))
			fmt.Fprintln(w, `{"type": "sync", "status-code": 200, "result": null}`)
		case "GET":
			fmt.Fprintln(w, `{"type": "sync", "status-code": 200, "result": {"min-battery": 0}}`)
		default:
			c.Fatalf("unexpected method %q", r.Method)
		}
	})
}

func (s *minBatterySuite) TestMinBatteryShow(c *C) {
	s.redirect(c)

	c.Assert(RunMain([]string{"min-battery"}), IsNil)
	c.Check(s.Stdout(), Equals, "0\n")
	c.Check(s.putBodies, HasLen, 0)
}

func (s *minBatterySuite) TestMinBatterySet(c *C) {
	s.redirect(c)

	c.Assert(RunMain([]string{"min-battery", "20"}), IsNil)
	c.Check(s.putBodies, DeepEquals, []string{`{"min-battery":20}`})
}

func (s *minBatterySuite) TestMinBatteryInvalidLevel(c *C) {
	s.redirect(c)

	err := RunMain([]string{"min-battery", "plenty"})
	c.Check(err, ErrorMatches, `invalid battery level "plenty"`)
}
