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
	"gopkg.in/check.v1"
)

type ucrednetSuite struct{}

var _ = check.Suite(&ucrednetSuite{})

func (s *ucrednetSuite) TestGet(c *check.C) {
	pid, uid, err := ucrednetGet("pid=100;uid=42;")
	c.Assert(err, check.IsNil)
	c.Check(pid, check.Equals, int32(100))
	c.Check(uid, check.Equals, uint32(42))
}

func (s *ucrednetSuite) TestGetUIDRoot(c *check.C) {
	uid, err := ucrednetGetUID("pid=1;uid=0;")
	c.Assert(err, check.IsNil)
	c.Check(uid, check.Equals, uint32(0))
}

func (s *ucrednetSuite) TestGetNoUID(c *check.C) {
	_, _, err := ucrednetGet("pid=100;")
	c.Check(err, check.Equals, errNoID)
}

func (s *ucrednetSuite) TestGetNothing(c *check.C) {
	_, _, err := ucrednetGet("")
	c.Check(err, check.Equals, errNoID)
}

func (s *ucrednetSuite) TestGetGarbage(c *check.C) {
	_, _, err := ucrednetGet("pid=garbage;uid=42;")
	c.Check(err, check.NotNil)
}

func (s *ucrednetSuite) TestString(c *check.C) {
	var un *ucrednet
	c.Check(un.String(), check.Equals, "pid=;uid=;")

	un = &ucrednet{pid: 100, uid: 42}
	c.Check(un.String(), check.Equals, "pid=100;uid=42;")
}
