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

	"github.com/jessevdk/go-flags"

	"github.com/lineage-devices/powershared/i18n"
)

var shortEnableHelp = i18n.G("Enable PowerShare")
var longEnableHelp = i18n.G(`
The enable command switches reverse wireless charging on.

Setting the state is best effort: on devices without PowerShare
support nothing changes. The command reads the state back and reports
when the toggle did not take effect.
`)

type cmdEnable struct{}

func init() {
	addCommand("enable", shortEnableHelp, longEnableHelp, func() flags.Commander { return &cmdEnable{} })
}

func (cmd cmdEnable) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	cli := Client()
	if err := cli.SetEnabled(true); err != nil {
		return err
	}

	// the daemon never fails a set; whether it took effect is only
	// visible by asking again
	enabled, err := cli.Enabled()
	if err != nil {
		return err
	}
	if !enabled {
		fmt.Fprintln(Stderr, i18n.G("powershare: not enabled (device without PowerShare support?)"))
	}

	return nil
}
