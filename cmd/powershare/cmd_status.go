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

var shortStatusHelp = i18n.G("Show the PowerShare state")
var longStatusHelp = i18n.G(`
The status command shows whether PowerShare is currently transmitting.
On devices without PowerShare support the state always reads disabled.
`)

type cmdStatus struct{}

func init() {
	addCommand("status", shortStatusHelp, longStatusHelp, func() flags.Commander { return &cmdStatus{} })
}

func (cmd cmdStatus) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	cli := Client()
	info, err := cli.SysInfo()
	if err != nil {
		return err
	}
	if !info.Supported {
		fmt.Fprintln(Stdout, i18n.G("unsupported"))
		return nil
	}

	enabled, err := cli.Enabled()
	if err != nil {
		return err
	}
	if enabled {
		fmt.Fprintln(Stdout, i18n.G("enabled"))
	} else {
		fmt.Fprintln(Stdout, i18n.G("disabled"))
	}

	return nil
}
