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
	"github.com/jessevdk/go-flags"

	"github.com/lineage-devices/powershared/i18n"
)

var shortDisableHelp = i18n.G("Disable PowerShare")
var longDisableHelp = i18n.G(`
The disable command switches reverse wireless charging off.
`)

type cmdDisable struct{}

func init() {
	addCommand("disable", shortDisableHelp, longDisableHelp, func() flags.Commander { return &cmdDisable{} })
}

func (cmd cmdDisable) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	return Client().SetEnabled(false)
}
