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
	"strconv"

	"github.com/jessevdk/go-flags"

	"github.com/lineage-devices/powershared/i18n"
)

var shortMinBatteryHelp = i18n.G("Show or set the minimum battery level")
var longMinBatteryHelp = i18n.G(`
The min-battery command shows the battery percentage below which the
driver stops transmitting. With an argument it sets the level.

The current driver generation does not implement the cutoff; the value
always reads 0 and set values are discarded.
`)

type cmdMinBattery struct {
	Positional struct {
		Level string `positional-arg-name:"<level>"`
	} `positional-args:"yes"`
}

func init() {
	addCommand("min-battery", shortMinBatteryHelp, longMinBatteryHelp, func() flags.Commander { return &cmdMinBattery{} })
}

func (cmd cmdMinBattery) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	cli := Client()

	if cmd.Positional.Level == "" {
		lvl, err := cli.MinBattery()
		if err != nil {
			return err
		}
		fmt.Fprintf(Stdout, "%d\n", lvl)
		return nil
	}

	lvl, err := strconv.Atoi(cmd.Positional.Level)
	if err != nil {
		return fmt.Errorf(i18n.G("invalid battery level %q"), cmd.Positional.Level)
	}

	return cli.SetMinBattery(lvl)
}
