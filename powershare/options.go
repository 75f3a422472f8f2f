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

package powershare

import (
	"github.com/mvo5/goconfigparser"

	"github.com/lineage-devices/powershared/dirs"
	"github.com/lineage-devices/powershared/logger"
	"github.com/lineage-devices/powershared/osutil"
)

// Options holds the daemon configuration. Different device kernels
// expose the transmit control under different paths, so the node path
// can be overridden via an ini file:
//
//	[powershare]
//	control-path = /proc/wireless/enable_tx
type Options struct {
	// ControlPath is the path of the transmit control node.
	ControlPath string
}

// ReadOptions loads the configuration file at the given path. A
// missing file, a parse error or a missing key all fall back to the
// built-in defaults; a broken config must not keep the daemon down.
func ReadOptions(path string) *Options {
	opts := &Options{
		ControlPath: dirs.WirelessTxEnablePath,
	}

	if !osutil.FileExists(path) {
		return opts
	}

	cfg := goconfigparser.New()
	if err := cfg.ReadFile(path); err != nil {
		logger.Noticef("cannot parse %s: %v", path, err)
		return opts
	}

	if p, err := cfg.Get("powershare", "control-path"); err == nil && p != "" {
		opts.ControlPath = p
	}

	return opts
}
