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

// Package dirs holds the well-known paths the daemon cares about. All
// of them are derived from a single root directory so that tests can
// relocate the whole tree with SetRootDir.
package dirs

import (
	"path/filepath"
)

var (
	// GlobalRootDir is the root directory from which all other paths
	// are derived. It is "/" outside of tests.
	GlobalRootDir string

	// PowerShareSocket is the unix socket the daemon serves its REST
	// API on.
	PowerShareSocket string

	// WirelessTxEnablePath is the kernel control node for the wireless
	// power transmit feature. It only exists on devices whose driver
	// supports PowerShare.
	WirelessTxEnablePath string

	// PowerShareConfFile is the optional daemon configuration file.
	PowerShareConfFile string
)

func init() {
	// init the global directories at startup
	SetRootDir("/")
}

// SetRootDir allows settings a new global root directory. This is
// useful for tests that need to point the daemon at a scratch tree.
func SetRootDir(rootdir string) {
	if rootdir == "" {
		rootdir = "/"
	}
	GlobalRootDir = rootdir

	PowerShareSocket = filepath.Join(rootdir, "/run/powershared.socket")
	WirelessTxEnablePath = filepath.Join(rootdir, "/proc/wireless/enable_tx")
	PowerShareConfFile = filepath.Join(rootdir, "/etc/powershared.conf")
}
