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
	"os"
	"os/signal"
	"syscall"
	"time"

	systemddaemon "github.com/coreos/go-systemd/daemon"

	"github.com/lineage-devices/powershared/cmd"
	"github.com/lineage-devices/powershared/daemon"
	"github.com/lineage-devices/powershared/dirs"
	"github.com/lineage-devices/powershared/logger"
	"github.com/lineage-devices/powershared/osutil"
	"github.com/lineage-devices/powershared/powershare"
)

func init() {
	err := logger.SimpleSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: failed to activate logging: %s\n", err)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runWatchdog(d *daemon.Daemon) (*time.Ticker, error) {
	// not running under systemd
	if os.Getenv("WATCHDOG_USEC") == "" {
		return nil, nil
	}
	usec := osutil.GetenvInt64("WATCHDOG_USEC")
	if usec == 0 {
		return nil, fmt.Errorf("cannot parse WATCHDOG_USEC: %q", os.Getenv("WATCHDOG_USEC"))
	}
	dur := time.Duration(usec/2) * time.Microsecond
	logger.Debugf("setting up sd_notify() watchdog timer every %s", dur)
	wt := time.NewTicker(dur)

	go func() {
		for {
			select {
			case <-wt.C:
				systemddaemon.SdNotify(false, "WATCHDOG=1")
			case <-d.Dying():
				return
			}
		}
	}()

	return wt, nil
}

func run() error {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	opts := powershare.ReadOptions(dirs.PowerShareConfFile)
	svc := powershare.NewService(opts.ControlPath, nil)
	if !svc.Supported() {
		// keep serving anyway: the API degrades to "disabled"
		logger.Noticef("no PowerShare control node at %q, feature reads as unsupported", opts.ControlPath)
	}

	d := daemon.New(svc)
	d.Version = cmd.Version
	if err := d.Init(); err != nil {
		return err
	}

	d.Start()

	watchdog, err := runWatchdog(d)
	if err != nil {
		return fmt.Errorf("cannot run software watchdog: %v", err)
	}
	if watchdog != nil {
		defer watchdog.Stop()
	}

	systemddaemon.SdNotify(false, "READY=1")

	select {
	case sig := <-ch:
		logger.Noticef("exiting on %s signal", sig)
	case <-d.Dying():
		// something called Stop()
	}

	return d.Stop()
}
