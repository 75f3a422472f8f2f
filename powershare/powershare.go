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

// Package powershare implements the control logic for the wireless
// power transmit ("PowerShare") feature of the kernel driver.
//
// The feature has a single control node. On devices without driver
// support the node does not exist at all; that is not an error, it
// simply means the feature reads as disabled and writes are no-ops.
// The node content is the only representation of the state: no value
// is cached here, every query goes back to the driver.
package powershare

import (
	"os"

	"github.com/lineage-devices/powershared/logger"
	"github.com/lineage-devices/powershared/osutil"
)

// Control is the stable operation surface exposed to RPC clients.
//
// None of the operations can fail from the caller's point of view:
// every problem with the underlying node is logged and mapped to a
// safe default (false, 0, or a silent no-op). A client that wants to
// know whether a SetEnabled took effect re-queries IsEnabled.
type Control interface {
	// MinBattery returns the minimum battery percentage below which
	// the driver stops transmitting. The driver does not implement
	// this cutoff, so it is always 0.
	MinBattery() int

	// IsEnabled reports whether the driver is currently transmitting.
	IsEnabled() bool

	// SetEnabled switches transmission on or off. On devices without
	// driver support this is a no-op.
	SetEnabled(enable bool)

	// SetMinBattery sets the minimum battery percentage. The value is
	// accepted and discarded, see MinBattery.
	SetMinBattery(minBattery int)
}

// disableContent is the exact node content that means "not
// transmitting". The driver only reports this one negative sentinel;
// any other content, including "0", reads as enabled.
const disableContent = "disable\n"

// NodeAccessor abstracts the stat/read/write operations on the control
// node so that the service logic can be tested without a real kernel
// driver behind it.
type NodeAccessor interface {
	// Exists reports whether the node is present. Any stat error
	// counts as absence.
	Exists(path string) bool

	// ReadAll returns the full text content of the node.
	ReadAll(path string) (string, error)

	// WriteAll replaces the node content. Readers never observe a
	// partial write.
	WriteAll(path, content string) error
}

type sysNode struct{}

func (sysNode) Exists(path string) bool {
	return osutil.FileExists(path)
}

func (sysNode) ReadAll(path string) (string, error) {
	content, err := os.ReadFile(path)
	return string(content), err
}

func (sysNode) WriteAll(path, content string) error {
	if err := osutil.AtomicWriteFile(path, []byte(content), 0644); err == nil {
		return nil
	}
	// Kernel pseudo-files do not allow creating a sibling temp entry,
	// so the atomic replace cannot work there. A plain one-shot
	// write(2) of the full content is indivisible for readers.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Service implements Control over a single control node.
//
// It holds no mutable state: the node path and accessor are fixed at
// construction and live for the process lifetime. Concurrent callers
// are not serialized here; the last write to the node wins, which is
// acceptable for a low-frequency user toggle.
type Service struct {
	path string
	node NodeAccessor
}

// NewService returns a Service over the control node at path. A nil
// accessor selects the real sysfs-backed one.
func NewService(path string, node NodeAccessor) *Service {
	if node == nil {
		node = sysNode{}
	}
	return &Service{path: path, node: node}
}

// Path returns the control node path the service operates on.
func (s *Service) Path() string {
	return s.path
}

// Supported reports whether the device has driver support for
// PowerShare, i.e. whether the control node exists.
func (s *Service) Supported() bool {
	return s.node.Exists(s.path)
}

func (s *Service) MinBattery() int {
	return 0
}

func (s *Service) IsEnabled() bool {
	if !s.node.Exists(s.path) {
		logger.Noticef("PowerShare node missing, assuming disabled")
		return false
	}

	value, err := s.node.ReadAll(s.path)
	if err != nil {
		logger.Noticef("cannot read current PowerShare state: %v", err)
		return false
	}

	return value != disableContent
}

func (s *Service) SetEnabled(enable bool) {
	if !s.node.Exists(s.path) {
		logger.Noticef("attempted to set PowerShare on a device without support")
		return
	}

	content := "0"
	if enable {
		content = "1"
	}
	if err := s.node.WriteAll(s.path, content); err != nil {
		// the caller finds out via the next IsEnabled
		logger.Noticef("cannot write PowerShare state: %v", err)
	}
}

func (s *Service) SetMinBattery(minBattery int) {
	// reserved alongside MinBattery for a driver cutoff feature that
	// is not wired up in this configuration
	logger.Debugf("discarding minimum battery level %d", minBattery)
}
