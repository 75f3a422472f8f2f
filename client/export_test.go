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

package client

import (
	"time"

	"gopkg.in/retry.v1"
)

// SetDoer replaces the underlying HTTP transport with the given one,
// for tests.
func (client *Client) SetDoer(d doer) {
	client.doer = d
}

// MockConnectRetryStrategy replaces the retry strategy used when the
// daemon socket is not up yet.
func MockConnectRetryStrategy(strategy retry.Strategy) (restore func()) {
	old := connectRetryStrategy
	connectRetryStrategy = strategy
	return func() {
		connectRetryStrategy = old
	}
}

// ShortRetryStrategy is a fast strategy suitable for tests.
var ShortRetryStrategy = retry.LimitCount(3, retry.LimitTime(100*time.Millisecond,
	retry.Exponential{
		Initial: time.Millisecond,
		Factor:  1.1,
	},
))
