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

// Package client talks to the powershared REST API over its unix
// socket.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"gopkg.in/retry.v1"

	"github.com/lineage-devices/powershared/dirs"
)

type doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Config allows to customize client behavior.
type Config struct {
	// BaseURL contains the base URL where the daemon is expected to be.
	// It can be empty for a default behavior of talking over a unix
	// socket.
	BaseURL string

	// Socket is the path of the unix socket to talk to; it defaults
	// to the standard powershared socket.
	Socket string
}

// A Client knows how to talk to the powershare daemon.
type Client struct {
	baseURL url.URL
	doer    doer
}

// New returns a new instance of Client
func New(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	// By default talk over a unix socket.
	if config.BaseURL == "" {
		socket := config.Socket
		if socket == "" {
			socket = dirs.PowerShareSocket
		}
		return &Client{
			baseURL: url.URL{
				Scheme: "http",
				Host:   "localhost",
			},
			doer: &http.Client{
				Transport: &http.Transport{
					Dial: func(_, _ string) (net.Conn, error) {
						return net.Dial("unix", socket)
					},
				},
			},
		}
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		panic(fmt.Sprintf("cannot parse server base URL: %q (%v)", config.BaseURL, err))
	}
	return &Client{
		baseURL: *baseURL,
		doer:    &http.Client{},
	}
}

// connectRetryStrategy covers the window in which the daemon is being
// (re)started by its service manager and the socket is not up yet.
var connectRetryStrategy = retry.LimitCount(5, retry.LimitTime(2*time.Second,
	retry.Exponential{
		Initial: 50 * time.Millisecond,
		Factor:  2.0,
	},
))

func isConnectError(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENOENT)
}

// raw performs a request and returns the resulting http.Response and
// error. You usually only need to call this directly if you expect the
// response to not be JSON, otherwise you'd call do(...) instead.
func (client *Client) raw(method, path string, query url.Values, body []byte) (*http.Response, error) {
	u := client.baseURL
	u.Path = path
	u.RawQuery = query.Encode()

	var rsp *http.Response
	var err error
	for attempt := retry.Start(connectRetryStrategy, nil); attempt.Next(); {
		var rdr *bytes.Reader
		if body != nil {
			rdr = bytes.NewReader(body)
		}
		var req *http.Request
		if rdr != nil {
			req, err = http.NewRequest(method, u.String(), rdr)
		} else {
			req, err = http.NewRequest(method, u.String(), nil)
		}
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		rsp, err = client.doer.Do(req)
		if err == nil || !isConnectError(err) {
			break
		}
	}

	return rsp, err
}

// do performs a request and decodes the resulting json into the given
// value.
func (client *Client) do(method, path string, query url.Values, body []byte, v interface{}) error {
	rsp, err := client.raw(method, path, query, body)
	if err != nil {
		return fmt.Errorf("cannot communicate with server: %v", err)
	}
	defer rsp.Body.Close()

	dec := json.NewDecoder(rsp.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}

	return nil
}

// doSync performs a request to the given path using the specified HTTP
// method. It expects a "sync" response from the API and on success
// decodes the JSON response payload into the given value.
func (client *Client) doSync(method, path string, query url.Values, body []byte, v interface{}) error {
	var rsp response

	if err := client.do(method, path, query, body, &rsp); err != nil {
		return err
	}
	if err := rsp.err(); err != nil {
		return err
	}
	if rsp.Type != "sync" {
		return fmt.Errorf("expected sync response, got %q", rsp.Type)
	}

	if v != nil {
		if err := json.Unmarshal(rsp.Result, v); err != nil {
			return fmt.Errorf("cannot unmarshal: %v", err)
		}
	}

	return nil
}

// A response produced by the REST API will always fit in this.
type response struct {
	Result     json.RawMessage `json:"result"`
	Status     string          `json:"status"`
	StatusCode int             `json:"status-code"`
	Type       string          `json:"type"`
}

// Error is the real value of response.Result when an error occurs.
type Error struct {
	Message string `json:"message"`

	StatusCode int `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

func (rsp *response) err() error {
	if rsp.Type != "error" {
		return nil
	}
	var resultErr Error
	err := json.Unmarshal(rsp.Result, &resultErr)
	if err != nil || resultErr.Message == "" {
		return fmt.Errorf("server error: %q", rsp.Status)
	}
	resultErr.StatusCode = rsp.StatusCode

	return &resultErr
}

// SysInfo holds daemon information
type SysInfo struct {
	Version     string `json:"version"`
	ControlPath string `json:"control-path"`
	Supported   bool   `json:"supported"`
}

// SysInfo gets system information from the REST API.
func (client *Client) SysInfo() (*SysInfo, error) {
	var sysInfo SysInfo

	if err := client.doSync("GET", "/v1/system-info", nil, nil, &sysInfo); err != nil {
		return nil, fmt.Errorf("cannot get system information: %v", err)
	}

	return &sysInfo, nil
}
