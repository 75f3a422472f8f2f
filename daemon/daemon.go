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

// Package daemon binds the powershare control service to a JSON REST
// API served over a unix socket. It is a thin adapter: all feature
// semantics live in the powershare package, the daemon only does
// routing, peer-credential checks and envelope encoding.
package daemon

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/coreos/go-systemd/activation"
	"github.com/gorilla/mux"
	"golang.org/x/sys/unix"
	"gopkg.in/tomb.v2"

	"github.com/lineage-devices/powershared/dirs"
	"github.com/lineage-devices/powershared/logger"
	"github.com/lineage-devices/powershared/powershare"
)

// A Daemon listens for requests and routes them to the right command
type Daemon struct {
	Version  string
	svc      *powershare.Service
	listener net.Listener
	tomb     tomb.Tomb
	router   *mux.Router
}

// A ResponseFunc handles one of the individual verbs for a method
type ResponseFunc func(*Command, *http.Request) Response

// A Command routes a request to an individual per-verb ResponseFunc
type Command struct {
	Path string

	GET ResponseFunc
	PUT ResponseFunc

	// can guest GET?
	GuestOK bool
	// can non-admin GET?
	UserOK bool

	d *Daemon
}

func (c *Command) canAccess(r *http.Request) bool {
	uid, err := ucrednetGetUID(r.RemoteAddr)
	if err == nil {
		if uid == 0 {
			// superuser does anything
			return true
		}
	} else if err != errNoID {
		logger.Noticef("unexpected error when attempting to get UID: %s", err)
		return false
	}

	if r.Method != "GET" {
		return false
	}

	if err == nil && c.UserOK {
		return true
	}

	return c.GuestOK
}

func (c *Command) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !c.canAccess(r) {
		Unauthorized("access denied").ServeHTTP(w, r)
		return
	}

	var rspf ResponseFunc
	var rsp = BadMethod("method %q not allowed", r.Method)

	switch r.Method {
	case "GET":
		rspf = c.GET
	case "PUT":
		rspf = c.PUT
	}

	if rspf != nil {
		rsp = rspf(c, r)
	}

	rsp.ServeHTTP(w, r)
}

type wrappedWriter struct {
	w http.ResponseWriter
	s int
}

func (w *wrappedWriter) Header() http.Header {
	return w.w.Header()
}

func (w *wrappedWriter) Write(bs []byte) (int, error) {
	return w.w.Write(bs)
}

func (w *wrappedWriter) WriteHeader(s int) {
	w.w.WriteHeader(s)
	w.s = s
}

func logit(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := &wrappedWriter{w: w}
		t0 := time.Now()
		handler.ServeHTTP(ww, r)
		t := time.Now().Sub(t0)
		logger.Debugf("%s %s %s %s %d", r.RemoteAddr, r.Method, r.URL, t, ww.s)
	})
}

// getListener tries to get a listener for the given socket path from
// the listener map, and if it fails it tries to set it up directly.
func getListener(socketPath string, listenerMap map[string]net.Listener) (net.Listener, error) {
	if listener, ok := listenerMap[socketPath]; ok {
		return listener, nil
	}

	if c, err := net.Dial("unix", socketPath); err == nil {
		c.Close()
		return nil, fmt.Errorf("socket %q already in use", socketPath)
	}

	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	address, err := net.ResolveUnixAddr("unix", socketPath)
	if err != nil {
		return nil, err
	}

	runtime.LockOSThread()
	oldmask := unix.Umask(0111)
	listener, err := net.ListenUnix("unix", address)
	unix.Umask(oldmask)
	runtime.UnlockOSThread()
	if err != nil {
		return nil, err
	}

	logger.Debugf("socket %q was not activated; listening", socketPath)

	return listener, nil
}

// Init sets up the Daemon's internal workings.
// Don't call more than once.
func (d *Daemon) Init() error {
	listeners, err := activation.Listeners()
	if err != nil {
		return err
	}

	listenerMap := make(map[string]net.Listener, len(listeners))
	for _, listener := range listeners {
		listenerMap[listener.Addr().String()] = listener
	}

	// the control socket is required; without it, die
	if listener, err := getListener(dirs.PowerShareSocket, listenerMap); err == nil {
		d.listener = &ucrednetListener{listener}
	} else {
		return fmt.Errorf("when trying to listen on %s: %v", dirs.PowerShareSocket, err)
	}

	d.addRoutes()

	logger.Noticef("started powershared (control node %q).", d.svc.Path())

	return nil
}

func (d *Daemon) addRoutes() {
	d.router = mux.NewRouter()

	for _, c := range api {
		c.d = d
		d.router.Handle(c.Path, c).Name(c.Path)
	}

	d.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		NotFound("not found").ServeHTTP(w, r)
	})
}

// Start the Daemon
func (d *Daemon) Start() {
	d.tomb.Go(func() error {
		if err := http.Serve(d.listener, logit(d.router)); err != nil && d.tomb.Err() == tomb.ErrStillAlive {
			return err
		}

		return nil
	})
}

// Stop shuts down the Daemon
func (d *Daemon) Stop() error {
	d.tomb.Kill(nil)
	d.listener.Close()

	return d.tomb.Wait()
}

// Dying is a tomb-ish thing
func (d *Daemon) Dying() <-chan struct{} {
	return d.tomb.Dying()
}

// New Daemon over the given powershare service
func New(svc *powershare.Service) *Daemon {
	return &Daemon{svc: svc}
}
