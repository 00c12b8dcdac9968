// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/counter"
)

// allow list names
const (
	AllowDetails = "details"
	AllowMetrics = "metrics"
)

// Handler - the HTTP face of the RPC server
type Handler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	maximumConnections uint64
	connections        counter.Counter
	allow              map[string][]*net.IPNet
	metrics            http.Handler
}

// New - create a handler, connections above the maximum are refused
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64) *Handler {
	return &Handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - set the networks permitted for each restricted path
func (h *Handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// SetMetrics - attach the exposition handler served by Metrics
func (h *Handler) SetMetrics(metrics http.Handler) {
	h.metrics = metrics
}

// Connections - current number of requests in progress
func (h *Handler) Connections() *counter.Counter {
	return &h.connections
}

// Root - matches anything not matched and returns error
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *Handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.connections.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.connections.Decrement()

	codec := jsonrpc.NewServerCodec(&connection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := h.server.ServeRequest(codec)
	if nil != err {
		h.log.Debugf("serve request error: %s", err)
		sendInternalServerError(w)
	}
}

// DetailsReply - result of a GET to the details path
type DetailsReply struct {
	Version            string `json:"version"`
	Uptime             string `json:"uptime"`
	RPCs               uint64 `json:"rpcs"`
	MaximumConnections uint64 `json:"maximumConnections"`
}

// Details - service state for an allowed network
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.permitted(AllowDetails, r) {
		sendForbidden(w)
		return
	}

	if !h.connections.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.connections.Decrement()

	sendReply(w, DetailsReply{
		Version:            h.version,
		Uptime:             time.Since(h.start).Round(time.Second).String(),
		RPCs:               h.connections.Uint64(),
		MaximumConnections: h.maximumConnections,
	})
}

// Metrics - expose the metric registry to an allowed network
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if nil == h.metrics {
		sendNotFound(w)
		return
	}
	if !h.permitted(AllowMetrics, r) {
		sendForbidden(w)
		return
	}
	h.metrics.ServeHTTP(w, r)
}

func (h *Handler) permitted(name string, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil == err {
		ip := net.ParseIP(host)
		if nil != ip {
			for _, n := range h.allow[name] {
				if n.Contains(ip) {
					return true
				}
			}
		}
	}
	h.log.Warnf("deny access: %q to: %s", r.RemoteAddr, name)
	return false
}

// allow the rpc system to interface to an http request
type connection struct {
	in  io.Reader
	out io.Writer
}

func (c *connection) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *connection) Write(d []byte) (int, error) {
	return c.out.Write(d)
}

func (c *connection) Close() error {
	return nil
}

func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

type errorReply struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(errorReply{
		Code:  code,
		Error: message,
	})
	if nil != err {
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
