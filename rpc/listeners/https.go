// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/counter"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/rpc/handler"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
)

// HTTP paths
const (
	PathRPC     = "/rentald/rpc"
	PathDetails = "/rentald/details"
	PathMetrics = "/metrics"
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log       *logger.L
	addresses []address
	tlsConfig *tls.Config
	mux       *http.ServeMux
	servers   []*http.Server
	serving   counter.Counter
	wg        sync.WaitGroup
}

// NewHTTPS - HTTPS front end, nil when nothing is to be listened on
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr *handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	allow, err := ParseAllow(configuration.Allow)
	if nil != err {
		log.Errorf("%s allow error: %s", httpsLogName, err)
		return nil, err
	}
	hdlr.SetAllow(allow)

	mux := http.NewServeMux()
	mux.HandleFunc(PathRPC, hdlr.RPC)
	mux.HandleFunc(PathDetails, hdlr.Details)
	mux.HandleFunc(PathMetrics, hdlr.Metrics)
	mux.HandleFunc("/", hdlr.Root)

	config := tlsConfig.Clone()
	config.NextProtos = []string{"http/1.1"}

	return &httpsListener{
		log:       log,
		addresses: addresses,
		tlsConfig: config,
		mux:       mux,
	}, nil
}

// ParseAllow - CIDR lists per restricted path
func ParseAllow(configuration map[string][]string) (map[string][]*net.IPNet, error) {
	allow := make(map[string][]*net.IPNet)
	for path, addresses := range configuration {
		set := make([]*net.IPNet, 0, len(addresses))
		for _, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(ip))
			if nil != err {
				return nil, err
			}
			set = append(set, cidr)
		}
		allow[path] = set
	}
	return allow, nil
}

// Serve - start a server on every address
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for _, a := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpsLogName, a.hostPort)

		ln, err := net.Listen(a.network, a.hostPort)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		h.serving.Increment()
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			defer h.serving.Decrement()

			err := s.Serve(tls.NewListener(ln, h.tlsConfig))
			if nil != err && http.ErrServerClosed != err {
				h.log.Errorf("%s serve error: %s", httpsLogName, err)
			}
		}()
	}
	return nil
}

// Close - stop every server and wait for the serve loops to return
func (h *httpsListener) Close() {
	h.Lock()
	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
	h.Unlock()

	h.wg.Wait()
}
