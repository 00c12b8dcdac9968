// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/counter"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/rpc/certificate"
)

const logName = "client_rpc"

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []address
	listeners      []net.Listener
	accepting      counter.Counter
	wg             sync.WaitGroup
}

// NewRPC - JSON-RPC over TLS on each listen address
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	fingerprint certificate.Fingerprint,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, fingerprint)

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		addresses:      addresses,
	}, nil
}

// Serve - start accepting on every address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, a := range r.addresses {
		r.log.Infof("starting RPC server: %s", a.hostPort)
		listener, err := tls.Listen(a.network, a.hostPort, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, listener)

		r.accepting.Increment()
		r.wg.Add(1)
		go r.accept(listener)
	}
	return nil
}

// Close - stop accepting, existing connections finish their calls
//
// returns only after every accept loop has exited
func (r *rpcListener) Close() {
	r.Lock()
	for _, listener := range r.listeners {
		_ = listener.Close()
	}
	r.listeners = nil
	r.Unlock()

	r.wg.Wait()
}

func (r *rpcListener) accept(listener net.Listener) {
	defer r.wg.Done()
	defer r.accepting.Decrement()

	for {
		conn, err := listener.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}
		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("too many connections, refuse: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			r.count.Decrement()
		}()
	}
}
