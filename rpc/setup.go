// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/counter"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/rpc/certificate"
	"github.com/mikpaszkowski/rentald/rpc/handler"
	"github.com/mikpaszkowski/rentald/rpc/listeners"
	"github.com/mikpaszkowski/rentald/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	connections counter.Counter
	listeners   []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON-RPC and optional HTTPS listeners
//
// metrics may be nil, which leaves the metrics path unserved
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	services *server.Services,
	metrics http.Handler,
) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	rpcServer := server.Create(log, version, &globalData.connections, services)

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&globalData.connections,
		rpcServer,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}

	var httpsListener listeners.Listener
	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, _, err := certificate.Load(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}

		hdlr := handler.New(log, rpcServer, time.Now().UTC(), version, httpsConfiguration.MaximumConnections)
		if nil != metrics {
			hdlr.SetMetrics(metrics)
		}

		httpsListener, err = listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			return err
		}
	}

	for _, l := range []listeners.Listener{rpcListener, httpsListener} {
		if nil == l {
			continue
		}
		err := l.Serve()
		if nil != err {
			l.Close()
			closeAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, l)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	closeAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - JSON-RPC connections in progress
func ConnectionCount() uint64 {
	return globalData.connections.Uint64()
}

func closeAll() {
	for _, l := range globalData.listeners {
		l.Close()
	}
	globalData.listeners = nil
}
