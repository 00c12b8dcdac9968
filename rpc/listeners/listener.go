// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/fault"
)

const minConnectionCount = 1

// Listener - a started network front end
type Listener interface {
	Serve() error
	Close()
}

// a listen address with the network it needs
type address struct {
	network  string
	hostPort string
}

// "*:PORT" listens on tcp4 and tcp6, "[ip6]:PORT" on tcp6, otherwise tcp4
func parseListenAddress(addrs []string, log *logger.L) ([]address, error) {
	parsed := make([]address, 0, len(addrs))
	for _, listen := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, fault.InvalidIpAddress
		}
		if "" == port {
			return nil, fault.InvalidPortNumber
		}

		switch {
		case "*" == host:
			parsed = append(parsed, address{network: "tcp", hostPort: net.JoinHostPort("::", port)})
		case nil == net.ParseIP(host):
			log.Errorf("listen address: %q  error: %s", listen, fault.InvalidIpAddress)
			return nil, fault.InvalidIpAddress
		case strings.Contains(host, ":"):
			parsed = append(parsed, address{network: "tcp6", hostPort: net.JoinHostPort(host, port)})
		default:
			parsed = append(parsed, address{network: "tcp4", hostPort: net.JoinHostPort(host, port)})
		}
	}
	return parsed, nil
}
