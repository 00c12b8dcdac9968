// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zmqutil binds ZeroMQ server sockets, optionally CURVE encrypted
package zmqutil

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/mikpaszkowski/rentald/fault"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
	sendHighWater     = 1000
)

// Endpoint - canonical tcp:// form of host:port, true for IPv6
//
// examples:
//   127.0.0.1:1234  -> tcp://127.0.0.1:1234
//   [::1]:1234      -> tcp://[::1]:1234
//   *:1234          -> tcp://*:1234
func Endpoint(hostPort string) (string, bool, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", false, fault.InvalidIpAddress
	}

	n, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || n < 1 || n > 65535 {
		return "", false, fault.InvalidPortNumber
	}
	p := strconv.Itoa(n)

	host = strings.TrimSpace(host)
	if "*" == host {
		return "tcp://*:" + p, false, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.InvalidIpAddress
	}
	if nil != ip.To4() {
		return "tcp://" + ip.String() + ":" + p, false, nil
	}
	return "tcp://[" + ip.String() + "]:" + p, true, nil
}

// NewBind - bind a list of host:port addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic; an
// empty private key gives plain sockets
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {
	var socket4, socket6 *zmq.Socket

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		bindTo, v6, err := Endpoint(address)
		if nil != err {
			log.Errorf("invalid bind[%d]: %q  error: %s", i, address, err)
			return fail(err)
		}

		socket := &socket4
		if v6 {
			socket = &socket6
		}
		if nil == *socket {
			*socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				return fail(err)
			}
		}

		if err := (*socket).Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return fail(err)
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - create a socket suitable for a server side connection
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	if 0 != len(privateKey) {
		zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)
		if err := socket.ServerAuthCurve(zapDomain, zmq.Z85encode(string(privateKey))); nil != err {
			socket.Close()
			return nil, err
		}
		if 0 != len(publicKey) {
			socket.SetIdentity(string(publicKey))
		}
	}

	socket.SetIpv6(v6)
	socket.SetLinger(0)
	socket.SetSndhwm(sendHighWater)

	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}
