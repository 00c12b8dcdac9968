// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/counter"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/rpc/listeners"
)

func newRPC(t *testing.T, listen []string, maximum uint64, count *counter.Counter) (listeners.Listener, error) {
	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	config, fingerprint := tlsConfig(t)

	return listeners.NewRPC(
		&listeners.RPCConfiguration{
			MaximumConnections: maximum,
			Listen:             listen,
		},
		logger.New(fixtures.LogCategory),
		count,
		s,
		config,
		fingerprint,
	)
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := randomPort()
	count := counter.Counter(0)

	l, err := newRPC(t, []string{fmt.Sprintf("127.0.0.1:%d", port)}, 5, &count)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")

	_ = client.Close()
	for i := 0; i < 100 && !count.IsZero(); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, count.IsZero(), "connection not released")
}

func TestRpcListenerRefusesAboveMaximum(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := randomPort()
	count := counter.Counter(1)

	l, err := newRPC(t, []string{fmt.Sprintf("127.0.0.1:%d", port)}, 1, &count)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		// closed during the handshake
		return
	}

	var reply int
	client := jsonrpc.NewClient(c)
	err = client.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
	assert.NotNil(t, err, "call above the maximum must fail")
	assert.Equal(t, uint64(1), count.Uint64(), "count changed by refused connection")
}

func TestRpcListenerConfigurationErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)

	_, err := newRPC(t, []string{"127.0.0.1:2130"}, 0, &count)
	assert.Equal(t, fault.MissingParameters, err, "zero maximum connections")

	_, err = newRPC(t, []string{}, 5, &count)
	assert.Equal(t, fault.MissingParameters, err, "empty listen")

	_, err = newRPC(t, []string{"localhost:2130"}, 5, &count)
	assert.Equal(t, fault.InvalidIpAddress, err, "host name")

	_, err = newRPC(t, []string{"127.0.0.1"}, 5, &count)
	assert.Equal(t, fault.InvalidIpAddress, err, "missing port")
}

func TestRpcListenerServeWhenListenAll(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := randomPort()
	count := counter.Counter(0)

	l, err := newRPC(t, []string{fmt.Sprintf("*:%d", port)}, 5, &count)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	l.Close()
}

func TestRpcListenerServeWhenListenInUse(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := randomPort()
	count := counter.Counter(0)
	listen := []string{fmt.Sprintf("127.0.0.1:%d", port)}

	first, err := newRPC(t, listen, 5, &count)
	assert.Nil(t, err, "wrong NewRPC")
	err = first.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer first.Close()

	second, err := newRPC(t, listen, 5, &count)
	assert.Nil(t, err, "wrong NewRPC")
	err = second.Serve()
	assert.NotNil(t, err, "address in use must fail")
}
