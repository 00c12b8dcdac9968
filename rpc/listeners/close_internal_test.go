// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/counter"
	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/rpc/certificate"
	"github.com/mikpaszkowski/rentald/rpc/handler"
)

func internalTLSConfig(t *testing.T) (*tls.Config, certificate.Fingerprint) {
	dir := t.TempDir()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	err := certificate.MakeSelfSigned("rentald-test", certificateFile, keyFile, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("make certificate error: %s", err)
	}
	config, fingerprint, err := certificate.Load(logger.New(fixtures.LogCategory), "test", certificateFile, keyFile)
	if nil != err {
		t.Fatalf("load certificate error: %s", err)
	}
	return config, fingerprint
}

func TestRpcCloseWaitsForAcceptLoops(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	config, fingerprint := internalTLSConfig(t)
	port := rand.Intn(20000) + 40000

	var count counter.Counter
	l, err := NewRPC(&RPCConfiguration{
		MaximumConnections: 10,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port), fmt.Sprintf("127.0.0.1:%d", port+1)},
	}, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), config, fingerprint)
	assert.Nil(t, err, "create error")

	r := l.(*rpcListener)
	if err := r.Serve(); nil != err {
		r.Close()
		t.Skipf("listen unavailable: %s", err)
	}
	assert.Equal(t, uint64(2), r.accepting.Uint64(), "accept loops not running")

	r.Close()
	assert.Equal(t, uint64(0), r.accepting.Uint64(), "accept loop still running after close")

	// second close has nothing to wait for
	r.Close()
}

func TestHttpsCloseWaitsForServeLoops(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	config, _ := internalTLSConfig(t)
	port := rand.Intn(20000) + 40000

	l, err := NewHTTPS(&HTTPSConfiguration{
		MaximumConnections: 10,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
	}, logger.New(fixtures.LogCategory), config, handler.New(logger.New(fixtures.LogCategory), rpc.NewServer(), time.Now(), "zero", 5))
	assert.Nil(t, err, "create error")

	h := l.(*httpsListener)
	if err := h.Serve(); nil != err {
		h.Close()
		t.Skipf("listen unavailable: %s", err)
	}
	assert.Equal(t, uint64(1), h.serving.Uint64(), "serve loop not running")

	h.Close()
	assert.Equal(t, uint64(0), h.serving.Uint64(), "serve loop still running after close")
}
