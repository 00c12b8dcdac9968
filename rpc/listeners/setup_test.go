// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/rpc/certificate"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func randomPort() int {
	return rand.Intn(20000) + 40000
}

// a freshly generated self signed certificate
func tlsConfig(t *testing.T) (*tls.Config, certificate.Fingerprint) {
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
