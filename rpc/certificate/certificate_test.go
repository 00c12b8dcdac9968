// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/rpc/certificate"
)

func TestMakeAndLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "certificate")
	if !assert.Nil(t, err, "temp dir") {
		return
	}
	defer os.RemoveAll(dir)

	crt := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")

	err = certificate.MakeSelfSigned("test", crt, key, []string{"127.0.0.1"})
	if !assert.Nil(t, err, "make") {
		return
	}

	tlsConfig, fingerprint, err := certificate.Load(logger.New(fixtures.LogCategory), "test", crt, key)
	if !assert.Nil(t, err, "load") {
		return
	}

	pair, err := tls.LoadX509KeyPair(crt, key)
	assert.Nil(t, err, "standard load")
	assert.Equal(t, certificate.Fingerprint(sha3.Sum256(pair.Certificate[0])), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")

	err = certificate.MakeSelfSigned("test", crt, key, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "overwrote certificate")
}

func TestLoadMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Load(logger.New(fixtures.LogCategory), "test", "/no/rpc.crt", "/no/rpc.key")
	assert.Equal(t, fault.CertificateFileNotFound, err, "wrong error")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "expected error")
}
