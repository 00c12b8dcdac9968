// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS key pairs for the RPC listeners
package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/mikpaszkowski/rentald/fault"
)

// self signed certificates are valid for ten years
const validity = 10 * 365 * 24 * time.Hour

// Fingerprint - SHA3-256 of a DER certificate
type Fingerprint [32]byte

// Get - build a TLS configuration from PEM text and fingerprint it
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, Fingerprint, error) {
	var fin Fingerprint

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = fingerprint(keyPair.Certificate[0])
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fin)

	return tlsConfiguration, fin, nil
}

// Load - as Get, reading the PEM files
func Load(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, Fingerprint, error) {
	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFileName, err)
		return nil, Fingerprint{}, fault.CertificateFileNotFound
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFileName, err)
		return nil, Fingerprint{}, fault.CertificateFileNotFound
	}
	return Get(log, name, string(certificate), string(key))
}

// MakeSelfSigned - write a new self signed certificate and key
//
// existing files are never overwritten
func MakeSelfSigned(name string, certificateFileName string, keyFileName string, extraHosts []string) error {
	if _, err := os.Stat(certificateFileName); nil == err {
		return fault.CertificateFileAlreadyExists
	}
	if _, err := os.Stat(keyFileName); nil == err {
		return fault.KeyFileAlreadyExists
	}

	organisation := "rentald self signed cert for: " + name
	certificate, key, err := certgen.NewTLSCertPair(organisation, time.Now().Add(validity), false, extraHosts)
	if nil != err {
		return err
	}

	if err := ioutil.WriteFile(certificateFileName, certificate, 0666); nil != err {
		return err
	}
	if err := ioutil.WriteFile(keyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}
	return nil
}

// fingerprint - compute the fingerprint of a certificate
//
// openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) Fingerprint {
	return sha3.Sum256(certificate)
}
