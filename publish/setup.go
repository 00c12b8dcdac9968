// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish broadcasts submission records on ZeroMQ PUB sockets
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/background"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/zmqutil"
)

// Configuration - the publishing block of the configuration file
//
// keys are optional, without them the sockets are not encrypted
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc *broadcaster

	background *background.T

	initialised bool
}

var globalData publishData

// Initialise - bind the broadcast sockets and start the sender
//
// an empty broadcast list leaves publishing disabled
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses: disabled")
		globalData.initialised = true
		return nil
	}

	var privateKey, publicKey []byte
	if "" != configuration.PrivateKey {
		var err error
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		if err := zmqutil.StartAuthentication(); nil != err {
			return err
		}
	}

	brdc, err := newBroadcaster(globalData.log, privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		return err
	}
	globalData.brdc = brdc
	globalData.initialised = true

	globalData.log.Info("start background…")
	globalData.background = background.Start(background.Processes{brdc}, nil)

	return nil
}

// Finalise - stop the sender and close the sockets
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.background = nil
	globalData.brdc = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

type observer struct{}

// Observer - the submission observer feeding the broadcaster
//
// records are dropped while publishing is disabled
func Observer() submission.Observer {
	return observer{}
}

func (observer) Observe(record submission.Record) {
	globalData.RLock()
	brdc := globalData.brdc
	globalData.RUnlock()

	if nil != brdc {
		brdc.queue(record)
	}
}
