// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test data and helpers
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// accounts with known seeds
var (
	Owner = account.Account{
		Address: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		Secret:  "snoPBrXtMeMyMHUVTgbuqAfg1SUTb",
	}
	Renter = account.Account{
		Address: "rU6K7V3Po4snVhBBaU29sesqs2qTQJWDw1",
		Secret:  "sp5fghtJtpUorTwvof1NpDXAzNwf5",
	}
	Third = account.Account{
		Address: "rDRMT4tdPjk5YRu4y6eFkh6mY4AP1XfZSb",
		Secret:  "spAa7Sa2riCvd748zQAvhbvaVtRyX",
	}
)

// account identifiers of the known addresses
const (
	OwnerID  = "B5F762798A53D543A014CAF8B297CFF8F2F937E8"
	RenterID = "8049717CC948789F32F267ADC2582484E3DFA698"
)

// ledger values
var (
	HookHash  = strings.Repeat("A1", 32)
	Namespace = strings.Repeat("5E", 32)
	TokenID   = strings.Repeat("7C", 32)
	TxHash    = strings.Repeat("D4", 32)
)

// SetupTestLogger - start logging to a throw away directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Reply - a Request stub that copies result into the caller's reply
//
// for use with gomock DoAndReturn
func Reply(result interface{}) func(context.Context, string, interface{}, interface{}) error {
	return func(_ context.Context, _ string, _ interface{}, reply interface{}) error {
		buffer, err := json.Marshal(result)
		if nil != err {
			return err
		}
		return json.Unmarshal(buffer, reply)
	}
}
