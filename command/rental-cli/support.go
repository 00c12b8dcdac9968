// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/command/rental-cli/rpccalls"
)

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// connect using the global connect option
func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func checkAddress(c *cli.Context) (string, error) {
	address := strings.TrimSpace(c.String("address"))
	if "" == address {
		return "", ErrMissingAddress
	}
	return address, nil
}

func checkAccount(c *cli.Context) (account.Account, error) {
	address, err := checkAddress(c)
	if nil != err {
		return account.Account{}, err
	}
	secret := strings.TrimSpace(c.String("secret"))
	if "" == secret {
		return account.Account{}, ErrMissingSecret
	}
	return account.Account{
		Address: address,
		Secret:  secret,
	}, nil
}

func checkRequired(c *cli.Context, name string) (string, error) {
	value := strings.TrimSpace(c.String(name))
	if "" == value {
		return "", fmt.Errorf("%s: %s", name, ErrMissingValue)
	}
	return value, nil
}

func checkTxID(c *cli.Context) (string, error) {
	txID := strings.TrimSpace(c.String("txid"))
	if "" == txID {
		return "", ErrMissingTxID
	}
	return strings.ToUpper(txID), nil
}
