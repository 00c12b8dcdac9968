// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runStatus(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	txID, err := checkTxID(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "txid: %s\n", txID)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetTransactionStatus(txID)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRecent(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddress(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RecentTransactions(address)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runResubmit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	txID, err := checkTxID(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Resubmit(txID)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
