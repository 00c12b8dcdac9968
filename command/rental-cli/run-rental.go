// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/mikpaszkowski/rentald/command/rental-cli/rpccalls"
)

func runOffer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	acct, err := checkAccount(c)
	if nil != err {
		return err
	}
	destination, err := checkRequired(c, "destination")
	if nil != err {
		return err
	}
	tokenID, err := checkRequired(c, "token")
	if nil != err {
		return err
	}
	amount, err := checkRequired(c, "amount")
	if nil != err {
		return err
	}
	deadline, err := checkRequired(c, "deadline")
	if nil != err {
		return err
	}

	offerConfig := &rpccalls.OfferData{
		OfferType:   strings.ToUpper(c.String("type")),
		Account:     acct,
		Destination: destination,
		TokenID:     strings.ToUpper(tokenID),
		TotalAmount: amount,
		Deadline:    deadline,
		RentalType:  strings.ToUpper(c.String("rental-type")),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s offer of: %s to: %s\n", offerConfig.OfferType, offerConfig.TokenID, destination)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateOffer(offerConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAccept(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	acct, err := checkAccount(c)
	if nil != err {
		return err
	}
	tokenID, err := checkRequired(c, "token")
	if nil != err {
		return err
	}
	amount, err := checkRequired(c, "amount")
	if nil != err {
		return err
	}
	deadline, err := checkRequired(c, "deadline")
	if nil != err {
		return err
	}

	acceptConfig := &rpccalls.AcceptData{
		OfferType:   strings.ToUpper(c.String("type")),
		Account:     acct,
		TokenID:     strings.ToUpper(tokenID),
		TotalAmount: amount,
		Deadline:    deadline,
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AcceptOffer(acceptConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCancel(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	acct, err := checkAccount(c)
	if nil != err {
		return err
	}
	tokenID, err := checkRequired(c, "token")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CancelOffer(acct, strings.ToUpper(tokenID))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
