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

func runMint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	acct, err := checkAccount(c)
	if nil != err {
		return err
	}

	text := c.String("uri")
	uri := strings.TrimSpace(c.String("hex"))
	if "" != text && "" != uri {
		return ErrAmbiguousURI
	}
	if "" == text && "" == uri {
		return fmt.Errorf("uri: %s", ErrMissingValue)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	mintConfig := &rpccalls.MintData{
		Account: acct,
		URI:     uri,
		Text:    text,
	}

	response, err := client.Mint(mintConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBurn(c *cli.Context) error {
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

	response, err := client.Burn(acct, strings.ToUpper(tokenID))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// with a token option only that token is shown
func runTokens(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddress(c)
	if nil != err {
		return err
	}
	tokenID := strings.ToUpper(strings.TrimSpace(c.String("token")))

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if "" != tokenID {
		response, err := client.FindToken(address, tokenID)
		if nil != err {
			return err
		}
		return printJson(m.w, response)
	}

	response, err := client.ListTokens(address)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
