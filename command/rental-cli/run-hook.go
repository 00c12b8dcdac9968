// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

func runHooks(c *cli.Context) error {
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

	response, err := client.ListHooks(address)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInstall(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	acct, err := checkAccount(c)
	if nil != err {
		return err
	}

	grants := make([]string, 0, len(c.StringSlice("grant")))
	for _, g := range c.StringSlice("grant") {
		if g = strings.TrimSpace(g); "" != g {
			grants = append(grants, g)
		}
	}
	update := c.Bool("update")

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", acct.Address)
		fmt.Fprintf(m.e, "grants: %v\n", grants)
		fmt.Fprintf(m.e, "update: %t\n", update)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.InstallHook(acct, grants, update)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGrant(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	acct, err := checkAccount(c)
	if nil != err {
		return err
	}
	grantee, err := checkRequired(c, "grantee")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GrantAccess(acct, grantee)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runReset(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	acct, err := checkAccount(c)
	if nil != err {
		return err
	}
	namespace, err := checkRequired(c, "namespace")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ResetNamespace(acct, strings.ToUpper(namespace))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRemove(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	acct, err := checkAccount(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RemoveHook(acct)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
