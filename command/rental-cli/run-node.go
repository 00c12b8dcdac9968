// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAccount(c *cli.Context) error {
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

	response, err := client.GetAccount(address)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// without a namespace the rental hook namespace is shown
func runNamespace(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddress(c)
	if nil != err {
		return err
	}
	namespace := strings.ToUpper(strings.TrimSpace(c.String("namespace")))

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if "" == namespace {
		response, err := client.HookNamespace(address)
		if nil != err {
			return err
		}
		return printJson(m.w, response)
	}

	response, err := client.GetNamespace(address, namespace)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
