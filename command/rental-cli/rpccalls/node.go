// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/mikpaszkowski/rentald/rpc/account"
	"github.com/mikpaszkowski/rentald/rpc/node"
)

// GetInfo - daemon and ledger status
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetAccount - balance and sequence of an address
func (client *Client) GetAccount(address string) (*account.InfoReply, error) {
	arguments := account.InfoArguments{
		Address: address,
	}
	var reply account.InfoReply
	if err := client.call("Account.Info", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetNamespace - hook state entries of a namespace
func (client *Client) GetNamespace(address string, namespace string) (*account.NamespaceReply, error) {
	arguments := account.NamespaceArguments{
		Address:   address,
		Namespace: namespace,
	}
	var reply account.NamespaceReply
	if err := client.call("Account.Namespace", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
