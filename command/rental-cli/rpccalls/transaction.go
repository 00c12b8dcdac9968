// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/mikpaszkowski/rentald/rpc/transaction"
)

// GetTransactionStatus - journal record of a submitted transaction
func (client *Client) GetTransactionStatus(txHash string) (*transaction.StatusReply, error) {
	arguments := transaction.StatusArguments{
		TxHash: txHash,
	}
	var reply transaction.StatusReply
	if err := client.call("Transaction.Status", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RecentTransactions - journal records of an address
func (client *Client) RecentTransactions(address string) (*transaction.RecentReply, error) {
	arguments := transaction.RecentArguments{
		Address: address,
	}
	var reply transaction.RecentReply
	if err := client.call("Transaction.Recent", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Resubmit - send a retained signed blob again
func (client *Client) Resubmit(txHash string) (*transaction.ResubmitReply, error) {
	arguments := transaction.ResubmitArguments{
		TxHash: txHash,
	}
	var reply transaction.ResubmitReply
	if err := client.call("Transaction.Resubmit", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
