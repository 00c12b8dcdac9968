// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/rpc/uritoken"
)

// MintData - request data for mint
//
// only one of URI or Text should be set
type MintData struct {
	Account account.Account
	URI     string
	Text    string
}

// Mint - create a URIToken
func (client *Client) Mint(mintConfig *MintData) (*uritoken.ResultReply, error) {
	arguments := uritoken.MintArguments{
		Account: mintConfig.Account,
		URI:     mintConfig.URI,
		URIText: mintConfig.Text,
	}
	var reply uritoken.ResultReply
	if err := client.call("URIToken.Mint", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Burn - destroy a URIToken
func (client *Client) Burn(acct account.Account, tokenID string) (*uritoken.ResultReply, error) {
	arguments := uritoken.BurnArguments{
		Account:    acct,
		URITokenID: tokenID,
	}
	var reply uritoken.ResultReply
	if err := client.call("URIToken.Burn", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListTokens - URITokens held by an address
func (client *Client) ListTokens(address string) (*uritoken.ListReply, error) {
	arguments := uritoken.ListArguments{
		Address: address,
	}
	var reply uritoken.ListReply
	if err := client.call("URIToken.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// FindToken - a single URIToken held by an address
func (client *Client) FindToken(address string, tokenID string) (*uritoken.FindReply, error) {
	arguments := uritoken.FindArguments{
		Address:    address,
		URITokenID: tokenID,
	}
	var reply uritoken.FindReply
	if err := client.call("URIToken.Find", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
