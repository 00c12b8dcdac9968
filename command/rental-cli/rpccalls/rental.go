// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/rpc/rental"
)

// OfferData - request data for an offer
type OfferData struct {
	OfferType   string
	Account     account.Account
	Destination string
	TokenID     string
	TotalAmount string
	Deadline    string
	RentalType  string
}

// CreateOffer - lend or return a token
func (client *Client) CreateOffer(offerConfig *OfferData) (*rental.CreateOfferReply, error) {
	arguments := rental.CreateOfferArguments{
		OfferType:          offerConfig.OfferType,
		Account:            offerConfig.Account,
		DestinationAccount: offerConfig.Destination,
		URITokenID:         offerConfig.TokenID,
		TotalAmount:        offerConfig.TotalAmount,
		Deadline:           offerConfig.Deadline,
		RentalType:         offerConfig.RentalType,
	}
	var reply rental.CreateOfferReply
	if err := client.call("Rental.CreateOffer", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AcceptData - request data for accepting an offer
type AcceptData struct {
	OfferType   string
	Account     account.Account
	TokenID     string
	TotalAmount string
	Deadline    string
}

// AcceptOffer - take a token offered to this account
func (client *Client) AcceptOffer(acceptConfig *AcceptData) (*rental.ResultReply, error) {
	arguments := rental.AcceptOfferArguments{
		OfferType:     acceptConfig.OfferType,
		URITokenID:    acceptConfig.TokenID,
		RenterAccount: acceptConfig.Account,
		TotalAmount:   acceptConfig.TotalAmount,
		Deadline:      acceptConfig.Deadline,
	}
	var reply rental.ResultReply
	if err := client.call("Rental.AcceptOffer", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CancelOffer - withdraw an outstanding offer
func (client *Client) CancelOffer(acct account.Account, tokenID string) (*rental.ResultReply, error) {
	arguments := rental.CancelOfferArguments{
		URITokenID: tokenID,
		Account:    acct,
	}
	var reply rental.ResultReply
	if err := client.call("Rental.CancelOffer", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
