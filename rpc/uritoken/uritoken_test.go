// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uritoken_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/mocks"
	rpcuritoken "github.com/mikpaszkowski/rentald/rpc/uritoken"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/uritoken"
)

func TestMint(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	result := &submission.Result{TxHash: fixtures.TxHash, EngineResultCode: "tesSUCCESS"}

	tokens := mocks.NewMockTokens(ctl)
	gomock.InOrder(
		tokens.EXPECT().Mint(gomock.Any(), fixtures.Owner, "697066733A2F2F74657374").Return(result, nil).Times(1),
		tokens.EXPECT().Mint(gomock.Any(), fixtures.Owner, "ABCD").Return(result, nil).Times(1),
	)

	u := rpcuritoken.New(logger.New(fixtures.LogCategory), tokens, time.Second)

	var reply rpcuritoken.ResultReply
	err := u.Mint(&rpcuritoken.MintArguments{Account: fixtures.Owner, URIText: "ipfs://test"}, &reply)
	assert.Nil(t, err, "wrong Mint from text")
	assert.Equal(t, result, reply.Result, "wrong result")

	err = u.Mint(&rpcuritoken.MintArguments{Account: fixtures.Owner, URI: "ABCD"}, &reply)
	assert.Nil(t, err, "wrong Mint from hex")
}

func TestMintValidation(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	u := rpcuritoken.New(logger.New(fixtures.LogCategory), mocks.NewMockTokens(ctl), time.Second)

	var reply rpcuritoken.ResultReply
	err := u.Mint(&rpcuritoken.MintArguments{Account: fixtures.Owner}, &reply)
	assert.Equal(t, fault.MissingURI, err, "no uri")

	err = u.Mint(&rpcuritoken.MintArguments{Account: fixtures.Owner, URI: "AB", URIText: "x"}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "both uri forms")

	err = u.Mint(&rpcuritoken.MintArguments{Account: account.Account{Address: fixtures.Owner.Address}, URI: "AB"}, &reply)
	assert.Equal(t, fault.MissingSecret, err, "no secret")
}

func TestBurn(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tokens := mocks.NewMockTokens(ctl)
	tokens.EXPECT().Burn(gomock.Any(), fixtures.Owner, fixtures.TokenID).Return(&submission.Result{TxHash: fixtures.TxHash}, nil).Times(1)

	u := rpcuritoken.New(logger.New(fixtures.LogCategory), tokens, time.Second)

	var reply rpcuritoken.ResultReply
	err := u.Burn(&rpcuritoken.BurnArguments{Account: fixtures.Owner}, &reply)
	assert.Equal(t, fault.MissingURITokenID, err, "no token id")

	err = u.Burn(&rpcuritoken.BurnArguments{Account: fixtures.Owner, URITokenID: fixtures.TokenID}, &reply)
	assert.Nil(t, err, "wrong Burn")
	assert.Equal(t, fixtures.TxHash, reply.Result.TxHash, "wrong hash")
}

func TestListAndFind(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	token := uritoken.Token{Index: fixtures.TokenID, URI: "ABCD", Owner: fixtures.Owner.Address, Issuer: fixtures.Owner.Address}

	tokens := mocks.NewMockTokens(ctl)
	tokens.EXPECT().List(gomock.Any(), fixtures.Owner.Address).Return([]uritoken.Token{token}, nil).Times(1)
	tokens.EXPECT().Find(gomock.Any(), fixtures.Owner.Address, fixtures.TokenID).Return(&token, nil).Times(1)

	u := rpcuritoken.New(logger.New(fixtures.LogCategory), tokens, time.Second)

	var list rpcuritoken.ListReply
	err := u.List(&rpcuritoken.ListArguments{Address: "rBad"}, &list)
	assert.Equal(t, fault.InvalidAccountAddress, err, "bad address")

	err = u.List(&rpcuritoken.ListArguments{Address: fixtures.Owner.Address}, &list)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, []uritoken.Token{token}, list.Tokens, "wrong tokens")

	var found rpcuritoken.FindReply
	err = u.Find(&rpcuritoken.FindArguments{Address: fixtures.Owner.Address, URITokenID: "7C"}, &found)
	assert.Equal(t, fault.InvalidURITokenID, err, "short token id")

	err = u.Find(&rpcuritoken.FindArguments{Address: fixtures.Owner.Address, URITokenID: fixtures.TokenID}, &found)
	assert.Nil(t, err, "wrong Find")
	assert.Equal(t, &token, found.Token, "wrong token")
}
