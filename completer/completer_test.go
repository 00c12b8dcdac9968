// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package completer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/completer"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/mocks"
	"github.com/mikpaszkowski/rentald/transaction"
)

func newCompleter(queries ledger.Queries) *completer.Completer {
	return completer.New(logger.New(fixtures.LogCategory), queries, account.KeyDeriver{}, completer.DefaultFees())
}

func burn(address string) *transaction.Transaction {
	tx := transaction.New(transaction.Burn, address, 0)
	tx.URITokenID = fixtures.TokenID
	return tx
}

func expectNetwork(q *mocks.MockQueries, openFee string, networkID uint32) {
	q.EXPECT().AccountInfo(gomock.Any(), fixtures.Owner.Address, ledger.Current).Return(&ledger.AccountInfoReply{
		AccountData:        ledger.AccountData{Account: fixtures.Owner.Address, Balance: "1000000000", Sequence: 41},
		LedgerCurrentIndex: 900,
	}, nil).Times(1)
	q.EXPECT().Fee(gomock.Any()).Return(&ledger.FeeReply{
		Drops:              ledger.FeeDrops{OpenLedgerFee: openFee, BaseFee: "10"},
		LedgerCurrentIndex: 1000,
	}, nil).Times(1)
	q.EXPECT().ServerInfo(gomock.Any()).Return(&ledger.ServerInfoReply{
		Info: ledger.ServerInfo{NetworkID: networkID},
	}, nil).Times(1)
}

func TestCompleteFillsMissingFields(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQueries(ctl)
	expectNetwork(q, "10", 21338)

	tx := burn(fixtures.Owner.Address)
	completed, err := newCompleter(q).Complete(context.Background(), fixtures.Owner, tx)
	assert.Nil(t, err, "complete error")
	assert.Equal(t, uint32(41), completed.Tx.Sequence, "wrong sequence")
	assert.Equal(t, "12", completed.Tx.Fee, "fee below minimum")
	assert.Equal(t, uint32(1020), completed.Tx.LastLedgerSequence, "wrong last ledger sequence")
	assert.Equal(t, uint32(21338), completed.Tx.NetworkID, "wrong network id")
	assert.Equal(t, "1000000000", completed.AccountState.Balance, "wrong balance")
	assert.Equal(t, fixtures.Owner.Address, completed.Identity.Address, "wrong identity")

	assert.Equal(t, uint32(0), tx.Sequence, "input modified")
	assert.Equal(t, "", tx.Fee, "input modified")
}

func TestCompleteUsesOpenLedgerFee(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQueries(ctl)
	expectNetwork(q, "5000", 21337)

	completed, err := newCompleter(q).Complete(context.Background(), fixtures.Owner, burn(fixtures.Owner.Address))
	assert.Nil(t, err, "complete error")
	assert.Equal(t, "5000", completed.Tx.Fee, "open ledger fee not used")
}

func TestCompleteInstallFeeFloor(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQueries(ctl)
	expectNetwork(q, "10", 21338)

	code := "0061736D"
	tx := transaction.New(transaction.InstallHook, fixtures.Owner.Address, 0)
	tx.Hooks = []transaction.HookEntry{{Hook: transaction.Hook{CreateCode: &code}}}

	completed, err := newCompleter(q).Complete(context.Background(), fixtures.Owner, tx)
	assert.Nil(t, err, "complete error")
	assert.Equal(t, "2000000", completed.Tx.Fee, "install floor not applied")
}

func TestCompleteKeepsCallerValues(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQueries(ctl)
	q.EXPECT().AccountInfo(gomock.Any(), fixtures.Owner.Address, ledger.Current).Return(&ledger.AccountInfoReply{
		AccountData: ledger.AccountData{Sequence: 41},
	}, nil).Times(1)
	q.EXPECT().Fee(gomock.Any()).Times(0)
	q.EXPECT().ServerInfo(gomock.Any()).Times(0)

	tx := burn(fixtures.Owner.Address)
	tx.Sequence = 7
	tx.Fee = "99"
	tx.LastLedgerSequence = 123
	tx.NetworkID = 21338

	completed, err := newCompleter(q).Complete(context.Background(), fixtures.Owner, tx)
	assert.Nil(t, err, "complete error")
	assert.Equal(t, uint32(7), completed.Tx.Sequence, "sequence overwritten")
	assert.Equal(t, "99", completed.Tx.Fee, "fee overwritten")
	assert.Equal(t, uint32(123), completed.Tx.LastLedgerSequence, "last ledger overwritten")
	assert.Equal(t, uint32(21338), completed.Tx.NetworkID, "network id overwritten")
}

func TestCompleteLegacyNetworkOmitsID(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQueries(ctl)
	expectNetwork(q, "10", 1)

	completed, err := newCompleter(q).Complete(context.Background(), fixtures.Owner, burn(fixtures.Owner.Address))
	assert.Nil(t, err, "complete error")
	assert.Equal(t, uint32(0), completed.Tx.NetworkID, "legacy network id set")
}

func TestCompleteFillsAccount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQueries(ctl)
	expectNetwork(q, "10", 21338)

	secretOnly := account.Account{Secret: fixtures.Owner.Secret}
	completed, err := newCompleter(q).Complete(context.Background(), secretOnly, burn(""))
	assert.Nil(t, err, "complete error")
	assert.Equal(t, fixtures.Owner.Address, completed.Tx.Account, "account not filled")
}

func TestCompleteInvalidAccount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no network calls expected
	q := mocks.NewMockQueries(ctl)

	items := []account.Account{
		{Address: fixtures.Owner.Address, Secret: "not-a-seed"},
		{Address: fixtures.Owner.Address, Secret: ""},
		{Address: fixtures.Renter.Address, Secret: fixtures.Owner.Secret},
	}
	for i, item := range items {
		_, err := newCompleter(q).Complete(context.Background(), item, burn(item.Address))
		assert.True(t, fault.IsInvalidAccount(err), "%d: expected invalid account, got: %v", i, err)
	}
}

func TestCompleteMalformed(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQueries(ctl)

	tx := burn(fixtures.Owner.Address)
	tx.URITokenID = ""
	_, err := newCompleter(q).Complete(context.Background(), fixtures.Owner, tx)
	assert.True(t, fault.IsMalformedTransaction(err), "expected malformed, got: %v", err)
	assert.True(t, errors.Is(err, fault.MissingURITokenID), "cause lost")
}

func TestCompleteNetworkFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := mocks.NewMockQueries(ctl)
	cause := fault.NewLedgerError(fault.NetworkUnavailable, "fee", "timeout", context.DeadlineExceeded)
	q.EXPECT().AccountInfo(gomock.Any(), fixtures.Owner.Address, ledger.Current).Return(&ledger.AccountInfoReply{}, nil).Times(1)
	q.EXPECT().Fee(gomock.Any()).Return(nil, cause).Times(1)
	q.EXPECT().ServerInfo(gomock.Any()).Times(0)

	_, err := newCompleter(q).Complete(context.Background(), fixtures.Owner, burn(fixtures.Owner.Address))
	assert.True(t, fault.IsTransactionPreparation(err), "expected transaction preparation, got: %v", err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "cause lost")
	assert.Equal(t, "timeout", fault.CodeOf(err), "code lost")
}
