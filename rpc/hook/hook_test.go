// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hook_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/hooks"
	"github.com/mikpaszkowski/rentald/mocks"
	"github.com/mikpaszkowski/rentald/rpc/hook"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockManager, *mocks.MockGranter, *hook.Hook) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockManager(ctl)
	g := mocks.NewMockGranter(ctl)
	h := hook.New(logger.New(fixtures.LogCategory), m, g, time.Second)
	return ctl, m, g, h
}

func TestInstall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, _, h := setup(t)
	defer ctl.Finish()

	applied := &hooks.Applied{
		Namespace: fixtures.Namespace,
		Source:    "fresh",
		Result:    &submission.Result{TxHash: fixtures.TxHash, EngineResultCode: "tesSUCCESS"},
	}
	expected := []transaction.HookGrant{{Authorize: fixtures.Renter.Address}}
	m.EXPECT().Install(gomock.Any(), fixtures.Owner, expected).Return(applied, nil).Times(1)

	var reply hook.AppliedReply
	err := h.Install(&hook.InstallArguments{
		Account: fixtures.Owner,
		Grants:  []string{fixtures.Renter.Address},
	}, &reply)
	assert.Nil(t, err, "wrong Install")
	assert.Equal(t, fixtures.Namespace, reply.Namespace, "wrong namespace")
	assert.Equal(t, "fresh", reply.Source, "wrong source")
	assert.Equal(t, fixtures.TxHash, reply.Result.TxHash, "wrong hash")
}

func TestInstallValidation(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, _, _, h := setup(t)
	defer ctl.Finish()

	var reply hook.AppliedReply

	err := h.Install(nil, &reply)
	assert.Equal(t, fault.MissingParameters, err, "nil arguments")

	err = h.Install(&hook.InstallArguments{Account: account.Account{Address: fixtures.Owner.Address}}, &reply)
	assert.Equal(t, fault.MissingSecret, err, "no secret")

	err = h.Install(&hook.InstallArguments{Account: account.Account{Address: "rBad", Secret: "x"}}, &reply)
	assert.Equal(t, fault.InvalidAccountAddress, err, "bad account")

	err = h.Update(&hook.InstallArguments{Account: fixtures.Owner, Grants: []string{"rBad"}}, &reply)
	assert.Equal(t, fault.InvalidAccountAddress, err, "bad grantee")

	many := make([]string, transaction.MaximumHookGrants+1)
	for i := range many {
		many[i] = fixtures.Renter.Address
	}
	err = h.Update(&hook.InstallArguments{Account: fixtures.Owner, Grants: many}, &reply)
	assert.Equal(t, fault.TooManyGrants, err, "too many grants")
}

func TestUpdateError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, _, h := setup(t)
	defer ctl.Finish()

	m.EXPECT().Update(gomock.Any(), fixtures.Owner, []transaction.HookGrant{}).Return(nil, fault.HookNotInstalled).Times(1)

	var reply hook.AppliedReply
	err := h.Update(&hook.InstallArguments{Account: fixtures.Owner}, &reply)
	assert.Equal(t, fault.HookNotInstalled, err, "wrong error")
}

func TestGrant(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, _, g, h := setup(t)
	defer ctl.Finish()

	result := &submission.Result{TxHash: fixtures.TxHash, EngineResultCode: "tesSUCCESS"}
	g.EXPECT().GrantAccess(gomock.Any(), fixtures.Owner, fixtures.Renter.Address).Return(result, nil).Times(1)

	var reply hook.GrantReply
	err := h.Grant(&hook.GrantArguments{Account: fixtures.Owner, Grantee: "rBad"}, &reply)
	assert.Equal(t, fault.InvalidAccountAddress, err, "bad grantee")

	err = h.Grant(&hook.GrantArguments{Account: fixtures.Owner, Grantee: fixtures.Renter.Address}, &reply)
	assert.Nil(t, err, "wrong Grant")
	assert.Equal(t, result, reply.Result, "wrong result")
}

func TestReset(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, _, h := setup(t)
	defer ctl.Finish()

	applied := &hooks.Applied{Namespace: fixtures.Namespace, Source: "account hook"}
	m.EXPECT().Reset(gomock.Any(), fixtures.Owner, "").Return(applied, nil).Times(1)

	var reply hook.AppliedReply
	err := h.Reset(&hook.ResetArguments{Account: fixtures.Owner, Namespace: "ABCD"}, &reply)
	assert.Equal(t, fault.InvalidNamespace, err, "short namespace")

	err = h.Reset(&hook.ResetArguments{Account: fixtures.Owner}, &reply)
	assert.Nil(t, err, "wrong Reset")
	assert.Equal(t, fixtures.Namespace, reply.Namespace, "wrong namespace")
}

func TestRemove(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, _, h := setup(t)
	defer ctl.Finish()

	m.EXPECT().Remove(gomock.Any(), fixtures.Owner).Return(&hooks.Applied{}, nil).Times(1)

	var reply hook.AppliedReply
	err := h.Remove(&hook.RemoveArguments{Account: fixtures.Owner}, &reply)
	assert.Nil(t, err, "wrong Remove")
}

func TestList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, _, h := setup(t)
	defer ctl.Finish()

	m.EXPECT().List(gomock.Any(), fixtures.Renter.Address).Return(nil, nil).Times(1)

	var reply hook.ListReply
	err := h.List(&hook.AddressArguments{Address: fixtures.Renter.Address}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.NotNil(t, reply.Hooks, "hooks must be an empty list")
	assert.Len(t, reply.Hooks, 0, "wrong hooks")
}

func TestNamespace(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, m, _, h := setup(t)
	defer ctl.Finish()

	resolution := &hooks.Resolution{
		Address:       fixtures.Owner.Address,
		Hook:          &transaction.Hook{HookHash: fixtures.HookHash},
		Position:      2,
		Namespace:     fixtures.Namespace,
		Source:        hooks.AccountHook,
		DefinitionErr: errors.New("definition unavailable"),
	}
	m.EXPECT().Namespace(gomock.Any(), fixtures.Owner.Address).Return(resolution, nil).Times(1)

	var reply hook.NamespaceReply
	err := h.Namespace(&hook.AddressArguments{Address: fixtures.Owner.Address}, &reply)
	assert.Nil(t, err, "wrong Namespace")
	assert.True(t, reply.Installed, "not installed")
	assert.Equal(t, 2, reply.Position, "wrong position")
	assert.Equal(t, fixtures.HookHash, reply.HookHash, "wrong hook hash")
	assert.Equal(t, "account hook", reply.Source, "wrong source")
	assert.Equal(t, "definition unavailable", reply.Warning, "wrong warning")
}
