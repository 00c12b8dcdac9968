// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hooks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/hooks"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/mocks"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
)

type serviceSetup struct {
	ctl       *gomock.Controller
	queries   *mocks.MockQueries
	submitter *mocks.MockSubmitter
	service   *hooks.Service
	code      *hooks.Code
}

func newService(t *testing.T) *serviceSetup {
	ctl := gomock.NewController(t)
	code := testCode(t)
	selector := hooks.Selector{HookHash: code.HookHash}
	log := logger.New(fixtures.LogCategory)

	s := &serviceSetup{
		ctl:       ctl,
		queries:   mocks.NewMockQueries(ctl),
		submitter: mocks.NewMockSubmitter(ctl),
		code:      code,
	}
	resolver := hooks.NewResolver(log, s.queries, selector)
	s.service = hooks.NewService(log, s.queries, resolver, hooks.NewFactory(code), selector, s.submitter)
	return s
}

func success() *submission.Result {
	return &submission.Result{EngineResultCode: "tesSUCCESS", TxHash: fixtures.TxHash}
}

// captures the single significant hook entry of a submitted SetHook
func capture(into *transaction.Hook, kind *transaction.Kind) func(context.Context, account.Account, *transaction.Transaction) (*submission.Result, error) {
	return func(_ context.Context, _ account.Account, tx *transaction.Transaction) (*submission.Result, error) {
		*into = tx.Hooks[len(tx.Hooks)-1].Hook
		*kind = tx.Kind
		return success(), nil
	}
}

func TestInstallThenResolveKeepsNamespace(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	var installed transaction.Hook
	var kind transaction.Kind

	gomock.InOrder(
		s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return(nil, notFound("ledger_entry")),
		s.submitter.EXPECT().Submit(gomock.Any(), fixtures.Owner, gomock.Any()).DoAndReturn(capture(&installed, &kind)),
	)

	applied, err := s.service.Install(context.Background(), fixtures.Owner, nil)
	assert.Nil(t, err, "install error")
	assert.Equal(t, transaction.InstallHook, kind, "wrong kind")
	assert.True(t, upperHex256.MatchString(installed.HookNamespace), "fresh namespace not hex")
	assert.Equal(t, installed.HookNamespace, applied.Namespace, "reported namespace differs")
	assert.Equal(t, "fresh", applied.Source, "wrong source")

	// the ledger now carries the installed namespace
	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return([]transaction.Hook{
		{HookHash: s.code.HookHash, HookNamespace: installed.HookNamespace},
	}, nil).Times(2)

	for i := 0; i < 2; i++ {
		resolution, err := s.service.Namespace(context.Background(), fixtures.Owner.Address)
		assert.Nil(t, err, "%d: resolve error", i)
		assert.Equal(t, installed.HookNamespace, resolution.Namespace, "%d: namespace changed", i)
	}
}

func TestReinstallReusesNamespace(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	var installed transaction.Hook
	var kind transaction.Kind

	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return([]transaction.Hook{
		{HookHash: s.code.HookHash, HookNamespace: fixtures.Namespace},
	}, nil).Times(1)
	s.submitter.EXPECT().Submit(gomock.Any(), fixtures.Owner, gomock.Any()).DoAndReturn(capture(&installed, &kind)).Times(1)

	_, err := s.service.Install(context.Background(), fixtures.Owner, nil)
	assert.Nil(t, err, "install error")
	assert.Equal(t, fixtures.Namespace, installed.HookNamespace, "namespace changed on reinstall")
}

func TestInstallRefusesUnknownNamespace(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	lookup := fault.NewLedgerError(fault.NetworkUnavailable, "ledger_entry", "", errors.New("closed"))
	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return([]transaction.Hook{
		{HookHash: s.code.HookHash},
	}, nil).Times(1)
	s.queries.EXPECT().HookDefinition(gomock.Any(), s.code.HookHash).Return(nil, lookup).Times(1)
	s.submitter.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Install(context.Background(), fixtures.Owner, nil)
	assert.True(t, fault.IsPreconditionFailed(err), "expected precondition failed, got: %v", err)
	assert.True(t, errors.Is(err, lookup), "lookup error lost")
}

func TestUpdateWithoutHook(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return(nil, notFound("ledger_entry")).Times(1)
	s.submitter.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Update(context.Background(), fixtures.Owner, nil)
	assert.True(t, fault.IsPreconditionFailed(err), "expected precondition failed, got: %v", err)
	assert.True(t, errors.Is(err, fault.HookNotInstalled), "wrong cause")
}

func TestUpdatePreservesNamespace(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	var updated transaction.Hook
	var kind transaction.Kind

	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return([]transaction.Hook{
		{HookHash: s.code.HookHash},
	}, nil).Times(1)
	s.queries.EXPECT().HookDefinition(gomock.Any(), s.code.HookHash).Return(&ledger.HookDefinition{
		HookHash:      s.code.HookHash,
		HookNamespace: fixtures.Namespace,
	}, nil).Times(1)
	s.submitter.EXPECT().Submit(gomock.Any(), fixtures.Owner, gomock.Any()).DoAndReturn(capture(&updated, &kind)).Times(1)

	grants := []transaction.HookGrant{{HookHash: s.code.HookHash, Authorize: fixtures.Renter.Address}}
	applied, err := s.service.Update(context.Background(), fixtures.Owner, grants)
	assert.Nil(t, err, "update error")
	assert.Equal(t, transaction.UpdateHook, kind, "wrong kind")
	assert.Equal(t, fixtures.Namespace, updated.HookNamespace, "namespace not preserved")
	assert.Equal(t, grants, updated.Grants(), "wrong grants")
	assert.Equal(t, "hook definition", applied.Source, "wrong source")
	assert.Nil(t, updated.CreateCode, "update carries code")
}

func TestResetExplicitNamespace(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	var reset transaction.Hook
	var kind transaction.Kind
	explicit := "0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF"

	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return([]transaction.Hook{
		{HookHash: s.code.HookHash, HookNamespace: fixtures.Namespace},
	}, nil).Times(1)
	s.submitter.EXPECT().Submit(gomock.Any(), fixtures.Owner, gomock.Any()).DoAndReturn(capture(&reset, &kind)).Times(1)

	_, err := s.service.Reset(context.Background(), fixtures.Owner, explicit)
	assert.Nil(t, err, "reset error")
	assert.Equal(t, transaction.ResetHook, kind, "wrong kind")
	assert.Equal(t, explicit, reset.HookNamespace, "explicit namespace ignored")
	assert.Equal(t, transaction.FlagNamespaceDelete, *reset.Flags, "wrong flags")

	_, err = s.service.Reset(context.Background(), fixtures.Owner, "1234")
	assert.True(t, fault.IsMalformedTransaction(err), "short namespace accepted")
}

func TestRemove(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	var removed transaction.Hook
	var kind transaction.Kind

	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return([]transaction.Hook{
		{HookHash: s.code.HookHash, HookNamespace: fixtures.Namespace},
	}, nil).Times(1)
	s.submitter.EXPECT().Submit(gomock.Any(), fixtures.Owner, gomock.Any()).DoAndReturn(capture(&removed, &kind)).Times(1)

	_, err := s.service.Remove(context.Background(), fixtures.Owner)
	assert.Nil(t, err, "remove error")
	assert.Equal(t, transaction.RemoveHook, kind, "wrong kind")
	assert.Equal(t, "", *removed.CreateCode, "code not cleared")
}

func TestServiceRejectsBadAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	bad := account.Account{Address: "rNotAnAddress", Secret: fixtures.Owner.Secret}
	_, err := s.service.Install(context.Background(), bad, nil)
	assert.True(t, fault.IsInvalidAccount(err), "bad address accepted")

	_, err = s.service.List(context.Background(), "rNotAnAddress")
	assert.True(t, fault.IsInvalidAccount(err), "bad address accepted")
}

func TestList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return([]transaction.Hook{
		{
			HookHash:      s.code.HookHash,
			HookNamespace: fixtures.Namespace,
			HookGrants: transaction.GrantEntries([]transaction.HookGrant{
				{HookHash: s.code.HookHash, Authorize: fixtures.Renter.Address},
			}),
		},
		{},
		{HookHash: fixtures.HookHash},
	}, nil).Times(1)
	s.queries.EXPECT().AccountNamespace(gomock.Any(), fixtures.Owner.Address, fixtures.Namespace).Return(&ledger.NamespaceReply{
		NamespaceEntries: []ledger.HookState{{HookStateKey: "01", HookStateData: "02"}},
	}, nil).Times(1)
	s.queries.EXPECT().HookDefinition(gomock.Any(), fixtures.HookHash).Return(nil, notFound("ledger_entry")).Times(1)

	list, err := s.service.List(context.Background(), fixtures.Owner.Address)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 2, len(list), "wrong hook count")

	assert.True(t, list[0].Operational, "operational hook not flagged")
	assert.Equal(t, 1, len(list[0].Grants), "grants missing")
	assert.Equal(t, 1, len(list[0].State), "state missing")

	assert.False(t, list[1].Operational, "foreign hook flagged")
	assert.Equal(t, 2, list[1].Position, "wrong position")
	assert.Equal(t, 0, len(list[1].State), "unexpected state")
}

func TestListWithoutHooks(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return(nil, notFound("ledger_entry")).Times(1)

	list, err := s.service.List(context.Background(), fixtures.Owner.Address)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 0, len(list), "unexpected hooks")
}

func TestInstallFillsGrantHookHash(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := newService(t)
	defer s.ctl.Finish()

	var installed transaction.Hook
	var kind transaction.Kind

	s.queries.EXPECT().AccountHooks(gomock.Any(), fixtures.Owner.Address).Return(nil, notFound("ledger_entry")).Times(1)
	s.submitter.EXPECT().Submit(gomock.Any(), fixtures.Owner, gomock.Any()).DoAndReturn(capture(&installed, &kind)).Times(1)

	grants := []transaction.HookGrant{
		{Authorize: fixtures.Renter.Address},
		{HookHash: fixtures.HookHash, Authorize: fixtures.Third.Address},
	}
	_, err := s.service.Install(context.Background(), fixtures.Owner, grants)
	assert.Nil(t, err, "install error")

	expected := []transaction.HookGrant{
		{HookHash: s.code.HookHash, Authorize: fixtures.Renter.Address},
		{HookHash: fixtures.HookHash, Authorize: fixtures.Third.Address},
	}
	assert.Equal(t, expected, installed.Grants(), "wrong grants")
	assert.Equal(t, "", grants[0].HookHash, "caller grants modified")
}
