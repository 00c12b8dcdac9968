// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/grant"
	"github.com/mikpaszkowski/rentald/hooks"
	"github.com/mikpaszkowski/rentald/mocks"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockResolver, *mocks.MockSubmitter, *grant.Orchestrator) {
	ctl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctl)
	submitter := mocks.NewMockSubmitter(ctl)
	o := grant.New(logger.New(fixtures.LogCategory), resolver, hooks.NewFactory(nil), submitter)
	return ctl, resolver, submitter, o
}

func installed(grants ...transaction.HookGrant) *hooks.Resolution {
	return &hooks.Resolution{
		Address: fixtures.Owner.Address,
		Hook: &transaction.Hook{
			HookHash:      fixtures.HookHash,
			HookNamespace: fixtures.Namespace,
			HookGrants:    transaction.GrantEntries(grants),
		},
		Position:  0,
		Namespace: fixtures.Namespace,
		Source:    hooks.AccountHook,
	}
}

func TestGrantAccessWithoutHook(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, resolver, submitter, o := setup(t)
	defer ctl.Finish()

	resolver.EXPECT().Resolve(gomock.Any(), fixtures.Owner.Address).Return(&hooks.Resolution{
		Address:   fixtures.Owner.Address,
		Namespace: fixtures.Namespace,
		Source:    hooks.Fresh,
	}, nil).Times(1)
	submitter.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := o.GrantAccess(context.Background(), fixtures.Owner, fixtures.Renter.Address)
	assert.Nil(t, result, "result returned")
	assert.True(t, fault.IsPreconditionFailed(err), "expected precondition failed, got: %v", err)
}

func TestGrantAccessAppends(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, resolver, submitter, o := setup(t)
	defer ctl.Finish()

	existing := transaction.HookGrant{HookHash: fixtures.HookHash, Authorize: fixtures.Third.Address}
	resolver.EXPECT().Resolve(gomock.Any(), fixtures.Owner.Address).Return(installed(existing), nil).Times(1)
	submitter.EXPECT().Submit(gomock.Any(), fixtures.Owner, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ account.Account, tx *transaction.Transaction) (*submission.Result, error) {
			assert.Equal(t, transaction.UpdateHook, tx.Kind, "wrong kind")
			assert.Equal(t, 1, len(tx.Hooks), "wrong positions")
			hook := tx.Hooks[0].Hook
			assert.Equal(t, fixtures.Namespace, hook.HookNamespace, "namespace not preserved")
			assert.Equal(t, []transaction.HookGrant{
				existing,
				{HookHash: fixtures.HookHash, Authorize: fixtures.Renter.Address},
			}, hook.Grants(), "wrong grants")
			return &submission.Result{EngineResultCode: "tesSUCCESS", TxHash: fixtures.TxHash}, nil
		}).Times(1)

	result, err := o.GrantAccess(context.Background(), fixtures.Owner, fixtures.Renter.Address)
	assert.Nil(t, err, "grant error")
	assert.Equal(t, fixtures.TxHash, result.TxHash, "wrong hash")
}

func TestGrantAccessDoesNotDuplicate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, resolver, submitter, o := setup(t)
	defer ctl.Finish()

	existing := transaction.HookGrant{HookHash: fixtures.HookHash, Authorize: fixtures.Renter.Address}
	resolver.EXPECT().Resolve(gomock.Any(), fixtures.Owner.Address).Return(installed(existing), nil).Times(1)
	submitter.EXPECT().Submit(gomock.Any(), fixtures.Owner, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ account.Account, tx *transaction.Transaction) (*submission.Result, error) {
			assert.Equal(t, 1, len(tx.Hooks[0].Hook.HookGrants), "grant duplicated")
			return &submission.Result{EngineResultCode: "tesSUCCESS"}, nil
		}).Times(1)

	_, err := o.GrantAccess(context.Background(), fixtures.Owner, fixtures.Renter.Address)
	assert.Nil(t, err, "grant error")
}

func TestGrantAccessFullList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, resolver, submitter, o := setup(t)
	defer ctl.Finish()

	full := make([]transaction.HookGrant, transaction.MaximumHookGrants)
	for i := range full {
		full[i] = transaction.HookGrant{HookHash: fixtures.HookHash, Authorize: fixtures.Third.Address + strings.Repeat("x", i)}
	}
	resolver.EXPECT().Resolve(gomock.Any(), fixtures.Owner.Address).Return(installed(full...), nil).Times(1)
	submitter.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := o.GrantAccess(context.Background(), fixtures.Owner, fixtures.Renter.Address)
	assert.True(t, fault.IsPreconditionFailed(err), "expected precondition failed, got: %v", err)
	assert.True(t, errors.Is(err, fault.TooManyGrants), "wrong cause")
}

func TestGrantAccessUnknownNamespace(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, resolver, submitter, o := setup(t)
	defer ctl.Finish()

	resolution := installed()
	resolution.Namespace = ""
	resolution.Hook.HookNamespace = ""
	resolution.DefinitionErr = fault.NewLedgerError(fault.NotFound, "ledger_entry", "entryNotFound", errors.New("missing"))

	resolver.EXPECT().Resolve(gomock.Any(), fixtures.Owner.Address).Return(resolution, nil).Times(1)
	submitter.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := o.GrantAccess(context.Background(), fixtures.Owner, fixtures.Renter.Address)
	assert.True(t, fault.IsPreconditionFailed(err), "expected precondition failed, got: %v", err)
}

func TestGrantAccessBadGrantee(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, resolver, _, o := setup(t)
	defer ctl.Finish()

	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	_, err := o.GrantAccess(context.Background(), fixtures.Owner, "rBad")
	assert.True(t, fault.IsInvalidAccount(err), "bad grantee accepted")
}

func TestHasAccess(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, resolver, _, o := setup(t)
	defer ctl.Finish()

	existing := transaction.HookGrant{HookHash: fixtures.HookHash, Authorize: fixtures.Renter.Address}
	resolver.EXPECT().Resolve(gomock.Any(), fixtures.Owner.Address).Return(installed(existing), nil).Times(2)

	ok, err := o.HasAccess(context.Background(), fixtures.Owner.Address, fixtures.Renter.Address)
	assert.Nil(t, err, "has access error")
	assert.True(t, ok, "grant not found")

	ok, err = o.HasAccess(context.Background(), fixtures.Owner.Address, fixtures.Third.Address)
	assert.Nil(t, err, "has access error")
	assert.False(t, ok, "unexpected grant")

	assert.False(t, grant.HasGrant(nil, fixtures.Renter.Address), "nil hook granted")
}
