// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package grant - authorize a counterparty on an account's hook
package grant

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/hooks"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
)

// Granter - the contract used by the rental workflow
type Granter interface {
	GrantAccess(ctx context.Context, granter account.Account, grantee string) (*submission.Result, error)
	HasAccess(ctx context.Context, granter string, grantee string) (bool, error)
}

// Orchestrator - appends grants to the granter's operational hook
type Orchestrator struct {
	log       *logger.L
	resolver  hooks.Resolver
	factory   *hooks.Factory
	submitter submission.Submitter
}

// New - create a grant orchestrator
func New(log *logger.L, resolver hooks.Resolver, factory *hooks.Factory, submitter submission.Submitter) *Orchestrator {
	return &Orchestrator{
		log:       log,
		resolver:  resolver,
		factory:   factory,
		submitter: submitter,
	}
}

// HasGrant - true if a hook already authorizes the grantee
func HasGrant(hook *transaction.Hook, grantee string) bool {
	if nil == hook {
		return false
	}
	return hook.HasGrant(hook.HookHash, grantee)
}

// HasAccess - true if the granter's operational hook authorizes the grantee
func (o *Orchestrator) HasAccess(ctx context.Context, granter string, grantee string) (bool, error) {
	resolution, err := o.resolver.Resolve(ctx, granter)
	if nil != err {
		return false, err
	}
	return HasGrant(resolution.Hook, grantee), nil
}

// GrantAccess - submit an update that authorizes grantee on the granter's hook
//
// existing grants are kept and nothing is submitted when the
// granter has no hook, the namespace is unknown or the list is full
func (o *Orchestrator) GrantAccess(ctx context.Context, granter account.Account, grantee string) (*submission.Result, error) {
	if !account.IsValidAddress(grantee) {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "grant", "", fault.InvalidAccountAddress)
	}
	if !account.IsValidAddress(granter.Address) {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "grant", "", fault.InvalidAccountAddress)
	}

	resolution, err := o.resolver.Resolve(ctx, granter.Address)
	if nil != err {
		return nil, err
	}
	if !resolution.Installed() {
		return nil, fault.NewLedgerError(fault.PreconditionFailed, "grant", "", fault.HookNotInstalled)
	}
	if "" == resolution.Namespace {
		cause := resolution.DefinitionErr
		if nil == cause {
			cause = fault.InvalidNamespace
		}
		return nil, fault.NewLedgerError(fault.PreconditionFailed, "grant", "", cause)
	}

	hook := resolution.Hook
	grants := hook.Grants()
	if !HasGrant(hook, grantee) {
		if len(grants) >= transaction.MaximumHookGrants {
			return nil, fault.NewLedgerError(fault.PreconditionFailed, "grant", "", fault.TooManyGrants)
		}
		grants = append(grants, transaction.HookGrant{
			HookHash:  hook.HookHash,
			Authorize: grantee,
		})
	} else {
		o.log.Infof("account: %s already grants: %s", granter.Address, grantee)
	}

	tx := o.factory.Update(granter.Address, resolution.Position, resolution.Namespace, grants)
	o.log.Infof("grant: %s -> %s  namespace: %s  grants: %d", granter.Address, grantee, resolution.Namespace, len(grants))

	return o.submitter.Submit(ctx, granter, tx)
}
