// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hooks

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
)

// Applied - a submitted hook change and the namespace it used
type Applied struct {
	Namespace string             `json:"namespace"`
	Source    string             `json:"source"`
	Result    *submission.Result `json:"result"`
}

// Info - one installed hook with its namespace state
type Info struct {
	Position    int                     `json:"position"`
	HookHash    string                  `json:"hookHash"`
	HookOn      string                  `json:"hookOn,omitempty"`
	Namespace   string                  `json:"namespace"`
	Operational bool                    `json:"operational"`
	Grants      []transaction.HookGrant `json:"grants"`
	State       []ledger.HookState      `json:"state"`
}

// Service - hook lifecycle of the operational hook
type Service struct {
	log       *logger.L
	queries   ledger.Queries
	resolver  Resolver
	factory   *Factory
	selector  Selector
	submitter submission.Submitter
}

// NewService - create the hook lifecycle service
func NewService(log *logger.L, queries ledger.Queries, resolver Resolver, factory *Factory, selector Selector, submitter submission.Submitter) *Service {
	return &Service{
		log:       log,
		queries:   queries,
		resolver:  resolver,
		factory:   factory,
		selector:  selector,
		submitter: submitter,
	}
}

// Install - install the operational hook, reusing an existing namespace
//
// an installed hook whose namespace cannot be determined is not
// overwritten, since that would orphan its state
func (s *Service) Install(ctx context.Context, acct account.Account, grants []transaction.HookGrant) (*Applied, error) {
	resolution, err := s.resolve(ctx, acct, "install")
	if nil != err {
		return nil, err
	}
	if resolution.Installed() && "" == resolution.Namespace {
		return nil, unknownNamespace("install", resolution)
	}
	if len(grants) > transaction.MaximumHookGrants {
		return nil, fault.NewLedgerError(fault.PreconditionFailed, "install", "", fault.TooManyGrants)
	}

	tx, err := s.factory.Install(acct.Address, resolution.Position, resolution.Namespace, s.ownHash(grants))
	if nil != err {
		return nil, fault.NewLedgerError(fault.PreconditionFailed, "install", "", err)
	}
	return s.submit(ctx, acct, tx, resolution)
}

// Update - replace the grants of the operational hook keeping its namespace
//
// an empty grant list leaves the existing grants unchanged
func (s *Service) Update(ctx context.Context, acct account.Account, grants []transaction.HookGrant) (*Applied, error) {
	resolution, err := s.installed(ctx, acct, "update")
	if nil != err {
		return nil, err
	}
	if "" == resolution.Namespace {
		return nil, unknownNamespace("update", resolution)
	}
	if len(grants) > transaction.MaximumHookGrants {
		return nil, fault.NewLedgerError(fault.PreconditionFailed, "update", "", fault.TooManyGrants)
	}

	tx := s.factory.Update(acct.Address, resolution.Position, resolution.Namespace, s.ownHash(grants))
	return s.submit(ctx, acct, tx, resolution)
}

// Reset - delete the state of a namespace, defaults to the resolved one
func (s *Service) Reset(ctx context.Context, acct account.Account, namespace string) (*Applied, error) {
	if "" != namespace && !transaction.IsHash256(namespace) {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "reset", "", fault.InvalidNamespace)
	}

	resolution, err := s.installed(ctx, acct, "reset")
	if nil != err {
		return nil, err
	}
	if "" != namespace {
		resolution.Namespace = namespace
	}
	if "" == resolution.Namespace {
		return nil, unknownNamespace("reset", resolution)
	}

	tx := s.factory.Reset(acct.Address, resolution.Position, resolution.Namespace)
	return s.submit(ctx, acct, tx, resolution)
}

// Remove - uninstall the operational hook
func (s *Service) Remove(ctx context.Context, acct account.Account) (*Applied, error) {
	resolution, err := s.installed(ctx, acct, "remove")
	if nil != err {
		return nil, err
	}
	tx := s.factory.Remove(acct.Address, resolution.Position)
	return s.submit(ctx, acct, tx, resolution)
}

// Namespace - the namespace an install or update of an address would use
func (s *Service) Namespace(ctx context.Context, address string) (*Resolution, error) {
	if !account.IsValidAddress(address) {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "namespace", "", fault.InvalidAccountAddress)
	}
	return s.resolver.Resolve(ctx, address)
}

// List - every hook of an address with grants and namespace state
func (s *Service) List(ctx context.Context, address string) ([]Info, error) {
	if !account.IsValidAddress(address) {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "list hooks", "", fault.InvalidAccountAddress)
	}

	hooks, err := s.queries.AccountHooks(ctx, address)
	if fault.IsLedgerNotFound(err) {
		return []Info{}, nil
	}
	if nil != err {
		return nil, err
	}

	operational := s.selector.Select(hooks)
	list := make([]Info, 0, len(hooks))
	for i, hook := range hooks {
		if "" == hook.HookHash {
			continue
		}
		info := Info{
			Position:    i,
			HookHash:    hook.HookHash,
			HookOn:      hook.HookOn,
			Namespace:   hook.HookNamespace,
			Operational: i == operational,
			Grants:      hook.Grants(),
			State:       []ledger.HookState{},
		}
		if "" == info.Namespace {
			definition, err := s.queries.HookDefinition(ctx, hook.HookHash)
			if nil == err {
				info.Namespace = definition.HookNamespace
				if "" == info.HookOn {
					info.HookOn = definition.HookOn
				}
			} else {
				s.log.Warnf("account: %s hook: %s definition lookup failed: %s", address, hook.HookHash, err)
			}
		}
		if "" != info.Namespace {
			reply, err := s.queries.AccountNamespace(ctx, address, info.Namespace)
			switch {
			case nil == err:
				info.State = reply.NamespaceEntries
			case fault.IsLedgerNotFound(err):
			default:
				return nil, err
			}
		}
		list = append(list, info)
	}
	return list, nil
}

func (s *Service) resolve(ctx context.Context, acct account.Account, operation string) (*Resolution, error) {
	if !account.IsValidAddress(acct.Address) {
		return nil, fault.NewLedgerError(fault.InvalidAccount, operation, "", fault.InvalidAccountAddress)
	}
	return s.resolver.Resolve(ctx, acct.Address)
}

func (s *Service) installed(ctx context.Context, acct account.Account, operation string) (*Resolution, error) {
	resolution, err := s.resolve(ctx, acct, operation)
	if nil != err {
		return nil, err
	}
	if !resolution.Installed() {
		return nil, fault.NewLedgerError(fault.PreconditionFailed, operation, "", fault.HookNotInstalled)
	}
	return resolution, nil
}

func (s *Service) submit(ctx context.Context, acct account.Account, tx *transaction.Transaction, resolution *Resolution) (*Applied, error) {
	s.log.Infof("%s: account: %s  position: %d  namespace: %s (%s)",
		tx.Kind, acct.Address, resolution.Position, resolution.Namespace, resolution.Source)

	result, err := s.submitter.Submit(ctx, acct, tx)
	if nil != err {
		return nil, err
	}
	return &Applied{
		Namespace: resolution.Namespace,
		Source:    resolution.Source.String(),
		Result:    result,
	}, nil
}

// grants without a hook hash apply to the operational hook
func (s *Service) ownHash(grants []transaction.HookGrant) []transaction.HookGrant {
	filled := make([]transaction.HookGrant, len(grants))
	for i, g := range grants {
		if "" == g.HookHash {
			g.HookHash = s.factory.Code().HookHash
		}
		filled[i] = g
	}
	return filled
}

func unknownNamespace(operation string, resolution *Resolution) error {
	cause := resolution.DefinitionErr
	if nil == cause {
		cause = fault.InvalidNamespace
	}
	return fault.NewLedgerError(fault.PreconditionFailed, operation, "", cause)
}
