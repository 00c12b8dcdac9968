// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hooks

import (
	"context"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/transaction"
)

// Source - where a resolved namespace came from
type Source int

// list of namespace sources
const (
	Fresh Source = iota
	AccountHook
	Definition
)

// String - printable source
func (s Source) String() string {
	switch s {
	case AccountHook:
		return "account hook"
	case Definition:
		return "hook definition"
	default:
		return "fresh"
	}
}

// Resolution - the operational hook of an account and its namespace
//
// Hook is nil for Fresh and Position is then the slot an install
// would use.  DefinitionErr holds a failed definition lookup, which
// leaves Namespace as the hook's own value, possibly empty.
type Resolution struct {
	Address       string
	Hook          *transaction.Hook
	Position      int
	Namespace     string
	Source        Source
	DefinitionErr error
}

// Installed - true if the account runs the operational hook
func (r *Resolution) Installed() bool {
	return nil != r.Hook
}

// Resolver - namespace decisions for an account
type Resolver interface {
	Resolve(ctx context.Context, address string) (*Resolution, error)
	ResolveNamespace(ctx context.Context, address string) (string, error)
}

// DescriptorResolver - Resolver reading the current ledger state
//
// nothing is cached, every call re-queries the ledger
type DescriptorResolver struct {
	log      *logger.L
	queries  ledger.Queries
	selector Selector
}

// NewResolver - create a resolver
func NewResolver(log *logger.L, queries ledger.Queries, selector Selector) *DescriptorResolver {
	return &DescriptorResolver{
		log:      log,
		queries:  queries,
		selector: selector,
	}
}

// ResolveNamespace - the namespace an install or update must use
func (r *DescriptorResolver) ResolveNamespace(ctx context.Context, address string) (string, error) {
	resolution, err := r.Resolve(ctx, address)
	if nil != err {
		return "", err
	}
	return resolution.Namespace, nil
}

// Resolve - find the operational hook and decide its namespace
//
// an account without hooks gets a fresh namespace, any other failure
// to read the hook list is returned as TransactionPreparation
func (r *DescriptorResolver) Resolve(ctx context.Context, address string) (*Resolution, error) {
	hooks, err := r.queries.AccountHooks(ctx, address)
	if nil != err && !fault.IsLedgerNotFound(err) {
		return nil, fault.NewLedgerError(fault.TransactionPreparation, "account hooks", fault.CodeOf(err), err)
	}

	position := r.selector.Select(hooks)
	if position < 0 {
		return r.fresh(address, hooks)
	}

	if r.selector.Positional() && len(hooks) > 1 {
		r.log.Warnf("account: %s has %d hooks and no hook hash is configured, using position %d",
			address, len(hooks), position)
	}

	hook := hooks[position]
	resolution := &Resolution{
		Address:   address,
		Hook:      &hook,
		Position:  position,
		Namespace: hook.HookNamespace,
		Source:    AccountHook,
	}
	if "" != hook.HookNamespace {
		return resolution, nil
	}

	definition, err := r.LookupDefinition(ctx, hook.HookHash)
	if nil != err {
		r.log.Warnf("account: %s hook: %s definition lookup failed: %s", address, hook.HookHash, err)
		resolution.DefinitionErr = err
		return resolution, nil
	}
	if strings.EqualFold(definition.HookHash, hook.HookHash) && "" != definition.HookNamespace {
		resolution.Namespace = definition.HookNamespace
		resolution.Source = Definition
		return resolution, nil
	}

	r.log.Warnf("account: %s hook: %s has no namespace", address, hook.HookHash)
	return resolution, nil
}

// LookupDefinition - the ledger wide definition of a hook hash
func (r *DescriptorResolver) LookupDefinition(ctx context.Context, hookHash string) (*ledger.HookDefinition, error) {
	if "" == hookHash {
		return nil, fault.NewLedgerError(fault.NotFound, "hook definition", "", fault.MissingParameters)
	}
	return r.queries.HookDefinition(ctx, hookHash)
}

func (r *DescriptorResolver) fresh(address string, hooks []transaction.Hook) (*Resolution, error) {
	position := free(hooks)
	if position < 0 {
		return nil, fault.NewLedgerError(fault.PreconditionFailed, "account hooks", "", fault.HookPositionsFull)
	}
	namespace, err := NewNamespace()
	if nil != err {
		return nil, fault.NewLedgerError(fault.TransactionPreparation, "namespace", "", err)
	}
	r.log.Debugf("account: %s no operational hook, fresh namespace: %s", address, namespace)
	return &Resolution{
		Address:   address,
		Position:  position,
		Namespace: namespace,
		Source:    Fresh,
	}, nil
}
