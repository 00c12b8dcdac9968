// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/rpc/ratelimit"
	"github.com/mikpaszkowski/rentald/transaction"
)

const (
	rateLimitAccount = 100
	rateBurstAccount = 50
)

// Account - RPC entry for account queries
type Account struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Timeout time.Duration
	Queries ledger.Queries
}

// New - create the account handler
func New(log *logger.L, queries ledger.Queries, timeout time.Duration) *Account {
	return &Account{
		Log:     log,
		Limiter: ratelimit.New(rateLimitAccount, rateBurstAccount),
		Timeout: timeout,
		Queries: queries,
	}
}

// ---

// InfoArguments - arguments for Account.Info
type InfoArguments struct {
	Address string `json:"address"`
}

// InfoReply - result of Account.Info
type InfoReply struct {
	Address        string   `json:"address"`
	Balance        string   `json:"balance"`
	Sequence       uint32   `json:"sequence"`
	OwnerCount     uint32   `json:"ownerCount"`
	Flags          uint32   `json:"flags"`
	HookNamespaces []string `json:"hookNamespaces,omitempty"`
	LedgerIndex    uint32   `json:"ledgerIndex"`
}

// Info - account root from the validated ledger
func (a *Account) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || !account.IsValidAddress(arguments.Address) {
		return fault.InvalidAccountAddress
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	info, err := a.Queries.AccountInfo(ctx, arguments.Address, ledger.Validated)
	if nil != err {
		a.Log.Debugf("info: %s  error: %s", arguments.Address, err)
		return err
	}

	reply.Address = info.AccountData.Account
	reply.Balance = info.AccountData.Balance
	reply.Sequence = info.AccountData.Sequence
	reply.OwnerCount = info.AccountData.OwnerCount
	reply.Flags = info.AccountData.Flags
	reply.HookNamespaces = info.AccountData.HookNamespaces
	reply.LedgerIndex = info.LedgerIndex
	return nil
}

// ---

// NamespaceArguments - arguments for Account.Namespace
type NamespaceArguments struct {
	Address   string `json:"address"`
	Namespace string `json:"namespace"`
}

// NamespaceReply - result of Account.Namespace
type NamespaceReply struct {
	Address   string             `json:"address"`
	Namespace string             `json:"namespace"`
	Entries   []ledger.HookState `json:"entries"`
}

// Namespace - hook state entries stored under one namespace
func (a *Account) Namespace(arguments *NamespaceArguments, reply *NamespaceReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || !account.IsValidAddress(arguments.Address) {
		return fault.InvalidAccountAddress
	}
	if !transaction.IsHash256(arguments.Namespace) {
		return fault.InvalidNamespace
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	ns, err := a.Queries.AccountNamespace(ctx, arguments.Address, arguments.Namespace)
	if nil != err {
		return err
	}

	reply.Address = arguments.Address
	reply.Namespace = ns.NamespaceID
	reply.Entries = ns.NamespaceEntries
	if nil == reply.Entries {
		reply.Entries = []ledger.HookState{}
	}
	return nil
}
