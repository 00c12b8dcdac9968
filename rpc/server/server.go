// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/counter"
	"github.com/mikpaszkowski/rentald/grant"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/rpc/account"
	"github.com/mikpaszkowski/rentald/rpc/hook"
	"github.com/mikpaszkowski/rentald/rpc/node"
	"github.com/mikpaszkowski/rentald/rpc/rental"
	"github.com/mikpaszkowski/rentald/rpc/transaction"
	"github.com/mikpaszkowski/rentald/rpc/uritoken"
)

// DefaultTimeout - ledger round trip allowance of a single call
const DefaultTimeout = 30 * time.Second

// Services - the domain operations behind the RPC names
type Services struct {
	Queries     ledger.Queries
	Hooks       hook.Manager
	Granter     grant.Granter
	Rentals     rental.Rentals
	Tokens      uritoken.Tokens
	Journal     transaction.Journal
	Resubmitter transaction.Resubmitter
	HookHash    string
	Timeout     time.Duration
}

// Create - a server with every handler registered
//
// registered names: Account, Hook, Node, Rental, Transaction, URIToken
func Create(log *logger.L, version string, rpcCount *counter.Counter, services *Services) *rpc.Server {
	start := time.Now().UTC()

	timeout := services.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	server := rpc.NewServer()

	_ = server.Register(account.New(log, services.Queries, timeout))
	_ = server.Register(hook.New(log, services.Hooks, services.Granter, timeout))
	_ = server.Register(node.New(log, services.Queries, start, version, services.HookHash, rpcCount, timeout))
	_ = server.Register(rental.New(log, services.Rentals, timeout))
	_ = server.Register(transaction.New(log, services.Journal, services.Resubmitter, timeout))
	_ = server.Register(uritoken.New(log, services.Tokens, timeout))

	return server
}
