// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/mikpaszkowski/rentald/counter"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	HookHash string
	Timeout  time.Duration
	Queries  ledger.Queries
	counter  *counter.Counter
}

// New - create the node handler
func New(log *logger.L, queries ledger.Queries, start time.Time, version string, hookHash string, counter *counter.Counter, timeout time.Duration) *Node {
	return &Node{
		Log:      log,
		Limiter:  ratelimit.New(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		HookHash: hookHash,
		Timeout:  timeout,
		Queries:  queries,
		counter:  counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version  string     `json:"version"`
	Uptime   string     `json:"uptime"`
	RPCs     uint64     `json:"rpcs"`
	HookHash string     `json:"hookHash,omitempty"`
	Ledger   LedgerInfo `json:"ledger"`
}

// LedgerInfo - state of the connected ledger node
//
// Error is set instead of failing the whole request
type LedgerInfo struct {
	BuildVersion    string `json:"buildVersion,omitempty"`
	NetworkID       uint32 `json:"networkID"`
	ServerState     string `json:"serverState,omitempty"`
	ValidatedLedger uint32 `json:"validatedLedger"`
	Error           string `json:"error,omitempty"`
}

// Info - return some information about this service
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).Round(time.Second).String()
	reply.HookHash = node.HookHash
	if nil != node.counter {
		reply.RPCs = node.counter.Uint64()
	}

	ctx, cancel := context.WithTimeout(context.Background(), node.Timeout)
	defer cancel()

	info, err := node.Queries.ServerInfo(ctx)
	if nil != err {
		node.Log.Warnf("server info error: %s", err)
		reply.Ledger.Error = err.Error()
		return nil
	}
	reply.Ledger = LedgerInfo{
		BuildVersion:    info.Info.BuildVersion,
		NetworkID:       info.Info.NetworkID,
		ServerState:     info.Info.ServerState,
		ValidatedLedger: info.Info.ValidatedLedger.Sequence,
	}
	return nil
}
