// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - access to a ledger node
//
// The Client is an injected handle owned by the host application.
// Every error returned by this package is a *fault.LedgerError.
package ledger

import (
	"context"
	"encoding/json"
)

// Requester - single request/response exchange with a node
//
// params is marshalled as the request body alongside the command,
// the result object is unmarshalled into reply when reply is non nil
type Requester interface {
	Request(ctx context.Context, command string, params interface{}, reply interface{}) error
}

// Submitter - send a signed transaction blob
type Submitter interface {
	Submit(ctx context.Context, blob string) (*SubmitReply, error)
}

// Client - network client handle
type Client interface {
	Requester
	Submitter
	Close() error
}

// SubmitReply - result of the submit command
type SubmitReply struct {
	EngineResult        string          `json:"engine_result"`
	EngineResultCode    int             `json:"engine_result_code"`
	EngineResultMessage string          `json:"engine_result_message"`
	Accepted            bool            `json:"accepted"`
	Applied             bool            `json:"applied"`
	Broadcast           bool            `json:"broadcast"`
	Kept                bool            `json:"kept"`
	Queued              bool            `json:"queued"`
	TxBlob              string          `json:"tx_blob"`
	TxJSON              json.RawMessage `json:"tx_json"`
}

// Hash - transaction hash reported in tx_json
func (reply *SubmitReply) Hash() string {
	return txHash(reply.TxJSON)
}

func txHash(txJSON json.RawMessage) string {
	if 0 == len(txJSON) {
		return ""
	}
	var tx struct {
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(txJSON, &tx); nil != err {
		return ""
	}
	return tx.Hash
}

type submitRequest struct {
	TxBlob string `json:"tx_blob"`
}

// Submit - submit through any requester
func Submit(ctx context.Context, r Requester, blob string) (*SubmitReply, error) {
	var reply SubmitReply
	err := r.Request(ctx, "submit", &submitRequest{TxBlob: blob}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
