// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/engineresult"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/rpc/ratelimit"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// Journal - recent submission records
type Journal interface {
	Get(hash string) (submission.Record, error)
	Recent(address string) []submission.Record
}

// Resubmitter - sends a signed blob again
type Resubmitter interface {
	Resubmit(ctx context.Context, kind transaction.Kind, address string, signed *ledger.Signed) (*submission.Result, error)
}

// Transaction - RPC entry for submission status
type Transaction struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Timeout     time.Duration
	Journal     Journal
	Resubmitter Resubmitter
}

// New - create the transaction handler
func New(log *logger.L, journal Journal, resubmitter Resubmitter, timeout time.Duration) *Transaction {
	return &Transaction{
		Log:         log,
		Limiter:     ratelimit.New(rateLimitTransaction, rateBurstTransaction),
		Timeout:     timeout,
		Journal:     journal,
		Resubmitter: resubmitter,
	}
}

// ---

// StatusArguments - arguments for Transaction.Status
type StatusArguments struct {
	TxHash string `json:"txHash"`
}

// StatusReply - result of Transaction.Status
type StatusReply struct {
	Record submission.Record `json:"record"`
	Action string            `json:"action"`
}

// Status - the journaled record of a submitted transaction
func (t *Transaction) Status(arguments *StatusArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments || !transaction.IsHash256(arguments.TxHash) {
		return fault.InvalidHex
	}

	record, err := t.Journal.Get(arguments.TxHash)
	if nil != err {
		return err
	}
	reply.Record = record
	reply.Action = action(record)
	return nil
}

// ---

// RecentArguments - arguments for Transaction.Recent
type RecentArguments struct {
	Address string `json:"address"`
}

// RecentReply - result of Transaction.Recent
type RecentReply struct {
	Records []submission.Record `json:"records"`
}

// Recent - journaled records of an account, newest first
func (t *Transaction) Recent(arguments *RecentArguments, reply *RecentReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments || !account.IsValidAddress(arguments.Address) {
		return fault.InvalidAccountAddress
	}
	reply.Records = t.Journal.Recent(arguments.Address)
	return nil
}

// ---

// ResubmitArguments - arguments for Transaction.Resubmit
type ResubmitArguments struct {
	TxHash string `json:"txHash"`
}

// ResubmitReply - result of Transaction.Resubmit
type ResubmitReply struct {
	Result *submission.Result `json:"result"`
}

// Resubmit - send the signed blob of a retryable submission again
//
// only records whose outcome asks for a resubmission qualify, the
// blob is never re-signed
func (t *Transaction) Resubmit(arguments *ResubmitArguments, reply *ResubmitReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments || !transaction.IsHash256(arguments.TxHash) {
		return fault.InvalidHex
	}

	record, err := t.Journal.Get(arguments.TxHash)
	if nil != err {
		return err
	}
	if "" == record.Blob {
		return fault.NewLedgerError(fault.PreconditionFailed, "resubmit", "", fault.TransactionNotSigned)
	}
	if !resubmittable(record) {
		return fault.NewLedgerError(fault.PreconditionFailed, "resubmit", record.EngineResultCode, fault.NotRetryable)
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.Timeout)
	defer cancel()

	t.Log.Infof("resubmit: %s  hash: %s  previous: %s", record.Kind, record.TxHash, record.EngineResultCode)
	result, err := t.Resubmitter.Resubmit(ctx, record.Kind, record.Account, &ledger.Signed{
		Blob: record.Blob,
		Hash: record.TxHash,
	})
	if nil != err {
		return err
	}
	reply.Result = result
	return nil
}

// a retryable engine result, or a network failure after signing
func resubmittable(record submission.Record) bool {
	switch record.Stage {
	case submission.StageClassify:
		return engineresult.ResubmitWithBackoff == record.Outcome.Action()
	case submission.StageSubmit:
		return fault.IsNetworkUnavailable(record.Err)
	default:
		return false
	}
}

func action(record submission.Record) string {
	switch record.Stage {
	case submission.StageDone, submission.StageClassify:
		return record.Outcome.Action().String()
	default:
		if resubmittable(record) {
			return engineresult.ResubmitWithBackoff.String()
		}
		return engineresult.Reject.String()
	}
}
