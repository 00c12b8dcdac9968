// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package submission - complete, sign, submit and classify a transaction
//
// The coordinator fails fast: a network failure during submission is
// reported once as NetworkUnavailable and never retried here.  A
// signed blob can be sent again with Resubmit, which never re-signs.
package submission

import (
	"context"
	"errors"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/completer"
	"github.com/mikpaszkowski/rentald/engineresult"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/transaction"
)

var errEmptyReply = errors.New("empty submit reply")

// Preparer - fill and authorize a transaction before signing
type Preparer interface {
	Complete(ctx context.Context, acct account.Account, tx *transaction.Transaction) (*completer.Completed, error)
}

// Submitter - the contract used by the use cases
type Submitter interface {
	Submit(ctx context.Context, acct account.Account, tx *transaction.Transaction) (*Result, error)
}

// Result - a successfully applied submission
type Result struct {
	ID                  string               `json:"id"`
	Kind                transaction.Kind     `json:"-"`
	Account             string               `json:"account"`
	EngineResultCode    string               `json:"engineResultCode"`
	EngineResultMessage string               `json:"engineResultMessage"`
	TxHash              string               `json:"txHash"`
	Outcome             engineresult.Outcome `json:"-"`
	Raw                 *ledger.SubmitReply  `json:"raw,omitempty"`
}

// Coordinator - owns the complete, sign, submit, classify sequence
type Coordinator struct {
	log       *logger.L
	preparer  Preparer
	signer    ledger.Signer
	network   ledger.Submitter
	observers []Observer
}

// New - create a coordinator
func New(log *logger.L, preparer Preparer, signer ledger.Signer, network ledger.Submitter, observers ...Observer) *Coordinator {
	return &Coordinator{
		log:       log,
		preparer:  preparer,
		signer:    signer,
		network:   network,
		observers: observers,
	}
}

// AddObserver - attach another observer, only safe before first use
func (c *Coordinator) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// Submit - implements Submitter
func (c *Coordinator) Submit(ctx context.Context, acct account.Account, tx *transaction.Transaction) (*Result, error) {
	record := c.start(tx.Kind, acct.Address)

	completed, err := c.preparer.Complete(ctx, acct, tx)
	if nil != err {
		return nil, c.fail(record, StageComplete, err)
	}
	record.Account = completed.Tx.Account
	record.Sequence = completed.Tx.Sequence

	signed, err := c.signer.Sign(ctx, completed.Tx, completed.Identity)
	if nil != err {
		kind := fault.TransactionPreparation
		if fault.IsInvalidAccount(err) {
			kind = fault.InvalidAccount
		}
		return nil, c.fail(record, StageSign, fault.NewLedgerError(kind, "sign", fault.CodeOf(err), err))
	}
	c.log.Infof("signed: %s  account: %s  hash: %s", record.Kind, record.Account, signed.Hash)

	return c.send(ctx, record, signed)
}

// Resubmit - send an already signed blob again
func (c *Coordinator) Resubmit(ctx context.Context, kind transaction.Kind, address string, signed *ledger.Signed) (*Result, error) {
	record := c.start(kind, address)
	return c.send(ctx, record, signed)
}

func (c *Coordinator) start(kind transaction.Kind, address string) *Record {
	return &Record{
		ID:      uuid.New().String(),
		Start:   time.Now(),
		Kind:    kind,
		Account: address,
	}
}

func (c *Coordinator) send(ctx context.Context, record *Record, signed *ledger.Signed) (*Result, error) {
	record.TxHash = signed.Hash
	record.Blob = signed.Blob

	reply, err := c.network.Submit(ctx, signed.Blob)
	if nil != err {
		kind := fault.NetworkUnavailable
		if fault.IsMalformedTransaction(err) {
			kind = fault.MalformedTransaction
		}
		return nil, c.fail(record, StageSubmit, fault.NewLedgerError(kind, "submit", fault.CodeOf(err), err))
	}
	if nil == reply {
		return nil, c.fail(record, StageSubmit, fault.NewLedgerError(fault.OtherSubmissionFailure, "submit", "", errEmptyReply))
	}

	if hash := reply.Hash(); "" != hash {
		record.TxHash = hash
	}
	record.EngineResultCode = reply.EngineResult
	record.Outcome = engineresult.Classify(reply.EngineResult)

	if engineresult.Success != record.Outcome {
		cause := errors.New(reply.EngineResult)
		if "" != reply.EngineResultMessage {
			cause = errors.New(reply.EngineResultMessage)
		}
		err := fault.NewLedgerError(record.Outcome.Kind(), "submit", reply.EngineResult, cause)
		c.log.Warnf("rejected: %s  hash: %s  result: %s  action: %s",
			record.Kind, record.TxHash, reply.EngineResult, record.Outcome.Action())
		return nil, c.fail(record, StageClassify, err)
	}

	record.Stage = StageDone
	c.notify(record)
	c.log.Infof("applied: %s  account: %s  hash: %s  result: %s", record.Kind, record.Account, record.TxHash, reply.EngineResult)

	return &Result{
		ID:                  record.ID,
		Kind:                record.Kind,
		Account:             record.Account,
		EngineResultCode:    reply.EngineResult,
		EngineResultMessage: reply.EngineResultMessage,
		TxHash:              record.TxHash,
		Outcome:             record.Outcome,
		Raw:                 reply,
	}, nil
}

func (c *Coordinator) fail(record *Record, stage Stage, err error) error {
	record.Stage = stage
	record.Err = err
	if StageClassify != stage {
		c.log.Errorf("%s failed: %s  account: %s  error: %s", stage, record.Kind, record.Account, err)
	}
	c.notify(record)
	return err
}

func (c *Coordinator) notify(record *Record) {
	record.Duration = time.Since(record.Start)
	for _, o := range c.observers {
		o.Observe(*record)
	}
}
