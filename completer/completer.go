// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package completer - fill network derived transaction fields
package completer

import (
	"context"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/transaction"
)

// default fee values in drops
const (
	DefaultMinimumFee       = 12
	DefaultSetHookInstall   = 2000000
	DefaultSetHookRemove    = 1000
	DefaultLastLedgerOffset = 20
)

// network ids up to this value must not be sent in a transaction
const legacyNetworkIDLimit = 1024

// FeeConfiguration - lower bounds for the fee of each kind
type FeeConfiguration struct {
	Minimum          uint64 `gluamapper:"minimum" json:"minimum"`
	SetHookInstall   uint64 `gluamapper:"set_hook_install" json:"set_hook_install"`
	SetHookRemove    uint64 `gluamapper:"set_hook_remove" json:"set_hook_remove"`
	LastLedgerOffset uint32 `gluamapper:"last_ledger_offset" json:"last_ledger_offset"`
}

// DefaultFees - fee configuration used when none is given
func DefaultFees() FeeConfiguration {
	return FeeConfiguration{
		Minimum:          DefaultMinimumFee,
		SetHookInstall:   DefaultSetHookInstall,
		SetHookRemove:    DefaultSetHookRemove,
		LastLedgerOffset: DefaultLastLedgerOffset,
	}
}

// minimum - the configured floor for a kind
func (f FeeConfiguration) minimum(kind transaction.Kind) uint64 {
	floor := f.Minimum
	switch kind {
	case transaction.InstallHook:
		if f.SetHookInstall > floor {
			floor = f.SetHookInstall
		}
	case transaction.RemoveHook, transaction.ResetHook, transaction.UpdateHook:
		if f.SetHookRemove > floor {
			floor = f.SetHookRemove
		}
	}
	return floor
}

// Completed - a filled transaction ready for signing
type Completed struct {
	Tx           *transaction.Transaction
	Identity     *account.Identity
	AccountState ledger.AccountData
}

// Completer - fills sequence, fee, last ledger sequence and network id
type Completer struct {
	log     *logger.L
	queries ledger.Queries
	deriver account.Deriver
	fees    FeeConfiguration
}

// New - create a completer
func New(log *logger.L, queries ledger.Queries, deriver account.Deriver, fees FeeConfiguration) *Completer {
	if 0 == fees.LastLedgerOffset {
		fees.LastLedgerOffset = DefaultLastLedgerOffset
	}
	return &Completer{
		log:     log,
		queries: queries,
		deriver: deriver,
		fees:    fees,
	}
}

// Complete - derive the signing identity and fill the missing fields
//
// caller supplied values are never overwritten and the input
// transaction is not modified
func (c *Completer) Complete(ctx context.Context, acct account.Account, tx *transaction.Transaction) (*Completed, error) {
	identity, err := c.deriver.Derive(acct.Secret)
	if nil != err {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "derive", "", err)
	}
	if "" != acct.Address && acct.Address != identity.Address {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "derive", "", fault.AccountMismatch)
	}

	filled := tx.Clone()
	if "" == filled.Account {
		filled.Account = identity.Address
	}
	if filled.Account != identity.Address {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "derive", "", fault.AccountMismatch)
	}
	if err := filled.Validate(); nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "validate", "", err)
	}

	info, err := c.queries.AccountInfo(ctx, identity.Address, ledger.Current)
	if nil != err {
		return nil, preparation("account_info", err)
	}
	if 0 == filled.Sequence {
		filled.Sequence = info.AccountData.Sequence
	}

	if "" == filled.Fee || 0 == filled.LastLedgerSequence {
		fee, err := c.queries.Fee(ctx)
		if nil != err {
			return nil, preparation("fee", err)
		}
		if "" == filled.Fee {
			drops, err := c.fee(filled.Kind, fee)
			if nil != err {
				return nil, preparation("fee", err)
			}
			filled.Fee = strconv.FormatUint(drops, 10)
		}
		if 0 == filled.LastLedgerSequence {
			current := fee.LedgerCurrentIndex
			if 0 == current {
				current = info.LedgerCurrentIndex
			}
			filled.LastLedgerSequence = current + c.fees.LastLedgerOffset
		}
	}

	if 0 == filled.NetworkID {
		server, err := c.queries.ServerInfo(ctx)
		if nil != err {
			return nil, preparation("server_info", err)
		}
		if server.Info.NetworkID > legacyNetworkIDLimit {
			filled.NetworkID = server.Info.NetworkID
		}
	}

	c.log.Debugf("completed: %s account: %s  sequence: %d  fee: %s  last ledger: %d  network: %d",
		filled.Kind, filled.Account, filled.Sequence, filled.Fee, filled.LastLedgerSequence, filled.NetworkID)

	return &Completed{
		Tx:           filled,
		Identity:     identity,
		AccountState: info.AccountData,
	}, nil
}

// fee - open ledger fee raised to the configured floor
func (c *Completer) fee(kind transaction.Kind, reply *ledger.FeeReply) (uint64, error) {
	floor := c.fees.minimum(kind)
	if "" == reply.Drops.OpenLedgerFee {
		return floor, nil
	}
	open, err := strconv.ParseUint(reply.Drops.OpenLedgerFee, 10, 64)
	if nil != err {
		return 0, fault.InvalidFee
	}
	if open > floor {
		return open, nil
	}
	return floor, nil
}

func preparation(operation string, err error) error {
	return fault.NewLedgerError(fault.TransactionPreparation, operation, fault.CodeOf(err), err)
}
