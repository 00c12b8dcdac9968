// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"strings"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
)

// Type - the ledger TransactionType field
type Type string

// supported transaction types
const (
	SetHook                 Type = "SetHook"
	URITokenMint            Type = "URITokenMint"
	URITokenBurn            Type = "URITokenBurn"
	URITokenBuy             Type = "URITokenBuy"
	URITokenCreateSellOffer Type = "URITokenCreateSellOffer"
	URITokenCancelSellOffer Type = "URITokenCancelSellOffer"
)

// Kind - the operation a transaction performs
type Kind int

// list of operation kinds
const (
	Unknown Kind = iota
	InstallHook
	UpdateHook
	RemoveHook
	ResetHook
	CreateSellOffer
	Buy
	CancelOffer
	Mint
	Burn
)

var kinds = map[Kind]struct {
	name string
	t    Type
}{
	InstallHook:     {"install hook", SetHook},
	UpdateHook:      {"update hook", SetHook},
	RemoveHook:      {"remove hook", SetHook},
	ResetHook:       {"reset hook", SetHook},
	CreateSellOffer: {"create sell offer", URITokenCreateSellOffer},
	Buy:             {"buy", URITokenBuy},
	CancelOffer:     {"cancel offer", URITokenCancelSellOffer},
	Mint:            {"mint", URITokenMint},
	Burn:            {"burn", URITokenBurn},
}

// String - printable kind
func (k Kind) String() string {
	if v, ok := kinds[k]; ok {
		return v.name
	}
	return "unknown"
}

// Type - the transaction type used for a kind
func (k Kind) Type() Type {
	return kinds[k].t
}

// Transaction - common and kind specific fields
//
// Sequence, Fee, LastLedgerSequence and NetworkID are filled by the
// completer when zero or empty.
type Transaction struct {
	Kind Kind `json:"-"`

	TransactionType    Type   `json:"TransactionType"`
	Account            string `json:"Account"`
	NetworkID          uint32 `json:"NetworkID,omitempty"`
	Sequence           uint32 `json:"Sequence,omitempty"`
	Fee                string `json:"Fee,omitempty"`
	LastLedgerSequence uint32 `json:"LastLedgerSequence,omitempty"`
	Flags              uint32 `json:"Flags,omitempty"`

	// SetHook
	Hooks []HookEntry `json:"Hooks,omitempty"`

	// URIToken family
	URITokenID  string `json:"URITokenID,omitempty"`
	URI         string `json:"URI,omitempty"`
	Amount      string `json:"Amount,omitempty"`
	Destination string `json:"Destination,omitempty"`

	Memos          []MemoEntry          `json:"Memos,omitempty"`
	HookParameters []HookParameterEntry `json:"HookParameters,omitempty"`
}

// New - empty transaction of a kind
func New(kind Kind, address string, networkID uint32) *Transaction {
	return &Transaction{
		Kind:            kind,
		TransactionType: kind.Type(),
		Account:         address,
		NetworkID:       networkID,
	}
}

// Clone - copy that can be filled without touching the original
func (tx *Transaction) Clone() *Transaction {
	c := *tx
	if nil != tx.Hooks {
		c.Hooks = make([]HookEntry, len(tx.Hooks))
		for i, h := range tx.Hooks {
			c.Hooks[i] = HookEntry{Hook: h.Hook.clone()}
		}
	}
	if nil != tx.Memos {
		c.Memos = append([]MemoEntry(nil), tx.Memos...)
	}
	if nil != tx.HookParameters {
		c.HookParameters = append([]HookParameterEntry(nil), tx.HookParameters...)
	}
	return &c
}

// Validate - check the fields required by the transaction's kind
func (tx *Transaction) Validate() error {
	if "" == tx.Account {
		return fault.MissingAccount
	}
	if !account.IsValidAddress(tx.Account) {
		return fault.InvalidAccountAddress
	}
	if _, ok := kinds[tx.Kind]; !ok || tx.Kind.Type() != tx.TransactionType {
		return fault.InvalidTransactionType
	}

	switch tx.Kind {
	case InstallHook, UpdateHook, RemoveHook, ResetHook:
		if 0 == len(tx.Hooks) || len(tx.Hooks) > MaximumHooks {
			return fault.MissingHooks
		}
		for _, entry := range tx.Hooks {
			if ns := entry.Hook.HookNamespace; "" != ns && !IsHash256(ns) {
				return fault.InvalidNamespace
			}
			if len(entry.Hook.HookGrants) > MaximumHookGrants {
				return fault.TooManyGrants
			}
		}

	case CreateSellOffer, Buy:
		if err := validateTokenID(tx.URITokenID); nil != err {
			return err
		}
		if "" == tx.Amount {
			return fault.InvalidAmount
		}
		if "" != tx.Destination && !account.IsValidAddress(tx.Destination) {
			return fault.InvalidAccountAddress
		}

	case CancelOffer, Burn:
		return validateTokenID(tx.URITokenID)

	case Mint:
		if "" == tx.URI {
			return fault.MissingURI
		}
		if !IsHex(tx.URI) {
			return fault.InvalidHex
		}
	}
	return nil
}

func validateTokenID(id string) error {
	if "" == id {
		return fault.MissingURITokenID
	}
	if !IsHash256(id) {
		return fault.InvalidURITokenID
	}
	return nil
}

// IsHex - non empty, even length, hex digits only
func IsHex(s string) bool {
	if "" == s || 0 != len(s)%2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return nil == err
}

// IsHash256 - 64 hex digits
func IsHash256(s string) bool {
	return 64 == len(s) && IsHex(s)
}

// TextToHex - upper case hex of a text, as used by names and memo types
func TextToHex(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}
