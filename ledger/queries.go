// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"
	"encoding/json"

	"github.com/mikpaszkowski/rentald/transaction"
)

// ledger index selectors
const (
	Current   = "current"
	Validated = "validated"
)

// object type filter for URITokens
const URITokenObjectType = "uri_token"

// Queries - typed read only queries
type Queries interface {
	AccountInfo(ctx context.Context, address string, ledgerIndex string) (*AccountInfoReply, error)
	Fee(ctx context.Context) (*FeeReply, error)
	ServerInfo(ctx context.Context) (*ServerInfoReply, error)
	AccountHooks(ctx context.Context, address string) ([]transaction.Hook, error)
	HookDefinition(ctx context.Context, hookHash string) (*HookDefinition, error)
	AccountNamespace(ctx context.Context, address string, namespace string) (*NamespaceReply, error)
	AccountObjects(ctx context.Context, address string, objectType string, limit int, marker json.RawMessage) (*AccountObjectsReply, error)
}

// Reader - Queries over a Requester
type Reader struct {
	Requester Requester
}

// NewReader - create typed queries for a requester
func NewReader(r Requester) *Reader {
	return &Reader{
		Requester: r,
	}
}

// ---

// AccountData - the account root fields used by the service
type AccountData struct {
	Account        string   `json:"Account"`
	Balance        string   `json:"Balance"`
	Flags          uint32   `json:"Flags"`
	OwnerCount     uint32   `json:"OwnerCount"`
	Sequence       uint32   `json:"Sequence"`
	HookNamespaces []string `json:"HookNamespaces,omitempty"`
	HookStateCount uint32   `json:"HookStateCount,omitempty"`
}

// AccountInfoReply - result of account_info
type AccountInfoReply struct {
	AccountData        AccountData `json:"account_data"`
	LedgerCurrentIndex uint32      `json:"ledger_current_index,omitempty"`
	LedgerIndex        uint32      `json:"ledger_index,omitempty"`
	Validated          bool        `json:"validated"`
}

type accountInfoRequest struct {
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index,omitempty"`
}

// AccountInfo - account root of an address
func (r *Reader) AccountInfo(ctx context.Context, address string, ledgerIndex string) (*AccountInfoReply, error) {
	var reply AccountInfoReply
	err := r.Requester.Request(ctx, "account_info", &accountInfoRequest{Account: address, LedgerIndex: ledgerIndex}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// ---

// FeeDrops - the fee schedule in drops
type FeeDrops struct {
	BaseFee       string `json:"base_fee"`
	MedianFee     string `json:"median_fee"`
	MinimumFee    string `json:"minimum_fee"`
	OpenLedgerFee string `json:"open_ledger_fee"`
}

// FeeReply - result of fee
type FeeReply struct {
	Drops              FeeDrops `json:"drops"`
	LedgerCurrentIndex uint32   `json:"ledger_current_index"`
}

// Fee - current fee schedule
func (r *Reader) Fee(ctx context.Context) (*FeeReply, error) {
	var reply FeeReply
	err := r.Requester.Request(ctx, "fee", nil, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// ---

// ServerInfo - subset of server_info
type ServerInfo struct {
	BuildVersion    string `json:"build_version"`
	CompleteLedgers string `json:"complete_ledgers"`
	NetworkID       uint32 `json:"network_id"`
	ServerState     string `json:"server_state"`
	ValidatedLedger struct {
		Sequence uint32 `json:"seq"`
	} `json:"validated_ledger"`
}

// ServerInfoReply - result of server_info
type ServerInfoReply struct {
	Info ServerInfo `json:"info"`
}

// ServerInfo - node state
func (r *Reader) ServerInfo(ctx context.Context) (*ServerInfoReply, error) {
	var reply ServerInfoReply
	err := r.Requester.Request(ctx, "server_info", nil, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// ---

type accountSelector struct {
	Account string `json:"account"`
}

type hookEntryRequest struct {
	Hook accountSelector `json:"hook"`
}

type hookDefinitionRequest struct {
	HookDefinition string `json:"hook_definition"`
}

type ledgerEntryReply struct {
	Index string          `json:"index"`
	Node  json.RawMessage `json:"node"`
}

type hookNode struct {
	Account string                  `json:"Account"`
	Hooks   []transaction.HookEntry `json:"Hooks"`
}

// AccountHooks - the hooks installed on an account in ledger order
//
// an account without hooks reports a NotFound error
func (r *Reader) AccountHooks(ctx context.Context, address string) ([]transaction.Hook, error) {
	var reply ledgerEntryReply
	err := r.Requester.Request(ctx, "ledger_entry", &hookEntryRequest{Hook: accountSelector{Account: address}}, &reply)
	if nil != err {
		return nil, err
	}

	var node hookNode
	if err := json.Unmarshal(reply.Node, &node); nil != err {
		return nil, Translate("ledger_entry hook", err)
	}

	hooks := make([]transaction.Hook, len(node.Hooks))
	for i, entry := range node.Hooks {
		hooks[i] = entry.Hook
	}
	return hooks, nil
}

// HookDefinition - the ledger wide object for a hook hash
type HookDefinition struct {
	HookHash      string `json:"HookHash"`
	HookNamespace string `json:"HookNamespace"`
	HookOn        string `json:"HookOn"`
	HookSetTxnID  string `json:"HookSetTxnID,omitempty"`
}

// HookDefinition - look up a hook definition by hash
func (r *Reader) HookDefinition(ctx context.Context, hookHash string) (*HookDefinition, error) {
	var reply ledgerEntryReply
	err := r.Requester.Request(ctx, "ledger_entry", &hookDefinitionRequest{HookDefinition: hookHash}, &reply)
	if nil != err {
		return nil, err
	}
	var definition HookDefinition
	if err := json.Unmarshal(reply.Node, &definition); nil != err {
		return nil, Translate("ledger_entry hook_definition", err)
	}
	return &definition, nil
}

// ---

// HookState - one key/value entry of a hook namespace
type HookState struct {
	Index         string `json:"index"`
	HookStateKey  string `json:"HookStateKey"`
	HookStateData string `json:"HookStateData"`
}

// NamespaceReply - result of account_namespace
type NamespaceReply struct {
	Account            string      `json:"account"`
	NamespaceID        string      `json:"namespace_id"`
	NamespaceEntries   []HookState `json:"namespace_entries"`
	LedgerCurrentIndex uint32      `json:"ledger_current_index,omitempty"`
}

type namespaceRequest struct {
	Account     string `json:"account"`
	NamespaceID string `json:"namespace_id"`
}

// AccountNamespace - state entries of one hook namespace of an account
func (r *Reader) AccountNamespace(ctx context.Context, address string, namespace string) (*NamespaceReply, error) {
	var reply NamespaceReply
	err := r.Requester.Request(ctx, "account_namespace", &namespaceRequest{Account: address, NamespaceID: namespace}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// ---

// AccountObjectsReply - result of account_objects
type AccountObjectsReply struct {
	Account        string            `json:"account"`
	AccountObjects []json.RawMessage `json:"account_objects"`
	Marker         json.RawMessage   `json:"marker,omitempty"`
	Validated      bool              `json:"validated"`
}

type accountObjectsRequest struct {
	Account     string          `json:"account"`
	LedgerIndex string          `json:"ledger_index"`
	Type        string          `json:"type,omitempty"`
	Limit       int             `json:"limit,omitempty"`
	Marker      json.RawMessage `json:"marker,omitempty"`
}

// AccountObjects - one page of objects owned by an account
func (r *Reader) AccountObjects(ctx context.Context, address string, objectType string, limit int, marker json.RawMessage) (*AccountObjectsReply, error) {
	request := &accountObjectsRequest{
		Account:     address,
		LedgerIndex: Validated,
		Type:        objectType,
		Limit:       limit,
		Marker:      marker,
	}
	var reply AccountObjectsReply
	err := r.Requester.Request(ctx, "account_objects", request, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
