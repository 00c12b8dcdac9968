// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/codec"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/transaction"
)

// Signed - a submittable blob and its canonical hash
type Signed struct {
	Blob string
	Hash string
}

// Signer - produce a signed blob for a completed transaction
type Signer interface {
	Sign(ctx context.Context, tx *transaction.Transaction, identity *account.Identity) (*Signed, error)
}

// DefinitionSource - field numbering used to encode transactions
type DefinitionSource interface {
	Definitions(ctx context.Context) (*codec.Definitions, error)
}

// NodeDefinitions - server_definitions of the connected node, fetched once
type NodeDefinitions struct {
	sync.Mutex
	requester   Requester
	definitions *codec.Definitions
}

// NewNodeDefinitions - create a definition source on a requester
func NewNodeDefinitions(r Requester) *NodeDefinitions {
	return &NodeDefinitions{
		requester: r,
	}
}

// Definitions - implements DefinitionSource
//
// a failed fetch is not cached
func (n *NodeDefinitions) Definitions(ctx context.Context) (*codec.Definitions, error) {
	n.Lock()
	defer n.Unlock()

	if nil != n.definitions {
		return n.definitions, nil
	}

	var raw json.RawMessage
	if err := n.requester.Request(ctx, "server_definitions", nil, &raw); nil != err {
		return nil, err
	}
	d, err := codec.ParseDefinitions(raw)
	if nil != err {
		return nil, fault.NewLedgerError(fault.TransactionPreparation, "server_definitions", "", err)
	}
	n.definitions = d
	return d, nil
}

// LocalSigner - signs in process, the secret never leaves the service
type LocalSigner struct {
	source DefinitionSource
}

// NewLocalSigner - create a signer encoding with a definition source
func NewLocalSigner(source DefinitionSource) *LocalSigner {
	return &LocalSigner{
		source: source,
	}
}

// Sign - implements Signer
func (s *LocalSigner) Sign(ctx context.Context, tx *transaction.Transaction, identity *account.Identity) (*Signed, error) {
	definitions, err := s.source.Definitions(ctx)
	if nil != err {
		return nil, err
	}

	fields, err := fieldMap(tx)
	if nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "sign", "", err)
	}
	fields["SigningPubKey"] = identity.PublicKeyHex()

	message, err := codec.EncodeForSigning(definitions, fields)
	if nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "sign", "", err)
	}
	signature, err := identity.Sign(message)
	if nil != err {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "sign", "", err)
	}
	fields["TxnSignature"] = strings.ToUpper(hex.EncodeToString(signature))

	blob, err := codec.Encode(definitions, fields)
	if nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "sign", "", err)
	}

	return &Signed{
		Blob: strings.ToUpper(hex.EncodeToString(blob)),
		Hash: codec.TransactionID(blob),
	}, nil
}

// fieldMap - the transaction's JSON form with numbers left undecoded
func fieldMap(tx *transaction.Transaction) (map[string]interface{}, error) {
	buffer, err := json.Marshal(tx)
	if nil != err {
		return nil, err
	}
	decoder := json.NewDecoder(bytes.NewReader(buffer))
	decoder.UseNumber()

	var fields map[string]interface{}
	if err := decoder.Decode(&fields); nil != err {
		return nil, err
	}
	return fields, nil
}
