// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - canonical binary form of ledger transactions
//
// Field and transaction type numbering is not built in.  It is read
// from a node's server_definitions reply so that network specific
// transaction types and hook fields encode with the node's own codes.
package codec

import (
	"encoding/json"

	"github.com/mikpaszkowski/rentald/fault"
)

// markers closing nested objects and arrays
const (
	objectEndMarker = "ObjectEndMarker"
	arrayEndMarker  = "ArrayEndMarker"
)

// Field - one serialisable field
type Field struct {
	Name         string
	Nth          int
	Type         string
	TypeCode     int
	VLEncoded    bool
	Serialized   bool
	SigningField bool
}

// Definitions - field and transaction type numbering of a network
type Definitions struct {
	Hash             string
	fields           map[string]*Field
	transactionTypes map[string]int
}

type fieldInfo struct {
	Nth            int    `json:"nth"`
	IsVLEncoded    bool   `json:"isVLEncoded"`
	IsSerialized   bool   `json:"isSerialized"`
	IsSigningField bool   `json:"isSigningField"`
	Type           string `json:"type"`
}

type rawDefinitions struct {
	Types            map[string]int      `json:"TYPES"`
	Fields           [][]json.RawMessage `json:"FIELDS"`
	TransactionTypes map[string]int      `json:"TRANSACTION_TYPES"`
	Hash             string              `json:"hash"`
}

// ParseDefinitions - decode a server_definitions result
func ParseDefinitions(data []byte) (*Definitions, error) {
	var raw rawDefinitions
	if err := json.Unmarshal(data, &raw); nil != err {
		return nil, fault.InvalidDefinitions
	}
	if 0 == len(raw.Types) || 0 == len(raw.Fields) || 0 == len(raw.TransactionTypes) {
		return nil, fault.InvalidDefinitions
	}

	d := &Definitions{
		Hash:             raw.Hash,
		fields:           make(map[string]*Field, len(raw.Fields)),
		transactionTypes: raw.TransactionTypes,
	}

	for _, entry := range raw.Fields {
		if 2 != len(entry) {
			return nil, fault.InvalidDefinitions
		}
		var name string
		var info fieldInfo
		if err := json.Unmarshal(entry[0], &name); nil != err {
			return nil, fault.InvalidDefinitions
		}
		if err := json.Unmarshal(entry[1], &info); nil != err {
			return nil, fault.InvalidDefinitions
		}
		code, ok := raw.Types[info.Type]
		if !ok {
			return nil, fault.InvalidDefinitions
		}
		d.fields[name] = &Field{
			Name:         name,
			Nth:          info.Nth,
			Type:         info.Type,
			TypeCode:     code,
			VLEncoded:    info.IsVLEncoded,
			Serialized:   info.IsSerialized,
			SigningField: info.IsSigningField,
		}
	}

	for _, name := range []string{objectEndMarker, arrayEndMarker} {
		if _, ok := d.fields[name]; !ok {
			return nil, fault.InvalidDefinitions
		}
	}
	return d, nil
}

// Field - look up a field by name
func (d *Definitions) Field(name string) (*Field, bool) {
	f, ok := d.fields[name]
	return f, ok
}

// TransactionType - numeric code of a transaction type name
func (d *Definitions) TransactionType(name string) (int, bool) {
	code, ok := d.transactionTypes[name]
	return code, ok
}
