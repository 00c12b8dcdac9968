// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uritoken

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
)

// Token - a URIToken ledger object
type Token struct {
	Index       string `json:"index"`
	URI         string `json:"uri"`
	Owner       string `json:"owner"`
	Issuer      string `json:"issuer"`
	Destination string `json:"destination,omitempty"`
	Amount      Amount `json:"amount"`
	Digest      string `json:"digest,omitempty"`
	Flags       uint32 `json:"flags"`
}

// URIText - the URI decoded as text, empty if it is not hex
func (t Token) URIText() string {
	b, err := hex.DecodeString(t.URI)
	if nil != err {
		return ""
	}
	return string(b)
}

// Amount - the sell offer amount, drops or an issued currency
type Amount struct {
	Drops    string `json:"drops,omitempty"`
	Currency string `json:"currency,omitempty"`
	Issuer   string `json:"issuer,omitempty"`
	Value    string `json:"value,omitempty"`
}

// IsZero - true if no amount is set
func (a Amount) IsZero() bool {
	return "" == a.Drops && "" == a.Value
}

// UnmarshalJSON - accept "drops" or {currency, issuer, value}
func (a *Amount) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if 0 != len(b) && '"' == b[0] {
		return json.Unmarshal(b, &a.Drops)
	}
	type issued Amount
	return json.Unmarshal(b, (*issued)(a))
}

// ledgerToken - the ledger's field names
type ledgerToken struct {
	Index           string `json:"index"`
	LedgerEntryType string `json:"LedgerEntryType"`
	URI             string `json:"URI"`
	Owner           string `json:"Owner"`
	Issuer          string `json:"Issuer"`
	Destination     string `json:"Destination"`
	Amount          Amount `json:"Amount"`
	Digest          string `json:"Digest"`
	Flags           uint32 `json:"Flags"`
}

func (l ledgerToken) token() Token {
	return Token{
		Index:       l.Index,
		URI:         l.URI,
		Owner:       l.Owner,
		Issuer:      l.Issuer,
		Destination: l.Destination,
		Amount:      l.Amount,
		Digest:      l.Digest,
		Flags:       l.Flags,
	}
}
