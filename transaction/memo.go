// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// MemoEntry - wrapper used by the ledger's array encoding
type MemoEntry struct {
	Memo Memo `json:"Memo"`
}

// Memo - typed annotation, both fields hex
type Memo struct {
	MemoType string `json:"MemoType,omitempty"`
	MemoData string `json:"MemoData,omitempty"`
}

// NewMemo - memo with a text type and hex data
func NewMemo(memoType string, dataHex string) MemoEntry {
	return MemoEntry{
		Memo: Memo{
			MemoType: TextToHex(memoType),
			MemoData: dataHex,
		},
	}
}
