// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ledger accounts, classic addresses and family seeds
package account

import (
	"fmt"
)

// Account - an address together with the secret used to sign for it
//
// the secret is supplied per call and never stored
type Account struct {
	Address string `json:"address"`
	Secret  string `json:"secret"`
}

// String - printable form that never exposes the secret
func (a Account) String() string {
	if "" == a.Secret {
		return a.Address
	}
	return fmt.Sprintf("%s(***)", a.Address)
}

// GoString - %#v form, also masked
func (a Account) GoString() string {
	return fmt.Sprintf("account.Account{Address:%q, Secret:\"***\"}", a.Address)
}
