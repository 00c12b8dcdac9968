// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hooks

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/transaction"
)

// DefaultHookOn - trigger set of the rental hook
const DefaultHookOn = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE3FFFFFDFFFFF"

// Code - the operational hook binary
type Code struct {
	Wasm       []byte
	HookHash   string
	HookOn     string
	APIVersion int
}

// LoadCode - read a wasm file and identify it
//
// a configured hash must match the hash of the file
func LoadCode(fileName string, hookHash string, hookOn string, apiVersion int) (*Code, error) {
	wasm, err := ioutil.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fault.HookCodeNotFound
		}
		return nil, err
	}
	return NewCode(wasm, hookHash, hookOn, apiVersion)
}

// NewCode - identify a wasm binary
func NewCode(wasm []byte, hookHash string, hookOn string, apiVersion int) (*Code, error) {
	if 0 == len(wasm) {
		return nil, fault.HookCodeNotFound
	}
	hash := HashOfCode(wasm)
	if "" != hookHash && !strings.EqualFold(hash, hookHash) {
		return nil, fault.InvalidHookHash
	}
	if "" == hookOn {
		hookOn = DefaultHookOn
	}
	return &Code{
		Wasm:       wasm,
		HookHash:   hash,
		HookOn:     strings.ToUpper(hookOn),
		APIVersion: apiVersion,
	}, nil
}

// Factory - builds SetHook transactions for the operational hook
//
// each transaction carries one significant entry at the hook's
// position, earlier positions are empty and left unchanged
type Factory struct {
	code *Code
}

// NewFactory - create a factory, code may be nil when installs are not needed
func NewFactory(code *Code) *Factory {
	return &Factory{
		code: code,
	}
}

// Code - the binary installed by this factory
func (f *Factory) Code() *Code {
	return f.code
}

// Install - create code with a namespace and optional grants
func (f *Factory) Install(address string, position int, namespace string, grants []transaction.HookGrant) (*transaction.Transaction, error) {
	if nil == f.code {
		return nil, fault.HookCodeNotFound
	}
	createCode := strings.ToUpper(hex.EncodeToString(f.code.Wasm))
	hook := transaction.Hook{
		CreateCode:     &createCode,
		HookOn:         f.code.HookOn,
		HookNamespace:  namespace,
		HookApiVersion: transaction.Int(f.code.APIVersion),
		Flags:          transaction.Uint32(transaction.FlagOverride | transaction.FlagNamespaceDelete),
	}
	if 0 != len(grants) {
		hook.HookGrants = transaction.GrantEntries(grants)
	}
	return positioned(transaction.InstallHook, address, position, hook), nil
}

// Update - replace the grant list keeping the namespace
func (f *Factory) Update(address string, position int, namespace string, grants []transaction.HookGrant) *transaction.Transaction {
	hook := transaction.Hook{
		HookNamespace: namespace,
		HookGrants:    transaction.GrantEntries(grants),
	}
	return positioned(transaction.UpdateHook, address, position, hook)
}

// Reset - clear the state of a namespace
func (f *Factory) Reset(address string, position int, namespace string) *transaction.Transaction {
	hook := transaction.Hook{
		HookNamespace: namespace,
		Flags:         transaction.Uint32(transaction.FlagNamespaceDelete),
	}
	return positioned(transaction.ResetHook, address, position, hook)
}

// Remove - delete the hook at a position
func (f *Factory) Remove(address string, position int) *transaction.Transaction {
	hook := transaction.Hook{
		CreateCode: transaction.String(""),
		Flags:      transaction.Uint32(transaction.FlagOverride),
	}
	return positioned(transaction.RemoveHook, address, position, hook)
}

func positioned(kind transaction.Kind, address string, position int, hook transaction.Hook) *transaction.Transaction {
	if position < 0 {
		position = 0
	}
	tx := transaction.New(kind, address, 0)
	tx.Hooks = make([]transaction.HookEntry, position+1)
	tx.Hooks[position] = transaction.HookEntry{Hook: hook}
	return tx
}
