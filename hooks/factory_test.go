// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hooks_test

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/fixtures"
	"github.com/mikpaszkowski/rentald/hooks"
	"github.com/mikpaszkowski/rentald/transaction"
)

var wasm = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func testCode(t *testing.T) *hooks.Code {
	code, err := hooks.NewCode(wasm, "", "", 0)
	assert.Nil(t, err, "code error")
	return code
}

func marshal(t *testing.T, tx *transaction.Transaction) string {
	buffer, err := json.Marshal(tx)
	assert.Nil(t, err, "marshal error")
	return string(buffer)
}

func TestFactoryInstall(t *testing.T) {
	f := hooks.NewFactory(testCode(t))

	grants := []transaction.HookGrant{{HookHash: fixtures.HookHash, Authorize: fixtures.Renter.Address}}
	tx, err := f.Install(fixtures.Owner.Address, 0, fixtures.Namespace, grants)
	assert.Nil(t, err, "install error")
	assert.Nil(t, tx.Validate(), "invalid install")

	expected := `{"TransactionType":"SetHook","Account":"` + fixtures.Owner.Address + `",` +
		`"Hooks":[{"Hook":{"CreateCode":"0061736D01000000","HookOn":"` + hooks.DefaultHookOn + `",` +
		`"HookNamespace":"` + fixtures.Namespace + `","HookApiVersion":0,"Flags":17,` +
		`"HookGrants":[{"HookGrant":{"HookHash":"` + fixtures.HookHash + `","Authorize":"` + fixtures.Renter.Address + `"}}]}}]}`
	assert.JSONEq(t, expected, marshal(t, tx), "wrong install")
}

func TestFactoryInstallWithoutCode(t *testing.T) {
	_, err := hooks.NewFactory(nil).Install(fixtures.Owner.Address, 0, fixtures.Namespace, nil)
	assert.Equal(t, fault.HookCodeNotFound, err, "install without code")
}

func TestFactoryPositions(t *testing.T) {
	f := hooks.NewFactory(testCode(t))

	tx := f.Update(fixtures.Owner.Address, 2, fixtures.Namespace, nil)
	expected := `{"TransactionType":"SetHook","Account":"` + fixtures.Owner.Address + `",` +
		`"Hooks":[{"Hook":{}},{"Hook":{}},{"Hook":{"HookNamespace":"` + fixtures.Namespace + `"}}]}`
	assert.JSONEq(t, expected, marshal(t, tx), "wrong update")
	assert.Equal(t, transaction.UpdateHook, tx.Kind, "wrong kind")
}

func TestFactoryResetAndRemove(t *testing.T) {
	f := hooks.NewFactory(nil)

	reset := f.Reset(fixtures.Owner.Address, 0, fixtures.Namespace)
	assert.JSONEq(t,
		`{"TransactionType":"SetHook","Account":"`+fixtures.Owner.Address+`","Hooks":[{"Hook":{"HookNamespace":"`+fixtures.Namespace+`","Flags":16}}]}`,
		marshal(t, reset), "wrong reset")

	remove := f.Remove(fixtures.Owner.Address, 0)
	assert.JSONEq(t,
		`{"TransactionType":"SetHook","Account":"`+fixtures.Owner.Address+`","Hooks":[{"Hook":{"CreateCode":"","Flags":1}}]}`,
		marshal(t, remove), "wrong remove")
	assert.Equal(t, transaction.RemoveHook, remove.Kind, "wrong kind")
}

func TestLoadCode(t *testing.T) {
	dir, err := ioutil.TempDir("", "hooks")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "rental.wasm")
	assert.Nil(t, ioutil.WriteFile(fileName, wasm, 0600), "write error")

	code, err := hooks.LoadCode(fileName, hooks.HashOfCode(wasm), "ff", 0)
	assert.Nil(t, err, "load error")
	assert.Equal(t, "FF", code.HookOn, "hook on not normalised")
	assert.Equal(t, hooks.HashOfCode(wasm), code.HookHash, "wrong hash")

	_, err = hooks.LoadCode(fileName, fixtures.HookHash, "", 0)
	assert.Equal(t, fault.InvalidHookHash, err, "mismatched hash accepted")

	_, err = hooks.LoadCode(filepath.Join(dir, "missing.wasm"), "", "", 0)
	assert.Equal(t, fault.HookCodeNotFound, err, "missing file accepted")
}
