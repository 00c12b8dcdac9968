// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/rpc/hook"
)

// InstallHook - install the rental hook, or replace its grants when update is set
func (client *Client) InstallHook(acct account.Account, grants []string, update bool) (*hook.AppliedReply, error) {
	method := "Hook.Install"
	if update {
		method = "Hook.Update"
	}
	arguments := hook.InstallArguments{
		Account: acct,
		Grants:  grants,
	}
	var reply hook.AppliedReply
	if err := client.call(method, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GrantAccess - allow a grantee to modify the hook namespace
func (client *Client) GrantAccess(acct account.Account, grantee string) (*hook.GrantReply, error) {
	arguments := hook.GrantArguments{
		Account: acct,
		Grantee: grantee,
	}
	var reply hook.GrantReply
	if err := client.call("Hook.Grant", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ResetNamespace - delete the state of a namespace
func (client *Client) ResetNamespace(acct account.Account, namespace string) (*hook.AppliedReply, error) {
	arguments := hook.ResetArguments{
		Account:   acct,
		Namespace: namespace,
	}
	var reply hook.AppliedReply
	if err := client.call("Hook.Reset", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RemoveHook - uninstall the rental hook
func (client *Client) RemoveHook(acct account.Account) (*hook.AppliedReply, error) {
	arguments := hook.RemoveArguments{
		Account: acct,
	}
	var reply hook.AppliedReply
	if err := client.call("Hook.Remove", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListHooks - hooks installed on an address
func (client *Client) ListHooks(address string) (*hook.ListReply, error) {
	arguments := hook.AddressArguments{
		Address: address,
	}
	var reply hook.ListReply
	if err := client.call("Hook.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// HookNamespace - namespace of the rental hook on an address
func (client *Client) HookNamespace(address string) (*hook.NamespaceReply, error) {
	arguments := hook.AddressArguments{
		Address: address,
	}
	var reply hook.NamespaceReply
	if err := client.call("Hook.Namespace", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
