// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hook

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/grant"
	"github.com/mikpaszkowski/rentald/hooks"
	"github.com/mikpaszkowski/rentald/rpc/ratelimit"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
)

const (
	rateLimitHook = 10
	rateBurstHook = 5
)

// Manager - hook lifecycle operations
type Manager interface {
	Install(ctx context.Context, acct account.Account, grants []transaction.HookGrant) (*hooks.Applied, error)
	Update(ctx context.Context, acct account.Account, grants []transaction.HookGrant) (*hooks.Applied, error)
	Reset(ctx context.Context, acct account.Account, namespace string) (*hooks.Applied, error)
	Remove(ctx context.Context, acct account.Account) (*hooks.Applied, error)
	Namespace(ctx context.Context, address string) (*hooks.Resolution, error)
	List(ctx context.Context, address string) ([]hooks.Info, error)
}

// Hook - RPC entry for hook management
type Hook struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Timeout time.Duration
	Manager Manager
	Granter grant.Granter
}

// New - create the hook handler
func New(log *logger.L, manager Manager, granter grant.Granter, timeout time.Duration) *Hook {
	return &Hook{
		Log:     log,
		Limiter: ratelimit.New(rateLimitHook, rateBurstHook),
		Timeout: timeout,
		Manager: manager,
		Granter: granter,
	}
}

// ---

// InstallArguments - arguments for Hook.Install and Hook.Update
type InstallArguments struct {
	Account account.Account `json:"account"`
	Grants  []string        `json:"grants"`
}

// AppliedReply - result of a hook change
type AppliedReply struct {
	Namespace string             `json:"namespace"`
	Source    string             `json:"source"`
	Result    *submission.Result `json:"result"`
}

// Install - install the rental hook, each grant is an authorized address
func (h *Hook) Install(arguments *InstallArguments, reply *AppliedReply) error {
	if err := h.begin(arguments); nil != err {
		return err
	}
	grants, err := h.grants(arguments.Grants)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()

	applied, err := h.Manager.Install(ctx, arguments.Account, grants)
	return fill(reply, applied, err)
}

// Update - replace the grants of the installed hook
func (h *Hook) Update(arguments *InstallArguments, reply *AppliedReply) error {
	if err := h.begin(arguments); nil != err {
		return err
	}
	grants, err := h.grants(arguments.Grants)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()

	applied, err := h.Manager.Update(ctx, arguments.Account, grants)
	return fill(reply, applied, err)
}

// ---

// GrantArguments - arguments for Hook.Grant
type GrantArguments struct {
	Account account.Account `json:"account"`
	Grantee string          `json:"grantee"`
}

// GrantReply - result of Hook.Grant
type GrantReply struct {
	Result *submission.Result `json:"result"`
}

// Grant - allow another account's hook to modify this hook's state
func (h *Hook) Grant(arguments *GrantArguments, reply *GrantReply) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	if nil == arguments || !account.IsValidAddress(arguments.Account.Address) {
		return fault.InvalidAccountAddress
	}
	if "" == arguments.Account.Secret {
		return fault.MissingSecret
	}
	if !account.IsValidAddress(arguments.Grantee) {
		return fault.InvalidAccountAddress
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()

	result, err := h.Granter.GrantAccess(ctx, arguments.Account, arguments.Grantee)
	if nil != err {
		return err
	}
	reply.Result = result
	return nil
}

// ---

// ResetArguments - arguments for Hook.Reset
//
// an empty namespace resets the resolved one
type ResetArguments struct {
	Account   account.Account `json:"account"`
	Namespace string          `json:"namespace"`
}

// Reset - delete the state of a hook namespace
func (h *Hook) Reset(arguments *ResetArguments, reply *AppliedReply) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := checkAccount(arguments.Account); nil != err {
		return err
	}
	if "" != arguments.Namespace && !transaction.IsHash256(arguments.Namespace) {
		return fault.InvalidNamespace
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()

	applied, err := h.Manager.Reset(ctx, arguments.Account, arguments.Namespace)
	return fill(reply, applied, err)
}

// RemoveArguments - arguments for Hook.Remove
type RemoveArguments struct {
	Account account.Account `json:"account"`
}

// Remove - uninstall the rental hook
func (h *Hook) Remove(arguments *RemoveArguments, reply *AppliedReply) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := checkAccount(arguments.Account); nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()

	applied, err := h.Manager.Remove(ctx, arguments.Account)
	return fill(reply, applied, err)
}

// ---

// AddressArguments - arguments for the read only calls
type AddressArguments struct {
	Address string `json:"address"`
}

// ListReply - result of Hook.List
type ListReply struct {
	Hooks []hooks.Info `json:"hooks"`
}

// List - hooks installed on an account with their state
func (h *Hook) List(arguments *AddressArguments, reply *ListReply) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	if nil == arguments || !account.IsValidAddress(arguments.Address) {
		return fault.InvalidAccountAddress
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()

	list, err := h.Manager.List(ctx, arguments.Address)
	if nil != err {
		return err
	}
	if nil == list {
		list = []hooks.Info{}
	}
	reply.Hooks = list
	return nil
}

// NamespaceReply - result of Hook.Namespace
type NamespaceReply struct {
	Namespace string `json:"namespace"`
	Source    string `json:"source"`
	Installed bool   `json:"installed"`
	Position  int    `json:"position"`
	HookHash  string `json:"hookHash,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

// Namespace - the namespace the rental hook uses or would use
func (h *Hook) Namespace(arguments *AddressArguments, reply *NamespaceReply) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	if nil == arguments || !account.IsValidAddress(arguments.Address) {
		return fault.InvalidAccountAddress
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()

	resolution, err := h.Manager.Namespace(ctx, arguments.Address)
	if nil != err {
		return err
	}

	reply.Namespace = resolution.Namespace
	reply.Source = resolution.Source.String()
	reply.Installed = resolution.Installed()
	reply.Position = resolution.Position
	if resolution.Installed() {
		reply.HookHash = resolution.Hook.HookHash
	}
	if nil != resolution.DefinitionErr {
		reply.Warning = resolution.DefinitionErr.Error()
	}
	return nil
}

// ---

func (h *Hook) begin(arguments *InstallArguments) error {
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	return checkAccount(arguments.Account)
}

func (h *Hook) grants(addresses []string) ([]transaction.HookGrant, error) {
	if len(addresses) > transaction.MaximumHookGrants {
		return nil, fault.TooManyGrants
	}
	grants := make([]transaction.HookGrant, 0, len(addresses))
	for _, address := range addresses {
		if !account.IsValidAddress(address) {
			return nil, fault.InvalidAccountAddress
		}
		grants = append(grants, transaction.HookGrant{Authorize: address})
	}
	return grants, nil
}

func checkAccount(acct account.Account) error {
	if !account.IsValidAddress(acct.Address) {
		return fault.InvalidAccountAddress
	}
	if "" == acct.Secret {
		return fault.MissingSecret
	}
	return nil
}

func fill(reply *AppliedReply, applied *hooks.Applied, err error) error {
	if nil != err {
		return err
	}
	reply.Namespace = applied.Namespace
	reply.Source = applied.Source
	reply.Result = applied.Result
	return nil
}
