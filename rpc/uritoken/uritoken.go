// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uritoken

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/rpc/ratelimit"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
	"github.com/mikpaszkowski/rentald/uritoken"
)

const (
	rateLimitToken = 50
	rateBurstToken = 20
)

// Tokens - token operations
type Tokens interface {
	Mint(ctx context.Context, acct account.Account, uriHex string) (*submission.Result, error)
	Burn(ctx context.Context, acct account.Account, tokenID string) (*submission.Result, error)
	List(ctx context.Context, address string) ([]uritoken.Token, error)
	Find(ctx context.Context, address string, index string) (*uritoken.Token, error)
}

// URIToken - RPC entry for URI tokens
type URIToken struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Timeout time.Duration
	Tokens  Tokens
}

// New - create the token handler
func New(log *logger.L, tokens Tokens, timeout time.Duration) *URIToken {
	return &URIToken{
		Log:     log,
		Limiter: ratelimit.New(rateLimitToken, rateBurstToken),
		Timeout: timeout,
		Tokens:  tokens,
	}
}

// MintArguments - arguments for URIToken.Mint
//
// exactly one of URI (hex) or URIText is given
type MintArguments struct {
	Account account.Account `json:"account"`
	URI     string          `json:"uri"`
	URIText string          `json:"uriText"`
}

// ResultReply - a single submission result
type ResultReply struct {
	Result *submission.Result `json:"result"`
}

// Mint - issue a token
func (u *URIToken) Mint(arguments *MintArguments, reply *ResultReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if "" == arguments.Account.Secret {
		return fault.MissingSecret
	}

	uri := arguments.URI
	switch {
	case "" != uri && "" != arguments.URIText:
		return fault.MissingParameters
	case "" != arguments.URIText:
		uri = transaction.TextToHex(arguments.URIText)
	case "" == uri:
		return fault.MissingURI
	}

	ctx, cancel := context.WithTimeout(context.Background(), u.Timeout)
	defer cancel()

	result, err := u.Tokens.Mint(ctx, arguments.Account, uri)
	if nil != err {
		return err
	}
	reply.Result = result
	return nil
}

// BurnArguments - arguments for URIToken.Burn
type BurnArguments struct {
	Account    account.Account `json:"account"`
	URITokenID string          `json:"uriTokenID"`
}

// Burn - destroy a token
func (u *URIToken) Burn(arguments *BurnArguments, reply *ResultReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if "" == arguments.Account.Secret {
		return fault.MissingSecret
	}
	if "" == arguments.URITokenID {
		return fault.MissingURITokenID
	}

	ctx, cancel := context.WithTimeout(context.Background(), u.Timeout)
	defer cancel()

	result, err := u.Tokens.Burn(ctx, arguments.Account, arguments.URITokenID)
	if nil != err {
		return err
	}
	reply.Result = result
	return nil
}

// ListArguments - arguments for URIToken.List
type ListArguments struct {
	Address string `json:"address"`
}

// ListReply - result of URIToken.List
type ListReply struct {
	Tokens []uritoken.Token `json:"tokens"`
}

// List - tokens owned by an address
func (u *URIToken) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments || !account.IsValidAddress(arguments.Address) {
		return fault.InvalidAccountAddress
	}

	ctx, cancel := context.WithTimeout(context.Background(), u.Timeout)
	defer cancel()

	tokens, err := u.Tokens.List(ctx, arguments.Address)
	if nil != err {
		return err
	}
	reply.Tokens = tokens
	return nil
}

// FindArguments - arguments for URIToken.Find
type FindArguments struct {
	Address    string `json:"address"`
	URITokenID string `json:"uriTokenID"`
}

// FindReply - result of URIToken.Find
type FindReply struct {
	Token *uritoken.Token `json:"token"`
}

// Find - one token of an address
func (u *URIToken) Find(arguments *FindArguments, reply *FindReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments || !account.IsValidAddress(arguments.Address) {
		return fault.InvalidAccountAddress
	}
	if !transaction.IsHash256(arguments.URITokenID) {
		return fault.InvalidURITokenID
	}

	ctx, cancel := context.WithTimeout(context.Background(), u.Timeout)
	defer cancel()

	token, err := u.Tokens.Find(ctx, arguments.Address, arguments.URITokenID)
	if nil != err {
		return err
	}
	reply.Token = token
	return nil
}
