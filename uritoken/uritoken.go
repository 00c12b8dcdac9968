// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package uritoken - mint, burn and list URITokens
package uritoken

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
)

// paging of account_objects
const (
	PageLimit    = 10
	MaximumPages = 100
)

const uriTokenEntryType = "URIToken"

// Service - URIToken use cases
type Service struct {
	log       *logger.L
	queries   ledger.Queries
	submitter submission.Submitter
}

// New - create the token service
func New(log *logger.L, queries ledger.Queries, submitter submission.Submitter) *Service {
	return &Service{
		log:       log,
		queries:   queries,
		submitter: submitter,
	}
}

// Mint - issue a token for a hex URI
func (s *Service) Mint(ctx context.Context, acct account.Account, uriHex string) (*submission.Result, error) {
	tx := transaction.New(transaction.Mint, acct.Address, 0)
	tx.URI = strings.ToUpper(uriHex)
	if err := tx.Validate(); nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "mint", "", err)
	}
	s.log.Infof("mint: account: %s  uri: %s", acct.Address, tx.URI)
	return s.submitter.Submit(ctx, acct, tx)
}

// Burn - destroy a token
func (s *Service) Burn(ctx context.Context, acct account.Account, tokenID string) (*submission.Result, error) {
	tx := transaction.New(transaction.Burn, acct.Address, 0)
	tx.URITokenID = strings.ToUpper(tokenID)
	if err := tx.Validate(); nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "burn", "", err)
	}
	s.log.Infof("burn: account: %s  token: %s", acct.Address, tx.URITokenID)
	return s.submitter.Submit(ctx, acct, tx)
}

// List - every token owned by an address in the validated ledger
func (s *Service) List(ctx context.Context, address string) ([]Token, error) {
	if !account.IsValidAddress(address) {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "list tokens", "", fault.InvalidAccountAddress)
	}

	tokens := make([]Token, 0, PageLimit)
	var marker json.RawMessage
	for page := 0; page < MaximumPages; page += 1 {
		reply, err := s.queries.AccountObjects(ctx, address, ledger.URITokenObjectType, PageLimit, marker)
		if nil != err {
			return nil, err
		}
		for _, raw := range reply.AccountObjects {
			var entry ledgerToken
			if err := json.Unmarshal(raw, &entry); nil != err {
				s.log.Warnf("account: %s skipping undecodable object: %s", address, err)
				continue
			}
			if "" != entry.LedgerEntryType && uriTokenEntryType != entry.LedgerEntryType {
				continue
			}
			tokens = append(tokens, entry.token())
		}
		if 0 == len(reply.Marker) || "null" == string(reply.Marker) {
			return tokens, nil
		}
		marker = reply.Marker
	}

	s.log.Warnf("account: %s token list truncated at %d pages", address, MaximumPages)
	return tokens, nil
}

// Find - one token of an address by index
func (s *Service) Find(ctx context.Context, address string, index string) (*Token, error) {
	tokens, err := s.List(ctx, address)
	if nil != err {
		return nil, err
	}
	for _, token := range tokens {
		if strings.EqualFold(token.Index, index) {
			t := token
			return &t, nil
		}
	}
	return nil, fault.NewLedgerError(fault.NotFound, "find token", "", fault.URITokenNotFound)
}
