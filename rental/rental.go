// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rental - URIToken rental offers
//
// A START offer lends a token to a destination running the rental
// hook, a FINISH offer returns it.  The offers carry the destination
// account and namespace plus the rental amount and deadline as hook
// parameters, and the rental context as memos.
package rental

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/grant"
	"github.com/mikpaszkowski/rentald/hooks"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
	"github.com/mikpaszkowski/rentald/xfl"
)

// hook parameter names
const (
	ParameterForeignAccount   = "FOREIGNACC"
	ParameterForeignNamespace = "FOREIGNNS"
	ParameterAmount           = "RENTALAMOUNT"
	ParameterDeadline         = "RENTALDEADLINE"
)

// memo types
const (
	MemoRentalType   = "rental_type"
	MemoTotalAmount  = "total_amount"
	MemoDeadlineTime = "deadline_time"
)

// Created - result of creating an offer
//
// Grant is set when the offer needed a new grant first
type Created struct {
	Namespace string             `json:"namespace"`
	Grant     *submission.Result `json:"grant,omitempty"`
	Offer     *submission.Result `json:"offer"`
}

// Service - rental offer workflow
type Service struct {
	log       *logger.L
	resolver  hooks.Resolver
	granter   grant.Granter
	submitter submission.Submitter
	now       func() time.Time
}

// New - create the rental service
func New(log *logger.L, resolver hooks.Resolver, granter grant.Granter, submitter submission.Submitter) *Service {
	return &Service{
		log:       log,
		resolver:  resolver,
		granter:   granter,
		submitter: submitter,
		now:       time.Now,
	}
}

// CreateOffer - lend (START) or return (FINISH) a token
func (s *Service) CreateOffer(ctx context.Context, offerType OfferType, offer Offer) (*Created, error) {
	if err := s.validateOffer(offerType, offer); nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "create offer", "", err)
	}
	offerType, _ = ParseOfferType(string(offerType))
	offer.RentalType, _ = ParseRentalType(string(offer.RentalType))

	resolution, err := s.resolver.Resolve(ctx, offer.DestinationAccount)
	if nil != err {
		return nil, err
	}
	if !resolution.Installed() {
		return nil, fault.NewLedgerError(fault.PreconditionFailed, "create offer", "", fault.HookNotInstalled)
	}
	if "" == resolution.Namespace {
		cause := resolution.DefinitionErr
		if nil == cause {
			cause = fault.InvalidNamespace
		}
		return nil, fault.NewLedgerError(fault.PreconditionFailed, "create offer", "", cause)
	}

	created := &Created{
		Namespace: resolution.Namespace,
	}

	amount := "0"
	if Start == offerType {
		amount, _ = Drops(offer.TotalAmount)

		granted, err := s.granter.HasAccess(ctx, offer.Account.Address, offer.DestinationAccount)
		if nil != err {
			return nil, err
		}
		if !granted {
			created.Grant, err = s.granter.GrantAccess(ctx, offer.Account, offer.DestinationAccount)
			if nil != err {
				return nil, err
			}
		}
	}

	parameters, err := foreignParameters(offer.DestinationAccount, resolution.Namespace)
	if nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "create offer", "", err)
	}
	terms, err := contextParameters(offer.TotalAmount, offer.Deadline)
	if nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "create offer", "", err)
	}
	memos, err := rentalMemos(offer)
	if nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "create offer", "", err)
	}

	tx := transaction.New(transaction.CreateSellOffer, offer.Account.Address, 0)
	tx.URITokenID = offer.URITokenID
	tx.Amount = amount
	tx.Destination = offer.DestinationAccount
	tx.HookParameters = append(parameters, terms...)
	tx.Memos = memos

	s.log.Infof("%s offer: token: %s  owner: %s  destination: %s  amount: %s drops",
		offerType, offer.URITokenID, offer.Account.Address, offer.DestinationAccount, amount)

	created.Offer, err = s.submitter.Submit(ctx, offer.Account, tx)
	if nil != err {
		return nil, err
	}
	return created, nil
}

// AcceptOffer - buy a START offer or take back a FINISH offer
func (s *Service) AcceptOffer(ctx context.Context, offerType OfferType, tokenID string, accept Accept) (*submission.Result, error) {
	if err := s.validateAccept(offerType, tokenID, accept); nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "accept offer", "", err)
	}
	offerType, _ = ParseOfferType(string(offerType))

	amount := "0"
	if Start == offerType {
		amount, _ = Drops(accept.TotalAmount)
	}

	parameters, err := contextParameters("0", accept.Deadline)
	if nil != err {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "accept offer", "", err)
	}

	tx := transaction.New(transaction.Buy, accept.RenterAccount.Address, 0)
	tx.URITokenID = tokenID
	tx.Amount = amount
	tx.HookParameters = parameters

	s.log.Infof("accept %s offer: token: %s  account: %s  amount: %s drops",
		offerType, tokenID, accept.RenterAccount.Address, amount)

	return s.submitter.Submit(ctx, accept.RenterAccount, tx)
}

// CancelOffer - withdraw the sell offer on a token
func (s *Service) CancelOffer(ctx context.Context, tokenID string, acct account.Account) (*submission.Result, error) {
	if !account.IsValidAddress(acct.Address) {
		return nil, fault.NewLedgerError(fault.InvalidAccount, "cancel offer", "", fault.InvalidAccountAddress)
	}
	if !transaction.IsHash256(tokenID) {
		return nil, fault.NewLedgerError(fault.MalformedTransaction, "cancel offer", "", fault.InvalidURITokenID)
	}

	tx := transaction.New(transaction.CancelOffer, acct.Address, 0)
	tx.URITokenID = tokenID

	s.log.Infof("cancel offer: token: %s  account: %s", tokenID, acct.Address)
	return s.submitter.Submit(ctx, acct, tx)
}

func (s *Service) validateOffer(offerType OfferType, offer Offer) error {
	if _, err := ParseOfferType(string(offerType)); nil != err {
		return err
	}
	if _, err := ParseRentalType(string(offer.RentalType)); nil != err {
		return err
	}
	if !account.IsValidAddress(offer.Account.Address) {
		return fault.InvalidAccountAddress
	}
	if "" == offer.DestinationAccount {
		return fault.MissingDestination
	}
	if !account.IsValidAddress(offer.DestinationAccount) {
		return fault.InvalidAccountAddress
	}
	if "" == offer.URITokenID {
		return fault.MissingURITokenID
	}
	if !transaction.IsHash256(offer.URITokenID) {
		return fault.InvalidURITokenID
	}
	return s.validateTerms(offerType, offer.TotalAmount, offer.Deadline)
}

func (s *Service) validateAccept(offerType OfferType, tokenID string, accept Accept) error {
	if _, err := ParseOfferType(string(offerType)); nil != err {
		return err
	}
	if !account.IsValidAddress(accept.RenterAccount.Address) {
		return fault.InvalidAccountAddress
	}
	if "" == tokenID {
		return fault.MissingURITokenID
	}
	if !transaction.IsHash256(tokenID) {
		return fault.InvalidURITokenID
	}
	return s.validateTerms(offerType, accept.TotalAmount, accept.Deadline)
}

// a START needs a positive amount and a future deadline
func (s *Service) validateTerms(offerType OfferType, totalAmount string, deadline time.Time) error {
	drops, err := Drops(totalAmount)
	if nil != err {
		return err
	}
	if Start == offerType && "0" == drops {
		return fault.InvalidAmount
	}
	if deadline.IsZero() {
		return fault.InvalidDeadline
	}
	if Start == offerType && !deadline.After(s.now()) {
		return fault.InvalidDeadline
	}
	return nil
}

func foreignParameters(destination string, namespace string) ([]transaction.HookParameterEntry, error) {
	id, err := account.IDHex(destination)
	if nil != err {
		return nil, err
	}
	return []transaction.HookParameterEntry{
		transaction.NewHookParameter(ParameterForeignAccount, id),
		transaction.NewHookParameter(ParameterForeignNamespace, namespace),
	}, nil
}

// amount in XRP and deadline in unix seconds
func contextParameters(totalAmount string, deadline time.Time) ([]transaction.HookParameterEntry, error) {
	amount, err := xfl.LEHexFromString(totalAmount)
	if nil != err {
		return nil, err
	}
	seconds, err := xfl.FromInt(deadline.Unix())
	if nil != err {
		return nil, err
	}
	return []transaction.HookParameterEntry{
		transaction.NewHookParameter(ParameterAmount, amount),
		transaction.NewHookParameter(ParameterDeadline, seconds.LEHex()),
	}, nil
}

// deadline in unix milliseconds
func rentalMemos(offer Offer) ([]transaction.MemoEntry, error) {
	amount, err := xfl.LEHexFromString(offer.TotalAmount)
	if nil != err {
		return nil, err
	}
	milliseconds, err := xfl.FromInt(offer.Deadline.UnixNano() / int64(time.Millisecond))
	if nil != err {
		return nil, err
	}
	return []transaction.MemoEntry{
		transaction.NewMemo(MemoRentalType, transaction.TextToHex(string(offer.RentalType))),
		transaction.NewMemo(MemoTotalAmount, amount),
		transaction.NewMemo(MemoDeadlineTime, milliseconds.LEHex()),
	}, nil
}
