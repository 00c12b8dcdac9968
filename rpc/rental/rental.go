// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rental

import (
	"context"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/rental"
	"github.com/mikpaszkowski/rentald/rpc/ratelimit"
	"github.com/mikpaszkowski/rentald/submission"
)

const (
	rateLimitRental = 20
	rateBurstRental = 10
)

// Rentals - the offer workflow
type Rentals interface {
	CreateOffer(ctx context.Context, offerType rental.OfferType, offer rental.Offer) (*rental.Created, error)
	AcceptOffer(ctx context.Context, offerType rental.OfferType, tokenID string, accept rental.Accept) (*submission.Result, error)
	CancelOffer(ctx context.Context, tokenID string, acct account.Account) (*submission.Result, error)
}

// Rental - RPC entry for rental offers
type Rental struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Timeout time.Duration
	Rentals Rentals
}

// New - create the rental handler
func New(log *logger.L, rentals Rentals, timeout time.Duration) *Rental {
	return &Rental{
		Log:     log,
		Limiter: ratelimit.New(rateLimitRental, rateBurstRental),
		Timeout: timeout,
		Rentals: rentals,
	}
}

// ---

// CreateOfferArguments - arguments for Rental.CreateOffer
//
// deadline is RFC 3339, for example 2024-05-01T12:00:00Z
type CreateOfferArguments struct {
	OfferType          string          `json:"offerType"`
	Account            account.Account `json:"account"`
	DestinationAccount string          `json:"destinationAccount"`
	URITokenID         string          `json:"uriTokenID"`
	TotalAmount        string          `json:"totalAmount"`
	Deadline           string          `json:"deadline"`
	RentalType         string          `json:"rentalType"`
}

// CreateOfferReply - result of Rental.CreateOffer
type CreateOfferReply struct {
	Namespace string             `json:"namespace"`
	Grant     *submission.Result `json:"grant,omitempty"`
	Offer     *submission.Result `json:"offer"`
}

// CreateOffer - lend a token or return a rented one
func (r *Rental) CreateOffer(arguments *CreateOfferArguments, reply *CreateOfferReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	offerType, err := rental.ParseOfferType(arguments.OfferType)
	if nil != err {
		return err
	}
	rentalType, err := rental.ParseRentalType(arguments.RentalType)
	if nil != err {
		return err
	}
	deadline, err := parseDeadline(arguments.Deadline)
	if nil != err {
		return err
	}
	if "" == arguments.Account.Secret {
		return fault.MissingSecret
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	created, err := r.Rentals.CreateOffer(ctx, offerType, rental.Offer{
		Account:            arguments.Account,
		DestinationAccount: arguments.DestinationAccount,
		URITokenID:         strings.ToUpper(arguments.URITokenID),
		TotalAmount:        arguments.TotalAmount,
		Deadline:           deadline,
		RentalType:         rentalType,
	})
	if nil != err {
		return err
	}

	reply.Namespace = created.Namespace
	reply.Grant = created.Grant
	reply.Offer = created.Offer
	return nil
}

// ---

// AcceptOfferArguments - arguments for Rental.AcceptOffer
type AcceptOfferArguments struct {
	OfferType     string          `json:"offerType"`
	URITokenID    string          `json:"uriTokenID"`
	RenterAccount account.Account `json:"renterAccount"`
	TotalAmount   string          `json:"totalAmount"`
	Deadline      string          `json:"deadline"`
}

// ResultReply - a single submission result
type ResultReply struct {
	Result *submission.Result `json:"result"`
}

// AcceptOffer - take up a START offer or take back a returned token
func (r *Rental) AcceptOffer(arguments *AcceptOfferArguments, reply *ResultReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	offerType, err := rental.ParseOfferType(arguments.OfferType)
	if nil != err {
		return err
	}
	deadline, err := parseDeadline(arguments.Deadline)
	if nil != err {
		return err
	}
	if "" == arguments.RenterAccount.Secret {
		return fault.MissingSecret
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	result, err := r.Rentals.AcceptOffer(ctx, offerType, strings.ToUpper(arguments.URITokenID), rental.Accept{
		RenterAccount: arguments.RenterAccount,
		TotalAmount:   arguments.TotalAmount,
		Deadline:      deadline,
	})
	if nil != err {
		return err
	}
	reply.Result = result
	return nil
}

// ---

// CancelOfferArguments - arguments for Rental.CancelOffer
type CancelOfferArguments struct {
	URITokenID string          `json:"uriTokenID"`
	Account    account.Account `json:"account"`
}

// CancelOffer - withdraw an outstanding offer
func (r *Rental) CancelOffer(arguments *CancelOfferArguments, reply *ResultReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if "" == arguments.Account.Secret {
		return fault.MissingSecret
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	result, err := r.Rentals.CancelOffer(ctx, strings.ToUpper(arguments.URITokenID), arguments.Account)
	if nil != err {
		return err
	}
	reply.Result = result
	return nil
}

func parseDeadline(s string) (time.Time, error) {
	if "" == strings.TrimSpace(s) {
		return time.Time{}, fault.InvalidDeadline
	}
	deadline, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if nil != err {
		return time.Time{}, fault.InvalidDeadline
	}
	return deadline, nil
}
