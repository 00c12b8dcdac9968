// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rental

import (
	"strconv"
	"strings"
	"time"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
)

// OfferType - which side of a rental an offer belongs to
type OfferType string

// list of offer types
const (
	Start  OfferType = "START"
	Finish OfferType = "FINISH"
)

// ParseOfferType - case insensitive offer type
func ParseOfferType(s string) (OfferType, error) {
	switch OfferType(strings.ToUpper(s)) {
	case Start:
		return Start, nil
	case Finish:
		return Finish, nil
	default:
		return "", fault.InvalidOfferType
	}
}

// RentalType - the collateral model of a rental
type RentalType string

// list of rental types
const (
	CollateralFree RentalType = "COLLATERAL_FREE"
	Collateral     RentalType = "COLLATERAL"
)

// ParseRentalType - case insensitive rental type
func ParseRentalType(s string) (RentalType, error) {
	switch RentalType(strings.ToUpper(s)) {
	case CollateralFree:
		return CollateralFree, nil
	case Collateral:
		return Collateral, nil
	default:
		return "", fault.InvalidRentalType
	}
}

// Offer - a sell offer lending or returning a token
type Offer struct {
	Account            account.Account `json:"account"`
	DestinationAccount string          `json:"destinationAccount"`
	URITokenID         string          `json:"uriTokenID"`
	TotalAmount        string          `json:"totalAmount"`
	Deadline           time.Time       `json:"deadline"`
	RentalType         RentalType      `json:"rentalType"`
}

// Accept - a renter taking up an offer
type Accept struct {
	RenterAccount account.Account `json:"renterAccount"`
	TotalAmount   string          `json:"totalAmount"`
	Deadline      time.Time       `json:"deadline"`
}

// one XRP in drops
const dropsPerXRP = 6

// Drops - convert a decimal XRP amount to integer drops
func Drops(xrp string) (string, error) {
	if "" == xrp || strings.HasPrefix(xrp, "-") || strings.HasPrefix(xrp, "+") {
		return "", fault.InvalidAmount
	}

	whole, fraction := xrp, ""
	if i := strings.IndexByte(xrp, '.'); i >= 0 {
		whole, fraction = xrp[:i], xrp[i+1:]
	}
	if "" == whole {
		whole = "0"
	}
	if len(fraction) > dropsPerXRP {
		trimmed := strings.TrimRight(fraction[dropsPerXRP:], "0")
		if "" != trimmed {
			return "", fault.InvalidAmount
		}
		fraction = fraction[:dropsPerXRP]
	}
	fraction += strings.Repeat("0", dropsPerXRP-len(fraction))

	n, err := strconv.ParseUint(whole+fraction, 10, 64)
	if nil != err {
		return "", fault.InvalidAmount
	}
	return strconv.FormatUint(n, 10), nil
}
