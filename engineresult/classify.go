// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engineresult - classify ledger engine result codes
package engineresult

import (
	"github.com/mikpaszkowski/rentald/fault"
)

// HookRejectedCode - the result returned when a hook vetoes a transaction
const HookRejectedCode = "tecHOOK_REJECTED"

// engine result prefixes
const (
	prefixSuccess   = "tes"
	prefixMalformed = "tem"
	prefixRetry     = "ter"
	prefixClaimed   = "tec"
	prefixLength    = 3
)

// Outcome - typed result of a submission
type Outcome int

// list of outcomes
const (
	OtherFailure Outcome = iota
	Success
	Malformed
	Retryable
	ClaimedCostOnly
	HookRejected
)

// Action - what a client should do with an outcome
type Action int

// list of recommended actions
const (
	ServiceUnavailable Action = iota
	Proceed
	Reject
	ResubmitWithBackoff
	Conflict
	Investigate
)

// Classify - map an engine result code to its outcome
//
// unknown or short codes are OtherFailure
func Classify(code string) Outcome {
	switch Prefix(code) {
	case prefixSuccess:
		return Success
	case prefixMalformed:
		return Malformed
	case prefixRetry:
		return Retryable
	case prefixClaimed:
		if HookRejectedCode == code {
			return HookRejected
		}
		return ClaimedCostOnly
	default:
		return OtherFailure
	}
}

// Prefix - the three character class of a code
func Prefix(code string) string {
	if len(code) < prefixLength {
		return code
	}
	return code[:prefixLength]
}

// String - printable outcome
func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case Malformed:
		return "Malformed"
	case Retryable:
		return "Retryable"
	case ClaimedCostOnly:
		return "ClaimedCostOnly"
	case HookRejected:
		return "HookRejected"
	default:
		return "OtherFailure"
	}
}

// Action - recommended client action for an outcome
func (o Outcome) Action() Action {
	switch o {
	case Success:
		return Proceed
	case Malformed:
		return Reject
	case Retryable:
		return ResubmitWithBackoff
	case HookRejected:
		return Conflict
	case ClaimedCostOnly:
		return Investigate
	default:
		return ServiceUnavailable
	}
}

// Kind - the error kind reported to callers for a non success outcome
func (o Outcome) Kind() fault.Kind {
	switch o {
	case Malformed:
		return fault.MalformedTransaction
	case Retryable:
		return fault.RetryableLedger
	case HookRejected:
		return fault.HookRejected
	case ClaimedCostOnly:
		return fault.ClaimedCostOnly
	case Success:
		return fault.Unknown
	default:
		return fault.OtherSubmissionFailure
	}
}

// String - printable action
func (a Action) String() string {
	switch a {
	case Proceed:
		return "proceed"
	case Reject:
		return "reject"
	case ResubmitWithBackoff:
		return "resubmit with backoff"
	case Conflict:
		return "conflict"
	case Investigate:
		return "investigate"
	default:
		return "service unavailable"
	}
}
