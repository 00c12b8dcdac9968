// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"strings"
)

// Kind - the caller facing category of a ledger failure
type Kind int

// list of ledger error kinds
const (
	Unknown Kind = iota
	InvalidAccount
	TransactionPreparation
	NetworkUnavailable
	MalformedTransaction
	RetryableLedger
	HookRejected
	ClaimedCostOnly
	OtherSubmissionFailure
	PreconditionFailed
	NotFound
)

var kindNames = map[Kind]string{
	Unknown:                "unknown",
	InvalidAccount:         "invalid account",
	TransactionPreparation: "transaction preparation",
	NetworkUnavailable:     "network unavailable",
	MalformedTransaction:   "malformed transaction",
	RetryableLedger:        "retryable ledger",
	HookRejected:           "hook rejected",
	ClaimedCostOnly:        "claimed cost only",
	OtherSubmissionFailure: "other submission failure",
	PreconditionFailed:     "precondition failed",
	NotFound:               "not found",
}

// String - printable kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[Unknown]
}

// Retryable - true if a caller may repeat the operation unchanged
// (or with a refreshed sequence for RetryableLedger)
func (k Kind) Retryable() bool {
	switch k {
	case TransactionPreparation, NetworkUnavailable, RetryableLedger:
		return true
	default:
		return false
	}
}

// LedgerError - a classified failure of a ledger operation
//
// Code holds the ledger's engine result or error code when one was
// returned, Operation names the stage or request that failed.
type LedgerError struct {
	Kind      Kind
	Operation string
	Code      string
	Err       error
}

// NewLedgerError - create a classified error wrapping a cause
func NewLedgerError(kind Kind, operation string, code string, err error) *LedgerError {
	return &LedgerError{
		Kind:      kind,
		Operation: operation,
		Code:      code,
		Err:       err,
	}
}

// Error - format as: kind: operation[: code C][: cause]
func (e *LedgerError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if "" != e.Operation {
		b.WriteString(": ")
		b.WriteString(e.Operation)
	}
	if "" != e.Code {
		b.WriteString(": code ")
		b.WriteString(e.Code)
	}
	if nil != e.Err {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap - expose the underlying cause
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// AsLedgerError - extract a ledger error from anywhere in a wrapped chain
func AsLedgerError(err error) (*LedgerError, bool) {
	var le *LedgerError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}

// KindOf - the kind of a ledger error or Unknown
func KindOf(err error) Kind {
	if le, ok := AsLedgerError(err); ok {
		return le.Kind
	}
	return Unknown
}

// CodeOf - the ledger result code carried by an error, if any
func CodeOf(err error) string {
	if le, ok := AsLedgerError(err); ok {
		return le.Code
	}
	return ""
}

// IsKind - check the kind of an error
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// determine the kind of an error
func IsInvalidAccount(err error) bool         { return IsKind(err, InvalidAccount) }
func IsTransactionPreparation(err error) bool { return IsKind(err, TransactionPreparation) }
func IsNetworkUnavailable(err error) bool     { return IsKind(err, NetworkUnavailable) }
func IsMalformedTransaction(err error) bool   { return IsKind(err, MalformedTransaction) }
func IsRetryableLedger(err error) bool        { return IsKind(err, RetryableLedger) }
func IsHookRejected(err error) bool           { return IsKind(err, HookRejected) }
func IsClaimedCostOnly(err error) bool        { return IsKind(err, ClaimedCostOnly) }
func IsOtherSubmissionFailure(err error) bool { return IsKind(err, OtherSubmissionFailure) }
func IsPreconditionFailed(err error) bool     { return IsKind(err, PreconditionFailed) }
func IsLedgerNotFound(err error) bool         { return IsKind(err, NotFound) }
