// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikpaszkowski/rentald/fault"
)

// connection state errors
var (
	ErrClosed        = errors.New("connection closed")
	ErrRedialDelayed = errors.New("reconnect delayed")
)

// ResponseError - an error response from a node
type ResponseError struct {
	Command string
	Code    string
	Number  int
	Message string
}

// Error - implements error
func (e *ResponseError) Error() string {
	if "" == e.Message {
		return fmt.Sprintf("%s: %s", e.Command, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Command, e.Code, e.Message)
}

// node error codes grouped by kind
var (
	notFoundCodes = map[string]struct{}{
		"actNotFound":    {},
		"entryNotFound":  {},
		"objectNotFound": {},
		"txnNotFound":    {},
		"lgrNotFound":    {},
	}
	accountCodes = map[string]struct{}{
		"badSecret":     {},
		"badSeed":       {},
		"badKeyType":    {},
		"srcActMissing": {},
	}
	malformedCodes = map[string]struct{}{
		"invalidParams":      {},
		"invalidTransaction": {},
		"malformedTx":        {},
		"malformedRequest":   {},
		"actMalformed":       {},
		"srcActMalformed":    {},
		"unknownCmd":         {},
		"missingCommand":     {},
	}
	unavailableCodes = map[string]struct{}{
		"tooBusy":          {},
		"noNetwork":        {},
		"noCurrent":        {},
		"noClosed":         {},
		"notReady":         {},
		"notSynced":        {},
		"slowDown":         {},
		"amendmentBlocked": {},
		"internal":         {},
	}
)

// Translate - classify a transport or node error
//
// an error that is already classified is returned unchanged
func Translate(operation string, err error) error {
	if nil == err {
		return nil
	}
	if _, ok := fault.AsLedgerError(err); ok {
		return err
	}

	var re *ResponseError
	if errors.As(err, &re) {
		return fault.NewLedgerError(codeKind(re.Code), operation, re.Code, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fault.NewLedgerError(fault.NetworkUnavailable, operation, "timeout", err)
	}

	// cancellation, closed connection and socket failures
	return fault.NewLedgerError(fault.NetworkUnavailable, operation, "", err)
}

func codeKind(code string) fault.Kind {
	if _, ok := notFoundCodes[code]; ok {
		return fault.NotFound
	}
	if _, ok := accountCodes[code]; ok {
		return fault.InvalidAccount
	}
	if _, ok := malformedCodes[code]; ok {
		return fault.MalformedTransaction
	}
	if _, ok := unavailableCodes[code]; ok {
		return fault.NetworkUnavailable
	}
	return fault.OtherSubmissionFailure
}
