// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/mikpaszkowski/rentald/fault"
)

// common errors - keep in alphabetic order
const (
	ErrAmbiguousURI   = fault.InvalidError("only one of uri or hex may be given")
	ErrMissingAddress = fault.InvalidError("address is required")
	ErrMissingSecret  = fault.InvalidError("secret is required")
	ErrMissingTxID    = fault.InvalidError("transaction hash is required")
	ErrMissingValue   = fault.InvalidError("required option is missing")
)
