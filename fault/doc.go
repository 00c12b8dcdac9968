// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Errors raised while talking to the ledger are carried as a
// LedgerError tagged with a Kind so that callers can decide on a
// retry policy without inspecting message text.
package fault
