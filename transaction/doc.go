// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - ledger transaction shapes
//
// A Transaction is a tagged union over the supported operation
// kinds. It marshals to the ledger's native JSON field names so
// that it can be passed unchanged to the node's sign command.
package transaction
