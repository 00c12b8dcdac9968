// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC front end of rentald
//
// Clients connect over TLS and call the Account, Hook, Node, Rental,
// Transaction and URIToken handlers registered by rpc/server.  The
// optional HTTPS listener accepts the same calls as a POST to the rpc
// path and also serves the allow-listed details and metrics paths.
package rpc
