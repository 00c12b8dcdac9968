// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

// Definitions - a server_definitions result covering the fields the
// service sends
const Definitions = `{
  "TYPES": {
    "Done": -1, "Unknown": -2, "NotPresent": 0,
    "UInt16": 1, "UInt32": 2, "UInt64": 3, "Hash128": 4, "Hash256": 5,
    "Amount": 6, "Blob": 7, "AccountID": 8, "STObject": 14, "STArray": 15,
    "UInt8": 16, "Hash160": 17, "PathSet": 18, "Vector256": 19
  },
  "FIELDS": [
    ["Generic", {"nth": 0, "isVLEncoded": false, "isSerialized": false, "isSigningField": false, "type": "Unknown"}],
    ["TransactionType", {"nth": 2, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "UInt16"}],
    ["HookApiVersion", {"nth": 20, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "UInt16"}],
    ["NetworkID", {"nth": 1, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "UInt32"}],
    ["Flags", {"nth": 2, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "UInt32"}],
    ["Sequence", {"nth": 4, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "UInt32"}],
    ["LastLedgerSequence", {"nth": 27, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "UInt32"}],
    ["HookOn", {"nth": 20, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "Hash256"}],
    ["HookHash", {"nth": 31, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "Hash256"}],
    ["HookNamespace", {"nth": 32, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "Hash256"}],
    ["URITokenID", {"nth": 36, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "Hash256"}],
    ["hash", {"nth": 257, "isVLEncoded": false, "isSerialized": false, "isSigningField": false, "type": "Hash256"}],
    ["Amount", {"nth": 1, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "Amount"}],
    ["Fee", {"nth": 8, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "Amount"}],
    ["SigningPubKey", {"nth": 3, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "Blob"}],
    ["TxnSignature", {"nth": 4, "isVLEncoded": true, "isSerialized": true, "isSigningField": false, "type": "Blob"}],
    ["URI", {"nth": 5, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "Blob"}],
    ["CreateCode", {"nth": 11, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "Blob"}],
    ["MemoType", {"nth": 12, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "Blob"}],
    ["MemoData", {"nth": 13, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "Blob"}],
    ["HookParameterName", {"nth": 24, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "Blob"}],
    ["HookParameterValue", {"nth": 25, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "Blob"}],
    ["Account", {"nth": 1, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "AccountID"}],
    ["Destination", {"nth": 3, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "AccountID"}],
    ["Authorize", {"nth": 5, "isVLEncoded": true, "isSerialized": true, "isSigningField": true, "type": "AccountID"}],
    ["ObjectEndMarker", {"nth": 1, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STObject"}],
    ["Memo", {"nth": 10, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STObject"}],
    ["Hook", {"nth": 14, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STObject"}],
    ["HookParameter", {"nth": 23, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STObject"}],
    ["HookGrant", {"nth": 24, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STObject"}],
    ["ArrayEndMarker", {"nth": 1, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STArray"}],
    ["Memos", {"nth": 9, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STArray"}],
    ["Hooks", {"nth": 11, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STArray"}],
    ["HookParameters", {"nth": 19, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STArray"}],
    ["HookGrants", {"nth": 20, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "STArray"}]
  ],
  "TRANSACTION_TYPES": {
    "Invalid": -1, "Payment": 0, "SetHook": 22,
    "URITokenMint": 45, "URITokenBurn": 46, "URITokenBuy": 47,
    "URITokenCreateSellOffer": 48, "URITokenCancelSellOffer": 49
  },
  "hash": "7A3B5C1F9E0D2A4B6C8E0F1A3B5C7D9E1F2A4B6C8D0E2F4A6B8C0D2E4F6A8B0C"
}`
