// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hooks

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

const namespaceEntropySize = 32

// NewNamespace - a fresh namespace: SHA-256 of 32 random bytes, upper case hex
func NewNamespace() (string, error) {
	entropy := make([]byte, namespaceEntropySize)
	if _, err := rand.Read(entropy); nil != err {
		return "", err
	}
	digest := sha256.Sum256(entropy)
	return strings.ToUpper(hex.EncodeToString(digest[:])), nil
}

// HashOfCode - the hook hash of a wasm binary, upper case hex SHA-512Half
func HashOfCode(wasm []byte) string {
	digest := sha512.Sum512(wasm)
	return strings.ToUpper(hex.EncodeToString(digest[:32]))
}
