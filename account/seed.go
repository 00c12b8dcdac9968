// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mikpaszkowski/rentald/fault"
)

// KeyType - signing algorithm of a seed
type KeyType int

// supported key algorithms
const (
	Secp256k1 KeyType = iota
	ED25519
)

// String - name used by the ledger's key_type field
func (k KeyType) String() string {
	if ED25519 == k {
		return "ed25519"
	}
	return "secp256k1"
}

// seed parameters
const (
	entropyLength = 16
)

var (
	secp256k1SeedPrefix = []byte{0x21}
	ed25519SeedPrefix   = []byte{0x01, 0xe1, 0x4b}
)

// Seed - the entropy behind a family seed
type Seed struct {
	KeyType KeyType
	Entropy [entropyLength]byte
}

// DecodeSeed - parse a base58 family seed ("s..." or "sEd...")
func DecodeSeed(secret string) (*Seed, error) {
	if "" == secret {
		return nil, fault.MissingSecret
	}

	payload, err := decodeChecked(secret)
	if fault.InvalidAddressChecksum == err {
		return nil, fault.InvalidSeedChecksum
	}
	if nil != err {
		return nil, fault.InvalidSeed
	}

	seed := &Seed{}
	switch {
	case len(ed25519SeedPrefix)+entropyLength == len(payload) && bytes.HasPrefix(payload, ed25519SeedPrefix):
		seed.KeyType = ED25519
		copy(seed.Entropy[:], payload[len(ed25519SeedPrefix):])

	case len(secp256k1SeedPrefix)+entropyLength == len(payload) && bytes.HasPrefix(payload, secp256k1SeedPrefix):
		seed.KeyType = Secp256k1
		copy(seed.Entropy[:], payload[len(secp256k1SeedPrefix):])

	default:
		return nil, fault.InvalidSeed
	}
	return seed, nil
}

// String - base58 family seed
func (seed *Seed) String() string {
	prefix := secp256k1SeedPrefix
	if ED25519 == seed.KeyType {
		prefix = ed25519SeedPrefix
	}
	return encodeChecked(prefix, seed.Entropy[:])
}

// NewSeed - fresh random seed of the given type
func NewSeed(keyType KeyType) (*Seed, error) {
	seed := &Seed{
		KeyType: keyType,
	}
	if _, err := rand.Read(seed.Entropy[:]); nil != err {
		return nil, err
	}
	return seed, nil
}
