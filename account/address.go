// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/mikpaszkowski/rentald/fault"
)

// the ledger's base58 alphabet
const alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// miscellaneous constants
const (
	checksumLength  = 4
	accountIDLength = 20
	addressVersion  = 0x00
)

var ledgerAlphabet = base58.NewAlphabet(alphabet)

// ID - the 20 byte account identifier behind a classic address
type ID [accountIDLength]byte

// String - the classic address of the identifier
func (id ID) String() string {
	return EncodeAddress(id)
}

// Hex - upper case hex of the identifier
func (id ID) Hex() string {
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

// EncodeAddress - classic address from an account identifier
func EncodeAddress(id ID) string {
	return encodeChecked([]byte{addressVersion}, id[:])
}

// DecodeAddress - account identifier from a classic address
func DecodeAddress(address string) (ID, error) {
	var id ID
	payload, err := decodeChecked(address)
	if nil != err {
		return id, err
	}
	if 1+accountIDLength != len(payload) || addressVersion != payload[0] {
		return id, fault.InvalidAccountAddress
	}
	copy(id[:], payload[1:])
	return id, nil
}

// IsValidAddress - check that an address decodes with a valid checksum
func IsValidAddress(address string) bool {
	_, err := DecodeAddress(address)
	return nil == err
}

// IDHex - upper case hex account identifier for an address
func IDHex(address string) (string, error) {
	id, err := DecodeAddress(address)
	if nil != err {
		return "", err
	}
	return id.Hex(), nil
}

// idFromPublicKey - RIPEMD160(SHA256(public key))
func idFromPublicKey(publicKey []byte) ID {
	sha := sha256.Sum256(publicKey)
	r := ripemd160.New()
	_, _ = r.Write(sha[:])

	var id ID
	copy(id[:], r.Sum(nil))
	return id
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

func encodeChecked(prefix []byte, data []byte) string {
	payload := make([]byte, 0, len(prefix)+len(data)+checksumLength)
	payload = append(payload, prefix...)
	payload = append(payload, data...)
	payload = append(payload, checksum(payload)...)
	return base58.EncodeAlphabet(payload, ledgerAlphabet)
}

// decodeChecked - returns the payload without its checksum
func decodeChecked(s string) ([]byte, error) {
	if "" == s {
		return nil, fault.InvalidAccountAddress
	}
	decoded, err := base58.DecodeAlphabet(s, ledgerAlphabet)
	if nil != err || len(decoded) <= checksumLength {
		return nil, fault.InvalidAccountAddress
	}
	n := len(decoded) - checksumLength
	if !bytes.Equal(checksum(decoded[:n]), decoded[n:]) {
		return nil, fault.InvalidAddressChecksum
	}
	return decoded[:n], nil
}
