// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"crypto/sha512"
	"fmt"
	"strings"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
)

const (
	genesisSeed      = "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"
	genesisAddress   = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	genesisPublicKey = "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020"
	genesisID        = "B5F762798A53D543A014CAF8B297CFF8F2F937E8"
	zeroAddress      = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
)

func TestDecodeAddress(t *testing.T) {
	id, err := account.DecodeAddress(genesisAddress)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, genesisID, id.Hex(), "wrong account id")
	assert.Equal(t, genesisAddress, id.String(), "wrong round trip")

	idHex, err := account.IDHex(genesisAddress)
	assert.Nil(t, err, "id hex error")
	assert.Equal(t, genesisID, idHex, "wrong id hex")

	var zero account.ID
	assert.Equal(t, zeroAddress, account.EncodeAddress(zero), "wrong zero address")
}

func TestInvalidAddress(t *testing.T) {
	// last character altered
	corrupt := genesisAddress[:len(genesisAddress)-1] + "j"

	items := []struct {
		address string
		err     error
	}{
		{"", fault.InvalidAccountAddress},
		{"r0OIl", fault.InvalidAccountAddress},
		{corrupt, fault.InvalidAddressChecksum},
		{genesisSeed, fault.InvalidAccountAddress},
	}

	for i, item := range items {
		_, err := account.DecodeAddress(item.address)
		assert.Equal(t, item.err, err, "%d: wrong error for: %q", i, item.address)
		assert.False(t, account.IsValidAddress(item.address), "%d: valid: %q", i, item.address)
	}
	assert.True(t, account.IsValidAddress(genesisAddress), "genesis address invalid")
}

func TestDeriveSecp256k1(t *testing.T) {
	identity, err := account.Derive(genesisSeed)
	assert.Nil(t, err, "derive error")
	assert.Equal(t, account.Secp256k1, identity.KeyType, "wrong key type")
	assert.Equal(t, genesisAddress, identity.Address, "wrong address")
	assert.Equal(t, genesisPublicKey, identity.PublicKeyHex(), "wrong public key")

	seed, err := account.DecodeSeed(genesisSeed)
	assert.Nil(t, err, "decode seed error")
	assert.Equal(t, genesisSeed, seed.String(), "wrong seed round trip")
	assert.NotContains(t, fmt.Sprintf("%v", identity), genesisSeed, "seed is visible")
}

func TestSignSecp256k1(t *testing.T) {
	identity, err := account.Derive(genesisSeed)
	assert.Nil(t, err, "derive error")

	message := []byte("STX\x00 signing data")
	signature, err := identity.Sign(message)
	assert.Nil(t, err, "sign error")

	again, err := identity.Sign(message)
	assert.Nil(t, err, "sign error")
	assert.Equal(t, signature, again, "signature is not deterministic")

	parsed, err := ecdsa.ParseDERSignature(signature)
	assert.Nil(t, err, "signature is not DER")

	public, err := secp256k1.ParsePubKey(identity.PublicKey)
	assert.Nil(t, err, "bad public key")

	digest := sha512.Sum512(message)
	assert.True(t, parsed.Verify(digest[:32], public), "signature does not verify")
	assert.False(t, parsed.Verify(make([]byte, 32), public), "signature verifies other data")
}

func TestSignED25519(t *testing.T) {
	seed, err := account.NewSeed(account.ED25519)
	assert.Nil(t, err, "new seed error")

	identity := account.DeriveFromSeed(seed)
	message := []byte("STX\x00 signing data")
	signature, err := identity.Sign(message)
	assert.Nil(t, err, "sign error")
	assert.Equal(t, ed25519.SignatureSize, len(signature), "wrong signature size")

	public := ed25519.PublicKey(identity.PublicKey[1:])
	assert.True(t, ed25519.Verify(public, message, signature), "signature does not verify")
}

func TestSignWithoutKey(t *testing.T) {
	identity := &account.Identity{KeyType: account.ED25519}
	_, err := identity.Sign([]byte("data"))
	assert.Equal(t, fault.MissingSecret, err, "signed without a key")
}

func TestDeriveED25519(t *testing.T) {
	seed, err := account.NewSeed(account.ED25519)
	assert.Nil(t, err, "new seed error")

	encoded := seed.String()
	assert.True(t, strings.HasPrefix(encoded, "sEd"), "wrong seed prefix: %s", encoded)

	decoded, err := account.DecodeSeed(encoded)
	assert.Nil(t, err, "decode seed error")
	assert.Equal(t, seed, decoded, "wrong seed round trip")

	first, err := account.Derive(encoded)
	assert.Nil(t, err, "derive error")
	second, err := account.Derive(encoded)
	assert.Nil(t, err, "derive error")

	assert.Equal(t, account.ED25519, first.KeyType, "wrong key type")
	assert.Equal(t, 33, len(first.PublicKey), "wrong public key length")
	assert.Equal(t, byte(0xed), first.PublicKey[0], "missing public key prefix")
	assert.True(t, account.IsValidAddress(first.Address), "invalid derived address")
	assert.Equal(t, first.Address, second.Address, "derivation is not deterministic")
}

func TestDecodeInvalidSeed(t *testing.T) {
	corrupt := genesisSeed[:len(genesisSeed)-1] + "c"

	_, err := account.DecodeSeed("")
	assert.Equal(t, fault.MissingSecret, err, "wrong empty error")

	_, err = account.DecodeSeed(corrupt)
	assert.Equal(t, fault.InvalidSeedChecksum, err, "wrong checksum error")

	_, err = account.DecodeSeed(genesisAddress)
	assert.Equal(t, fault.InvalidSeed, err, "address accepted as seed")

	_, err = account.Derive("not-a-seed")
	assert.Equal(t, fault.InvalidSeed, err, "wrong garbage error")
}

func TestAccountDoesNotPrintSecret(t *testing.T) {
	a := account.Account{
		Address: genesisAddress,
		Secret:  genesisSeed,
	}
	for _, s := range []string{a.String(), fmt.Sprintf("%v", a), fmt.Sprintf("%#v", a), fmt.Sprintf("%s", a)} {
		assert.NotContains(t, s, genesisSeed, "secret is visible")
		assert.Contains(t, s, genesisAddress, "address is missing")
	}
}
