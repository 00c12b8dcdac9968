// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ed25519"

	"github.com/mikpaszkowski/rentald/fault"
)

const ed25519PublicKeyPrefix = 0xed

// Identity - signing material derived from a family seed
//
// only the private key is kept, the seed itself is not retained
type Identity struct {
	Address   string
	ID        ID
	KeyType   KeyType
	PublicKey []byte

	ed25519Key   ed25519.PrivateKey
	secp256k1Key *secp256k1.PrivateKey
}

// String - the address, never the key
func (identity *Identity) String() string {
	return identity.Address
}

// PublicKeyHex - upper case hex public key as used in SigningPubKey
func (identity *Identity) PublicKeyHex() string {
	return strings.ToUpper(hex.EncodeToString(identity.PublicKey))
}

// Sign - signature over a transaction's signing data
//
// ed25519 signs the data itself, secp256k1 signs its SHA-512Half and
// returns the DER form with a low S value
func (identity *Identity) Sign(message []byte) ([]byte, error) {
	switch identity.KeyType {
	case ED25519:
		if nil == identity.ed25519Key {
			return nil, fault.MissingSecret
		}
		return ed25519.Sign(identity.ed25519Key, message), nil

	default:
		if nil == identity.secp256k1Key {
			return nil, fault.MissingSecret
		}
		hash := sha512Half(message)
		return ecdsa.Sign(identity.secp256k1Key, hash[:]).Serialize(), nil
	}
}

// Deriver - turns a secret into a signing identity
type Deriver interface {
	Derive(secret string) (*Identity, error)
}

// KeyDeriver - the default family seed deriver
type KeyDeriver struct{}

// Derive - implements Deriver
func (KeyDeriver) Derive(secret string) (*Identity, error) {
	return Derive(secret)
}

// Derive - identity of the account index 0 key pair of a family seed
func Derive(secret string) (*Identity, error) {
	seed, err := DecodeSeed(secret)
	if nil != err {
		return nil, err
	}
	return DeriveFromSeed(seed), nil
}

// DeriveFromSeed - identity of a decoded seed
func DeriveFromSeed(seed *Seed) *Identity {
	identity := &Identity{
		KeyType: seed.KeyType,
	}
	switch seed.KeyType {
	case ED25519:
		identity.ed25519Key, identity.PublicKey = ed25519KeyPair(seed.Entropy[:])
	default:
		identity.secp256k1Key, identity.PublicKey = secp256k1KeyPair(seed.Entropy[:])
	}

	identity.ID = idFromPublicKey(identity.PublicKey)
	identity.Address = EncodeAddress(identity.ID)
	return identity
}

// private key seed is the first half of SHA-512 of the entropy
func ed25519KeyPair(entropy []byte) (ed25519.PrivateKey, []byte) {
	half := sha512Half(entropy)
	private := ed25519.NewKeyFromSeed(half[:])
	public := private.Public().(ed25519.PublicKey)

	result := make([]byte, 0, 1+ed25519.PublicKeySize)
	result = append(result, ed25519PublicKeyPrefix)
	return private, append(result, public...)
}

// root generator plus the account 0 intermediate scalar
func secp256k1KeyPair(entropy []byte) (*secp256k1.PrivateKey, []byte) {
	root := deriveScalar(entropy, nil)
	rootPublic := secp256k1.NewPrivateKey(root).PubKey().SerializeCompressed()

	accountIndex := uint32(0)
	intermediate := deriveScalar(rootPublic, &accountIndex)

	private := secp256k1.NewPrivateKey(new(secp256k1.ModNScalar).Set(root).Add(intermediate))
	return private, private.PubKey().SerializeCompressed()
}

// deriveScalar - first SHA-512Half(data [|| discriminator] || i) that is a
// valid non zero scalar
func deriveScalar(data []byte, discriminator *uint32) *secp256k1.ModNScalar {
	buffer := make([]byte, 0, len(data)+8)
	for i := uint32(0); ; i++ {
		buffer = append(buffer[:0], data...)
		if nil != discriminator {
			buffer = appendUint32(buffer, *discriminator)
		}
		buffer = appendUint32(buffer, i)

		half := sha512Half(buffer)
		scalar := new(secp256k1.ModNScalar)
		overflow := scalar.SetByteSlice(half[:])
		if !overflow && !scalar.IsZero() {
			return scalar
		}
	}
}

func appendUint32(b []byte, n uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], n)
	return append(b, tmp[:]...)
}

func sha512Half(data []byte) [32]byte {
	var half [32]byte
	digest := sha512.Sum512(data)
	copy(half[:], digest[:32])
	return half
}
