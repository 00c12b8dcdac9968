// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/fault"
)

// hash prefixes
var (
	prefixTransactionSign = [4]byte{'S', 'T', 'X', 0x00}
	prefixTransactionID   = [4]byte{'T', 'X', 'N', 0x00}
)

// native amount layout
const (
	nativePositive   = uint64(0x4000000000000000)
	maximumNativeXAH = uint64(100000000000000000)
)

// variable length limits
const (
	vlSingle = 192
	vlDouble = 12480
	vlTriple = 918744
)

// Encode - every serialised field, the form submitted to a node
func Encode(d *Definitions, tx map[string]interface{}) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := d.writeObject(buffer, tx, false); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// EncodeForSigning - signing prefix followed by the signing fields
func EncodeForSigning(d *Definitions, tx map[string]interface{}) ([]byte, error) {
	buffer := &bytes.Buffer{}
	buffer.Write(prefixTransactionSign[:])
	if err := d.writeObject(buffer, tx, true); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// TransactionID - upper case hex hash of a signed blob
func TransactionID(blob []byte) string {
	data := make([]byte, 0, len(prefixTransactionID)+len(blob))
	data = append(data, prefixTransactionID[:]...)
	data = append(data, blob...)
	digest := sha512.Sum512(data)
	return strings.ToUpper(hex.EncodeToString(digest[:32]))
}

// fields are written in (type code, nth) order
func (d *Definitions) writeObject(w *bytes.Buffer, object map[string]interface{}, signingOnly bool) error {
	fields := make([]*Field, 0, len(object))
	for name := range object {
		f, ok := d.fields[name]
		if !ok {
			return fmt.Errorf("%s: %w", name, fault.UnknownField)
		}
		if !f.Serialized || (signingOnly && !f.SigningField) {
			continue
		}
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		if fields[i].TypeCode != fields[j].TypeCode {
			return fields[i].TypeCode < fields[j].TypeCode
		}
		return fields[i].Nth < fields[j].Nth
	})

	for _, f := range fields {
		if err := d.writeField(w, f, object[f.Name]); nil != err {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

func (d *Definitions) writeField(w *bytes.Buffer, f *Field, value interface{}) error {
	if err := writeHeader(w, f); nil != err {
		return err
	}

	switch f.Type {
	case "STObject":
		object, ok := value.(map[string]interface{})
		if !ok {
			return fault.InvalidFieldValue
		}
		if err := d.writeObject(w, object, false); nil != err {
			return err
		}
		return writeHeader(w, d.fields[objectEndMarker])

	case "STArray":
		list, ok := value.([]interface{})
		if !ok {
			return fault.InvalidFieldValue
		}
		for _, item := range list {
			wrapper, ok := item.(map[string]interface{})
			if !ok || 1 != len(wrapper) {
				return fault.InvalidFieldValue
			}
			for name, inner := range wrapper {
				element, ok := d.fields[name]
				if !ok {
					return fmt.Errorf("%s: %w", name, fault.UnknownField)
				}
				if "STObject" != element.Type {
					return fault.InvalidFieldValue
				}
				if err := d.writeField(w, element, inner); nil != err {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
		}
		return writeHeader(w, d.fields[arrayEndMarker])
	}

	data, err := d.encodeValue(f, value)
	if nil != err {
		return err
	}
	if f.VLEncoded {
		if err := writeLength(w, len(data)); nil != err {
			return err
		}
	}
	w.Write(data)
	return nil
}

func (d *Definitions) encodeValue(f *Field, value interface{}) ([]byte, error) {
	switch f.Type {
	case "UInt8":
		n, err := unsigned(value, 8)
		return []byte{byte(n)}, err

	case "UInt16":
		if name, ok := value.(string); ok && "TransactionType" == f.Name {
			code, ok := d.transactionTypes[name]
			if !ok {
				return nil, fault.InvalidTransactionType
			}
			value = json.Number(strconv.Itoa(code))
		}
		n, err := unsigned(value, 16)
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(n))
		return b, err

	case "UInt32":
		n, err := unsigned(value, 32)
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(n))
		return b, err

	case "UInt64":
		return uint64Hex(value)

	case "Hash128":
		return fixedHex(value, 16)
	case "Hash160":
		return fixedHex(value, 20)
	case "Hash256":
		return fixedHex(value, 32)

	case "Amount":
		return nativeAmount(value)

	case "Blob":
		s, ok := value.(string)
		if !ok {
			return nil, fault.InvalidFieldValue
		}
		b, err := hex.DecodeString(s)
		if nil != err {
			return nil, fault.InvalidHex
		}
		return b, nil

	case "AccountID":
		s, ok := value.(string)
		if !ok {
			return nil, fault.InvalidFieldValue
		}
		id, err := account.DecodeAddress(s)
		if nil != err {
			return nil, err
		}
		return id[:], nil

	case "Vector256":
		list, ok := value.([]interface{})
		if !ok {
			return nil, fault.InvalidFieldValue
		}
		b := make([]byte, 0, 32*len(list))
		for _, item := range list {
			h, err := fixedHex(item, 32)
			if nil != err {
				return nil, err
			}
			b = append(b, h...)
		}
		return b, nil
	}
	return nil, fault.InvalidFieldValue
}

// writeHeader - type and field codes packed into one to three bytes
func writeHeader(w *bytes.Buffer, f *Field) error {
	t, n := f.TypeCode, f.Nth
	if t < 1 || t > 255 || n < 1 || n > 255 {
		return fault.InvalidDefinitions
	}
	switch {
	case t < 16 && n < 16:
		w.WriteByte(byte(t<<4 | n))
	case t < 16:
		w.WriteByte(byte(t << 4))
		w.WriteByte(byte(n))
	case n < 16:
		w.WriteByte(byte(n))
		w.WriteByte(byte(t))
	default:
		w.WriteByte(0)
		w.WriteByte(byte(t))
		w.WriteByte(byte(n))
	}
	return nil
}

func writeLength(w *bytes.Buffer, n int) error {
	switch {
	case n <= vlSingle:
		w.WriteByte(byte(n))
	case n <= vlDouble:
		n -= vlSingle + 1
		w.WriteByte(byte(vlSingle + 1 + n>>8))
		w.WriteByte(byte(n & 0xff))
	case n <= vlTriple:
		n -= vlDouble + 1
		w.WriteByte(byte(241 + n>>16))
		w.WriteByte(byte(n >> 8 & 0xff))
		w.WriteByte(byte(n & 0xff))
	default:
		return fault.InvalidFieldValue
	}
	return nil
}

// unsigned - integer from a JSON number or decimal string
func unsigned(value interface{}, bits int) (uint64, error) {
	switch v := value.(type) {
	case json.Number:
		return parseUnsigned(string(v), bits)
	case string:
		return parseUnsigned(v, bits)
	case float64:
		if v < 0 || v != math.Trunc(v) || v > float64(uint64(1)<<uint(bits)-1) {
			return 0, fault.InvalidFieldValue
		}
		return uint64(v), nil
	case int:
		if v < 0 {
			return 0, fault.InvalidFieldValue
		}
		return parseUnsigned(strconv.Itoa(v), bits)
	case uint32:
		return parseUnsigned(strconv.FormatUint(uint64(v), 10), bits)
	case uint64:
		return parseUnsigned(strconv.FormatUint(v, 10), bits)
	}
	return 0, fault.InvalidFieldValue
}

func parseUnsigned(s string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	if nil != err {
		return 0, fault.InvalidFieldValue
	}
	return n, nil
}

// uint64Hex - 64 bit fields are hex strings in JSON
func uint64Hex(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok || "" == s || len(s) > 16 {
		return nil, fault.InvalidFieldValue
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if nil != err {
		return nil, fault.InvalidFieldValue
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b, nil
}

func fixedHex(value interface{}, size int) ([]byte, error) {
	s, ok := value.(string)
	if !ok || 2*size != len(s) {
		return nil, fault.InvalidFieldValue
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.InvalidHex
	}
	return b, nil
}

// nativeAmount - drops with the positive bit set, issued amounts are refused
func nativeAmount(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fault.UnsupportedAmount
	}
	drops, err := strconv.ParseUint(s, 10, 64)
	if nil != err || drops > maximumNativeXAH {
		return nil, fault.InvalidAmount
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, drops|nativePositive)
	return b, nil
}
