// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/fault"
)

func TestWriteLength(t *testing.T) {
	items := []struct {
		n        int
		expected string
	}{
		{0, "00"},
		{192, "C0"},
		{193, "C100"},
		{12480, "F0FF"},
		{12481, "F10000"},
		{918744, "FED417"},
	}
	for _, item := range items {
		buffer := &bytes.Buffer{}
		err := writeLength(buffer, item.n)
		assert.Nil(t, err, "%d: length error", item.n)
		assert.Equal(t, item.expected, strings.ToUpper(hex.EncodeToString(buffer.Bytes())), "%d: wrong prefix", item.n)
	}

	err := writeLength(&bytes.Buffer{}, 918745)
	assert.Equal(t, fault.InvalidFieldValue, err, "oversize length accepted")
}

func TestWriteHeader(t *testing.T) {
	items := []struct {
		typeCode int
		nth      int
		expected string
	}{
		{1, 2, "12"},
		{2, 27, "201B"},
		{16, 1, "0110"},
		{16, 16, "001010"},
	}
	for _, item := range items {
		buffer := &bytes.Buffer{}
		err := writeHeader(buffer, &Field{TypeCode: item.typeCode, Nth: item.nth})
		assert.Nil(t, err, "%d/%d: header error", item.typeCode, item.nth)
		assert.Equal(t, item.expected, strings.ToUpper(hex.EncodeToString(buffer.Bytes())), "%d/%d: wrong header", item.typeCode, item.nth)
	}

	err := writeHeader(&bytes.Buffer{}, &Field{TypeCode: 5, Nth: 257})
	assert.Equal(t, fault.InvalidDefinitions, err, "unencodable header accepted")
}
