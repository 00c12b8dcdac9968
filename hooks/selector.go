// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hooks

import (
	"strings"

	"github.com/mikpaszkowski/rentald/transaction"
)

// Selector - recognises the operational hook in an account's hook list
//
// with an empty HookHash the first occupied position is taken
type Selector struct {
	HookHash string
}

// Positional - true if selection falls back to list position
func (s Selector) Positional() bool {
	return "" == s.HookHash
}

// Select - position of the operational hook or -1
func (s Selector) Select(hooks []transaction.Hook) int {
	for i, hook := range hooks {
		if "" == hook.HookHash {
			continue
		}
		if s.Positional() || strings.EqualFold(s.HookHash, hook.HookHash) {
			return i
		}
	}
	return -1
}

// free - the position a new install should occupy or -1 when full
func free(hooks []transaction.Hook) int {
	for i, hook := range hooks {
		if "" == hook.HookHash {
			return i
		}
	}
	if len(hooks) < transaction.MaximumHooks {
		return len(hooks)
	}
	return -1
}
