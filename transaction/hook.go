// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// SetHook flags
const (
	FlagOverride        uint32 = 1
	FlagNamespaceDelete uint32 = 16
)

// ledger limits
const (
	MaximumHooks      = 10
	MaximumHookGrants = 8
)

// HookEntry - wrapper used by the ledger's array encoding
type HookEntry struct {
	Hook Hook `json:"Hook"`
}

// Hook - a hook as installed on an account or sent in SetHook
//
// CreateCode is a pointer because an empty string requests deletion.
type Hook struct {
	CreateCode     *string              `json:"CreateCode,omitempty"`
	HookHash       string               `json:"HookHash,omitempty"`
	HookOn         string               `json:"HookOn,omitempty"`
	HookNamespace  string               `json:"HookNamespace,omitempty"`
	HookApiVersion *int                 `json:"HookApiVersion,omitempty"`
	Flags          *uint32              `json:"Flags,omitempty"`
	HookGrants     []HookGrantEntry     `json:"HookGrants,omitempty"`
	HookParameters []HookParameterEntry `json:"HookParameters,omitempty"`
}

func (h Hook) clone() Hook {
	c := h
	if nil != h.HookGrants {
		c.HookGrants = append([]HookGrantEntry(nil), h.HookGrants...)
	}
	if nil != h.HookParameters {
		c.HookParameters = append([]HookParameterEntry(nil), h.HookParameters...)
	}
	return c
}

// Grants - the plain grant list
func (h Hook) Grants() []HookGrant {
	grants := make([]HookGrant, len(h.HookGrants))
	for i, g := range h.HookGrants {
		grants[i] = g.HookGrant
	}
	return grants
}

// HasGrant - true if the hook already authorizes an account for a hash
//
// a grant without a hash covers every hook
func (h Hook) HasGrant(hookHash string, authorize string) bool {
	for _, g := range h.HookGrants {
		if g.HookGrant.Authorize != authorize {
			continue
		}
		if g.HookGrant.HookHash == hookHash || "" == g.HookGrant.HookHash {
			return true
		}
	}
	return false
}

// HookGrantEntry - wrapper used by the ledger's array encoding
type HookGrantEntry struct {
	HookGrant HookGrant `json:"HookGrant"`
}

// HookGrant - permission for an account to act on a hook's namespace
type HookGrant struct {
	HookHash  string `json:"HookHash,omitempty"`
	Authorize string `json:"Authorize,omitempty"`
}

// GrantEntries - wrap a plain grant list
func GrantEntries(grants []HookGrant) []HookGrantEntry {
	if 0 == len(grants) {
		return nil
	}
	entries := make([]HookGrantEntry, len(grants))
	for i, g := range grants {
		entries[i] = HookGrantEntry{HookGrant: g}
	}
	return entries
}

// HookParameterEntry - wrapper used by the ledger's array encoding
type HookParameterEntry struct {
	HookParameter HookParameter `json:"HookParameter"`
}

// HookParameter - opaque hex name/value pair passed to a hook
type HookParameter struct {
	HookParameterName  string `json:"HookParameterName"`
	HookParameterValue string `json:"HookParameterValue"`
}

// NewHookParameter - parameter with a text name and a hex value
func NewHookParameter(name string, valueHex string) HookParameterEntry {
	return HookParameterEntry{
		HookParameter: HookParameter{
			HookParameterName:  TextToHex(name),
			HookParameterValue: valueHex,
		},
	}
}

// Uint32 - pointer helper for optional flags
func Uint32(n uint32) *uint32 {
	return &n
}

// Int - pointer helper for optional integers
func Int(n int) *int {
	return &n
}

// String - pointer helper for optional strings
func String(s string) *string {
	return &s
}
