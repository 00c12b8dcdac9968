// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal keeps recent submission records in memory so their
// status can be queried and retryable blobs sent again
package journal

import (
	"sort"
	"strings"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/submission"
)

// defaults
const (
	DefaultExpiry  = 24 * time.Hour
	DefaultCleanup = 10 * time.Minute

	maximumRecent = 100
)

// Configuration - from the journal block of the configuration file
type Configuration struct {
	Expiry  string `gluamapper:"expiry" json:"expiry"`
	Cleanup string `gluamapper:"cleanup" json:"cleanup"`
}

// Journal - submission records indexed by transaction hash and by id
type Journal struct {
	sync.Mutex
	expiry   time.Duration
	byHash   *cache.Cache
	byID     *cache.Cache
	accounts map[string][]string
}

// New - create a journal, zero durations select the defaults
func New(expiry time.Duration, cleanup time.Duration) *Journal {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	if cleanup <= 0 {
		cleanup = DefaultCleanup
	}
	return &Journal{
		expiry:   expiry,
		byHash:   cache.New(expiry, cleanup),
		byID:     cache.New(expiry, cleanup),
		accounts: make(map[string][]string),
	}
}

// NewFromConfiguration - parse the duration strings, empty means default
func NewFromConfiguration(configuration *Configuration) (*Journal, error) {
	expiry, err := parseDuration(configuration.Expiry)
	if nil != err {
		return nil, err
	}
	cleanup, err := parseDuration(configuration.Cleanup)
	if nil != err {
		return nil, err
	}
	return New(expiry, cleanup), nil
}

func parseDuration(s string) (time.Duration, error) {
	if "" == strings.TrimSpace(s) {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if nil != err || d < 0 {
		return 0, fault.InvalidDuration
	}
	return d, nil
}

// Observe - implements submission.Observer
func (j *Journal) Observe(record submission.Record) {
	j.Record(record)
}

// Record - store a record, a later record for the same hash replaces it
func (j *Journal) Record(record submission.Record) {
	j.byID.Set(record.ID, record, cache.DefaultExpiration)
	if "" != record.TxHash {
		j.byHash.Set(strings.ToUpper(record.TxHash), record, cache.DefaultExpiration)
	}
	if "" == record.Account {
		return
	}

	j.Lock()
	ids := append(j.accounts[record.Account], record.ID)
	if len(ids) > maximumRecent {
		ids = ids[len(ids)-maximumRecent:]
	}
	j.accounts[record.Account] = ids
	j.Unlock()
}

// Get - the latest record for a transaction hash
func (j *Journal) Get(hash string) (submission.Record, error) {
	item, found := j.byHash.Get(strings.ToUpper(hash))
	if !found {
		return submission.Record{}, fault.TransactionNotFound
	}
	return item.(submission.Record), nil
}

// GetByID - the record for a submission id
func (j *Journal) GetByID(id string) (submission.Record, error) {
	item, found := j.byID.Get(id)
	if !found {
		return submission.Record{}, fault.TransactionNotFound
	}
	return item.(submission.Record), nil
}

// Recent - unexpired records of an account, newest first
func (j *Journal) Recent(address string) []submission.Record {
	j.Lock()
	ids := j.accounts[address]
	live := make([]string, 0, len(ids))
	records := make([]submission.Record, 0, len(ids))
	for _, id := range ids {
		item, found := j.byID.Get(id)
		if !found {
			continue
		}
		live = append(live, id)
		records = append(records, item.(submission.Record))
	}
	if 0 == len(live) {
		delete(j.accounts, address)
	} else {
		j.accounts[address] = live
	}
	j.Unlock()

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].Start.After(records[b].Start)
	})
	return records
}

// Count - number of records held
func (j *Journal) Count() int {
	return j.byID.ItemCount()
}

// Flush - drop everything
func (j *Journal) Flush() {
	j.byHash.Flush()
	j.byID.Flush()
	j.Lock()
	j.accounts = make(map[string][]string)
	j.Unlock()
}
