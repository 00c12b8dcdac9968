// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mikpaszkowski/rentald/engineresult"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/journal"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/transaction"
)

const (
	owner = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	other = "rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe"
)

func record(id string, hash string, address string, start time.Time) submission.Record {
	return submission.Record{
		ID:               id,
		Start:            start,
		Kind:             transaction.Mint,
		Account:          address,
		TxHash:           hash,
		Stage:            submission.StageDone,
		EngineResultCode: "tesSUCCESS",
		Outcome:          engineresult.Success,
	}
}

func TestGetByHash(t *testing.T) {
	j := journal.New(0, 0)

	now := time.Now()
	j.Observe(record("id-1", "ab01", owner, now))

	r, err := j.Get("AB01")
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "id-1", r.ID, "wrong record")

	r, err = j.GetByID("id-1")
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "ab01", r.TxHash, "wrong record")

	_, err = j.Get("CD02")
	assert.Equal(t, fault.TransactionNotFound, err, "wrong error")
	_, err = j.GetByID("missing")
	assert.Equal(t, fault.TransactionNotFound, err, "wrong error")
}

func TestLaterRecordReplaces(t *testing.T) {
	j := journal.New(0, 0)

	now := time.Now()
	first := record("id-1", "AB01", owner, now)
	first.Stage = submission.StageClassify
	first.EngineResultCode = "terQUEUED"
	first.Outcome = engineresult.Classify("terQUEUED")
	j.Record(first)
	j.Record(record("id-2", "AB01", owner, now.Add(time.Second)))

	r, err := j.Get("AB01")
	assert.Nil(t, err, "unexpected error")
	assert.Equal(t, "id-2", r.ID, "not replaced")
	assert.True(t, r.Succeeded(), "wrong stage")
	assert.Equal(t, 2, j.Count(), "both ids are kept")
}

func TestRecentNewestFirst(t *testing.T) {
	j := journal.New(0, 0)

	now := time.Now()
	j.Record(record("id-1", "01", owner, now))
	j.Record(record("id-2", "02", other, now))
	j.Record(record("id-3", "", owner, now.Add(2*time.Second)))
	j.Record(record("id-4", "04", owner, now.Add(time.Second)))

	recent := j.Recent(owner)
	if assert.Len(t, recent, 3, "wrong count") {
		assert.Equal(t, "id-3", recent[0].ID, "wrong order")
		assert.Equal(t, "id-4", recent[1].ID, "wrong order")
		assert.Equal(t, "id-1", recent[2].ID, "wrong order")
	}
	assert.Len(t, j.Recent(other), 1, "wrong count")
	assert.Len(t, j.Recent("rUnknown"), 0, "wrong count")
}

func TestExpiry(t *testing.T) {
	j := journal.New(20*time.Millisecond, time.Hour)

	j.Record(record("id-1", "01", owner, time.Now()))
	time.Sleep(40 * time.Millisecond)

	_, err := j.Get("01")
	assert.Equal(t, fault.TransactionNotFound, err, "record did not expire")
	assert.Len(t, j.Recent(owner), 0, "record did not expire")
}

func TestFlush(t *testing.T) {
	j := journal.New(0, 0)
	j.Record(record("id-1", "01", owner, time.Now()))
	j.Flush()
	assert.Equal(t, 0, j.Count(), "not flushed")
	assert.Len(t, j.Recent(owner), 0, "not flushed")
}

func TestConfiguration(t *testing.T) {
	j, err := journal.NewFromConfiguration(&journal.Configuration{Expiry: "1h", Cleanup: ""})
	assert.Nil(t, err, "unexpected error")
	assert.NotNil(t, j, "no journal")

	_, err = journal.NewFromConfiguration(&journal.Configuration{Expiry: "soon"})
	assert.Equal(t, fault.InvalidDuration, err, "wrong error")

	_, err = journal.NewFromConfiguration(&journal.Configuration{Cleanup: "-1m"})
	assert.Equal(t, fault.InvalidDuration, err, "wrong error")
}
