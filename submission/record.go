// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission

import (
	"encoding/json"
	"time"

	"github.com/mikpaszkowski/rentald/engineresult"
	"github.com/mikpaszkowski/rentald/fault"
	"github.com/mikpaszkowski/rentald/transaction"
)

// Stage - where a submission ended
type Stage string

// list of stages
const (
	StageComplete Stage = "complete"
	StageSign     Stage = "sign"
	StageSubmit   Stage = "submit"
	StageClassify Stage = "classify"
	StageDone     Stage = "done"
)

// Record - what observers see for each submission
//
// Blob is the signed transaction and holds no secret material
type Record struct {
	ID               string
	Start            time.Time
	Duration         time.Duration
	Kind             transaction.Kind
	Account          string
	Sequence         uint32
	TxHash           string
	Blob             string
	Stage            Stage
	EngineResultCode string
	Outcome          engineresult.Outcome
	Err              error
}

// Observer - receives a record for every classified result or failed stage
//
// Observe is called synchronously and must not block
type Observer interface {
	Observe(record Record)
}

// Succeeded - true if the transaction was applied
func (r Record) Succeeded() bool {
	return StageDone == r.Stage
}

// ErrorKind - the error kind of a failed record
func (r Record) ErrorKind() fault.Kind {
	if nil == r.Err {
		return fault.Unknown
	}
	return fault.KindOf(r.Err)
}

type recordJSON struct {
	ID               string  `json:"id"`
	Start            string  `json:"start"`
	Seconds          float64 `json:"seconds"`
	Kind             string  `json:"kind"`
	Account          string  `json:"account"`
	Sequence         uint32  `json:"sequence,omitempty"`
	TxHash           string  `json:"txHash,omitempty"`
	Stage            Stage   `json:"stage"`
	EngineResultCode string  `json:"engineResultCode,omitempty"`
	Outcome          string  `json:"outcome,omitempty"`
	Error            string  `json:"error,omitempty"`
	ErrorKind        string  `json:"errorKind,omitempty"`
}

// MarshalJSON - printable form without the blob
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		ID:               r.ID,
		Start:            r.Start.UTC().Format(time.RFC3339Nano),
		Seconds:          r.Duration.Seconds(),
		Kind:             r.Kind.String(),
		Account:          r.Account,
		Sequence:         r.Sequence,
		TxHash:           r.TxHash,
		Stage:            r.Stage,
		EngineResultCode: r.EngineResultCode,
	}
	if "" != r.EngineResultCode {
		out.Outcome = r.Outcome.String()
	}
	if nil != r.Err {
		out.Error = r.Err.Error()
		out.ErrorKind = r.ErrorKind().String()
	}
	return json.Marshal(out)
}
