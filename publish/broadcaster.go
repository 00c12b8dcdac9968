// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/zmqutil"
)

// topics
const (
	TopicSubmission = "submission"
	TopicHeartbeat  = "heart"
)

const (
	zapDomain         = "rentald-publish"
	queueSize         = 1000
	heartbeatInterval = 60 * time.Second
)

type message struct {
	topic string
	data  []byte
}

type broadcaster struct {
	log      *logger.L
	socket4  *zmq.Socket
	socket6  *zmq.Socket
	messages chan message
	dropped  uint64
	interval time.Duration
}

func newBroadcaster(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string) (*broadcaster, error) {
	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		return nil, err
	}
	return &broadcaster{
		log:      log,
		socket4:  socket4,
		socket6:  socket6,
		messages: make(chan message, queueSize),
		interval: heartbeatInterval,
	}, nil
}

// queue a record without blocking the submission path
func (brdc *broadcaster) queue(record submission.Record) {
	data, err := json.Marshal(record)
	if nil != err {
		brdc.log.Errorf("encode record: %s  error: %s", record.ID, err)
		return
	}

	select {
	case brdc.messages <- message{topic: TopicSubmission, data: data}:
	default:
		n := atomic.AddUint64(&brdc.dropped, 1)
		brdc.log.Warnf("queue full: dropped: %s  total dropped: %d", record.ID, n)
	}
}

// Run - implements background.Process
//
// the sockets are only used from this goroutine
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log
	log.Info("starting…")

	heartbeat := time.NewTicker(brdc.interval)
	defer heartbeat.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m := <-brdc.messages:
			brdc.send(m)
		case now := <-heartbeat.C:
			brdc.send(message{
				topic: TopicHeartbeat,
				data:  []byte(strconv.FormatInt(now.Unix(), 10)),
			})
		}
	}

	for _, s := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil != s {
			s.Close()
		}
	}
	log.Info("stopped")
}

func (brdc *broadcaster) send(m message) {
	for _, s := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == s {
			continue
		}
		if _, err := s.SendMessageDontwait(m.topic, m.data); nil != err {
			brdc.log.Errorf("send: %s  error: %s", m.topic, err)
		} else {
			brdc.log.Tracef("sent: %s  data: %s", m.topic, m.data)
		}
	}
}
