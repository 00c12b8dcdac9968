// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/gorilla/websocket"

	"github.com/mikpaszkowski/rentald/counter"
	"github.com/mikpaszkowski/rentald/fault"
)

// defaults for unset configuration values
const (
	defaultRequestTimeout = 20 * time.Second
	defaultPingInterval   = 30 * time.Second
	defaultMessageSize    = 16 << 20
	writeTimeout          = 10 * time.Second
	handshakeTimeout      = 15 * time.Second
	minimumRedialDelay    = time.Second
	maximumRedialDelay    = 30 * time.Second
)

// Configuration - ledger node connection settings
type Configuration struct {
	URL            string `gluamapper:"url" json:"url"`
	NetworkID      uint32 `gluamapper:"network_id" json:"network_id"`
	RequestTimeout int    `gluamapper:"request_timeout" json:"request_timeout"`
	PingInterval   int    `gluamapper:"ping_interval" json:"ping_interval"`
	MaxMessageSize int64  `gluamapper:"max_message_size" json:"max_message_size"`
}

type response struct {
	ID           uint64          `json:"id"`
	Status       string          `json:"status"`
	Type         string          `json:"type"`
	Result       json.RawMessage `json:"result"`
	Error        string          `json:"error"`
	ErrorCode    int             `json:"error_code"`
	ErrorMessage string          `json:"error_message"`
}

// session - one dialled connection and its reader
type session struct {
	conn      *websocket.Conn
	writeLock sync.Mutex
}

func (s *session) write(buffer []byte) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); nil != err {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, buffer)
}

func (s *session) ping() error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

func (s *session) close() error {
	s.writeLock.Lock()
	_ = s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout),
	)
	s.writeLock.Unlock()
	return s.conn.Close()
}

// WebsocketClient - one websocket connection shared by all requests
//
// replies are matched to requests by id so concurrent callers do
// not block each other.  A dropped connection fails the requests in
// flight and is dialled again by the next request or by Run, with
// the delay between failed dials doubling up to a maximum.
type WebsocketClient struct {
	sync.Mutex // guards current, pending, nextID, closed and the redial state

	log          *logger.L
	url          string
	maxSize      int64
	timeout      time.Duration
	pingInterval time.Duration

	dialLock  sync.Mutex
	closeOnce sync.Once
	current   *session
	pending   map[uint64]chan *response
	nextID    uint64
	closed    bool
	done      chan struct{}
	lost      chan struct{}

	redialDelay time.Duration
	nextDial    time.Time
	dials       counter.Counter
}

// Dial - connect to a node
func Dial(ctx context.Context, configuration *Configuration, log *logger.L) (*WebsocketClient, error) {
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	if !strings.HasPrefix(configuration.URL, "ws://") && !strings.HasPrefix(configuration.URL, "wss://") {
		return nil, fault.InvalidLedgerURL
	}

	maxSize := configuration.MaxMessageSize
	if maxSize <= 0 {
		maxSize = defaultMessageSize
	}

	c := &WebsocketClient{
		log:          log,
		url:          configuration.URL,
		maxSize:      maxSize,
		timeout:      seconds(configuration.RequestTimeout, defaultRequestTimeout),
		pingInterval: seconds(configuration.PingInterval, defaultPingInterval),
		pending:      make(map[uint64]chan *response),
		done:         make(chan struct{}),
		lost:         make(chan struct{}, 1),
	}

	s, err := c.dial(ctx)
	if nil != err {
		return nil, Translate("connect", err)
	}
	c.current = s
	go c.reader(s)

	log.Infof("connected to: %s", configuration.URL)
	return c, nil
}

func seconds(n int, fallback time.Duration) time.Duration {
	if n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}

func (c *WebsocketClient) dial(ctx context.Context) (*session, error) {
	c.dials.Increment()

	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if nil != err {
		c.log.Errorf("dial: %q  error: %s", c.url, err)
		return nil, err
	}
	conn.SetReadLimit(c.maxSize)
	return &session{conn: conn}, nil
}

// Dials - number of connection attempts made so far
func (c *WebsocketClient) Dials() uint64 {
	return c.dials.Uint64()
}

// Connected - true while a connection is established
func (c *WebsocketClient) Connected() bool {
	c.Lock()
	defer c.Unlock()
	return nil != c.current
}

// Request - implements Requester
func (c *WebsocketClient) Request(ctx context.Context, command string, params interface{}, reply interface{}) error {
	message, err := encodeRequest(command, params)
	if nil != err {
		return fault.NewLedgerError(fault.MalformedTransaction, command, "", err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	s, err := c.connection(ctx)
	if nil != err {
		return Translate(command, err)
	}

	id, ch, err := c.register()
	if nil != err {
		return Translate(command, err)
	}
	defer c.unregister(id)

	message["id"] = json.RawMessage(strconv.FormatUint(id, 10))
	buffer, err := json.Marshal(message)
	if nil != err {
		return fault.NewLedgerError(fault.MalformedTransaction, command, "", err)
	}

	c.log.Tracef("request: %s", buffer)

	if err := s.write(buffer); nil != err {
		c.drop(s, err)
		return Translate(command, err)
	}

	select {
	case <-ctx.Done():
		return Translate(command, ctx.Err())
	case r := <-ch:
		if nil == r {
			return Translate(command, ErrClosed)
		}
		return decodeResponse(command, r, reply)
	}
}

// Submit - implements Submitter
func (c *WebsocketClient) Submit(ctx context.Context, blob string) (*SubmitReply, error) {
	return Submit(ctx, c, blob)
}

// Run - keep the connection alive with pings until shutdown
//
// a failed ping drops the connection, a dropped connection is
// dialled again on the next tick or as soon as the loss is seen
func (c *WebsocketClient) Run(args interface{}, shutdown <-chan struct{}) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-c.done:
			break loop
		case <-c.lost:
			c.reconnect()
		case <-ticker.C:
			c.Lock()
			s := c.current
			c.Unlock()
			if nil == s {
				c.reconnect()
				continue loop
			}
			if err := s.ping(); nil != err {
				c.log.Errorf("ping error: %s", err)
				c.drop(s, err)
			}
		}
	}
}

func (c *WebsocketClient) reconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), handshakeTimeout)
	defer cancel()
	if _, err := c.connection(ctx); nil != err && ErrRedialDelayed != err {
		c.log.Warnf("reconnect error: %s", err)
	}
}

// Close - shut down the connection, pending requests fail
func (c *WebsocketClient) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.Lock()
		c.closed = true
		s := c.current
		c.current = nil
		c.Unlock()
		close(c.done)

		if nil != s {
			err = s.close()
		}
		c.failAll()

		c.log.Info("connection closed")
	})
	return err
}

// connection - the live session, dialled again if it was lost
func (c *WebsocketClient) connection(ctx context.Context) (*session, error) {
	c.Lock()
	closed, s := c.closed, c.current
	c.Unlock()
	if closed {
		return nil, ErrClosed
	}
	if nil != s {
		return s, nil
	}

	c.dialLock.Lock()
	defer c.dialLock.Unlock()

	c.Lock()
	closed, s = c.closed, c.current
	due := c.nextDial
	c.Unlock()
	if closed {
		return nil, ErrClosed
	}
	if nil != s {
		return s, nil
	}
	if time.Now().Before(due) {
		return nil, ErrRedialDelayed
	}

	s, err := c.dial(ctx)

	c.Lock()
	defer c.Unlock()
	if nil != err {
		c.redialDelay *= 2
		if c.redialDelay < minimumRedialDelay {
			c.redialDelay = minimumRedialDelay
		}
		if c.redialDelay > maximumRedialDelay {
			c.redialDelay = maximumRedialDelay
		}
		c.nextDial = time.Now().Add(c.redialDelay)
		return nil, err
	}
	if c.closed {
		_ = s.conn.Close()
		return nil, ErrClosed
	}
	c.current = s
	c.redialDelay = 0
	c.nextDial = time.Time{}
	go c.reader(s)

	c.log.Infof("reconnected to: %s", c.url)
	return s, nil
}

// drop - forget a failed connection and release its waiting requests
func (c *WebsocketClient) drop(s *session, err error) {
	c.Lock()
	if c.current != s {
		c.Unlock()
		return
	}
	c.current = nil
	closed := c.closed
	c.releasePending()
	c.Unlock()

	if !closed {
		c.log.Errorf("connection lost: %s", err)
	}
	_ = s.conn.Close()

	select {
	case c.lost <- struct{}{}:
	default:
	}
}

func (c *WebsocketClient) register() (uint64, chan *response, error) {
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return 0, nil, ErrClosed
	}
	c.nextID++
	ch := make(chan *response, 1)
	c.pending[c.nextID] = ch
	return c.nextID, ch, nil
}

func (c *WebsocketClient) unregister(id uint64) {
	c.Lock()
	delete(c.pending, id)
	c.Unlock()
}

// reader - dispatch replies until the connection fails
func (c *WebsocketClient) reader(s *session) {
	for {
		_, buffer, err := s.conn.ReadMessage()
		if nil != err {
			c.drop(s, err)
			return
		}

		c.log.Tracef("reply: %s", buffer)

		var r response
		if err := json.Unmarshal(buffer, &r); nil != err {
			c.log.Warnf("discard undecodable message: %s", err)
			continue
		}
		if 0 == r.ID || ("" != r.Type && "response" != r.Type) {
			continue
		}

		c.Lock()
		ch, ok := c.pending[r.ID]
		delete(c.pending, r.ID)
		c.Unlock()

		if ok {
			ch <- &r
		}
	}
}

// failAll - release every waiting request with a nil reply
func (c *WebsocketClient) failAll() {
	c.Lock()
	defer c.Unlock()
	c.releasePending()
}

// releasePending - caller holds the lock
func (c *WebsocketClient) releasePending() {
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
}

func encodeRequest(command string, params interface{}) (map[string]json.RawMessage, error) {
	message := make(map[string]json.RawMessage)
	if nil != params {
		buffer, err := json.Marshal(params)
		if nil != err {
			return nil, err
		}
		if err := json.Unmarshal(buffer, &message); nil != err {
			return nil, err
		}
	}
	c, err := json.Marshal(command)
	if nil != err {
		return nil, err
	}
	message["command"] = c
	return message, nil
}

func decodeResponse(command string, r *response, reply interface{}) error {
	if "error" == r.Status || "" != r.Error {
		code := r.Error
		message := r.ErrorMessage
		if "" == code && 0 != len(r.Result) {
			var inner response
			if nil == json.Unmarshal(r.Result, &inner) {
				code = inner.Error
				message = inner.ErrorMessage
			}
		}
		return Translate(command, &ResponseError{
			Command: command,
			Code:    code,
			Number:  r.ErrorCode,
			Message: message,
		})
	}

	if nil == reply || 0 == len(r.Result) {
		return nil
	}
	if err := json.Unmarshal(r.Result, reply); nil != err {
		return fault.NewLedgerError(fault.NetworkUnavailable, command, "", err)
	}
	return nil
}
