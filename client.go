// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc2http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	// Send indicates the message is outgoing.
	Send = "send"
	// Receive indicates the message is incoming.
	Receive = "receive"
)

// contentType is the media type of every request body.
const contentType = "application/json"

// Interface represents an interface for issuing requests that speak the JSON-RPC 2 protocol.
type Interface interface {
	Call(ctx context.Context, method string, params, result interface{}) (err error)

	CallWithID(ctx context.Context, id ID, method string, params, result interface{}) (err error)

	Notify(ctx context.Context, method string, params interface{}) (err error)

	Close() (err error)
}

// Client is a JSON-RPC 2 client that exchanges each call or notification as
// a single HTTP POST against one configured endpoint.
//
// A Client either owns its transport or borrows one supplied through
// WithHTTPClient. An owned transport lives no longer than a single exchange,
// a borrowed transport is shared, reused across concurrent calls and never
// closed by the Client.
type Client struct {
	endpoint string

	mu   sync.Mutex // protects hc
	hc   *http.Client
	owns bool

	logger *zap.Logger
	nextID func() ID
}

// compile time check whether the Client implements Interface interface.
var _ Interface = (*Client)(nil)

// Options represents a functional options.
type Options func(*Client)

// WithHTTPClient apply an externally managed http.Client to Client.
//
// The supplied client is borrowed: the Client adds per request headers but
// never mutates or closes it. It must be safe for concurrent use.
func WithHTTPClient(hc *http.Client) Options {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithLogger apply custom Logger to Client.
func WithLogger(logger *zap.Logger) Options {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithIDGenerator apply custom request id generator to Client.
//
// The generator must hand out ids that do not collide across sequential or
// concurrent calls from the same Client.
func WithIDGenerator(gen func() ID) Options {
	return func(c *Client) {
		c.nextID = gen
	}
}

// the default Logger does nothing
var defaultLogger = zap.NewNop()

// the default generator hands out random UUID string ids
var defaultIDGenerator = func() ID { return NewStringID(uuid.NewString()) }

// NumberIDGenerator returns an id generator that hands out sequential number
// ids starting at 1.
func NumberIDGenerator() func() ID {
	seq := new(atomic.Int64)
	return func() ID { return NewNumberID(seq.Add(1)) }
}

// NewClient creates a new client object that exchanges JSON-RPC messages
// with the server at endpoint.
func NewClient(endpoint string, options ...Options) *Client {
	c := &Client{
		endpoint: endpoint,
	}

	for _, opt := range options {
		opt(c)
	}

	c.owns = c.hc == nil
	if c.logger == nil {
		c.logger = defaultLogger
	}
	if c.nextID == nil {
		c.nextID = defaultIDGenerator
	}

	return c
}

// Endpoint returns the endpoint URL the client was created for.
func (c *Client) Endpoint() string { return c.endpoint }

// Call sends a request over the transport and then waits for a response,
// using a freshly generated request id.
//
// The result member of a well formed success response is unmarshaled into
// result when result is non-nil. Failures are reported through exactly one
// of *TransportError, *StatusError, *MalformedResponseError and
// *ProtocolError, in that order of detection.
func (c *Client) Call(ctx context.Context, method string, params, result interface{}) error {
	return c.CallWithID(ctx, c.nextID(), method, params, result)
}

// CallWithID is Call with a caller supplied request id.
func (c *Client) CallWithID(ctx context.Context, id ID, method string, params, result interface{}) error {
	c.logger.Debug("Call", zap.String("method", method), zap.Stringer("id", id))

	req, err := c.newRequest(method, params, &id)
	if err != nil {
		return err
	}

	body, err := c.post(ctx, method, req)
	if err != nil {
		return err
	}

	resp, err := decodeResponse(body)
	if err != nil {
		return &MalformedResponseError{Reason: "invalid response body", Body: string(body), err: err}
	}

	// error wins over a co-present result
	if resp.Error != nil {
		return newProtocolError(resp.Error, resp.ID)
	}

	if resp.Result == nil {
		return &MalformedResponseError{Reason: "missing result field", Body: string(body)}
	}

	// some servers rewrite ids, and with one exchange per call there is no
	// queue to misdeliver into, so a mismatch is observed but not fatal
	if resp.ID == nil || *resp.ID != id {
		got := ""
		if resp.ID != nil {
			got = resp.ID.String()
		}
		c.logger.Warn("response id does not match request id",
			zap.String("resp.id", got),
			zap.String("req.id", id.String()),
			zap.String("req.method", method),
		)
	}

	c.logger.Debug(Receive,
		zap.String("req.method", method),
		zap.ByteString("resp.result", *resp.Result),
	)

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(*resp.Result, result); err != nil {
		return Errorf(ParseError, "failed to unmarshal result: %v", err)
	}

	return nil
}

// Notify is called to send a notification request over the transport.
//
// The request carries no id and the server sends no response envelope, so
// only delivery failures are reported, as *TransportError or *StatusError
// under the same conditions as Call. The response body is discarded unread.
func (c *Client) Notify(ctx context.Context, method string, params interface{}) error {
	c.logger.Debug("Notify", zap.String("method", method))

	req, err := c.newRequest(method, params, nil)
	if err != nil {
		return err
	}

	_, err = c.post(ctx, method, req)

	return err
}

// Close releases the owned transport, if one is held. It is idempotent and
// a no-op for a borrowed transport.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.owns || c.hc == nil {
		return nil
	}
	c.hc.CloseIdleConnections()
	c.hc = nil

	return nil
}

// newRequest builds the request envelope for one exchange.
func (c *Client) newRequest(method string, params interface{}, id *ID) (*request, error) {
	if method == "" {
		return nil, Errorf(InvalidRequest, "empty method name")
	}

	req := &request{
		Method: method,
		ID:     id,
	}

	// params is omitted when absent, never sent as null
	if params != nil {
		p, err := marshalToRaw(params)
		if err != nil {
			return nil, Errorf(ParseError, "failed to marshal call parameters: %v", err)
		}
		if err := validateParams(*p); err != nil {
			return nil, err
		}
		req.Params = p
	}

	return req, nil
}

// validateParams enforces the structured params rule of the JSON-RPC spec,
// params must encode as either an object or an array.
func validateParams(p RawMessage) error {
	for _, b := range p {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return nil
		default:
			return Errorf(InvalidParams, "params must encode as an object or an array")
		}
	}
	return Errorf(InvalidParams, "params must encode as an object or an array")
}

// post performs the single round trip of an exchange and returns the raw
// response body of a delivered 2xx response.
func (c *Client) post(ctx context.Context, method string, req *request) ([]byte, error) {
	data, err := encodeMessage(req)
	if err != nil {
		return nil, Errorf(ParseError, "failed to marshal request: %v", err)
	}

	hc, release := c.httpClient()
	defer release()

	c.logger.Debug(Send, zap.String("req.method", method), zap.ByteString("req", data))

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, &TransportError{Method: method, err: err}
	}
	hreq.Header.Set("Content-Type", contentType)

	hresp, err := hc.Do(hreq)
	if err != nil {
		return nil, &TransportError{Method: method, err: err}
	}
	defer hresp.Body.Close()

	body, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, err: err}
	}

	if hresp.StatusCode/100 != 2 {
		return nil, &StatusError{Method: method, Status: hresp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// httpClient returns the transport for one exchange together with its
// release func, which runs when the exchange returns, on every path.
func (c *Client) httpClient() (*http.Client, func()) {
	c.mu.Lock()
	hc := c.hc
	c.mu.Unlock()

	if hc != nil {
		return hc, func() {}
	}

	owned := &http.Client{}

	return owned, owned.CloseIdleConnections
}
