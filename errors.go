// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc2http

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Error represents a JSON-RPC error object as reported by the server.
type Error struct {
	// Code a number indicating the error type that occurred.
	Code Code `json:"code"`

	// Message a string providing a short description of the error.
	Message string `json:"message"`

	// Data a Primitive or Structured value that contains additional
	// information about the error. Can be omitted.
	Data *RawMessage `json:"data,omitempty"`

	frame xerrors.Frame
	err   error
}

// compile time check whether the Error implements error interface.
var _ error = (*Error)(nil)

// Error implements error.Error.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, c rune) {
	xerrors.FormatError(e, s, c)
}

// FormatError implements xerrors.Formatter.
func (e *Error) FormatError(p xerrors.Printer) (next error) {
	if e.Message == "" {
		p.Printf("code=%v", e.Code)
	} else {
		p.Printf("%s (code=%v)", e.Message, e.Code)
	}
	e.frame.Format(p)

	return e.err
}

// Unwrap implements errors.Unwrap.
//
// Returns the error underlying the receiver, which may be nil.
func (e *Error) Unwrap() error { return e.err }

// NewError builds a Error struct for the suppied code and message.
func NewError(c Code, message string) *Error {
	return &Error{
		Code:    c,
		Message: message,
		frame:   xerrors.Caller(1),
		err:     xerrors.New(message),
	}
}

// Errorf builds a Error struct for the suppied code, format and args.
func Errorf(c Code, format string, args ...interface{}) *Error {
	e := &Error{
		Code:    c,
		Message: fmt.Sprintf(format, args...),
		frame:   xerrors.Caller(1),
	}
	e.err = xerrors.New(e.Message)

	return e
}

// list of JSON-RPC errors.
var (
	// ErrUnknown should be used for all non coded errors.
	ErrUnknown = NewError(UnknownError, "JSON-RPC unknown error")

	// ErrParse is used when invalid JSON was received by the server.
	ErrParse = NewError(ParseError, "JSON-RPC parse error")

	// ErrInvalidRequest is used when the JSON sent is not a valid Request object.
	ErrInvalidRequest = NewError(InvalidRequest, "JSON-RPC invalid request")

	// ErrMethodNotFound should be returned by the handler when the method does
	// not exist / is not available.
	ErrMethodNotFound = NewError(MethodNotFound, "JSON-RPC method not found")

	// ErrInvalidParams should be returned by the handler when method
	// parameter(s) were invalid.
	ErrInvalidParams = NewError(InvalidParams, "JSON-RPC invalid params")

	// ErrInternal is not currently returned but defined for completeness.
	ErrInternal = NewError(InternalError, "JSON-RPC internal error")
)

// TransportError reports a failure to exchange the request at the network
// layer, such as a refused connection, a DNS failure or a timeout.
type TransportError struct {
	// Method is the JSON-RPC method name of the attempted exchange.
	Method string

	err error
}

// compile time check whether the TransportError implements error interface.
var _ error = (*TransportError)(nil)

// Error implements error.Error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("request error calling %q: %v", e.Method, e.err)
}

// Unwrap implements errors.Unwrap.
//
// Returns the underlying network error.
func (e *TransportError) Unwrap() error { return e.err }

// StatusError reports a delivered exchange that came back with a non-2xx
// HTTP status. The status takes precedence over whatever the body holds,
// even a valid looking envelope.
type StatusError struct {
	// Method is the JSON-RPC method name of the attempted exchange.
	Method string

	// Status is the HTTP status code of the response.
	Status int

	// Body is the raw response body, kept for diagnostics.
	Body string
}

// compile time check whether the StatusError implements error interface.
var _ error = (*StatusError)(nil)

// Error implements error.Error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error calling %q: %d - %s", e.Method, e.Status, e.Body)
}

// MalformedResponseError reports a response body that violates the JSON-RPC
// envelope contract, either unparseable JSON or an envelope with no usable
// result member.
type MalformedResponseError struct {
	// Reason describes the violated part of the envelope contract.
	Reason string

	// Body is the raw response body, kept for diagnostics.
	Body string

	err error
}

// compile time check whether the MalformedResponseError implements error interface.
var _ error = (*MalformedResponseError)(nil)

// Error implements error.Error.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid JSON-RPC response: %s", e.Reason)
}

// Unwrap implements errors.Unwrap.
//
// Returns the underlying decode error, which may be nil.
func (e *MalformedResponseError) Unwrap() error { return e.err }

// ProtocolError reports a well formed failure envelope, the server processed
// the request and answered with an error object.
type ProtocolError struct {
	// Code a number indicating the error type that occurred.
	Code Code

	// Message a string providing a short description of the error.
	Message string

	// Data a Primitive or Structured value that contains additional
	// information about the error. Can be omitted.
	Data *RawMessage

	// ID is the id member echoed by the server, surfaced as-is so callers
	// can detect rewrites. It is not necessarily the request id and may be nil.
	ID *ID
}

// compile time check whether the ProtocolError implements error interface.
var _ error = (*ProtocolError)(nil)

// Error implements error.Error.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("JSON-RPC error %d: %s", e.Code, e.Message)
}

// newProtocolError builds a ProtocolError from the error member of a
// response envelope and the id the server answered with.
func newProtocolError(werr *Error, id *ID) *ProtocolError {
	return &ProtocolError{
		Code:    werr.Code,
		Message: werr.Message,
		Data:    werr.Data,
		ID:      id,
	}
}
