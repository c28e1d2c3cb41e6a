// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsonrpc2http

import (
	stdjson "encoding/json"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// This file contains the Go forms of the wire specification.
//
// See http://www.jsonrpc.org/specification for details.

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// list of wire field keys.
const (
	keyCode    = "code"
	keyData    = "data"
	keyError   = "error"
	keyID      = "id"
	keyJSONRPC = "jsonrpc"
	keyMessage = "message"
	keyMethod  = "method"
	keyParams  = "params"
	keyResult  = "result"
)

// Version represents a JSON-RPC version.
const Version = "2.0"

// version is a special 0 sized struct that encodes as the jsonrpc version tag.
//
// It will fail during decode if it is not the correct version tag in the stream.
type version struct{}

// compile time check whether the version implements a json.Marshaler and json.Unmarshaler interfaces.
var (
	_ stdjson.Marshaler   = (*version)(nil)
	_ stdjson.Unmarshaler = (*version)(nil)
)

// MarshalJSON implements json.Marshaler.
func (version) MarshalJSON() ([]byte, error) {
	return json.Marshal(Version)
}

// UnmarshalJSON implements json.Unmarshaler.
func (version) UnmarshalJSON(data []byte) error {
	version := ""
	if err := json.Unmarshal(data, &version); err != nil {
		return fmt.Errorf("failed to Unmarshal: %w", err)
	}
	if version != Version {
		return fmt.Errorf("invalid RPC version %v", version)
	}
	return nil
}

// ID is a Request identifier.
//
// Only one of either the Name or Number members will be set, using the
// number form if the Name is the empty string.
type ID struct {
	name   string
	number int64
}

// compile time check whether the ID implements a fmt.Formatter, fmt.Stringer,
// json.Marshaler and json.Unmarshaler interfaces.
var (
	_ fmt.Formatter       = (*ID)(nil)
	_ fmt.Stringer        = (*ID)(nil)
	_ stdjson.Marshaler   = (*ID)(nil)
	_ stdjson.Unmarshaler = (*ID)(nil)
)

// NewNumberID returns a new number request ID.
func NewNumberID(v int64) ID { return ID{number: v} }

// NewStringID returns a new string request ID.
func NewStringID(v string) ID { return ID{name: v} }

// Format writes the ID to the formatter.
//
// If the rune is q the representation is non ambiguous,
// string forms are quoted, number forms are preceded by a #.
func (id ID) Format(f fmt.State, r rune) {
	numF, strF := `%d`, `%s`
	if r == 'q' {
		numF, strF = `#%d`, `%q`
	}

	switch {
	case id.name != "":
		fmt.Fprintf(f, strF, id.name)
	default:
		fmt.Fprintf(f, numF, id.number)
	}
}

// String returns a string representation of the ID.
func (id ID) String() string {
	if id.name != "" {
		return id.name
	}
	return strconv.FormatInt(id.number, 10)
}

// MarshalJSON implements json.Marshaler.
func (id *ID) MarshalJSON() ([]byte, error) {
	if id.name != "" {
		return json.Marshal(id.name)
	}
	return json.Marshal(id.number)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID{}
	if err := json.Unmarshal(data, &id.number); err == nil {
		return nil
	}
	return json.Unmarshal(data, &id.name)
}

// request is sent to a server to represent a Call or Notify operation.
type request struct {
	// VersionTag is always encoded as the string "2.0"
	VersionTag version `json:"jsonrpc"`
	// Method is a string containing the method name to invoke.
	Method string `json:"method"`
	// Params is either a struct or an array with the parameters of the method.
	Params *RawMessage `json:"params,omitempty"`
	// The id of this request, used to tie the response back to the request.
	// Will be either a string or a number. If not set, the request is a notify,
	// and no response is possible.
	ID *ID `json:"id,omitempty"`
}

// response is a reply to a request.
//
// It will have the ID field set to tie it back to the request, and will have
// either the Result or Error fields set depending on whether it is a success
// or failure response.
type response struct {
	// VersionTag is always encoded as the string "2.0"
	VersionTag version `json:"jsonrpc"`
	// Result is the response value, and is required on success.
	Result *RawMessage `json:"result,omitempty"`
	// Error is a structured error response if the call fails.
	Error *Error `json:"error,omitempty"`
	// ID is the identifier of the request this is a response to.
	ID *ID `json:"id,omitempty"`
}

// marshalToRaw marshals obj to a RawMessage.
//
// Caller supplied params and results are always encoded with the reflection
// based codec, whichever codec handles the envelopes.
func marshalToRaw(obj interface{}) (*RawMessage, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	raw := RawMessage(data)

	return &raw, nil
}
