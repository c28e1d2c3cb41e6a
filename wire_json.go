// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !gojay
// +build !gojay

package jsonrpc2http

import (
	stdjson "encoding/json"
)

// RawMessage is a raw encoded JSON value.
// It can be used to delay JSON decoding or precompute a JSON encoding.
type RawMessage = stdjson.RawMessage

// encodeMessage encodes the request envelope.
func encodeMessage(req *request) ([]byte, error) {
	return json.Marshal(req)
}

// decodeResponse decodes data into a response envelope.
//
// A "result": null member decodes to a nil pointer just like an absent one,
// so the raw body is probed for the key itself to keep the two apart.
func decodeResponse(data []byte) (*response, error) {
	resp := new(response)
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, err
	}

	if resp.Result == nil && resp.Error == nil {
		var members map[string]RawMessage
		if err := json.Unmarshal(data, &members); err != nil {
			return nil, err
		}
		if raw, ok := members[keyResult]; ok {
			resp.Result = &raw
		}
	}

	return resp, nil
}
