// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build gojay
// +build gojay

package jsonrpc2http

import (
	"github.com/francoispqt/gojay"
)

// RawMessage is a raw encoded JSON value.
// It can be used to delay JSON decoding or precompute a JSON encoding.
type RawMessage = gojay.EmbeddedJSON

var versionStr = string(Version)

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (r *request) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey(keyJSONRPC, Version)
	if r.ID != nil {
		switch {
		case r.ID.name != "":
			enc.StringKey(keyID, r.ID.name)
		default:
			enc.Int64Key(keyID, r.ID.number)
		}
	}
	enc.StringKey(keyMethod, r.Method)
	enc.AddEmbeddedJSONKeyOmitEmpty(keyParams, r.Params)
}

// IsNil implements gojay.MarshalerJSONObject.
func (r *request) IsNil() bool { return r == nil }

// compile time check whether the request implements a gojay.MarshalerJSONObject interface.
var _ gojay.MarshalerJSONObject = (*request)(nil)

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (r *response) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey(keyJSONRPC, Version)
	if r.ID != nil {
		switch {
		case r.ID.name != "":
			enc.StringKey(keyID, r.ID.name)
		default:
			enc.Int64Key(keyID, r.ID.number)
		}
	}
	enc.ObjectKeyOmitEmpty(keyError, r.Error)
	enc.AddEmbeddedJSONKeyOmitEmpty(keyResult, r.Result)
}

// IsNil implements gojay.MarshalerJSONObject.
func (r *response) IsNil() bool { return r == nil }

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (r *response) UnmarshalJSONObject(dec *gojay.Decoder, k string) error {
	switch k {
	case keyJSONRPC:
		return dec.String(&versionStr)

	case keyID:
		raw := RawMessage{}
		if err := dec.AddEmbeddedJSON(&raw); err != nil {
			return err
		}
		if string(raw) == "null" {
			return nil
		}
		id := &ID{}
		if err := id.UnmarshalJSON(raw); err != nil {
			return err
		}
		r.ID = id
		return nil

	case keyError:
		return dec.ObjectNull(&r.Error)

	case keyResult:
		if r.Result == nil {
			r.Result = &RawMessage{}
		}
		return dec.AddEmbeddedJSON(r.Result)
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject.
func (r *response) NKeys() int { return 4 }

// compile time check whether the response implements a gojay.MarshalerJSONObject and gojay.UnmarshalerJSONObject interfaces.
var (
	_ gojay.MarshalerJSONObject   = (*response)(nil)
	_ gojay.UnmarshalerJSONObject = (*response)(nil)
)

// encodeMessage encodes the request envelope.
func encodeMessage(req *request) ([]byte, error) {
	return gojay.MarshalJSONObject(req)
}

// decodeResponse decodes data into a response envelope.
//
// The embedded JSON capture keeps a "result": null member distinct from an
// absent one, the member decodes to the null literal instead of a nil pointer.
func decodeResponse(data []byte) (*response, error) {
	resp := new(response)
	if err := gojay.UnmarshalJSONObject(data, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
