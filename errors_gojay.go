// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build gojay
// +build gojay

package jsonrpc2http

import (
	"github.com/francoispqt/gojay"
)

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (e *Error) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key(keyCode, int64(e.Code))
	enc.StringKey(keyMessage, e.Message)
	enc.AddEmbeddedJSONKeyOmitEmpty(keyData, e.Data)
}

// IsNil implements gojay.MarshalerJSONObject.
func (e *Error) IsNil() bool { return e == nil }

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (e *Error) UnmarshalJSONObject(dec *gojay.Decoder, k string) error {
	switch k {
	case keyCode:
		return dec.Int64((*int64)(&e.Code))
	case keyMessage:
		return dec.String(&e.Message)
	case keyData:
		if e.Data == nil {
			e.Data = &RawMessage{}
		}
		return dec.AddEmbeddedJSON(e.Data)
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject.
func (e *Error) NKeys() int { return 3 }

// compile time check whether the Error implements a gojay.MarshalerJSONObject and gojay.UnmarshalerJSONObject interfaces.
var (
	_ gojay.MarshalerJSONObject   = (*Error)(nil)
	_ gojay.UnmarshalerJSONObject = (*Error)(nil)
)
