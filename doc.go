// SPDX-FileCopyrightText: 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package jsonrpc2http is a minimal JSON-RPC 2.0 client over HTTP.
//
// https://www.jsonrpc.org/specification
//
// It is intended to be compatible with other implementations at the wire
// level, exchanging each call or notification as a single HTTP POST against
// one configured endpoint.
package jsonrpc2http // import "github.com/go-language-server/jsonrpc2http"
