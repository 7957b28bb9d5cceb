// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzp

package lzp

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrUnexpectedEOF = errors.New("unexpected end of input inside pair token")
	ErrBadReference  = errors.New("pair token references bytes beyond produced output")
	ErrNilReader     = errors.New("reader is nil")
)
