// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uerrors defines the error taxonomy shared across components.
// Components return these sentinels wrapped with
// fmt.Errorf("%w: ...") at each boundary, adding context the way a
// "ptraceGetRegs: %v"-style chain would, rather than inventing a
// structured error type per package.
package uerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAttached is returned when a command that needs a live
	// process handle runs before attach.
	ErrNotAttached = errors.New("not attached")

	// ErrAnchorNotFound is returned when every signature candidate for
	// an anchor failed to resolve to a plausible address.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrNamePoolUninitialised is returned by getName before the
	// intra-entry string offset S has been committed.
	ErrNamePoolUninitialised = errors.New("name pool not initialised")

	// ErrInvalidAddress is returned when an address falls outside the
	// plausible user-space band.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrReadFailed is returned when a remote memory read fails.
	ErrReadFailed = errors.New("read failed")

	// ErrInvalidSignature is returned by the AOB parser for malformed
	// or empty signatures.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrRegionQueryFailed is returned when the OS VM-query call fails.
	ErrRegionQueryFailed = errors.New("region query failed")

	// ErrCatalogMiss is returned when a query references an address or
	// id that is not (yet) in the catalog.
	ErrCatalogMiss = errors.New("catalog miss")
)

// NotYetParsed formats the user-visible message shown when a query
// command runs before its prerequisite parse:
// "… not yet parsed. Please parse <prereq> first."
func NotYetParsed(prereq string) error {
	return fmt.Errorf("%s not yet parsed. Please parse %s first.", prereq, prereq)
}
