// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core defines the small vocabulary shared by every layer that
// talks about locations in a target process's address space: the
// Address type, the plausible-user-space band, and memory protection
// flags for a scanned region.
package core

import "fmt"

// Address is a 64-bit virtual address in the target process.
type Address uint64

// String formats the address the way the rest of the tool (and its
// command surface) expects to print and parse addresses: 0x-prefixed
// hex.
func (a Address) String() string {
	return fmt.Sprintf("0x%X", uint64(a))
}

// Sub returns a-b as a signed byte count.
func (a Address) Sub(b Address) int64 {
	return int64(a) - int64(b)
}

// minPlausible and maxPlausible bound "plausible user-space":
// 0x10000 < a < 0x7FFF_FFFF_FFFF. Addresses outside this band are
// treated as null/invalid by design, regardless of whether the OS
// would actually reject a read there.
const (
	minPlausible Address = 0x10000
	maxPlausible Address = 0x7FFF_FFFF_FFFF
)

// Plausible reports whether a is within the plausible user-space band.
func Plausible(a Address) bool {
	return a > minPlausible && a < maxPlausible
}
