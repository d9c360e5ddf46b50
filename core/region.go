// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "strings"

// Perm represents the protection flags for a region of the target's
// address space, as reported by the OS. Regions are produced on demand
// by re-querying the live process; nothing is cached across a session
// because the target's own memory map can change underfoot.
type Perm uint8

const (
	Read Perm = 1 << iota
	Write
	Exec
	NoAccess
	Guard
)

func (p Perm) String() string {
	var parts []string
	if p&Read != 0 {
		parts = append(parts, "Read")
	}
	if p&Write != 0 {
		parts = append(parts, "Write")
	}
	if p&Exec != 0 {
		parts = append(parts, "Exec")
	}
	if p&NoAccess != 0 {
		parts = append(parts, "NoAccess")
	}
	if p&Guard != 0 {
		parts = append(parts, "Guard")
	}
	if len(parts) == 0 {
		parts = append(parts, "None")
	}
	return strings.Join(parts, "|")
}

// Scannable reports whether a region's protection makes it eligible
// for the pattern scanner: neither NoAccess nor Guard is set. It looks
// at protection flags only; the region's commit state is not part of
// Perm.
func (p Perm) Scannable() bool {
	return p&NoAccess == 0 && p&Guard == 0
}

// Region is a contiguous, committed span of the target's address
// space, as returned by one step of the OS's VM-query enumeration.
type Region struct {
	Base Address
	Size uint64
	Perm Perm
}

// End returns the address just past the region.
func (r Region) End() Address {
	return r.Base + Address(r.Size)
}
