// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog implements C7 (Object Cache): the two-tier
// concurrent cache that prevents re-entrant work, builds full
// hierarchical names by chasing the outer chain iteratively, and
// bounds recursion.
package catalog

import "ueinspect/core"

// Record is the logical view of one object in the target. FullName,
// SuperStruct and the other derived attributes are filled in lazily,
// only as each consumer needs them; Record itself always carries the
// fields trySave populates.
type Record struct {
	Address  core.Address
	ID       int32
	Name     string
	TypeName string
	FullName string
	Outer    core.Address
	ClassPtr core.Address
}

// nameIsSentinel reports whether name is one of the two placeholder
// names: returned to the caller, but never used as a parent for
// outer-chain traversal beyond their own row, and excluded from
// Cache.Count.
func nameIsSentinel(name string) bool {
	return name == "None" || name == "InvalidName"
}
