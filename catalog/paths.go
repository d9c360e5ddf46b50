// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"ueinspect/core"
	"ueinspect/memory"
	"ueinspect/namepool"
	"ueinspect/offsets"
)

// parseBasic tries Path A then Path B. Path A is
// tried first intentionally: it is the only reliable path for
// property-like nodes, whose class pointer points to a meta object
// rather than a readable class header, and trying it first means
// property nodes encountered during outer-walks get labelled with
// their Member*Property type name instead of Path B's generic one.
func parseBasic(r *memory.Reader, pool *namepool.Pool, profile offsets.Profile, addr core.Address) (Record, bool) {
	if rec, ok := parsePathA(r, pool, profile, addr); ok {
		return rec, true
	}
	return parsePathB(r, pool, profile, addr)
}

// parsePathA reads type via memberTypeOffset -> memberType: the
// property-style path. It populates id, name, and outer but never
// ClassPtr.
func parsePathA(r *memory.Reader, pool *namepool.Pool, profile offsets.Profile, addr core.Address) (Record, bool) {
	memberType, ok := r.ReadPtr(addr + core.Address(profile.MemberType))
	if !ok || !core.Plausible(memberType) {
		return Record{}, false
	}
	typeFNameID, ok := r.ReadInt32(memberType + core.Address(profile.MemberFNameIdx))
	if !ok {
		return Record{}, false
	}
	typeName, err := pool.GetName(typeFNameID)
	if err != nil {
		return Record{}, false
	}

	id, _ := r.ReadInt32(addr + core.Address(profile.ID))
	nameID, _ := r.ReadInt32(addr + core.Address(profile.MemberFNameIdx))
	name, _ := pool.GetName(nameID)
	outer, _ := r.ReadPtr(addr + core.Address(profile.Outer))

	return Record{
		Address:  addr,
		ID:       id,
		Name:     name,
		TypeName: typeName,
		Outer:    outer,
	}, true
}

// parsePathB reads type via class.fnameIndex: the standard path,
// correct for normal (non-property) objects. It additionally
// populates ClassPtr.
func parsePathB(r *memory.Reader, pool *namepool.Pool, profile offsets.Profile, addr core.Address) (Record, bool) {
	// TODO: classPtr is only checked for a successful read here, not for
	// plausibility against the module's address range. Tightening this
	// would cut false positives during outer-chain resolution, but the
	// fnameIdx/typeName read below already rejects most garbage values.
	classPtr, ok := r.ReadPtr(addr + core.Address(profile.Class))
	if !ok {
		return Record{}, false
	}
	fnameIdx, ok := r.ReadInt32(classPtr + core.Address(profile.FNameIndex))
	if !ok {
		return Record{}, false
	}
	typeName, err := pool.GetName(fnameIdx)
	if err != nil {
		return Record{}, false
	}

	id, _ := r.ReadInt32(addr + core.Address(profile.ID))
	nameID, _ := r.ReadInt32(addr + core.Address(profile.FNameIndex))
	name, _ := pool.GetName(nameID)
	outer, _ := r.ReadPtr(addr + core.Address(profile.Outer))

	return Record{
		Address:  addr,
		ID:       id,
		Name:     name,
		TypeName: typeName,
		Outer:    outer,
		ClassPtr: classPtr,
	}, true
}
