// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

import "ueinspect/core"

// candidateStrides are the per-entry byte strides tried, in order, by
// DetectElementSize. The first one that validates wins.
var candidateStrides = []int64{4, 8, 12, 16, 20, 24, 28}

// idOffsetFromEntry is the fixed +0xC byte offset used during
// detection itself, independent of whatever OffsetProfile ends up
// selected for the session (the profile's own ID offset may differ;
// this is a bootstrapping probe, not a profile field).
const idOffsetFromEntry = 0xC

// defaultElementSize is the fallback used when no candidate stride
// validates: 0x18, the common case.
const defaultElementSize = 0x18

// idTolerance bounds how far an entry's observed id may drift from its
// expected n/k value and still count as a validating chain.
const idTolerance = 2

// DetectElementSize infers ObjectArrayElementSize by probing byte
// offsets -0x50..+0x200 in steps of 4 from objectArrayBase, requiring
// a chain of 4 successive pointer dereferences to plausible addresses,
// then trying each candidate stride against the resulting root.
func (r *Resolver) DetectElementSize(objectArrayBase core.Address) int64 {
	for offset := int64(-0x50); offset <= 0x200; offset += 4 {
		l0, ok := r.chainDeref(objectArrayBase+core.Address(offset), 4)
		if !ok {
			continue
		}
		if k, ok := r.tryStrides(l0); ok {
			return k
		}
	}
	return defaultElementSize
}

// chainDeref dereferences addr depth times in a row, requiring every
// intermediate result to be plausible, and returns the final address.
func (r *Resolver) chainDeref(addr core.Address, depth int) (core.Address, bool) {
	cur := addr
	for i := 0; i < depth; i++ {
		next, ok := r.Reader.ReadPtr(cur)
		if !ok || !core.Plausible(next) {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// tryStrides tries each candidate stride against root, accepting the
// first that validates. One additional level of dereference is tried
// before giving up on a root entirely.
func (r *Resolver) tryStrides(root core.Address) (int64, bool) {
	if k, ok := r.validateStrides(root); ok {
		return k, true
	}
	if deeper, ok := r.Reader.ReadPtr(root); ok && core.Plausible(deeper) {
		return r.validateStrides(deeper)
	}
	return 0, false
}

func (r *Resolver) validateStrides(root core.Address) (int64, bool) {
	for _, k := range candidateStrides {
		if r.validateStride(root, k) {
			return k, true
		}
	}
	return 0, false
}

// validateStride checks that, for n in {0, k, 2k, ..., 10k}, the entry
// at root+n dereferences to an object whose id at +0xC equals n/k
// within idTolerance.
func (r *Resolver) validateStride(root core.Address, k int64) bool {
	for i := int64(0); i <= 10; i++ {
		n := i * k
		entryPtr, ok := r.Reader.ReadPtr(root + core.Address(n))
		if !ok || !core.Plausible(entryPtr) {
			return false
		}
		id, ok := r.Reader.ReadInt32(entryPtr + core.Address(idOffsetFromEntry))
		if !ok {
			return false
		}
		want := i
		diff := int64(id) - want
		if diff < 0 {
			diff = -diff
		}
		if diff > idTolerance {
			return false
		}
	}
	return true
}
