// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchor implements C4 (Anchor Resolver): RIP-relative
// resolution of the three named globals by trying an
// ordered list of signature candidates per anchor until one produces a
// hit that resolves into plausible user-space.
package anchor

import (
	"fmt"

	"ueinspect/arch"
	"ueinspect/core"
	"ueinspect/memory"
	"ueinspect/process"
	"ueinspect/scanner"
	"ueinspect/uerrors"
)

// Name identifies one of the three named anchors.
type Name string

const (
	NamePoolBase    Name = "NamePoolBase"
	ObjectArrayBase Name = "ObjectArrayBase"
	WorldBase       Name = "WorldBase"
)

// Candidate is one (signature, displacement offset, instruction
// length) combination tried for an anchor. Candidates for a given
// anchor must be attempted in order so more-specific, newer-version
// signatures win before older fallbacks.
type Candidate struct {
	Signature string
	Disp      int // offset of the 32-bit displacement within the instruction, from its start
	InstrLen  int // total instruction length, used to compute the next-instruction address
}

// Set holds the resolved anchors for a session. Any field may be the
// zero Address until resolved.
type Set struct {
	NamePoolBase    core.Address
	ObjectArrayBase core.Address
	WorldBase       core.Address
}

// Resolver resolves anchors by pattern-scanning the target's main
// module.
type Resolver struct {
	Handle  *process.Handle
	Reader  *memory.Reader
	Workers int
}

// ResolveRIP computes the RIP-relative target of an instruction at ia
// with displacement field at ia+d and total length L: the target is
// (ia + L) + sext32(read_i32(ia + d)).
func (r *Resolver) ResolveRIP(ia core.Address, d, length int) (core.Address, error) {
	disp, ok := r.Reader.ReadInt32(ia + core.Address(d))
	if !ok {
		return 0, fmt.Errorf("%w: displacement at %s", uerrors.ErrReadFailed, ia+core.Address(d))
	}
	return resolveRIPDisp(ia, disp, length), nil
}

// resolveRIPDisp is the pure arithmetic core of ResolveRIP, split out so
// it can be exercised against synthetic displacement values without a
// live reader: target = (ia + length) + sext32(disp).
func resolveRIPDisp(ia core.Address, disp int32, length int) core.Address {
	return ia + core.Address(length) + core.Address(int64(disp))
}

// Resolve tries candidates in order against the main module's
// [base, base+size). For each signature that produces hits, each hit
// is resolved; the first resolution falling in plausible user-space is
// accepted. Failure across all candidates yields ErrAnchorNotFound.
func (r *Resolver) Resolve(candidates []Candidate) (core.Address, Candidate, error) {
	start := r.Handle.ModuleBase
	end := r.Handle.ModuleBase + core.Address(r.Handle.ModuleSize)
	regions, err := scanner.EnumerateRegions(r.Handle, start, end)
	if err != nil {
		return 0, Candidate{}, fmt.Errorf("%w: enumerate module regions: %v", uerrors.ErrRegionQueryFailed, err)
	}

	for _, c := range candidates {
		sig, err := scanner.Parse(c.Signature)
		if err != nil {
			continue
		}
		if c.Disp < 0 || c.Disp+arch.DisplacementSize > len(sig.Tokens) {
			// Malformed catalog entry: the displacement field would
			// read past the matched bytes.
			continue
		}
		hits := scanner.Scan(r.Reader, regions, sig, r.Workers)
		for _, ia := range hits {
			addr, err := r.ResolveRIP(ia, c.Disp, c.InstrLen)
			if err != nil {
				continue
			}
			if core.Plausible(addr) {
				return addr, c, nil
			}
		}
	}
	return 0, Candidate{}, uerrors.ErrAnchorNotFound
}

// ResolveAll resolves every anchor, per-anchor, using the candidate
// catalog in catalog.go.
func (r *Resolver) ResolveAll() (Set, error) {
	var set Set
	for _, anchorName := range []Name{NamePoolBase, ObjectArrayBase, WorldBase} {
		addr, _, err := r.Resolve(Candidates[anchorName])
		if err != nil {
			return set, fmt.Errorf("%s: %w", anchorName, err)
		}
		switch anchorName {
		case NamePoolBase:
			set.NamePoolBase = addr
		case ObjectArrayBase:
			set.ObjectArrayBase = addr
		case WorldBase:
			set.WorldBase = addr
		}
	}
	return set, nil
}
