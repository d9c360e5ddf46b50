// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"ueinspect/catalog"
	"ueinspect/core"
)

// walkMembers walks the member chain rooted at classAddr (MemberHead,
// then MemberNext repeatedly), resolving each member through the
// cache, up to cap entries. A member that fails to resolve is
// skipped, matching C7's recoverable-read-failure policy rather than
// aborting the whole walk.
func (s *Surface) walkMembers(classAddr core.Address, limit int) []catalog.Record {
	head, ok := s.Reader.ReadPtr(classAddr + core.Address(s.Profile.MemberHead))
	if !ok {
		return nil
	}

	var members []catalog.Record
	cur := head
	for i := 0; i < limit && core.Plausible(cur); i++ {
		rec, ok := s.Cache.TrySave(cur)
		if ok {
			members = append(members, rec)
		}
		next, ok := s.Reader.ReadPtr(cur + core.Address(s.Profile.MemberNext))
		if !ok || next == cur {
			break
		}
		cur = next
	}
	return members
}

// superStructChain chases superStruct pointers upward from rec,
// cache-only: each ancestor address must already have a record in the
// cache (populated by an earlier parseObjects), or the walk stops
// there. No fresh objects are parsed during this walk.
func (s *Surface) superStructChain(rec catalog.Record) []catalog.Record {
	var chain []catalog.Record
	visited := map[core.Address]struct{}{rec.Address: {}}
	cur := rec
	for {
		super, ok := s.Reader.ReadPtr(cur.Address + core.Address(s.Profile.SuperStruct))
		if !ok || !core.Plausible(super) {
			break
		}
		if _, seen := visited[super]; seen {
			break
		}
		visited[super] = struct{}{}
		ancestor, ok := s.Cache.Lookup(super)
		if !ok {
			break
		}
		chain = append(chain, ancestor)
		cur = ancestor
	}
	return chain
}
