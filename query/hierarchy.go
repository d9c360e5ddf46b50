// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import "ueinspect/core"

// HierarchyEntry is one row of InspectHierarchy's result: the
// instance's class, then each ancestor reached by chasing superStruct
// upward.
type HierarchyEntry struct {
	Name       string
	TypeName   string
	AddressHex string
}

// InspectHierarchy resolves instanceAddr's class pointer, then walks
// superStruct upward (cache-only), returning up to hierarchyCap
// entries (50), outermost ancestor last.
func (s *Surface) InspectHierarchy(instanceAddr core.Address) ([]HierarchyEntry, bool) {
	inst, ok := s.Cache.Lookup(instanceAddr)
	if !ok {
		return nil, false
	}
	classAddr := inst.ClassPtr
	if !core.Plausible(classAddr) {
		return nil, false
	}
	class, ok := s.Cache.TrySave(classAddr)
	if !ok {
		return nil, false
	}

	entries := []HierarchyEntry{{
		Name:       class.Name,
		TypeName:   class.TypeName,
		AddressHex: class.Address.String(),
	}}
	for _, a := range s.superStructChain(class) {
		if len(entries) >= hierarchyCap {
			break
		}
		entries = append(entries, HierarchyEntry{
			Name:       a.Name,
			TypeName:   a.TypeName,
			AddressHex: a.Address.String(),
		})
	}
	if len(entries) > hierarchyCap {
		entries = entries[:hierarchyCap]
	}
	return entries, true
}
