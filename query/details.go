// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"strings"

	"ueinspect/catalog"
	"ueinspect/core"
)

const memberWalkCap = 500
const functionParamCap = 500
const maxEnumEntries = 10000
const hierarchyCap = 50

// InheritanceEntry is one ancestor in a Class/Struct's superStruct
// chain.
type InheritanceEntry struct {
	Name     string
	TypeName string
	Address  core.Address
}

// PropertyInfo describes a member found while walking a Class or
// Struct's member chain, or a Function's parameter chain.
type PropertyInfo struct {
	Name     string
	TypeName string
	Address  core.Address
	IsReturn bool // set only within Function parameter walks
}

// EnumEntry is one {name, value} pair of an Enum object's entry list.
type EnumEntry struct {
	Name  string
	Value int64
}

// DetailedObject is the branch-on-kind result of getObjectDetails.
type DetailedObject struct {
	Address  core.Address
	Name     string
	FullName string
	TypeName string
	Kind     Category

	Inheritance []InheritanceEntry

	// Class/Struct
	PropSize   int64
	Properties []PropertyInfo

	// Enum
	UnderlyingType string
	EnumEntries    []EnumEntry

	// Function
	FunctionPtr core.Address
	Owner       core.Address
	Parameters  []PropertyInfo
}

// GetObjectDetails resolves inheritance then branches on kind. addr
// must already be cached; callers are expected to have checked
// CATALOG_READY and cache membership upstream (session).
func (s *Surface) GetObjectDetails(addr core.Address) (DetailedObject, bool) {
	rec, ok := s.Cache.Lookup(addr)
	if !ok {
		return DetailedObject{}, false
	}

	kind := categoryOf(rec.TypeName)
	det := DetailedObject{
		Address:  rec.Address,
		Name:     rec.Name,
		FullName: rec.FullName,
		TypeName: rec.TypeName,
		Kind:     kind,
	}

	for _, a := range s.superStructChain(rec) {
		det.Inheritance = append(det.Inheritance, InheritanceEntry{
			Name: a.Name, TypeName: a.TypeName, Address: a.Address,
		})
	}

	switch kind {
	case CategoryClass, CategoryStruct:
		propSize, _ := s.Reader.ReadInt32(rec.Address + core.Address(s.Profile.PropSize))
		det.PropSize = int64(propSize)
		for _, m := range s.walkMembers(rec.Address, memberWalkCap) {
			det.Properties = append(det.Properties, PropertyInfo{
				Name: m.Name, TypeName: m.TypeName, Address: m.Address,
			})
		}

	case CategoryEnum:
		underlying := s.enumUnderlyingType(rec)
		det.UnderlyingType = underlying
		det.EnumEntries = s.enumEntries(rec)

	case CategoryFunction:
		fnPtr, _ := s.Reader.ReadPtr(rec.Address + core.Address(s.Profile.FunctionPtr))
		det.FunctionPtr = fnPtr
		det.Owner = rec.Outer
		for _, p := range s.walkMembers(rec.Address, functionParamCap) {
			name := p.Name
			det.Parameters = append(det.Parameters, PropertyInfo{
				Name:     name,
				TypeName: p.TypeName,
				Address:  p.Address,
				IsReturn: strings.EqualFold(name, "ReturnValue"),
			})
		}
	}
	return det, true
}

// enumUnderlyingType reads the enum's underlying-type object pointer
// (TypeObject slot, reused for enums) and resolves its name via the
// cache/basic parse.
func (s *Surface) enumUnderlyingType(rec catalog.Record) string {
	typePtr, ok := s.Reader.ReadPtr(rec.Address + core.Address(s.Profile.TypeObject))
	if !ok || !core.Plausible(typePtr) {
		return ""
	}
	underlying, ok := s.Cache.TrySave(typePtr)
	if !ok {
		return ""
	}
	return underlying.TypeName
}

// enumEntries reads up to enumSize entries (capped at 10000) at
// stride EnumEntryStride from the enum's entry list base.
func (s *Surface) enumEntries(rec catalog.Record) []EnumEntry {
	base, ok := s.Reader.ReadPtr(rec.Address + core.Address(s.Profile.EnumListBase))
	if !ok || !core.Plausible(base) {
		return nil
	}
	size, ok := s.Reader.ReadInt32(rec.Address + core.Address(s.Profile.EnumListSize))
	if !ok || size <= 0 {
		return nil
	}
	n := int(size)
	if n > maxEnumEntries {
		n = maxEnumEntries
	}
	stride := s.Profile.EnumEntryStride
	if stride <= 0 {
		stride = 0x10
	}

	var entries []EnumEntry
	for i := 0; i < n; i++ {
		entryAddr := base + core.Address(int64(i)*stride)
		nameID, ok := s.Reader.ReadInt32(entryAddr)
		if !ok {
			continue
		}
		name, err := s.Pool.GetName(nameID)
		if err != nil {
			continue
		}
		value, _ := s.Reader.ReadInt32(entryAddr + 8)
		entries = append(entries, EnumEntry{Name: name, Value: int64(value)})
	}
	return entries
}
