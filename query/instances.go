// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"strings"

	"ueinspect/arch"
	"ueinspect/catalog"
	"ueinspect/core"
	"ueinspect/scanner"
	"ueinspect/uerrors"
)

// fullUserSpaceEnd matches the plausible-address band. The
// findInstances scan covers the same full range rather than
// restricting itself to heap regions (a future design could restrict
// to heap only; left undone, see DESIGN.md).
const fullUserSpaceEnd = core.Address(0x7FFF_FFFF_FFFF)

// InstanceHit is one findInstances result.
type InstanceHit struct {
	InstanceAddress core.Address
	ObjectName      string
}

// FindInstances forms a little-endian 8-byte AOB of classAddr, scans
// the full user-space range, subtracts 0x10 from each hit to obtain a
// candidate instance address, runs trySave on it, and keeps only
// results whose resolved name is neither "InvalidName" nor "None".
func (s *Surface) FindInstances(classAddr core.Address) ([]InstanceHit, error) {
	le := make([]byte, arch.AMD64.PointerSize)
	arch.AMD64.ByteOrder.PutUint64(le, uint64(classAddr))
	sig := scanner.BytesSignature(le)

	regions, err := scanner.EnumerateRegions(s.Handle, 0, fullUserSpaceEnd)
	if err != nil {
		return nil, uerrors.ErrRegionQueryFailed
	}
	hits := scanner.Scan(s.Reader, regions, sig, s.Workers)

	var out []InstanceHit
	for _, hit := range hits {
		if hit < 0x10 {
			continue
		}
		candidate := hit - 0x10
		rec, ok := s.Cache.TrySave(candidate)
		if !ok {
			continue
		}
		if rec.Name == "InvalidName" || rec.Name == "None" {
			continue
		}
		out = append(out, InstanceHit{InstanceAddress: candidate, ObjectName: rec.Name})
	}
	return out, nil
}

// propertyKind classifies a property's typeName into the live-value
// shapes inspectInstance/expandArray need to distinguish. Matching is keyword-based, same texture as categoryOf.
type propertyKind int

const (
	kindOther propertyKind = iota
	kindBool
	kindName
	kindInt
	kindFloat
	kindDouble
	kindByte
	kindString
	kindObjectOrClass
	kindEnum
	kindArray
	kindMap
	kindSet
)

func classifyProperty(typeName string) propertyKind {
	switch {
	case strings.Contains(typeName, "BoolProperty"):
		return kindBool
	case strings.Contains(typeName, "NameProperty"):
		return kindName
	case strings.Contains(typeName, "StrProperty"), strings.Contains(typeName, "TextProperty"):
		return kindString
	case strings.Contains(typeName, "DoubleProperty"):
		return kindDouble
	case strings.Contains(typeName, "FloatProperty"):
		return kindFloat
	case strings.Contains(typeName, "ByteProperty"):
		return kindByte
	case strings.Contains(typeName, "IntProperty"), strings.Contains(typeName, "UIntProperty"):
		return kindInt
	case strings.Contains(typeName, "ObjectProperty"), strings.Contains(typeName, "ClassProperty"):
		return kindObjectOrClass
	case strings.Contains(typeName, "EnumProperty"):
		return kindEnum
	case strings.Contains(typeName, "ArrayProperty"):
		return kindArray
	case strings.Contains(typeName, "MapProperty"):
		return kindMap
	case strings.Contains(typeName, "SetProperty"):
		return kindSet
	default:
		return kindOther
	}
}

// elementStride returns the byte stride used by expandArray/
// inspectInstance when synthesising array/map element rows: 1 for
// bool/byte, 4 for int/float, 8 for pointer/name/str/double, 8
// default. This is a coarse by-keyword guess; structs larger than 8
// bytes are misrepresented, as documented in DESIGN.md.
func elementStride(innerType string) int64 {
	switch classifyProperty(innerType) {
	case kindBool, kindByte:
		return 1
	case kindInt, kindFloat:
		return 4
	default:
		return 8
	}
}

// InstancePropertyInfo is one row of inspectInstance or expandArray.
type InstancePropertyInfo struct {
	Name         string
	TypeName     string
	Offset       int64
	Address      core.Address
	Kind         propertyKind
	BoolValue    bool
	NameValue    string
	IntValue     int32
	FloatValue   float32
	DoubleValue  float64
	ByteValue    uint8
	StringValue  string
	InnerPointer core.Address
	ElementCount int
	ClassAddress core.Address
	ClassName    string
}

// InspectInstance walks classAddr's member chain (cap 500); for each
// property it computes instanceAddr+offset, derives a sub-type for
// reference-like properties by consulting the cache or the property
// node's +0/+8 slots, and reads a live value by kind.
func (s *Surface) InspectInstance(classAddr, instanceAddr core.Address) ([]InstancePropertyInfo, bool) {
	if _, ok := s.Cache.Lookup(classAddr); !ok {
		return nil, false
	}
	members := s.walkMembers(classAddr, memberWalkCap)

	var out []InstancePropertyInfo
	for _, m := range members {
		offset, _ := s.Reader.ReadInt32(m.Address + core.Address(s.Profile.PropertyOffset))
		loc := instanceAddr + core.Address(offset)
		kind := classifyProperty(m.TypeName)

		info := InstancePropertyInfo{
			Name:     m.Name,
			TypeName: m.TypeName,
			Offset:   int64(offset),
			Address:  loc,
			Kind:     kind,
		}

		switch kind {
		case kindBool:
			raw, _ := s.Reader.ReadUint8(loc)
			mask := uint8(1)
			if bm, ok := s.Reader.ReadUint8(m.Address + core.Address(s.Profile.BitMaskByte)); ok && bm != 0 {
				mask = bm
			}
			info.BoolValue = raw&mask != 0
		case kindName:
			id, _ := s.Reader.ReadInt32(loc)
			info.NameValue, _ = s.Pool.GetName(id)
		case kindInt:
			info.IntValue, _ = s.Reader.ReadInt32(loc)
		case kindFloat:
			info.FloatValue, _ = s.Reader.ReadFloat32(loc)
		case kindDouble:
			info.DoubleValue, _ = s.Reader.ReadFloat64(loc)
		case kindByte:
			info.ByteValue, _ = s.Reader.ReadUint8(loc)
		case kindString:
			info.StringValue = s.Reader.ReadCString(loc, 256)
		case kindObjectOrClass:
			s.resolvePointee(&info, loc)
		case kindEnum:
			s.resolveEnumSubtype(&info, m)
		case kindArray, kindMap, kindSet:
			s.resolveCollection(&info, loc, m)
		}
		out = append(out, info)
	}
	return out, true
}

// resolvePointee dereferences loc as an object/class property,
// resolving the pointee's class address and name.
func (s *Surface) resolvePointee(info *InstancePropertyInfo, loc core.Address) {
	ptr, ok := s.Reader.ReadPtr(loc)
	if !ok || !core.Plausible(ptr) {
		return
	}
	info.InnerPointer = ptr
	rec, ok := s.Cache.TrySave(ptr)
	if !ok {
		return
	}
	info.ClassAddress = rec.ClassPtr
	if class, ok := s.Cache.Lookup(rec.ClassPtr); ok {
		info.ClassName = class.Name
	}
}

// resolveEnumSubtype consults the property node's TypeObject slot for
// the underlying enum type, resolving its name via the cache.
func (s *Surface) resolveEnumSubtype(info *InstancePropertyInfo, member catalog.Record) {
	typePtr, ok := s.Reader.ReadPtr(member.Address + core.Address(s.Profile.TypeObject))
	if !ok || !core.Plausible(typePtr) {
		return
	}
	info.ClassAddress = typePtr
	if rec, ok := s.Cache.TrySave(typePtr); ok {
		info.ClassName = rec.Name
	}
}

// resolveCollection reads the element/inner-type pointer from the
// property node's +0 slot, then the live array/map/set header at loc
// (pointer at +0, count at +8).
func (s *Surface) resolveCollection(info *InstancePropertyInfo, loc core.Address, member catalog.Record) {
	inner, _ := s.Reader.ReadPtr(member.Address + core.Address(s.Profile.PropertySlot0))
	info.InnerPointer = inner

	arrPtr, ok := s.Reader.ReadPtr(loc)
	if !ok || !core.Plausible(arrPtr) {
		return
	}
	count, ok := s.Reader.ReadInt32(loc + 8)
	if !ok || count < 0 {
		return
	}
	info.InnerPointer = arrPtr
	info.ElementCount = int(count)
}
