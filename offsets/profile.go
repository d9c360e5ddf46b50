// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offsets holds the Profile: a fixed, versioned record of
// structural offsets the object-array walker and catalog use to
// interpret an object's raw bytes. Exactly one profile is active per
// session.
package offsets

import (
	"strconv"
	"strings"
)

// Profile enumerates the structural offsets a single session uses to
// interpret objects in the target. Every field is a byte offset from
// the start of the object unless noted otherwise.
type Profile struct {
	// Name identifies the profile for diagnostics (showAnchors, logs).
	Name string

	ID             int64 // object id
	Class          int64 // pointer to owning class/meta object
	FNameIndex     int64 // interned-name id, for non-property objects
	Outer          int64 // pointer to the outer/parent object
	SuperStruct    int64 // pointer to the parent struct/class
	MemberHead     int64 // pointer to the first member in the chain
	MemberNext     int64 // pointer to the next member in the chain
	MemberType     int64 // pointer to a member's type object
	MemberTypeOff  int64 // fallback offset used when MemberType is absent
	MemberFNameIdx int64 // interned-name id for a member (property path)

	PropertyOffset int64 // byte offset of this property within its owning instance
	PropertySlot0  int64 // property-specific pointer slot at +0
	PropertySlot8  int64 // property-specific pointer slot at +8

	TypeObject  int64 // pointer to the type object for Object/Class-kind properties
	BitMaskByte int64 // offset of the bitfield mask byte for BoolProperty

	EnumListBase    int64 // pointer to the first entry of an enum's name/value list
	EnumListSize    int64 // count of entries in the enum list
	EnumEntryStride int64 // byte stride between successive enum entries
	EnumPropMul     int64 // byte stride used when expanding enum array properties

	FunctionPtr   int64 // native function pointer, for Function-kind objects
	FunctionParam int64 // pointer to the first function parameter in the member chain

	PropSize int64 // total instance size in bytes, for Class/Struct-kind objects
}

// Default is the profile used when no engine version has been
// resolved yet, or when the version query fails. It is deliberately
// conservative: offsets matching the most recent engine layout.
var Default = Profile{
	Name:            "default",
	ID:              0x2C,
	Class:           0x10,
	FNameIndex:      0x18,
	Outer:           0x20,
	SuperStruct:     0x40,
	MemberHead:      0x48,
	MemberNext:      0x20,
	MemberType:      0x38,
	MemberTypeOff:   0x34,
	MemberFNameIdx:  0x18,
	PropertyOffset:  0x4C,
	PropertySlot0:   0x70,
	PropertySlot8:   0x78,
	TypeObject:      0x28,
	BitMaskByte:     0x71,
	EnumListBase:    0x40,
	EnumListSize:    0x48,
	EnumEntryStride: 0x10,
	EnumPropMul:     1,
	FunctionPtr:     0x88,
	FunctionParam:   0x48,
	PropSize:        0x50,
}

// legacy is an older offset layout, selected for 4.x engine versions
// up to and including 4.25.
var legacy = Profile{
	Name:            "legacy-4.2x",
	ID:              0x2C,
	Class:           0x10,
	FNameIndex:      0x18,
	Outer:           0x20,
	SuperStruct:     0x30,
	MemberHead:      0x38,
	MemberNext:      0x20,
	MemberType:      0x38,
	MemberTypeOff:   0x34,
	MemberFNameIdx:  0x18,
	PropertyOffset:  0x44,
	PropertySlot0:   0x68,
	PropertySlot8:   0x70,
	TypeObject:      0x28,
	BitMaskByte:     0x69,
	EnumListBase:    0x38,
	EnumListSize:    0x40,
	EnumEntryStride: 0x10,
	EnumPropMul:     1,
	FunctionPtr:     0x78,
	FunctionParam:   0x38,
	PropSize:        0x44,
}

// ByName returns the compiled-in profile with the given name, for an
// operator overriding version-based selection.
func ByName(name string) (Profile, bool) {
	switch name {
	case Default.Name:
		return Default, true
	case legacy.Name:
		return legacy, true
	}
	return Profile{}, false
}

// Names lists the compiled-in profile names.
func Names() []string {
	return []string{Default.Name, legacy.Name}
}

// Select returns the profile appropriate for the given "M.m.b.r"
// version string from queryVersion, falling back to
// Default when the version is empty, malformed, or not recognised.
func Select(version string) Profile {
	major, minor, ok := parseMajorMinor(version)
	if !ok {
		return Default
	}
	if major == 4 && minor <= 25 {
		return legacy
	}
	return Default
}

func parseMajorMinor(version string) (major, minor int, ok bool) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return major, 0, true
	}
	return major, minor, true
}
