// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"strconv"

	"ueinspect/core"
)

const maxExpandCount = 9999

// ExpandArray returns count synthetic property rows over the memory
// at ptr, spaced at the stride appropriate to innerType, capped at
// 9999 entries.
func (s *Surface) ExpandArray(ptr core.Address, innerType string, count int) []InstancePropertyInfo {
	if count > maxExpandCount {
		count = maxExpandCount
	}
	if count < 0 {
		return nil
	}
	stride := elementStride(innerType)
	kind := classifyProperty(innerType)

	out := make([]InstancePropertyInfo, 0, count)
	for i := 0; i < count; i++ {
		loc := ptr + core.Address(int64(i)*stride)
		info := InstancePropertyInfo{
			Name:     "[" + strconv.Itoa(i) + "]",
			TypeName: innerType,
			Offset:   int64(i) * stride,
			Address:  loc,
			Kind:     kind,
		}
		switch kind {
		case kindBool:
			raw, _ := s.Reader.ReadUint8(loc)
			info.BoolValue = raw != 0
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
		default:
			ptrVal, _ := s.Reader.ReadPtr(loc)
			info.InnerPointer = ptrVal
		}
		out = append(out, info)
	}
	return out
}

