// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arch contains architecture-specific constants for decoding
// the target process's address space. The target runtime this tool
// inspects only ever runs as an x86-64 Windows process, so AMD64 is
// the only architecture defined.
package arch

import "encoding/binary"

// AMD64 describes the pointer width and byte order of the target
// process. There is nothing to select here today, but the type keeps
// the door open for ARM/386 support to be added later without
// touching every call site.
var AMD64 = struct {
	PointerSize int
	IntSize     int
	ByteOrder   binary.ByteOrder
}{
	PointerSize: 8,
	IntSize:     4,
	ByteOrder:   binary.LittleEndian,
}

// DisplacementSize is the width, in bytes, of the disp32 field inside
// a RIP-relative x86-64 instruction. Instruction lengths vary with
// prefixes and are carried per signature candidate; the displacement
// field itself is always 4 bytes.
const DisplacementSize = 4
