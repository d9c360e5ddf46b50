// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memory implements C2 (Remote Memory Reader): typed reads,
// raw reads, pointer reads, null-terminated string reads, and a
// region-size query over a single target process. The platform read
// itself lives in reader_windows.go; this file holds the portable
// Reader API and the generic-read helper that sits on top of it.
package memory

import (
	"fmt"
	"math"

	"ueinspect/arch"
	"ueinspect/core"
	"ueinspect/process"
	"ueinspect/uerrors"
)

// Reader is safe to share across worker goroutines without locks: its
// OS handle is immutable after construction, so every
// method here is a pure function of (handle, address).
type Reader struct {
	handle *process.Handle
}

// New wraps an attached process handle for reads.
func New(h *process.Handle) *Reader {
	return &Reader{handle: h}
}

// ReadBytes performs a bulk read, returning all bytes read or an
// error. A partial read (fewer bytes than requested) is treated as a
// failure.
func (r *Reader) ReadBytes(a core.Address, n int) ([]byte, error) {
	if !core.Plausible(a) {
		return nil, fmt.Errorf("%w: %s", uerrors.ErrInvalidAddress, a)
	}
	buf := make([]byte, n)
	read, err := readProcessMemory(r.handle, a, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: read %d bytes at %s: %v", uerrors.ErrReadFailed, n, a, err)
	}
	if read != n {
		return nil, fmt.Errorf("%w: partial read at %s (%d of %d bytes)", uerrors.ErrReadFailed, a, read, n)
	}
	return buf, nil
}

// ReadPtr reads 8 bytes and interprets them as an address.
func (r *Reader) ReadPtr(a core.Address) (core.Address, bool) {
	buf, err := r.ReadBytes(a, arch.AMD64.PointerSize)
	if err != nil {
		return 0, false
	}
	return core.Address(arch.AMD64.ByteOrder.Uint64(buf)), true
}

// ReadUint8 through ReadFloat64 are best-effort typed reads; all
// return false on failure. An implausible address is rejected before
// any buffer is allocated; a failed read of a plausible address has
// already allocated its read buffer.

func (r *Reader) ReadUint8(a core.Address) (uint8, bool) {
	buf, err := r.ReadBytes(a, 1)
	if err != nil {
		return 0, false
	}
	return buf[0], true
}

func (r *Reader) ReadInt32(a core.Address) (int32, bool) {
	buf, err := r.ReadBytes(a, arch.AMD64.IntSize)
	if err != nil {
		return 0, false
	}
	return int32(arch.AMD64.ByteOrder.Uint32(buf)), true
}

func (r *Reader) ReadUint32(a core.Address) (uint32, bool) {
	buf, err := r.ReadBytes(a, arch.AMD64.IntSize)
	if err != nil {
		return 0, false
	}
	return arch.AMD64.ByteOrder.Uint32(buf), true
}

func (r *Reader) ReadFloat32(a core.Address) (float32, bool) {
	buf, err := r.ReadBytes(a, arch.AMD64.IntSize)
	if err != nil {
		return 0, false
	}
	bits := arch.AMD64.ByteOrder.Uint32(buf)
	return math.Float32frombits(bits), true
}

func (r *Reader) ReadFloat64(a core.Address) (float64, bool) {
	buf, err := r.ReadBytes(a, arch.AMD64.PointerSize)
	if err != nil {
		return 0, false
	}
	bits := arch.AMD64.ByteOrder.Uint64(buf)
	return math.Float64frombits(bits), true
}

// ReadCString reads single bytes until NUL or max, passing any
// non-UTF-8 bytes through as a Latin-1-style cast into the result
// string. It deliberately reads one byte at a time so a string ending
// just before an unmapped page still comes back whole.
func (r *Reader) ReadCString(a core.Address, max int) string {
	var runes []rune
	for i := 0; i < max; i++ {
		b, ok := r.ReadUint8(a + core.Address(i))
		if !ok || b == 0 {
			break
		}
		runes = append(runes, rune(b))
	}
	return string(runes)
}

// RegionSize performs an OS region-size query at a.
func (r *Reader) RegionSize(a core.Address) (uint64, error) {
	size, err := regionSize(r.handle, a)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", uerrors.ErrRegionQueryFailed, a, err)
	}
	return size, nil
}
