// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package memory

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"ueinspect/core"
	"ueinspect/process"
)

// readProcessMemory is the only place that calls into
// ReadProcessMemory; everything above this file works in terms of
// core.Address and plain byte slices.
func readProcessMemory(h *process.Handle, a core.Address, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var bytesRead uintptr
	err := windows.ReadProcessMemory(
		windows.Handle(h.OSHandle()),
		uintptr(a),
		&buf[0],
		uintptr(len(buf)),
		&bytesRead,
	)
	if err != nil {
		return int(bytesRead), err
	}
	return int(bytesRead), nil
}

// regionSize issues a VirtualQueryEx at a and returns the size of the
// region it falls within.
func regionSize(h *process.Handle, a core.Address) (uint64, error) {
	var mbi windows.MemoryBasicInformation
	err := windows.VirtualQueryEx(windows.Handle(h.OSHandle()), uintptr(a), &mbi, unsafe.Sizeof(mbi))
	if err != nil {
		return 0, err
	}
	return uint64(mbi.RegionSize), nil
}
