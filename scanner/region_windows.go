// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package scanner

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"ueinspect/core"
	"ueinspect/process"
)

// EnumerateRegions walks the target's VM from start to end by region
// size via VirtualQueryEx, keeping only regions that are committed and
// whose protection has neither PAGE_NOACCESS nor PAGE_GUARD set.
func EnumerateRegions(h *process.Handle, start, end core.Address) ([]core.Region, error) {
	var regions []core.Region
	addr := uintptr(start)
	endAddr := uintptr(end)
	osHandle := windows.Handle(h.OSHandle())

	for addr < endAddr {
		var mbi windows.MemoryBasicInformation
		if err := windows.VirtualQueryEx(osHandle, addr, &mbi, unsafe.Sizeof(mbi)); err != nil {
			break
		}
		if mbi.RegionSize == 0 {
			break
		}
		perm := translatePerm(mbi)
		if mbi.State == windows.MEM_COMMIT && perm.Scannable() && perm&core.Read != 0 {
			regions = append(regions, core.Region{
				Base: core.Address(mbi.BaseAddress),
				Size: uint64(mbi.RegionSize),
				Perm: perm,
			})
		}
		addr = uintptr(mbi.BaseAddress) + uintptr(mbi.RegionSize)
	}
	return regions, nil
}

func translatePerm(mbi windows.MemoryBasicInformation) core.Perm {
	var p core.Perm
	switch mbi.Protect &^ (windows.PAGE_GUARD | windows.PAGE_NOCACHE) {
	case windows.PAGE_READONLY:
		p = core.Read
	case windows.PAGE_READWRITE, windows.PAGE_WRITECOPY:
		p = core.Read | core.Write
	case windows.PAGE_EXECUTE:
		p = core.Exec
	case windows.PAGE_EXECUTE_READ:
		p = core.Read | core.Exec
	case windows.PAGE_EXECUTE_READWRITE, windows.PAGE_EXECUTE_WRITECOPY:
		p = core.Read | core.Write | core.Exec
	case windows.PAGE_NOACCESS:
		p = core.NoAccess
	}
	if mbi.Protect&windows.PAGE_GUARD != 0 {
		p |= core.Guard
	}
	return p
}
