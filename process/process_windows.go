// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package process

import (
	"fmt"
	"sort"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"ueinspect/core"
	"ueinspect/uerrors"
)

// ListProcesses returns every process that owns at least one visible
// top-level window with a non-empty title, sorted case-insensitively
// by name.
func ListProcesses() ([]Info, error) {
	var out []Info
	cb := syscall.NewCallback(func(hwnd syscall.Handle, lparam uintptr) uintptr {
		if !isTopLevelVisible(hwnd) {
			return 1 // continue enumeration
		}
		title := windowText(hwnd)
		if title == "" {
			return 1
		}
		var pid uint32
		getWindowThreadProcessID(hwnd, &pid)
		name, err := processImageName(pid)
		if err != nil {
			return 1
		}
		out = append(out, Info{PID: pid, Name: name})
		return 1
	})
	if err := enumWindows(cb); err != nil {
		return nil, fmt.Errorf("%w: EnumWindows: %v", uerrors.ErrReadFailed, err)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return dedupe(out), nil
}

func dedupe(in []Info) []Info {
	seen := make(map[uint32]bool, len(in))
	out := in[:0]
	for _, i := range in {
		if seen[i.PID] {
			continue
		}
		seen[i.PID] = true
		out = append(out, i)
	}
	return out
}

// Attach opens pid for memory read and query and locates its main
// module via a Toolhelp32 module snapshot: the first module entry is
// the primary executable.
func Attach(pid uint32, name string) (*Handle, error) {
	h, err := windows.OpenProcess(windows.PROCESS_VM_READ|windows.PROCESS_QUERY_INFORMATION, false, pid)
	if err != nil {
		if err == windows.ERROR_ACCESS_DENIED {
			return nil, fmt.Errorf("attach pid %d: %w", pid, accessDenied)
		}
		return nil, fmt.Errorf("attach pid %d: %w", pid, notFound)
	}

	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPMODULE|windows.TH32CS_SNAPMODULE32, pid)
	if err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("module snapshot pid %d: %w", pid, snapshotFailed)
	}
	defer windows.CloseHandle(snap)

	var me windows.ModuleEntry32
	me.Size = uint32(unsafe.Sizeof(me))
	if err := windows.Module32First(snap, &me); err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("module snapshot pid %d: %w", pid, snapshotFailed)
	}

	path := windows.UTF16ToString(me.ExePath[:])
	return &Handle{
		PID:        pid,
		Name:       name,
		Path:       path,
		ModuleBase: core.Address(me.ModBaseAddr),
		ModuleSize: uint64(me.ModBaseSize),
		os:         uintptr(h),
	}, nil
}

// Release closes the OS handle. It must be called exactly once per
// Handle at session end.
func (h *Handle) Release() error {
	if h.os == 0 {
		return nil
	}
	err := windows.CloseHandle(windows.Handle(h.os))
	h.os = 0
	return err
}

// QueryVersion reads the fixed file-version record from the
// executable's version resource. Failure is non-fatal
// and surfaces as a string error, per the caller contract.
func QueryVersion(h *Handle) (string, error) {
	size, err := windows.GetFileVersionInfoSize(h.Path, nil)
	if err != nil || size == 0 {
		return "", fmt.Errorf("query version: no version resource")
	}
	buf := make([]byte, size)
	if err := windows.GetFileVersionInfo(h.Path, 0, size, unsafe.Pointer(&buf[0])); err != nil {
		return "", fmt.Errorf("query version: %w", err)
	}

	var fixedPtr *windows.VS_FIXEDFILEINFO
	var fixedLen uint32
	if err := windows.VerQueryValue(unsafe.Pointer(&buf[0]), `\`, unsafe.Pointer(&fixedPtr), &fixedLen); err != nil {
		return "", fmt.Errorf("query version: %w", err)
	}
	return fmt.Sprintf("%d.%d.%d.%d",
		fixedPtr.FileVersionMS>>16, fixedPtr.FileVersionMS&0xFFFF,
		fixedPtr.FileVersionLS>>16, fixedPtr.FileVersionLS&0xFFFF), nil
}

var (
	notFound       = fmt.Errorf("process not found")
	accessDenied   = fmt.Errorf("access denied")
	snapshotFailed = fmt.Errorf("module snapshot failed")
)
