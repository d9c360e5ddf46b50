// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package process implements process attachment: opening a target by
// PID, identifying its main module, and exposing an OS handle the rest
// of the engine reads through. The platform-specific work lives in
// process_windows.go behind a portable Handle type.
package process

import "ueinspect/core"

// Info describes one attachable candidate, as returned by
// ListProcesses.
type Info struct {
	PID  uint32
	Name string
}

// Handle is a live attachment to a target process. Until Release is
// called, Handle is valid for reads for the process's lifetime.
type Handle struct {
	PID        uint32
	Name       string
	Path       string
	ModuleBase core.Address
	ModuleSize uint64

	// os is the platform handle (a windows.Handle boxed as uintptr on
	// non-Windows builds never run); unexported so callers go through
	// Read-family methods instead of touching it directly.
	os uintptr
}

// OSHandle exposes the raw platform handle for packages (memory,
// scanner) that must pass it straight to a Windows API call.
func (h *Handle) OSHandle() uintptr { return h.os }

// Contains reports whether a lies within the attached process's main
// module.
func (h *Handle) Contains(a core.Address) bool {
	return a >= h.ModuleBase && a < h.ModuleBase+core.Address(h.ModuleSize)
}
