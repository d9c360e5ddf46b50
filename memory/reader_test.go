// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"errors"
	"testing"

	"ueinspect/uerrors"
)

// Every Read* method rejects an implausible address before it ever
// reaches the platform read, so these paths are exercisable without a
// live target or even a non-nil handle; the reading-from-a-real-
// process path lives behind readProcessMemory in reader_windows.go and
// needs an attached Windows target to exercise.
func TestReadBytesRejectsImplausibleAddress(t *testing.T) {
	r := New(nil)
	if _, err := r.ReadBytes(0, 8); !errors.Is(err, uerrors.ErrInvalidAddress) {
		t.Errorf("ReadBytes(0, 8) error = %v, want ErrInvalidAddress", err)
	}
}

func TestTypedReadsRejectImplausibleAddress(t *testing.T) {
	r := New(nil)

	if _, ok := r.ReadPtr(0); ok {
		t.Errorf("ReadPtr(0) = ok, want failure")
	}
	if _, ok := r.ReadUint8(0); ok {
		t.Errorf("ReadUint8(0) = ok, want failure")
	}
	if _, ok := r.ReadInt32(0); ok {
		t.Errorf("ReadInt32(0) = ok, want failure")
	}
	if _, ok := r.ReadUint32(0); ok {
		t.Errorf("ReadUint32(0) = ok, want failure")
	}
	if _, ok := r.ReadFloat32(0); ok {
		t.Errorf("ReadFloat32(0) = ok, want failure")
	}
	if _, ok := r.ReadFloat64(0); ok {
		t.Errorf("ReadFloat64(0) = ok, want failure")
	}
}

func TestReadCString(t *testing.T) {
	r := New(nil)
	if got := r.ReadCString(0, 0); got != "" {
		t.Errorf("ReadCString(0, 0) = %q, want empty string", got)
	}
	if got := r.ReadCString(0, 16); got != "" {
		t.Errorf("ReadCString at an implausible address = %q, want empty string", got)
	}
}
