// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"errors"
	"testing"

	"ueinspect/anchor"
	"ueinspect/core"
	"ueinspect/uerrors"
)

func TestStateString(t *testing.T) {
	cases := []struct {
		s    State
		want string
	}{
		{Idle, "IDLE"},
		{Attached, "ATTACHED"},
		{Anchored, "ANCHORED"},
		{NamesParsed, "NAMES_PARSED"},
		{CatalogReady, "CATALOG_READY"},
		{State(99), "UNKNOWN"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("State(%d).String() = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestNewDefaultsWorkers(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 4},
		{-1, 4},
		{8, 8},
	}
	for _, c := range cases {
		s := New(c.in)
		if s.Workers != c.want {
			t.Errorf("New(%d).Workers = %d, want %d", c.in, s.Workers, c.want)
		}
		if s.State() != Idle {
			t.Errorf("New(%d).State() = %v, want Idle", c.in, s.State())
		}
	}
}

// Every state-gated method checks its prerequisite before touching the
// live process handle or reader, so a fresh Session (Handle/Reader
// both nil) rejects out-of-order calls without needing a target.
func TestStateGatesRejectBeforeAttach(t *testing.T) {
	s := New(1)

	if _, err := s.ResolveAnchor(anchor.NamePoolBase); !errors.Is(err, uerrors.ErrNotAttached) {
		t.Errorf("ResolveAnchor before Attach = %v, want ErrNotAttached", err)
	}
	if _, err := s.ParseNames(nil); err == nil {
		t.Errorf("ParseNames before anchors resolved = nil error, want NotYetParsed(NamePool)")
	}
	if _, err := s.ParseObjects(nil); err == nil {
		t.Errorf("ParseObjects before names parsed = nil error, want NotYetParsed(Names)")
	}
	if err := s.RequireCatalogReady(); err == nil {
		t.Errorf("RequireCatalogReady on a fresh session = nil error, want NotYetParsed(Objects)")
	}
	if err := s.RequireKnownClass(core.Address(0x20000)); err == nil {
		t.Errorf("RequireKnownClass on a fresh session = nil error, want NotYetParsed(Objects)")
	}
}

func TestParseNamesErrorMessage(t *testing.T) {
	s := New(1)
	_, err := s.ParseNames(nil)
	want := "NamePool not yet parsed. Please parse NamePool first."
	if err.Error() != want {
		t.Errorf("ParseNames error = %q, want %q", err.Error(), want)
	}
}
