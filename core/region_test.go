// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "testing"

func TestPermString(t *testing.T) {
	cases := []struct {
		p    Perm
		want string
	}{
		{0, "None"},
		{Read, "Read"},
		{Read | Write, "Read|Write"},
		{Read | Write | Exec, "Read|Write|Exec"},
		{NoAccess, "NoAccess"},
		{Guard, "Guard"},
		{Read | Guard, "Read|Guard"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("Perm(%d).String() = %q, want %q", c.p, got, c.want)
		}
	}
}

func TestPermScannable(t *testing.T) {
	cases := []struct {
		p    Perm
		want bool
	}{
		{Read, true},
		{Read | Write, true},
		{Read | NoAccess, false},
		{Read | Guard, false},
		{NoAccess | Guard, false},
	}
	for _, c := range cases {
		if got := c.p.Scannable(); got != c.want {
			t.Errorf("Perm(%d).Scannable() = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRegionEnd(t *testing.T) {
	r := Region{Base: 0x1000, Size: 0x2000}
	if got, want := r.End(), Address(0x3000); got != want {
		t.Errorf("End() = %s, want %s", got, want)
	}
}
