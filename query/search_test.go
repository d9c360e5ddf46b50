// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import "testing"

func TestParseSearchMode(t *testing.T) {
	cases := []struct {
		name string
		want SearchMode
	}{
		{"Member", ModeMember},
		{"Object", ModeObject},
		{"", ModeObject},
		{"bogus", ModeObject},
	}
	for _, c := range cases {
		if got := ParseSearchMode(c.name); got != c.want {
			t.Errorf("ParseSearchMode(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
