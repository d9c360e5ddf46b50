// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offsets

import "testing"

func TestSelect(t *testing.T) {
	cases := []struct {
		version string
		want    string
	}{
		{"", "default"},
		{"garbage", "default"},
		{"4", "default"},
		{"4.20.0.0", "legacy-4.2x"},
		{"4.25.1.0", "legacy-4.2x"},
		{"4.26.0.0", "default"},
		{"4.27.2.0", "default"},
		{"5.0.0.0", "default"},
		{"5.3.2.1", "default"},
	}
	for _, c := range cases {
		if got := Select(c.version).Name; got != c.want {
			t.Errorf("Select(%q).Name = %q, want %q", c.version, got, c.want)
		}
	}
}

func TestParseMajorMinor(t *testing.T) {
	cases := []struct {
		version      string
		major, minor int
		ok           bool
	}{
		{"4.25.1.0", 4, 25, true},
		{"4.x.1.0", 4, 0, true},
		{"nope", 0, 0, false},
		{"4", 0, 0, false},
	}
	for _, c := range cases {
		major, minor, ok := parseMajorMinor(c.version)
		if ok != c.ok || (ok && (major != c.major || minor != c.minor)) {
			t.Errorf("parseMajorMinor(%q) = (%d, %d, %v), want (%d, %d, %v)",
				c.version, major, minor, ok, c.major, c.minor, c.ok)
		}
	}
}
