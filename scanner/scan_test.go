// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import "testing"

// matchAt is pure and requires no live process; Scan/scanRegion pull
// bytes through memory.Reader, which only exists over a real target
// and is exercised by anchor resolution and findInstances against a
// live process, not here.
func TestMatchAt(t *testing.T) {
	data := []byte{0x48, 0x8D, 0x0D, 0xAA, 0xBB, 0xCC, 0xDD, 0xE8}

	mustParse := func(s string) Signature {
		sig, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		return sig
	}

	cases := []struct {
		name string
		sig  Signature
		at   int
		want bool
	}{
		{"exact match", mustParse("48 8D 0D"), 0, true},
		{"wildcard disp", mustParse("48 8D 0D ?? ?? ?? ?? E8"), 0, true},
		{"mismatch", mustParse("48 8D 0E"), 0, false},
		{"wrong offset", mustParse("48 8D 0D"), 1, false},
		{"all wildcard", mustParse("?? ?? ??"), 3, true},
	}
	for _, c := range cases {
		if got := matchAt(data, c.sig, c.at); got != c.want {
			t.Errorf("%s: matchAt(data, sig, %d) = %v, want %v", c.name, c.at, got, c.want)
		}
	}
}
