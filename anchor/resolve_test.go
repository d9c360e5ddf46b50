// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

import (
	"math"
	"testing"

	"ueinspect/core"
)

// resolveRIPDisp is the pure arithmetic ResolveRIP delegates to once it
// has the displacement in hand; it needs no live reader, so the
// synthetic-instruction-buffer round trip from spec.md's testable
// properties (resolve(ia, d, L) == (ia+L) + i32(ia+d)) is exercisable
// directly against it.
func TestResolveRIPDisp(t *testing.T) {
	ia := core.Address(0x140001000)
	length := 7

	cases := []int32{-2, 0, 2, math.MinInt32, math.MaxInt32}
	for _, disp := range cases {
		got := resolveRIPDisp(ia, disp, length)
		want := ia + core.Address(length) + core.Address(int64(disp))
		if got != want {
			t.Errorf("resolveRIPDisp(%s, %d, %d) = %s, want %s", ia, disp, length, got, want)
		}
	}
}

func TestResolveRIPDispNegativeWrapsBackward(t *testing.T) {
	ia := core.Address(0x140001000)
	got := resolveRIPDisp(ia, -16, 7)
	want := ia + 7 - 16
	if got != want {
		t.Errorf("resolveRIPDisp with a negative displacement = %s, want %s", got, want)
	}
}
