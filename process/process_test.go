// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package process

import (
	"testing"

	"ueinspect/core"
)

func TestHandleContains(t *testing.T) {
	h := &Handle{ModuleBase: 0x140000000, ModuleSize: 0x1000000}

	cases := []struct {
		addr core.Address
		want bool
	}{
		{0x140000000, true},
		{0x140000000 + 0xFFFFFF, true},
		{0x140000000 + 0x1000000, false},
		{0x13FFFFFFF, false},
		{0, false},
	}
	for _, c := range cases {
		if got := h.Contains(c.addr); got != c.want {
			t.Errorf("Contains(%s) = %v, want %v", c.addr, got, c.want)
		}
	}
}
