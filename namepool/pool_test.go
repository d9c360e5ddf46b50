// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package namepool

import (
	"errors"
	"testing"

	"ueinspect/uerrors"
)

// GetName checks S before it ever touches the reader, so this guard is
// exercisable without a live target. Once S is committed, decoding a
// record requires real process memory (DiscoverOffset/Parse, tested
// only against a live target).
func TestGetNameBeforeDiscoverOffset(t *testing.T) {
	p := New(nil, 0x140000000)
	if _, err := p.GetName(1); !errors.Is(err, uerrors.ErrNamePoolUninitialised) {
		t.Errorf("GetName before DiscoverOffset = %v, want ErrNamePoolUninitialised", err)
	}
}
