// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsWrapWithErrorsIs(t *testing.T) {
	sentinels := []error{
		ErrNotAttached,
		ErrAnchorNotFound,
		ErrNamePoolUninitialised,
		ErrInvalidAddress,
		ErrReadFailed,
		ErrInvalidSignature,
		ErrRegionQueryFailed,
		ErrCatalogMiss,
	}
	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("context: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(wrapped %v, %v) = false, want true", wrapped, sentinel)
		}
	}
}

func TestNotYetParsed(t *testing.T) {
	err := NotYetParsed("names")
	want := "names not yet parsed. Please parse names first."
	if err.Error() != want {
		t.Errorf("NotYetParsed(%q).Error() = %q, want %q", "names", err.Error(), want)
	}
}
