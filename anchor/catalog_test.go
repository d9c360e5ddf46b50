// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

import (
	"testing"

	"ueinspect/scanner"
)

// Candidates is consulted in order by Resolve; a malformed entry here
// would silently never match rather than erroring, so each signature
// must parse and each Disp must leave room for a 4-byte displacement
// inside the signature's own tokens.
func TestCandidatesWellFormed(t *testing.T) {
	for name, list := range Candidates {
		if len(list) == 0 {
			t.Errorf("%s has no candidates", name)
		}
		for i, c := range list {
			sig, err := scanner.Parse(c.Signature)
			if err != nil {
				t.Errorf("%s[%d].Signature %q does not parse: %v", name, i, c.Signature, err)
				continue
			}
			if c.Disp < 0 || c.Disp+4 > len(sig.Tokens) {
				t.Errorf("%s[%d].Disp %d leaves no room for a 4-byte displacement in a %d-token signature",
					name, i, c.Disp, len(sig.Tokens))
			}
			if c.InstrLen <= 0 {
				t.Errorf("%s[%d].InstrLen = %d, want > 0", name, i, c.InstrLen)
			}
		}
	}
}

func TestCandidatesCoverAllAnchors(t *testing.T) {
	for _, name := range []Name{NamePoolBase, ObjectArrayBase, WorldBase} {
		if _, ok := Candidates[name]; !ok {
			t.Errorf("Candidates has no entry for %s", name)
		}
	}
}
