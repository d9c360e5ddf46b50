// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

// Candidates is the ordered signature catalog per anchor. Each list is
// tried front to back: newer, more specific builds
// first, broad fallbacks last. These are the `lea reg, [rip+disp32]`
// / `mov reg, [rip+disp32]` sequences the target's compiler emits
// around the three anchors' access sites; the exact bytes are
// target-version-specific, so an implementer deploying this tool
// against a new engine build adds a new front entry rather than
// touching the resolution logic.
var Candidates = map[Name][]Candidate{
	NamePoolBase: {
		// lea rcx, [rip+disp32] immediately preceding a call into the
		// pool's block-array accessor, newest layout first.
		{Signature: "48 8D 0D ?? ?? ?? ?? E8 ?? ?? ?? ?? 48 8B 0D", Disp: 3, InstrLen: 7},
		{Signature: "48 8D 0D ?? ?? ?? ?? EB ?? 48 8B 1D", Disp: 3, InstrLen: 7},
		// older fallback: direct mov into a global pointer slot.
		{Signature: "48 89 05 ?? ?? ?? ?? 48 8D 0D", Disp: 3, InstrLen: 7},
	},
	ObjectArrayBase: {
		{Signature: "48 8B 05 ?? ?? ?? ?? 48 8B 0C C8 48 8B 04", Disp: 3, InstrLen: 7},
		{Signature: "48 8B 0D ?? ?? ?? ?? 8B 05 ?? ?? ?? ?? 48 8D 04", Disp: 3, InstrLen: 7},
		{Signature: "4C 8B 05 ?? ?? ?? ?? 49 8B 04 C0", Disp: 3, InstrLen: 7},
	},
	WorldBase: {
		{Signature: "48 8B 1D ?? ?? ?? ?? 48 85 DB 74 ?? 48 8B 03", Disp: 3, InstrLen: 7},
		{Signature: "48 8B 05 ?? ?? ?? ?? 48 8B 88 ?? ?? ?? ?? 48 85 C9", Disp: 3, InstrLen: 7},
	},
}
