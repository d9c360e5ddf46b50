// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"testing"

	"ueinspect/core"
	"ueinspect/offsets"
)

func TestComposeFullNameSimpleChain(t *testing.T) {
	c := New(nil, nil, offsets.Default)
	seed(c, Record{Address: 0x30000, Name: "Package", Outer: 0})
	seed(c, Record{Address: 0x20000, Name: "Level01", Outer: 0x30000})
	rec := Record{Address: 0x10000 + 1, Name: "Actor_0", TypeName: "Actor", Outer: 0x20000}
	seed(c, rec)

	got := c.composeFullName(rec, 0)
	if want := "Package.Level01.Actor_0"; got != want {
		t.Errorf("composeFullName = %q, want %q", got, want)
	}
}

func TestComposeFullNameNoOuter(t *testing.T) {
	c := New(nil, nil, offsets.Default)
	rec := Record{Address: 0x10000 + 1, Name: "Lonely", Outer: 0}
	got := c.composeFullName(rec, 0)
	if got != "Lonely" {
		t.Errorf("composeFullName = %q, want %q", got, "Lonely")
	}
}

func TestComposeFullNamePropertySeparator(t *testing.T) {
	c := New(nil, nil, offsets.Default)
	owner := Record{Address: 0x20000, Name: "MyActor", TypeName: "Class", Outer: 0}
	seed(c, owner)
	prop := Record{Address: 0x10000 + 1, Name: "Health", TypeName: "FloatProperty", Outer: 0x20000}
	seed(c, prop)

	got := c.composeFullName(prop, 0)
	if want := "MyActor:Health"; got != want {
		t.Errorf("composeFullName (property leaf) = %q, want %q", got, want)
	}
}

func TestComposeFullNameNonPropertyUsesDot(t *testing.T) {
	c := New(nil, nil, offsets.Default)
	pkg := Record{Address: 0x20000, Name: "Pkg", TypeName: "Package", Outer: 0}
	seed(c, pkg)
	cls := Record{Address: 0x10000 + 1, Name: "MyClass", TypeName: "Class", Outer: 0x20000}
	seed(c, cls)

	got := c.composeFullName(cls, 0)
	if want := "Pkg.MyClass"; got != want {
		t.Errorf("composeFullName (class under package) = %q, want %q", got, want)
	}
}

func TestComposeFullNameCycleSafe(t *testing.T) {
	c := New(nil, nil, offsets.Default)
	// A points to B, B points back to A: the visited set must stop
	// the walk rather than recursing forever.
	a := Record{Address: 0x10000 + 1, Name: "A", Outer: 0x20000}
	b := Record{Address: 0x20000, Name: "B", Outer: 0x10000 + 1}
	seed(c, a)
	seed(c, b)

	got := c.composeFullName(a, 0)
	if got != "B.A" {
		t.Errorf("composeFullName (cycle) = %q, want %q", got, "B.A")
	}
}

func TestComposeFullNameMaxConcatCap(t *testing.T) {
	c := New(nil, nil, offsets.Default)
	// A chain of 20 ancestors, each pointing to the next: the walk
	// must stop after maxConcat links rather than walking the whole
	// chain.
	const chainLen = 20
	for i := 0; i < chainLen; i++ {
		addr := addressFor(i)
		outer := addressFor(i + 1)
		if i == chainLen-1 {
			outer = 0
		}
		seed(c, Record{Address: addr, Name: nameFor(i), Outer: outer})
	}

	leaf, _ := c.Lookup(addressFor(0))
	got := c.composeFullName(leaf, 0)

	segments := 1
	for _, r := range got {
		if r == '.' || r == ':' {
			segments++
		}
	}
	if segments > maxConcat {
		t.Errorf("composeFullName produced %d segments, want at most %d (maxConcat)", segments, maxConcat)
	}
}

func addressFor(i int) core.Address { return core.Address(0x20000 + i*0x1000) }
func nameFor(i int) string {
	names := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return string(names[i%len(names)])
}
