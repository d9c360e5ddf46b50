// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ueinspect/catalog"
	"ueinspect/core"
	"ueinspect/offsets"
)

func seededCache(recs ...catalog.Record) *catalog.Cache {
	c := catalog.New(nil, nil, offsets.Default)
	for _, r := range recs {
		c.Insert(r)
	}
	return c
}

func TestListPackagesGroupsAndSorts(t *testing.T) {
	c := seededCache(
		catalog.Record{Address: 0x20000, Name: "Actor", TypeName: "Class", FullName: "/Script/Engine.Actor"},
		catalog.Record{Address: 0x21000, Name: "Pawn", TypeName: "Class", FullName: "/Script/Engine.Pawn"},
		catalog.Record{Address: 0x22000, Name: "EMove", TypeName: "Enum", FullName: "/Script/Engine.EMove"},
		catalog.Record{Address: 0x23000, Name: "BP_C", TypeName: "BlueprintGeneratedClass", FullName: "/Game/Maps/BP.BP_C"},
		catalog.Record{Address: 0x24000, Name: "Loose", TypeName: "Class", FullName: "NoPackageHere"},
		catalog.Record{Address: 0x25000, Name: "Foo", TypeName: "Class", FullName: "/Plugin/X.Foo"},
	)

	pkgs := ListPackages(c)

	assert.Len(t, pkgs, 2)
	assert.Equal(t, "/Game/Maps/BP", pkgs[0].Name)
	assert.Equal(t, 1, pkgs[0].Count)
	assert.Equal(t, "/Script/Engine", pkgs[1].Name)
	assert.Equal(t, 3, pkgs[1].Count)
	assert.Equal(t, 2, pkgs[1].ClassCount)
	assert.Equal(t, 1, pkgs[1].EnumCount)
}

func TestListObjectsFiltersByPackageAndCategory(t *testing.T) {
	c := seededCache(
		catalog.Record{Address: 0x20000, Name: "Actor", TypeName: "Class", FullName: "/Script/Engine.Actor"},
		catalog.Record{Address: 0x21000, Name: "EMove", TypeName: "Enum", FullName: "/Script/Engine.EMove"},
		catalog.Record{Address: 0x22000, Name: "Vec", TypeName: "ScriptStruct", FullName: "/Script/Core.Vec"},
		catalog.Record{Address: 0x23000, Name: "Zebra", TypeName: "Class", FullName: "/Script/Engine.Zebra"},
		catalog.Record{Address: 0x24000, Name: "Alpha", TypeName: "Class", FullName: "/Script/Engine.Alpha"},
	)

	objs := ListObjects(c, "/Script/Engine", CategoryClass)

	names := make([]string, len(objs))
	for i, o := range objs {
		names[i] = o.Name
	}
	assert.Equal(t, []string{"Actor", "Alpha", "Zebra"}, names)
}

func TestGlobalSearchObjectMode(t *testing.T) {
	c := seededCache(
		catalog.Record{Address: 0x20000, Name: "Actor", TypeName: "Class", FullName: "/Script/Engine.Actor"},
		catalog.Record{Address: 0x21000, Name: "ActorComponent", TypeName: "Class", FullName: "/Script/Engine.ActorComponent"},
		catalog.Record{Address: 0x22000, Name: "Pawn", TypeName: "Class", FullName: "/Script/Engine.Pawn"},
	)
	s := &Surface{Cache: c}

	results := s.GlobalSearch("actor", ModeObject, 0)

	assert.Len(t, results, 2)
	assert.Equal(t, "Actor", results[0].Name)
	assert.Equal(t, "ActorComponent", results[1].Name)
}

func TestGlobalSearchSortsByKindThenName(t *testing.T) {
	c := seededCache(
		catalog.Record{Address: 0x20000, Name: "MoveFn", TypeName: "Function", FullName: "/Script/Engine.A:MoveFn"},
		catalog.Record{Address: 0x21000, Name: "MoveEnum", TypeName: "Enum", FullName: "/Script/Engine.MoveEnum"},
		catalog.Record{Address: 0x22000, Name: "MoveStruct", TypeName: "ScriptStruct", FullName: "/Script/Engine.MoveStruct"},
		catalog.Record{Address: 0x23000, Name: "MoveClass", TypeName: "Class", FullName: "/Script/Engine.MoveClass"},
	)
	s := &Surface{Cache: c}

	results := s.GlobalSearch("move", ModeObject, 0)

	kinds := make([]Category, len(results))
	for i, r := range results {
		kinds[i] = r.Kind
	}
	assert.Equal(t, []Category{CategoryClass, CategoryStruct, CategoryEnum, CategoryFunction}, kinds)
}

func TestGlobalSearchCapsResults(t *testing.T) {
	recs := make([]catalog.Record, 0, 600)
	for i := 0; i < 600; i++ {
		recs = append(recs, catalog.Record{
			Address:  core.Address(0x20000 + i*0x100),
			Name:     "Hit" + string(rune('A'+i%26)) + string(rune('a'+i/26)),
			TypeName: "Class",
			FullName: "/Script/Engine.Hit",
		})
	}
	s := &Surface{Cache: seededCache(recs...)}

	results := s.GlobalSearch("hit", ModeObject, 0)
	assert.Len(t, results, 500)
}
