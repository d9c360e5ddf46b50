// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"sort"

	"ueinspect/catalog"
	"ueinspect/core"
)

// ObjectSummary is one row of listObjects.
type ObjectSummary struct {
	Address  core.Address
	Name     string
	FullName string
	TypeName string
}

// ListObjects filters the cache by extracted package and category,
// sorted by name ascending.
func ListObjects(cache *catalog.Cache, pkg string, category Category) []ObjectSummary {
	var out []ObjectSummary
	cache.Range(func(rec catalog.Record) bool {
		if ExtractPackage(rec.FullName) != pkg {
			return true
		}
		if categoryOf(rec.TypeName) != category {
			return true
		}
		out = append(out, ObjectSummary{
			Address:  rec.Address,
			Name:     rec.Name,
			FullName: rec.FullName,
			TypeName: rec.TypeName,
		})
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
