// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"sort"
	"strings"

	"ueinspect/catalog"
	"ueinspect/core"
)

// SearchMode selects globalSearch's matching scope.
type SearchMode int

const (
	ModeObject SearchMode = iota
	ModeMember
)

const globalSearchLimit = 500
const memberSearchCapPerClass = 2000

// SearchResult is one globalSearch hit.
type SearchResult struct {
	Address  core.Address
	Name     string
	FullName string
	TypeName string
	Package  string
	Kind     Category
}

// GlobalSearch case-insensitively substring-matches query against
// names. In ModeObject every cached record is a candidate; in
// ModeMember each class/struct's member chain is walked (capped at
// 2000 members per class) and matching members become results.
// Results are sorted by (kind: Class<Struct<Enum<Function), then name,
// then package, case-insensitively, and capped at 500.
func (s *Surface) GlobalSearch(query string, mode SearchMode, limit int) []SearchResult {
	if limit <= 0 {
		limit = globalSearchLimit
	}
	needle := strings.ToLower(query)

	var results []SearchResult
	switch mode {
	case ModeObject:
		s.Cache.Range(func(rec catalog.Record) bool {
			if strings.Contains(strings.ToLower(rec.Name), needle) {
				results = append(results, toSearchResult(rec))
			}
			return true
		})

	case ModeMember:
		s.Cache.Range(func(rec catalog.Record) bool {
			kind := categoryOf(rec.TypeName)
			if kind != CategoryClass && kind != CategoryStruct {
				return true
			}
			for _, m := range s.walkMembers(rec.Address, memberSearchCapPerClass) {
				if strings.Contains(strings.ToLower(m.Name), needle) {
					results = append(results, toSearchResult(m))
				}
			}
			return true
		})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return strings.ToLower(a.Package) < strings.ToLower(b.Package)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// ParseSearchMode maps a mode name from the command surface to a
// SearchMode, defaulting to ModeObject on no match.
func ParseSearchMode(name string) SearchMode {
	if name == "Member" {
		return ModeMember
	}
	return ModeObject
}

func toSearchResult(rec catalog.Record) SearchResult {
	return SearchResult{
		Address:  rec.Address,
		Name:     rec.Name,
		FullName: rec.FullName,
		TypeName: rec.TypeName,
		Package:  ExtractPackage(rec.FullName),
		Kind:     categoryOf(rec.TypeName),
	}
}
