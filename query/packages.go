// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query implements C8 (Query Surface): stateless functions
// over a catalog.Cache and the target process, servicing package
// listing, object listing, detail expansion, search, and instance
// discovery.
package query

import (
	"sort"
	"strings"

	"ueinspect/catalog"
)

// acceptedPackagePrefixes are the only package roots listPackages and
// listObjects recognise.
var acceptedPackagePrefixes = []string{"/Script/", "/Engine/", "/Game/"}

// ExtractPackage returns the substring of fullName from the first '/'
// to the next '.' or ':' found after the *second* '/' (any further '/'
// stays part of the package path), the whole rest of fullName when no
// such terminator follows, or "" if fullName has fewer than two '/'.
func ExtractPackage(fullName string) string {
	first := strings.IndexByte(fullName, '/')
	if first < 0 {
		return ""
	}
	second := strings.IndexByte(fullName[first+1:], '/')
	if second < 0 {
		return ""
	}
	second += first + 1

	rest := fullName[second+1:]
	end := strings.IndexAny(rest, ".:")
	if end < 0 {
		return fullName[first:]
	}
	return fullName[first : second+1+end]
}

func isAcceptedPackage(pkg string) bool {
	for _, p := range acceptedPackagePrefixes {
		if strings.HasPrefix(pkg, p) {
			return true
		}
	}
	return false
}

// PackageSummary is one row of listPackages. ClassCount/StructCount/
// EnumCount/FunctionCount are additive to the bare {name, count}.
type PackageSummary struct {
	Name          string
	Count         int
	ClassCount    int
	StructCount   int
	EnumCount     int
	FunctionCount int
}

// ListPackages groups every cached object by its extracted package,
// counting totals and per-category breakdowns, sorted by name
// ascending.
func ListPackages(cache *catalog.Cache) []PackageSummary {
	byName := map[string]*PackageSummary{}
	cache.Range(func(rec catalog.Record) bool {
		pkg := ExtractPackage(rec.FullName)
		if pkg == "" || !isAcceptedPackage(pkg) {
			return true
		}
		s, ok := byName[pkg]
		if !ok {
			s = &PackageSummary{Name: pkg}
			byName[pkg] = s
		}
		s.Count++
		switch categoryOf(rec.TypeName) {
		case CategoryClass:
			s.ClassCount++
		case CategoryStruct:
			s.StructCount++
		case CategoryEnum:
			s.EnumCount++
		case CategoryFunction:
			s.FunctionCount++
		}
		return true
	})

	out := make([]PackageSummary, 0, len(byName))
	for _, s := range byName {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Category is one of the four recognised object kinds.
type Category int

const (
	CategoryNone Category = iota
	CategoryClass
	CategoryStruct
	CategoryEnum
	CategoryFunction
)

// categoryOf classifies typeName by its matching rules:
// Class = contains "Class" and not "Function"; Struct analogous; Enum
// = contains "Enum"; Function = contains "Function".
func categoryOf(typeName string) Category {
	switch {
	case strings.Contains(typeName, "Function"):
		return CategoryFunction
	case strings.Contains(typeName, "Class"):
		return CategoryClass
	case strings.Contains(typeName, "Struct"):
		return CategoryStruct
	case strings.Contains(typeName, "Enum"):
		return CategoryEnum
	default:
		return CategoryNone
	}
}

func categoryName(c Category) string {
	switch c {
	case CategoryClass:
		return "Class"
	case CategoryStruct:
		return "Struct"
	case CategoryEnum:
		return "Enum"
	case CategoryFunction:
		return "Function"
	default:
		return ""
	}
}

// ParseCategory maps a category name from the command surface to a
// Category, the zero value on no match.
func ParseCategory(name string) Category {
	switch name {
	case "Class":
		return CategoryClass
	case "Struct":
		return CategoryStruct
	case "Enum":
		return CategoryEnum
	case "Function":
		return CategoryFunction
	default:
		return CategoryNone
	}
}
