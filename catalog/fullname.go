// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"strings"

	"ueinspect/core"
)

// composeFullName walks rec's outer chain, concatenating names from
// the outermost reachable ancestor down to rec itself. It is iterative and cycle-safe: visited is seeded with
// rec's own address, so an outer chain that loops back on itself
// simply stops descending rather than recursing forever. An outer
// that resolves to a sentinel name stops the walk: sentinel-named
// records are never used as parents. Missing
// ancestors are resolved shallowly via resolveShallow, which never
// itself walks an outer chain, keeping this the only place
// composition happens.
//
// The separator between a child and its outer is ':' when the
// child's typeName names a Property or Function and the outer's
// typeName does not, '.' otherwise.
// Composition happens whenever outer != addr regardless of the
// child's own typeName: a Property-typed leaf (e.g. an
// ObjectProperty field) still gets a composed FullName under its
// owning struct.
func (c *Cache) composeFullName(rec Record, depth int) string {
	type link struct {
		name     string
		typeName string
	}

	links := []link{{name: rec.Name, typeName: rec.TypeName}}
	visited := map[core.Address]struct{}{rec.Address: {}}

	cur := rec
	for i := 0; i < maxConcat-1; i++ {
		if !core.Plausible(cur.Outer) {
			break
		}
		if _, seen := visited[cur.Outer]; seen {
			break
		}
		visited[cur.Outer] = struct{}{}

		outer, ok := c.resolveShallow(cur.Outer)
		if !ok || nameIsSentinel(outer.Name) {
			break
		}
		links = append(links, link{name: outer.Name, typeName: outer.TypeName})
		if !core.Plausible(outer.Outer) || outer.Outer == outer.Address {
			break
		}
		cur = outer
	}

	var b strings.Builder
	for i := len(links) - 1; i >= 0; i-- {
		b.WriteString(links[i].name)
		if i > 0 {
			if isPropertyOrFunction(links[i-1].typeName) && !isPropertyOrFunction(links[i].typeName) {
				b.WriteByte(':')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func isPropertyOrFunction(typeName string) bool {
	return strings.Contains(typeName, "Property") || strings.Contains(typeName, "Function")
}
