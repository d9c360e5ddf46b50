// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"ueinspect/catalog"
	"ueinspect/memory"
	"ueinspect/namepool"
	"ueinspect/offsets"
	"ueinspect/process"
)

// Surface holds everything the query operations that need live memory
// access (as opposed to the cache-only listPackages/listObjects)
// require: a reader for the target, the interned-string pool, the
// active offset profile, the object cache, and the process handle
// needed to re-enumerate regions for findInstances.
type Surface struct {
	Handle  *process.Handle
	Reader  *memory.Reader
	Pool    *namepool.Pool
	Cache   *catalog.Cache
	Profile offsets.Profile
	Workers int
}

// NewSurface builds a Surface for CATALOG_READY-stage queries.
func NewSurface(h *process.Handle, r *memory.Reader, pool *namepool.Pool, cache *catalog.Cache, profile offsets.Profile, workers int) *Surface {
	return &Surface{Handle: h, Reader: r, Pool: pool, Cache: cache, Profile: profile, Workers: workers}
}
