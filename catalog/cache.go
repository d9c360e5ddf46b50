// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"strings"
	"sync"
	"sync/atomic"

	"ueinspect/core"
	"ueinspect/memory"
	"ueinspect/namepool"
	"ueinspect/offsets"
)

// defaultMaxDepth bounds recursion in TrySave.
const defaultMaxDepth = 5

// maxConcat bounds how many names are concatenated into a FullName
// while chasing the outer chain.
const maxConcat = 10

// maxTypeNameLen rejects any record whose typeName is implausibly
// long.
const maxTypeNameLen = 100

// Cache is the two-tier concurrent object cache: byAddress is
// authoritative, byId only covers non-property objects with a
// plausible id. Both maps are concurrent (lock-free reads, fine-
// grained locked writes); sync.Map gives us exactly that shape without
// a hand-rolled sharded map.
type Cache struct {
	reader   *memory.Reader
	pool     *namepool.Pool
	profile  offsets.Profile
	maxDepth int

	byAddress sync.Map // core.Address -> Record
	byId      sync.Map // int32 -> core.Address
	count     atomic.Int64
}

// New creates an empty Cache over reader/pool using profile to
// interpret raw object bytes.
func New(reader *memory.Reader, pool *namepool.Pool, profile offsets.Profile) *Cache {
	return &Cache{reader: reader, pool: pool, profile: profile, maxDepth: defaultMaxDepth}
}

// Reset clears byAddress, byId, and count atomically before a new
// parse begins.
func (c *Cache) Reset() {
	c.byAddress = sync.Map{}
	c.byId = sync.Map{}
	c.count.Store(0)
}

// Count returns the number of fully-resolved (non-sentinel-named)
// records currently cached.
func (c *Cache) Count() int64 {
	return c.count.Load()
}

// Insert stores a fully-formed record directly, with the same
// byId/count bookkeeping TrySave applies. It is the path for callers
// that already hold a parsed record and need it in the catalog without
// a live read.
func (c *Cache) Insert(rec Record) {
	if _, loaded := c.byAddress.LoadOrStore(rec.Address, rec); loaded {
		c.byAddress.Store(rec.Address, rec)
		return
	}
	if rec.ID > 0 && !strings.Contains(rec.TypeName, "Property") {
		c.byId.Store(rec.ID, rec.Address)
	}
	if !nameIsSentinel(rec.Name) {
		c.count.Add(1)
	}
}

// Lookup returns the cached record for addr, if any, without
// attempting to resolve it.
func (c *Cache) Lookup(addr core.Address) (Record, bool) {
	v, ok := c.byAddress.Load(addr)
	if !ok {
		return Record{}, false
	}
	return v.(Record), true
}

// LookupID returns the address cached for a non-property object id.
func (c *Cache) LookupID(id int32) (core.Address, bool) {
	v, ok := c.byId.Load(id)
	if !ok {
		return 0, false
	}
	return v.(core.Address), true
}

// Range iterates every cached record. f returning false stops
// iteration early.
func (c *Cache) Range(f func(Record) bool) {
	c.byAddress.Range(func(_, v any) bool {
		return f(v.(Record))
	})
}

// TrySave is the central routine of C7.
func (c *Cache) TrySave(addr core.Address) (Record, bool) {
	return c.trySave(addr, 0)
}

func (c *Cache) trySave(addr core.Address, depth int) (Record, bool) {
	if !core.Plausible(addr) || depth >= c.maxDepth {
		return Record{}, false
	}
	if _, ok := c.reader.ReadPtr(addr); !ok {
		return Record{}, false
	}
	if cached, ok := c.Lookup(addr); ok {
		return cached, true
	}

	rec, ok := c.parseBasicAt(addr, depth)
	if !ok {
		return Record{}, false
	}
	if rec.TypeName == "" || len(rec.TypeName) > maxTypeNameLen {
		return Record{}, false
	}
	if rec.Name == "" {
		rec.Name = "InvalidName"
	}
	rec.FullName = rec.Name

	// LoadOrStore makes the partial record visible before the outer
	// walk below and elects exactly one inserter per address, so two
	// workers racing on the same object never double-count it.
	if existing, loaded := c.byAddress.LoadOrStore(addr, rec); loaded {
		return existing.(Record), true
	}
	if rec.ID > 0 && !strings.Contains(rec.TypeName, "Property") {
		c.byId.Store(rec.ID, addr)
	}

	if nameIsSentinel(rec.Name) {
		// Returned to the caller, but not used as a parent for
		// outer-chain traversal beyond its own row, and
		// excluded from Count.
		return rec, true
	}

	if rec.Outer != addr && core.Plausible(rec.Outer) {
		rec.FullName = c.composeFullName(rec, depth)
		c.byAddress.Store(addr, rec)
	}
	c.count.Add(1)
	return rec, true
}

func (c *Cache) parseBasicAt(addr core.Address, depth int) (Record, bool) {
	_ = depth // kept for symmetry with trySave; parseBasic itself never recurses.
	return parseBasic(c.reader, c.pool, c.profile, addr)
}

// resolveShallow consults the cache first; if absent, it computes
// basic info only (no nested outer walk) and caches a shallow record,
// the way the outer-chain composition algorithm is specified to
// resolve missing ancestors cheaply.
func (c *Cache) resolveShallow(addr core.Address) (Record, bool) {
	if cached, ok := c.Lookup(addr); ok {
		return cached, true
	}
	if !core.Plausible(addr) {
		return Record{}, false
	}
	if _, ok := c.reader.ReadPtr(addr); !ok {
		return Record{}, false
	}
	rec, ok := parseBasic(c.reader, c.pool, c.profile, addr)
	if !ok {
		return Record{}, false
	}
	if rec.TypeName == "" || len(rec.TypeName) > maxTypeNameLen {
		return Record{}, false
	}
	if rec.Name == "" {
		rec.Name = "InvalidName"
	}
	rec.FullName = rec.Name
	actual, loaded := c.byAddress.LoadOrStore(addr, rec)
	if !loaded && !nameIsSentinel(rec.Name) {
		c.count.Add(1)
	}
	return actual.(Record), true
}
