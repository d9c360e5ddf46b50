// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session owns the per-target state machine:
// IDLE -> ATTACHED -> ANCHORED -> NAMES_PARSED -> CATALOG_READY, with
// re-parse clearing the catalog back to ANCHORED. It orchestrates
// C1-C8, wiring a version-selected OffsetProfile on attach.
package session

import (
	"fmt"
	"sync"

	"ueinspect/anchor"
	"ueinspect/catalog"
	"ueinspect/core"
	"ueinspect/memory"
	"ueinspect/namepool"
	"ueinspect/objectarray"
	"ueinspect/offsets"
	"ueinspect/process"
	"ueinspect/progress"
	"ueinspect/query"
	"ueinspect/uerrors"
)

// State is one stage of the session lifecycle.
type State int

const (
	Idle State = iota
	Attached
	Anchored
	NamesParsed
	CatalogReady
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Attached:
		return "ATTACHED"
	case Anchored:
		return "ANCHORED"
	case NamesParsed:
		return "NAMES_PARSED"
	case CatalogReady:
		return "CATALOG_READY"
	default:
		return "UNKNOWN"
	}
}

// Session is the scoped owner of the target's OS handle and every
// C1-C8 component built on top of it.
type Session struct {
	mu    sync.Mutex
	state State

	Handle   *process.Handle
	Reader   *memory.Reader
	Profile  offsets.Profile
	Anchors  anchor.Set
	Sources  map[anchor.Name]anchor.Candidate
	ElemSize int64

	// ProfileName, when non-empty, overrides version-based offset
	// profile selection on Attach.
	ProfileName string

	Pool    *namepool.Pool
	Cache   *catalog.Cache
	Surface *query.Surface

	Workers int
}

// New creates an idle Session. workers bounds parallelism for the
// scanner/name-pool/object-array worker pools.
func New(workers int) *Session {
	if workers <= 0 {
		workers = 4
	}
	return &Session{
		state:   Idle,
		Workers: workers,
		Sources: make(map[anchor.Name]anchor.Candidate),
	}
}

// State returns the session's current stage, under lock.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Attach opens pid, resolves its version, and selects the matching
// OffsetProfile; ProfileName, when set, overrides that selection. A
// failed version query is non-fatal and simply falls back to
// offsets.Default.
func (s *Session) Attach(pid uint32, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := process.Attach(pid, name)
	if err != nil {
		return "", err
	}

	profile := offsets.Default
	if s.ProfileName != "" {
		p, ok := offsets.ByName(s.ProfileName)
		if !ok {
			h.Release()
			return "", fmt.Errorf("unknown offset profile %q (have %v)", s.ProfileName, offsets.Names())
		}
		profile = p
	} else if version, verr := process.QueryVersion(h); verr == nil {
		profile = offsets.Select(version)
	}

	s.Handle = h
	s.Reader = memory.New(h)
	s.Profile = profile
	s.Cache = catalog.New(s.Reader, nil, profile)
	s.state = Attached
	return fmt.Sprintf("attached to %s (pid %d)", name, pid), nil
}

// Release closes the target handle exactly once, if attached.
func (s *Session) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Handle == nil {
		return nil
	}
	err := s.Handle.Release()
	s.Handle = nil
	s.state = Idle
	return err
}

// resolver builds an anchor.Resolver over the current handle/reader.
func (s *Session) resolver() *anchor.Resolver {
	return &anchor.Resolver{Handle: s.Handle, Reader: s.Reader, Workers: s.Workers}
}

// ResolveAnchor resolves a single named anchor, advancing to ANCHORED
// on the first successful resolution of any anchor (a session may
// resolve them individually, one command per anchor).
func (s *Session) ResolveAnchor(name anchor.Name) (core.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state < Attached {
		return 0, uerrors.ErrNotAttached
	}

	addr, cand, err := s.resolver().Resolve(anchor.Candidates[name])
	if err != nil {
		return 0, err
	}
	s.Sources[name] = cand
	switch name {
	case anchor.NamePoolBase:
		s.Anchors.NamePoolBase = addr
		s.Pool = namepool.New(s.Reader, addr)
	case anchor.ObjectArrayBase:
		s.Anchors.ObjectArrayBase = addr
		s.ElemSize = s.resolver().DetectElementSize(addr)
	case anchor.WorldBase:
		s.Anchors.WorldBase = addr
	}
	if s.state < Anchored {
		s.state = Anchored
	}
	return addr, nil
}

// ParseNames drives C5's pool parse; requires ANCHORED (NamePoolBase
// resolved) and advances to NAMES_PARSED.
func (s *Session) ParseNames(sink progress.Sink) (int, error) {
	s.mu.Lock()
	pool := s.Pool
	state := s.state
	s.mu.Unlock()

	if state < Anchored || pool == nil {
		return 0, uerrors.NotYetParsed("NamePool")
	}
	if err := pool.DiscoverOffset(); err != nil {
		return 0, err
	}
	blocks, err := pool.Parse(s.Workers, sink)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.Cache = catalog.New(s.Reader, s.Pool, s.Profile)
	s.state = NamesParsed
	s.mu.Unlock()
	return blocks, nil
}

// ParseObjects drives C6's walk; requires NAMES_PARSED (or later, for
// a re-parse) and advances to (or restores) CATALOG_READY, clearing
// the catalog first.
func (s *Session) ParseObjects(sink progress.Sink) (int, error) {
	s.mu.Lock()
	if s.state < NamesParsed {
		s.mu.Unlock()
		return 0, uerrors.NotYetParsed("Names")
	}
	s.Cache.Reset()
	s.state = Anchored // re-parse clears the catalog and drops back to ANCHORED while rebuilding
	walker := &objectarray.Walker{
		Reader:   s.Reader,
		Cache:    s.Cache,
		Base:     s.Anchors.ObjectArrayBase,
		ElemSize: s.ElemSize,
		Workers:  s.Workers,
	}
	s.Surface = query.NewSurface(s.Handle, s.Reader, s.Pool, s.Cache, s.Profile, s.Workers)
	s.mu.Unlock()

	count, err := walker.Walk(sink)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.state = CatalogReady
	s.mu.Unlock()
	return count, nil
}

// RequireCatalogReady is the gate every C8 query applies.
func (s *Session) RequireCatalogReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state < CatalogReady {
		return uerrors.NotYetParsed("Objects")
	}
	return nil
}

// RequireKnownClass additionally gates inspectInstance: the class
// address must already exist in byAddress.
func (s *Session) RequireKnownClass(classAddr core.Address) error {
	if err := s.RequireCatalogReady(); err != nil {
		return err
	}
	if _, ok := s.Cache.Lookup(classAddr); !ok {
		return uerrors.ErrCatalogMiss
	}
	return nil
}
