// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objectarray implements C6 (Object Array Walker): traversal
// of the two-level chunked pointer array rooted at ObjectArrayBase,
// feeding every discovered object address into the catalog cache.
package objectarray

import (
	"log"
	"sync"
	"sync/atomic"

	"ueinspect/catalog"
	"ueinspect/core"
	"ueinspect/memory"
	"ueinspect/progress"
)

// l1Stride is the byte stride between consecutive L1 chunk pointers.
const l1Stride = 8

// l1Limit bounds the L1 directory probe: slots are read at
// ObjectArrayBase+0 up to, but not including, ObjectArrayBase+l1Limit.
const l1Limit = 0x1000

// batchEntries is the number of L2 entries covered by one batch.
const batchEntries = 0x20

// softIterationCap bounds how many batches a single L1 chunk can
// split into, guarding against a corrupt region size producing an
// unbounded amount of work.
const softIterationCap = 0x1000

// hardObjectCap is the global ceiling on objects admitted to the
// catalog across a single walk.
const hardObjectCap = 2_000_000

// progressEveryBatches is the emission cadence during the walk.
const progressEveryBatches = 5

// Walker walks the object array rooted at Base, handing every
// plausible object address it finds to Cache.TrySave.
type Walker struct {
	Reader   *memory.Reader
	Cache    *catalog.Cache
	Base     core.Address
	ElemSize int64
	Workers  int
}

// batch is one unit of work: entries [index, index+batchEntries) of
// the L2 chunk at l2.
type batch struct {
	l2    core.Address
	index int64
}

// Walk performs the full two-level walk. L1 slots live at Base+i*8
// for i*8 < 0x1000; each dereferences to an L2 chunk base. For every
// chunk, the OS region size at the L1 slot decides how many batches
// the chunk splits into, and the batches are fanned out over a worker
// pool. Within a batch, entries are read one by one: a failed read of
// the entry pointer itself skips that slot, while an implausible or
// unreadable dereferenced object ends the batch, consistent with the
// array's end-of-chunk sentinel.
func (w *Walker) Walk(sink progress.Sink) (int, error) {
	stride := w.ElemSize
	if stride <= 0 {
		stride = 0x18
	}
	batches := w.planBatches(stride)

	emitter := progress.NewEmitter(sink)
	defer emitter.Close()

	total := uint64(len(batches)) * batchEntries
	var done, found, skipped atomic.Uint64
	dynamicTotal := atomic.Uint64{}
	dynamicTotal.Store(1)
	batchesDone := atomic.Uint64{}

	jobs := make(chan batch)
	var wg sync.WaitGroup
	workers := w.Workers
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				n, skips := w.walkBatch(b, stride)
				found.Add(uint64(n))
				skipped.Add(uint64(skips))
				done.Add(batchEntries)
				bd := batchesDone.Add(1)
				if bd%progressEveryBatches == 0 {
					progress.DoubleWhenMet(&dynamicTotal, found.Load())
					emitter.Emit(progress.Event{
						Done:         done.Load(),
						Total:        total,
						Count:        found.Load(),
						DynamicTotal: dynamicTotal.Load(),
					})
				}
			}
		}()
	}
	for _, b := range batches {
		if w.Cache.Count() >= hardObjectCap {
			break
		}
		jobs <- b
	}
	close(jobs)
	wg.Wait()

	emitter.Emit(progress.Event{
		Done:         done.Load(),
		Total:        done.Load(),
		Count:        found.Load(),
		DynamicTotal: found.Load(),
	})
	if n := skipped.Load(); n > 0 {
		log.Printf("objectarray: skipped %d unreadable entry slots", n)
	}
	return int(found.Load()), nil
}

// planBatches reads the L1 directory and splits every chunk into its
// batches. The split count is the OS region size at the L1 slot
// divided by batchSize, rounded to the nearest integer, and is clamped
// to [1, softIterationCap].
func (w *Walker) planBatches(stride int64) []batch {
	batchSize := stride * batchEntries
	var batches []batch
	for off := int64(0); off < l1Limit; off += l1Stride {
		l1 := w.Base + core.Address(off)
		l2, ok := w.Reader.ReadPtr(l1)
		if !ok || !core.Plausible(l2) {
			continue
		}
		splits := int64(1)
		if regionSize, err := w.Reader.RegionSize(l1); err == nil && regionSize > 0 {
			splits = (int64(regionSize) + batchSize/2) / batchSize
		}
		if splits < 1 {
			splits = 1
		}
		if splits > softIterationCap {
			splits = softIterationCap
		}
		for b := int64(0); b < splits; b++ {
			batches = append(batches, batch{l2: l2, index: b * batchEntries})
		}
	}
	return batches
}

// walkBatch processes entries [b.index, b.index+batchEntries) of one
// chunk, admitting every plausible object address to the cache. It
// returns how many objects it saved and how many unreadable slots it
// skipped over.
func (w *Walker) walkBatch(b batch, stride int64) (found, skipped int) {
	for i := int64(0); i < batchEntries; i++ {
		entryAddr := b.l2 + core.Address((b.index+i)*stride)
		obj, ok := w.Reader.ReadPtr(entryAddr)
		if !ok {
			// The slot itself could not be read; skip it, the
			// surrounding entries may still be live.
			skipped++
			continue
		}
		if !core.Plausible(obj) {
			return found, skipped
		}
		if _, ok := w.Cache.TrySave(obj); !ok {
			// TrySave rejects an object that is not plausible,
			// unreadable, or whose basic info or type name does
			// not decode; any of these marks the logical end of
			// the batch.
			return found, skipped
		}
		found++
		if w.Cache.Count() >= hardObjectCap {
			return found, skipped
		}
	}
	return found, skipped
}
