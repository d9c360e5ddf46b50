// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package namepool implements C5 (Interned String Pool): decoding the
// block/offset-encoded name ids, dynamic discovery of the intra-entry
// string offset S, and the parallel pool parse that powers progress
// events and the catalog's id-to-name resolution.
package namepool

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"ueinspect/core"
	"ueinspect/memory"
	"ueinspect/progress"
	"ueinspect/uerrors"
)

// sentinel marks the intra-entry string offset S as not yet
// discovered. It is latched exactly once via a single CAS from
// sentinel (MAX) to its discovered value; once set it never changes.
const sentinel = ^int64(0) >> 1 // math.MaxInt64, spelled without importing math for a one-off constant

// blockPointerStride is the byte width of one entry in the pool's
// block-pointer directory.
const blockPointerStride = 8

// maxBlocks bounds the block-pointer directory scan.
const maxBlocks = 500

// probeWindow is the size of the candidate-offset search space for S.
const probeWindow = 0x20

// Pool decodes the target's interned-string arena. A Pool is shared as
// a pointer to an (after discovery) immutable struct with an atomic S.
type Pool struct {
	reader *memory.Reader
	base   core.Address

	s atomic.Int64
}

// New creates a Pool rooted at base. S starts uninitialised.
func New(reader *memory.Reader, base core.Address) *Pool {
	p := &Pool{reader: reader, base: base}
	p.s.Store(sentinel)
	return p
}

// DiscoverOffset probes ids 1..6 — a fixed window expected to contain
// the literal "ByteProperty" — for the intra-entry string offset S,
// and commits the first one that decodes correctly.
func (p *Pool) DiscoverOffset() error {
	blockPtr, ok := p.reader.ReadPtr(p.base + 0x10)
	if !ok || !core.Plausible(blockPtr) {
		return fmt.Errorf("%w: block 0 pointer", uerrors.ErrReadFailed)
	}
	for id := int32(1); id <= 6; id++ {
		entry := blockPtr + core.Address(id)*2
		header, ok := readUint16(p.reader, entry)
		if !ok {
			continue
		}
		length := int(header >> 6)
		if length < 11 || length > 14 {
			continue
		}
		for s := int64(2); s < probeWindow; s++ {
			payload, err := p.reader.ReadBytes(entry+core.Address(s), length)
			if err != nil {
				continue
			}
			if strings.Contains(string(payload), "ByteProperty") {
				p.s.CompareAndSwap(sentinel, s)
				return nil
			}
		}
	}
	return fmt.Errorf("%w: ByteProperty probe exhausted", uerrors.ErrNamePoolUninitialised)
}

func readUint16(r *memory.Reader, a core.Address) (uint16, bool) {
	buf, err := r.ReadBytes(a, 2)
	if err != nil {
		return 0, false
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, true
}

// GetName decodes the record for id. Deterministic once S is
// committed; returns ErrNamePoolUninitialised beforehand.
func (p *Pool) GetName(id int32) (string, error) {
	s := p.s.Load()
	if s == sentinel {
		return "", uerrors.ErrNamePoolUninitialised
	}

	block := int64(uint32(id) >> 16)
	off := int64(uint32(id) & 0xFFFF)

	blockPtr, ok := p.reader.ReadPtr(p.base + 0x10 + core.Address(block*blockPointerStride))
	if !ok || !core.Plausible(blockPtr) {
		return "", fmt.Errorf("%w: block %d pointer for id %d", uerrors.ErrReadFailed, block, id)
	}

	entry := blockPtr + core.Address(off)*2
	header, ok := readUint16(p.reader, entry)
	if !ok {
		return "", fmt.Errorf("%w: header for id %d", uerrors.ErrReadFailed, id)
	}
	length := int(header >> 6)
	if length < 1 || length > 200 {
		return "", fmt.Errorf("%w: invalid length %d for id %d", uerrors.ErrInvalidAddress, length, id)
	}

	payload, err := p.reader.ReadBytes(entry+core.Address(s), length)
	if err != nil {
		return "", fmt.Errorf("%w: payload for id %d: %v", uerrors.ErrReadFailed, id, err)
	}
	return string(payload), nil
}

// blockCount counts non-null block pointers starting at base+0x10, in
// 8-byte strides, stopping after 3 consecutive nulls or maxBlocks
// entries.
func (p *Pool) blockCount() int {
	consecutiveNulls := 0
	count := 0
	for i := 0; i < maxBlocks; i++ {
		ptr, ok := p.reader.ReadPtr(p.base + 0x10 + core.Address(int64(i)*blockPointerStride))
		if !ok || ptr == 0 {
			consecutiveNulls++
			if consecutiveNulls >= 3 {
				break
			}
			continue
		}
		consecutiveNulls = 0
		count = i + 1
	}
	return count
}

const batchSize = 0x200
const progressEveryBatches = 10

// Parse enumerates every candidate id across the discovered block
// directory, calling GetName for each and counting successes. S must
// already be committed via DiscoverOffset. Progress is emitted at most
// every 10 batches; the return value is the block count, which is
// what the parseNames command reports.
func (p *Pool) Parse(workers int, sink progress.Sink) (int, error) {
	if p.s.Load() == sentinel {
		return 0, uerrors.ErrNamePoolUninitialised
	}

	blocks := p.blockCount()
	total := uint64(blocks) << 16
	var done, names atomic.Uint64
	dynamicTotal := atomic.Uint64{}
	dynamicTotal.Store(1)

	emitter := progress.NewEmitter(sink)
	defer emitter.Close()

	type batch struct{ start, end uint64 }
	var batches []batch
	for start := uint64(0); start < total; start += batchSize {
		end := start + batchSize
		if end > total {
			end = total
		}
		batches = append(batches, batch{start, end})
	}

	jobs := make(chan batch)
	var wg sync.WaitGroup
	if workers <= 0 {
		workers = 1
	}
	batchesDone := atomic.Uint64{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				localNames := uint64(0)
				for id := b.start; id < b.end; id++ {
					if _, err := p.GetName(int32(id)); err == nil {
						localNames++
					}
				}
				names.Add(localNames)
				done.Add(b.end - b.start)
				n := batchesDone.Add(1)
				if n%progressEveryBatches == 0 {
					progress.DoubleWhenMet(&dynamicTotal, names.Load())
					emitter.Emit(progress.Event{
						Done:         done.Load(),
						Total:        total,
						Count:        names.Load(),
						DynamicTotal: dynamicTotal.Load(),
					})
				}
			}
		}()
	}
	for _, b := range batches {
		jobs <- b
	}
	close(jobs)
	wg.Wait()

	emitter.Emit(progress.Event{
		Done:         total,
		Total:        total,
		Count:        names.Load(),
		DynamicTotal: names.Load(),
	})
	return blocks, nil
}
