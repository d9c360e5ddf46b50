// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package progress defines the {done, total, count, dynamicTotal}
// event shape shared between names-progress and objects-progress, and
// an Emitter that never blocks the worker producing events.
package progress

import "sync/atomic"

// Event reports progress of a long-running parse. Consumers treat
// total == done && dynamicTotal == count as "completed".
type Event struct {
	Done         uint64
	Total        uint64
	Count        uint64
	DynamicTotal uint64
}

// Finished reports whether e represents the terminal event of a parse.
func (e Event) Finished() bool {
	return e.Total == e.Done && e.DynamicTotal == e.Count
}

// DoubleWhenMet doubles dynamicTotal when count has caught up with
// it, so a progress UI sees forward motion without knowing the true
// terminal count. Safe for concurrent use from parse workers.
func DoubleWhenMet(dynamicTotal *atomic.Uint64, count uint64) {
	for {
		cur := dynamicTotal.Load()
		if count < cur {
			return
		}
		if dynamicTotal.CompareAndSwap(cur, cur*2) {
			return
		}
	}
}

// Sink receives Events. A nil Sink is valid and discards events.
type Sink func(Event)

// Emitter buffers one event at a time and drops events under
// backpressure rather than blocking the producing worker: emission
// never blocks.
type Emitter struct {
	sink Sink
	ch   chan Event
}

// NewEmitter starts a background goroutine that forwards events to
// sink as they arrive. Emit never blocks: if the sink is still busy
// with the previous event, the new one replaces whatever is queued.
func NewEmitter(sink Sink) *Emitter {
	e := &Emitter{sink: sink, ch: make(chan Event, 1)}
	if sink != nil {
		go e.run()
	}
	return e
}

func (e *Emitter) run() {
	for ev := range e.ch {
		e.sink(ev)
	}
}

// Emit enqueues ev for delivery, replacing a pending, not-yet-delivered
// event rather than blocking.
func (e *Emitter) Emit(ev Event) {
	if e.sink == nil {
		return
	}
	select {
	case e.ch <- ev:
	default:
		select {
		case <-e.ch:
		default:
		}
		select {
		case e.ch <- ev:
		default:
		}
	}
}

// Close stops the forwarding goroutine.
func (e *Emitter) Close() {
	if e.sink != nil {
		close(e.ch)
	}
}
