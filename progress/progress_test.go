// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"testing"
	"time"
)

func TestEventFinished(t *testing.T) {
	cases := []struct {
		ev   Event
		want bool
	}{
		{Event{Done: 10, Total: 10, Count: 5, DynamicTotal: 5}, true},
		{Event{Done: 9, Total: 10, Count: 5, DynamicTotal: 5}, false},
		{Event{Done: 10, Total: 10, Count: 4, DynamicTotal: 5}, false},
		{Event{}, true},
	}
	for _, c := range cases {
		if got := c.ev.Finished(); got != c.want {
			t.Errorf("Event(%+v).Finished() = %v, want %v", c.ev, got, c.want)
		}
	}
}

func TestEmitterDeliversEvent(t *testing.T) {
	received := make(chan Event, 10)
	e := NewEmitter(func(ev Event) { received <- ev })
	defer e.Close()

	e.Emit(Event{Done: 1, Total: 10})

	select {
	case ev := <-received:
		if ev.Done != 1 || ev.Total != 10 {
			t.Errorf("received %+v, want Done=1 Total=10", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("Emit did not deliver an event within 1s")
	}
}

func TestEmitterNilSinkDoesNotBlock(t *testing.T) {
	e := NewEmitter(nil)
	defer e.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			e.Emit(Event{Done: uint64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit with a nil sink blocked")
	}
}

func TestEmitterEmitDoesNotBlockUnderBackpressure(t *testing.T) {
	block := make(chan struct{})
	e := NewEmitter(func(ev Event) { <-block })
	defer func() {
		close(block)
		e.Close()
	}()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			e.Emit(Event{Done: uint64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked while the sink was busy processing the first event")
	}
}
