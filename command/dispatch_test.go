// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"encoding/json"
	"errors"
	"testing"

	"ueinspect/core"
	"ueinspect/session"
	"ueinspect/uerrors"
)

func TestParseAddr(t *testing.T) {
	cases := []struct {
		in   string
		want core.Address
		ok   bool
	}{
		{"0x1000", 0x1000, true},
		{"4096", 4096, true},
		{"0", 0, true},
		{"not-a-number", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := parseAddr(c.in)
		if c.ok && err != nil {
			t.Errorf("parseAddr(%q) returned error %v, want none", c.in, err)
		}
		if !c.ok {
			if err == nil {
				t.Errorf("parseAddr(%q) = nil error, want ErrInvalidAddress", c.in)
			} else if !errors.Is(err, uerrors.ErrInvalidAddress) {
				t.Errorf("parseAddr(%q) error = %v, want wrapping ErrInvalidAddress", c.in, err)
			}
		}
		if c.ok && got != c.want {
			t.Errorf("parseAddr(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

// Dispatch itself never touches a live process for commands gated on
// session state: GetVersion requires ATTACHED, so a Dispatcher over a
// fresh Session returns an ErrorResponse instead of panicking or
// blocking on a missing handle.
func TestDispatchReturnsErrorResponseBeforeAttach(t *testing.T) {
	d := NewDispatcher(session.New(1))

	raw := d.Dispatch("getVersion", []byte("{}"))

	var resp ErrorResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("Dispatch(getVersion) did not return a valid ErrorResponse: %v (%s)", err, raw)
	}
	if resp.Error == "" {
		t.Errorf("Dispatch(getVersion) before attach returned an empty error message")
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	d := NewDispatcher(session.New(1))
	raw := d.Dispatch("notACommand", []byte("{}"))

	var resp ErrorResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("Dispatch(notACommand) did not return a valid ErrorResponse: %v (%s)", err, raw)
	}
	if resp.Error == "" {
		t.Errorf("Dispatch(notACommand) returned an empty error message")
	}
}

func TestDispatchMalformedPayload(t *testing.T) {
	d := NewDispatcher(session.New(1))
	raw := d.Dispatch("attach", []byte("{not json"))

	var resp ErrorResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("Dispatch(attach) with malformed JSON did not return a valid ErrorResponse: %v (%s)", err, raw)
	}
	if resp.Error == "" {
		t.Errorf("Dispatch(attach) with malformed JSON returned an empty error message")
	}
}
