// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"errors"
	"testing"

	"ueinspect/uerrors"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want []Token
	}{
		{"48 8D 0D", []Token{{Value: 0x48}, {Value: 0x8D}, {Value: 0x0D}}},
		{"48 ?? ?? 0D", []Token{{Value: 0x48}, {Wildcard: true}, {Wildcard: true}, {Value: 0x0D}}},
		{"48 ? 0D", []Token{{Value: 0x48}, {Wildcard: true}, {Value: 0x0D}}},
		{"  48   8D  ", []Token{{Value: 0x48}, {Value: 0x8D}}},
	}
	for _, c := range cases {
		sig, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error %v", c.in, err)
		}
		if len(sig.Tokens) != len(c.want) {
			t.Fatalf("Parse(%q) = %d tokens, want %d", c.in, len(sig.Tokens), len(c.want))
		}
		for i := range c.want {
			if sig.Tokens[i] != c.want[i] {
				t.Errorf("Parse(%q).Tokens[%d] = %+v, want %+v", c.in, i, sig.Tokens[i], c.want[i])
			}
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"4",
		"4G",
		"ZZ",
		"123",
	}
	for _, in := range cases {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) = nil error, want ErrInvalidSignature", in)
			continue
		}
		if !errors.Is(err, uerrors.ErrInvalidSignature) {
			t.Errorf("Parse(%q) error = %v, want wrapping ErrInvalidSignature", in, err)
		}
	}
}

func TestSignatureStringRoundTrip(t *testing.T) {
	cases := []string{
		"48 8D 0D",
		"48 ? 0D EB",
		"FF 00 A1",
	}
	for _, in := range cases {
		sig, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		again, err := Parse(sig.String())
		if err != nil {
			t.Fatalf("Parse(%q) (round trip) failed: %v", sig.String(), err)
		}
		if len(again.Tokens) != len(sig.Tokens) {
			t.Fatalf("round trip token count mismatch for %q", in)
		}
		for i := range sig.Tokens {
			if again.Tokens[i] != sig.Tokens[i] {
				t.Errorf("round trip mismatch at %d for %q: %+v != %+v", i, in, again.Tokens[i], sig.Tokens[i])
			}
		}
	}
}

func TestBytesSignature(t *testing.T) {
	sig := BytesSignature([]byte{0x10, 0x20, 0xFF})
	want := []Token{{Value: 0x10}, {Value: 0x20}, {Value: 0xFF}}
	if len(sig.Tokens) != len(want) {
		t.Fatalf("BytesSignature produced %d tokens, want %d", len(sig.Tokens), len(want))
	}
	for i := range want {
		if sig.Tokens[i] != want[i] {
			t.Errorf("BytesSignature.Tokens[%d] = %+v, want %+v", i, sig.Tokens[i], want[i])
		}
	}
}
