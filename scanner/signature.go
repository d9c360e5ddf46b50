// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scanner implements C3 (Pattern Scanner): AOB signature
// parsing, committed/readable region enumeration, and a data-parallel
// byte scan reused by both anchor discovery (C4) and instance search
// (C8's findInstances).
package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"ueinspect/uerrors"
)

// Token is one element of a parsed signature: either a concrete byte
// or a wildcard.
type Token struct {
	Value    byte
	Wildcard bool
}

// Signature is a parsed array-of-bytes pattern.
type Signature struct {
	Tokens []Token
}

// Parse parses a whitespace-separated signature where each token is a
// 2-hex-digit byte or "?"/"??" for a wildcard. Empty signatures are
// rejected.
func Parse(s string) (Signature, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Signature{}, fmt.Errorf("%w: empty signature", uerrors.ErrInvalidSignature)
	}
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		if f == "?" || f == "??" {
			tokens = append(tokens, Token{Wildcard: true})
			continue
		}
		if len(f) != 2 {
			return Signature{}, fmt.Errorf("%w: bad token %q", uerrors.ErrInvalidSignature, f)
		}
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return Signature{}, fmt.Errorf("%w: bad token %q: %v", uerrors.ErrInvalidSignature, f, err)
		}
		tokens = append(tokens, Token{Value: byte(v)})
	}
	return Signature{Tokens: tokens}, nil
}

// String formats the signature in canonical form: two-hex-digit bytes
// and bare "?" for wildcards, space separated. Parse(sig.String())
// round-trips byte-exact.
func (sig Signature) String() string {
	parts := make([]string, len(sig.Tokens))
	for i, t := range sig.Tokens {
		if t.Wildcard {
			parts[i] = "?"
			continue
		}
		parts[i] = fmt.Sprintf("%02X", t.Value)
	}
	return strings.Join(parts, " ")
}

// BytesSignature wraps a literal byte sequence as a wildcard-free
// signature, used by findInstances to scan for a raw little-endian
// pointer value rather than a hand-authored AOB string.
func BytesSignature(le []byte) Signature {
	tokens := make([]Token, len(le))
	for i, b := range le {
		tokens[i] = Token{Value: b}
	}
	return Signature{Tokens: tokens}
}
