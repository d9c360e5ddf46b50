// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"bytes"
	"runtime"
	"sync"

	"ueinspect/core"
	"ueinspect/memory"
)

// Scan searches every region for sig, data-parallel across regions.
// Ordering across regions is unspecified; within a region, returned
// addresses are ascending. Workers are fanned out over a channel of
// regions rather than via an external pool library.
func Scan(reader *memory.Reader, regions []core.Region, sig Signature, workers int) []core.Address {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(regions) == 0 || len(sig.Tokens) == 0 {
		return nil
	}

	jobs := make(chan core.Region)
	type result struct{ addrs []core.Address }
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for region := range jobs {
				results <- result{addrs: scanRegion(reader, region, sig)}
			}
		}()
	}
	go func() {
		for _, r := range regions {
			jobs <- r
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	var out []core.Address
	for res := range results {
		out = append(out, res.addrs...)
	}
	return out
}

// scanRegion reads a region's bytes in one shot and runs a scalar scan
// with a fast first-byte anchor, then a per-byte wildcard-aware
// comparison. An unreadable region (e.g. raced away underfoot) simply
// contributes no matches, since the outer scan treats region reads as
// best-effort.
func scanRegion(reader *memory.Reader, region core.Region, sig Signature) []core.Address {
	data, err := reader.ReadBytes(region.Base, int(region.Size))
	if err != nil {
		return nil
	}

	n := len(sig.Tokens)
	if len(data) < n {
		return nil
	}

	var out []core.Address
	first := sig.Tokens[0]
	if !first.Wildcard {
		for i := 0; i+n <= len(data); {
			idx := bytes.IndexByte(data[i:len(data)-n+1], first.Value)
			if idx < 0 {
				break
			}
			i += idx
			if matchAt(data, sig, i) {
				out = append(out, region.Base+core.Address(i))
			}
			i++
		}
		return out
	}
	for i := 0; i+n <= len(data); i++ {
		if matchAt(data, sig, i) {
			out = append(out, region.Base+core.Address(i))
		}
	}
	return out
}

func matchAt(data []byte, sig Signature, at int) bool {
	for i, t := range sig.Tokens {
		if t.Wildcard {
			continue
		}
		if data[at+i] != t.Value {
			return false
		}
	}
	return true
}
