// Copyright (c) 2025 The opstat Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package opstat counts, per possible outcome, how many times an operation
// completed, and fans each begin/end event out to a dynamic set of derived
// observers so that higher-level statistics can be composed on top.
//
// # Outcomes
//
// Every statistic is created over a closed, finite set of outcomes, fixed
// for its lifetime. Outcomes are any comparable Go type; in practice they
// are small enum-style constants:
//
//	type cacheOutcome int
//
//	const (
//		cacheHit cacheOutcome = iota
//		cacheMiss
//	)
//
//	stat := opstat.Must(opstat.Opts{
//		Name: "cache_get",
//		Tags: []string{"store"},
//	}, []cacheOutcome{cacheHit, cacheMiss})
//
// Instrumented call sites signal the start of an operation with Begin and
// its completion with End, optionally attaching numeric parameters such as
// latency or payload size:
//
//	stat.Begin()
//	// ... do the lookup ...
//	stat.End(cacheHit, latencyUS)
//
// # Counts
//
// Each outcome is backed by its own striped accumulator, so concurrent End
// calls on any number of goroutines never contend on a single word. Reads
// never block writers: Count, Sum and Total compose a snapshot from
// independently read accumulators, so a read concurrent with increments may
// observe a state that is not any single moment in time across outcomes.
// Per-outcome reads are exact as of some serialization point.
//
// # Derived Observers
//
// A statistic is itself observable. Observers registered with AddDerived
// receive every Begin and End event, End events strictly after the local
// count has been applied. Observers may attach or detach at any time,
// including while events are being delivered; iteration is weakly
// consistent, so an observer removed concurrently with an End call may
// still receive that one in-flight event.
package opstat
