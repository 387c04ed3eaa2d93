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

// Package striped provides a write-optimized concurrent counter.
//
// Increments land on one of several cache-line-padded cells instead of a
// single shared word, and reads sum every cell. Under concurrent
// increments a read returns a value consistent with some serialization of
// the in-flight increments; once writers quiesce, reads are exact.
package striped

import (
	"runtime"
	"unsafe"

	"go.uber.org/atomic"
)

const _cacheLine = 64

// cell pads its counter out to a cache line so that neighboring cells
// never false-share.
type cell struct {
	n atomic.Int64
	_ [_cacheLine - 8]byte
}

// An Adder is a monotonically growing counter optimized for heavily
// contended writes. The zero value is not usable; construct with New.
type Adder struct {
	cells []cell
	mask  uintptr
}

// New constructs an Adder with one cell per processor, rounded up to a
// power of two.
func New() *Adder {
	n := nextPowerOfTwo(runtime.GOMAXPROCS(0))
	return &Adder{
		cells: make([]cell, n),
		mask:  uintptr(n - 1),
	}
}

// Inc adds one to the counter.
func (a *Adder) Inc() {
	a.Add(1)
}

// Add adds delta to the counter.
func (a *Adder) Add(delta int64) {
	a.cells[stripe()&a.mask].n.Add(delta)
}

// Load returns the current total by summing every cell. It never blocks
// writers.
func (a *Adder) Load() int64 {
	var total int64
	for i := range a.cells {
		total += a.cells[i].n.Load()
	}
	return total
}

// stripe picks a cell for the calling goroutine. The address of a stack
// variable differs between goroutines, which spreads concurrent writers
// across cells without any per-goroutine state; the low bits are shifted
// off because stacks are page aligned.
func stripe() uintptr {
	var b byte
	return uintptr(unsafe.Pointer(&b)) >> 12
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
