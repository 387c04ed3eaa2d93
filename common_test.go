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

package opstat

import (
	"fmt"
	"sync"
)

type cacheOutcome int

const (
	cacheHit cacheOutcome = iota
	cacheMiss
)

func (o cacheOutcome) String() string {
	switch o {
	case cacheHit:
		return "HIT"
	case cacheMiss:
		return "MISS"
	default:
		return fmt.Sprintf("cacheOutcome(%d)", int(o))
	}
}

// recordingObserver records every event it receives as a formatted string,
// in delivery order.
type recordingObserver[T comparable] struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingObserver[T]) Begin() {
	r.record("begin")
}

func (r *recordingObserver[T]) End(result T, values ...int64) {
	if len(values) == 0 {
		r.record(fmt.Sprintf("end:%v", result))
		return
	}
	r.record(fmt.Sprintf("end:%v%v", result, values))
}

func (r *recordingObserver[T]) record(event string) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *recordingObserver[T]) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]string, len(r.events))
	copy(events, r.events)
	return events
}

// panickyObserver panics on every event.
type panickyObserver[T comparable] struct{}

func (panickyObserver[T]) Begin()          { panic("observer panicked in begin") }
func (panickyObserver[T]) End(T, ...int64) { panic("observer panicked in end") }
